package models

import (
	"database/sql"
	"time"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusMatched   MatchStatus = "matched"
	MatchStatusCompleted MatchStatus = "completed"
)

// Role identifies which side of a match a caller is operating as
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// IsValid reports whether the role is one of the two known roles
func (r Role) IsValid() bool {
	return r == RoleDriver || r == RolePassenger
}

// Match represents a pickup session between a driver and a passenger.
// Identity references and coordinates are nil until the corresponding
// party has joined or reported a position.
type Match struct {
	ID                 string      `json:"id"`
	DriverID           *string     `json:"driverId"`
	DriverUsername     *string     `json:"driverUsername"`
	PassengerID        *string     `json:"passengerId"`
	PassengerUsername  *string     `json:"passengerUsername"`
	DriverConfirmed    bool        `json:"driverConfirmed"`
	PassengerConfirmed bool        `json:"passengerConfirmed"`
	Status             MatchStatus `json:"status"`
	DriverLatitude     *float64    `json:"driverLatitude"`
	DriverLongitude    *float64    `json:"driverLongitude"`
	PassengerLatitude  *float64    `json:"passengerLatitude"`
	PassengerLongitude *float64    `json:"passengerLongitude"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// MatchDTO is used for database scans to handle nullable columns
type MatchDTO struct {
	ID                 string          `db:"id"`
	DriverID           sql.NullString  `db:"driver_id"`
	DriverUsername     sql.NullString  `db:"driver_username"`
	PassengerID        sql.NullString  `db:"passenger_id"`
	PassengerUsername  sql.NullString  `db:"passenger_username"`
	DriverConfirmed    bool            `db:"driver_confirmed"`
	PassengerConfirmed bool            `db:"passenger_confirmed"`
	Status             MatchStatus     `db:"status"`
	DriverLatitude     sql.NullFloat64 `db:"driver_latitude"`
	DriverLongitude    sql.NullFloat64 `db:"driver_longitude"`
	PassengerLatitude  sql.NullFloat64 `db:"passenger_latitude"`
	PassengerLongitude sql.NullFloat64 `db:"passenger_longitude"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ToMatch converts a MatchDTO to a Match
func (dto *MatchDTO) ToMatch() *Match {
	return &Match{
		ID:                 dto.ID,
		DriverID:           nullStringPtr(dto.DriverID),
		DriverUsername:     nullStringPtr(dto.DriverUsername),
		PassengerID:        nullStringPtr(dto.PassengerID),
		PassengerUsername:  nullStringPtr(dto.PassengerUsername),
		DriverConfirmed:    dto.DriverConfirmed,
		PassengerConfirmed: dto.PassengerConfirmed,
		Status:             dto.Status,
		DriverLatitude:     nullFloatPtr(dto.DriverLatitude),
		DriverLongitude:    nullFloatPtr(dto.DriverLongitude),
		PassengerLatitude:  nullFloatPtr(dto.PassengerLatitude),
		PassengerLongitude: nullFloatPtr(dto.PassengerLongitude),
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}
}

// ToDTO converts a Match to a MatchDTO
func (m *Match) ToDTO() *MatchDTO {
	return &MatchDTO{
		ID:                 m.ID,
		DriverID:           ptrNullString(m.DriverID),
		DriverUsername:     ptrNullString(m.DriverUsername),
		PassengerID:        ptrNullString(m.PassengerID),
		PassengerUsername:  ptrNullString(m.PassengerUsername),
		DriverConfirmed:    m.DriverConfirmed,
		PassengerConfirmed: m.PassengerConfirmed,
		Status:             m.Status,
		DriverLatitude:     ptrNullFloat(m.DriverLatitude),
		DriverLongitude:    ptrNullFloat(m.DriverLongitude),
		PassengerLatitude:  ptrNullFloat(m.PassengerLatitude),
		PassengerLongitude: ptrNullFloat(m.PassengerLongitude),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// MatchEvent is the payload published on match lifecycle topics
type MatchEvent struct {
	MatchID     string      `json:"match_id"`
	DriverID    string      `json:"driver_id,omitempty"`
	PassengerID string      `json:"passenger_id,omitempty"`
	Status      MatchStatus `json:"status"`
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func ptrNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func ptrNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
