package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// BoundingBox is one detected object in an analyzed image. Coordinates are
// pixel positions in the original image.
type BoundingBox struct {
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	Confidence float64 `json:"confidence"`
	ClassName  string  `json:"class_name"`
	ClassID    int     `json:"class_id"`
	OCRText    string  `json:"ocr_text,omitempty"`
}

// MLDetectResponse is the wire format returned by the external detection
// service for a single image.
type MLDetectResponse struct {
	Detections     []BoundingBox `json:"detections"`
	Instruction    string        `json:"instruction"`
	ImageWidth     int           `json:"image_width"`
	ImageHeight    int           `json:"image_height"`
	DistanceMeters *float64      `json:"distance_meters"`
	Direction      *string       `json:"direction"`
}

// DetectRequest carries the optional GPS context forwarded alongside an
// image to the detection service.
type DetectRequest struct {
	UserMode           string
	DriverLatitude     *float64
	DriverLongitude    *float64
	PassengerLatitude  *float64
	PassengerLongitude *float64
}

// Detection is one persisted detection pass
type Detection struct {
	ID                 string          `json:"id"`
	Detections         json.RawMessage `json:"detections"`
	Instruction        string          `json:"instruction"`
	ImageWidth         *int            `json:"image_width"`
	ImageHeight        *int            `json:"image_height"`
	DriverLatitude     *float64        `json:"driver_latitude"`
	DriverLongitude    *float64        `json:"driver_longitude"`
	PassengerLatitude  *float64        `json:"passenger_latitude"`
	PassengerLongitude *float64        `json:"passenger_longitude"`
	DistanceMeters     *float64        `json:"distance_meters"`
	Direction          *string         `json:"direction"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"-"`
}

// DetectionDTO is used for database scans to handle nullable columns
type DetectionDTO struct {
	ID                 string          `db:"id"`
	Detections         []byte          `db:"detections"`
	Instruction        string          `db:"instruction"`
	ImageWidth         sql.NullInt64   `db:"image_width"`
	ImageHeight        sql.NullInt64   `db:"image_height"`
	DriverLatitude     sql.NullFloat64 `db:"driver_latitude"`
	DriverLongitude    sql.NullFloat64 `db:"driver_longitude"`
	PassengerLatitude  sql.NullFloat64 `db:"passenger_latitude"`
	PassengerLongitude sql.NullFloat64 `db:"passenger_longitude"`
	DistanceMeters     sql.NullFloat64 `db:"distance_meters"`
	Direction          sql.NullString  `db:"direction"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ToDetection converts a DetectionDTO to a Detection
func (dto *DetectionDTO) ToDetection() *Detection {
	return &Detection{
		ID:                 dto.ID,
		Detections:         json.RawMessage(dto.Detections),
		Instruction:        dto.Instruction,
		ImageWidth:         nullIntPtr(dto.ImageWidth),
		ImageHeight:        nullIntPtr(dto.ImageHeight),
		DriverLatitude:     nullFloatPtr(dto.DriverLatitude),
		DriverLongitude:    nullFloatPtr(dto.DriverLongitude),
		PassengerLatitude:  nullFloatPtr(dto.PassengerLatitude),
		PassengerLongitude: nullFloatPtr(dto.PassengerLongitude),
		DistanceMeters:     nullFloatPtr(dto.DistanceMeters),
		Direction:          nullStringPtr(dto.Direction),
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}
}

// ToDTO converts a Detection to a DetectionDTO
func (d *Detection) ToDTO() *DetectionDTO {
	return &DetectionDTO{
		ID:                 d.ID,
		Detections:         []byte(d.Detections),
		Instruction:        d.Instruction,
		ImageWidth:         ptrNullInt(d.ImageWidth),
		ImageHeight:        ptrNullInt(d.ImageHeight),
		DriverLatitude:     ptrNullFloat(d.DriverLatitude),
		DriverLongitude:    ptrNullFloat(d.DriverLongitude),
		PassengerLatitude:  ptrNullFloat(d.PassengerLatitude),
		PassengerLongitude: ptrNullFloat(d.PassengerLongitude),
		DistanceMeters:     ptrNullFloat(d.DistanceMeters),
		Direction:          ptrNullString(d.Direction),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
