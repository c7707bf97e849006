package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Instruction is one pickup-guidance message generated from a detection
// pass. Rows are append-only: a new detection always creates a new
// instruction instead of mutating the previous one.
type Instruction struct {
	ID              string          `json:"id"`
	MatchID         string          `json:"matchId"`
	Content         string          `json:"content"`
	SentToPassenger bool            `json:"sentToPassenger"`
	DetectionData   json.RawMessage `json:"detectionData"`
	ImageWidth      *int            `json:"imageWidth"`
	ImageHeight     *int            `json:"imageHeight"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// InstructionDTO is used for database scans to handle nullable columns
type InstructionDTO struct {
	ID              string        `db:"id"`
	MatchID         string        `db:"match_id"`
	Content         string        `db:"content"`
	SentToPassenger bool          `db:"sent_to_passenger"`
	DetectionData   []byte        `db:"detection_data"`
	ImageWidth      sql.NullInt64 `db:"image_width"`
	ImageHeight     sql.NullInt64 `db:"image_height"`
	CreatedAt       time.Time     `db:"created_at"`
}

// ToInstruction converts an InstructionDTO to an Instruction
func (dto *InstructionDTO) ToInstruction() *Instruction {
	return &Instruction{
		ID:              dto.ID,
		MatchID:         dto.MatchID,
		Content:         dto.Content,
		SentToPassenger: dto.SentToPassenger,
		DetectionData:   json.RawMessage(dto.DetectionData),
		ImageWidth:      nullIntPtr(dto.ImageWidth),
		ImageHeight:     nullIntPtr(dto.ImageHeight),
		CreatedAt:       dto.CreatedAt,
	}
}

// ToDTO converts an Instruction to an InstructionDTO
func (i *Instruction) ToDTO() *InstructionDTO {
	return &InstructionDTO{
		ID:              i.ID,
		MatchID:         i.MatchID,
		Content:         i.Content,
		SentToPassenger: i.SentToPassenger,
		DetectionData:   []byte(i.DetectionData),
		ImageWidth:      ptrNullInt(i.ImageWidth),
		ImageHeight:     ptrNullInt(i.ImageHeight),
		CreatedAt:       i.CreatedAt,
	}
}

// InstructionEvent is the payload published when an instruction is sent
type InstructionEvent struct {
	InstructionID string    `json:"instruction_id"`
	MatchID       string    `json:"match_id"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func ptrNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
