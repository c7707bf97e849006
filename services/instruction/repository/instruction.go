package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/instruction"
	"github.com/jmoiron/sqlx"
)

const instructionColumns = `
	id, match_id, content, sent_to_passenger, detection_data,
	image_width, image_height, created_at
`

// InstructionRepo implements the instruction repository interface
type InstructionRepo struct {
	db *sqlx.DB
}

// NewInstructionRepository creates a new instruction repository
func NewInstructionRepository(db *sqlx.DB) *InstructionRepo {
	return &InstructionRepo{db: db}
}

func scanInstruction(row *sql.Row) (*models.Instruction, error) {
	var dto models.InstructionDTO
	err := row.Scan(
		&dto.ID, &dto.MatchID, &dto.Content, &dto.SentToPassenger,
		&dto.DetectionData, &dto.ImageWidth, &dto.ImageHeight, &dto.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dto.ToInstruction(), nil
}

// InsertInstruction persists a new instruction row. Rows are append-only;
// each detection pass creates a new row.
func (r *InstructionRepo) InsertInstruction(ctx context.Context, i *models.Instruction) (*models.Instruction, error) {
	i.ID = uuid.New().String()
	i.CreatedAt = time.Now()

	query := `
		INSERT INTO instructions (
			id, match_id, content, sent_to_passenger, detection_data,
			image_width, image_height, created_at
		) VALUES (
			:id, :match_id, :content, :sent_to_passenger, :detection_data,
			:image_width, :image_height, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, i.ToDTO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert instruction: %w", err)
	}

	return i, nil
}

// GetInstruction retrieves an instruction by ID
func (r *InstructionRepo) GetInstruction(ctx context.Context, instructionID string) (*models.Instruction, error) {
	query := `
		SELECT ` + instructionColumns + `
		FROM instructions
		WHERE id = $1
	`

	i, err := scanInstruction(r.db.QueryRowContext(ctx, query, instructionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, instruction.ErrInstructionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instruction: %w", err)
	}
	return i, nil
}

// MarkSent flips sent_to_passenger and returns the updated instruction
func (r *InstructionRepo) MarkSent(ctx context.Context, instructionID string) (*models.Instruction, error) {
	query := `UPDATE instructions SET sent_to_passenger = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, instructionID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark instruction sent: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, instruction.ErrInstructionNotFound
	}

	return r.GetInstruction(ctx, instructionID)
}

// DeleteInstruction removes an instruction. Deleting a non-existent id is
// not an error.
func (r *InstructionRepo) DeleteInstruction(ctx context.Context, instructionID string) error {
	query := `DELETE FROM instructions WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, instructionID)
	if err != nil {
		return fmt.Errorf("failed to delete instruction: %w", err)
	}
	return nil
}

// FindCurrent retrieves the most recent instruction for a match matching
// the sent filter. Returns nil when none exists.
func (r *InstructionRepo) FindCurrent(ctx context.Context, matchID string, filter instruction.SentFilter) (*models.Instruction, error) {
	query := `
		SELECT ` + instructionColumns + `
		FROM instructions
		WHERE match_id = $1
	`
	args := []interface{}{matchID}

	switch filter {
	case instruction.OnlySent:
		query += ` AND sent_to_passenger = $2`
		args = append(args, true)
	case instruction.OnlyUnsent:
		query += ` AND sent_to_passenger = $2`
		args = append(args, false)
	}

	query += `
		ORDER BY created_at DESC
		LIMIT 1
	`

	i, err := scanInstruction(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find current instruction: %w", err)
	}
	return i, nil
}
