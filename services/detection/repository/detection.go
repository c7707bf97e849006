package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/detection"
	"github.com/jmoiron/sqlx"
)

const detectionColumns = `
	id, detections, instruction, image_width, image_height,
	driver_latitude, driver_longitude, passenger_latitude, passenger_longitude,
	distance_meters, direction, created_at, updated_at
`

// DetectionRepo implements the detection repository interface
type DetectionRepo struct {
	db *sqlx.DB
}

// NewDetectionRepository creates a new detection repository
func NewDetectionRepository(db *sqlx.DB) *DetectionRepo {
	return &DetectionRepo{db: db}
}

// InsertDetection persists a detection pass
func (r *DetectionRepo) InsertDetection(ctx context.Context, d *models.Detection) (*models.Detection, error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt

	query := `
		INSERT INTO detections (
			id, detections, instruction, image_width, image_height,
			driver_latitude, driver_longitude, passenger_latitude, passenger_longitude,
			distance_meters, direction, created_at, updated_at
		) VALUES (
			:id, :detections, :instruction, :image_width, :image_height,
			:driver_latitude, :driver_longitude, :passenger_latitude, :passenger_longitude,
			:distance_meters, :direction, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, d.ToDTO())
	if err != nil {
		return nil, fmt.Errorf("failed to insert detection: %w", err)
	}

	return d, nil
}

// GetDetection retrieves a detection by ID
func (r *DetectionRepo) GetDetection(ctx context.Context, detectionID string) (*models.Detection, error) {
	query := `
		SELECT ` + detectionColumns + `
		FROM detections
		WHERE id = $1
	`

	var dto models.DetectionDTO
	err := r.db.GetContext(ctx, &dto, query, detectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, detection.ErrDetectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get detection: %w", err)
	}
	return dto.ToDetection(), nil
}

// ListDetections retrieves the most recent detection passes, newest first
func (r *DetectionRepo) ListDetections(ctx context.Context, limit int) ([]*models.Detection, error) {
	query := `
		SELECT ` + detectionColumns + `
		FROM detections
		ORDER BY created_at DESC
		LIMIT $1
	`

	var dtos []models.DetectionDTO
	if err := r.db.SelectContext(ctx, &dtos, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list detections: %w", err)
	}

	detections := make([]*models.Detection, 0, len(dtos))
	for i := range dtos {
		detections = append(detections, dtos[i].ToDetection())
	}
	return detections, nil
}
