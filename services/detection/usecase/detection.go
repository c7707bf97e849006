package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harlanda/taxiway/internal/pkg/logger"
	"github.com/harlanda/taxiway/internal/pkg/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Detect forwards the image to the external detection service, persists
// the outcome, and returns the stored record. The detection result is kept
// even when no objects were found so the history reflects every pass.
func (uc *DetectionUC) Detect(ctx context.Context, image []byte, filename string, req models.DetectRequest) (*models.Detection, error) {
	result, err := uc.mlGateway.Detect(ctx, image, filename, req)
	if err != nil {
		logger.Error("Detection service call failed", logger.Err(err))
		return nil, err
	}

	detectionsJSON, err := json.Marshal(result.Detections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal detections: %w", err)
	}

	d := &models.Detection{
		Detections:         json.RawMessage(detectionsJSON),
		Instruction:        result.Instruction,
		ImageWidth:         intPtr(result.ImageWidth),
		ImageHeight:        intPtr(result.ImageHeight),
		DriverLatitude:     req.DriverLatitude,
		DriverLongitude:    req.DriverLongitude,
		PassengerLatitude:  req.PassengerLatitude,
		PassengerLongitude: req.PassengerLongitude,
		DistanceMeters:     result.DistanceMeters,
		Direction:          result.Direction,
	}

	stored, err := uc.detectionRepo.InsertDetection(ctx, d)
	if err != nil {
		logger.Error("Failed to persist detection result", logger.Err(err))
		return nil, err
	}

	logger.Info("Detection pass stored",
		logger.String("detection_id", stored.ID),
		logger.Int("object_count", len(result.Detections)))

	return stored, nil
}

// GetDetection retrieves a stored detection pass by ID
func (uc *DetectionUC) GetDetection(ctx context.Context, detectionID string) (*models.Detection, error) {
	return uc.detectionRepo.GetDetection(ctx, detectionID)
}

// GetHistory returns recent detection passes, newest first. The limit is
// clamped to a sane range.
func (uc *DetectionUC) GetHistory(ctx context.Context, limit int) ([]*models.Detection, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return uc.detectionRepo.ListDetections(ctx, limit)
}

func intPtr(v int) *int {
	return &v
}
