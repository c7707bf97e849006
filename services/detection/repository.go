package detection

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// DetectionRepo defines the interface for detection data access
type DetectionRepo interface {
	InsertDetection(ctx context.Context, detection *models.Detection) (*models.Detection, error)
	GetDetection(ctx context.Context, detectionID string) (*models.Detection, error)
	ListDetections(ctx context.Context, limit int) ([]*models.Detection, error)
}
