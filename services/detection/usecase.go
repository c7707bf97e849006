package detection

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// DetectionUC defines the interface for detection coordination logic
type DetectionUC interface {
	// Detect forwards the image to the external detection service and
	// persists the result.
	Detect(ctx context.Context, image []byte, filename string, req models.DetectRequest) (*models.Detection, error)
	GetDetection(ctx context.Context, detectionID string) (*models.Detection, error)
	GetHistory(ctx context.Context, limit int) ([]*models.Detection, error)
}
