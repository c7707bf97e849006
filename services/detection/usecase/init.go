package usecase

import (
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/detection"
)

// DetectionUC implements the detection coordination logic
type DetectionUC struct {
	cfg           *models.Config
	detectionRepo detection.DetectionRepo
	mlGateway     detection.MLGateway
}

// NewDetectionUC creates a new detection usecase
func NewDetectionUC(
	cfg *models.Config,
	detectionRepo detection.DetectionRepo,
	mlGateway detection.MLGateway,
) *DetectionUC {
	return &DetectionUC{
		cfg:           cfg,
		detectionRepo: detectionRepo,
		mlGateway:     mlGateway,
	}
}
