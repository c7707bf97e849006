package detection

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// MLGateway defines the interface to the external image detection service
type MLGateway interface {
	Detect(ctx context.Context, image []byte, filename string, req models.DetectRequest) (*models.MLDetectResponse, error)
}
