package instruction

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// InstructionGW defines the instruction gateway interface for lifecycle
// events
type InstructionGW interface {
	PublishInstructionSent(ctx context.Context, event models.InstructionEvent) error
}
