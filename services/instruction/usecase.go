package instruction

import (
	"context"
	"encoding/json"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// InstructionUC defines the interface for instruction coordination logic
type InstructionUC interface {
	Create(ctx context.Context, matchID, content string, detectionData json.RawMessage, imageWidth, imageHeight *int) (*models.Instruction, error)
	Send(ctx context.Context, instructionID string) (*models.Instruction, error)
	Cancel(ctx context.Context, instructionID string) error
	GetPending(ctx context.Context, matchID string) (*models.Instruction, error)
	GetLatest(ctx context.Context, matchID string) (*models.Instruction, error)
	GetUnsent(ctx context.Context, matchID string) (*models.Instruction, error)
}
