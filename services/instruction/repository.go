package instruction

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// SentFilter narrows a current-instruction lookup by sent state
type SentFilter int

const (
	// AnySent matches instructions regardless of sent state
	AnySent SentFilter = iota
	// OnlySent matches instructions already sent to the passenger
	OnlySent
	// OnlyUnsent matches instructions not yet sent
	OnlyUnsent
)

// InstructionRepo defines the interface for instruction data access
type InstructionRepo interface {
	InsertInstruction(ctx context.Context, instruction *models.Instruction) (*models.Instruction, error)
	GetInstruction(ctx context.Context, instructionID string) (*models.Instruction, error)
	MarkSent(ctx context.Context, instructionID string) (*models.Instruction, error)
	DeleteInstruction(ctx context.Context, instructionID string) error

	// FindCurrent returns the most recent instruction for a match matching
	// the sent filter, or nil when none exists. Recency is determined by
	// created_at; there is no explicit "current" flag.
	FindCurrent(ctx context.Context, matchID string, filter SentFilter) (*models.Instruction, error)
}
