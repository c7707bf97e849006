package usecase

import (
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/instruction"
)

// InstructionUC implements the instruction coordination logic
type InstructionUC struct {
	cfg             *models.Config
	instructionRepo instruction.InstructionRepo
	instructionGW   instruction.InstructionGW
}

// NewInstructionUC creates a new instruction usecase
func NewInstructionUC(
	cfg *models.Config,
	instructionRepo instruction.InstructionRepo,
	instructionGW instruction.InstructionGW,
) *InstructionUC {
	return &InstructionUC{
		cfg:             cfg,
		instructionRepo: instructionRepo,
		instructionGW:   instructionGW,
	}
}
