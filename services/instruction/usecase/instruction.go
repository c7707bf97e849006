package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harlanda/taxiway/internal/pkg/logger"
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/instruction"
)

// Create stores a new instruction for a match. Instructions start unsent;
// the driver client releases them to the passenger with Send.
func (uc *InstructionUC) Create(ctx context.Context, matchID, content string, detectionData json.RawMessage, imageWidth, imageHeight *int) (*models.Instruction, error) {
	i := &models.Instruction{
		MatchID:         matchID,
		Content:         content,
		SentToPassenger: false,
		DetectionData:   detectionData,
		ImageWidth:      imageWidth,
		ImageHeight:     imageHeight,
	}

	created, err := uc.instructionRepo.InsertInstruction(ctx, i)
	if err != nil {
		logger.Error("Failed to create instruction",
			logger.String("match_id", matchID),
			logger.Err(err))
		return nil, err
	}

	logger.Info("Instruction created",
		logger.String("instruction_id", created.ID),
		logger.String("match_id", created.MatchID))

	return created, nil
}

// Send marks an instruction as sent to the passenger. From that point the
// passenger's pending poll will surface it.
func (uc *InstructionUC) Send(ctx context.Context, instructionID string) (*models.Instruction, error) {
	sent, err := uc.instructionRepo.MarkSent(ctx, instructionID)
	if err != nil {
		if !errors.Is(err, instruction.ErrInstructionNotFound) {
			logger.Error("Failed to mark instruction sent",
				logger.String("instruction_id", instructionID),
				logger.Err(err))
		}
		return nil, err
	}

	event := models.InstructionEvent{
		InstructionID: sent.ID,
		MatchID:       sent.MatchID,
		Content:       sent.Content,
		Timestamp:     time.Now(),
	}
	if err := uc.instructionGW.PublishInstructionSent(ctx, event); err != nil {
		logger.Warn("Failed to publish instruction sent event",
			logger.String("instruction_id", sent.ID),
			logger.Err(err))
	}

	logger.Info("Instruction sent to passenger",
		logger.String("instruction_id", sent.ID),
		logger.String("match_id", sent.MatchID))

	return sent, nil
}

// Cancel deletes an instruction. Cancelling an id that no longer exists is
// treated as success so retried cancels stay safe.
func (uc *InstructionUC) Cancel(ctx context.Context, instructionID string) error {
	if err := uc.instructionRepo.DeleteInstruction(ctx, instructionID); err != nil {
		logger.Error("Failed to cancel instruction",
			logger.String("instruction_id", instructionID),
			logger.Err(err))
		return err
	}

	logger.Info("Instruction cancelled",
		logger.String("instruction_id", instructionID))

	return nil
}

// GetPending returns the newest instruction already released to the
// passenger, or nil when none has been sent yet.
func (uc *InstructionUC) GetPending(ctx context.Context, matchID string) (*models.Instruction, error) {
	return uc.instructionRepo.FindCurrent(ctx, matchID, instruction.OnlySent)
}

// GetLatest returns the newest instruction for a match regardless of sent
// state, or nil when the match has no instructions.
func (uc *InstructionUC) GetLatest(ctx context.Context, matchID string) (*models.Instruction, error) {
	return uc.instructionRepo.FindCurrent(ctx, matchID, instruction.AnySent)
}

// GetUnsent returns the newest instruction still awaiting the driver's
// send, or nil when everything has been released.
func (uc *InstructionUC) GetUnsent(ctx context.Context, matchID string) (*models.Instruction, error) {
	return uc.instructionRepo.FindCurrent(ctx, matchID, instruction.OnlyUnsent)
}
