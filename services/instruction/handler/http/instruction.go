package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harlanda/taxiway/internal/utils"
	"github.com/harlanda/taxiway/services/instruction"
	"github.com/labstack/echo/v4"
)

// InstructionHandler handles HTTP requests for instruction operations
type InstructionHandler struct {
	instructionUC instruction.InstructionUC
}

// NewInstructionHandler creates a new instruction HTTP handler
func NewInstructionHandler(instructionUC instruction.InstructionUC) *InstructionHandler {
	return &InstructionHandler{
		instructionUC: instructionUC,
	}
}

// CreateInstructionRequest is the request body for instruction creation
type CreateInstructionRequest struct {
	MatchID       string          `json:"matchId"`
	Content       string          `json:"content"`
	DetectionData json.RawMessage `json:"detectionData"`
	ImageWidth    *int            `json:"imageWidth"`
	ImageHeight   *int            `json:"imageHeight"`
}

// CreateInstruction handles POST /api/instruction/create
func (h *InstructionHandler) CreateInstruction(c echo.Context) error {
	var req CreateInstructionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.MatchID == "" || req.Content == "" {
		return utils.BadRequestResponse(c, "matchId and content are required")
	}

	result, err := h.instructionUC.Create(c.Request().Context(), req.MatchID, req.Content, req.DetectionData, req.ImageWidth, req.ImageHeight)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to create instruction: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// SendInstruction handles POST /api/instruction/:id/send
func (h *InstructionHandler) SendInstruction(c echo.Context) error {
	instructionID := c.Param("id")
	if instructionID == "" {
		return utils.BadRequestResponse(c, "Instruction ID is required")
	}

	result, err := h.instructionUC.Send(c.Request().Context(), instructionID)
	if err != nil {
		if errors.Is(err, instruction.ErrInstructionNotFound) {
			return utils.NotFoundResponse(c, "Instruction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to send instruction: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// CancelInstruction handles DELETE /api/instruction/:id/cancel. Idempotent.
func (h *InstructionHandler) CancelInstruction(c echo.Context) error {
	instructionID := c.Param("id")
	if instructionID == "" {
		return utils.BadRequestResponse(c, "Instruction ID is required")
	}

	if err := h.instructionUC.Cancel(c.Request().Context(), instructionID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to cancel instruction: "+err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetPendingInstruction handles GET /api/instruction/pending. The passenger
// client polls this; no sent instruction yet means keep waiting.
func (h *InstructionHandler) GetPendingInstruction(c echo.Context) error {
	matchID := c.QueryParam("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "matchId is required")
	}

	result, err := h.instructionUC.GetPending(c.Request().Context(), matchID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get pending instruction: "+err.Error())
	}

	if result == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "waiting"})
	}
	return c.JSON(http.StatusOK, result)
}

// GetLatestInstruction handles GET /api/instruction/latest. Absence is a
// normal value, rendered as JSON null.
func (h *InstructionHandler) GetLatestInstruction(c echo.Context) error {
	matchID := c.QueryParam("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "matchId is required")
	}

	result, err := h.instructionUC.GetLatest(c.Request().Context(), matchID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get latest instruction: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetUnsentInstruction handles GET /api/instruction/unsent. The driver
// client polls this to recover an instruction it has not released yet.
func (h *InstructionHandler) GetUnsentInstruction(c echo.Context) error {
	matchID := c.QueryParam("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "matchId is required")
	}

	result, err := h.instructionUC.GetUnsent(c.Request().Context(), matchID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get unsent instruction: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
