package handler

import (
	"github.com/harlanda/taxiway/services/instruction"
	httpHandler "github.com/harlanda/taxiway/services/instruction/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the instruction service
type Handler struct {
	instructionHTTP *httpHandler.InstructionHandler
}

// NewHandler creates a new combined handler
func NewHandler(instructionUC instruction.InstructionUC) *Handler {
	return &Handler{
		instructionHTTP: httpHandler.NewInstructionHandler(instructionUC),
	}
}

// RegisterRoutes registers all HTTP routes. The literal paths are
// registered before the :id routes so "pending" is never read as an id.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	instructionGroup := e.Group("/api/instruction")
	instructionGroup.POST("/create", h.instructionHTTP.CreateInstruction)
	instructionGroup.GET("/pending", h.instructionHTTP.GetPendingInstruction)
	instructionGroup.GET("/latest", h.instructionHTTP.GetLatestInstruction)
	instructionGroup.GET("/unsent", h.instructionHTTP.GetUnsentInstruction)
	instructionGroup.POST("/:id/send", h.instructionHTTP.SendInstruction)
	instructionGroup.DELETE("/:id/cancel", h.instructionHTTP.CancelInstruction)
}
