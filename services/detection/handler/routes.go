package handler

import (
	"github.com/harlanda/taxiway/services/detection"
	httpHandler "github.com/harlanda/taxiway/services/detection/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the detection service
type Handler struct {
	detectionHTTP *httpHandler.DetectionHandler
}

// NewHandler creates a new combined handler
func NewHandler(detectionUC detection.DetectionUC) *Handler {
	return &Handler{
		detectionHTTP: httpHandler.NewDetectionHandler(detectionUC),
	}
}

// RegisterRoutes registers all HTTP routes. The history route is registered
// before :id so "history" is never read as an id.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	detectionGroup := e.Group("/api/detection")
	detectionGroup.POST("/detect", h.detectionHTTP.Detect)
	detectionGroup.GET("/history", h.detectionHTTP.GetHistory)
	detectionGroup.GET("/:id", h.detectionHTTP.GetDetection)
}
