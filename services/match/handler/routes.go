package handler

import (
	"github.com/harlanda/taxiway/services/match"
	httpHandler "github.com/harlanda/taxiway/services/match/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
	}
}

// RegisterRoutes registers all HTTP routes.
// The status and by-id reads are the endpoints both clients poll.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	matchGroup := e.Group("/api/match")
	matchGroup.POST("/request", h.matchHTTP.RequestMatch)
	matchGroup.GET("/status", h.matchHTTP.GetMatchStatus)
	matchGroup.GET("/:matchId", h.matchHTTP.GetMatch)
	matchGroup.PUT("/:matchId/gps", h.matchHTTP.UpdateGPS)
	matchGroup.DELETE("/:matchId", h.matchHTTP.CancelMatch)
	matchGroup.POST("/:matchId/complete", h.matchHTTP.CompleteMatch)
}
