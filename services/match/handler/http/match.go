package http

import (
	"errors"
	"net/http"

	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/internal/utils"
	"github.com/harlanda/taxiway/services/match"
	"github.com/labstack/echo/v4"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

// RequestMatchRequest is the request body for match requests
type RequestMatchRequest struct {
	UserID         string      `json:"userId"`
	Username       string      `json:"username"`
	Role           models.Role `json:"role"`
	TargetUsername string      `json:"targetUsername"`
}

// UpdateGPSRequest is the request body for GPS updates
type UpdateGPSRequest struct {
	UserID    string      `json:"userId"`
	Role      models.Role `json:"role"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

// RequestMatch handles POST /api/match/request
func (h *MatchHandler) RequestMatch(c echo.Context) error {
	var req RequestMatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.UserID == "" || req.Username == "" || req.TargetUsername == "" {
		return utils.BadRequestResponse(c, "userId, username and targetUsername are required")
	}
	if !req.Role.IsValid() {
		return utils.BadRequestResponse(c, "role must be driver or passenger")
	}

	result, err := h.matchUC.RequestMatch(c.Request().Context(), req.UserID, req.Username, req.Role, req.TargetUsername)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to request match: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetMatchStatus handles GET /api/match/status. Absence is a normal value,
// not an error.
func (h *MatchHandler) GetMatchStatus(c echo.Context) error {
	userID := c.QueryParam("userId")
	role := models.Role(c.QueryParam("role"))

	if userID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}
	if !role.IsValid() {
		return utils.BadRequestResponse(c, "role must be driver or passenger")
	}

	result, err := h.matchUC.GetMatchStatus(c.Request().Context(), userID, role)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get match status: "+err.Error())
	}

	if result == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "none"})
	}
	return c.JSON(http.StatusOK, result)
}

// GetMatch handles GET /api/match/:matchId
func (h *MatchHandler) GetMatch(c echo.Context) error {
	matchID := c.Param("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "Match ID is required")
	}

	result, err := h.matchUC.FindByID(c.Request().Context(), matchID)
	if err != nil {
		if errors.Is(err, match.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, "Match not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get match: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateGPS handles PUT /api/match/:matchId/gps
func (h *MatchHandler) UpdateGPS(c echo.Context) error {
	matchID := c.Param("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "Match ID is required")
	}

	var req UpdateGPSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if !req.Role.IsValid() {
		return utils.BadRequestResponse(c, "role must be driver or passenger")
	}

	result, err := h.matchUC.UpdateGPS(c.Request().Context(), matchID, req.UserID, req.Role, req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, match.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, "Match not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to update GPS: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// CancelMatch handles DELETE /api/match/:matchId. Idempotent.
func (h *MatchHandler) CancelMatch(c echo.Context) error {
	matchID := c.Param("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "Match ID is required")
	}

	if err := h.matchUC.CancelMatch(c.Request().Context(), matchID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to cancel match: "+err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CompleteMatch handles POST /api/match/:matchId/complete. Idempotent
// no-op when the match is absent.
func (h *MatchHandler) CompleteMatch(c echo.Context) error {
	matchID := c.Param("matchId")
	if matchID == "" {
		return utils.BadRequestResponse(c, "Match ID is required")
	}

	if err := h.matchUC.CompleteMatch(c.Request().Context(), matchID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to complete match: "+err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
