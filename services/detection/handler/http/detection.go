package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/internal/utils"
	"github.com/harlanda/taxiway/services/detection"
	"github.com/labstack/echo/v4"
)

// Images larger than this are rejected before the detection call
const maxImageBytes = 10 << 20

// DetectionHandler handles HTTP requests for detection operations
type DetectionHandler struct {
	detectionUC detection.DetectionUC
}

// NewDetectionHandler creates a new detection HTTP handler
func NewDetectionHandler(detectionUC detection.DetectionUC) *DetectionHandler {
	return &DetectionHandler{
		detectionUC: detectionUC,
	}
}

// Detect handles POST /api/detection/detect. Accepts a multipart image plus
// optional user_mode and per-role GPS form fields.
func (h *DetectionHandler) Detect(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "image file is required")
	}
	if fileHeader.Size > maxImageBytes {
		return utils.BadRequestResponse(c, "image exceeds maximum size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to open image: "+err.Error())
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read image: "+err.Error())
	}

	req := models.DetectRequest{
		UserMode: c.FormValue("user_mode"),
	}
	req.DriverLatitude, err = parseOptionalFloat(c.FormValue("driver_latitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver_latitude must be a number")
	}
	req.DriverLongitude, err = parseOptionalFloat(c.FormValue("driver_longitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "driver_longitude must be a number")
	}
	req.PassengerLatitude, err = parseOptionalFloat(c.FormValue("passenger_latitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "passenger_latitude must be a number")
	}
	req.PassengerLongitude, err = parseOptionalFloat(c.FormValue("passenger_longitude"))
	if err != nil {
		return utils.BadRequestResponse(c, "passenger_longitude must be a number")
	}

	result, err := h.detectionUC.Detect(c.Request().Context(), image, fileHeader.Filename, req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to run detection: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetHistory handles GET /api/detection/history
func (h *DetectionHandler) GetHistory(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		limit = parsed
	}

	result, err := h.detectionUC.GetHistory(c.Request().Context(), limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get detection history: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// GetDetection handles GET /api/detection/:id
func (h *DetectionHandler) GetDetection(c echo.Context) error {
	detectionID := c.Param("id")
	if detectionID == "" {
		return utils.BadRequestResponse(c, "Detection ID is required")
	}

	result, err := h.detectionUC.GetDetection(c.Request().Context(), detectionID)
	if err != nil {
		if errors.Is(err, detection.ErrDetectionNotFound) {
			return utils.NotFoundResponse(c, "Detection not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get detection: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
