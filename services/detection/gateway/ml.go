package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

// MLGateway forwards images to the external detection service over HTTP
type MLGateway struct {
	baseURL string
	client  *http.Client
}

// NewMLGateway creates a new detection service gateway
func NewMLGateway(cfg *models.Config) *MLGateway {
	return &MLGateway{
		baseURL: cfg.MLService.URL,
		client: &http.Client{
			Timeout: time.Duration(cfg.MLService.TimeoutSeconds) * time.Second,
		},
	}
}

// Detect sends the image as multipart form data with the optional GPS
// context fields and decodes the detection result.
func (g *MLGateway) Detect(ctx context.Context, image []byte, filename string, req models.DetectRequest) (*models.MLDetectResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	if req.UserMode != "" {
		if err := writer.WriteField("user_mode", req.UserMode); err != nil {
			return nil, fmt.Errorf("failed to write user_mode field: %w", err)
		}
	}
	fields := map[string]*float64{
		"driver_latitude":     req.DriverLatitude,
		"driver_longitude":    req.DriverLongitude,
		"passenger_latitude":  req.PassengerLatitude,
		"passenger_longitude": req.PassengerLongitude,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := writer.WriteField(name, strconv.FormatFloat(*value, 'f', -1, 64)); err != nil {
			return nil, fmt.Errorf("failed to write %s field: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/detect", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build detection request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("detection service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("detection service returned status %d: %s", resp.StatusCode, string(payload))
	}

	var result models.MLDetectResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode detection response: %w", err)
	}

	return &result, nil
}
