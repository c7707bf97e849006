package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

func floatPtr(v float64) *float64 { return &v }

func newTestGateway(url string) *MLGateway {
	cfg := &models.Config{}
	cfg.MLService.URL = url
	cfg.MLService.TimeoutSeconds = 5
	return NewMLGateway(cfg)
}

func TestMLGatewayDetect(t *testing.T) {
	t.Run("Forwards Image And GPS Fields", func(t *testing.T) {
		var gotPath string
		var gotImage []byte
		var gotFields map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "gate.jpg", header.Filename)
			gotImage, _ = io.ReadAll(file)

			gotFields = map[string]string{
				"user_mode":        r.FormValue("user_mode"),
				"driver_latitude":  r.FormValue("driver_latitude"),
				"driver_longitude": r.FormValue("driver_longitude"),
			}

			json.NewEncoder(w).Encode(models.MLDetectResponse{
				Detections: []models.BoundingBox{
					{X1: 10, Y1: 20, X2: 110, Y2: 220, Confidence: 0.93, ClassName: "door", ClassID: 2},
				},
				Instruction:    "Pickup at door 3",
				ImageWidth:     640,
				ImageHeight:    480,
				DistanceMeters: floatPtr(42.5),
			})
		}))
		defer server.Close()

		gw := newTestGateway(server.URL)

		req := models.DetectRequest{
			UserMode:        "driver",
			DriverLatitude:  floatPtr(1.3644),
			DriverLongitude: floatPtr(103.9915),
		}
		result, err := gw.Detect(context.Background(), []byte("jpeg-bytes"), "gate.jpg", req)
		require.NoError(t, err)

		assert.Equal(t, "/detect", gotPath)
		assert.Equal(t, []byte("jpeg-bytes"), gotImage)
		assert.Equal(t, "driver", gotFields["user_mode"])
		assert.Equal(t, "1.3644", gotFields["driver_latitude"])
		assert.Equal(t, "103.9915", gotFields["driver_longitude"])

		require.Len(t, result.Detections, 1)
		assert.Equal(t, "door", result.Detections[0].ClassName)
		assert.Equal(t, "Pickup at door 3", result.Instruction)
		assert.Equal(t, 42.5, *result.DistanceMeters)
	})

	t.Run("Omits Absent Optional Fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, hasUserMode := r.MultipartForm.Value["user_mode"]
			_, hasDriverLat := r.MultipartForm.Value["driver_latitude"]
			assert.False(t, hasUserMode)
			assert.False(t, hasDriverLat)

			json.NewEncoder(w).Encode(models.MLDetectResponse{Instruction: "No objects detected"})
		}))
		defer server.Close()

		gw := newTestGateway(server.URL)

		result, err := gw.Detect(context.Background(), []byte("jpeg-bytes"), "gate.jpg", models.DetectRequest{})
		require.NoError(t, err)
		assert.Empty(t, result.Detections)
		assert.Nil(t, result.DistanceMeters)
	})

	t.Run("Non-200 Response Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		gw := newTestGateway(server.URL)

		result, err := gw.Detect(context.Background(), []byte("jpeg-bytes"), "gate.jpg", models.DetectRequest{})
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "503")
	})
}
