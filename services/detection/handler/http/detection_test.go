package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/detection"
	"github.com/harlanda/taxiway/services/detection/mocks"
)

func setupDetectionHandlerTest(t *testing.T) (*DetectionHandler, *mocks.MockDetectionUC, *echo.Echo, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDetectionUC(ctrl)
	handler := NewDetectionHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e, ctrl.Finish
}

func multipartImageRequest(t *testing.T, fields map[string]string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "gate.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/detection/detect", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestDetectHandler(t *testing.T) {
	t.Run("Success With GPS Fields", func(t *testing.T) {
		handler, mockUC, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := multipartImageRequest(t, map[string]string{
			"user_mode":        "driver",
			"driver_latitude":  "1.3644",
			"driver_longitude": "103.9915",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		stored := &models.Detection{ID: "det-1", Instruction: "Pickup at door 3"}
		mockUC.EXPECT().
			Detect(gomock.Any(), []byte("jpeg-bytes"), "gate.jpg", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ []byte, _ string, detectReq models.DetectRequest) (*models.Detection, error) {
				assert.Equal(t, "driver", detectReq.UserMode)
				require.NotNil(t, detectReq.DriverLatitude)
				assert.Equal(t, 1.3644, *detectReq.DriverLatitude)
				assert.Nil(t, detectReq.PassengerLatitude)
				return stored, nil
			})

		err := handler.Detect(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Detection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "det-1", got.ID)
	})

	t.Run("Missing Image", func(t *testing.T) {
		handler, _, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodPost, "/api/detection/detect", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Detect(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed GPS Field", func(t *testing.T) {
		handler, _, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := multipartImageRequest(t, map[string]string{
			"driver_latitude": "not-a-number",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Detect(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetHistoryHandler(t *testing.T) {
	t.Run("Limit Passed Through", func(t *testing.T) {
		handler, mockUC, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/detection/history?limit=5", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockUC.EXPECT().GetHistory(gomock.Any(), 5).Return([]*models.Detection{{ID: "det-1"}}, nil)

		err := handler.GetHistory(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.Detection
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "det-1", got[0].ID)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		handler, _, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/detection/history?limit=abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetHistory(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDetectionHandler(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		handler, mockUC, e, finish := setupDetectionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/detection/:id")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		mockUC.EXPECT().GetDetection(gomock.Any(), "missing").Return(nil, detection.ErrDetectionNotFound)

		err := handler.GetDetection(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
