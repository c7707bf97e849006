package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/instruction"
	"github.com/harlanda/taxiway/services/instruction/mocks"
)

func setupInstructionHandlerTest(t *testing.T) (*InstructionHandler, *mocks.MockInstructionUC, *echo.Echo, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInstructionUC(ctrl)
	handler := NewInstructionHandler(mockUC)
	e := echo.New()
	return handler, mockUC, e, ctrl.Finish
}

func TestCreateInstructionHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		body := `{"matchId":"match-1","content":"Pickup at door 3","detectionData":[{"class_name":"door"}],"imageWidth":640,"imageHeight":480}`
		req := httptest.NewRequest(http.MethodPost, "/api/instruction/create", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		created := &models.Instruction{
			ID:      "instr-1",
			MatchID: "match-1",
			Content: "Pickup at door 3",
		}
		mockUC.EXPECT().
			Create(gomock.Any(), "match-1", "Pickup at door 3", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(created, nil)

		err := handler.CreateInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Instruction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "instr-1", got.ID)
	})

	t.Run("Missing Content", func(t *testing.T) {
		handler, _, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		body := `{"matchId":"match-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/instruction/create", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.CreateInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSendInstructionHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/instruction/:id/send")
		c.SetParamNames("id")
		c.SetParamValues("instr-1")

		sent := &models.Instruction{ID: "instr-1", SentToPassenger: true}
		mockUC.EXPECT().Send(gomock.Any(), "instr-1").Return(sent, nil)

		err := handler.SendInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Instruction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.SentToPassenger)
	})

	t.Run("Not Found", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/instruction/:id/send")
		c.SetParamNames("id")
		c.SetParamValues("missing")

		mockUC.EXPECT().Send(gomock.Any(), "missing").Return(nil, instruction.ErrInstructionNotFound)

		err := handler.SendInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelInstructionHandler(t *testing.T) {
	handler, mockUC, e, finish := setupInstructionHandlerTest(t)
	defer finish()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/instruction/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues("instr-1")

	mockUC.EXPECT().Cancel(gomock.Any(), "instr-1").Return(nil)

	err := handler.CancelInstruction(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestGetPendingInstructionHandler(t *testing.T) {
	t.Run("Nothing Sent Yet Returns Waiting", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/pending?matchId=match-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockUC.EXPECT().GetPending(gomock.Any(), "match-1").Return(nil, nil)

		err := handler.GetPendingInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"waiting"}`, rec.Body.String())
	})

	t.Run("Sent Instruction Returned", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/pending?matchId=match-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		pending := &models.Instruction{ID: "instr-1", MatchID: "match-1", SentToPassenger: true}
		mockUC.EXPECT().GetPending(gomock.Any(), "match-1").Return(pending, nil)

		err := handler.GetPendingInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Instruction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "instr-1", got.ID)
	})

	t.Run("Missing MatchID", func(t *testing.T) {
		handler, _, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/pending", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetPendingInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetLatestInstructionHandler(t *testing.T) {
	t.Run("Absence Renders JSON Null", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/latest?matchId=match-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockUC.EXPECT().GetLatest(gomock.Any(), "match-1").Return(nil, nil)

		err := handler.GetLatestInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})
}

func TestGetUnsentInstructionHandler(t *testing.T) {
	t.Run("Unsent Instruction Returned", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/unsent?matchId=match-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		unsent := &models.Instruction{ID: "instr-3", MatchID: "match-1"}
		mockUC.EXPECT().GetUnsent(gomock.Any(), "match-1").Return(unsent, nil)

		err := handler.GetUnsentInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.Instruction
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "instr-3", got.ID)
	})

	t.Run("Absence Renders JSON Null", func(t *testing.T) {
		handler, mockUC, e, finish := setupInstructionHandlerTest(t)
		defer finish()

		req := httptest.NewRequest(http.MethodGet, "/api/instruction/unsent?matchId=match-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockUC.EXPECT().GetUnsent(gomock.Any(), "match-1").Return(nil, nil)

		err := handler.GetUnsentInstruction(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})
}
