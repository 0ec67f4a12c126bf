package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	handler := NewHandler(mocks.NewController(t), logger.NewNopLogger())

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)
	require.False(t, resp.Timestamp.IsZero())
}

func TestHandler_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		snapshot       coordinator.StatusSnapshot
		err            error
		expectedStatus int
		validate       func(t *testing.T, body map[string]any)
	}{
		{
			name: "running without index",
			snapshot: coordinator.StatusSnapshot{
				Status:    coordinator.StateRunning,
				LastBlock: 1000,
				Head:      1668,
				Behind:    668,
				Strategies: []coordinator.StrategyProgress{
					{Name: "transfers", FromBlock: 100, ToBlock: 1000, Behind: 668, Indexed: true},
				},
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				t.Helper()

				require.Equal(t, "running", body["status"])
				require.InDelta(t, 1000, body["last_block"], 0)
				require.InDelta(t, 668, body["behind"], 0)
				require.NotContains(t, body, "index")
				require.NotContains(t, body, "last_error")
			},
		},
		{
			name: "reindex calculating",
			snapshot: coordinator.StatusSnapshot{
				Status: coordinator.StateReindexing,
				Head:   900,
				Index:  &coordinator.IndexProgress{IsReindex: true, Calculating: true, Strategy: "transfers"},
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				t.Helper()

				require.Equal(t, "reindexing", body["status"])
				index, ok := body["index"].(map[string]any)
				require.True(t, ok)
				require.InDelta(t, 0, index["from"], 0)
				require.InDelta(t, 0, index["to"], 0)
				require.Equal(t, true, index["is_reindex"])
				require.Equal(t, true, index["calculating"])
			},
		},
		{
			name:           "controller error",
			err:            errors.New("database is locked"),
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				t.Helper()

				require.Equal(t, "database is locked", body["message"])
				require.InDelta(t, 500, body["code"], 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			controller := mocks.NewController(t)
			controller.EXPECT().Status(mock.Anything).Return(tt.snapshot, tt.err).Once()

			handler := NewHandler(controller, logger.NewNopLogger())

			w := httptest.NewRecorder()
			handler.Status(w, httptest.NewRequest(http.MethodGet, "/status", nil))

			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}

func TestHandler_PauseResume(t *testing.T) {
	t.Parallel()

	controller := mocks.NewController(t)
	controller.EXPECT().Pause(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "paused"}, nil).Once()
	controller.EXPECT().Resume(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "resumed"}, nil).Once()

	handler := NewHandler(controller, logger.NewNopLogger())

	w := httptest.NewRecorder()
	handler.Pause(w, httptest.NewRequest(http.MethodPost, "/pause", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true,"msg":"paused"}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.Resume(w, httptest.NewRequest(http.MethodPost, "/resume", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true,"msg":"resumed"}`, w.Body.String())
}

func TestHandler_Reindex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedReq    *coordinator.ReindexRequest
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "empty body reindexes everything",
			body:           "",
			expectedReq:    &coordinator.ReindexRequest{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"msg":"reindexing"}`,
		},
		{
			name:           "empty object",
			body:           "{}",
			expectedReq:    &coordinator.ReindexRequest{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"msg":"reindexing"}`,
		},
		{
			name:           "full request",
			body:           `{"from":200,"to":300,"strategy":"transfers"}`,
			expectedReq:    &coordinator.ReindexRequest{From: ptr(uint64(200)), To: ptr(uint64(300)), Strategy: ptr("transfers")},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"msg":"reindexing"}`,
		},
		{
			name:           "malformed json",
			body:           `{"from":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative block",
			body:           `{"from":-1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "from above to",
			body:           `{"from":300,"to":200}`,
			expectedReq:    &coordinator.ReindexRequest{From: ptr(uint64(300)), To: ptr(uint64(200))},
			err:            coordinator.NewValidationError("from", "from 300 is greater than to 200"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown strategy",
			body:           `{"strategy":"missing"}`,
			expectedReq:    &coordinator.ReindexRequest{Strategy: ptr("missing")},
			err:            coordinator.NewValidationError("strategy", `unknown strategy "missing"`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "already reindexing",
			body:           `{"strategy":"transfers"}`,
			expectedReq:    &coordinator.ReindexRequest{Strategy: ptr("transfers")},
			err:            coordinator.NewReindexConflictError("transfers"),
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			controller := mocks.NewController(t)
			if tt.expectedReq != nil {
				result := coordinator.CommandResult{OK: true, Msg: "reindexing"}
				if tt.err != nil {
					result = coordinator.CommandResult{}
				}
				controller.EXPECT().Reindex(mock.Anything, *tt.expectedReq).Return(result, tt.err).Once()
			}

			handler := NewHandler(controller, logger.NewNopLogger())

			w := httptest.NewRecorder()
			handler.Reindex(w, httptest.NewRequest(http.MethodPost, "/reindex", strings.NewReader(tt.body)))

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				require.JSONEq(t, tt.expectedBody, w.Body.String())
			} else {
				resp := decodeError(t, w)
				require.Equal(t, tt.expectedStatus, resp.Code)
				require.NotEmpty(t, resp.Message)
			}
		})
	}
}

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: &AuthenticationError{Reason: "missing"}, want: http.StatusUnauthorized},
		{err: coordinator.NewValidationError("from", "bad"), want: http.StatusBadRequest},
		{err: coordinator.NewReindexConflictError("x"), want: http.StatusConflict},
		{err: coordinator.NewHeadUnavailableError(context.DeadlineExceeded), want: http.StatusServiceUnavailable},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.want), func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
