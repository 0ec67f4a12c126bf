package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key"

func testAPIConfig() *config.APIConfig {
	return &config.APIConfig{
		Enabled:       true,
		ListenAddress: "127.0.0.1:0",
		APIKey:        testAPIKey,
		ReadTimeout:   common.NewDuration(5 * time.Second),
		WriteTimeout:  common.NewDuration(10 * time.Second),
		IdleTimeout:   common.NewDuration(60 * time.Second),
		CORS: config.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
		},
	}
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	cfg := testAPIConfig()
	cfg.ListenAddress = "localhost:8080"

	server := NewServer(cfg, mocks.NewController(t), logger.NewNopLogger())

	require.NotNil(t, server)
	require.NotNil(t, server.config)
	require.NotNil(t, server.controller)
	require.NotNil(t, server.handler)
	require.NotNil(t, server.server)
	require.NotNil(t, server.log)
	require.Equal(t, "localhost:8080", server.server.Addr)
	require.Equal(t, 5*time.Second, server.server.ReadTimeout)
	require.Equal(t, 10*time.Second, server.server.WriteTimeout)
	require.Equal(t, 60*time.Second, server.server.IdleTimeout)
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		apiKey         string
		setup          func(c *mocks.Controller)
		expectedStatus int
	}{
		{
			name:   "status under api prefix",
			method: http.MethodGet,
			path:   "/api/status",
			apiKey: testAPIKey,
			setup: func(c *mocks.Controller) {
				c.EXPECT().Status(mock.Anything).Return(coordinator.StatusSnapshot{Status: coordinator.StateRunning}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "status at root",
			method: http.MethodGet,
			path:   "/status",
			apiKey: testAPIKey,
			setup: func(c *mocks.Controller) {
				c.EXPECT().Status(mock.Anything).Return(coordinator.StatusSnapshot{Status: coordinator.StatePaused}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "pause under api prefix",
			method: http.MethodPost,
			path:   "/api/pause",
			apiKey: testAPIKey,
			setup: func(c *mocks.Controller) {
				c.EXPECT().Pause(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "paused"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "resume at root",
			method: http.MethodPost,
			path:   "/resume",
			apiKey: testAPIKey,
			setup: func(c *mocks.Controller) {
				c.EXPECT().Resume(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "resumed"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reindex at root",
			method: http.MethodPost,
			path:   "/reindex",
			apiKey: testAPIKey,
			setup: func(c *mocks.Controller) {
				c.EXPECT().Reindex(mock.Anything, coordinator.ReindexRequest{}).Return(coordinator.CommandResult{OK: true, Msg: "reindexing"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing api key",
			method:         http.MethodGet,
			path:           "/api/status",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong api key on command",
			method:         http.MethodPost,
			path:           "/pause",
			apiKey:         "nope",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "health without key",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			path:           "/api/pause",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/api/unknown",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "preflight without key",
			method:         http.MethodOptions,
			path:           "/api/reindex",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			controller := mocks.NewController(t)
			if tt.setup != nil {
				tt.setup(controller)
			}

			server := NewServer(testAPIConfig(), controller, logger.NewNopLogger())

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestServer_PreflightFollowsCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		corsEnabled    bool
		apiKey         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "answered by CORS without key",
			corsEnabled:    true,
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://dashboard.example",
		},
		{
			name:           "requires key without CORS",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not routed without CORS",
			apiKey:         testAPIKey,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testAPIConfig()
			cfg.CORS.Enabled = tt.corsEnabled

			server := NewServer(cfg, mocks.NewController(t), logger.NewNopLogger())

			req := httptest.NewRequest(http.MethodOptions, "/api/reindex", nil)
			req.Header.Set("Origin", "https://dashboard.example")
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}

			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_StartDisabled(t *testing.T) {
	t.Parallel()

	cfg := testAPIConfig()
	cfg.Enabled = false

	server := NewServer(cfg, mocks.NewController(t), logger.NewNopLogger())
	require.NoError(t, server.Start(context.Background()))
}

func TestServer_StartStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server := NewServer(testAPIConfig(), mocks.NewController(t), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_StartInvalidAddress(t *testing.T) {
	t.Parallel()

	cfg := testAPIConfig()
	cfg.ListenAddress = "invalid-address"

	server := NewServer(cfg, mocks.NewController(t), logger.NewNopLogger())

	err := server.Start(context.Background())
	require.ErrorContains(t, err, "API server error")
}
