package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestServer_Handler(t *testing.T) {
	t.Parallel()

	BatchLog("transfers", "forward", 100, 7, 5, time.Second)
	ControlStateLog("paused", []string{"running", "paused", "reindexing"})
	UpdateSystemMetrics()

	srv := NewServer(&config.MetricsConfig{Enabled: true, ListenAddress: ":0", Path: "/metrics"},
		logger.NewNopLogger())

	tests := []struct {
		path     string
		contains []string
	}{
		{path: "/health", contains: []string{"OK"}},
		{
			path: "/metrics",
			contains: []string{
				`rangeindexor_blocks_processed_total{mode="forward",strategy="transfers"}`,
				`rangeindexor_control_state{state="paused"} 1`,
				`rangeindexor_control_state{state="running"} 0`,
				"rangeindexor_uptime_seconds",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			body, err := io.ReadAll(rec.Body)
			require.NoError(t, err)
			for _, s := range tt.contains {
				require.True(t, strings.Contains(string(body), s), "missing %q", s)
			}
		})
	}
}

func TestServer_Disabled(t *testing.T) {
	t.Parallel()

	srv := NewServer(&config.MetricsConfig{Enabled: false}, logger.NewNopLogger())
	require.NoError(t, srv.Start(context.Background()))
	require.NoError(t, srv.Stop(context.Background()))
}

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer(&config.MetricsConfig{Enabled: true, ListenAddress: "127.0.0.1:0", Path: "/metrics"},
		logger.NewNopLogger())
	require.NoError(t, srv.Start(ctx))
	require.NoError(t, srv.Stop(context.Background()))
}
