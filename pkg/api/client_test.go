package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClientServer(t *testing.T, controller coordinator.Controller) string {
	t.Helper()

	server := NewServer(testAPIConfig(), controller, logger.NewNopLogger())
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return ts.URL
}

func TestClient_Commands(t *testing.T) {
	t.Parallel()

	controller := mocks.NewController(t)
	controller.EXPECT().Status(mock.Anything).Return(coordinator.StatusSnapshot{
		Status:    coordinator.StateRunning,
		LastBlock: 1000,
		Head:      1668,
		Behind:    668,
	}, nil).Once()
	controller.EXPECT().Pause(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "paused"}, nil).Once()
	controller.EXPECT().Resume(mock.Anything).Return(coordinator.CommandResult{OK: true, Msg: "resumed"}, nil).Once()
	controller.EXPECT().Reindex(mock.Anything, coordinator.ReindexRequest{From: ptr(uint64(200))}).
		Return(coordinator.CommandResult{OK: true, Msg: "reindexing"}, nil).Once()

	client := NewClient(newClientServer(t, controller)+"/", testAPIKey)
	ctx := context.Background()

	snapshot, err := client.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, coordinator.StateRunning, snapshot.Status)
	require.Equal(t, uint64(668), snapshot.Behind)

	result, err := client.Pause(ctx)
	require.NoError(t, err)
	require.Equal(t, "paused", result.Msg)

	result, err = client.Resume(ctx)
	require.NoError(t, err)
	require.Equal(t, "resumed", result.Msg)

	result, err = client.Reindex(ctx, coordinator.ReindexRequest{From: ptr(uint64(200))})
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, "reindexing", result.Msg)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bad api key", func(t *testing.T) {
		t.Parallel()

		client := NewClient(newClientServer(t, mocks.NewController(t)), "wrong")

		_, err := client.Status(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("conflict", func(t *testing.T) {
		t.Parallel()

		controller := mocks.NewController(t)
		controller.EXPECT().Reindex(mock.Anything, coordinator.ReindexRequest{Strategy: ptr("transfers")}).
			Return(coordinator.CommandResult{}, coordinator.NewReindexConflictError("transfers")).Once()

		client := NewClient(newClientServer(t, controller), testAPIKey)

		_, err := client.Reindex(context.Background(), coordinator.ReindexRequest{Strategy: ptr("transfers")})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "transfers")
	})

	t.Run("server unreachable", func(t *testing.T) {
		t.Parallel()

		client := NewClient("http://127.0.0.1:1", testAPIKey)

		_, err := client.Pause(context.Background())
		require.Error(t, err)

		var apiErr *APIError
		require.False(t, errors.As(err, &apiErr))
	})
}
