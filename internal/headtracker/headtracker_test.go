package headtracker

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	rpcmocks "github.com/goran-ethernal/RangeIndexor/pkg/rpc/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T, finality string, confirmations uint64) (*Tracker, *rpcmocks.EthClient) {
	t.Helper()

	client := rpcmocks.NewEthClient(t)
	tracker, err := New(client, config.ChainConfig{
		Finality:      finality,
		Confirmations: confirmations,
		PollInterval:  common.NewDuration(10 * time.Millisecond),
		HeadTimeout:   common.NewDuration(50 * time.Millisecond),
	}, logger.NewNopLogger())
	require.NoError(t, err)

	return tracker, client
}

func TestNew_InvalidFinality(t *testing.T) {
	t.Parallel()

	_, err := New(rpcmocks.NewEthClient(t), config.ChainConfig{Finality: "pending"}, logger.NewNopLogger())
	require.ErrorContains(t, err, "invalid block finality")
}

func TestTracker_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		finality      string
		confirmations uint64
		setup         func(client *rpcmocks.EthClient)
		expected      uint64
	}{
		{
			name:          "latest minus confirmations",
			finality:      "latest",
			confirmations: 32,
			setup: func(client *rpcmocks.EthClient) {
				client.EXPECT().BlockNumber(mock.Anything).Return(uint64(125902032), nil).Once()
			},
			expected: 125902000,
		},
		{
			name:          "confirmations above head saturate",
			finality:      "latest",
			confirmations: 100,
			setup: func(client *rpcmocks.EthClient) {
				client.EXPECT().BlockNumber(mock.Anything).Return(uint64(10), nil).Once()
			},
			expected: 0,
		},
		{
			name:     "finalized",
			finality: "finalized",
			setup: func(client *rpcmocks.EthClient) {
				client.EXPECT().GetFinalizedBlockHeader(mock.Anything).
					Return(&types.Header{Number: big.NewInt(900)}, nil).Once()
			},
			expected: 900,
		},
		{
			name:     "safe",
			finality: "safe",
			setup: func(client *rpcmocks.EthClient) {
				client.EXPECT().GetSafeBlockHeader(mock.Anything).
					Return(&types.Header{Number: big.NewInt(950)}, nil).Once()
			},
			expected: 950,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tracker, client := newTestTracker(t, tt.finality, tt.confirmations)
			tt.setup(client)

			require.False(t, tracker.CurrentHead().Known())

			head, err := tracker.Refresh(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.expected, head.Number)
			require.False(t, head.Stale)
			require.True(t, head.Known())
			require.Equal(t, head, tracker.CurrentHead())
		})
	}
}

func TestTracker_RefreshFailureKeepsLastHead(t *testing.T) {
	t.Parallel()

	tracker, client := newTestTracker(t, "latest", 0)

	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(900), nil).Once()
	_, err := tracker.Refresh(context.Background())
	require.NoError(t, err)

	rpcErr := errors.New("connection refused")
	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(0), rpcErr).Once()

	head, err := tracker.Refresh(context.Background())
	require.Error(t, err)

	var headErr *coordinator.HeadUnavailableError
	require.ErrorAs(t, err, &headErr)
	require.ErrorIs(t, err, rpcErr)

	require.Equal(t, uint64(900), head.Number)
	require.True(t, head.Stale)
	require.ErrorIs(t, head.Err, rpcErr)
	require.True(t, tracker.CurrentHead().Stale)

	// a successful lookup clears the stale flag
	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(901), nil).Once()
	head, err = tracker.Refresh(context.Background())
	require.NoError(t, err)
	require.False(t, head.Stale)
	require.NoError(t, head.Err)
	require.Equal(t, uint64(901), head.Number)
}

func TestTracker_RefreshTimeout(t *testing.T) {
	t.Parallel()

	tracker, client := newTestTracker(t, "latest", 0)

	client.EXPECT().BlockNumber(mock.Anything).RunAndReturn(func(ctx context.Context) (uint64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}).Once()

	start := time.Now()
	head, err := tracker.Refresh(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, head.Stale)
	require.Less(t, time.Since(start), time.Second)
}

func TestTracker_HeadNeverMovesBackwards(t *testing.T) {
	t.Parallel()

	tracker, client := newTestTracker(t, "latest", 0)

	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(1000), nil).Once()
	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(998), nil).Once()

	_, err := tracker.Refresh(context.Background())
	require.NoError(t, err)

	head, err := tracker.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(1000), head.Number)
}

func TestTracker_Start(t *testing.T) {
	t.Parallel()

	tracker, client := newTestTracker(t, "latest", 0)
	client.EXPECT().BlockNumber(mock.Anything).Return(uint64(42), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tracker.Start(ctx) }()

	require.Eventually(t, func() bool {
		return tracker.CurrentHead().Number == 42
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestParseFinality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Finality
		wantErr bool
	}{
		{in: "finalized", want: FinalityFinalized},
		{in: " Safe ", want: FinalitySafe},
		{in: "latest", want: FinalityLatest},
		{in: "", want: FinalityLatest},
		{in: "pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFinality(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, "invalid block finality")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
