package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockNetError implements net.Error for testing
type mockNetError struct {
	msg     string
	timeout bool
}

func (e *mockNetError) Error() string   { return e.msg }
func (e *mockNetError) Timeout() bool   { return e.timeout }
func (e *mockNetError) Temporary() bool { return false }

func fastRetryConfig(attempts int) *config.RetryConfig {
	return &config.RetryConfig{
		MaxAttempts:       attempts,
		InitialBackoff:    common.NewDuration(10 * time.Millisecond),
		MaxBackoff:        common.NewDuration(100 * time.Millisecond),
		BackoffMultiplier: 2.0,
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil error", err: nil, retryable: false},
		{name: "network error", err: &mockNetError{msg: "network timeout", timeout: true}, retryable: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, retryable: true},
		{name: "connection reset", err: syscall.ECONNRESET, retryable: true},
		{name: "broken pipe", err: syscall.EPIPE, retryable: true},
		{name: "timeout string", err: errors.New("operation timeout"), retryable: true},
		{name: "context deadline exceeded", err: context.DeadlineExceeded, retryable: true},
		{name: "context canceled", err: context.Canceled, retryable: false},
		{name: "rate limit 429", err: errors.New("HTTP 429"), retryable: true},
		{name: "rate limit", err: errors.New("rate limit exceeded"), retryable: true},
		{name: "500 internal server error", err: errors.New("500 Internal Server Error"), retryable: true},
		{name: "502 bad gateway", err: errors.New("502 bad gateway"), retryable: true},
		{name: "503 service unavailable", err: errors.New("503 Service Unavailable"), retryable: true},
		{name: "504 gateway timeout", err: errors.New("504 Gateway Timeout"), retryable: true},
		{name: "connection pool exhausted", err: errors.New("connection pool exhausted"), retryable: true},
		{name: "wrapped retryable", err: fmt.Errorf("get logs: %w", syscall.ECONNRESET), retryable: true},
		{name: "invalid parameter", err: errors.New("invalid parameter"), retryable: false},
		{name: "authentication failed", err: errors.New("401 Unauthorized"), retryable: false},
		{name: "bad request", err: errors.New("400 Bad Request"), retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	cfg := &config.RetryConfig{
		InitialBackoff:    common.NewDuration(1 * time.Second),
		MaxBackoff:        common.NewDuration(30 * time.Second),
		BackoffMultiplier: 2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 0},
		{attempt: 2, base: 1 * time.Second},
		{attempt: 3, base: 2 * time.Second},
		{attempt: 4, base: 4 * time.Second},
		{attempt: 10, base: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			backoff := calculateBackoff(tt.attempt, cfg)
			if tt.base == 0 {
				require.Zero(t, backoff)
				return
			}

			jitter := time.Duration(float64(tt.base) * 0.25)
			require.GreaterOrEqual(t, backoff, tt.base-jitter)
			require.LessOrEqual(t, backoff, tt.base+jitter)
		})
	}
}

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("success on first attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := Do(context.Background(), fastRetryConfig(3), "test", func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("success after retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := Do(context.Background(), fastRetryConfig(3), "test", func() error {
			calls++
			if calls < 3 {
				return errors.New("503 service unavailable")
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := Do(context.Background(), fastRetryConfig(3), "test", func() error {
			calls++
			return errors.New("invalid parameter")
		})
		require.ErrorContains(t, err, "non-retryable error on attempt 1/3")
		require.Equal(t, 1, calls)
	})

	t.Run("exhausted retries", func(t *testing.T) {
		t.Parallel()

		calls := 0
		lastErr := errors.New("timeout")
		err := Do(context.Background(), fastRetryConfig(3), "test", func() error {
			calls++
			return lastErr
		})
		require.ErrorIs(t, err, lastErr)
		require.ErrorContains(t, err, "all 3 attempts failed")
		require.Equal(t, 3, calls)
	})

	t.Run("context cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := Do(ctx, fastRetryConfig(3), "test", func() error {
			calls++
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, calls)
	})

	t.Run("nil config executes once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := Do(context.Background(), nil, "test", func() error {
			calls++
			return errors.New("timeout")
		})
		require.ErrorContains(t, err, "timeout")
		require.Equal(t, 1, calls)
	})
}

func TestDoIf_CustomPredicate(t *testing.T) {
	t.Parallel()

	errRetry := errors.New("retry me")
	calls := 0

	err := DoIf(context.Background(), fastRetryConfig(4), "test",
		func(err error) bool { return errors.Is(err, errRetry) },
		func() error {
			calls++
			if calls < 2 {
				return errRetry
			}
			return nil
		})

	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
