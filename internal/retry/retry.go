package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/goran-ethernal/RangeIndexor/pkg/config"
)

var retryableFragments = []string{
	// timeouts
	"timeout",
	"timed out",
	"deadline exceeded",
	// rate limiting
	"429",
	"too many requests",
	"rate limit",
	// temporary server errors
	"500 internal server error",
	"502",
	"503",
	"504",
	"bad gateway",
	"service unavailable",
	"gateway timeout",
	// connection problems
	"connection refused",
	"connection reset",
	"broken pipe",
	"eof",
	"connection pool",
	"no available connection",
}

// IsRetryable reports whether an error is transient and the operation may be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, fragment := range retryableFragments {
		if strings.Contains(errStr, fragment) {
			return true
		}
	}

	return false
}

// calculateBackoff computes the backoff duration for a given attempt with ±25% jitter.
func calculateBackoff(attempt int, cfg *config.RetryConfig) time.Duration {
	if attempt <= 1 {
		return 0
	}

	backoff := float64(cfg.InitialBackoff.Duration) * math.Pow(cfg.BackoffMultiplier, float64(attempt-2))
	if backoff > float64(cfg.MaxBackoff.Duration) {
		backoff = float64(cfg.MaxBackoff.Duration)
	}

	jitterRange := backoff * 0.25 //nolint:mnd
	backoff += (rand.Float64() * 2 * jitterRange) - jitterRange //nolint:gosec

	return time.Duration(max(backoff, 0))
}

// Do executes fn, retrying transient failures with exponential backoff.
func Do(ctx context.Context, cfg *config.RetryConfig, operation string, fn func() error) error {
	return DoIf(ctx, cfg, operation, IsRetryable, fn)
}

// DoIf is Do with a caller supplied retry predicate.
// A nil cfg executes fn exactly once.
func DoIf(
	ctx context.Context,
	cfg *config.RetryConfig,
	operation string,
	shouldRetry func(error) bool,
	fn func() error,
) error {
	if cfg == nil {
		return fn()
	}

	var lastErr error
	startTime := time.Now()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled before attempt %d: %w", attempt, err)
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !shouldRetry(err) {
			return fmt.Errorf("non-retryable error on attempt %d/%d: %w", attempt, cfg.MaxAttempts, err)
		}

		if attempt >= cfg.MaxAttempts {
			break
		}

		// backoff before the next attempt
		if backoffDuration := calculateBackoff(attempt+1, cfg); backoffDuration > 0 {
			timer := time.NewTimer(backoffDuration)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("context cancelled during backoff (attempt %d/%d): %w",
					attempt, cfg.MaxAttempts, ctx.Err())
			}
		}

		RetryInc(operation)
	}

	return fmt.Errorf("all %d attempts failed after %v (last error: %w)",
		cfg.MaxAttempts, time.Since(startTime), lastErr)
}
