package resilience

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/conference-booking/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry runs op up to maxAttempts times, each attempt bounded by the
// guard timeout, sleeping with exponential backoff between attempts.
func (g *Guard) doWithRetry(ctx context.Context, operation string, maxAttempts int, op func(context.Context) error) error {
	if maxAttempts <= 0 {
		return fmt.Errorf("resilience: maxAttempts must be >= 1, got %d", maxAttempts)
	}

	var lastErr error

	for attempt := range maxAttempts {
		if attempt > 0 {
			if err := g.waitForRetry(ctx, operation, attempt, maxAttempts, lastErr); err != nil {
				return err
			}
		}

		lastErr = g.attempt(ctx, op)
		if lastErr == nil {
			return nil
		}
		if !g.isRetryable(ctx, lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// attempt runs op once under the per-attempt timeout.
func (g *Guard) attempt(ctx context.Context, op func(context.Context) error) error {
	if g.timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return op(attemptCtx)
}

// isRetryable decides whether a failed attempt may be repeated. Nothing is
// retried once the caller's context is done. An attempt that hit its own
// timeout is retried; other errors are retried only when the classifier
// marks them transient.
func (g *Guard) isRetryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return g.transient(err)
}

// waitForRetry calculates the backoff delay, logs the retry attempt at WARN
// level, and waits for the delay or context cancellation.
func (g *Guard) waitForRetry(ctx context.Context, operation string, attempt, maxAttempts int, lastErr error) error {
	delay := backoff(attempt, g.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying datastore operation",
		slog.String("operation", operation),
		slog.String("db_system", g.system),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
