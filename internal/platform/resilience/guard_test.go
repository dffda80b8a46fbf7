package resilience_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
	"github.com/jsamuelsen11/conference-booking/internal/platform/resilience"
	"github.com/jsamuelsen11/conference-booking/internal/platform/telemetry"
)

var errTransient = errors.New("connection reset by peer")

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func testConfig() *config.DatastoreConfig {
	return &config.DatastoreConfig{
		Timeout: time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	var calls atomic.Int32
	err := g.Do(context.Background(), "conferences.find", func(context.Context) error {
		calls.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	var calls atomic.Int32
	err := g.Do(context.Background(), "bookings.insert", func(context.Context) error {
		if calls.Add(1) < 3 {
			return errTransient
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want success on third attempt", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDo_DoesNotRetryPermanentErrors(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "postgres", isTransient, nil, nil)
	errPermanent := errors.New("syntax error at or near")

	var calls atomic.Int32
	err := g.Do(context.Background(), "conferences.update", func(context.Context) error {
		calls.Add(1)
		return errPermanent
	})
	if !errors.Is(err, errPermanent) {
		t.Fatalf("Do() error = %v, want %v", err, errPermanent)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", calls.Load())
	}
}

func TestDo_MaxAttemptsExhausted(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	var calls atomic.Int32
	err := g.Do(context.Background(), "conferences.find", func(context.Context) error {
		calls.Add(1)
		return errTransient
	})
	if !errors.Is(err, errTransient) {
		t.Fatalf("Do() error = %v, want %v", err, errTransient)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDo_AttemptTimeoutIsRetried(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond
	g := resilience.New(cfg, "mongo", nil, nil, nil)

	var calls atomic.Int32
	err := g.Do(context.Background(), "conferences.find", func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			<-ctx.Done()
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want success after a timed-out attempt", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestDo_NonIdempotentTimeoutIsNotRetried(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond
	g := resilience.New(cfg, "postgres", isTransient, nil, nil)

	var calls atomic.Int32
	var stored atomic.Bool
	errDuplicate := errors.New("duplicate key")

	err := g.Do(context.Background(), "bookings.insert", func(ctx context.Context) error {
		if calls.Add(1) > 1 {
			return errDuplicate
		}
		stored.Store(true)
		<-ctx.Done()
		return ctx.Err()
	}, resilience.NonIdempotent())

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Do() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", calls.Load())
	}
	if !stored.Load() {
		t.Error("first attempt did not run")
	}
}

func TestDo_NonIdempotentTransientIsNotRetried(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	var calls atomic.Int32
	err := g.Do(context.Background(), "bookings.insert", func(context.Context) error {
		calls.Add(1)
		return errTransient
	}, resilience.NonIdempotent())

	if !errors.Is(err, errTransient) {
		t.Fatalf("Do() error = %v, want %v", err, errTransient)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestCall_PassesOptions(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	var calls atomic.Int32
	_, err := resilience.Call(context.Background(), g, "conferences.insert", func(context.Context) (string, error) {
		calls.Add(1)
		return "", errTransient
	}, resilience.NonIdempotent())

	if !errors.Is(err, errTransient) {
		t.Fatalf("Call() error = %v, want %v", err, errTransient)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	err := g.Do(ctx, "conferences.find", func(context.Context) error {
		calls.Add(1)
		cancel()
		return errTransient
	})
	if err == nil {
		t.Fatal("Do() error = nil, want error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (no retry after cancellation)", calls.Load())
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.Retry.MaxAttempts = 1
	g := resilience.New(cfg, "mongo", isTransient, nil, nil)

	_ = g.Do(context.Background(), "conferences.find", func(context.Context) error { return errTransient })

	var called atomic.Bool
	err := g.Do(context.Background(), "conferences.find", func(context.Context) error {
		called.Store(true)
		return nil
	})

	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want domain.ErrUnavailable", err)
	}
	if called.Load() {
		t.Error("operation ran while circuit breaker should be open")
	}
}

func TestDo_CanceledCallsDoNotTrip(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	g := resilience.New(cfg, "mongo", isTransient, nil, nil)

	for range 3 {
		_ = g.Do(context.Background(), "conferences.find", func(context.Context) error { return context.Canceled })
	}

	if err := g.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil (cancellations are not failures)", err)
	}
}

func TestDo_CircuitBreakerRecovery(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	g := resilience.New(cfg, "postgres", isTransient, nil, nil)

	_ = g.Do(context.Background(), "ping", func(context.Context) error { return errTransient })

	if err := g.Do(context.Background(), "ping", func(context.Context) error { return nil }); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected circuit breaker open, got: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	if err := g.Do(context.Background(), "ping", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Do() error = %v, want nil (circuit should recover)", err)
	}
	if err := g.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil after recovery", err)
	}
}

func TestDo_RateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	g := resilience.New(cfg, "mongo", isTransient, nil, nil)

	if err := g.Do(context.Background(), "ping", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.Do(ctx, "ping", func(context.Context) error {
		t.Error("operation should not run while rate limited")
		return nil
	})
	if err == nil {
		t.Fatal("Do() error = nil, want rate limit wait error")
	}
}

func TestCall_ReturnsValue(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", isTransient, nil, nil)

	got, err := resilience.Call(context.Background(), g, "bookings.find", func(context.Context) ([]string, error) {
		return []string{"b1", "b2"}, nil
	})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Call() = %v, want 2 items", got)
	}

	_, err = resilience.Call(context.Background(), g, "bookings.find", func(context.Context) (int, error) {
		return 0, errors.New("boom")
	})
	if err == nil {
		t.Error("Call() error = nil, want error")
	}
}

func TestGuard_Name(t *testing.T) {
	t.Parallel()

	g := resilience.New(testConfig(), "mongo", nil, nil, nil)
	if got := g.Name(); got != "mongo-breaker" {
		t.Errorf("Name() = %q, want %q", got, "mongo-breaker")
	}
}

func TestGuard_HealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("closed", func(t *testing.T) {
		t.Parallel()
		g := resilience.New(testConfig(), "mongo", nil, nil, nil)
		if err := g.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() = %v, want nil (closed breaker)", err)
		}
	})

	t.Run("open", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.CircuitBreaker.MaxFailures = 1
		cfg.Retry.MaxAttempts = 1
		g := resilience.New(cfg, "mongo", nil, nil, nil)

		_ = g.Do(context.Background(), "ping", func(context.Context) error { return errTransient })

		err := g.HealthCheck(context.Background())
		if err == nil || !strings.Contains(err.Error(), "failing") {
			t.Errorf("HealthCheck() = %v, want error containing %q", err, "failing")
		}
	})

	t.Run("half-open", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.CircuitBreaker.MaxFailures = 1
		cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
		cfg.Retry.MaxAttempts = 1
		g := resilience.New(cfg, "mongo", nil, nil, nil)

		_ = g.Do(context.Background(), "ping", func(context.Context) error { return errTransient })
		time.Sleep(150 * time.Millisecond)

		err := g.HealthCheck(context.Background())
		if err == nil || !strings.Contains(err.Error(), "degraded") {
			t.Errorf("HealthCheck() = %v, want error containing %q", err, "degraded")
		}
	})
}

func TestDo_WithMetrics(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	g := resilience.New(testConfig(), "mongo", isTransient, metrics, nil)

	if err := g.Do(context.Background(), "ping", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := resilience.WithRequestID(context.Background(), "req-1")
	ctx = resilience.WithCorrelationID(ctx, "corr-1")

	if got := resilience.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-1")
	}
	if got := resilience.CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext() = %q, want %q", got, "corr-1")
	}
	if got := resilience.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
}
