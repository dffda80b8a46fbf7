// Package resilience guards datastore calls with a circuit breaker, rate
// limiting, per-attempt timeouts, retry with exponential backoff, an
// OpenTelemetry client span, and datastore metrics.
//
// Calls pass through the guard in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry → Attempt Timeout → op
//
// Construction:
//
//	guard := resilience.New(&cfg.Datastore, "mongo", mongostore.IsTransient, metrics, logger)
//
// Guarding an operation:
//
//	conf, err := resilience.Call(ctx, guard, "conferences.find", func(ctx context.Context) (*conference.Conference, error) {
//	    return r.find(ctx, id)
//	})
//
// Inserts that must not be repeated pass resilience.NonIdempotent().
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
	"github.com/jsamuelsen11/conference-booking/internal/platform/telemetry"
)

// Classifier reports whether an error is transient and worth retrying.
type Classifier func(error) bool

// retryConfig holds the retry policy values extracted from config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Guard applies the resilience pipeline to calls against one datastore.
type Guard struct {
	system    string
	breaker   *gobreaker.CircuitBreaker[struct{}]
	limiter   *rate.Limiter // nil when rate limiting is disabled
	timeout   time.Duration
	retryCfg  retryConfig
	transient Classifier
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New creates a Guard for the named datastore system (e.g., "mongo").
// A nil classifier retries nothing. If metrics is nil, metric recording is
// skipped.
func New(cfg *config.DatastoreConfig, system string, transient Classifier, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if transient == nil {
		transient = func(error) bool { return false }
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        system,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellation says nothing about datastore health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Guard{
		system:  system,
		breaker: cb,
		limiter: limiter,
		timeout: cfg.Timeout,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		transient: transient,
		metrics:   metrics,
		logger:    logger,
	}
}

// CallOption adjusts how a single guarded call is run.
type CallOption func(*callOptions)

type callOptions struct {
	idempotent bool
}

// NonIdempotent marks an operation whose effect may already be applied when
// an attempt fails, such as an insert whose acknowledgement was lost. It is
// run once and never retried.
func NonIdempotent() CallOption {
	return func(o *callOptions) { o.idempotent = false }
}

// Do runs op through the full pipeline. A rejected call (breaker open or
// half-open probe limit reached) returns an error wrapping
// domain.ErrUnavailable.
func (g *Guard) Do(ctx context.Context, operation string, op func(context.Context) error, opts ...CallOption) error {
	co := callOptions{idempotent: true}
	for _, opt := range opts {
		opt(&co)
	}
	maxAttempts := g.retryCfg.maxAttempts
	if !co.idempotent && maxAttempts > 1 {
		maxAttempts = 1
	}

	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if err := g.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := g.startSpan(ctx, operation)
		defer span.End()

		retryErr := g.doWithRetry(spanCtx, operation, maxAttempts, op)
		finishSpan(span, retryErr)

		return struct{}{}, retryErr
	})

	g.recordMetrics(ctx, operation, start, err)

	if isBreakerRejection(err) {
		return fmt.Errorf("%s %s: %w: %w", g.system, operation, domain.ErrUnavailable, err)
	}
	return err
}

// Call is the value-returning form of Guard.Do.
func Call[T any](ctx context.Context, g *Guard, operation string, op func(context.Context) (T, error), opts ...CallOption) (T, error) {
	var out T
	err := g.Do(ctx, operation, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	}, opts...)
	return out, err
}

// Name returns the breaker's health check name (e.g., "mongo-breaker").
func (g *Guard) Name() string {
	return g.system + "-breaker"
}

// HealthCheck reports the circuit breaker state; no datastore call is made.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error describing the degraded state.
//   - "open"      returns an error describing the failure.
func (g *Guard) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.system)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.system)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.system, state)
	}
}

// waitForRateLimit blocks until the limiter allows the call or the context is
// canceled. Returns nil immediately when rate limiting is disabled.
func (g *Guard) waitForRateLimit(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

// startSpan creates an OTEL client span for the datastore operation, tagged
// with the inbound request and correlation ids when present.
func (g *Guard) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("resilience")

	attrs := []attribute.KeyValue{
		attribute.String("db.system", g.system),
		attribute.String("db.operation", operation),
	}
	if id := RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, attribute.String("request.id", id))
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		attrs = append(attrs, attribute.String("correlation.id", id))
	}

	return tracer.Start(ctx, g.system+" "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records datastore duration and count. Metrics are recorded
// outside the breaker so that rejections are captured. Safe with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(g.system),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result),
	)

	g.metrics.DatastoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.DatastoreOperationTotal.Add(ctx, 1, attrs)
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
