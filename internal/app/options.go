package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/conference-booking/internal/app/seatlock"
	"github.com/jsamuelsen11/conference-booking/internal/platform/telemetry"
)

// Option configures optional collaborators of a use case.
type Option func(*options)

type options struct {
	locks       *seatlock.Locker
	bookings    metric.Int64Counter
	seatChanges metric.Int64Counter
}

// WithLocker shares a seat lock between use cases. BookSeat and ChangeSeats
// must share one Locker for their updates to a conference to be serialized.
func WithLocker(l *seatlock.Locker) Option {
	return func(o *options) {
		if l != nil {
			o.locks = l
		}
	}
}

// WithMetrics records business counters on the given instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) {
		if m == nil {
			return
		}
		o.bookings = m.BookingsCreated
		o.seatChanges = m.SeatChanges
	}
}

func newOptions(opts []Option) options {
	noopMeter := noop.NewMeterProvider().Meter("app")
	bookings, _ := noopMeter.Int64Counter("noop")
	o := options{
		locks:       seatlock.New(),
		bookings:    bookings,
		seatChanges: bookings,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// withSeatLock runs fn while holding the lock for conferenceID.
func withSeatLock(ctx context.Context, locks *seatlock.Locker, conferenceID string, fn func() error) error {
	unlock, err := locks.Lock(ctx, conferenceID)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}
