package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time check that BookSeat implements ports.BookSeatUseCase.
var _ ports.BookSeatUseCase = (*BookSeat)(nil)

// BookSeat reserves a seat for the requesting user when the conference still
// has capacity. It is not idempotent: each successful call creates a new
// booking.
type BookSeat struct {
	conferences ports.ConferenceRepository
	bookings    ports.BookingRepository
	ids         ports.IDGenerator
	logger      *slog.Logger
	opts        options
}

// NewBookSeat creates a BookSeat use case. A nil logger discards output.
func NewBookSeat(
	conferences ports.ConferenceRepository,
	bookings ports.BookingRepository,
	ids ports.IDGenerator,
	logger *slog.Logger,
	opts ...Option,
) *BookSeat {
	return &BookSeat{
		conferences: conferences,
		bookings:    bookings,
		ids:         ids,
		logger:      orDiscard(logger),
		opts:        newOptions(opts),
	}
}

// Execute books one seat and returns the new booking id.
func (uc *BookSeat) Execute(ctx context.Context, req ports.BookSeatRequest) (ports.BookSeatResponse, error) {
	log := uc.logger.With(
		slog.String("operation", "BookSeat"),
		slog.String("conference_id", req.ConferenceID),
		slog.String("user_id", req.User.ID),
	)
	log.InfoContext(ctx, "booking seat")

	var bookingID string
	err := withSeatLock(ctx, uc.opts.locks, req.ConferenceID, func() error {
		conf, err := uc.conferences.FindByID(ctx, req.ConferenceID)
		if err != nil {
			return fmt.Errorf("finding conference: %w", err)
		}
		if conf == nil {
			return conference.ErrConferenceNotFound
		}

		existing, err := uc.bookings.FindByConferenceID(ctx, req.ConferenceID)
		if err != nil {
			return fmt.Errorf("listing bookings: %w", err)
		}
		if len(existing) >= conf.Seats {
			return conference.ErrCapacityExceeded
		}

		booking := &conference.Booking{
			ID:           uc.ids.Generate(),
			UserID:       req.User.ID,
			ConferenceID: req.ConferenceID,
		}
		if err := uc.bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("creating booking: %w", err)
		}

		bookingID = booking.ID
		return nil
	})
	if err != nil {
		logFailure(ctx, log, "failed to book seat", err)
		return ports.BookSeatResponse{}, err
	}

	uc.opts.bookings.Add(ctx, 1)
	log.InfoContext(ctx, "seat booked", slog.String("booking_id", bookingID))
	return ports.BookSeatResponse{BookingID: bookingID}, nil
}

// logFailure logs business-rule rejections at warn and everything else at
// error.
func logFailure(ctx context.Context, log *slog.Logger, msg string, err error) {
	if kind, ok := conference.KindOf(err); ok {
		log.WarnContext(ctx, msg,
			slog.String("reason", kind.String()),
			slog.Any("error", err),
		)
		return
	}
	log.ErrorContext(ctx, msg, slog.Any("error", err))
}
