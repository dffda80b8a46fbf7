package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time check that ChangeSeats implements ports.ChangeSeatsUseCase.
var _ ports.ChangeSeatsUseCase = (*ChangeSeats)(nil)

// ChangeSeats lets the organizer of a conference set its seat capacity.
type ChangeSeats struct {
	conferences ports.ConferenceRepository
	bookings    ports.BookingRepository
	logger      *slog.Logger
	opts        options
}

// NewChangeSeats creates a ChangeSeats use case. A nil logger discards output.
func NewChangeSeats(
	conferences ports.ConferenceRepository,
	bookings ports.BookingRepository,
	logger *slog.Logger,
	opts ...Option,
) *ChangeSeats {
	return &ChangeSeats{
		conferences: conferences,
		bookings:    bookings,
		logger:      orDiscard(logger),
		opts:        newOptions(opts),
	}
}

// Execute applies the new seat count. Checks run in a fixed order (existence,
// ownership, existing bookings, bounds) and the first failure is returned
// without writing anything.
func (uc *ChangeSeats) Execute(ctx context.Context, req ports.ChangeSeatsRequest) error {
	log := uc.logger.With(
		slog.String("operation", "ChangeSeats"),
		slog.String("conference_id", req.ConferenceID),
		slog.String("user_id", req.User.ID),
	)
	log.InfoContext(ctx, "changing seats", slog.Int("seats", req.Seats))

	err := withSeatLock(ctx, uc.opts.locks, req.ConferenceID, func() error {
		conf, err := uc.conferences.FindByID(ctx, req.ConferenceID)
		if err != nil {
			return fmt.Errorf("finding conference: %w", err)
		}
		if conf == nil {
			return conference.ErrConferenceNotFound
		}
		if !conf.IsOrganizer(req.User.ID) {
			return conference.ErrConferenceUpdateForbidden
		}

		existing, err := uc.bookings.FindByConferenceID(ctx, req.ConferenceID)
		if err != nil {
			return fmt.Errorf("listing bookings: %w", err)
		}
		if req.Seats < len(existing) {
			return conference.ErrSeatReductionBelowBookings
		}

		seats := req.Seats
		conf.Update(conference.Patch{Seats: &seats})
		if conf.HasTooManySeats() || conf.HasNotEnoughSeats() {
			return conference.ErrSeatsOutOfBounds
		}

		if err := uc.conferences.Update(ctx, conf); err != nil {
			return fmt.Errorf("updating conference: %w", err)
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, log, "failed to change seats", err)
		return err
	}

	uc.opts.seatChanges.Add(ctx, 1)
	log.InfoContext(ctx, "seats changed", slog.Int("seats", req.Seats))
	return nil
}
