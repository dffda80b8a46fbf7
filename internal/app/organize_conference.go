package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time check that OrganizeConference implements
// ports.OrganizeConferenceUseCase.
var _ ports.OrganizeConferenceUseCase = (*OrganizeConference)(nil)

// OrganizeConference creates a new conference owned by the requesting user.
type OrganizeConference struct {
	conferences ports.ConferenceRepository
	ids         ports.IDGenerator
	logger      *slog.Logger
}

// NewOrganizeConference creates an OrganizeConference use case. A nil logger
// discards output.
func NewOrganizeConference(
	conferences ports.ConferenceRepository,
	ids ports.IDGenerator,
	logger *slog.Logger,
) *OrganizeConference {
	return &OrganizeConference{
		conferences: conferences,
		ids:         ids,
		logger:      orDiscard(logger),
	}
}

// Execute validates duration and capacity, then stores the conference.
func (uc *OrganizeConference) Execute(ctx context.Context, req ports.OrganizeConferenceRequest) (ports.OrganizeConferenceResponse, error) {
	log := uc.logger.With(
		slog.String("operation", "OrganizeConference"),
		slog.String("user_id", req.User.ID),
	)
	log.InfoContext(ctx, "organizing conference", slog.String("title", req.Title))

	conf := &conference.Conference{
		ID:          uc.ids.Generate(),
		OrganizerID: req.User.ID,
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Seats:       req.Seats,
	}

	if err := validateNewConference(conf); err != nil {
		logFailure(ctx, log, "rejected conference", err)
		return ports.OrganizeConferenceResponse{}, err
	}

	if err := uc.conferences.Create(ctx, conf); err != nil {
		err = fmt.Errorf("creating conference: %w", err)
		logFailure(ctx, log, "failed to organize conference", err)
		return ports.OrganizeConferenceResponse{}, err
	}

	log.InfoContext(ctx, "conference organized", slog.String("conference_id", conf.ID))
	return ports.OrganizeConferenceResponse{ID: conf.ID}, nil
}

func validateNewConference(c *conference.Conference) error {
	if c.IsTooLong() {
		return conference.ErrConferenceTooLong
	}
	if c.HasTooManySeats() || c.HasNotEnoughSeats() {
		return conference.ErrSeatsOutOfBounds
	}
	return nil
}
