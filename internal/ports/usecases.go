package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
)

// BookSeatUseCase reserves one seat at a conference for a user.
// Implemented by the application layer; called by inbound adapters (handlers).
type BookSeatUseCase interface {
	// Execute books a seat and returns the new booking id.
	// Returns conference.ErrConferenceNotFound if the conference does not
	// exist and conference.ErrCapacityExceeded if it is full.
	Execute(ctx context.Context, req BookSeatRequest) (BookSeatResponse, error)
}

// BookSeatRequest is the input of BookSeatUseCase.
type BookSeatRequest struct {
	User         user.User
	ConferenceID string
}

// BookSeatResponse is the output of BookSeatUseCase.
type BookSeatResponse struct {
	BookingID string
}

// ChangeSeatsUseCase lets an organizer change a conference's capacity.
type ChangeSeatsUseCase interface {
	// Execute sets the conference's seat count. Failures are checked in
	// order: conference.ErrConferenceNotFound,
	// conference.ErrConferenceUpdateForbidden,
	// conference.ErrSeatReductionBelowBookings, conference.ErrSeatsOutOfBounds.
	// Nothing is persisted on failure.
	Execute(ctx context.Context, req ChangeSeatsRequest) error
}

// ChangeSeatsRequest is the input of ChangeSeatsUseCase.
type ChangeSeatsRequest struct {
	User         user.User
	ConferenceID string
	Seats        int
}

// OrganizeConferenceUseCase creates a conference owned by the requesting user.
type OrganizeConferenceUseCase interface {
	// Execute creates the conference and returns its id.
	// Returns conference.ErrConferenceTooLong or conference.ErrSeatsOutOfBounds
	// when the input breaks an invariant.
	Execute(ctx context.Context, req OrganizeConferenceRequest) (OrganizeConferenceResponse, error)
}

// OrganizeConferenceRequest is the input of OrganizeConferenceUseCase.
type OrganizeConferenceRequest struct {
	User      user.User
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Seats     int
}

// OrganizeConferenceResponse is the output of OrganizeConferenceUseCase.
type OrganizeConferenceResponse struct {
	ID string
}
