package ports

import (
	"context"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
)

// ConferenceRepository defines the storage port for conferences.
// Implemented by the storage adapters (memory, mongo, postgres); called by
// the use cases.
type ConferenceRepository interface {
	// FindByID returns the conference with the given id.
	// Returns (nil, nil) when no such conference exists; errors are reserved
	// for infrastructure failures.
	FindByID(ctx context.Context, id string) (*conference.Conference, error)

	// Create persists a new conference. Behavior on a duplicate id is
	// adapter-defined.
	Create(ctx context.Context, c *conference.Conference) error

	// Update persists every current field of the conference keyed by its id.
	// Last write wins.
	Update(ctx context.Context, c *conference.Conference) error
}

// BookingRepository defines the storage port for bookings.
type BookingRepository interface {
	// FindByConferenceID returns all bookings of a conference in no
	// particular order. An unknown conference yields an empty slice.
	FindByConferenceID(ctx context.Context, conferenceID string) ([]conference.Booking, error)

	// Create persists a new booking.
	Create(ctx context.Context, b *conference.Booking) error
}

// IDGenerator produces fresh identifiers for new entities.
type IDGenerator interface {
	Generate() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// Generate calls f.
func (f IDGeneratorFunc) Generate() string {
	return f()
}
