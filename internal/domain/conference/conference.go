// Package conference holds the conference aggregate: the Conference entity,
// the Booking entity that references it, and the closed set of business-rule
// errors raised by the seat use cases.
package conference

import "time"

// Seat capacity bounds and the maximum conference duration.
const (
	MinSeats    = 20
	MaxSeats    = 1000
	MaxDuration = 3 * time.Hour
)

// Conference is an event with a time range, an owning organizer, and a seat
// capacity. It is a plain value holder: Update performs no validation, the
// caller checks the bounds immediately after.
type Conference struct {
	ID          string
	OrganizerID string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Seats       int
}

// Patch carries the fields to replace on a Conference. Nil fields are left
// unchanged. ID and OrganizerID are immutable and therefore not patchable.
type Patch struct {
	Title     *string
	StartDate *time.Time
	EndDate   *time.Time
	Seats     *int
}

// Update replaces the provided fields in place.
func (c *Conference) Update(p Patch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Seats != nil {
		c.Seats = *p.Seats
	}
}

// HasTooManySeats reports whether the capacity exceeds MaxSeats.
func (c *Conference) HasTooManySeats() bool {
	return c.Seats > MaxSeats
}

// HasNotEnoughSeats reports whether the capacity is below MinSeats.
func (c *Conference) HasNotEnoughSeats() bool {
	return c.Seats < MinSeats
}

// IsTooLong reports whether the conference lasts longer than MaxDuration.
func (c *Conference) IsTooLong() bool {
	return c.EndDate.Sub(c.StartDate) > MaxDuration
}

// IsOrganizer reports whether userID owns the conference.
func (c *Conference) IsOrganizer(userID string) bool {
	return c.OrganizerID == userID
}
