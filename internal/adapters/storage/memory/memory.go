// Package memory provides in-process implementations of the repository
// ports. They back local development and the use-case tests, and store
// copies so callers never share state with the repository.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ConferenceRepository = (*ConferenceRepository)(nil)
	_ ports.BookingRepository    = (*BookingRepository)(nil)
)

// ConferenceRepository keeps conferences in a map keyed by id.
type ConferenceRepository struct {
	mu          sync.RWMutex
	conferences map[string]conference.Conference
}

// NewConferenceRepository returns an empty repository.
func NewConferenceRepository() *ConferenceRepository {
	return &ConferenceRepository{conferences: make(map[string]conference.Conference)}
}

// FindByID returns a copy of the stored conference, or (nil, nil).
func (r *ConferenceRepository) FindByID(_ context.Context, id string) (*conference.Conference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conferences[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Create stores the conference. An existing entry with the same id is
// overwritten.
func (r *ConferenceRepository) Create(_ context.Context, c *conference.Conference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conferences[c.ID] = *c
	return nil
}

// Update replaces the stored conference with the same id.
func (r *ConferenceRepository) Update(_ context.Context, c *conference.Conference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conferences[c.ID] = *c
	return nil
}

// BookingRepository keeps bookings grouped by conference id.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string][]conference.Booking
}

// NewBookingRepository returns an empty repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[string][]conference.Booking)}
}

// FindByConferenceID returns a copy of the bookings of one conference.
func (r *BookingRepository) FindByConferenceID(_ context.Context, conferenceID string) ([]conference.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.bookings[conferenceID]
	out := make([]conference.Booking, len(stored))
	copy(out, stored)
	return out, nil
}

// Create appends the booking to its conference.
func (r *BookingRepository) Create(_ context.Context, b *conference.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[b.ConferenceID] = append(r.bookings[b.ConferenceID], *b)
	return nil
}

// HealthChecker reports the in-memory store as always healthy so readiness
// output lists the active backend.
type HealthChecker struct{}

// Name implements ports.HealthChecker.
func (HealthChecker) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker.
func (HealthChecker) HealthCheck(context.Context) error { return nil }
