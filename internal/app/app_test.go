package app

import (
	"context"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var (
	johnDoe = user.User{ID: "john-doe", Email: "johndoe@gmail.com"}
	bob     = user.User{ID: "bob", Email: "bob@gmail.com"}
)

var conferenceStart = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func conference1() *conference.Conference {
	return &conference.Conference{
		ID:          "conference-1",
		OrganizerID: johnDoe.ID,
		Title:       "Go Days",
		StartDate:   conferenceStart,
		EndDate:     conferenceStart.Add(2 * time.Hour),
		Seats:       50,
	}
}

// fixture holds in-memory repositories seeded for one test.
type fixture struct {
	conferences *memory.ConferenceRepository
	bookings    *memory.BookingRepository
}

func newFixture(t *testing.T, conf *conference.Conference, bookingCount int) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		conferences: memory.NewConferenceRepository(),
		bookings:    memory.NewBookingRepository(),
	}
	if conf != nil {
		if err := f.conferences.Create(ctx, conf); err != nil {
			t.Fatalf("seeding conference: %v", err)
		}
	}
	for i := range bookingCount {
		b := &conference.Booking{
			ID:           "seed-" + strconv.Itoa(i),
			UserID:       "attendee-" + strconv.Itoa(i),
			ConferenceID: conf.ID,
		}
		if err := f.bookings.Create(ctx, b); err != nil {
			t.Fatalf("seeding booking: %v", err)
		}
	}
	return f
}

func (f fixture) conference(t *testing.T, id string) *conference.Conference {
	t.Helper()
	c, err := f.conferences.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByID(%q) error = %v", id, err)
	}
	return c
}

func (f fixture) bookingsOf(t *testing.T, id string) []conference.Booking {
	t.Helper()
	b, err := f.bookings.FindByConferenceID(context.Background(), id)
	if err != nil {
		t.Fatalf("FindByConferenceID(%q) error = %v", id, err)
	}
	return b
}
