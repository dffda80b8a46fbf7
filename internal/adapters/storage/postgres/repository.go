package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/platform/resilience"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ConferenceRepository = (*ConferenceRepository)(nil)
	_ ports.BookingRepository    = (*BookingRepository)(nil)
)

// ConferenceRepository stores conferences in the conferences table.
type ConferenceRepository struct {
	db    *sql.DB
	guard *resilience.Guard
}

// NewConferenceRepository returns a repository backed by db.
func NewConferenceRepository(db *sql.DB, guard *resilience.Guard) *ConferenceRepository {
	return &ConferenceRepository{db: db, guard: guard}
}

// FindByID returns the conference or (nil, nil).
func (r *ConferenceRepository) FindByID(ctx context.Context, id string) (*conference.Conference, error) {
	return resilience.Call(ctx, r.guard, "conferences.find", func(ctx context.Context) (*conference.Conference, error) {
		var c conference.Conference
		err := r.db.QueryRowContext(ctx,
			`SELECT id, organizer_id, title, start_date, end_date, seats FROM conferences WHERE id = $1`, id,
		).Scan(&c.ID, &c.OrganizerID, &c.Title, &c.StartDate, &c.EndDate, &c.Seats)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		c.StartDate = c.StartDate.UTC()
		c.EndDate = c.EndDate.UTC()
		return &c, nil
	})
}

// Create inserts the conference. An existing row with the same id is
// overwritten.
func (r *ConferenceRepository) Create(ctx context.Context, c *conference.Conference) error {
	return r.guard.Do(ctx, "conferences.insert", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, `
INSERT INTO conferences (id, organizer_id, title, start_date, end_date, seats)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	organizer_id = EXCLUDED.organizer_id,
	title = EXCLUDED.title,
	start_date = EXCLUDED.start_date,
	end_date = EXCLUDED.end_date,
	seats = EXCLUDED.seats`,
			c.ID, c.OrganizerID, c.Title, c.StartDate.UTC(), c.EndDate.UTC(), c.Seats)
		return err
	})
}

// Update overwrites every mutable column of the row keyed by c.ID.
func (r *ConferenceRepository) Update(ctx context.Context, c *conference.Conference) error {
	return r.guard.Do(ctx, "conferences.update", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, `
UPDATE conferences
SET organizer_id = $2, title = $3, start_date = $4, end_date = $5, seats = $6
WHERE id = $1`,
			c.ID, c.OrganizerID, c.Title, c.StartDate.UTC(), c.EndDate.UTC(), c.Seats)
		return err
	})
}

// BookingRepository stores bookings in the bookings table.
type BookingRepository struct {
	db    *sql.DB
	guard *resilience.Guard
}

// NewBookingRepository returns a repository backed by db.
func NewBookingRepository(db *sql.DB, guard *resilience.Guard) *BookingRepository {
	return &BookingRepository{db: db, guard: guard}
}

// FindByConferenceID returns every booking that references conferenceID.
func (r *BookingRepository) FindByConferenceID(ctx context.Context, conferenceID string) ([]conference.Booking, error) {
	return resilience.Call(ctx, r.guard, "bookings.find", func(ctx context.Context) ([]conference.Booking, error) {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, user_id, conference_id FROM bookings WHERE conference_id = $1`, conferenceID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		out := []conference.Booking{}
		for rows.Next() {
			var b conference.Booking
			if err := rows.Scan(&b.ID, &b.UserID, &b.ConferenceID); err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// Create inserts the booking.
func (r *BookingRepository) Create(ctx context.Context, b *conference.Booking) error {
	return r.guard.Do(ctx, "bookings.insert", func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO bookings (id, user_id, conference_id) VALUES ($1, $2, $3)`,
			b.ID, b.UserID, b.ConferenceID)
		return err
	}, resilience.NonIdempotent())
}
