package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/platform/resilience"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ConferenceRepository = (*ConferenceRepository)(nil)
	_ ports.BookingRepository    = (*BookingRepository)(nil)
)

type conferenceDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	OrganizerID string             `bson:"organizerId"`
	Title       string             `bson:"title"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     time.Time          `bson:"endDate"`
	Seats       int                `bson:"seats"`
}

func (d conferenceDocument) toDomain() *conference.Conference {
	return &conference.Conference{
		ID:          d.ID.Hex(),
		OrganizerID: d.OrganizerID,
		Title:       d.Title,
		StartDate:   d.StartDate.UTC(),
		EndDate:     d.EndDate.UTC(),
		Seats:       d.Seats,
	}
}

type bookingDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       string             `bson:"userId"`
	ConferenceID string             `bson:"conferenceId"`
}

// ConferenceRepository stores conferences in the "conferences" collection.
type ConferenceRepository struct {
	coll  *mongo.Collection
	guard *resilience.Guard
}

// NewConferenceRepository binds the repository to db.
func NewConferenceRepository(db *mongo.Database, guard *resilience.Guard) *ConferenceRepository {
	return &ConferenceRepository{coll: db.Collection(ConferencesCollection), guard: guard}
}

// FindByID returns the conference or (nil, nil). An id that is not a valid
// ObjectID cannot name a stored document and is reported as absent.
func (r *ConferenceRepository) FindByID(ctx context.Context, id string) (*conference.Conference, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	return resilience.Call(ctx, r.guard, "conferences.find", func(ctx context.Context) (*conference.Conference, error) {
		var doc conferenceDocument
		err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return doc.toDomain(), nil
	})
}

// Create inserts the conference. A duplicate id fails with the driver's
// duplicate key error.
func (r *ConferenceRepository) Create(ctx context.Context, c *conference.Conference) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return fmt.Errorf("conference id %q: %w", c.ID, err)
	}

	doc := conferenceDocument{
		ID:          oid,
		OrganizerID: c.OrganizerID,
		Title:       c.Title,
		StartDate:   c.StartDate.UTC(),
		EndDate:     c.EndDate.UTC(),
		Seats:       c.Seats,
	}
	return r.guard.Do(ctx, "conferences.insert", func(ctx context.Context) error {
		_, err := r.coll.InsertOne(ctx, doc)
		return err
	}, resilience.NonIdempotent())
}

// Update overwrites every mutable field of the stored conference.
func (r *ConferenceRepository) Update(ctx context.Context, c *conference.Conference) error {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return fmt.Errorf("conference id %q: %w", c.ID, err)
	}

	set := bson.M{
		"organizerId": c.OrganizerID,
		"title":       c.Title,
		"startDate":   c.StartDate.UTC(),
		"endDate":     c.EndDate.UTC(),
		"seats":       c.Seats,
	}
	return r.guard.Do(ctx, "conferences.update", func(ctx context.Context) error {
		_, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		return err
	})
}

// BookingRepository stores bookings in the "bookings" collection.
type BookingRepository struct {
	coll  *mongo.Collection
	guard *resilience.Guard
}

// NewBookingRepository binds the repository to db.
func NewBookingRepository(db *mongo.Database, guard *resilience.Guard) *BookingRepository {
	return &BookingRepository{coll: db.Collection(BookingsCollection), guard: guard}
}

// FindByConferenceID returns every booking that references conferenceID.
func (r *BookingRepository) FindByConferenceID(ctx context.Context, conferenceID string) ([]conference.Booking, error) {
	return resilience.Call(ctx, r.guard, "bookings.find", func(ctx context.Context) ([]conference.Booking, error) {
		cur, err := r.coll.Find(ctx, bson.M{"conferenceId": conferenceID})
		if err != nil {
			return nil, err
		}

		var docs []bookingDocument
		if err := cur.All(ctx, &docs); err != nil {
			return nil, err
		}

		out := make([]conference.Booking, 0, len(docs))
		for _, d := range docs {
			out = append(out, conference.Booking{
				ID:           d.ID.Hex(),
				UserID:       d.UserID,
				ConferenceID: d.ConferenceID,
			})
		}
		return out, nil
	})
}

// Create inserts the booking.
func (r *BookingRepository) Create(ctx context.Context, b *conference.Booking) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return fmt.Errorf("booking id %q: %w", b.ID, err)
	}

	doc := bookingDocument{ID: oid, UserID: b.UserID, ConferenceID: b.ConferenceID}
	return r.guard.Do(ctx, "bookings.insert", func(ctx context.Context) error {
		_, err := r.coll.InsertOne(ctx, doc)
		return err
	}, resilience.NonIdempotent())
}
