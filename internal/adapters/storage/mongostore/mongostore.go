// Package mongostore implements the repository ports on MongoDB.
//
// Conferences and bookings live in two collections keyed by ObjectID. Every
// call runs through a resilience.Guard, so transient driver failures are
// retried and a failing deployment trips the circuit breaker instead of
// piling up requests.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
)

// Collection names.
const (
	ConferencesCollection = "conferences"
	BookingsCollection    = "bookings"
)

// transientLabels are the server error labels that mark an operation as safe
// to repeat.
var transientLabels = []string{"TransientTransactionError", "RetryableWriteError"}

// Connect opens a client for cfg.URI and verifies the deployment answers a
// ping before returning.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the secondary indexes the repositories query on.
// Creating an index that already exists is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(BookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "conferenceId", Value: 1}},
		Options: options.Index().SetName("conferenceId_1"),
	})
	if err != nil {
		return fmt.Errorf("creating bookings index: %w", err)
	}
	return nil
}

// IsTransient reports whether a driver error is worth retrying: network
// failures, server-side timeouts, and errors carrying a retryable label.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}

	var labeled interface{ HasErrorLabel(string) bool }
	if errors.As(err, &labeled) {
		for _, label := range transientLabels {
			if labeled.HasErrorLabel(label) {
				return true
			}
		}
	}
	return false
}

// HealthChecker pings the primary of a MongoDB deployment.
type HealthChecker struct {
	client *mongo.Client
}

// NewHealthChecker returns a readiness check for client.
func NewHealthChecker(client *mongo.Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "mongo" }

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}
