package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/storage/mongostore"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
	"github.com/jsamuelsen11/conference-booking/internal/platform/resilience"
	"github.com/jsamuelsen11/conference-booking/internal/platform/telemetry"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

// storageBackend is the repository pair selected by storage.driver plus the
// readiness checks and shutdown hook of its connection.
type storageBackend struct {
	conferences ports.ConferenceRepository
	bookings    ports.BookingRepository
	checkers    []ports.HealthChecker
	close       func(context.Context) error
}

// Close releases the datastore connection. Nil-safe.
func (b *storageBackend) Close(ctx context.Context) error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close(ctx)
}

func openStorage(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*storageBackend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return &storageBackend{
			conferences: memory.NewConferenceRepository(),
			bookings:    memory.NewBookingRepository(),
			checkers:    []ports.HealthChecker{memory.HealthChecker{}},
		}, nil

	case config.DriverMongo:
		client, err := mongostore.Connect(ctx, cfg.Storage.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Storage.Mongo.Database)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		guard := resilience.New(&cfg.Datastore, config.DriverMongo, mongostore.IsTransient, metrics, logger)
		return &storageBackend{
			conferences: mongostore.NewConferenceRepository(db, guard),
			bookings:    mongostore.NewBookingRepository(db, guard),
			checkers:    []ports.HealthChecker{mongostore.NewHealthChecker(client), guard},
			close:       disconnectMongo(client),
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Storage.Postgres)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrating postgres: %w", err)
		}
		guard := resilience.New(&cfg.Datastore, config.DriverPostgres, postgres.IsTransient, metrics, logger)
		return &storageBackend{
			conferences: postgres.NewConferenceRepository(db, guard),
			bookings:    postgres.NewBookingRepository(db, guard),
			checkers:    []ports.HealthChecker{postgres.NewHealthChecker(db), guard},
			close:       closeSQL(db),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func disconnectMongo(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Disconnect(ctx)
	}
}

func closeSQL(db *sql.DB) func(context.Context) error {
	return func(context.Context) error {
		return db.Close()
	}
}
