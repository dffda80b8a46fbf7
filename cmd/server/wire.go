package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/auth"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/idgen"
	adapthttp "github.com/jsamuelsen11/conference-booking/internal/adapters/http"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/conference-booking/internal/app"
	"github.com/jsamuelsen11/conference-booking/internal/app/seatlock"
	"github.com/jsamuelsen11/conference-booking/internal/platform/config"
	"github.com/jsamuelsen11/conference-booking/internal/platform/health"
	"github.com/jsamuelsen11/conference-booking/internal/platform/telemetry"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*storageBackend, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return openStorage(cfg, metrics, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.IDGenerator, error) {
		return idgen.ForDriver(cfg.Storage.Driver), nil
	})

	// BookSeat and ChangeSeats must share one Locker.
	do.Provide(injector, func(_ do.Injector) (*seatlock.Locker, error) {
		return seatlock.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrganizeConferenceUseCase, error) {
		backend := do.MustInvoke[*storageBackend](i)
		ids := do.MustInvoke[ports.IDGenerator](i)
		return app.NewOrganizeConference(backend.conferences, ids, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BookSeatUseCase, error) {
		backend := do.MustInvoke[*storageBackend](i)
		ids := do.MustInvoke[ports.IDGenerator](i)
		return app.NewBookSeat(backend.conferences, backend.bookings, ids, logger,
			app.WithLocker(do.MustInvoke[*seatlock.Locker](i)),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ChangeSeatsUseCase, error) {
		backend := do.MustInvoke[*storageBackend](i)
		return app.NewChangeSeats(backend.conferences, backend.bookings, logger,
			app.WithLocker(do.MustInvoke[*seatlock.Locker](i)),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenVerifier, error) {
		return auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ConferenceHandler, error) {
		return handlers.NewConferenceHandler(
			do.MustInvoke[ports.OrganizeConferenceUseCase](i),
			do.MustInvoke[ports.BookSeatUseCase](i),
			do.MustInvoke[ports.ChangeSeatsUseCase](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		confH := do.MustInvoke[*handlers.ConferenceHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		verifier := do.MustInvoke[ports.TokenVerifier](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(confH, healthH, middleware.Authenticate(verifier),
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
