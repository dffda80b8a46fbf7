// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. authenticate guards the
// /api/v1 routes only, so health probes stay reachable without a token.
func NewRouter(
	conferenceHandler *handlers.ConferenceHandler,
	healthHandler *handlers.HealthHandler,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if authenticate != nil {
			r.Use(authenticate)
		}

		r.Post("/conferences", conferenceHandler.OrganizeConference)
		r.Post("/conferences/{conferenceId}/bookings", conferenceHandler.BookSeat)
		r.Patch("/conferences/{conferenceId}/seats", conferenceHandler.ChangeSeats)
	})

	return r
}
