package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/conference-booking/internal/adapters/http"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/domain/user"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
	"github.com/jsamuelsen11/conference-booking/mocks"
)

type routerMocks struct {
	organize    *mocks.MockOrganizeConferenceUseCase
	bookSeat    *mocks.MockBookSeatUseCase
	changeSeats *mocks.MockChangeSeatsUseCase
	registry    *mocks.MockHealthRegistry
	verifier    *mocks.MockTokenVerifier
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		organize:    mocks.NewMockOrganizeConferenceUseCase(t),
		bookSeat:    mocks.NewMockBookSeatUseCase(t),
		changeSeats: mocks.NewMockChangeSeatsUseCase(t),
		registry:    mocks.NewMockHealthRegistry(t),
		verifier:    mocks.NewMockTokenVerifier(t),
	}

	ch := handlers.NewConferenceHandler(m.organize, m.bookSeat, m.changeSeats)
	hh := handlers.NewHealthHandler(m.registry)

	router := adapthttp.NewRouter(ch, hh, middleware.Authenticate(m.verifier), middlewares...)
	return router, m
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/conferences"},
		{http.MethodPost, "/api/v1/conferences/{conferenceId}/bookings"},
		{http.MethodPatch, "/api/v1/conferences/{conferenceId}/seats"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, m := newTestRouter(t, testMW)
	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_HealthDoesNotRequireToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_APIRequiresToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conferences/conf-1/bookings", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRouter_InvalidTokenRejected(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	m.verifier.EXPECT().Verify(mock.Anything, "forged").Return(user.User{}, domain.ErrUnauthorized)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/conferences/conf-1/seats", strings.NewReader(`{"seats":100}`))
	req.Header.Set("Authorization", "Bearer forged")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRouter_IntegrationBookSeat(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t)
	bob := user.User{ID: "bob"}

	m.verifier.EXPECT().Verify(mock.Anything, "bob-token").Return(bob, nil)
	m.bookSeat.EXPECT().Execute(mock.Anything, ports.BookSeatRequest{User: bob, ConferenceID: "conf-1"}).
		Return(ports.BookSeatResponse{BookingID: "booking-1"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conferences/conf-1/bookings", nil)
	req.Header.Set("Authorization", "Bearer bob-token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"bookingId":"booking-1"`) {
		t.Errorf("body = %s, want bookingId", rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/health/live", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
