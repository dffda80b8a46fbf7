package handlers_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/dto"
	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/conference-booking/internal/domain"
	"github.com/jsamuelsen11/conference-booking/internal/domain/conference"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
	"github.com/jsamuelsen11/conference-booking/mocks"
)

var testStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type conferenceMocks struct {
	organize    *mocks.MockOrganizeConferenceUseCase
	bookSeat    *mocks.MockBookSeatUseCase
	changeSeats *mocks.MockChangeSeatsUseCase
}

func newConferenceHandler(t *testing.T) (*handlers.ConferenceHandler, conferenceMocks) {
	t.Helper()
	m := conferenceMocks{
		organize:    mocks.NewMockOrganizeConferenceUseCase(t),
		bookSeat:    mocks.NewMockBookSeatUseCase(t),
		changeSeats: mocks.NewMockChangeSeatsUseCase(t),
	}
	return handlers.NewConferenceHandler(m.organize, m.bookSeat, m.changeSeats), m
}

func bookingRequest(conferenceID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conferences/"+conferenceID+"/bookings", http.NoBody)
	return withUser(withChiParams(req, map[string]string{"conferenceId": conferenceID}), johnDoe)
}

func seatsRequest(t *testing.T, conferenceID string, body any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/conferences/"+conferenceID+"/seats", jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")
	return withUser(withChiParams(req, map[string]string{"conferenceId": conferenceID}), johnDoe)
}

// --- OrganizeConference ---

func TestOrganizeConference_Success(t *testing.T) {
	t.Parallel()
	h, m := newConferenceHandler(t)

	m.organize.EXPECT().Execute(mock.Anything, ports.OrganizeConferenceRequest{
		User:      johnDoe,
		Title:     "GopherCon EU",
		StartDate: testStart,
		EndDate:   testStart.Add(2 * time.Hour),
		Seats:     50,
	}).Return(ports.OrganizeConferenceResponse{ID: "conf-1"}, nil)

	body := jsonBody(t, dto.OrganizeConferenceRequest{
		Title:     "GopherCon EU",
		StartDate: testStart,
		EndDate:   testStart.Add(2 * time.Hour),
		Seats:     50,
	})
	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/conferences", body), johnDoe)
	h.OrganizeConference(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["id"] != "conf-1" {
		t.Errorf("id = %q, want %q", resp["id"], "conf-1")
	}
}

func TestOrganizeConference_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/conferences", bytes.NewBufferString("{bad")), johnDoe)
	h.OrganizeConference(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestOrganizeConference_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	body := jsonBody(t, dto.OrganizeConferenceRequest{Seats: 50})
	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/conferences", body), johnDoe)
	h.OrganizeConference(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) == 0 {
		t.Error("Errors is empty, want field details")
	}
}

func TestOrganizeConference_BusinessRuleError(t *testing.T) {
	t.Parallel()
	h, m := newConferenceHandler(t)

	m.organize.EXPECT().Execute(mock.Anything, mock.AnythingOfType("ports.OrganizeConferenceRequest")).
		Return(ports.OrganizeConferenceResponse{}, conference.ErrConferenceTooLong)

	body := jsonBody(t, dto.OrganizeConferenceRequest{
		Title:     "Marathon",
		StartDate: testStart,
		EndDate:   testStart.Add(5 * time.Hour),
		Seats:     50,
	})
	rec := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/conferences", body), johnDoe)
	h.OrganizeConference(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != "conference_too_long" {
		t.Errorf("Code = %q, want %q", resp.Code, "conference_too_long")
	}
}

func TestOrganizeConference_NoUser(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conferences", bytes.NewBufferString("{}"))
	h.OrganizeConference(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

// --- BookSeat ---

func TestBookSeat_Success(t *testing.T) {
	t.Parallel()
	h, m := newConferenceHandler(t)

	m.bookSeat.EXPECT().Execute(mock.Anything, ports.BookSeatRequest{
		User:         johnDoe,
		ConferenceID: "conf-1",
	}).Return(ports.BookSeatResponse{BookingID: "booking-1"}, nil)

	rec := httptest.NewRecorder()
	h.BookSeat(rec, bookingRequest("conf-1"))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[map[string]string](t, rec)
	if resp["bookingId"] != "booking-1" {
		t.Errorf("bookingId = %q, want %q", resp["bookingId"], "booking-1")
	}
}

func TestBookSeat_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "conference not found", err: conference.ErrConferenceNotFound, wantStatus: http.StatusNotFound},
		{name: "capacity exceeded", err: conference.ErrCapacityExceeded, wantStatus: http.StatusBadRequest},
		{name: "datastore unavailable", err: fmt.Errorf("finding conference: %w", domain.ErrUnavailable), wantStatus: http.StatusBadGateway},
		{name: "infrastructure failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newConferenceHandler(t)

			m.bookSeat.EXPECT().Execute(mock.Anything, mock.AnythingOfType("ports.BookSeatRequest")).
				Return(ports.BookSeatResponse{}, tt.err)

			rec := httptest.NewRecorder()
			h.BookSeat(rec, bookingRequest("conf-1"))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestBookSeat_MissingConferenceID(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	rec := httptest.NewRecorder()
	h.BookSeat(rec, bookingRequest(""))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBookSeat_NoUser(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/conferences/conf-1/bookings", http.NoBody)
	req = withChiParams(req, map[string]string{"conferenceId": "conf-1"})
	rec := httptest.NewRecorder()
	h.BookSeat(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

// --- ChangeSeats ---

func TestChangeSeats_Success(t *testing.T) {
	t.Parallel()
	h, m := newConferenceHandler(t)

	m.changeSeats.EXPECT().Execute(mock.Anything, ports.ChangeSeatsRequest{
		User:         johnDoe,
		ConferenceID: "conf-1",
		Seats:        100,
	}).Return(nil)

	rec := httptest.NewRecorder()
	h.ChangeSeats(rec, seatsRequest(t, "conf-1", map[string]int{"seats": 100}))

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestChangeSeats_MissingSeats(t *testing.T) {
	t.Parallel()
	h, _ := newConferenceHandler(t)

	rec := httptest.NewRecorder()
	h.ChangeSeats(rec, seatsRequest(t, "conf-1", map[string]string{}))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestChangeSeats_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: conference.ErrConferenceNotFound, wantStatus: http.StatusNotFound, wantCode: "conference_not_found"},
		{name: "forbidden", err: conference.ErrConferenceUpdateForbidden, wantStatus: http.StatusBadRequest, wantCode: "conference_update_forbidden"},
		{name: "below bookings", err: conference.ErrSeatReductionBelowBookings, wantStatus: http.StatusBadRequest, wantCode: "seat_reduction_below_bookings"},
		{name: "out of bounds", err: conference.ErrSeatsOutOfBounds, wantStatus: http.StatusBadRequest, wantCode: "seats_out_of_bounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newConferenceHandler(t)

			m.changeSeats.EXPECT().Execute(mock.Anything, mock.AnythingOfType("ports.ChangeSeatsRequest")).
				Return(tt.err)

			rec := httptest.NewRecorder()
			h.ChangeSeats(rec, seatsRequest(t, "conf-1", map[string]int{"seats": 10}))

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", resp.Code, tt.wantCode)
			}
		})
	}
}
