// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/conference-booking/internal/adapters/http/dto"
	"github.com/jsamuelsen11/conference-booking/internal/ports"
)

const paramConferenceID = "conferenceId"

// ConferenceHandler handles HTTP requests for organizing conferences,
// booking seats and changing capacity. Every route expects the auth
// middleware to have stored the caller in the request context.
type ConferenceHandler struct {
	organize    ports.OrganizeConferenceUseCase
	bookSeat    ports.BookSeatUseCase
	changeSeats ports.ChangeSeatsUseCase
}

// NewConferenceHandler creates a new ConferenceHandler with the given use cases.
func NewConferenceHandler(
	organize ports.OrganizeConferenceUseCase,
	bookSeat ports.BookSeatUseCase,
	changeSeats ports.ChangeSeatsUseCase,
) *ConferenceHandler {
	return &ConferenceHandler{organize: organize, bookSeat: bookSeat, changeSeats: changeSeats}
}

// OrganizeConference handles POST /api/v1/conferences.
func (h *ConferenceHandler) OrganizeConference(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.OrganizeConferenceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.organize.Execute(r.Context(), ports.OrganizeConferenceRequest{
		User:      u,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Seats:     req.Seats,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OrganizeConferenceResponse{ID: resp.ID})
}

// BookSeat handles POST /api/v1/conferences/{conferenceId}/bookings.
func (h *ConferenceHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	conferenceID, err := pathParam(r, paramConferenceID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp, err := h.bookSeat.Execute(r.Context(), ports.BookSeatRequest{
		User:         u,
		ConferenceID: conferenceID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BookSeatResponse{BookingID: resp.BookingID})
}

// ChangeSeats handles PATCH /api/v1/conferences/{conferenceId}/seats.
func (h *ConferenceHandler) ChangeSeats(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	conferenceID, err := pathParam(r, paramConferenceID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ChangeSeatsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.changeSeats.Execute(r.Context(), ports.ChangeSeatsRequest{
		User:         u,
		ConferenceID: conferenceID,
		Seats:        *req.Seats,
	}); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
