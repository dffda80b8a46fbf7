// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

// OrganizeConferenceResponse is returned when a conference is created.
type OrganizeConferenceResponse struct {
	ID string `json:"id"`
}

// BookSeatResponse is returned when a seat is booked.
type BookSeatResponse struct {
	BookingID string `json:"bookingId"`
}
