package dto

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/conference-booking/internal/domain"
)

const msgEndBeforeStart = "must be after startDate"

// OrganizeConferenceRequest represents the JSON body for creating a
// conference. Dates are RFC 3339 timestamps.
type OrganizeConferenceRequest struct {
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Seats     int       `json:"seats"`
}

// Validate checks that required fields are present and the dates are
// ordered. Seat bounds and duration are business rules enforced by the use
// case. Returns a *domain.ValidationError if any checks fail.
func (r *OrganizeConferenceRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.StartDate.IsZero() {
		fields["startDate"] = domain.MsgRequired
	}
	if r.EndDate.IsZero() {
		fields["endDate"] = domain.MsgRequired
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && !r.EndDate.After(r.StartDate) {
		fields["endDate"] = msgEndBeforeStart
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ChangeSeatsRequest represents the JSON body for changing a conference's
// capacity.
type ChangeSeatsRequest struct {
	Seats *int `json:"seats"`
}

// Validate checks that seats is present.
func (r *ChangeSeatsRequest) Validate() error {
	if r.Seats == nil {
		return &domain.ValidationError{Fields: map[string]string{"seats": domain.MsgRequired}}
	}
	return nil
}
