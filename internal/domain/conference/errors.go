package conference

import (
	"errors"

	"github.com/jsamuelsen11/conference-booking/internal/domain"
)

// Kind identifies one business-rule failure. The set is closed: callers
// switch on Kind instead of matching messages.
type Kind int

const (
	KindConferenceNotFound Kind = iota + 1
	KindUpdateForbidden
	KindCapacityExceeded
	KindSeatReductionBelowBookings
	KindSeatsOutOfBounds
	KindConferenceTooLong
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindConferenceNotFound:
		return "conference_not_found"
	case KindUpdateForbidden:
		return "conference_update_forbidden"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindSeatReductionBelowBookings:
		return "seat_reduction_below_bookings"
	case KindSeatsOutOfBounds:
		return "seats_out_of_bounds"
	case KindConferenceTooLong:
		return "conference_too_long"
	default:
		return "unknown"
	}
}

// category maps a kind onto the shared domain sentinel.
func (k Kind) category() error {
	switch k {
	case KindConferenceNotFound:
		return domain.ErrNotFound
	case KindUpdateForbidden:
		return domain.ErrForbidden
	default:
		return domain.ErrValidation
	}
}

// Error is a business-rule failure of the conference aggregate. Two Errors
// match under errors.Is when their kinds are equal, so the exported values
// below work as sentinels.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Unwrap exposes the shared domain category (ErrNotFound, ErrForbidden or
// ErrValidation).
func (e *Error) Unwrap() error {
	return e.Kind.category()
}

var (
	ErrConferenceNotFound = &Error{
		Kind:    KindConferenceNotFound,
		Message: "Conference not found",
	}
	ErrConferenceUpdateForbidden = &Error{
		Kind:    KindUpdateForbidden,
		Message: "You are not allowed to update this conference",
	}
	ErrCapacityExceeded = &Error{
		Kind:    KindCapacityExceeded,
		Message: "No more seats available for this conference",
	}
	ErrSeatReductionBelowBookings = &Error{
		Kind:    KindSeatReductionBelowBookings,
		Message: "Cannot reduce seats below the number of existing bookings",
	}
	ErrSeatsOutOfBounds = &Error{
		Kind:    KindSeatsOutOfBounds,
		Message: "The conference must have a maximum of 1000 seats and minimum of 20 seats",
	}
	ErrConferenceTooLong = &Error{
		Kind:    KindConferenceTooLong,
		Message: "The conference is too long (> 3 hours)",
	}
)

// KindOf returns the Kind of the first *Error in err's chain, or false when
// err carries none.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
