package conference

// Booking is a single seat reservation linking one user to one conference.
// ConferenceID is a weak reference used only for lookup.
type Booking struct {
	ID           string
	UserID       string
	ConferenceID string
}
