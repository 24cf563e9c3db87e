package model

// Booking statuses as reported by the external platform. The raw status set
// is open-ended; these are the ones the ranking and mutation logic care
// about.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusWaiting   = "waiting"
	BookingStatusSeated    = "seated"
	BookingStatusNoShow    = "no_shown"
	BookingStatusCanceled  = "canceled"
)

// Booking is an external reservation record. It is owned by the booking
// platform; this service only reads it and computes mutation intents.
type Booking struct {
	ID         int    `json:"id"`
	Day        string `json:"day"`  // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	GuestCount int    `json:"guest_count"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Comments   string `json:"comments,omitempty"`
	Allergies  string `json:"allergies,omitempty"`
	Status     string `json:"status"`
	OfferID    *int   `json:"offer_id,omitempty"`
	RoomID     *int   `json:"room_id,omitempty"` // external room id
	ShiftID    int    `json:"shift_id,omitempty"`
}

// BookingFilters narrows a reservation search. Phone, Email and Date are
// exact-match and pushed down to the platform query; Name is matched
// fuzzily after fetch.
type BookingFilters struct {
	Phone string
	Email string
	Date  string // YYYY-MM-DD
	Name  string
}
