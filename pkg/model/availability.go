package model

import "time"

// Shift is a named service period (lunch, dinner) on a single day, as
// reported by the Zenchef availability feed. A shift carries its own
// capacity, prepayment and cancellation rules that apply to every slot
// inside it unless the slot overrides them.
type Shift struct {
	ID                   int
	Name                 string
	MarkedAsFull         bool
	Capacity             *ShiftCapacity
	BookableFrom         *time.Time
	BookableTo           *time.Time
	Prepayment           *PrepaymentRule
	Cancellation         *CancellationRule
	OfferRequired        bool
	OfferRequiredFromPax *int
	Offers               []Offer
	WaitlistTotal        int
	Slots                []Slot
}

// ShiftCapacity bounds the party sizes a shift accepts. Either bound may be
// absent.
type ShiftCapacity struct {
	Min *int
	Max *int
}

// PrepaymentRule describes when a shift demands payment details before a
// booking is confirmed.
type PrepaymentRule struct {
	WebBookingAskable bool
	MinGuests         int
	ChargePerGuest    float64
}

// CancellationRule gives the minimum notice a guest must respect to cancel
// without intervention.
type CancellationRule struct {
	CancelableBefore time.Duration
}

// Slot is a concrete bookable time within a shift. Name is the wall-clock
// time in HH:MM. RoomsByPartySize maps a party size to the external room IDs
// that can seat it at that time.
type Slot struct {
	Name             string
	Closed           bool
	MarkedAsFull     bool
	PossibleGuests   []int
	RoomsByPartySize map[int][]int

	// Optional overrides of the shift-level bookable window.
	BookableFrom *time.Time
	BookableTo   *time.Time
}

// Offer is a promotional dining package. Private offers are internal-only
// and never surfaced to guests.
type Offer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"-"`
	MinPax      int    `json:"min_pax"`
	MaxPax      int    `json:"max_pax"`
}

// DayAvailability is one day of the feed after the parse boundary.
type DayAvailability struct {
	Date   string // YYYY-MM-DD
	Shifts []Shift
}

// SeatingAreaInfo is a seating area enriched with the booking conditions
// that apply at a specific slot. PaymentPerGuest is nil when no prepayment
// is required.
type SeatingAreaInfo struct {
	SeatingArea
	PaymentPerGuest *float64 `json:"payment_required_for_confirmation,omitempty" bson:"-"`
	NotCancellable  bool     `json:"not_cancellable,omitempty" bson:"-"`
}

// TimeSlot is a slot that survived the availability rule chain, merged
// across the shifts that reach it.
type TimeSlot struct {
	Name             string            `json:"name"`
	SeatingAreas     []SeatingAreaInfo `json:"seating_areas"`
	OfferRequired    bool              `json:"is_offer_required,omitempty"`
	RequiredOfferIDs []int             `json:"required_offer_ids,omitempty"`
}

// NextAvailability points at the first day beyond the requested one with a
// usable slot. SeatingAreas may be empty when the day is open externally but
// none of its rooms are configured internally.
type NextAvailability struct {
	Date         string            `json:"date"`
	SeatingAreas []SeatingAreaInfo `json:"seating_areas"`
}

// AvailabilityResult is the engine's single answer for one restaurant, day
// and party size.
//
// RequestedSlotAvailable is nil when the caller did not ask about a specific
// time. Offers is nil when no shift on the day applies offer logic at all;
// a non-nil empty slice means offer logic applies but nothing matches the
// party size. The two must stay distinct on the wire, hence the pointer.
type AvailabilityResult struct {
	RequestedSlotAvailable *bool             `json:"is_requested_slot_available,omitempty"`
	Offers                 *[]Offer          `json:"offers,omitempty"`
	RequestedTimeRooms     []SeatingAreaInfo `json:"available_room_types_on_requested_time,omitempty"`
	OtherSlots             []TimeSlot        `json:"other_available_slots_for_that_day"`
	WaitlistAvailable      bool              `json:"is_waitlist_available,omitempty"`
	NextAvailableDate      *NextAvailability `json:"next_available_date"`
}
