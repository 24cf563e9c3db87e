package zenchef

// Wire types for the Zenchef API. Raw payloads are decoded into these and
// immediately converted to pkg/model value types (decode.go); nothing
// outside this package sees the feed's own field names.

type feedDay struct {
	Date   string      `json:"date"`
	Shifts []feedShift `json:"shifts"`
}

type feedShift struct {
	ID                   int              `json:"id"`
	Name                 string           `json:"name"`
	MarkedAsFull         bool             `json:"markedAsFull"`
	Capacity             *feedCapacity    `json:"capacity"`
	BookableFrom         *string          `json:"bookableFrom"`
	BookableTo           *string          `json:"bookableTo"`
	PrepaymentParam      *feedPrepayment  `json:"prepaymentParam"`
	CancelationParam     *feedCancelation `json:"cancelationParam"`
	IsOfferRequired      bool             `json:"isOfferRequired"`
	OfferRequiredFromPax *int             `json:"offerRequiredFromPax"`
	Offers               []feedOffer      `json:"offers"`
	WaitlistTotal        int              `json:"waitlistTotal"`
	ShiftSlots           []feedSlot       `json:"shiftSlots"`
}

type feedCapacity struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type feedPrepayment struct {
	IsWebBookingAskable bool    `json:"isWebBookingAskable"`
	MinGuests           int     `json:"minGuests"`
	ChargePerGuest      float64 `json:"chargePerGuest"`
}

type feedCancelation struct {
	EnduserCancelableBeforeSeconds int `json:"enduserCancelableBeforeSeconds"`
}

type feedOffer struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	IsPrivate       bool   `json:"isPrivate"`
	MinPaxAvailable int    `json:"minPaxAvailable"`
	MaxPaxAvailable int    `json:"maxPaxAvailable"`
}

type feedSlot struct {
	Name                      string           `json:"name"`
	Closed                    bool             `json:"closed"`
	MarkedAsFull              bool             `json:"markedAsFull"`
	PossibleGuests            []int            `json:"possibleGuests"`
	AvailableRoomsByPartySize map[string][]int `json:"availableRoomsByPartySize"`
	BookableFrom              *string          `json:"bookableFrom"`
	BookableTo                *string          `json:"bookableTo"`
}

type bookingRecord struct {
	ID        int    `json:"id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	NbGuests  int    `json:"nbGuests"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Comments  string `json:"comments"`
	Allergies string `json:"allergies"`
	Status    string `json:"status"`
	Offer     *struct {
		ID int `json:"id"`
	} `json:"offer"`
	RoomID  *int `json:"roomId"`
	ShiftID int  `json:"shiftId"`
}

type bookingsResponse struct {
	Data []bookingRecord `json:"data"`
}

// OfferSelection is the single offer attached to a booking. The API accepts
// exactly one, never a list of alternatives.
type OfferSelection struct {
	ID int `json:"id"`
}

// BookingPayload is the full booking body sent on create and on full
// rewrites.
type BookingPayload struct {
	Day       string          `json:"day"`
	Time      string          `json:"time"`
	NbGuests  int             `json:"nbGuests"`
	Firstname string          `json:"firstname"`
	Lastname  string          `json:"lastname"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Comments  string          `json:"comments,omitempty"`
	Allergies string          `json:"allergies,omitempty"`
	Offer     *OfferSelection `json:"offer,omitempty"`
	RoomID    *int            `json:"roomId,omitempty"`
}

type changeTimeRequest struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}
