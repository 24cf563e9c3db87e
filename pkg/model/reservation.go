package model

// ReservationRequest is the body for creating a reservation. GuestName is
// the full name as spoken or typed; it is split into first and last name
// before reaching the booking platform.
type ReservationRequest struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required,datetime=15:04"`
	GuestCount    int    `json:"guest_count" validate:"required,min=1,max=100"`
	GuestName     string `json:"guest_name" validate:"required,min=1,max=200"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,intl_phone"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Comments      string `json:"comments,omitempty" validate:"omitempty,max=1000"`
	Allergies     string `json:"allergies,omitempty" validate:"omitempty,max=1000"`
	OfferID       *int   `json:"offer_id,omitempty" validate:"omitempty,min=1"`
	SeatingAreaID string `json:"seating_area_id,omitempty"`
}

// ReservationUpdate carries partial changes to an existing reservation. Nil
// means "leave as is". The mutation planner decides whether the change can
// be applied as a cheap time move or needs a full rewrite.
type ReservationUpdate struct {
	Date          *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time          *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	GuestCount    *int    `json:"guest_count,omitempty" validate:"omitempty,min=1,max=100"`
	GuestName     *string `json:"guest_name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,intl_phone"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Comments      *string `json:"comments,omitempty" validate:"omitempty,max=1000"`
	Allergies     *string `json:"allergies,omitempty" validate:"omitempty,max=1000"`
	OfferID       *int    `json:"offer_id,omitempty" validate:"omitempty,min=1"`
	SeatingAreaID *string `json:"seating_area_id,omitempty"`
}
