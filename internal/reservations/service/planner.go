package service

import (
	"strings"

	"tavolo/internal/zenchef"
	"tavolo/pkg/model"
)

type MutationMode string

const (
	// MutationTimeOnly moves the booking to another slot without touching
	// anything else. The platform applies it without re-validating guest
	// details, so it is the least destructive call available.
	MutationTimeOnly MutationMode = "time-only"
	// MutationFull rewrites the whole booking record.
	MutationFull MutationMode = "full"
)

// MutationPlan is the instruction the planner hands to the transport layer.
// Day and Time are set for both modes; Payload only matters in full mode.
type MutationPlan struct {
	Mode    MutationMode
	Day     string
	Time    string
	Payload zenchef.BookingPayload
}

// PlanUpdate decides how to apply requested changes to an existing booking.
// The cheap time-only move is chosen only when every identity field (date,
// guest count, name, phone, email) is untouched, no offer is being set or
// changed, and no free-text or room preference arrives. Phone and email are
// compared by strict equality; formatting differences count as changes.
func PlanUpdate(current model.Booking, update model.ReservationUpdate, areas []model.SeatingArea) MutationPlan {
	if isTimeOnly(current, update) {
		return MutationPlan{
			Mode: MutationTimeOnly,
			Day:  current.Day,
			Time: *update.Time,
		}
	}

	merged := current
	if update.Date != nil {
		merged.Day = *update.Date
	}
	if update.Time != nil {
		merged.Time = *update.Time
	}
	if update.GuestCount != nil {
		merged.GuestCount = *update.GuestCount
	}
	if update.GuestName != nil {
		merged.FirstName, merged.LastName = SplitGuestName(*update.GuestName)
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Comments != nil {
		merged.Comments = *update.Comments
	}
	if update.Allergies != nil {
		merged.Allergies = *update.Allergies
	}
	if update.OfferID != nil {
		merged.OfferID = update.OfferID
	}

	roomID := merged.RoomID
	if update.SeatingAreaID != nil {
		// An unresolvable area id means "no preference", never an error.
		roomID = ResolveRoomID(*update.SeatingAreaID, areas)
	}

	payload := zenchef.BookingPayload{
		Day:       merged.Day,
		Time:      merged.Time,
		NbGuests:  merged.GuestCount,
		Firstname: merged.FirstName,
		Lastname:  merged.LastName,
		Phone:     merged.Phone,
		Email:     merged.Email,
		Comments:  merged.Comments,
		Allergies: merged.Allergies,
		RoomID:    roomID,
	}
	if merged.OfferID != nil {
		payload.Offer = &zenchef.OfferSelection{ID: *merged.OfferID}
	}

	return MutationPlan{
		Mode:    MutationFull,
		Day:     merged.Day,
		Time:    merged.Time,
		Payload: payload,
	}
}

// PlanCreate assembles the booking payload for a new reservation.
func PlanCreate(req model.ReservationRequest, areas []model.SeatingArea) zenchef.BookingPayload {
	first, last := SplitGuestName(req.GuestName)

	payload := zenchef.BookingPayload{
		Day:       req.Date,
		Time:      req.Time,
		NbGuests:  req.GuestCount,
		Firstname: first,
		Lastname:  last,
		Phone:     req.Phone,
		Email:     req.Email,
		Comments:  req.Comments,
		Allergies: req.Allergies,
	}
	if req.OfferID != nil {
		payload.Offer = &zenchef.OfferSelection{ID: *req.OfferID}
	}
	if req.SeatingAreaID != "" {
		payload.RoomID = ResolveRoomID(req.SeatingAreaID, areas)
	}

	return payload
}

func isTimeOnly(current model.Booking, update model.ReservationUpdate) bool {
	if update.Time == nil || *update.Time == current.Time {
		return false
	}
	if update.Date != nil && *update.Date != current.Day {
		return false
	}
	if update.GuestCount != nil && *update.GuestCount != current.GuestCount {
		return false
	}
	if update.GuestName != nil {
		first, last := SplitGuestName(*update.GuestName)
		if first != current.FirstName || last != current.LastName {
			return false
		}
	}
	if update.Phone != nil && *update.Phone != current.Phone {
		return false
	}
	if update.Email != nil && *update.Email != current.Email {
		return false
	}
	if update.OfferID != nil {
		if current.OfferID == nil || *update.OfferID != *current.OfferID {
			return false
		}
	}
	if update.Comments != nil || update.Allergies != nil || update.SeatingAreaID != nil {
		return false
	}
	return true
}

// SplitGuestName breaks a full name on the first whitespace run. A name
// without any space becomes a last name only, matching how the booking
// platform displays single-word names.
func SplitGuestName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	fields := strings.Fields(full)
	if len(fields) == 1 {
		return "", fields[0]
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// ResolveRoomID maps an internal seating-area id to the platform's room id.
func ResolveRoomID(seatingAreaID string, areas []model.SeatingArea) *int {
	for _, area := range areas {
		if area.ID == seatingAreaID {
			roomID := area.ExternalRoomID
			return &roomID
		}
	}
	return nil
}
