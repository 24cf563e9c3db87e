package zenchef

import (
	"strconv"
	"time"

	"tavolo/pkg/model"
)

func decodeDays(days []feedDay) []model.DayAvailability {
	out := make([]model.DayAvailability, 0, len(days))
	for _, d := range days {
		out = append(out, model.DayAvailability{
			Date:   d.Date,
			Shifts: decodeShifts(d.Shifts),
		})
	}
	return out
}

func decodeShifts(shifts []feedShift) []model.Shift {
	out := make([]model.Shift, 0, len(shifts))
	for _, s := range shifts {
		shift := model.Shift{
			ID:                   s.ID,
			Name:                 s.Name,
			MarkedAsFull:         s.MarkedAsFull,
			BookableFrom:         parseTimestamp(s.BookableFrom),
			BookableTo:           parseTimestamp(s.BookableTo),
			OfferRequired:        s.IsOfferRequired,
			OfferRequiredFromPax: s.OfferRequiredFromPax,
			WaitlistTotal:        s.WaitlistTotal,
		}
		if s.Capacity != nil {
			shift.Capacity = &model.ShiftCapacity{Min: s.Capacity.Min, Max: s.Capacity.Max}
		}
		if s.PrepaymentParam != nil {
			shift.Prepayment = &model.PrepaymentRule{
				WebBookingAskable: s.PrepaymentParam.IsWebBookingAskable,
				MinGuests:         s.PrepaymentParam.MinGuests,
				ChargePerGuest:    s.PrepaymentParam.ChargePerGuest,
			}
		}
		if s.CancelationParam != nil {
			shift.Cancellation = &model.CancellationRule{
				CancelableBefore: time.Duration(s.CancelationParam.EnduserCancelableBeforeSeconds) * time.Second,
			}
		}
		for _, o := range s.Offers {
			shift.Offers = append(shift.Offers, model.Offer{
				ID:          o.ID,
				Name:        o.Name,
				Description: o.Description,
				Private:     o.IsPrivate,
				MinPax:      o.MinPaxAvailable,
				MaxPax:      o.MaxPaxAvailable,
			})
		}
		for _, sl := range s.ShiftSlots {
			shift.Slots = append(shift.Slots, model.Slot{
				Name:             sl.Name,
				Closed:           sl.Closed,
				MarkedAsFull:     sl.MarkedAsFull,
				PossibleGuests:   sl.PossibleGuests,
				RoomsByPartySize: decodeRoomMap(sl.AvailableRoomsByPartySize),
				BookableFrom:     parseTimestamp(sl.BookableFrom),
				BookableTo:       parseTimestamp(sl.BookableTo),
			})
		}
		out = append(out, shift)
	}
	return out
}

// decodeRoomMap converts the feed's string-keyed party-size map to int keys.
// Entries with unparseable keys are dropped.
func decodeRoomMap(raw map[string][]int) map[int][]int {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[int][]int, len(raw))
	for k, rooms := range raw {
		size, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[size] = rooms
	}
	return out
}

// parseTimestamp reads an RFC3339 instant from the feed. A malformed value
// is treated as no window at all, leaving the slot bookable: a window the
// feed cannot express correctly should widen availability, not lock
// customers out of an otherwise open slot.
func parseTimestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func decodeBooking(r bookingRecord) model.Booking {
	b := model.Booking{
		ID:         r.ID,
		Day:        r.Day,
		Time:       normalizeSlotTime(r.Time),
		GuestCount: r.NbGuests,
		FirstName:  r.Firstname,
		LastName:   r.Lastname,
		Phone:      r.Phone,
		Email:      r.Email,
		Comments:   r.Comments,
		Allergies:  r.Allergies,
		Status:     r.Status,
		RoomID:     r.RoomID,
		ShiftID:    r.ShiftID,
	}
	if r.Offer != nil {
		offerID := r.Offer.ID
		b.OfferID = &offerID
	}
	return b
}

func decodeBookings(records []bookingRecord) []model.Booking {
	out := make([]model.Booking, 0, len(records))
	for _, r := range records {
		out = append(out, decodeBooking(r))
	}
	return out
}

// normalizeSlotTime trims "HH:MM:SS" to "HH:MM"; the engine compares slot
// names at minute granularity.
func normalizeSlotTime(t string) string {
	if len(t) == 8 && t[2] == ':' && t[5] == ':' {
		return t[:5]
	}
	return t
}
