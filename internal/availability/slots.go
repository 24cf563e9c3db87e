package availability

import (
	"time"

	"tavolo/pkg/model"
)

// RequestedTimeJudgment answers whether the specifically requested time is
// bookable, and through which seating areas.
type RequestedTimeJudgment struct {
	Available    bool
	SeatingAreas []model.SeatingAreaInfo
}

// DayResolution is the outcome of running the slot rule chain over one day.
// RequestedTime is nil when no specific time was asked about.
type DayResolution struct {
	Slots         []model.TimeSlot
	RequestedTime *RequestedTimeJudgment
	WaitlistTotal int
}

// mergedSlot accumulates the contributions of every shift that reaches a
// given slot name. Room sets union; a payment requirement, once set, is
// never cleared (the higher charge wins); notCancellable is sticky true.
type mergedSlot struct {
	areaOrder      []string
	areas          map[string]model.SeatingArea
	payment        *float64
	notCancellable bool
}

// ResolveDaySlots applies the per-shift and per-slot rule chain for one day
// and merges survivors by slot name. The rules short-circuit in order:
// fullness, capacity bounds, slot open, bookable window, party-size fit,
// room mapping. Prepayment and cancellation conditions are attached to
// whatever survives.
//
// day must be midnight in the restaurant's timezone; slot names are
// wall-clock HH:MM on that day.
func ResolveDaySlots(day time.Time, shifts []model.Shift, partySize int, requestedTime string, known []model.SeatingArea, now time.Time) DayResolution {
	merged := make(map[string]*mergedSlot)
	var slotOrder []string
	waitlistTotal := 0

	for _, shift := range shifts {
		waitlistTotal += shift.WaitlistTotal

		if shift.MarkedAsFull {
			continue
		}
		if shift.Capacity != nil {
			if shift.Capacity.Min != nil && partySize < *shift.Capacity.Min {
				continue
			}
			if shift.Capacity.Max != nil && partySize > *shift.Capacity.Max {
				continue
			}
		}

		for _, slot := range shift.Slots {
			if slot.Closed || slot.MarkedAsFull {
				continue
			}

			bookableFrom := shift.BookableFrom
			if slot.BookableFrom != nil {
				bookableFrom = slot.BookableFrom
			}
			bookableTo := shift.BookableTo
			if slot.BookableTo != nil {
				bookableTo = slot.BookableTo
			}
			if bookableFrom != nil && now.Before(*bookableFrom) {
				continue
			}
			if bookableTo != nil && now.After(*bookableTo) {
				continue
			}

			if !containsInt(slot.PossibleGuests, partySize) {
				continue
			}

			mapped := MapSeatingAreas(slot.RoomsByPartySize[partySize], known, nil, false)
			if len(mapped) == 0 {
				continue
			}

			var payment *float64
			if p := shift.Prepayment; p != nil && p.WebBookingAskable && partySize >= p.MinGuests {
				charge := p.ChargePerGuest
				payment = &charge
			}

			notCancellable := false
			if c := shift.Cancellation; c != nil {
				notCancellable = reservationInstant(day, slot.Name).Sub(now) < c.CancelableBefore
			}

			ms, ok := merged[slot.Name]
			if !ok {
				ms = &mergedSlot{areas: make(map[string]model.SeatingArea)}
				merged[slot.Name] = ms
				slotOrder = append(slotOrder, slot.Name)
			}
			for _, info := range mapped {
				if _, seen := ms.areas[info.ID]; !seen {
					ms.areas[info.ID] = info.SeatingArea
					ms.areaOrder = append(ms.areaOrder, info.ID)
				}
			}
			if payment != nil && (ms.payment == nil || *payment > *ms.payment) {
				ms.payment = payment
			}
			if notCancellable {
				ms.notCancellable = true
			}
		}
	}

	res := DayResolution{
		Slots:         make([]model.TimeSlot, 0, len(slotOrder)),
		WaitlistTotal: waitlistTotal,
	}
	for _, name := range slotOrder {
		res.Slots = append(res.Slots, merged[name].toTimeSlot(name))
	}

	if requestedTime != "" {
		judgment := &RequestedTimeJudgment{}
		if ms, ok := merged[requestedTime]; ok {
			judgment.Available = true
			judgment.SeatingAreas = ms.toTimeSlot(requestedTime).SeatingAreas
		}
		res.RequestedTime = judgment
	}

	return res
}

func (ms *mergedSlot) toTimeSlot(name string) model.TimeSlot {
	areas := make([]model.SeatingAreaInfo, 0, len(ms.areaOrder))
	for _, id := range ms.areaOrder {
		areas = append(areas, model.SeatingAreaInfo{
			SeatingArea:     ms.areas[id],
			PaymentPerGuest: ms.payment,
			NotCancellable:  ms.notCancellable,
		})
	}
	return model.TimeSlot{
		Name:         name,
		SeatingAreas: areas,
	}
}

// reservationInstant places a HH:MM slot name on the given day. Malformed
// names resolve to midnight, which makes the cancellation window maximally
// strict rather than silently permissive.
func reservationInstant(day time.Time, slotName string) time.Time {
	t, err := time.Parse("15:04", slotName)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
