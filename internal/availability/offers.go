package availability

import "tavolo/pkg/model"

// OfferRequirements is the outcome of resolving offer rules for one day and
// party size. Applies is false when no shift on the day runs offer logic for
// this party size at all; in that case Offers must be omitted by callers,
// not rendered as an empty list. An empty Offers with Applies true means
// offer logic runs but nothing matches the party size.
type OfferRequirements struct {
	Applies        bool
	Offers         []model.Offer
	RequiredBySlot map[string][]int
}

// ResolveOfferRequirements walks the day's shifts and collects the
// non-private offers valid for the party size, plus the offer ids each open
// slot demands a selection from.
func ResolveOfferRequirements(shifts []model.Shift, partySize int) OfferRequirements {
	req := OfferRequirements{
		RequiredBySlot: make(map[string][]int),
	}
	seenOffers := make(map[int]bool)

	for _, shift := range shifts {
		if !shift.OfferRequired {
			continue
		}
		if shift.OfferRequiredFromPax != nil && partySize < *shift.OfferRequiredFromPax {
			continue
		}
		req.Applies = true
		if req.Offers == nil {
			req.Offers = []model.Offer{}
		}

		var matching []int
		for _, offer := range shift.Offers {
			if offer.Private {
				continue
			}
			if partySize < offer.MinPax || partySize > offer.MaxPax {
				continue
			}
			matching = append(matching, offer.ID)
			if !seenOffers[offer.ID] {
				seenOffers[offer.ID] = true
				req.Offers = append(req.Offers, offer)
			}
		}
		if len(matching) == 0 {
			continue
		}

		for _, slot := range shift.Slots {
			if slot.Closed || slot.MarkedAsFull {
				continue
			}
			req.RequiredBySlot[slot.Name] = appendUnique(req.RequiredBySlot[slot.Name], matching)
		}
	}

	return req
}

func appendUnique(existing []int, ids []int) []int {
	for _, id := range ids {
		found := false
		for _, e := range existing {
			if e == id {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, id)
		}
	}
	return existing
}
