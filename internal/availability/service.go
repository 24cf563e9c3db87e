package availability

import (
	"context"
	"time"

	"tavolo/pkg/config"
	apperrors "tavolo/pkg/errors"
	"tavolo/pkg/model"
)

const dateLayout = "2006-01-02"

type Service interface {
	CheckAvailability(ctx context.Context, rc model.RestaurantContext, date time.Time, partySize int, requestedTime string) (*model.AvailabilityResult, error)
}

type service struct {
	feed FeedFetcher
	cfg  *config.Config
	now  func() time.Time
}

func NewService(feed FeedFetcher, cfg *config.Config) Service {
	return &service{
		feed: feed,
		cfg:  cfg,
		now:  time.Now,
	}
}

// CheckAvailability answers whether a party can be seated on a day, at an
// optional specific time, and what the alternatives are.
//
// The escalation gate runs before any external call: parties at or above
// the restaurant's threshold must never receive an automated slot offer, so
// the feed is not even consulted for them.
func (s *service) CheckAvailability(ctx context.Context, rc model.RestaurantContext, date time.Time, partySize int, requestedTime string) (*model.AvailabilityResult, error) {
	if partySize <= 0 {
		return nil, apperrors.InvalidInput("party size must be positive")
	}

	threshold := rc.Restaurant.MaxEscalationSeating
	if threshold > 0 && partySize >= threshold {
		s.cfg.Log.Info("Party size at or above escalation threshold, withholding automated offer",
			"restaurant_id", rc.Restaurant.ID,
			"party_size", partySize,
			"threshold", threshold,
		)
		notAvailable := false
		return &model.AvailabilityResult{
			RequestedSlotAvailable: &notAvailable,
			OtherSlots:             []model.TimeSlot{},
		}, nil
	}

	if rc.Restaurant.Zenchef == nil {
		return nil, apperrors.NotConfigured("restaurant is not linked to the booking platform")
	}
	creds := *rc.Restaurant.Zenchef

	// Areas big enough to trigger escalation on their own are excluded from
	// automated offers.
	known := rc.SeatingAreas
	if threshold > 0 {
		known = make([]model.SeatingArea, 0, len(rc.SeatingAreas))
		for _, area := range rc.SeatingAreas {
			if area.MaxCapacity < threshold {
				known = append(known, area)
			}
		}
	}

	day := s.restaurantDay(rc.Restaurant, date)

	days, err := s.feed.Availabilities(ctx, creds, day, day)
	if err != nil {
		s.cfg.Log.Error("Availability feed fetch failed",
			"restaurant_id", rc.Restaurant.ID,
			"date", day.Format(dateLayout),
			"error", err,
		)
		return nil, apperrors.FeedUnavailable(err)
	}

	shifts := findDayShifts(days, day.Format(dateLayout))

	result := &model.AvailabilityResult{
		OtherSlots: []model.TimeSlot{},
	}
	if requestedTime != "" {
		notAvailable := false
		result.RequestedSlotAvailable = &notAvailable
	}

	if shifts == nil {
		result.NextAvailableDate = searchNextAvailableDate(ctx, s.feed, s.cfg.Log, creds, day, partySize, known,
			s.cfg.SearchHorizonDays, s.cfg.FeedBatchDays)
		return result, nil
	}

	res := ResolveDaySlots(day, shifts, partySize, requestedTime, known, s.now())

	if res.RequestedTime != nil {
		result.RequestedSlotAvailable = &res.RequestedTime.Available
		result.RequestedTimeRooms = res.RequestedTime.SeatingAreas
	}

	offerReq := ResolveOfferRequirements(shifts, partySize)
	if offerReq.Applies {
		offers := offerReq.Offers
		result.Offers = &offers
	}
	for i := range res.Slots {
		if ids := offerReq.RequiredBySlot[res.Slots[i].Name]; len(ids) > 0 {
			res.Slots[i].OfferRequired = true
			res.Slots[i].RequiredOfferIDs = ids
		}
	}

	if len(res.Slots) == 0 {
		if res.WaitlistTotal > 0 {
			// A waitlist offer is materially different from "nothing for
			// weeks": do not fall through to the next-date search.
			result.WaitlistAvailable = true
			return result, nil
		}
		result.NextAvailableDate = searchNextAvailableDate(ctx, s.feed, s.cfg.Log, creds, day, partySize, known,
			s.cfg.SearchHorizonDays, s.cfg.FeedBatchDays)
		return result, nil
	}

	for _, slot := range res.Slots {
		if requestedTime != "" && slot.Name == requestedTime {
			continue
		}
		result.OtherSlots = append(result.OtherSlots, slot)
	}

	return result, nil
}

// restaurantDay normalizes a date to midnight in the restaurant's timezone,
// so bookable windows and cancellation deadlines are judged on local clocks.
func (s *service) restaurantDay(r model.Restaurant, date time.Time) time.Time {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil || r.Timezone == "" {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

func findDayShifts(days []model.DayAvailability, date string) []model.Shift {
	for _, d := range days {
		if d.Date == date {
			return d.Shifts
		}
	}
	return nil
}
