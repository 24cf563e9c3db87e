package availability

import (
	"context"
	"time"

	"tavolo/pkg/logger"
	"tavolo/pkg/model"
)

// FeedFetcher reads the availability feed for a date range. Satisfied by
// the zenchef client.
type FeedFetcher interface {
	Availabilities(ctx context.Context, creds model.ZenchefCredentials, from, to time.Time) ([]model.DayAvailability, error)
}

// searchNextAvailableDate scans forward from the day after start, in
// batches no wider than the feed accepts per request, up to horizonDays.
// The first day with any open slot that fits the party size wins; its slot
// order is the feed's, no re-sorting. A failed batch is logged and skipped,
// never fatal. Batches run sequentially because an early hit must stop the
// remainder.
func searchNextAvailableDate(
	ctx context.Context,
	feed FeedFetcher,
	log *logger.Logger,
	creds model.ZenchefCredentials,
	start time.Time,
	partySize int,
	known []model.SeatingArea,
	horizonDays, batchDays int,
) *model.NextAvailability {
	offset := 1
	for offset <= horizonDays {
		batchEnd := offset + batchDays - 1
		if batchEnd > horizonDays {
			batchEnd = horizonDays
		}
		from := start.AddDate(0, 0, offset)
		to := start.AddDate(0, 0, batchEnd)
		offset = batchEnd + 1

		days, err := feed.Availabilities(ctx, creds, from, to)
		if err != nil {
			log.Warn("Skipping failed feed batch in next-date search",
				"from", from.Format("2006-01-02"),
				"to", to.Format("2006-01-02"),
				"error", err,
			)
			continue
		}

		for _, day := range days {
			for _, shift := range day.Shifts {
				// A full shift contributes no slots regardless of its
				// children, here as in the single-day resolver.
				if shift.MarkedAsFull {
					continue
				}
				for _, slot := range shift.Slots {
					if slot.Closed || slot.MarkedAsFull {
						continue
					}
					if !containsInt(slot.PossibleGuests, partySize) {
						continue
					}
					// Mapped areas may be empty: the date is open externally
					// but no internal room is configured; callers surface a
					// warning rather than dropping the date.
					return &model.NextAvailability{
						Date:         day.Date,
						SeatingAreas: MapSeatingAreas(slot.RoomsByPartySize[partySize], known, nil, false),
					}
				}
			}
		}
	}
	return nil
}
