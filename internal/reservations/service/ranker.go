package service

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"tavolo/pkg/model"

	"github.com/agnivade/levenshtein"
)

const staleAfterDays = 7

// RankBookings filters and deterministically orders raw booking records for
// discovery. Name matching is typo-tolerant; everything else is exact and
// assumed already pushed down to the platform query. Bookings more than a
// week in the past are dropped because neither the voice agent nor the
// admin console can act on them.
func RankBookings(bookings []model.Booking, filters model.BookingFilters, now time.Time) []model.Booking {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ranked := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filters.Name != "" && !nameMatches(filters.Name, b) {
			continue
		}
		day, err := time.Parse("2006-01-02", b.Day)
		if err != nil {
			continue
		}
		if today.Sub(day) > staleAfterDays*24*time.Hour {
			continue
		}
		ranked = append(ranked, b)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ti, tj := statusTier(ranked[i].Status), statusTier(ranked[j].Status)
		if ti != tj {
			return ti < tj
		}
		return dayDistance(ranked[i].Day, today) < dayDistance(ranked[j].Day, today)
	})

	return ranked
}

// statusTier groups statuses for ranking: confirmed bookings first, canceled
// ones last, everything else in one middle tier.
func statusTier(status string) int {
	switch status {
	case model.BookingStatusConfirmed:
		return 0
	case model.BookingStatusCanceled:
		return 2
	default:
		return 1
	}
}

func dayDistance(day string, today time.Time) int {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	dist := int(d.Sub(today).Hours() / 24)
	if dist < 0 {
		dist = -dist
	}
	return dist
}

// nameMatches runs the needle against the full "first last" string and each
// part on its own. Tolerance is one edit for short needles, two otherwise;
// wide enough for common misspellings and phonetic near-misses, narrow
// enough to exclude unrelated names.
func nameMatches(needle string, b model.Booking) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}

	tolerance := 2
	if utf8.RuneCountInString(needle) < 5 {
		tolerance = 1
	}

	candidates := []string{
		strings.TrimSpace(b.FirstName + " " + b.LastName),
		b.FirstName,
		b.LastName,
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if levenshtein.ComputeDistance(needle, strings.ToLower(candidate)) <= tolerance {
			return true
		}
	}
	return false
}
