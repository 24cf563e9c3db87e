package service

import (
	"reflect"
	"testing"
	"time"

	"tavolo/pkg/model"
)

var rankNow = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

func booking(id int, day, status, first, last string) model.Booking {
	return model.Booking{
		ID:        id,
		Day:       day,
		Status:    status,
		FirstName: first,
		LastName:  last,
	}
}

func TestRankBookingsDropsStale(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-08-22", model.BookingStatusConfirmed, "Marie", "Dupont"), // 10 days past
		booking(2, "2026-09-01", model.BookingStatusConfirmed, "Marie", "Dupont"), // today
		booking(3, "2026-08-26", model.BookingStatusConfirmed, "Marie", "Dupont"), // 6 days past
	}

	ranked := RankBookings(bookings, model.BookingFilters{}, rankNow)
	ids := bookingIDs(ranked)
	if !reflect.DeepEqual(ids, []int{2, 3}) {
		t.Errorf("ten days past is stale, today and six days past are not, got %v", ids)
	}
}

func TestRankBookingsStatusTiers(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-09-03", model.BookingStatusNoShow, "A", "B"),     // 2 days out
		booking(2, "2026-09-21", model.BookingStatusConfirmed, "A", "B"),  // 20 days out
		booking(3, "2026-09-02", model.BookingStatusCanceled, "A", "B"),   // 1 day out
	}

	ranked := RankBookings(bookings, model.BookingFilters{}, rankNow)
	ids := bookingIDs(ranked)
	// Confirmed precedes no_shown regardless of date distance; canceled is
	// always last.
	if !reflect.DeepEqual(ids, []int{2, 1, 3}) {
		t.Errorf("expected [2 1 3], got %v", ids)
	}
}

func TestRankBookingsDistanceWithinTier(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-09-15", model.BookingStatusConfirmed, "A", "B"), // 14 out
		booking(2, "2026-08-30", model.BookingStatusConfirmed, "A", "B"), // 2 past
		booking(3, "2026-09-06", model.BookingStatusConfirmed, "A", "B"), // 5 out
	}

	ranked := RankBookings(bookings, model.BookingFilters{}, rankNow)
	ids := bookingIDs(ranked)
	if !reflect.DeepEqual(ids, []int{2, 3, 1}) {
		t.Errorf("closest to today first, past or future alike, got %v", ids)
	}
}

func TestRankBookingsFuzzyName(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-09-05", model.BookingStatusConfirmed, "Marie", "Dupont"),
		booking(2, "2026-09-05", model.BookingStatusConfirmed, "Pierre", "Martin"),
		booking(3, "2026-09-05", model.BookingStatusConfirmed, "Maria", "Dupond"),
	}

	ranked := RankBookings(bookings, model.BookingFilters{Name: "Dupont"}, rankNow)
	ids := bookingIDs(ranked)
	if !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("Dupont and Dupond match within tolerance, Martin does not, got %v", ids)
	}
}

func TestRankBookingsShortNeedleTighterTolerance(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-09-05", model.BookingStatusConfirmed, "Ana", "Silva"),
		booking(2, "2026-09-05", model.BookingStatusConfirmed, "Eva", "Braun"),
	}

	ranked := RankBookings(bookings, model.BookingFilters{Name: "Ana"}, rankNow)
	ids := bookingIDs(ranked)
	if !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("a short needle allows a single edit only, got %v", ids)
	}
}

func TestRankBookingsIdempotent(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "2026-09-03", model.BookingStatusWaiting, "A", "B"),
		booking(2, "2026-09-03", model.BookingStatusSeated, "A", "B"),
		booking(3, "2026-09-03", model.BookingStatusConfirmed, "A", "B"),
	}

	first := RankBookings(bookings, model.BookingFilters{}, rankNow)
	second := RankBookings(first, model.BookingFilters{}, rankNow)
	if !reflect.DeepEqual(bookingIDs(first), bookingIDs(second)) {
		t.Errorf("ranking must be stable: %v then %v", bookingIDs(first), bookingIDs(second))
	}
	// Waiting and seated share a tier and the same date, so input order holds.
	if !reflect.DeepEqual(bookingIDs(first), []int{3, 1, 2}) {
		t.Errorf("expected [3 1 2], got %v", bookingIDs(first))
	}
}

func TestRankBookingsUnparseableDateDropped(t *testing.T) {
	bookings := []model.Booking{
		booking(1, "not-a-date", model.BookingStatusConfirmed, "A", "B"),
		booking(2, "2026-09-03", model.BookingStatusConfirmed, "A", "B"),
	}

	ranked := RankBookings(bookings, model.BookingFilters{}, rankNow)
	if !reflect.DeepEqual(bookingIDs(ranked), []int{2}) {
		t.Errorf("records without a usable date are not actionable, got %v", bookingIDs(ranked))
	}
}

func bookingIDs(bookings []model.Booking) []int {
	ids := make([]int, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}
