package zenchef

import (
	"encoding/json"
	"testing"
	"time"
)

const feedFixture = `[
  {
    "date": "2026-09-04",
    "shifts": [
      {
        "id": 12,
        "name": "Dinner",
        "markedAsFull": false,
        "capacity": {"min": 2, "max": 8},
        "bookableFrom": "2026-08-01T00:00:00Z",
        "bookableTo": null,
        "prepaymentParam": {"isWebBookingAskable": true, "minGuests": 6, "chargePerGuest": 25},
        "cancelationParam": {"enduserCancelableBeforeSeconds": 86400},
        "isOfferRequired": true,
        "offerRequiredFromPax": 4,
        "offers": [
          {"id": 7, "name": "Tasting menu", "description": "", "isPrivate": false, "minPaxAvailable": 2, "maxPaxAvailable": 10}
        ],
        "waitlistTotal": 0,
        "shiftSlots": [
          {
            "name": "19:00",
            "closed": false,
            "markedAsFull": false,
            "possibleGuests": [2, 4, 6],
            "availableRoomsByPartySize": {"2": [101], "4": [101, 102], "bad": [9]},
            "bookableFrom": null,
            "bookableTo": null
          }
        ]
      }
    ]
  }
]`

func TestDecodeDays(t *testing.T) {
	var raw []feedDay
	if err := json.Unmarshal([]byte(feedFixture), &raw); err != nil {
		t.Fatalf("failed to unmarshal fixture: %v", err)
	}

	days := decodeDays(raw)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	day := days[0]
	if day.Date != "2026-09-04" {
		t.Errorf("expected date 2026-09-04, got %s", day.Date)
	}
	if len(day.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(day.Shifts))
	}

	shift := day.Shifts[0]
	if shift.Name != "Dinner" {
		t.Errorf("expected shift name Dinner, got %s", shift.Name)
	}
	if shift.Capacity == nil || *shift.Capacity.Min != 2 || *shift.Capacity.Max != 8 {
		t.Errorf("capacity not decoded: %+v", shift.Capacity)
	}
	if shift.BookableFrom == nil || !shift.BookableFrom.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bookableFrom not decoded: %v", shift.BookableFrom)
	}
	if shift.BookableTo != nil {
		t.Errorf("null bookableTo should decode to nil, got %v", shift.BookableTo)
	}
	if shift.Prepayment == nil || !shift.Prepayment.WebBookingAskable || shift.Prepayment.MinGuests != 6 || shift.Prepayment.ChargePerGuest != 25 {
		t.Errorf("prepayment not decoded: %+v", shift.Prepayment)
	}
	if shift.Cancellation == nil || shift.Cancellation.CancelableBefore != 24*time.Hour {
		t.Errorf("cancellation not decoded: %+v", shift.Cancellation)
	}
	if !shift.OfferRequired || shift.OfferRequiredFromPax == nil || *shift.OfferRequiredFromPax != 4 {
		t.Errorf("offer requirement not decoded: required=%v fromPax=%v", shift.OfferRequired, shift.OfferRequiredFromPax)
	}
	if len(shift.Offers) != 1 || shift.Offers[0].ID != 7 || shift.Offers[0].Private {
		t.Errorf("offers not decoded: %+v", shift.Offers)
	}

	if len(shift.Slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(shift.Slots))
	}
	slot := shift.Slots[0]
	if slot.Name != "19:00" {
		t.Errorf("expected slot name 19:00, got %s", slot.Name)
	}
	if len(slot.RoomsByPartySize) != 2 {
		t.Errorf("unparseable party-size key should be dropped, got %v", slot.RoomsByPartySize)
	}
	if rooms := slot.RoomsByPartySize[4]; len(rooms) != 2 || rooms[0] != 101 || rooms[1] != 102 {
		t.Errorf("rooms for party size 4 not decoded: %v", rooms)
	}
}

func TestParseTimestampMalformedMeansNoWindow(t *testing.T) {
	tests := []struct {
		name  string
		value *string
	}{
		{"nil", nil},
		{"empty", strPtr("")},
		{"not a timestamp", strPtr("next tuesday")},
		{"wrong layout", strPtr("01/08/2026 00:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTimestamp(tt.value); got != nil {
				t.Errorf("a window the feed cannot express must decode as absent, got %v", got)
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestDecodeBooking(t *testing.T) {
	record := bookingRecord{
		ID:       42,
		Day:      "2026-09-04",
		Time:     "19:30:00",
		NbGuests: 4,
		Status:   "confirmed",
		Offer:    &struct {
			ID int `json:"id"`
		}{ID: 7},
	}

	b := decodeBooking(record)
	if b.Time != "19:30" {
		t.Errorf("expected HH:MM:SS trimmed to 19:30, got %s", b.Time)
	}
	if b.OfferID == nil || *b.OfferID != 7 {
		t.Errorf("offer id not decoded: %v", b.OfferID)
	}
}
