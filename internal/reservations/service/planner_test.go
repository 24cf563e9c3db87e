package service

import (
	"testing"

	"tavolo/pkg/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func currentBooking() model.Booking {
	return model.Booking{
		ID:         42,
		Day:        "2026-09-10",
		Time:       "19:00",
		GuestCount: 4,
		FirstName:  "Marie",
		LastName:   "Dupont",
		Phone:      "+33612345678",
		Email:      "marie@example.com",
		Status:     model.BookingStatusConfirmed,
	}
}

func plannerAreas() []model.SeatingArea {
	return []model.SeatingArea{
		{ID: "a1", ExternalRoomID: 101, Name: "Main room", MaxCapacity: 6},
		{ID: "a2", ExternalRoomID: 102, Name: "Terrace", MaxCapacity: 4},
	}
}

func TestPlanUpdateTimeOnly(t *testing.T) {
	update := model.ReservationUpdate{Time: strPtr("20:30")}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationTimeOnly {
		t.Fatalf("only the time changed, expected time-only, got %s", plan.Mode)
	}
	if plan.Day != "2026-09-10" || plan.Time != "20:30" {
		t.Errorf("plan must keep the current day and carry the new time, got %s %s", plan.Day, plan.Time)
	}
}

func TestPlanUpdateTimeWithGuestCountIsFull(t *testing.T) {
	update := model.ReservationUpdate{
		Time:       strPtr("20:30"),
		GuestCount: intPtr(6),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationFull {
		t.Fatalf("guest count changed alongside time, expected full, got %s", plan.Mode)
	}
	if plan.Payload.NbGuests != 6 || plan.Payload.Time != "20:30" {
		t.Errorf("payload must carry both changes, got %+v", plan.Payload)
	}
	if plan.Payload.Firstname != "Marie" || plan.Payload.Lastname != "Dupont" {
		t.Errorf("unchanged fields come from the current booking, got %+v", plan.Payload)
	}
}

func TestPlanUpdateUnchangedValuesStillTimeOnly(t *testing.T) {
	update := model.ReservationUpdate{
		Time:       strPtr("20:30"),
		Date:       strPtr("2026-09-10"),
		GuestCount: intPtr(4),
		Phone:      strPtr("+33612345678"),
		Email:      strPtr("marie@example.com"),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationTimeOnly {
		t.Errorf("resupplying identical values is not a change, got %s", plan.Mode)
	}
}

func TestPlanUpdatePhoneFormattingCountsAsChange(t *testing.T) {
	update := model.ReservationUpdate{
		Time:  strPtr("20:30"),
		Phone: strPtr("06 12 34 56 78"),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationFull {
		t.Errorf("phone comparison is strict equality, expected full, got %s", plan.Mode)
	}
}

func TestPlanUpdateSettingOfferForcesFull(t *testing.T) {
	update := model.ReservationUpdate{
		Time:    strPtr("20:30"),
		OfferID: intPtr(7),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationFull {
		t.Fatalf("setting an offer is never a time-only move, got %s", plan.Mode)
	}
	if plan.Payload.Offer == nil || plan.Payload.Offer.ID != 7 {
		t.Errorf("payload must carry the single offer block, got %+v", plan.Payload.Offer)
	}
}

func TestPlanUpdateSameOfferStaysTimeOnly(t *testing.T) {
	current := currentBooking()
	current.OfferID = intPtr(7)
	update := model.ReservationUpdate{
		Time:    strPtr("20:30"),
		OfferID: intPtr(7),
	}

	plan := PlanUpdate(current, update, plannerAreas())
	if plan.Mode != MutationTimeOnly {
		t.Errorf("resupplying the current offer is not a change, got %s", plan.Mode)
	}
}

func TestPlanUpdateSeatingAreaResolution(t *testing.T) {
	update := model.ReservationUpdate{
		Time:          strPtr("20:30"),
		SeatingAreaID: strPtr("a2"),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Mode != MutationFull {
		t.Fatalf("a room preference needs a full rewrite, got %s", plan.Mode)
	}
	if plan.Payload.RoomID == nil || *plan.Payload.RoomID != 102 {
		t.Errorf("internal area a2 maps to room 102, got %v", plan.Payload.RoomID)
	}
}

func TestPlanUpdateUnresolvableAreaMeansNoPreference(t *testing.T) {
	update := model.ReservationUpdate{
		Time:          strPtr("20:30"),
		SeatingAreaID: strPtr("gone"),
	}

	plan := PlanUpdate(currentBooking(), update, plannerAreas())
	if plan.Payload.RoomID != nil {
		t.Errorf("unknown area id means no preference, not an error, got %v", plan.Payload.RoomID)
	}
}

func TestPlanCreate(t *testing.T) {
	req := model.ReservationRequest{
		Date:          "2026-09-10",
		Time:          "19:00",
		GuestCount:    2,
		GuestName:     "Jean-Luc de la Fontaine",
		Phone:         "+33612345678",
		OfferID:       intPtr(3),
		SeatingAreaID: "a1",
	}

	payload := PlanCreate(req, plannerAreas())
	if payload.Firstname != "Jean-Luc" || payload.Lastname != "de la Fontaine" {
		t.Errorf("name splits on the first space, got %q %q", payload.Firstname, payload.Lastname)
	}
	if payload.Offer == nil || payload.Offer.ID != 3 {
		t.Errorf("expected offer block, got %v", payload.Offer)
	}
	if payload.RoomID == nil || *payload.RoomID != 101 {
		t.Errorf("expected room 101, got %v", payload.RoomID)
	}
}

func TestSplitGuestName(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		first string
		last  string
	}{
		{"two words", "Marie Dupont", "Marie", "Dupont"},
		{"single word goes to last name", "Madonna", "", "Madonna"},
		{"extra whitespace collapses", "  Marie   Dupont  ", "Marie", "Dupont"},
		{"multi-part surname", "Jean de la Fontaine", "Jean", "de la Fontaine"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitGuestName(tt.full)
			if first != tt.first || last != tt.last {
				t.Errorf("SplitGuestName(%q) = %q, %q; want %q, %q", tt.full, first, last, tt.first, tt.last)
			}
		})
	}
}
