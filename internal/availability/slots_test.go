package availability

import (
	"testing"
	"time"

	"tavolo/pkg/model"
)

var (
	testDay = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func openSlot(name string, guests []int, rooms map[int][]int) model.Slot {
	return model.Slot{Name: name, PossibleGuests: guests, RoomsByPartySize: rooms}
}

func TestResolveDaySlotsShiftMarkedAsFull(t *testing.T) {
	shifts := []model.Shift{
		{
			Name:         "Dinner",
			MarkedAsFull: true,
			Slots: []model.Slot{
				openSlot("19:00", []int{2, 4}, map[int][]int{4: {101}}),
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 0 {
		t.Errorf("a full shift contributes no slots regardless of its children, got %v", res.Slots)
	}
}

func TestResolveDaySlotsCapacityBounds(t *testing.T) {
	shifts := []model.Shift{
		{
			Name:     "Dinner",
			Capacity: &model.ShiftCapacity{Min: intPtr(2), Max: intPtr(8)},
			Slots: []model.Slot{
				openSlot("19:00", []int{10}, map[int][]int{10: {101}}),
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 10, "", testAreas(), testNow)
	if len(res.Slots) != 0 {
		t.Errorf("party of 10 is outside capacity {2,8}, shift must be dropped entirely, got %v", res.Slots)
	}
}

func TestResolveDaySlotsClosedAndFullSlotsDropped(t *testing.T) {
	shifts := []model.Shift{
		{
			Name: "Dinner",
			Slots: []model.Slot{
				{Name: "19:00", Closed: true, PossibleGuests: []int{4}, RoomsByPartySize: map[int][]int{4: {101}}},
				{Name: "19:30", MarkedAsFull: true, PossibleGuests: []int{4}, RoomsByPartySize: map[int][]int{4: {101}}},
				openSlot("20:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 1 || res.Slots[0].Name != "20:00" {
		t.Errorf("only the open slot survives, got %v", res.Slots)
	}
}

func TestResolveDaySlotsBookableWindow(t *testing.T) {
	opensLater := testNow.Add(24 * time.Hour)
	closedEarlier := testNow.Add(-time.Hour)

	shifts := []model.Shift{
		{
			Name:         "Dinner",
			BookableFrom: &opensLater,
			Slots: []model.Slot{
				openSlot("19:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
		{
			Name:       "Late",
			BookableTo: &closedEarlier,
			Slots: []model.Slot{
				openSlot("22:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 0 {
		t.Errorf("slots outside their bookable window must be dropped, got %v", res.Slots)
	}
}

func TestResolveDaySlotsSlotWindowOverridesShift(t *testing.T) {
	shiftOpensLater := testNow.Add(24 * time.Hour)
	slotAlreadyOpen := testNow.Add(-24 * time.Hour)

	shifts := []model.Shift{
		{
			Name:         "Dinner",
			BookableFrom: &shiftOpensLater,
			Slots: []model.Slot{
				{
					Name:             "19:00",
					PossibleGuests:   []int{4},
					RoomsByPartySize: map[int][]int{4: {101}},
					BookableFrom:     &slotAlreadyOpen,
				},
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 1 {
		t.Errorf("slot-level window overrides the shift's, got %v", res.Slots)
	}
}

func TestResolveDaySlotsPartySizeFitAndRoomMapping(t *testing.T) {
	shifts := []model.Shift{
		{
			Name: "Dinner",
			Slots: []model.Slot{
				openSlot("19:00", []int{2, 4}, map[int][]int{4: {101}}),
				openSlot("19:30", []int{2}, map[int][]int{2: {101}}),      // party size not possible
				openSlot("20:00", []int{4}, map[int][]int{4: {999}}),      // no internal room
				openSlot("20:30", []int{4}, map[int][]int{2: {101}}),      // no rooms for this size
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 1 || res.Slots[0].Name != "19:00" {
		t.Fatalf("expected only 19:00 to survive, got %v", res.Slots)
	}
	areas := res.Slots[0].SeatingAreas
	if len(areas) != 1 || areas[0].ExternalRoomID != 101 {
		t.Errorf("expected exactly one mapped seating area for room 101, got %v", areas)
	}
}

func TestResolveDaySlotsPrepaymentAttached(t *testing.T) {
	shifts := []model.Shift{
		{
			Name:       "Dinner",
			Prepayment: &model.PrepaymentRule{WebBookingAskable: true, MinGuests: 6, ChargePerGuest: 25},
			Slots: []model.Slot{
				openSlot("19:00", []int{4, 6}, map[int][]int{4: {101}, 6: {101}}),
			},
		},
	}

	small := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if p := small.Slots[0].SeatingAreas[0].PaymentPerGuest; p != nil {
		t.Errorf("party of 4 is under the prepayment minimum, got charge %v", *p)
	}

	large := ResolveDaySlots(testDay, shifts, 6, "", testAreas(), testNow)
	if p := large.Slots[0].SeatingAreas[0].PaymentPerGuest; p == nil || *p != 25 {
		t.Errorf("party of 6 requires prepayment of 25 per guest, got %v", p)
	}
}

func TestResolveDaySlotsCancellationWindow(t *testing.T) {
	shifts := []model.Shift{
		{
			Name:         "Dinner",
			Cancellation: &model.CancellationRule{CancelableBefore: 24 * time.Hour},
			Slots: []model.Slot{
				openSlot("19:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
	}

	// Reservation is 2026-09-04 19:00; 24h notice expires 2026-09-03 19:00.
	early := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	if early.Slots[0].SeatingAreas[0].NotCancellable {
		t.Error("three days of notice, slot must remain cancellable")
	}

	late := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC))
	if !late.Slots[0].SeatingAreas[0].NotCancellable {
		t.Error("nine hours of notice is inside the 24h window, slot must be notCancellable")
	}
}

func TestResolveDaySlotsMergeAcrossShifts(t *testing.T) {
	charge := 30.0
	shifts := []model.Shift{
		{
			Name: "Early dinner",
			Slots: []model.Slot{
				openSlot("19:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
		{
			Name:         "Late dinner",
			Prepayment:   &model.PrepaymentRule{WebBookingAskable: true, MinGuests: 2, ChargePerGuest: charge},
			Cancellation: &model.CancellationRule{CancelableBefore: 30 * 24 * time.Hour},
			Slots: []model.Slot{
				openSlot("19:00", []int{4}, map[int][]int{4: {102}}),
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 1 {
		t.Fatalf("19:00 reachable through two shifts must merge to one slot, got %v", res.Slots)
	}
	slot := res.Slots[0]
	if len(slot.SeatingAreas) != 2 {
		t.Fatalf("room sets must union, got %v", slot.SeatingAreas)
	}
	for _, area := range slot.SeatingAreas {
		if area.PaymentPerGuest == nil || *area.PaymentPerGuest != charge {
			t.Errorf("payment requirement, once set, is never cleared: area %s has %v", area.ID, area.PaymentPerGuest)
		}
		if !area.NotCancellable {
			t.Errorf("notCancellable is sticky true, area %s lost it", area.ID)
		}
	}
}

func TestResolveDaySlotsRequestedTime(t *testing.T) {
	shifts := []model.Shift{
		{
			Name: "Dinner",
			Slots: []model.Slot{
				openSlot("19:00", []int{4}, map[int][]int{4: {101}}),
			},
		},
	}

	hit := ResolveDaySlots(testDay, shifts, 4, "19:00", testAreas(), testNow)
	if hit.RequestedTime == nil || !hit.RequestedTime.Available {
		t.Fatal("19:00 survived the chain, requested time must be available")
	}
	if len(hit.RequestedTime.SeatingAreas) != 1 {
		t.Errorf("requested-time rooms missing: %v", hit.RequestedTime.SeatingAreas)
	}

	miss := ResolveDaySlots(testDay, shifts, 4, "21:00", testAreas(), testNow)
	if miss.RequestedTime == nil || miss.RequestedTime.Available {
		t.Error("21:00 does not exist, requested time must be judged unavailable")
	}

	none := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if none.RequestedTime != nil {
		t.Error("no requested time means no judgment at all, not a false one")
	}
}

func TestResolveDaySlotsWaitlistTotal(t *testing.T) {
	shifts := []model.Shift{
		{
			Name:          "Dinner",
			WaitlistTotal: 5,
			Slots: []model.Slot{
				{Name: "19:00", Closed: true},
			},
		},
	}

	res := ResolveDaySlots(testDay, shifts, 4, "", testAreas(), testNow)
	if len(res.Slots) != 0 {
		t.Fatalf("all slots closed, got %v", res.Slots)
	}
	if res.WaitlistTotal != 5 {
		t.Errorf("waitlist total must be carried, got %d", res.WaitlistTotal)
	}
}
