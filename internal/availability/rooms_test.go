package availability

import (
	"testing"

	"tavolo/pkg/model"
)

func testAreas() []model.SeatingArea {
	return []model.SeatingArea{
		{ID: "a1", ExternalRoomID: 101, Name: "Main room", MaxCapacity: 6},
		{ID: "a2", ExternalRoomID: 102, Name: "Terrace", MaxCapacity: 4},
		{ID: "a3", ExternalRoomID: 103, Name: "Private salon", MaxCapacity: 12},
	}
}

func TestMapSeatingAreas(t *testing.T) {
	known := testAreas()

	infos := MapSeatingAreas([]int{102, 999, 101}, known, nil, false)
	if len(infos) != 2 {
		t.Fatalf("expected 2 mapped areas, got %d", len(infos))
	}
	if infos[0].ID != "a2" || infos[1].ID != "a1" {
		t.Errorf("expected input order preserved (a2, a1), got (%s, %s)", infos[0].ID, infos[1].ID)
	}
}

func TestMapSeatingAreasUnknownIDsDroppedSilently(t *testing.T) {
	infos := MapSeatingAreas([]int{777, 888}, testAreas(), nil, false)
	if len(infos) != 0 {
		t.Errorf("expected unknown rooms to be dropped, got %d areas", len(infos))
	}
}

func TestMapSeatingAreasCopiesConditions(t *testing.T) {
	charge := 25.0
	infos := MapSeatingAreas([]int{101, 103}, testAreas(), &charge, true)
	if len(infos) != 2 {
		t.Fatalf("expected 2 mapped areas, got %d", len(infos))
	}
	for _, info := range infos {
		if info.PaymentPerGuest == nil || *info.PaymentPerGuest != charge {
			t.Errorf("area %s: payment condition not copied", info.ID)
		}
		if !info.NotCancellable {
			t.Errorf("area %s: cancellation condition not copied", info.ID)
		}
	}
}
