package entities

import "testing"

func TestTruckSchedule_Legs(t *testing.T) {
	truck := TruckSchedule{
		Origin:            "MFG",
		Destination:       "W",
		IntermediateStops: []NodeID{"LINEAGE"},
	}

	legs := truck.Legs()
	want := [][2]NodeID{{"MFG", "LINEAGE"}, {"LINEAGE", "W"}}
	if len(legs) != len(want) {
		t.Fatalf("expected %d legs, got %d", len(want), len(legs))
	}
	for i := range want {
		if legs[i] != want[i] {
			t.Errorf("leg %d: expected %v, got %v", i, want[i], legs[i])
		}
	}
}

func TestTruckSchedule_ValidateRejectsSelfLoop(t *testing.T) {
	truck := TruckSchedule{ID: "T1", Origin: "A", Destination: "A", CapacityUnits: 100}
	if err := truck.Validate(); err == nil {
		t.Fatal("expected self-loop truck to fail validation")
	}
}

func TestUnitsPerPalletGeometry(t *testing.T) {
	if UnitsPerPallet != 320 {
		t.Errorf("expected 320 units per pallet, got %d", UnitsPerPallet)
	}
	if UnitsPerFullLoad != 14080 {
		t.Errorf("expected 14080 units per full truck load, got %d", UnitsPerFullLoad)
	}
}
