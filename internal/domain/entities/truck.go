package entities

import (
	"fmt"
	"time"
)

// Pallet geometry constants. A case holds 10 units, 32 cases make a pallet
// (320 units/pallet), and 44 pallets make a full truck (14080 units).
const (
	UnitsPerCase     = 10
	CasesPerPallet   = 32
	UnitsPerPallet   = UnitsPerCase * CasesPerPallet // 320
	PalletsPerTruck  = 44
	UnitsPerFullLoad = UnitsPerPallet * PalletsPerTruck // 14080
)

// TruckSchedule describes a recurring (or daily) truck departure between two
// nodes, optionally visiting intermediate stops before the final
// destination.
type TruckSchedule struct {
	ID               TruckID
	Origin           NodeID
	Destination      NodeID
	DayOfWeek        *time.Weekday // nil = runs daily
	DeparturePeriod  DeparturePeriod
	CapacityUnits    Quantity
	CostFixed        float64
	CostPerUnit      float64
	IntermediateStops []NodeID
	PalletCapacity   int
	UnitsPerPallet   int
	UnitsPerCase     int
}

// Validate checks structural invariants: origin != destination, positive
// capacity, and no intermediate stop repeating the origin or destination.
// The pallet geometry fields are not checked.
func (t TruckSchedule) Validate() error {
	if t.Origin == t.Destination {
		return fmt.Errorf("truck %s: origin and destination must differ", t.ID)
	}
	if t.CapacityUnits <= 0 {
		return fmt.Errorf("truck %s: capacity must be > 0, got %d", t.ID, t.CapacityUnits)
	}
	for _, stop := range t.IntermediateStops {
		if stop == t.Origin || stop == t.Destination {
			return fmt.Errorf("truck %s: intermediate stop %s duplicates origin/destination", t.ID, stop)
		}
	}
	return nil
}

// RunsOn reports whether the truck departs on the given weekday.
func (t TruckSchedule) RunsOn(day time.Weekday) bool {
	return t.DayOfWeek == nil || *t.DayOfWeek == day
}

// Legs expands an intermediate-stop truck schedule into the ordered sequence
// of (origin, destination) node pairs it physically visits: origin -> stop1
// -> stop2 -> ... -> destination.
func (t TruckSchedule) Legs() [][2]NodeID {
	stops := append([]NodeID{t.Origin}, t.IntermediateStops...)
	stops = append(stops, t.Destination)

	legs := make([][2]NodeID, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		legs = append(legs, [2]NodeID{stops[i], stops[i+1]})
	}
	return legs
}
