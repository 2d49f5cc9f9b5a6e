package entities

import "time"

// PlanningWindow is the inclusive [Start, End] horizon the plan covers.
type PlanningWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the planning window, inclusive.
func (w PlanningWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days returns the number of calendar days in the window, inclusive of both
// endpoints.
func (w PlanningWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// ValidatedPlanningData is the immutable, cross-referenced input container
// the MIP builder reads. It is only ever constructed by the validation
// pipeline (internal/validation), which guarantees every cross-invariant
// documented on the fields below.
type ValidatedPlanningData struct {
	Products  map[ProductID]Product
	Nodes     map[NodeID]Node
	Routes    []Route // post intermediate-stop expansion
	Trucks    []TruckSchedule
	Labor     map[string]LaborDay // keyed by date.Format("2006-01-02")
	Demand    []DemandEntry
	Inventory []InventoryEntry
	Costs     CostStructure
	Window    PlanningWindow
}

// LaborOn returns the labor calendar entry for a given date, if present.
func (d ValidatedPlanningData) LaborOn(t time.Time) (LaborDay, bool) {
	day, ok := d.Labor[t.Format("2006-01-02")]
	return day, ok
}
