package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannermip "github.com/sverzijl/planner/internal/mip"
	"github.com/sverzijl/planner/internal/solve"
)

// These two fixtures solve the literal spec.md §8 end-to-end scenarios
// through the real solver and assert on Extract's output, rather than just
// on the variable counts a build-only test can see. Each scenario is its
// own test function; both share the solveScenario helper since both follow
// the same build -> solve -> extract shape.

func solveScenario(t *testing.T, data *entities.ValidatedPlanningData) *OptimizationSolution {
	t.Helper()
	built, err := plannermip.Build(data, 1000)
	require.NoError(t, err)

	result, err := solve.Solve(built, solve.Options{SolverName: "highs"})
	require.NoError(t, err)

	sol, err := Extract(built, result)
	require.NoError(t, err)
	return sol
}

// singleNodeSingleDayData is the literal "single-node, single-day,
// single-SKU" fixture from spec.md §8 scenario 1: node M produces P with
// units_per_mix=100, demand 250 at M on day 1, 12h fixed labor at 100
// units/h, ambient shelf life 30d.
func singleNodeSingleDayData(t *testing.T) *entities.ValidatedPlanningData {
	t.Helper()
	day1, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)

	return &entities.ValidatedPlanningData{
		Products: map[entities.ProductID]entities.Product{
			"P": {ID: "P", Name: "Widget", AmbientDays: 30, ThawedDays: 14, FrozenDays: 120, UnitsPerMix: 100},
		},
		Nodes: map[entities.NodeID]entities.Node{
			"M": {ID: "M", CanManufacture: true, ProductionRatePerHour: 100, CanStore: true, StorageMode: entities.StorageAmbient, HasDemand: true},
		},
		Labor: map[string]entities.LaborDay{
			"2025-01-01": {Date: day1, IsFixedDay: true, FixedHours: 12, MaxHours: 14, RegularRate: 25, OvertimeRate: 38},
		},
		Demand: []entities.DemandEntry{
			{Node: "M", Product: "P", Date: day1, Quantity: 250},
		},
		Costs: entities.CostStructure{
			ProductionCostPerUnit:  1.0,
			ShortagePenaltyPerUnit: 1000.0,
		},
		Window: entities.PlanningWindow{Start: day1, End: day1},
	}
}

// TestSolveAndExtract_SingleNodeSingleDay pins spec.md §8 scenario 1's
// documented answer: with production at $1/unit and shortage at $1000/unit,
// the cheaper choice is 3 mixes (300 units) covering all 250 units of
// demand, never shortage and never a fourth mix manufactured just to pad
// out a labor minimum-payment floor that has no slack to absorb on its own.
func TestSolveAndExtract_SingleNodeSingleDay(t *testing.T) {
	sol := solveScenario(t, singleNodeSingleDayData(t))

	require.Equal(t, 300.0, sol.TotalProduction)
	require.Equal(t, 1.0, sol.FillRate)
	require.Equal(t, 0.0, sol.TotalShortageUnits)
	require.Len(t, sol.ProductionBatches, 1)
	require.Equal(t, 300.0, sol.ProductionBatches[0].Quantity)
	require.InDelta(t, 300.0, sol.Costs.Production.Total, costTolerance)
}

// waFrozenRouteData is spec.md §8 scenario 3: M produces, ships frozen to
// Lineage (a frozen buffer with no manufacturing of its own), then on to W
// (ambient-only storage) — a single truck schedule with an intermediate
// stop, expanding into the two legs. The M->Lineage leg keeps the cargo
// frozen; Lineage->W lands it at a node that cannot store Frozen, so C4
// converts it to Thawed on arrival.
func waFrozenRouteData(t *testing.T) *entities.ValidatedPlanningData {
	t.Helper()
	day0, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)
	day4 := day0.AddDate(0, 0, 4)

	return &entities.ValidatedPlanningData{
		Products: map[entities.ProductID]entities.Product{
			"P": {ID: "P", Name: "Widget", AmbientDays: 17, ThawedDays: 14, FrozenDays: 120, UnitsPerMix: 100},
		},
		Nodes: map[entities.NodeID]entities.Node{
			"M":   {ID: "M", CanManufacture: true, ProductionRatePerHour: 100, CanStore: true, StorageMode: entities.StorageBoth},
			"LIN": {ID: "LIN", CanStore: true, StorageMode: entities.StorageFrozen},
			"W":   {ID: "W", CanStore: true, StorageMode: entities.StorageAmbient, HasDemand: true},
		},
		Routes: []entities.Route{
			{ID: "M-LIN", Origin: "M", Destination: "LIN", TransitDays: 1, TransportMode: entities.TransportFrozen, CostPerUnit: 0.1},
			{ID: "LIN-W", Origin: "LIN", Destination: "W", TransitDays: 3, TransportMode: entities.TransportFrozen, CostPerUnit: 0.2},
		},
		Trucks: []entities.TruckSchedule{
			{ID: "T1", Origin: "M", Destination: "W", IntermediateStops: []entities.NodeID{"LIN"}, CapacityUnits: 10000},
		},
		Labor: map[string]entities.LaborDay{
			"2025-01-01": {Date: day0, IsFixedDay: true, FixedHours: 8, MaxHours: 8, RegularRate: 25, OvertimeRate: 38},
		},
		Demand: []entities.DemandEntry{
			{Node: "W", Product: "P", Date: day4, Quantity: 100},
		},
		Costs: entities.CostStructure{
			ProductionCostPerUnit:  1.0,
			ShortagePenaltyPerUnit: 1000.0,
		},
		Window: entities.PlanningWindow{Start: day0, End: day4},
	}
}

// TestSolveAndExtract_WAFrozenRoute pins spec.md §8 scenario 3: the
// extracted shipment arriving at W must report Thawed, matching the
// aggregate inventory the MIP actually built under C4 — not the Frozen
// state it departed Lineage in.
func TestSolveAndExtract_WAFrozenRoute(t *testing.T) {
	sol := solveScenario(t, waFrozenRouteData(t))

	require.Equal(t, 0.0, sol.TotalShortageUnits)
	require.Equal(t, 1.0, sol.FillRate)

	var toW []Shipment
	for _, s := range sol.Shipments {
		if s.Destination == "W" {
			toW = append(toW, s)
		}
	}
	require.Len(t, toW, 1)
	require.Equal(t, entities.Thawed, toW[0].State)
	require.Equal(t, entities.Frozen, toW[0].DepartureState)
	require.Equal(t, 100.0, toW[0].Quantity)

	for key := range sol.InventoryState {
		node, _, state, _, ok := ParseInventoryKey(key)
		require.True(t, ok)
		if node == "W" {
			require.NotEqual(t, "frozen", state, "W cannot store Frozen inventory")
		}
	}
}
