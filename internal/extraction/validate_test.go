package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

func baseSolution(t *testing.T) *OptimizationSolution {
	t.Helper()
	window := entities.PlanningWindow{
		Start: mustParseDate(t, "2025-01-01"),
		End:   mustParseDate(t, "2025-01-07"),
	}
	return &OptimizationSolution{
		ModelType:         ModelType,
		ProductionBatches: []ProductionBatch{{Node: "M", Product: "P", Date: window.Start, Quantity: 250}},
		LaborHoursByDate:  map[string]LaborHours{"2025-01-01": {Used: 10, Paid: 12, Fixed: 10}},
		TotalProduction:   250,
		Costs:             CostBreakdown{Total: 500},
		TotalCost:         500,
		FillRate:          0.9,
		InventoryState:    map[string]float64{"M|P|ambient|2025-01-01": 50},
		Window:            window,
	}
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestValidate_HappyPath(t *testing.T) {
	sol := baseSolution(t)
	require.NoError(t, validate(sol, 300))
}

func TestValidate_TotalProductionMismatchIsFatal(t *testing.T) {
	sol := baseSolution(t)
	sol.TotalProduction = 999
	err := validate(sol, 300)
	require.Error(t, err)
	var contractErr *plannererrors.SolutionContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestValidate_PaidLessThanUsedIsFatal(t *testing.T) {
	sol := baseSolution(t)
	sol.LaborHoursByDate["2025-01-01"] = LaborHours{Used: 12, Paid: 8}
	require.Error(t, validate(sol, 300))
}

func TestValidate_FillRateOutOfRangeIsFatal(t *testing.T) {
	sol := baseSolution(t)
	sol.FillRate = 1.5
	require.Error(t, validate(sol, 300))
}

func TestValidate_InventoryKeyOutsideWindowIsFatal(t *testing.T) {
	sol := baseSolution(t)
	sol.InventoryState["M|P|ambient|2025-02-01"] = 10
	require.Error(t, validate(sol, 300))
}

func TestValidate_SanityFloorCatchesUnscalingBug(t *testing.T) {
	sol := baseSolution(t)
	sol.TotalProduction = 5
	sol.ProductionBatches = []ProductionBatch{{Node: "M", Product: "P", Date: sol.Window.Start, Quantity: 5}}
	require.Error(t, validate(sol, 10000))
}
