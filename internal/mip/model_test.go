package mip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// singleNodeScenario builds the literal "single-node, single-day,
// single-SKU" fixture from spec.md §8: node M produces P with
// units_per_mix=100, demand 250 at M on day 1, 12h fixed labor at 100
// units/h, ambient shelf life 30d.
func singleNodeScenario(t *testing.T) *entities.ValidatedPlanningData {
	t.Helper()
	day1, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)

	node := entities.Node{
		ID: "M", CanManufacture: true, ProductionRatePerHour: 100,
		CanStore: true, StorageMode: entities.StorageAmbient, HasDemand: true,
	}
	product := entities.Product{ID: "P", Name: "Widget", AmbientDays: 30, ThawedDays: 14, FrozenDays: 120, UnitsPerMix: 100}

	return &entities.ValidatedPlanningData{
		Products: map[entities.ProductID]entities.Product{"P": product},
		Nodes:    map[entities.NodeID]entities.Node{"M": node},
		Routes:   nil,
		Trucks:   nil,
		Labor: map[string]entities.LaborDay{
			"2025-01-01": {Date: day1, IsFixedDay: true, FixedHours: 12, MaxHours: 14, RegularRate: 25, OvertimeRate: 38, MinPaidHours: 4},
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

func TestBuild_SingleNodeSingleDay(t *testing.T) {
	data := singleNodeScenario(t)

	built, err := Build(data, 1000)
	require.NoError(t, err)
	require.NotNil(t, built)
	require.Equal(t, 1, built.Horizon.Len())

	require.Len(t, built.Vars.ProductionKeys, 1)
	require.Len(t, built.Vars.MixCountKeys, 1)
	require.Len(t, built.Vars.ShortageKeys, 1)

	key := built.Vars.ProductionKeys[0]
	require.Equal(t, entities.NodeID("M"), key.Node)
	require.Equal(t, entities.ProductID("P"), key.Product)
	require.Equal(t, 0, key.Day)
}

func TestBuild_NoTrucksMeansNoTransitVariables(t *testing.T) {
	data := singleNodeScenario(t)
	built, err := Build(data, 1000)
	require.NoError(t, err)
	require.Empty(t, built.Vars.TransitKeys)
}

func TestMaxMixesPerDay(t *testing.T) {
	node := entities.Node{CanManufacture: true, ProductionRatePerHour: 100}
	product := entities.Product{UnitsPerMix: 100}
	require.Equal(t, 24, maxMixesPerDay(node, product))
}

func TestFirstDisposalDay(t *testing.T) {
	require.Equal(t, 0, firstDisposalDay(entities.Product{AmbientDays: 1}, entities.Ambient))
	require.Equal(t, 29, firstDisposalDay(entities.Product{AmbientDays: 30}, entities.Ambient))
}
