package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func baseRawData(t *testing.T) RawData {
	window := entities.PlanningWindow{Start: mustDate(t, "2025-01-01"), End: mustDate(t, "2025-01-31")}
	return RawData{
		Products: []entities.Product{
			{ID: "P1", Name: "Widget", AmbientDays: 17, FrozenDays: 120, ThawedDays: 14, UnitsPerMix: 100},
		},
		Nodes: []entities.Node{
			{ID: "MFG", CanManufacture: true, ProductionRatePerHour: 100, CanStore: true, StorageMode: entities.StorageAmbient, HasDemand: false},
			{ID: "DEMAND1", CanStore: true, StorageMode: entities.StorageAmbient, HasDemand: true},
		},
		Routes: []entities.Route{
			{ID: "R1", Origin: "MFG", Destination: "DEMAND1", TransitDays: 1, TransportMode: entities.TransportAmbient, CostPerUnit: 0.5},
		},
		Demand: []entities.DemandEntry{
			{Node: "DEMAND1", Product: "P1", Date: mustDate(t, "2025-01-05"), Quantity: 250},
		},
		Window: window,
	}
}

func TestValidate_HappyPath(t *testing.T) {
	raw := baseRawData(t)
	data, err := Validate(raw)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Len(t, data.Demand, 1)
	require.Equal(t, entities.ProductID("P1"), data.Demand[0].Product)
}

func TestValidate_UnresolvedAliasIsFatal(t *testing.T) {
	raw := baseRawData(t)
	raw.Demand[0].Product = "UNKNOWN_SKU"

	_, err := Validate(raw)
	require.Error(t, err)

	var aliasErr *plannererrors.AliasResolutionError
	require.ErrorAs(t, err, &aliasErr)
	require.Contains(t, aliasErr.UnresolvedIDs, "demand:UNKNOWN_SKU")
}

func TestValidate_UnresolvedAliasAggregatesWithOtherIssues(t *testing.T) {
	raw := baseRawData(t)
	raw.Demand[0].Product = "UNKNOWN_SKU"
	// A second, unrelated demand record referencing a node that doesn't
	// exist — the alias failure must not mask this from the same pass.
	raw.Demand = append(raw.Demand, entities.DemandEntry{
		Node: "NOWHERE", Product: "P1", Date: mustDate(t, "2025-01-06"), Quantity: 10,
	})

	_, err := Validate(raw)
	require.Error(t, err)

	var valErr *plannererrors.ValidationError
	require.ErrorAs(t, err, &valErr)

	var sawAliasIssue, sawNodeIssue bool
	for _, issue := range valErr.Issues {
		if issue.Domain == "alias" && issue.RecordKey == "demand:UNKNOWN_SKU" {
			sawAliasIssue = true
		}
		if issue.Domain == "demand" && issue.Field == "node" {
			sawNodeIssue = true
		}
	}
	require.True(t, sawAliasIssue, "expected the unresolved alias to be reported alongside other issues")
	require.True(t, sawNodeIssue, "expected the unrelated node issue to still be reported")
}

func TestValidate_UnreachableDemandNodeIsFatal(t *testing.T) {
	raw := baseRawData(t)
	raw.Routes = nil // no path from MFG to DEMAND1 at all

	_, err := Validate(raw)
	require.Error(t, err)

	var topoErr *plannererrors.TopologyError
	require.ErrorAs(t, err, &topoErr)
}

func TestValidate_MissingTruckLegIsFatal(t *testing.T) {
	raw := baseRawData(t)
	raw.Trucks = []entities.TruckSchedule{
		{ID: "T1", Origin: "MFG", Destination: "NOWHERE", CapacityUnits: 1000},
	}

	_, err := Validate(raw)
	require.Error(t, err)

	var valErr *plannererrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidate_AliasResolutionIsIdempotent(t *testing.T) {
	table := entities.NewAliasTable([]entities.AliasRow{
		{Canonical: "HELGAS_GFREE_WHITE", Aliases: []entities.ProductID{"168846"}},
	})

	canonical, ok := table.Resolve("168846")
	require.True(t, ok)
	require.Equal(t, entities.ProductID("HELGAS_GFREE_WHITE"), canonical)

	again, ok := table.Resolve(canonical)
	require.True(t, ok)
	require.Equal(t, canonical, again)
}
