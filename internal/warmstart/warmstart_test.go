package warmstart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
)

func TestRankProductsByDemand_DescendingByTotal(t *testing.T) {
	demand := []entities.DemandEntry{
		{Product: "A", Quantity: 100},
		{Product: "B", Quantity: 300},
		{Product: "A", Quantity: 50},
		{Product: "C", Quantity: 300},
	}

	ranked := rankProductsByDemand(demand)
	require.Equal(t, []entities.ProductID{"B", "C", "A"}, ranked)
}

func TestRankProductsByDemand_Empty(t *testing.T) {
	require.Empty(t, rankProductsByDemand(nil))
}

func TestSelectCampaign_RotatesAcrossDays(t *testing.T) {
	ranked := []entities.ProductID{"A", "B", "C", "D", "E", "F"}

	day0 := selectCampaign(ranked, 0, 3)
	require.True(t, day0["A"] && day0["B"] && day0["C"])
	require.False(t, day0["D"])

	day1 := selectCampaign(ranked, 1, 3)
	require.True(t, day1["D"] && day1["E"] && day1["F"])
	require.False(t, day1["A"])
}

func TestSelectCampaign_ClampsToProductCount(t *testing.T) {
	ranked := []entities.ProductID{"A", "B"}
	selected := selectCampaign(ranked, 0, 10)
	require.Len(t, selected, 2)
}
