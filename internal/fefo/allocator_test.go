package fefo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
	"github.com/sverzijl/planner/internal/extraction"
)

func baseProducts() map[entities.ProductID]entities.Product {
	return map[entities.ProductID]entities.Product{
		"P": {ID: "P", AmbientDays: 17, FrozenDays: 120, ThawedDays: 14, UnitsPerMix: 100},
	}
}

func TestAllocator_RecordProductionAndConsume(t *testing.T) {
	a := NewAllocator(nil, baseProducts())
	a.RecordProduction([]extraction.ProductionBatch{
		{Node: "M", Product: "P", Date: date(t, "2025-01-01"), Quantity: 200},
	})

	err := a.Consume("M", "P", entities.Ambient, date(t, "2025-01-05"), 150)
	require.NoError(t, err)
	require.Len(t, a.ConsumptionAllocations, 1)
	require.Equal(t, 150.0, a.ConsumptionAllocations[0].Batches[0].Quantity)

	require.NoError(t, a.Reconcile(CellKey{Node: "M", Product: "P", State: entities.Ambient}, 50))
}

func TestAllocator_Reconcile_MismatchIsFatal(t *testing.T) {
	a := NewAllocator(nil, baseProducts())
	a.RecordProduction([]extraction.ProductionBatch{
		{Node: "M", Product: "P", Date: date(t, "2025-01-01"), Quantity: 200},
	})

	err := a.Reconcile(CellKey{Node: "M", Product: "P", State: entities.Ambient}, 999)
	require.Error(t, err)
}

func TestAllocator_ShipmentCarriesProductionDateToDestination(t *testing.T) {
	a := NewAllocator(nil, baseProducts())
	a.RecordProduction([]extraction.ProductionBatch{
		{Node: "M", Product: "P", Date: date(t, "2025-01-01"), Quantity: 100},
	})

	err := a.AllocateShipment(extraction.Shipment{
		Origin: "M", Destination: "DC1", Product: "P", Quantity: 100,
		DeliveryDate: date(t, "2025-01-03"), State: entities.Ambient, DepartureState: entities.Ambient,
	}, date(t, "2025-01-02"))
	require.NoError(t, err)
	require.Len(t, a.ShipmentAllocations, 1)
	require.Equal(t, date(t, "2025-01-01"), a.ShipmentAllocations[0].Batches[0].ProductionDate)

	require.NoError(t, a.Reconcile(CellKey{Node: "M", Product: "P", State: entities.Ambient}, 0))
	require.NoError(t, a.Reconcile(CellKey{Node: "DC1", Product: "P", State: entities.Ambient}, 100))
}

func TestAllocator_SeedsInitialInventoryWithSyntheticDate(t *testing.T) {
	a := NewAllocator([]entities.InventoryEntry{
		{Node: "M", Product: "P", State: entities.Ambient, Quantity: 40, SnapshotDate: date(t, "2024-12-31")},
	}, baseProducts())

	require.NoError(t, a.Reconcile(CellKey{Node: "M", Product: "P", State: entities.Ambient}, 40))
}
