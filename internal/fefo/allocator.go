package fefo

import (
	"fmt"
	"sort"
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
	"github.com/sverzijl/planner/internal/extraction"
)

// CellKey identifies one (node, product, state) FEFO pool.
type CellKey struct {
	Node    entities.NodeID
	Product entities.ProductID
	State   entities.StorageState
}

// Allocator replays a solved, aggregate plan's events in chronological
// order against per-cell FEFO pools, producing a batch-tagged trace of
// every consumption and shipment. It is built fresh for one solve; it
// holds no state beyond that solve's event log (spec.md §5 "no shared
// mutable state between solves").
type Allocator struct {
	pools    map[CellKey]*Pool
	products map[entities.ProductID]entities.Product

	// ShipmentAllocations and ConsumptionAllocations record, in event
	// order, which batches fed which outbound flow — the per-batch trace
	// spec.md §4.6 requires as output.
	ShipmentAllocations    []ShipmentAllocation
	ConsumptionAllocations []ConsumptionAllocation
}

// ShipmentAllocation is one shipment's FEFO batch breakdown.
type ShipmentAllocation struct {
	Shipment extraction.Shipment
	Batches  []BatchAllocation
}

// ConsumptionAllocation is one day's demand-consumption FEFO batch
// breakdown at one (node, product, state) cell.
type ConsumptionAllocation struct {
	Node    entities.NodeID
	Product entities.ProductID
	State   entities.StorageState
	Date    time.Time
	Batches []BatchAllocation
}

// NewAllocator seeds an allocator with initial inventory. Entries without a
// recorded ProductionDate are assigned a synthetic production date of their
// snapshot date — spec.md §4.6 explicitly allows "initial inventory with
// synthetic dates" as an input, since pre-horizon production history is
// rarely available.
func NewAllocator(initial []entities.InventoryEntry, products map[entities.ProductID]entities.Product) *Allocator {
	a := &Allocator{
		pools:    make(map[CellKey]*Pool),
		products: products,
	}
	for _, e := range initial {
		productionDate := e.SnapshotDate
		if e.ProductionDate != nil {
			productionDate = *e.ProductionDate
		}
		a.cell(CellKey{Node: e.Node, Product: e.Product, State: e.State}).Add(Batch{
			ProductionDate: productionDate,
			Quantity:       float64(e.Quantity),
		})
	}
	return a
}

func (a *Allocator) cell(key CellKey) *Pool {
	if a.pools[key] == nil {
		a.pools[key] = NewPool()
	}
	return a.pools[key]
}

// RecordProduction adds every production batch to the Ambient-state pool at
// its node — production always enters the ambient state in this model
// (see DESIGN.md), so a product only ever starts a Frozen or Thawed life
// through an explicit freeze or thaw transition, which the caller replays
// as a Transfer.
func (a *Allocator) RecordProduction(batches []extraction.ProductionBatch) {
	for _, b := range batches {
		key := CellKey{Node: b.Node, Product: b.Product, State: entities.Ambient}
		a.cell(key).Add(Batch{ProductionDate: b.Date, Quantity: b.Quantity})
	}
}

// Consume draws demand-consumption quantity from one cell on one date and
// records the resulting batch trace.
func (a *Allocator) Consume(node entities.NodeID, product entities.ProductID, state entities.StorageState, date time.Time, qty float64) error {
	shelfLife := a.products[product].ShelfLife(state)
	allocations, err := a.cell(CellKey{Node: node, Product: product, State: state}).Consume(qty, date, shelfLife)
	if err != nil {
		return err
	}
	a.ConsumptionAllocations = append(a.ConsumptionAllocations, ConsumptionAllocation{
		Node: node, Product: product, State: state, Date: date, Batches: allocations,
	})
	return nil
}

// Transfer moves qty out of one cell (checked against its own shelf life)
// and re-adds the same production-dated batches into another cell — used
// both for shipments (origin cell -> destination cell on delivery date) and
// for thaw/freeze transitions (same node, state changes). Carrying the
// original production date across the transfer is what lets a downstream
// consumption still detect a batch that was already old when it arrived.
func (a *Allocator) Transfer(from, to CellKey, asOf time.Time, qty float64) ([]BatchAllocation, error) {
	shelfLife := a.products[from.Product].ShelfLife(from.State)
	allocations, err := a.cell(from).Consume(qty, asOf, shelfLife)
	if err != nil {
		return nil, err
	}
	for _, alloc := range allocations {
		a.cell(to).Add(Batch{ProductionDate: alloc.ProductionDate, Quantity: alloc.Quantity})
	}
	return allocations, nil
}

// AllocateShipment transfers a shipment's quantity from its origin cell
// (in the state it departed in) to its destination cell (in the state it
// arrives in, which may differ per the implicit state-conversion rule) and
// records the trace.
func (a *Allocator) AllocateShipment(s extraction.Shipment, departureDate time.Time) error {
	from := CellKey{Node: s.Origin, Product: s.Product, State: s.DepartureState}
	to := CellKey{Node: s.Destination, Product: s.Product, State: s.State}
	allocations, err := a.Transfer(from, to, departureDate, s.Quantity)
	if err != nil {
		return err
	}
	a.ShipmentAllocations = append(a.ShipmentAllocations, ShipmentAllocation{Shipment: s, Batches: allocations})
	return nil
}

// Reconcile checks that the FEFO pool for key holds exactly aggregateQty
// (within epsilon) — the contract spec.md §4.6 requires between the
// allocator's batch-level view and the model's aggregate inventory value
// for the same cell.
func (a *Allocator) Reconcile(key CellKey, aggregateQty float64) error {
	total := a.cell(key).Total()
	if diff := total - aggregateQty; diff > epsilon || diff < -epsilon {
		return &plannererrors.SolutionContractError{Reason: fmt.Sprintf(
			"fefo allocator: pool for %s/%s/%s holds %.4f but aggregate inventory says %.4f",
			key.Node, key.Product, key.State, total, aggregateQty)}
	}
	return nil
}

// Cells returns every (node, product, state) key the allocator has touched,
// sorted for deterministic iteration.
func (a *Allocator) Cells() []CellKey {
	keys := make([]CellKey, 0, len(a.pools))
	for k := range a.pools {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Node != keys[j].Node {
			return keys[i].Node < keys[j].Node
		}
		if keys[i].Product != keys[j].Product {
			return keys[i].Product < keys[j].Product
		}
		return keys[i].State < keys[j].State
	})
	return keys
}
