package mip

import (
	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/model"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// Variables holds every decision-variable multimap alongside the element
// slice used to construct it, following the farmshare reference's pattern
// of keeping `assignments` (the element slice) next to `x`
// (the resulting model.MultiMap) for later iteration.
type Variables struct {
	ProductionKeys []NodeProductDay
	Production     model.MultiMap[mip.Float, NodeProductDay]

	InventoryKeys []NodeProductStateDay
	Inventory     model.MultiMap[mip.Float, NodeProductStateDay]

	TransitKeys []TransitKey
	InTransit   model.MultiMap[mip.Float, TransitKey]

	ThawKeys []NodeProductDay
	Thaw     model.MultiMap[mip.Float, NodeProductDay]

	FreezeKeys []NodeProductDay
	Freeze     model.MultiMap[mip.Float, NodeProductDay]

	ConsumeAmbientKeys []NodeProductDay
	ConsumeAmbient     model.MultiMap[mip.Float, NodeProductDay]

	ConsumeThawedKeys []NodeProductDay
	ConsumeThawed     model.MultiMap[mip.Float, NodeProductDay]

	ShortageKeys []NodeProductDay
	Shortage     model.MultiMap[mip.Float, NodeProductDay]

	DisposalKeys []NodeProductStateDay
	Disposal     model.MultiMap[mip.Float, NodeProductStateDay]

	LaborRegularKeys []NodeDay
	LaborRegular     model.MultiMap[mip.Float, NodeDay]

	LaborOvertimeKeys []NodeDay
	LaborOvertime     model.MultiMap[mip.Float, NodeDay]

	LaborNonFixedKeys []NodeDay
	LaborNonFixed     model.MultiMap[mip.Float, NodeDay]

	MixCountKeys []NodeProductDay
	MixCount     model.MultiMap[mip.Int, NodeProductDay]

	PalletCountKeys []NodeProductStateDay
	PalletCount     model.MultiMap[mip.Int, NodeProductStateDay]

	ProductProducedKeys []NodeProductDay
	ProductProduced     model.MultiMap[mip.Bool, NodeProductDay]

	AnyProductionKeys []NodeDay
	AnyProduction     model.MultiMap[mip.Bool, NodeDay]

	// LaborPaidIdleKeys / LaborPaidIdle hold C6's minimum-payment floor as a
	// variable independent of labor_regular/overtime/non_fixed: hours paid
	// but not worked, e.g. a weekend call-in minimum with no matching
	// production.
	LaborPaidIdleKeys []NodeDay
	LaborPaidIdle     model.MultiMap[mip.Float, NodeDay]

	// RouteByLeg resolves a (origin, destination) truck leg to the route
	// that was validated to exist for it; built once here and reused by
	// the constraint library.
	RouteByLeg map[[2]entities.NodeID]entities.Route

	// Derived indices, populated by buildDerivedIndices once every
	// variable family above exists.
	consumeAmbientSet map[NodeProductDay]bool
	consumeThawedSet  map[NodeProductDay]bool
	disposalSet       map[NodeProductStateDay]bool
	mixCountSet       map[NodeProductDay]bool
	transitDepartures map[NodeProductStateDay][]TransitKey
	transitArrivals   map[NodeProductStateDay][]TransitKey
	transitByTruckDay map[truckDayKey][]TransitKey
}

// HasConsumeAmbient/HasConsumeThawed/HasDisposal report whether a
// structurally-omitted variable family actually has a variable for key —
// callers must check before calling Get, since the multimap was built over
// a sparse element slice.
func (v *Variables) HasConsumeAmbient(key NodeProductDay) bool { return v.consumeAmbientSet[key] }
func (v *Variables) HasConsumeThawed(key NodeProductDay) bool  { return v.consumeThawedSet[key] }
func (v *Variables) HasDisposal(key NodeProductStateDay) bool  { return v.disposalSet[key] }

// HasMixCount reports whether a mix_count variable exists for key.
func (v *Variables) HasMixCount(key NodeProductDay) bool { return v.mixCountSet[key] }

// DeparturesAt returns every in_transit shipment leaving (node, product,
// state) on the given day.
func (v *Variables) DeparturesAt(key NodeProductStateDay) []TransitKey { return v.transitDepartures[key] }

// ArrivalsAt returns every in_transit shipment landing at (node, product,
// state) on the given day, with the C4 state-transition rule already
// applied to the state field.
func (v *Variables) ArrivalsAt(key NodeProductStateDay) []TransitKey { return v.transitArrivals[key] }

// TruckGroup returns every in_transit shipment departing on one truck on
// one day, across all of that truck's legs — the grouping C9 capacity
// sums over.
func (v *Variables) TruckGroup(truck entities.TruckID, day int) []TransitKey {
	return v.transitByTruckDay[truckDayKey{Truck: truck, Day: day}]
}

// states lists every StorageState a node actually has to carry inventory
// for: frozen nodes carry Frozen only, ambient nodes carry Ambient and
// Thawed (frozen arrivals thaw on receipt), and `both` nodes carry all
// three, to keep the index sets minimal (spec.md §9 "tighten bounds
// aggressively").
func statesForNode(n entities.Node) []entities.StorageState {
	switch n.StorageMode {
	case entities.StorageFrozen:
		return []entities.StorageState{entities.Frozen}
	case entities.StorageAmbient:
		return []entities.StorageState{entities.Ambient, entities.Thawed}
	case entities.StorageBoth:
		return []entities.StorageState{entities.Frozen, entities.Ambient, entities.Thawed}
	default:
		return nil
	}
}

// BuildVariables creates every decision variable described in spec.md
// §4.2, applying the structural-omission rules for in_transit (truck must
// actually run that day) and disposal (only from the day a product could
// first require disposal onward).
func BuildVariables(m mip.Model, h Horizon, data *entities.ValidatedPlanningData, scale int64) *Variables {
	v := &Variables{RouteByLeg: buildRouteByLeg(data.Routes)}

	manufacturing := manufacturingNodeIDs(data.Nodes)
	products := sortedProductIDs(data.Products)
	storageNodes := storageNodeIDs(data.Nodes)

	// production[n,p,t] — manufacturing nodes only.
	for _, n := range manufacturing {
		for _, p := range products {
			for t := 0; t < h.Len(); t++ {
				v.ProductionKeys = append(v.ProductionKeys, NodeProductDay{Node: n, Product: p, Day: t})
			}
		}
	}
	v.Production = model.NewMultiMap(func(...NodeProductDay) mip.Float {
		return m.NewFloat(0, unboundedFloat)
	}, v.ProductionKeys)

	// inventory[n,p,s,t] — every storage-capable node, its supported states.
	for _, n := range storageNodes {
		node := data.Nodes[n]
		for _, p := range products {
			for _, s := range statesForNode(node) {
				for t := 0; t < h.Len(); t++ {
					v.InventoryKeys = append(v.InventoryKeys, NodeProductStateDay{Node: n, Product: p, State: s, Day: t})
				}
			}
		}
	}
	v.Inventory = model.NewMultiMap(func(...NodeProductStateDay) mip.Float {
		return m.NewFloat(0, unboundedFloat)
	}, v.InventoryKeys)

	// in_transit — only for (truck, leg, day) combinations the truck runs.
	for _, truck := range data.Trucks {
		legs := truck.Legs()
		for _, leg := range legs {
			route, ok := v.RouteByLeg[leg]
			if !ok {
				continue // unreachable: validated upstream
			}
			state := transitState(route.TransportMode)
			for t := 0; t < h.Len(); t++ {
				if !truck.RunsOn(h.Day(t).Weekday()) {
					continue
				}
				for _, p := range products {
					v.TransitKeys = append(v.TransitKeys, TransitKey{
						Origin: leg[0], Destination: leg[1], Product: p,
						DepDay: t, State: state, TruckID: truck.ID,
					})
				}
			}
		}
	}
	v.InTransit = model.NewMultiMap(func(...TransitKey) mip.Float {
		return m.NewFloat(0, unboundedFloat)
	}, v.TransitKeys)

	// thaw/freeze — only at nodes supporting the transition (storage_mode=both).
	for _, n := range storageNodes {
		if !data.Nodes[n].SupportsTransition() {
			continue
		}
		for _, p := range products {
			for t := 0; t < h.Len(); t++ {
				v.ThawKeys = append(v.ThawKeys, NodeProductDay{Node: n, Product: p, Day: t})
				v.FreezeKeys = append(v.FreezeKeys, NodeProductDay{Node: n, Product: p, Day: t})
			}
		}
	}
	v.Thaw = model.NewMultiMap(func(...NodeProductDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.ThawKeys)
	v.Freeze = model.NewMultiMap(func(...NodeProductDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.FreezeKeys)

	// demand_consumed_from_ambient / _thawed and shortage — demand nodes
	// only, and only for the states the node actually stores: a
	// consumption variable with no matching inventory balance would let
	// the solver satisfy demand for free.
	demandNodes := demandNodeIDs(data.Nodes)
	for _, n := range demandNodes {
		node := data.Nodes[n]
		for _, p := range products {
			for t := 0; t < h.Len(); t++ {
				key := NodeProductDay{Node: n, Product: p, Day: t}
				if node.SupportsState(entities.Ambient) {
					v.ConsumeAmbientKeys = append(v.ConsumeAmbientKeys, key)
				}
				if node.SupportsState(entities.Thawed) {
					v.ConsumeThawedKeys = append(v.ConsumeThawedKeys, key)
				}
				v.ShortageKeys = append(v.ShortageKeys, key)
			}
		}
	}
	v.ConsumeAmbient = model.NewMultiMap(func(...NodeProductDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.ConsumeAmbientKeys)
	v.ConsumeThawed = model.NewMultiMap(func(...NodeProductDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.ConsumeThawedKeys)
	v.Shortage = model.NewMultiMap(func(...NodeProductDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.ShortageKeys)

	// disposal[n,p,s,t] — only from the day a product could first require
	// disposal onward (per-product shelf life, the authoritative reading
	// of the disposal-date open question: see DESIGN.md).
	for _, n := range storageNodes {
		node := data.Nodes[n]
		for _, p := range products {
			product := data.Products[p]
			for _, s := range statesForNode(node) {
				threshold := firstDisposalDay(product, s)
				for t := threshold; t < h.Len(); t++ {
					v.DisposalKeys = append(v.DisposalKeys, NodeProductStateDay{Node: n, Product: p, State: s, Day: t})
				}
			}
		}
	}
	v.Disposal = model.NewMultiMap(func(...NodeProductStateDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.DisposalKeys)

	// labor_regular/overtime/non_fixed[n,t] — manufacturing nodes only.
	for _, n := range manufacturing {
		for t := 0; t < h.Len(); t++ {
			v.LaborRegularKeys = append(v.LaborRegularKeys, NodeDay{Node: n, Day: t})
			v.LaborOvertimeKeys = append(v.LaborOvertimeKeys, NodeDay{Node: n, Day: t})
			v.LaborNonFixedKeys = append(v.LaborNonFixedKeys, NodeDay{Node: n, Day: t})
		}
	}
	v.LaborRegular = model.NewMultiMap(func(...NodeDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.LaborRegularKeys)
	v.LaborOvertime = model.NewMultiMap(func(...NodeDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.LaborOvertimeKeys)
	v.LaborNonFixed = model.NewMultiMap(func(...NodeDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.LaborNonFixedKeys)

	// mix_count[n,p,t] — bounded by max feasible mixes per day.
	v.MixCountKeys = append(v.MixCountKeys, v.ProductionKeys...)
	v.MixCount = model.NewMultiMap(func(keys ...NodeProductDay) mip.Int {
		k := keys[0]
		node := data.Nodes[k.Node]
		product := data.Products[k.Product]
		ub := maxMixesPerDay(node, product)
		return m.NewInt(0, ub)
	}, v.MixCountKeys)

	// product_produced[n,p,t] binary indicator.
	v.ProductProducedKeys = append(v.ProductProducedKeys, v.ProductionKeys...)
	v.ProductProduced = model.NewMultiMap(func(...NodeProductDay) mip.Bool { return m.NewBool() }, v.ProductProducedKeys)

	// any_production[n,t] binary indicator.
	for _, n := range manufacturing {
		for t := 0; t < h.Len(); t++ {
			v.AnyProductionKeys = append(v.AnyProductionKeys, NodeDay{Node: n, Day: t})
		}
	}
	v.AnyProduction = model.NewMultiMap(func(...NodeDay) mip.Bool { return m.NewBool() }, v.AnyProductionKeys)

	// labor_paid_idle[n,t] — same index set as any_production; the minimum-
	// payment floor only ever applies where production could occur.
	v.LaborPaidIdleKeys = append(v.LaborPaidIdleKeys, v.AnyProductionKeys...)
	v.LaborPaidIdle = model.NewMultiMap(func(...NodeDay) mip.Float { return m.NewFloat(0, unboundedFloat) }, v.LaborPaidIdleKeys)

	// pallet_count[n,p,s,t] — mirrors the inventory index set.
	v.PalletCountKeys = append(v.PalletCountKeys, v.InventoryKeys...)
	v.PalletCount = model.NewMultiMap(func(...NodeProductStateDay) mip.Int {
		return m.NewInt(0, unboundedInt)
	}, v.PalletCountKeys)

	v.buildDerivedIndices(data)

	return v
}

func buildRouteByLeg(routes []entities.Route) map[[2]entities.NodeID]entities.Route {
	out := make(map[[2]entities.NodeID]entities.Route, len(routes))
	for _, r := range routes {
		out[[2]entities.NodeID{r.Origin, r.Destination}] = r
	}
	return out
}

func transitState(mode entities.TransportMode) entities.StorageState {
	if mode == entities.TransportFrozen {
		return entities.Frozen
	}
	return entities.Ambient
}

func manufacturingNodeIDs(nodes map[entities.NodeID]entities.Node) []entities.NodeID {
	var out []entities.NodeID
	for id, n := range nodes {
		if n.CanManufacture {
			out = append(out, id)
		}
	}
	return sortNodeIDs(out)
}

func storageNodeIDs(nodes map[entities.NodeID]entities.Node) []entities.NodeID {
	var out []entities.NodeID
	for id, n := range nodes {
		if n.CanStore {
			out = append(out, id)
		}
	}
	return sortNodeIDs(out)
}

func demandNodeIDs(nodes map[entities.NodeID]entities.Node) []entities.NodeID {
	var out []entities.NodeID
	for id, n := range nodes {
		if n.HasDemand {
			out = append(out, id)
		}
	}
	return sortNodeIDs(out)
}

func sortedProductIDs(products map[entities.ProductID]entities.Product) []entities.ProductID {
	var out []entities.ProductID
	for id := range products {
		out = append(out, id)
	}
	sortProductIDs(out)
	return out
}

func firstDisposalDay(product entities.Product, s entities.StorageState) int {
	l := product.ShelfLife(s)
	if l <= 1 {
		return 0
	}
	return l - 1
}

func maxMixesPerDay(node entities.Node, product entities.Product) int {
	if !node.CanManufacture || product.UnitsPerMix <= 0 {
		return 0
	}
	maxUnitsPerDay := int64(node.ProductionRatePerHour * 24)
	ub := maxUnitsPerDay / int64(product.UnitsPerMix)
	if ub < 1 {
		ub = 1
	}
	return int(ub)
}
