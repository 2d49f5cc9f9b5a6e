package mip

import "github.com/sverzijl/planner/internal/domain/entities"

// buildDerivedIndices populates the membership sets and transit indices
// the constraint library needs; called once at the end of BuildVariables.
func (v *Variables) buildDerivedIndices(data *entities.ValidatedPlanningData) {
	v.consumeAmbientSet = toSet(v.ConsumeAmbientKeys)
	v.consumeThawedSet = toSet(v.ConsumeThawedKeys)
	v.disposalSet = toStateSet(v.DisposalKeys)
	v.mixCountSet = toSet(v.MixCountKeys)

	v.transitDepartures = make(map[NodeProductStateDay][]TransitKey)
	v.transitArrivals = make(map[NodeProductStateDay][]TransitKey)
	v.transitByTruckDay = make(map[truckDayKey][]TransitKey)

	for _, k := range v.TransitKeys {
		route, ok := v.RouteByLeg[[2]entities.NodeID{k.Origin, k.Destination}]
		if !ok {
			continue
		}
		depIdx := NodeProductStateDay{Node: k.Origin, Product: k.Product, State: k.State, Day: k.DepDay}
		v.transitDepartures[depIdx] = append(v.transitDepartures[depIdx], k)

		arrivalState := arrivalState(k.State, data.Nodes[k.Destination])
		arrIdx := NodeProductStateDay{Node: k.Destination, Product: k.Product, State: arrivalState, Day: k.ArrivalDay(route.TransitDays)}
		v.transitArrivals[arrIdx] = append(v.transitArrivals[arrIdx], k)

		tdKey := truckDayKey{Truck: k.TruckID, Day: k.DepDay}
		v.transitByTruckDay[tdKey] = append(v.transitByTruckDay[tdKey], k)
	}
}

type truckDayKey struct {
	Truck entities.TruckID
	Day   int
}

// arrivalState implements the C4 implicit state-transition rule: frozen
// cargo landing at a node that cannot store Frozen arrives as Thawed
// instead (shelf life resets to L_thawed); every other combination arrives
// in its transit state unchanged.
func arrivalState(transit entities.StorageState, dest entities.Node) entities.StorageState {
	if transit == entities.Frozen && !dest.SupportsState(entities.Frozen) {
		return entities.Thawed
	}
	return transit
}

// ArrivalState exports arrivalState for callers outside this package
// (extraction's solution assembly) that must derive the same C4 conversion
// material balance already applied when crediting an arrival.
func ArrivalState(transit entities.StorageState, dest entities.Node) entities.StorageState {
	return arrivalState(transit, dest)
}

func toSet(keys []NodeProductDay) map[NodeProductDay]bool {
	set := make(map[NodeProductDay]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func toStateSet(keys []NodeProductStateDay) map[NodeProductStateDay]bool {
	set := make(map[NodeProductStateDay]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
