package mip

import "github.com/sverzijl/planner/internal/domain/entities"

// addObjective implements spec.md §4.2's objective: production, labor,
// transport, pallet-holding, shortage, and changeover cost, minimised.
// Costs multiplying scaled flow variables (production, in_transit,
// shortage) are pre-multiplied by S; labor and per-pallet costs are not,
// since those variables are never scaled.
func addObjective(b *Built) {
	costs := b.Data.Costs

	for _, key := range b.Vars.ProductionKeys {
		b.objTerm(b.scaled(costs.ProductionCostPerUnit), b.Vars.Production.Get(key))
	}

	for _, key := range b.Vars.LaborRegularKeys {
		day := b.Horizon.Day(key.Day)
		if laborDay, ok := b.Data.LaborOn(day); ok {
			b.objTerm(laborDay.RegularRate, b.Vars.LaborRegular.Get(key))
			b.objTerm(laborDay.OvertimeRate, b.Vars.LaborOvertime.Get(key))
			b.objTerm(laborDay.NonFixedRate, b.Vars.LaborNonFixed.Get(key))
			// paid_idle is the weekend/holiday minimum-payment floor's slack
			// above worked hours; it's paid at the same rate non_fixed hours
			// are, since min_paid_hours only ever applies on non-fixed days.
			b.objTerm(laborDay.NonFixedRate, b.Vars.LaborPaidIdle.Get(key))
		}
	}

	for _, key := range b.Vars.TransitKeys {
		cost := transportCostPerUnit(b, key)
		b.objTerm(b.scaled(cost), b.Vars.InTransit.Get(key))
	}

	for _, key := range b.Vars.PalletCountKeys {
		fixed := costs.HoldingCostFixedPerPallet
		daily := costs.HoldingRate(key.State)
		b.objTerm(fixed+daily, b.Vars.PalletCount.Get(key))
	}

	for _, key := range b.Vars.ShortageKeys {
		b.objTerm(b.scaled(costs.ShortagePenaltyPerUnit), b.Vars.Shortage.Get(key))
	}

	for _, key := range b.Vars.ProductProducedKeys {
		b.objTerm(costs.ChangeoverCostPerEvent, b.Vars.ProductProduced.Get(key))
	}
}

func transportCostPerUnit(b *Built, key TransitKey) float64 {
	route, ok := b.Vars.RouteByLeg[[2]entities.NodeID{key.Origin, key.Destination}]
	if !ok {
		return 0
	}
	if b.Data.Costs.TransportCostPerUnit != nil {
		if c, ok := b.Data.Costs.TransportCostPerUnit[route.ID]; ok {
			return c
		}
	}
	return route.CostPerUnit
}
