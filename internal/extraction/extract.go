package extraction

import (
	"fmt"
	"math"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
	plannermip "github.com/sverzijl/planner/internal/mip"
	"github.com/sverzijl/planner/internal/solve"
)

// costTolerance is the floating-point tolerance spec.md §4.5 allows between
// a structured cost breakdown's sub-totals and its stated aggregate.
const costTolerance = 0.01

// sanityFloorUnits is the minimum total_production the extractor expects
// whenever total demand is non-trivial; falling short of it almost always
// means a scaled value reached the solution unscaled (spec.md §4.5
// "Unscaling").
const sanityFloorUnits = 100.0

// Extract converts a solved model into a validated OptimizationSolution,
// unscaling every scaled variable family by built.Scale before it reaches
// the result. Every field assembled here mirrors a decision-variable family
// from internal/mip; a family with no nonzero value in the solution simply
// contributes nothing; it is never an error for, e.g., Shipments to be
// empty when no route was used.
func Extract(built *plannermip.Built, result *solve.Result) (*OptimizationSolution, error) {
	sol := result.Solution
	h := built.Horizon

	out := &OptimizationSolution{
		ModelType:        ModelType,
		LaborHoursByDate: make(map[string]LaborHours, h.Len()),
		InventoryState:   make(map[string]float64),
		Window:           built.Data.Window,
	}

	for _, key := range built.Vars.ProductionKeys {
		qty := built.unscale(sol.Value(built.Vars.Production.Get(key)))
		if qty <= 0 {
			continue
		}
		out.ProductionBatches = append(out.ProductionBatches, ProductionBatch{
			Node: key.Node, Product: key.Product, Date: h.Day(key.Day), Quantity: qty,
		})
		out.TotalProduction += qty
	}

	for _, key := range built.Vars.InventoryKeys {
		qty := built.unscale(sol.Value(built.Vars.Inventory.Get(key)))
		if qty == 0 {
			continue
		}
		ik := InventoryKey{Node: key.Node, Product: key.Product, State: key.State, Date: h.Day(key.Day).Format("2006-01-02")}
		out.InventoryState[ik.String()] += qty
	}

	for _, key := range built.Vars.TransitKeys {
		qty := built.unscale(sol.Value(built.Vars.InTransit.Get(key)))
		if qty <= 0 {
			continue
		}
		route, ok := built.Vars.RouteByLeg[[2]entities.NodeID{key.Origin, key.Destination}]
		if !ok {
			continue // unreachable: every TransitKey was built from a resolved leg
		}
		// The shipment arrives in whatever state C4 converts it to at the
		// destination (e.g. frozen transport thawing on arrival at an
		// ambient-only node), matching the state material balance credited
		// it under — not the state it departed in.
		arrival := plannermip.ArrivalState(key.State, built.Data.Nodes[key.Destination])
		out.Shipments = append(out.Shipments, Shipment{
			Origin: key.Origin, Destination: key.Destination, Product: key.Product,
			Quantity: qty, DeliveryDate: h.Day(key.ArrivalDay(route.TransitDays)),
			State: arrival, DepartureState: key.State, TruckID: key.TruckID,
		})
	}

	var totalShortage float64
	for _, key := range built.Vars.ShortageKeys {
		qty := built.unscale(sol.Value(built.Vars.Shortage.Get(key)))
		totalShortage += qty
	}
	out.TotalShortageUnits = totalShortage

	for i := 0; i < h.Len(); i++ {
		date := h.Day(i)
		dateStr := date.Format("2006-01-02")
		labor, ok := built.Data.LaborOn(date)
		if !ok {
			continue
		}

		var usedRegular, usedOvertime, usedNonFixed, paidIdle float64
		for _, node := range manufacturingNodes(built) {
			key := plannermip.NodeDay{Node: node, Day: i}
			usedRegular += sol.Value(built.Vars.LaborRegular.Get(key))
			usedOvertime += sol.Value(built.Vars.LaborOvertime.Get(key))
			usedNonFixed += sol.Value(built.Vars.LaborNonFixed.Get(key))
			paidIdle += sol.Value(built.Vars.LaborPaidIdle.Get(key))
		}

		used := usedRegular + usedOvertime + usedNonFixed
		// paid is used plus whatever labor_paid_idle the min_paid_hours
		// floor required (the model's own decision variable); on a fixed
		// day it is then raised to at least the day's fixed hours.
		paid := used + paidIdle
		if labor.IsFixedDay && paid < labor.FixedHours {
			paid = labor.FixedHours
		}

		out.LaborHoursByDate[dateStr] = LaborHours{
			Used: used, Paid: paid, Fixed: usedRegular, Overtime: usedOvertime, NonFixed: usedNonFixed,
		}
	}

	costs, err := buildCostBreakdown(built, sol, out)
	if err != nil {
		return nil, err
	}
	out.Costs = costs
	out.TotalCost = costs.Total

	totalDemand := totalDemandUnits(built)
	if totalDemand > 0 {
		out.FillRate = 1 - out.TotalShortageUnits/totalDemand
	} else {
		out.FillRate = 1
	}

	if err := validate(out, totalDemand); err != nil {
		return nil, err
	}

	return out, nil
}

func validate(out *OptimizationSolution, totalDemand float64) error {
	var sumBatches float64
	for _, b := range out.ProductionBatches {
		sumBatches += b.Quantity
	}
	if !within(out.TotalProduction, sumBatches, costTolerance*math.Max(1, out.TotalProduction)) {
		return &plannererrors.SolutionContractError{Reason: fmt.Sprintf(
			"total_production (%.2f) does not match sum of production_batches (%.2f)", out.TotalProduction, sumBatches)}
	}

	if !within(out.TotalCost, out.Costs.Total, costTolerance*math.Max(1, math.Abs(out.TotalCost))) {
		return &plannererrors.SolutionContractError{Reason: fmt.Sprintf(
			"total_cost (%.2f) does not match costs.total (%.2f)", out.TotalCost, out.Costs.Total)}
	}

	for date, hours := range out.LaborHoursByDate {
		if hours.Paid < hours.Used-1e-6 {
			return &plannererrors.SolutionContractError{Reason: fmt.Sprintf(
				"date %s: paid hours (%.2f) less than used hours (%.2f)", date, hours.Paid, hours.Used)}
		}
	}

	if out.FillRate < -1e-6 || out.FillRate > 1+1e-6 {
		return &plannererrors.SolutionContractError{Reason: fmt.Sprintf("fill_rate %.4f out of [0,1]", out.FillRate)}
	}

	for key := range out.InventoryState {
		_, _, _, dateStr, ok := ParseInventoryKey(key)
		if !ok {
			return &plannererrors.SolutionContractError{Reason: fmt.Sprintf("malformed inventory key %q", key)}
		}
		date, err := parseDate(dateStr)
		if err != nil {
			return &plannererrors.SolutionContractError{Reason: fmt.Sprintf("inventory key %q has unparseable date: %v", key, err)}
		}
		if !out.Window.Contains(date) {
			return &plannererrors.SolutionContractError{Reason: fmt.Sprintf("inventory key %q falls outside the planning window", key)}
		}
	}

	if totalDemand > sanityFloorUnits && out.TotalProduction < sanityFloorUnits {
		return &plannererrors.SolutionContractError{Reason: fmt.Sprintf(
			"total_production (%.2f) is implausibly low for total demand %.2f; an unscaling bug is likely", out.TotalProduction, totalDemand)}
	}

	return nil
}

func within(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
