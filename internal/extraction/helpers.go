package extraction

import (
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannermip "github.com/sverzijl/planner/internal/mip"
)

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// manufacturingNodes returns the distinct set of nodes with a labor-variable
// family, i.e. every node that can manufacture.
func manufacturingNodes(built *plannermip.Built) []entities.NodeID {
	seen := make(map[entities.NodeID]bool)
	var out []entities.NodeID
	for _, key := range built.Vars.LaborRegularKeys {
		if !seen[key.Node] {
			seen[key.Node] = true
			out = append(out, key.Node)
		}
	}
	return out
}

func totalDemandUnits(built *plannermip.Built) float64 {
	var total float64
	for _, d := range built.Data.Demand {
		total += float64(d.Quantity)
	}
	return total
}

// buildCostBreakdown computes the cost components from the solved variable
// values, grouped the way spec.md §4.5 requires: a total per component plus
// a per-date and per-state split for labor and holding. It differs from the
// solver's objective in two ways: the objective's changeover term is not
// part of any component, and labor charges every paid-but-unused hour
// (Paid - Used, which on a fixed day includes the top-up to the fixed
// hours) at the non-fixed rate.
func buildCostBreakdown(built *plannermip.Built, sol mip.Solution, out *OptimizationSolution) (CostBreakdown, error) {
	costs := built.Data.Costs

	var production CostTotal
	for _, b := range out.ProductionBatches {
		production.Total += b.Quantity * costs.ProductionCostPerUnit
	}

	var labor CostTotal
	laborByDate := make(map[string]float64, len(out.LaborHoursByDate))
	for dateStr, hours := range out.LaborHoursByDate {
		date, err := parseDate(dateStr)
		if err != nil {
			continue
		}
		laborDay, ok := built.Data.LaborOn(date)
		if !ok {
			continue
		}
		paidIdle := hours.Paid - hours.Used
		cost := hours.Fixed*laborDay.RegularRate + hours.Overtime*laborDay.OvertimeRate + hours.NonFixed*laborDay.NonFixedRate + paidIdle*laborDay.NonFixedRate
		laborByDate[dateStr] = cost
		labor.Total += cost
	}

	var transport CostTotal
	for _, s := range out.Shipments {
		route, ok := built.Vars.RouteByLeg[[2]entities.NodeID{s.Origin, s.Destination}]
		if !ok {
			continue
		}
		rate := route.CostPerUnit
		if costs.TransportCostPerUnit != nil {
			if c, ok := costs.TransportCostPerUnit[route.ID]; ok {
				rate = c
			}
		}
		transport.Total += s.Quantity * rate
	}

	var holding CostTotal
	holdingByState := make(map[string]float64, 3)
	for _, key := range built.Vars.PalletCountKeys {
		pallets := sol.Value(built.Vars.PalletCount.Get(key))
		if pallets == 0 {
			continue
		}
		rate := costs.HoldingCostFixedPerPallet + costs.HoldingRate(key.State)
		cost := pallets * rate
		holding.Total += cost
		holdingByState[key.State.String()] += cost
	}

	var wasteAndShortage CostTotal
	wasteAndShortage.Total = out.TotalShortageUnits * costs.ShortagePenaltyPerUnit

	breakdown := CostBreakdown{
		Labor:            labor,
		LaborByDate:      laborByDate,
		Production:       production,
		Transport:        transport,
		Holding:          holding,
		HoldingByState:   holdingByState,
		WasteAndShortage: wasteAndShortage,
	}
	breakdown.Total = labor.Total + production.Total + transport.Total + holding.Total + wasteAndShortage.Total

	return breakdown, nil
}

