package csv

import (
	"fmt"
	"strings"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var costsHeader = []string{"key", "value"}

const transportCostPrefix = "transport_cost_per_unit:"

// LoadCostParameters reads the cost-coefficient table (spec.md §6
// "CostParameters"), a flat key/value CSV rather than a fixed-column master:
// the coefficients it carries vary by deployment (holding rates per state,
// optional per-route transport overrides) so a rigid column layout would
// need revising every time a route is added.
//
// Recognized scalar keys: production_cost_per_unit, holding_cost_fixed_per_pallet,
// holding_cost_per_pallet_day_frozen, holding_cost_per_pallet_day_ambient,
// holding_cost_per_pallet_day_thawed, shortage_penalty_per_unit,
// changeover_cost_per_event. Any key prefixed "transport_cost_per_unit:<route_id>"
// adds a per-route override to TransportCostPerUnit.
func (l *Loader) LoadCostParameters(filename string) (entities.CostStructure, error) {
	records, err := readRecords(filename)
	if err != nil {
		return entities.CostStructure{}, err
	}
	rows, err := checkRows(filename, records, costsHeader)
	if err != nil {
		return entities.CostStructure{}, err
	}

	costs := entities.CostStructure{
		HoldingCostPerPalletDay: make(map[entities.StorageState]float64, 3),
	}

	for i, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row[0]))
		value, err := parseFloat(row[1])
		if err != nil {
			return entities.CostStructure{}, fmt.Errorf("cost parameters row %d: invalid value for %q: %w", i+2, key, err)
		}

		switch {
		case key == "production_cost_per_unit":
			costs.ProductionCostPerUnit = value
		case key == "holding_cost_fixed_per_pallet":
			costs.HoldingCostFixedPerPallet = value
		case key == "holding_cost_per_pallet_day_frozen":
			costs.HoldingCostPerPalletDay[entities.Frozen] = value
		case key == "holding_cost_per_pallet_day_ambient":
			costs.HoldingCostPerPalletDay[entities.Ambient] = value
		case key == "holding_cost_per_pallet_day_thawed":
			costs.HoldingCostPerPalletDay[entities.Thawed] = value
		case key == "shortage_penalty_per_unit":
			costs.ShortagePenaltyPerUnit = value
		case key == "changeover_cost_per_event":
			costs.ChangeoverCostPerEvent = value
		case strings.HasPrefix(key, transportCostPrefix):
			if costs.TransportCostPerUnit == nil {
				costs.TransportCostPerUnit = make(map[entities.RouteID]float64)
			}
			routeID := entities.RouteID(strings.TrimPrefix(row[0], transportCostPrefix))
			costs.TransportCostPerUnit[routeID] = value
		default:
			return entities.CostStructure{}, fmt.Errorf("cost parameters row %d: unrecognized key %q", i+2, row[0])
		}
	}
	return costs, nil
}
