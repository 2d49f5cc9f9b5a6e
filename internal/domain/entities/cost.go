package entities

// CostStructure holds the per-unit and per-pallet cost coefficients that
// feed the MIP objective (spec.md §4.2 Objective).
type CostStructure struct {
	ProductionCostPerUnit   float64
	TransportCostPerUnit    map[RouteID]float64 // falls back to Route.CostPerUnit when absent
	HoldingCostFixedPerPallet float64
	HoldingCostPerPalletDay  map[StorageState]float64
	ShortagePenaltyPerUnit  float64
	ChangeoverCostPerEvent  float64
}

// HoldingRate returns the per-pallet-day holding rate for a storage state,
// defaulting to zero if unset.
func (c CostStructure) HoldingRate(s StorageState) float64 {
	if c.HoldingCostPerPalletDay == nil {
		return 0
	}
	return c.HoldingCostPerPalletDay[s]
}
