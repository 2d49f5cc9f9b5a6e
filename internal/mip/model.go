package mip

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// Built is the fully constructed, scaled MIP plus everything the solver
// adapter and extractor need to interpret it afterward.
type Built struct {
	Model     mip.Model
	Horizon   Horizon
	Vars      *Variables
	Scale     int64
	Coeffs    *CoefficientTracker
	Data      *entities.ValidatedPlanningData
	InitialInv map[NodeProductStateDay]float64
}

// Build constructs the complete scaled model: variables, the constraint
// library in its documented category order (material balance → demand →
// shelf-life windows → state transition → production-mix → labor →
// capacity (pallet) → truck → binary linking), and the objective. It runs
// the acyclicity and scaling self-checks before returning, surfacing either
// as a *errors.ModelBuildError.
func Build(data *entities.ValidatedPlanningData, scale int64) (*Built, error) {
	h := NewHorizon(data.Window)
	m := mip.NewModel()
	m.Objective().SetMinimize()

	vars := BuildVariables(m, h, data, scale)
	coeffs := NewCoefficientTracker()
	initialInv := buildInitialInventoryIndex(data.Inventory, h)

	b := &Built{Model: m, Horizon: h, Vars: vars, Scale: scale, Coeffs: coeffs, Data: data, InitialInv: initialInv}

	addMaterialBalance(b)
	addDemandAccounting(b)
	addSlidingWindowShelfLife(b)
	addStateTransitionCoupling(b)
	addProductionMixLinkage(b)
	addLaborCoupling(b)
	addPalletCeiling(b)
	addTruckCapacity(b)
	addBinaryIndicatorLinking(b)

	addObjective(b)

	if err := checkAcyclicity(b); err != nil {
		return nil, err
	}
	if ratio, bad := coeffs.ConditioningRatio(); bad {
		return nil, &plannererrors.ModelBuildError{Reason: conditioningMessage(ratio)}
	}

	return b, nil
}

func buildInitialInventoryIndex(entries []entities.InventoryEntry, h Horizon) map[NodeProductStateDay]float64 {
	idx := make(map[NodeProductStateDay]float64, len(entries))
	for _, e := range entries {
		// Every initial-inventory entry supplies inventory[n,p,s,-1] for the
		// balance at day 0; snapshot_date is always before window.Start
		// (validated), so it always anchors day 0 regardless of its exact
		// date.
		key := NodeProductStateDay{Node: e.Node, Product: e.Product, State: e.State, Day: -1}
		idx[key] += float64(e.Quantity)
	}
	_ = h
	return idx
}
