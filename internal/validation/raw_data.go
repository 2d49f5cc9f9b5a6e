// Package validation implements the fail-fast ingestion pipeline: it takes
// raw records grouped by domain, resolves product/node aliases, checks
// cross-references and network topology, and either returns a fully
// cross-referenced entities.ValidatedPlanningData or a single aggregated
// *errors.ValidationError listing every failure found in one pass
// (spec.md §4.1).
package validation

import (
	"github.com/sverzijl/planner/internal/domain/entities"
)

// RawData is the unvalidated, pre-alias-resolution input to the pipeline,
// shaped directly after the inbound record schema in spec.md §6.
type RawData struct {
	Products  []entities.Product
	Nodes     []entities.Node
	Routes    []entities.Route
	Trucks    []entities.TruckSchedule
	Labor     []entities.LaborDay
	Demand    []entities.DemandEntry
	Inventory []entities.InventoryEntry
	Costs     entities.CostStructure
	Aliases   []entities.AliasRow
	Window    entities.PlanningWindow
}
