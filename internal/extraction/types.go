// Package extraction converts a solved, scaled MIP into the typed result
// object external callers consume, grounded on the teacher's dto.MRPResult
// (pkg/application/dto/mrp_result.go): a single struct aggregating every
// output facet of one solve, with composite-keyed maps instead of nested
// structures.
package extraction

import (
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// ModelType discriminates which planning-model variant produced a solution;
// this model only ever emits one value today, but the field exists so a
// caller dispatching on JSON never has to guess.
const ModelType = "production_distribution_mip"

// ProductionBatch is one production[n,p,t] > 0 decision in the solved plan.
type ProductionBatch struct {
	Node     entities.NodeID
	Product  entities.ProductID
	Date     time.Time
	Quantity float64
}

// LaborHours is the labor accounting for one calendar date: used hours
// (actually worked), paid hours (>= used, accounting for minimum-payment
// floors), and the regular/overtime/non-fixed split.
type LaborHours struct {
	Used       float64
	Paid       float64
	Fixed      float64
	Overtime   float64
	NonFixed   float64
}

// Shipment is one in_transit[...] > 0 decision: a quantity of product
// moving from origin to destination, arriving on DeliveryDate in State.
// DepartureState is the state it left Origin in; the two differ exactly
// when the implicit state-transition rule converts it on arrival (e.g.
// frozen transport thawing at an ambient-only destination).
type Shipment struct {
	Origin         entities.NodeID
	Destination    entities.NodeID
	Product        entities.ProductID
	Quantity       float64
	DeliveryDate   time.Time
	State          entities.StorageState
	DepartureState entities.StorageState
	TruckID        entities.TruckID // empty when the leg is not truck-scheduled
}

// CostBreakdown is the structured cost accounting the objective decomposes
// into. Every sub-total carries its own Total, and the aggregate Total must
// equal their sum within the floating-point tolerance costTolerance.
type CostBreakdown struct {
	Labor             CostTotal
	LaborByDate       map[string]float64 // date -> labor cost that date
	Production        CostTotal
	Transport         CostTotal
	Holding           CostTotal
	HoldingByState    map[string]float64 // state -> holding cost
	WasteAndShortage  CostTotal
	Total             float64
}

// CostTotal is a named cost component's total value.
type CostTotal struct {
	Total float64
}

// OptimizationSolution is the complete, typed output of one solve: every
// field documented in spec.md §4.5 is required unless noted, and every
// cross-field invariant listed there is checked by Extract (through
// validate) before it is returned to a caller.
type OptimizationSolution struct {
	ModelType         string
	ProductionBatches []ProductionBatch
	LaborHoursByDate  map[string]LaborHours // keyed by "2006-01-02"
	Shipments         []Shipment
	Costs             CostBreakdown
	TotalCost         float64
	FillRate          float64
	TotalProduction   float64
	TotalShortageUnits float64
	InventoryState    map[string]float64 // keyed by InventoryKey.String()

	Window entities.PlanningWindow
}
