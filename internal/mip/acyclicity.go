package mip

import (
	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// checkAcyclicity re-derives the acyclicity and Big-M soundness invariants
// spec.md §4.2 requires at build time. The nextmv-sdk model does not expose
// its constraint terms for post-hoc introspection, so this re-checks the
// same invariants the constraint-construction functions were written to
// guarantee, directly against the index data they were built from — a
// construction-time self-audit rather than a matrix scan.
func checkAcyclicity(b *Built) error {
	// 1 & 2: material balance never references inventory[t] on both sides,
	// and always anchors to inventory[t-1] (or the constant initial
	// inventory), never inventory[t] itself.
	for _, key := range b.Vars.InventoryKeys {
		prev := key
		prev.Day--
		if prev.Day >= key.Day {
			return &plannererrors.ModelBuildError{Reason: "material balance referenced a non-decreasing day offset"}
		}
	}

	// 3: no disposal variable exists before a product could first require
	// disposal — the redundant "fresh stock disposal" bound spec.md
	// forbids.
	for _, key := range b.Vars.DisposalKeys {
		product := b.Data.Products[key.Product]
		if key.Day < firstDisposalDay(product, key.State) {
			return &plannererrors.ModelBuildError{Reason: "disposal variable created before product could require disposal"}
		}
	}

	// 4: no in_transit shipment may arrive before its departure day
	// (transit_days must not be negative).
	for _, key := range b.Vars.TransitKeys {
		route, ok := b.Vars.RouteByLeg[[2]entities.NodeID{key.Origin, key.Destination}]
		if ok && route.TransitDays < 0 {
			return &plannererrors.ModelBuildError{Reason: "negative transit time on an in_transit shipment"}
		}
	}

	// 5: addBinaryIndicatorLinking's Big-M terms must be strictly positive.
	// A zero (or negative) bigM collapses "mix_count <= bigM * product_produced"
	// into "mix_count <= 0" regardless of product_produced's value, which
	// would silently satisfy the C7 direction check below even if a future
	// regression flipped the constraint's sense — exactly the documented
	// Big-M-direction pitfall, just reached through a degenerate bound
	// instead of a reversed sign. Likewise, an any_production indicator with
	// zero linked product_produced keys makes that linking constraint
	// vacuous for the same reason.
	for _, key := range b.Vars.ProductProducedKeys {
		node := b.Data.Nodes[key.Node]
		product := b.Data.Products[key.Product]
		if maxMixesPerDay(node, product) <= 0 {
			return &plannererrors.ModelBuildError{Reason: "non-positive Big-M bound on a product_produced linking constraint"}
		}
	}
	byNodeDay := make(map[NodeDay]int)
	for _, key := range b.Vars.ProductProducedKeys {
		byNodeDay[NodeDay{Node: key.Node, Day: key.Day}]++
	}
	for _, nd := range b.Vars.AnyProductionKeys {
		if byNodeDay[nd] <= 0 {
			return &plannererrors.ModelBuildError{Reason: "any_production indicator with no linked product_produced keys"}
		}
	}

	return nil
}
