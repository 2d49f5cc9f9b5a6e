package validation

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// crossReference checks that every demand/inventory product and node
// appears in the product/node tables, and that every route endpoint is a
// known node. A single unresolved ID is a hard error (spec.md §4.1 step 4)
// — there is no "continue with warnings" path.
func crossReference(
	products map[entities.ProductID]entities.Product,
	nodes map[entities.NodeID]entities.Node,
	demand []entities.DemandEntry,
	inventory []entities.InventoryEntry,
	routes []entities.Route,
) []plannererrors.FieldIssue {
	var issues []plannererrors.FieldIssue

	for _, d := range demand {
		if _, ok := products[d.Product]; !ok {
			issues = append(issues, issue("demand", string(d.Product), "product", "product in product table", "not found"))
		}
		if _, ok := nodes[d.Node]; !ok {
			issues = append(issues, issue("demand", string(d.Node), "node", "node in node table", "not found"))
		}
	}
	for _, inv := range inventory {
		if _, ok := products[inv.Product]; !ok {
			issues = append(issues, issue("inventory", string(inv.Product), "product", "product in product table", "not found"))
		}
		if _, ok := nodes[inv.Node]; !ok {
			issues = append(issues, issue("inventory", string(inv.Node), "node", "node in node table", "not found"))
		}
	}
	for _, r := range routes {
		if _, ok := nodes[r.Origin]; !ok {
			issues = append(issues, issue("route", string(r.ID), "origin", "node in node table", "not found"))
		}
		if _, ok := nodes[r.Destination]; !ok {
			issues = append(issues, issue("route", string(r.ID), "destination", "node in node table", "not found"))
		}
		if dest, ok := nodes[r.Destination]; ok && !dest.CanStore {
			issues = append(issues, issue("route", string(r.ID), "destination.can_store", "true", "false"))
		}
	}

	return issues
}

// expandTruckLegs turns every truck schedule's intermediate stops into
// constituent (origin, destination) route legs and checks that a route
// exists for each one. A missing leg is fatal (spec.md §4.1 step 5).
func expandTruckLegs(trucks []entities.TruckSchedule, nodes map[entities.NodeID]entities.Node, routes []entities.Route) []plannererrors.FieldIssue {
	var issues []plannererrors.FieldIssue

	routeExists := make(map[[2]entities.NodeID]bool, len(routes))
	for _, r := range routes {
		routeExists[[2]entities.NodeID{r.Origin, r.Destination}] = true
	}

	for _, t := range trucks {
		for _, stop := range t.IntermediateStops {
			if _, ok := nodes[stop]; !ok {
				issues = append(issues, issue("truck", string(t.ID), "intermediate_stop", "node in node table", string(stop)))
				continue
			}
			if n := nodes[stop]; !n.CanStore {
				issues = append(issues, issue("truck", string(t.ID), "intermediate_stop.can_store", "true", "false"))
			}
		}
		for _, leg := range t.Legs() {
			if !routeExists[leg] {
				issues = append(issues, issue("truck", string(t.ID), "leg",
					fmt.Sprintf("route %s->%s exists", leg[0], leg[1]), "missing"))
			}
		}
	}

	return issues
}

// checkReachability verifies that every manufacturing node can reach every
// demand node within the shelf life of at least one transport mode,
// following spec.md §4.1 step 5. It builds one directed, weighted graph per
// transport mode (edge weight = transit_days) using katalvlaran/lvlath/core
// and computes shortest transit time with katalvlaran/lvlath/dijkstra.
func checkReachability(data entities.ValidatedPlanningData) error {
	frozenGraph, ambientGraph := buildModeGraphs(data.Nodes, data.Routes)

	manufacturers := manufacturingNodes(data.Nodes)
	demandByProduct := demandNodesByProduct(data.Demand)

	for productID, demandNodes := range demandByProduct {
		product, ok := data.Products[productID]
		if !ok {
			continue // already reported by crossReference
		}

		for demandNode := range demandNodes {
			if reachableFromAny(manufacturers, demandNode, frozenGraph, product.FrozenDays) {
				continue
			}
			if reachableFromAny(manufacturers, demandNode, ambientGraph, product.AmbientDays) {
				continue
			}
			return &plannererrors.TopologyError{
				Reason: fmt.Sprintf(
					"no manufacturing node can reach demand node %s with product %s within its shelf life (frozen=%dd, ambient=%dd)",
					demandNode, productID, product.FrozenDays, product.AmbientDays,
				),
			}
		}
	}

	return nil
}

func buildModeGraphs(nodes map[entities.NodeID]entities.Node, routes []entities.Route) (frozen, ambient *core.Graph) {
	frozen = core.NewGraph(core.WithDirected(true), core.WithWeighted())
	ambient = core.NewGraph(core.WithDirected(true), core.WithWeighted())

	for id := range nodes {
		_ = frozen.AddVertex(string(id))
		_ = ambient.AddVertex(string(id))
	}

	for _, r := range routes {
		weight := int64(r.TransitDays)
		switch r.TransportMode {
		case entities.TransportFrozen:
			_, _ = frozen.AddEdge(string(r.Origin), string(r.Destination), weight)
		case entities.TransportAmbient:
			_, _ = ambient.AddEdge(string(r.Origin), string(r.Destination), weight)
		}
	}

	return frozen, ambient
}

func manufacturingNodes(nodes map[entities.NodeID]entities.Node) []entities.NodeID {
	var out []entities.NodeID
	for id, n := range nodes {
		if n.CanManufacture {
			out = append(out, id)
		}
	}
	return out
}

func demandNodesByProduct(demand []entities.DemandEntry) map[entities.ProductID]map[entities.NodeID]bool {
	out := make(map[entities.ProductID]map[entities.NodeID]bool)
	for _, d := range demand {
		if d.Quantity <= 0 {
			continue
		}
		if out[d.Product] == nil {
			out[d.Product] = make(map[entities.NodeID]bool)
		}
		out[d.Product][d.Node] = true
	}
	return out
}

func reachableFromAny(sources []entities.NodeID, target entities.NodeID, g *core.Graph, shelfLifeDays int) bool {
	for _, src := range sources {
		if src == target {
			return true
		}
		if !g.HasVertex(string(src)) {
			continue
		}
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(string(src)))
		if err != nil {
			continue
		}
		if d, ok := dist[string(target)]; ok && d <= int64(shelfLifeDays) {
			return true
		}
	}
	return false
}
