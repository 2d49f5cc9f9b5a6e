package validation

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// Validate runs the full fail-fast ingestion pipeline described in spec.md
// §4.1: field-level checks, alias resolution, cross-reference, topology,
// and truck-schedule consistency. On the first full-pass completion, if any
// hard error was collected, it returns the aggregated *ValidationError (or,
// for alias/topology failures, the more specific error kind). Warnings are
// logged but never affect success.
func Validate(raw RawData) (*entities.ValidatedPlanningData, error) {
	issues := checkFieldLevel(raw)

	productTable := make(map[entities.ProductID]entities.Product, len(raw.Products))
	for _, p := range raw.Products {
		productTable[p.ID] = p
	}
	nodeTable := make(map[entities.NodeID]entities.Node, len(raw.Nodes))
	for _, n := range raw.Nodes {
		nodeTable[n.ID] = n
	}

	// resolveAliases drops unresolved entries rather than aborting, so the
	// rest of this pass (cross-reference, truck-leg expansion) still runs
	// against whatever did resolve — a caller fixing an alias problem
	// shouldn't have to rerun validation just to discover an unrelated
	// field error it was masking.
	aliasTable := buildAliasTable(raw.Products, raw.Aliases)
	resolvedDemand, resolvedInventory, aliasErr := resolveAliases(aliasTable, raw.Demand, raw.Inventory)

	issues = append(issues, crossReference(productTable, nodeTable, resolvedDemand, resolvedInventory, raw.Routes)...)
	issues = append(issues, expandTruckLegs(raw.Trucks, nodeTable, raw.Routes)...)

	if aliasErr != nil {
		// An alias failure with nothing else wrong keeps surfacing as the
		// specific AliasResolutionError kind; once other issues exist in
		// the same pass, fold it into the aggregated list instead of
		// hiding it behind whichever error happened to be checked first.
		if len(issues) == 0 {
			return nil, aliasErr
		}
		var unresolved *plannererrors.AliasResolutionError
		if errors.As(aliasErr, &unresolved) {
			for _, id := range unresolved.UnresolvedIDs {
				issues = append(issues, plannererrors.FieldIssue{
					Domain:    "alias",
					RecordKey: id,
					Field:     "product",
					Expected:  "resolvable via product master, SKU code, or alias table",
					Actual:    "unresolved",
				})
			}
		}
	}

	if len(issues) > 0 {
		log.Warn().Int("issue_count", len(issues)).Msg("validation pipeline found hard errors")
		return nil, &plannererrors.ValidationError{Issues: issues}
	}

	labor := make(map[string]entities.LaborDay, len(raw.Labor))
	for _, d := range raw.Labor {
		labor[d.Date.Format("2006-01-02")] = d
	}

	data := entities.ValidatedPlanningData{
		Products:  productTable,
		Nodes:     nodeTable,
		Routes:    raw.Routes,
		Trucks:    raw.Trucks,
		Labor:     labor,
		Demand:    resolvedDemand,
		Inventory: resolvedInventory,
		Costs:     raw.Costs,
		Window:    raw.Window,
	}

	if err := checkReachability(data); err != nil {
		return nil, err
	}

	log.Info().
		Int("products", len(data.Products)).
		Int("nodes", len(data.Nodes)).
		Int("routes", len(data.Routes)).
		Int("demand_entries", len(data.Demand)).
		Msg("validation pipeline succeeded")

	return &data, nil
}
