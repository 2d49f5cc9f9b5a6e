package validation

import (
	"fmt"
	"sort"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// buildAliasTable seeds tier 1 (exact product-master IDs) and layers the
// alias-table rows (tier 3) on top. Tier 2 (SKU code) is represented the
// same way as tier 3 here: any alias row, regardless of its origin file,
// participates in the same lookup map — the tiering is a matter of which
// file the row came from upstream of this pipeline, not of lookup
// mechanics.
func buildAliasTable(products []entities.Product, rows []entities.AliasRow) *entities.AliasTable {
	table := entities.NewAliasTable(rows)
	for _, p := range products {
		table.KnownCanonical(p.ID)
	}
	return table
}

// resolveAliases resolves every demand/inventory record's product ID to its
// canonical form. Any ID that cannot be resolved through any tier is
// collected and reported as a single AliasResolutionError listing every
// unresolved reference individually (spec.md §4.1 step 3) — it is never
// degraded into a warning.
func resolveAliases(
	table *entities.AliasTable,
	demand []entities.DemandEntry,
	inventory []entities.InventoryEntry,
) ([]entities.DemandEntry, []entities.InventoryEntry, error) {
	unresolved := make(map[string]struct{})

	// Unresolved entries are dropped rather than left as zero-value holes,
	// so the caller can still run cross-reference and topology checks
	// against whatever did resolve in the same pass, instead of needing a
	// rerun once the alias error alone is fixed.
	resolvedDemand := make([]entities.DemandEntry, 0, len(demand))
	for _, d := range demand {
		canonical, ok := table.Resolve(d.Product)
		if !ok {
			unresolved[fmt.Sprintf("demand:%s", d.Product)] = struct{}{}
			continue
		}
		d.Product = canonical
		resolvedDemand = append(resolvedDemand, d)
	}

	resolvedInventory := make([]entities.InventoryEntry, 0, len(inventory))
	for _, inv := range inventory {
		canonical, ok := table.Resolve(inv.Product)
		if !ok {
			unresolved[fmt.Sprintf("inventory:%s", inv.Product)] = struct{}{}
			continue
		}
		inv.Product = canonical
		resolvedInventory = append(resolvedInventory, inv)
	}

	if len(unresolved) > 0 {
		ids := make([]string, 0, len(unresolved))
		for id := range unresolved {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return resolvedDemand, resolvedInventory, &plannererrors.AliasResolutionError{UnresolvedIDs: ids}
	}

	return resolvedDemand, resolvedInventory, nil
}
