package mip

import (
	"sort"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// unboundedFloat/unboundedInt stand in for "no explicit upper bound" on a
// continuous or integer variable. Every continuous family is created with
// unboundedFloat as its upper bound and is bounded only indirectly by the
// constraint library (e.g. via material balance); mix_count is the one
// family created with a capacity-derived bound (maxMixesPerDay). No
// demand-derived bounds are set at creation time.
const (
	unboundedFloat = 1e9
	unboundedInt   = 1 << 30
)

func sortNodeIDs(ids []entities.NodeID) []entities.NodeID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortProductIDs(ids []entities.ProductID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
