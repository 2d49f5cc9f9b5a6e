// Package warmstart generates MIP-start hints for product_produced[n,p,t]
// using the weekly demand-weighted campaign heuristic from spec.md §4.4,
// grounded on the teacher's AnalyzeCriticalPath top-N selection shape
// (criticalpath/critical_path_service.go): rank candidates by a weighted
// metric, then take the leading slice.
package warmstart

import (
	"sort"
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
	plannermip "github.com/sverzijl/planner/internal/mip"
	"github.com/sverzijl/planner/internal/solve"
)

// DefaultSKUsPerWeekday is the default campaign width K (spec.md §4.4).
const DefaultSKUsPerWeekday = 3

// Generate builds product_produced hints for every manufacturing node/day in
// built, only ever setting hints for the variable family continuous
// solvers' MIP-start hooks actually respect. Weekend days are hinted false
// to steer the solver away from weekend campaigns; business days get the
// top skusPerWeekday products by demand share, rotated across the window so
// every product with nonzero demand is represented somewhere.
//
// If the campaign cannot be built (no demand, no manufacturing nodes), it
// returns nil rather than a corrupt partial hint set — spec.md §4.4 is
// explicit that a failed warmstart must be skipped, never allowed to
// contaminate the solve.
func Generate(built *plannermip.Built, skusPerWeekday int) []solve.Hint {
	if skusPerWeekday <= 0 {
		skusPerWeekday = DefaultSKUsPerWeekday
	}

	ranked := rankProductsByDemand(built.Data.Demand)
	if len(ranked) == 0 {
		return nil
	}

	groups := groupByNodeDay(built.Vars.ProductProducedKeys)
	if len(groups) == 0 {
		return nil
	}

	var hints []solve.Hint
	for node, days := range groups {
		businessDayIndex := 0
		for _, day := range sortedDays(days) {
			weekday := built.Horizon.Day(day).Weekday()
			keys := groups[node][day]

			if weekday == time.Saturday || weekday == time.Sunday {
				for _, key := range keys {
					hints = append(hints, solve.Hint{Variable: built.Vars.ProductProduced.Get(key), Value: false})
				}
				continue
			}

			selected := selectCampaign(ranked, businessDayIndex, skusPerWeekday)
			businessDayIndex++

			for _, key := range keys {
				hints = append(hints, solve.Hint{
					Variable: built.Vars.ProductProduced.Get(key),
					Value:    selected[key.Product],
				})
			}
		}
	}

	return ValidateHints(hints, built)
}

// selectCampaign returns the set of products to run on the businessDayIndex
// -th business day: the skusPerWeekday products starting at a rotating
// offset into the demand-ranked list, so over enough business days every
// demanded product gets a production slot proportional to its rank.
func selectCampaign(ranked []entities.ProductID, businessDayIndex, skusPerWeekday int) map[entities.ProductID]bool {
	n := len(ranked)
	if skusPerWeekday > n {
		skusPerWeekday = n
	}
	offset := (businessDayIndex * skusPerWeekday) % n

	selected := make(map[entities.ProductID]bool, skusPerWeekday)
	for i := 0; i < skusPerWeekday; i++ {
		selected[ranked[(offset+i)%n]] = true
	}
	return selected
}

// rankProductsByDemand sorts products by total demand quantity, descending,
// breaking ties by ID for determinism.
func rankProductsByDemand(demand []entities.DemandEntry) []entities.ProductID {
	totals := make(map[entities.ProductID]entities.Quantity)
	for _, d := range demand {
		totals[d.Product] += d.Quantity
	}

	ranked := make([]entities.ProductID, 0, len(totals))
	for p := range totals {
		ranked = append(ranked, p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if totals[ranked[i]] != totals[ranked[j]] {
			return totals[ranked[i]] > totals[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

func groupByNodeDay(keys []plannermip.NodeProductDay) map[entities.NodeID]map[int][]plannermip.NodeProductDay {
	out := make(map[entities.NodeID]map[int][]plannermip.NodeProductDay)
	for _, key := range keys {
		if out[key.Node] == nil {
			out[key.Node] = make(map[int][]plannermip.NodeProductDay)
		}
		out[key.Node][key.Day] = append(out[key.Node][key.Day], key)
	}
	return out
}

func sortedDays(days map[int][]plannermip.NodeProductDay) []int {
	out := make([]int, 0, len(days))
	for d := range days {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// ValidateHints drops every hint whose Variable is nil, so a missing
// variable never reaches the solver's MIP-start API, and keeps the rest.
// It performs no other check: a Hint carries only its variable and a bool
// value, so a hint's date and product are not re-checked here, and a
// dropped hint does not cause the other hints to be discarded. Generate
// builds its hints from existing product_produced keys only.
func ValidateHints(hints []solve.Hint, built *plannermip.Built) []solve.Hint {
	valid := make([]solve.Hint, 0, len(hints))
	for _, h := range hints {
		if h.Variable == nil {
			continue
		}
		valid = append(valid, h)
	}
	return valid
}
