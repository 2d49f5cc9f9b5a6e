// Package mip builds the scaled mixed-integer program described in
// spec.md §4.2: decision variables, constraint library, objective, and the
// scaling discipline that keeps the constraint matrix well-conditioned. It
// is grounded on nextmv-sdk's mip/model packages (the only MIP SDK present
// in the reference corpus) and on the variable-multimap idiom used there.
package mip

import (
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// Horizon is the ordered sequence of planning days, day 0 being the
// planning window's start. All date-indexed variable families are built
// against this sequence rather than raw time.Time values, so that sliding
// windows (C3) can be expressed as integer offsets.
type Horizon struct {
	days []time.Time
}

// NewHorizon builds a Horizon spanning [window.Start, window.End] inclusive.
func NewHorizon(window entities.PlanningWindow) Horizon {
	n := window.Days()
	days := make([]time.Time, 0, n)
	for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return Horizon{days: days}
}

// Len returns the number of planning days.
func (h Horizon) Len() int { return len(h.days) }

// Day returns the date at offset i, or the zero time if i is out of range.
func (h Horizon) Day(i int) time.Time {
	if i < 0 || i >= len(h.days) {
		return time.Time{}
	}
	return h.days[i]
}

// Index returns the day offset for t, and whether t lies within the horizon.
func (h Horizon) Index(t time.Time) (int, bool) {
	for i, d := range h.days {
		if d.Equal(t) {
			return i, true
		}
	}
	return -1, false
}

// Window returns the inclusive day-offset range [lo, hi] covering
// [t-L+1, t], clamped to the horizon. Used by the sliding-window shelf-life
// constraint (C3).
func (h Horizon) Window(t int, length int) (lo, hi int) {
	lo = t - length + 1
	if lo < 0 {
		lo = 0
	}
	hi = t
	if hi >= len(h.days) {
		hi = len(h.days) - 1
	}
	return lo, hi
}

// Dates returns the full ordered day slice.
func (h Horizon) Dates() []time.Time { return h.days }
