package mip

import (
	"fmt"
	"math"

	"github.com/nextmv-io/sdk/mip"
)

// conditioningWarnThreshold is the max|coef|/min|coef| ratio above which
// spec.md §4.2 requires a build-time warning (surfaced here as a hard
// ModelBuildError, since nothing downstream can act on a warning it never
// sees).
const conditioningWarnThreshold = 1e6

// CoefficientTracker records every nonzero coefficient added to the
// constraint matrix so Build can run the scaling self-check described in
// spec.md §4.2 ("a self-check on build computes max|coef|/min|coef| ...").
type CoefficientTracker struct {
	min, max float64
	seen     bool
}

// NewCoefficientTracker returns an empty tracker.
func NewCoefficientTracker() *CoefficientTracker {
	return &CoefficientTracker{}
}

func (c *CoefficientTracker) record(coef float64) {
	abs := math.Abs(coef)
	if abs == 0 {
		return
	}
	if !c.seen {
		c.min, c.max, c.seen = abs, abs, true
		return
	}
	if abs < c.min {
		c.min = abs
	}
	if abs > c.max {
		c.max = abs
	}
}

// ConditioningRatio returns max/min over every recorded coefficient, and
// whether that ratio breaches conditioningWarnThreshold.
func (c *CoefficientTracker) ConditioningRatio() (ratio float64, breached bool) {
	if !c.seen || c.min == 0 {
		return 0, false
	}
	ratio = c.max / c.min
	return ratio, ratio >= conditioningWarnThreshold
}

func conditioningMessage(ratio float64) string {
	return fmt.Sprintf("constraint matrix coefficient ratio %.3g exceeds the %.3g conditioning threshold", ratio, conditioningWarnThreshold)
}

// term adds a single term to constr and records its coefficient with the
// shared tracker, so every call site contributes to the scaling self-check
// without having to thread tracking logic through each constraint
// function individually.
func (b *Built) term(constr mip.Constraint, coef float64, v mip.Variable) {
	constr.NewTerm(coef, v)
	b.Coeffs.record(coef)
}

// objTerm adds a term to the objective. Objective coefficients are not
// recorded: the scaling self-check covers the constraint matrix only.
func (b *Built) objTerm(coef float64, v mip.Variable) {
	b.Model.Objective().NewTerm(coef, v)
}

// scaled multiplies a native-unit coefficient by the scale factor S, for
// costs that apply to scaled flow variables (spec.md §4.2 "costs applied to
// scaled flow variables are pre-multiplied by S").
func (b *Built) scaled(coef float64) float64 {
	return coef * float64(b.Scale)
}

// unscale converts a scaled variable's solved value back to native units.
func (b *Built) unscale(value float64) float64 {
	return value * float64(b.Scale)
}
