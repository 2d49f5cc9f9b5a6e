// Package errors defines the planning core's fatal error kinds (spec.md
// §7). Every kind is a concrete type so callers can discriminate with
// errors.As; none of them are ever caught and converted into a boolean
// success flag — the error always propagates to the caller (§9).
package errors

import "fmt"

// FieldIssue is one field-level validation failure, carrying enough context
// for a caller to locate and correct the source record without rerunning.
type FieldIssue struct {
	Domain   string // e.g. "demand", "node", "route"
	RecordKey string // e.g. "NODE1/PRODUCT_A/2025-01-01"
	Field    string
	Expected string
	Actual   string
}

func (i FieldIssue) String() string {
	return fmt.Sprintf("[%s] %s.%s: expected %s, got %s", i.Domain, i.RecordKey, i.Field, i.Expected, i.Actual)
}

// ValidationError aggregates every hard validation failure collected during
// one full pass of the validation pipeline (spec.md §4.1 "Failure
// semantics").
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d issue(s): %s", len(e.Issues), e.Issues[0].String())
}

// AliasResolutionError reports product/node IDs that could not be resolved
// through any of the three alias-resolution tiers. It is always fatal —
// spec.md explicitly forbids degrading this into "warning + skip".
type AliasResolutionError struct {
	UnresolvedIDs []string
}

func (e *AliasResolutionError) Error() string {
	return fmt.Sprintf("alias resolution failed for %d id(s): %v", len(e.UnresolvedIDs), e.UnresolvedIDs)
}

// TopologyError reports an unreachable demand node, an invalid intermediate
// stop, or a storage-capability mismatch discovered while validating the
// network graph.
type TopologyError struct {
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology error: %s", e.Reason)
}

// ModelBuildError reports a failed acyclicity or scaling self-check during
// MIP construction. It always indicates a bug in the builder, never bad
// input data.
type ModelBuildError struct {
	Reason string
}

func (e *ModelBuildError) Error() string {
	return fmt.Sprintf("model build error: %s", e.Reason)
}

// SolveError wraps a solver-reported infeasibility, unboundedness, or
// numerical failure. An infeasible model never produces a solution object —
// this error, with the solver's message, is all the caller receives.
type SolveError struct {
	SolverMessage string
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve error: %s", e.SolverMessage)
}

// SolutionContractError reports a cross-field invariant violation during
// solution extraction (e.g. the cost-sum invariant). It must never be
// swallowed: spec.md documents "validation error caught, success=true
// returned, UI displays empty data" as a defect this type exists to
// prevent.
type SolutionContractError struct {
	Reason string
}

func (e *SolutionContractError) Error() string {
	return fmt.Sprintf("solution contract violated: %s", e.Reason)
}
