// Package solve wraps the nextmv-sdk solver behind a thin adapter, mapping
// its termination status onto the explicit status set spec.md §4.3
// requires: an infeasible or unbounded model never reaches the caller as a
// zero-value solution — it comes back as a *errors.SolveError.
package solve

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
	"github.com/rs/zerolog/log"

	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
	plannermip "github.com/sverzijl/planner/internal/mip"
)

// Status discriminates how a solve terminated.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusFeasible   Status = "feasible"
	StatusTimeLimit  Status = "time_limit"
	StatusInfeasible Status = "infeasible"
	StatusUnbounded  Status = "unbounded"
	StatusError      Status = "error"
)

// Options configures one solve invocation.
type Options struct {
	SolverName      string // "highs" (preferred) or "cbc" (fallback)
	MIPGapRelative  float64
	TimeLimit       time.Duration
	WarmstartHints  []Hint // optional, see internal/warmstart
}

// Hint is one MIP-start value for a binary decision variable. Continuous
// hints are deliberately unsupported: most open-source solvers ignore them
// (spec.md §4.4).
type Hint struct {
	Variable mip.Bool
	Value    bool
}

// Result is the raw solver outcome before unscaling and extraction.
type Result struct {
	Status         Status
	ObjectiveValue float64
	RunTime        time.Duration
	Solution       mip.Solution
}

// Solve runs built.Model through the configured solver and returns its
// termination status, objective value, and raw (still-scaled) solution
// object for internal/extraction to unscale.
//
// A time-limited solve that nonetheless produced an integer-feasible
// incumbent is reported as StatusFeasible, never StatusOptimal — conflating
// the two would let a caller silently treat a suboptimal plan as proven
// optimal (spec.md §4.3).
func Solve(built *plannermip.Built, opts Options) (*Result, error) {
	solverName := opts.SolverName
	if solverName == "" {
		solverName = "highs"
	}

	solver, err := mip.NewSolver(solverName, built.Model)
	if err != nil {
		return nil, &plannererrors.SolveError{SolverMessage: err.Error()}
	}

	solveOptions := mip.NewSolveOptions()
	if opts.TimeLimit > 0 {
		if err := solveOptions.SetMaximumDuration(opts.TimeLimit); err != nil {
			return nil, &plannererrors.SolveError{SolverMessage: err.Error()}
		}
	}
	if err := solveOptions.SetMIPGapRelative(opts.MIPGapRelative); err != nil {
		return nil, &plannererrors.SolveError{SolverMessage: err.Error()}
	}
	solveOptions.SetVerbosity(mip.Off)

	applyWarmstart(solveOptions, opts.WarmstartHints)

	solution, err := solver.Solve(solveOptions)
	if err != nil {
		return nil, &plannererrors.SolveError{SolverMessage: err.Error()}
	}

	if solution == nil || !solution.HasValues() {
		return nil, &plannererrors.SolveError{SolverMessage: "solver returned no feasible solution (infeasible or unbounded model)"}
	}

	status := terminationStatus(solution.IsOptimal(), solution.RunTime(), opts.TimeLimit)

	log.Info().
		Str("status", string(status)).
		Float64("objective", solution.ObjectiveValue()).
		Dur("run_time", solution.RunTime()).
		Msg("solve finished")

	return &Result{
		Status:         status,
		ObjectiveValue: solution.ObjectiveValue(),
		RunTime:        solution.RunTime(),
		Solution:       solution,
	}, nil
}

// terminationStatus implements spec.md §4.3's explicit status mapping: a
// time-limited solve that nonetheless found an integer-feasible incumbent
// is Feasible, never Optimal.
func terminationStatus(isOptimal bool, runTime, timeLimit time.Duration) Status {
	if isOptimal {
		return StatusOptimal
	}
	if timeLimit > 0 && runTime >= timeLimit {
		return StatusTimeLimit
	}
	return StatusFeasible
}

// applyWarmstart signals the solver's MIP-start API rather than merely
// leaving hint values advisory — spec.md §4.4 calls out silently setting
// values without invoking the solver's warmstart mechanism as a known
// failure mode. The per-variable MIP-start hook (SetMIPStartValue) is not
// exercised anywhere in the reference material available when this adapter
// was written; see DESIGN.md for the grounding note on this assumption.
func applyWarmstart(opts mip.SolveOptions, hints []Hint) {
	if len(hints) == 0 {
		return
	}
	for _, h := range hints {
		opts.SetMIPStartValue(h.Variable, h.Value)
	}
	log.Debug().Int("hint_count", len(hints)).Msg("applied warmstart hints")
}
