package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sverzijl/planner/internal/extraction"
	plannermip "github.com/sverzijl/planner/internal/mip"
	"github.com/sverzijl/planner/internal/solve"
	"github.com/sverzijl/planner/internal/warmstart"
)

var (
	outputPath     string
	noWarmstart    bool
	skusPerWeekday int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "validate, build, and solve the production-and-distribution MIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runSolve(cmd)
		if err != nil {
			return err
		}
		return writeSolution(result.Solved, result.Solution)
	},
}

// solveOutput bundles everything a downstream command (fefo) or the CLI's
// own output needs from one solve invocation.
type solveOutput struct {
	Built    *plannermip.Built
	Solved   *solve.Result
	Solution *extraction.OptimizationSolution
}

func runSolve(cmd *cobra.Command) (*solveOutput, error) {
	start, end, err := parseWindowFlags()
	if err != nil {
		return nil, fmt.Errorf("invalid --start/--end: %w", err)
	}

	data, err := loadAndValidate(dataDir, start, end)
	if err != nil {
		return nil, err
	}

	built, err := plannermip.Build(data, cfg.ScaleFactor)
	if err != nil {
		return nil, err
	}

	var hints []solve.Hint
	if !noWarmstart {
		hints = warmstart.Generate(built, skusPerWeekday)
		log.Info().Int("hint_count", len(hints)).Msg("generated warmstart hints")
	}

	solved, err := solve.Solve(built, solve.Options{
		SolverName:     cfg.SolverName,
		MIPGapRelative: cfg.MIPGapRelative,
		TimeLimit:      cfg.SolverTimeLimit,
		WarmstartHints: hints,
	})
	if err != nil {
		return nil, err
	}

	sol, err := extraction.Extract(built, solved)
	if err != nil {
		return nil, err
	}

	return &solveOutput{Built: built, Solved: solved, Solution: sol}, nil
}

func writeSolution(result *solve.Result, sol *extraction.OptimizationSolution) error {
	log.Info().
		Str("status", string(result.Status)).
		Float64("objective", result.ObjectiveValue).
		Float64("fill_rate", sol.FillRate).
		Msg("solve complete")

	encoded, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode solution: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(encoded))
		return nil
	}
	return os.WriteFile(outputPath, encoded, 0o644)
}

func init() {
	solveCmd.Flags().StringVar(&outputPath, "output", "", "write the extracted solution as JSON to this path (default: stdout)")
	solveCmd.Flags().BoolVar(&noWarmstart, "no-warmstart", false, "skip warmstart hint generation")
	solveCmd.Flags().IntVar(&skusPerWeekday, "skus-per-weekday", warmstart.DefaultSKUsPerWeekday, "target SKU campaign size per business day for warmstart")
}
