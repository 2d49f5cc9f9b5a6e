// Package commands wires the planner CLI's command tree: a root command
// that loads configuration and logging once in PersistentPreRun, and
// validate/solve/fefo subcommands layered on top of the same dataset
// loader (see load.go), following the same root-command shape as the
// organization's other cobra-based tools.
package commands

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sverzijl/planner/internal/config"
	"github.com/sverzijl/planner/internal/logging"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	dataDir   string
	startDate string
	endDate   string
	verbose   bool

	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "planner solves the multi-echelon production-and-distribution MIP",
	Long: `planner loads a production-and-distribution planning dataset from a
directory of CSV files, validates it, and either reports validation
findings, solves the optimization model, or solves it and allocates
FEFO batches against the resulting shipments and production.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		// config.Load derives LogDir from DATA_PATH; the CLI's --data-dir
		// flag takes precedence once supplied.
		logDir := cfg.LogDir
		if cmd.Flags().Changed("data-dir") {
			logDir = filepath.Join(dataDir, "logs")
		}
		logging.Init(logDir, verbose)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("build_date", BuildDate).
			Msg("planner starting")
		return nil
	},
}

// Execute runs the command tree; called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "directory containing the planning CSV inputs")
	rootCmd.PersistentFlags().StringVar(&startDate, "start", "", "planning window start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&endDate, "end", "", "planning window end date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(fefoCmd)
}

func parseWindowFlags() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", startDate)
	if err != nil {
		return start, end, err
	}
	end, err = time.Parse("2006-01-02", endDate)
	if err != nil {
		return start, end, err
	}
	return start, end, nil
}
