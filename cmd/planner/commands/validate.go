package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "run the ingestion and validation pipeline without solving",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := parseWindowFlags()
		if err != nil {
			return fmt.Errorf("invalid --start/--end: %w", err)
		}

		data, err := loadAndValidate(dataDir, start, end)
		if err != nil {
			var validationErr *plannererrors.ValidationError
			if errors.As(err, &validationErr) {
				for _, issue := range validationErr.Issues {
					fmt.Println(issue.String())
				}
			}
			return err
		}

		log.Info().
			Int("products", len(data.Products)).
			Int("nodes", len(data.Nodes)).
			Int("routes", len(data.Routes)).
			Int("demand_entries", len(data.Demand)).
			Msg("dataset is valid")
		fmt.Println("OK: dataset passed validation")
		return nil
	},
}
