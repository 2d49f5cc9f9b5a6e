package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sverzijl/planner/internal/domain/entities"
	"github.com/sverzijl/planner/internal/extraction"
	"github.com/sverzijl/planner/internal/fefo"
)

var fefoOutputPath string

var fefoCmd = &cobra.Command{
	Use:   "fefo",
	Short: "solve, then replay production and shipments through per-batch FEFO allocation",
	Long: `fefo runs the same pipeline as solve and additionally replays the
extracted production batches and shipments through a first-expired-first-out
allocator, reporting which specific production-dated batch satisfied each
outbound shipment. Replaying demand consumption against FEFO pools requires
per-demand fulfillment traces that the aggregate solution does not carry
(see DESIGN.md); this command's trace covers production and shipments only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := runSolve(cmd)
		if err != nil {
			return err
		}

		allocator := fefo.NewAllocator(out.Built.Data.Inventory, out.Built.Data.Products)
		allocator.RecordProduction(out.Solution.ProductionBatches)

		transitDays := routeTransitIndex(out.Built.Data.Routes)
		shipments := append([]extraction.Shipment(nil), out.Solution.Shipments...)
		sort.Slice(shipments, func(i, j int) bool { return shipments[i].DeliveryDate.Before(shipments[j].DeliveryDate) })

		for _, s := range shipments {
			departure := s.DeliveryDate
			if days, ok := transitDays[[2]entities.NodeID{s.Origin, s.Destination}]; ok {
				departure = s.DeliveryDate.AddDate(0, 0, -days)
			}
			if err := allocator.AllocateShipment(s, departure); err != nil {
				log.Warn().Err(err).Str("origin", string(s.Origin)).Str("destination", string(s.Destination)).
					Msg("shipment could not be FEFO-allocated")
			}
		}

		if outputPath != "" {
			if err := writeSolution(out.Solved, out.Solution); err != nil {
				return err
			}
		}

		return writeFEFOReport(allocator)
	},
}

func routeTransitIndex(routes []entities.Route) map[[2]entities.NodeID]int {
	index := make(map[[2]entities.NodeID]int, len(routes))
	for _, r := range routes {
		index[[2]entities.NodeID{r.Origin, r.Destination}] = r.TransitDays
	}
	return index
}

type fefoReport struct {
	ShipmentAllocations    []fefo.ShipmentAllocation    `json:"shipment_allocations"`
	ConsumptionAllocations []fefo.ConsumptionAllocation `json:"consumption_allocations"`
}

func writeFEFOReport(allocator *fefo.Allocator) error {
	report := fefoReport{
		ShipmentAllocations:    allocator.ShipmentAllocations,
		ConsumptionAllocations: allocator.ConsumptionAllocations,
	}
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fefo report: %w", err)
	}
	if fefoOutputPath == "" {
		fmt.Println(string(encoded))
		return nil
	}
	return os.WriteFile(fefoOutputPath, encoded, 0o644)
}

func init() {
	fefoCmd.Flags().StringVar(&fefoOutputPath, "output", "", "write the fefo allocation report as JSON to this path (default: stdout)")
	fefoCmd.Flags().StringVar(&outputPath, "solution-output", "", "also write the extracted solution as JSON to this path")
	fefoCmd.Flags().BoolVar(&noWarmstart, "no-warmstart", false, "skip warmstart hint generation")
	fefoCmd.Flags().IntVar(&skusPerWeekday, "skus-per-weekday", 3, "target SKU campaign size per business day for warmstart")
}
