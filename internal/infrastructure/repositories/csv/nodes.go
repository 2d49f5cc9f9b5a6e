package csv

import (
	"fmt"
	"strings"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var nodesHeader = []string{
	"id", "name", "can_manufacture", "production_rate_per_hour", "can_store", "storage_mode",
	"storage_capacity", "has_demand", "requires_truck_schedules", "startup_hours", "shutdown_hours", "changeover_hours",
}

// LoadNodes reads the network node master (spec.md §6 "Nodes").
func (l *Loader) LoadNodes(filename string) ([]entities.Node, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, nodesHeader)
	if err != nil {
		return nil, err
	}

	nodes := make([]entities.Node, 0, len(rows))
	for i, row := range rows {
		mode, err := parseStorageMode(row[5])
		if err != nil {
			return nil, fmt.Errorf("nodes row %d: %w", i+2, err)
		}

		nodes = append(nodes, entities.Node{
			ID:                     entities.NodeID(row[0]),
			Name:                   row[1],
			CanManufacture:         parseBool(row[2]),
			ProductionRatePerHour:  entities.Quantity(parseOptionalInt(row[3], 0)),
			CanStore:               parseBool(row[4]),
			StorageMode:            mode,
			StorageCapacity:        entities.Quantity(parseOptionalInt(row[6], 0)),
			HasDemand:              parseBool(row[7]),
			RequiresTruckSchedules: parseBool(row[8]),
			StartupHours:           parseOptionalFloat(row[9]),
			ShutdownHours:          parseOptionalFloat(row[10]),
			ChangeoverHours:        parseOptionalFloat(row[11]),
		})
	}
	return nodes, nil
}

func parseStorageMode(s string) (entities.StorageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frozen":
		return entities.StorageFrozen, nil
	case "ambient":
		return entities.StorageAmbient, nil
	case "both":
		return entities.StorageBoth, nil
	default:
		return 0, fmt.Errorf("invalid storage_mode %q (expected frozen, ambient, or both)", s)
	}
}
