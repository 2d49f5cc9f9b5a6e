package csv

import (
	"fmt"
	"strings"
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var inventoryHeader = []string{"node", "product", "state", "quantity", "production_date", "snapshot_date"}

// LoadInitialInventory reads the on-hand inventory snapshot (spec.md §6
// "InitialInventory"). production_date is optional; when blank, the FEFO
// allocator synthesizes one from snapshot_date.
func (l *Loader) LoadInitialInventory(filename string) ([]entities.InventoryEntry, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, inventoryHeader)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.InventoryEntry, 0, len(rows))
	for i, row := range rows {
		state, err := parseStorageState(row[2])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: %w", i+2, err)
		}
		quantity, err := parseQuantity(row[3])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: invalid quantity: %w", i+2, err)
		}
		snapshotDate, err := parseDate(row[5])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: invalid snapshot_date: %w", i+2, err)
		}

		var productionDate *time.Time
		if strings.TrimSpace(row[4]) != "" {
			d, err := parseDate(row[4])
			if err != nil {
				return nil, fmt.Errorf("inventory row %d: invalid production_date: %w", i+2, err)
			}
			productionDate = &d
		}

		entries = append(entries, entities.InventoryEntry{
			Node: entities.NodeID(row[0]), Product: entities.ProductID(row[1]), State: state,
			Quantity: quantity, SnapshotDate: snapshotDate, ProductionDate: productionDate,
		})
	}
	return entries, nil
}

func parseStorageState(s string) (entities.StorageState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frozen":
		return entities.Frozen, nil
	case "ambient":
		return entities.Ambient, nil
	case "thawed":
		return entities.Thawed, nil
	default:
		return 0, fmt.Errorf("invalid state %q (expected frozen, ambient, or thawed)", s)
	}
}
