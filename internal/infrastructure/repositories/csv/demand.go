package csv

import (
	"fmt"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var demandHeader = []string{"node", "product", "date", "quantity"}

// LoadDemand reads the customer-demand forecast (spec.md §6 "Demand").
func (l *Loader) LoadDemand(filename string) ([]entities.DemandEntry, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, demandHeader)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.DemandEntry, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[2])
		if err != nil {
			return nil, fmt.Errorf("demand row %d: invalid date: %w", i+2, err)
		}
		quantity, err := parseQuantity(row[3])
		if err != nil {
			return nil, fmt.Errorf("demand row %d: invalid quantity: %w", i+2, err)
		}

		entries = append(entries, entities.DemandEntry{
			Node: entities.NodeID(row[0]), Product: entities.ProductID(row[1]), Date: date, Quantity: quantity,
		})
	}
	return entries, nil
}
