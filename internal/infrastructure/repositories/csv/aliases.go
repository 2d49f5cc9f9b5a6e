package csv

import (
	"fmt"
	"strings"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// LoadAliases reads the product alias table (spec.md §6 "Aliases"), a
// ragged CSV with one canonical product ID per row followed by zero or more
// alternate IDs. Unlike the other masters it has no fixed column count, so
// it skips checkRows and validates only the header's first cell.
func (l *Loader) LoadAliases(filename string) ([]entities.AliasRow, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s must have a header row", filename)
	}
	if len(records[0]) == 0 || strings.ToLower(strings.TrimSpace(records[0][0])) != "canonical_id" {
		return nil, fmt.Errorf("%s header mismatch: expected first column canonical_id, got %v", filename, records[0])
	}

	rows := make([]entities.AliasRow, 0, len(records)-1)
	for i, row := range records[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			return nil, fmt.Errorf("aliases row %d: canonical_id is required", i+2)
		}
		canonical := entities.ProductID(strings.TrimSpace(row[0]))

		var aliases []entities.ProductID
		for _, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				aliases = append(aliases, entities.ProductID(cell))
			}
		}

		rows = append(rows, entities.AliasRow{Canonical: canonical, Aliases: aliases})
	}
	return rows, nil
}
