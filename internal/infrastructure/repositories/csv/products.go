package csv

import (
	"fmt"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var productsHeader = []string{
	"id", "name", "shelf_life_ambient_days", "shelf_life_frozen_days", "shelf_life_thawed_days", "units_per_mix",
}

// LoadProducts reads the product master (spec.md §6 "Products").
func (l *Loader) LoadProducts(filename string) ([]entities.Product, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, productsHeader)
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(rows))
	for i, row := range rows {
		ambient, err := parseQuantityAsInt(row[2])
		if err != nil {
			return nil, fmt.Errorf("products row %d: invalid shelf_life_ambient_days: %w", i+2, err)
		}
		frozen, err := parseQuantityAsInt(row[3])
		if err != nil {
			return nil, fmt.Errorf("products row %d: invalid shelf_life_frozen_days: %w", i+2, err)
		}
		thawed, err := parseQuantityAsInt(row[4])
		if err != nil {
			return nil, fmt.Errorf("products row %d: invalid shelf_life_thawed_days: %w", i+2, err)
		}
		unitsPerMix, err := parseQuantity(row[5])
		if err != nil {
			return nil, fmt.Errorf("products row %d: invalid units_per_mix: %w", i+2, err)
		}

		products = append(products, entities.Product{
			ID: entities.ProductID(row[0]), Name: row[1],
			AmbientDays: ambient, FrozenDays: frozen, ThawedDays: thawed,
			UnitsPerMix: unitsPerMix,
		})
	}
	return products, nil
}

func parseQuantityAsInt(s string) (int, error) {
	q, err := parseQuantity(s)
	return int(q), err
}
