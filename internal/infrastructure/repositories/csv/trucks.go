package csv

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var trucksHeader = []string{
	"id", "origin", "destination", "day_of_week", "departure_period", "capacity",
	"cost_fixed", "cost_per_unit", "intermediate_stops", "pallet_capacity", "units_per_pallet", "units_per_case",
}

// LoadTrucks reads the truck-schedule master (spec.md §6 "TruckSchedules").
// intermediate_stops is a semicolon-delimited list of node IDs; day_of_week
// empty means the truck runs daily.
func (l *Loader) LoadTrucks(filename string) ([]entities.TruckSchedule, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, trucksHeader)
	if err != nil {
		return nil, err
	}

	trucks := make([]entities.TruckSchedule, 0, len(rows))
	for i, row := range rows {
		dayOfWeek, err := parseOptionalWeekday(row[3])
		if err != nil {
			return nil, fmt.Errorf("trucks row %d: %w", i+2, err)
		}
		period, err := parseDeparturePeriod(row[4])
		if err != nil {
			return nil, fmt.Errorf("trucks row %d: %w", i+2, err)
		}
		capacity, err := parseQuantity(row[5])
		if err != nil {
			return nil, fmt.Errorf("trucks row %d: invalid capacity: %w", i+2, err)
		}
		costFixed, err := parseFloat(row[6])
		if err != nil {
			return nil, fmt.Errorf("trucks row %d: invalid cost_fixed: %w", i+2, err)
		}
		costPerUnit, err := parseFloat(row[7])
		if err != nil {
			return nil, fmt.Errorf("trucks row %d: invalid cost_per_unit: %w", i+2, err)
		}

		trucks = append(trucks, entities.TruckSchedule{
			ID: entities.TruckID(row[0]), Origin: entities.NodeID(row[1]), Destination: entities.NodeID(row[2]),
			DayOfWeek: dayOfWeek, DeparturePeriod: period, CapacityUnits: capacity,
			CostFixed: costFixed, CostPerUnit: costPerUnit,
			IntermediateStops: parseNodeList(row[8]),
			PalletCapacity:    parseOptionalInt(row[9], entities.PalletsPerTruck),
			UnitsPerPallet:    parseOptionalInt(row[10], entities.UnitsPerPallet),
			UnitsPerCase:      parseOptionalInt(row[11], entities.UnitsPerCase),
		})
	}
	return trucks, nil
}

func parseNodeList(s string) []entities.NodeID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]entities.NodeID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, entities.NodeID(p))
		}
	}
	return out
}

func parseOptionalWeekday(s string) (*time.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid day_of_week %q (expected 0-6 or a weekday name)", s)
		}
		d := time.Weekday(n)
		return &d, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid day_of_week %q", s)
}

func parseDeparturePeriod(s string) (entities.DeparturePeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return entities.Morning, nil
	case "afternoon":
		return entities.Afternoon, nil
	default:
		return 0, fmt.Errorf("invalid departure_period %q (expected morning or afternoon)", s)
	}
}
