package csv

import (
	"fmt"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var laborHeader = []string{
	"date", "is_fixed_day", "fixed_hours", "max_hours", "regular_rate", "overtime_rate", "non_fixed_rate", "min_paid_hours",
}

// LoadLaborCalendar reads the daily labor-calendar master (spec.md §6
// "LaborCalendar"), one row per calendar date within the planning window.
func (l *Loader) LoadLaborCalendar(filename string) ([]entities.LaborDay, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, laborHeader)
	if err != nil {
		return nil, err
	}

	days := make([]entities.LaborDay, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid date: %w", i+2, err)
		}
		fixedHours, err := parseFloat(row[2])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid fixed_hours: %w", i+2, err)
		}
		maxHours, err := parseFloat(row[3])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid max_hours: %w", i+2, err)
		}
		regularRate, err := parseFloat(row[4])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid regular_rate: %w", i+2, err)
		}
		overtimeRate, err := parseFloat(row[5])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid overtime_rate: %w", i+2, err)
		}
		nonFixedRate, err := parseFloat(row[6])
		if err != nil {
			return nil, fmt.Errorf("labor calendar row %d: invalid non_fixed_rate: %w", i+2, err)
		}

		days = append(days, entities.LaborDay{
			Date: date, IsFixedDay: parseBool(row[1]),
			FixedHours: fixedHours, MaxHours: maxHours,
			RegularRate: regularRate, OvertimeRate: overtimeRate, NonFixedRate: nonFixedRate,
			MinPaidHours: parseOptionalFloat(row[7]),
		})
	}
	return days, nil
}
