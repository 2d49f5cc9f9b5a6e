package csv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sverzijl/planner/internal/domain/entities"
)

var routesHeader = []string{"id", "origin", "destination", "transit_days", "transport_mode", "cost_per_unit"}

// LoadRoutes reads the transport-leg master (spec.md §6 "Routes").
func (l *Loader) LoadRoutes(filename string) ([]entities.Route, error) {
	records, err := readRecords(filename)
	if err != nil {
		return nil, err
	}
	rows, err := checkRows(filename, records, routesHeader)
	if err != nil {
		return nil, err
	}

	routes := make([]entities.Route, 0, len(rows))
	for i, row := range rows {
		transitDays, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("routes row %d: invalid transit_days: %w", i+2, err)
		}
		mode, err := parseTransportMode(row[4])
		if err != nil {
			return nil, fmt.Errorf("routes row %d: %w", i+2, err)
		}
		cost, err := parseFloat(row[5])
		if err != nil {
			return nil, fmt.Errorf("routes row %d: invalid cost_per_unit: %w", i+2, err)
		}

		routes = append(routes, entities.Route{
			ID: entities.RouteID(row[0]), Origin: entities.NodeID(row[1]), Destination: entities.NodeID(row[2]),
			TransitDays: transitDays, TransportMode: mode, CostPerUnit: cost,
		})
	}
	return routes, nil
}

func parseTransportMode(s string) (entities.TransportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frozen":
		return entities.TransportFrozen, nil
	case "ambient":
		return entities.TransportAmbient, nil
	default:
		return 0, fmt.Errorf("invalid transport_mode %q (expected frozen or ambient)", s)
	}
}
