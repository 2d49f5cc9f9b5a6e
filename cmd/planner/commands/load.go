package commands

import (
	"path/filepath"
	"time"

	"github.com/sverzijl/planner/internal/domain/entities"
	csvrepo "github.com/sverzijl/planner/internal/infrastructure/repositories/csv"
	"github.com/sverzijl/planner/internal/validation"
)

// loadRawData reads the nine CSV masters expected under dir (one file per
// record type, see spec.md §6) and assembles them into validation.RawData
// with the given planning window. It does not validate cross-references —
// that is internal/validation's job.
func loadRawData(dir string, window entities.PlanningWindow) (validation.RawData, error) {
	loader := csvrepo.NewLoader()

	products, err := loader.LoadProducts(filepath.Join(dir, "products.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	nodes, err := loader.LoadNodes(filepath.Join(dir, "nodes.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	routes, err := loader.LoadRoutes(filepath.Join(dir, "routes.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	trucks, err := loader.LoadTrucks(filepath.Join(dir, "trucks.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	labor, err := loader.LoadLaborCalendar(filepath.Join(dir, "labor.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	demand, err := loader.LoadDemand(filepath.Join(dir, "demand.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	inventory, err := loader.LoadInitialInventory(filepath.Join(dir, "inventory.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	aliases, err := loader.LoadAliases(filepath.Join(dir, "aliases.csv"))
	if err != nil {
		return validation.RawData{}, err
	}
	costs, err := loader.LoadCostParameters(filepath.Join(dir, "costs.csv"))
	if err != nil {
		return validation.RawData{}, err
	}

	return validation.RawData{
		Products:  products,
		Nodes:     nodes,
		Routes:    routes,
		Trucks:    trucks,
		Labor:     labor,
		Demand:    demand,
		Inventory: inventory,
		Costs:     costs,
		Aliases:   aliases,
		Window:    window,
	}, nil
}

func loadAndValidate(dir string, start, end time.Time) (*entities.ValidatedPlanningData, error) {
	raw, err := loadRawData(dir, entities.PlanningWindow{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return validation.Validate(raw)
}
