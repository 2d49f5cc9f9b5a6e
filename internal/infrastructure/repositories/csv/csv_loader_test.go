package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sverzijl/planner/internal/domain/entities"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

func TestLoadProducts(t *testing.T) {
	path := writeFixture(t, "products.csv", "id,name,shelf_life_ambient_days,shelf_life_frozen_days,shelf_life_thawed_days,units_per_mix\n"+
		"P1,Widget,17,120,14,100\n")

	products, err := NewLoader().LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != "P1" || p.AmbientDays != 17 || p.FrozenDays != 120 || p.ThawedDays != 14 || p.UnitsPerMix != 100 {
		t.Errorf("unexpected product: %+v", p)
	}
}

func TestLoadProducts_HeaderMismatch(t *testing.T) {
	path := writeFixture(t, "products.csv", "id,name\nP1,Widget\n")
	if _, err := NewLoader().LoadProducts(path); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestLoadNodes(t *testing.T) {
	path := writeFixture(t, "nodes.csv", "id,name,can_manufacture,production_rate_per_hour,can_store,storage_mode,"+
		"storage_capacity,has_demand,requires_truck_schedules,startup_hours,shutdown_hours,changeover_hours\n"+
		"M1,Plant,true,100,true,both,5000,false,true,1,1,0.5\n")

	nodes, err := NewLoader().LoadNodes(path)
	if err != nil {
		t.Fatalf("LoadNodes: %v", err)
	}
	if len(nodes) != 1 || !nodes[0].CanManufacture || nodes[0].StorageMode != entities.StorageBoth {
		t.Errorf("unexpected node: %+v", nodes[0])
	}
}

func TestLoadRoutes(t *testing.T) {
	path := writeFixture(t, "routes.csv", "id,origin,destination,transit_days,transport_mode,cost_per_unit\n"+
		"R1,M1,DC1,2,ambient,0.15\n")

	routes, err := NewLoader().LoadRoutes(path)
	if err != nil {
		t.Fatalf("LoadRoutes: %v", err)
	}
	if len(routes) != 1 || routes[0].TransitDays != 2 || routes[0].TransportMode != entities.TransportAmbient {
		t.Errorf("unexpected route: %+v", routes[0])
	}
}

func TestLoadTrucks_DailyAndIntermediateStops(t *testing.T) {
	path := writeFixture(t, "trucks.csv", "id,origin,destination,day_of_week,departure_period,capacity,"+
		"cost_fixed,cost_per_unit,intermediate_stops,pallet_capacity,units_per_pallet,units_per_case\n"+
		"T1,M1,DC2,,morning,14080,200,0.05,DC1;DC1B,44,320,10\n")

	trucks, err := NewLoader().LoadTrucks(path)
	if err != nil {
		t.Fatalf("LoadTrucks: %v", err)
	}
	if len(trucks) != 1 {
		t.Fatalf("expected 1 truck, got %d", len(trucks))
	}
	truck := trucks[0]
	if truck.DayOfWeek != nil {
		t.Errorf("expected nil DayOfWeek for blank cell, got %v", *truck.DayOfWeek)
	}
	if len(truck.IntermediateStops) != 2 || truck.IntermediateStops[0] != "DC1" || truck.IntermediateStops[1] != "DC1B" {
		t.Errorf("unexpected intermediate stops: %v", truck.IntermediateStops)
	}
}

func TestLoadTrucks_NumericWeekday(t *testing.T) {
	path := writeFixture(t, "trucks.csv", "id,origin,destination,day_of_week,departure_period,capacity,"+
		"cost_fixed,cost_per_unit,intermediate_stops,pallet_capacity,units_per_pallet,units_per_case\n"+
		"T1,M1,DC2,1,afternoon,14080,200,0.05,,,,\n")

	trucks, err := NewLoader().LoadTrucks(path)
	if err != nil {
		t.Fatalf("LoadTrucks: %v", err)
	}
	if trucks[0].DayOfWeek == nil || *trucks[0].DayOfWeek != 1 {
		t.Errorf("expected Monday, got %v", trucks[0].DayOfWeek)
	}
	if trucks[0].PalletCapacity != entities.PalletsPerTruck {
		t.Errorf("expected default pallet capacity, got %d", trucks[0].PalletCapacity)
	}
}

func TestLoadLaborCalendar(t *testing.T) {
	path := writeFixture(t, "labor.csv", "date,is_fixed_day,fixed_hours,max_hours,regular_rate,overtime_rate,non_fixed_rate,min_paid_hours\n"+
		"2025-01-06,true,12,14,25,37.5,40,0\n"+
		"2025-01-11,false,0,14,0,0,40,4\n")

	days, err := NewLoader().LoadLaborCalendar(path)
	if err != nil {
		t.Fatalf("LoadLaborCalendar: %v", err)
	}
	if len(days) != 2 || !days[0].IsFixedDay || days[1].MinPaidHours != 4 {
		t.Errorf("unexpected labor days: %+v", days)
	}
}

func TestLoadDemand(t *testing.T) {
	path := writeFixture(t, "demand.csv", "node,product,date,quantity\nDC1,P1,2025-01-06,250\n")

	entries, err := NewLoader().LoadDemand(path)
	if err != nil {
		t.Fatalf("LoadDemand: %v", err)
	}
	if len(entries) != 1 || entries[0].Quantity != 250 {
		t.Errorf("unexpected demand: %+v", entries)
	}
}

func TestLoadInitialInventory_OptionalProductionDate(t *testing.T) {
	path := writeFixture(t, "inventory.csv", "node,product,state,quantity,production_date,snapshot_date\n"+
		"DC1,P1,ambient,500,,2025-01-01\n"+
		"DC1,P1,frozen,300,2024-12-20,2025-01-01\n")

	entries, err := NewLoader().LoadInitialInventory(path)
	if err != nil {
		t.Fatalf("LoadInitialInventory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ProductionDate != nil {
		t.Errorf("expected nil production date for blank cell, got %v", *entries[0].ProductionDate)
	}
	if entries[1].ProductionDate == nil || entries[1].ProductionDate.Format("2006-01-02") != "2024-12-20" {
		t.Errorf("unexpected production date: %v", entries[1].ProductionDate)
	}
}

func TestLoadAliases(t *testing.T) {
	path := writeFixture(t, "aliases.csv", "canonical_id,alias1,alias2\nP1,SKU-100,Widget-Old\nP2,SKU-200,\n")

	rows, err := NewLoader().LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases: %v", err)
	}
	if len(rows) != 2 || rows[0].Canonical != "P1" || len(rows[0].Aliases) != 2 {
		t.Errorf("unexpected alias rows: %+v", rows)
	}
	if len(rows[1].Aliases) != 1 || rows[1].Aliases[0] != "SKU-200" {
		t.Errorf("expected trailing blank alias cell to be dropped, got %v", rows[1].Aliases)
	}
}

func TestLoadCostParameters(t *testing.T) {
	path := writeFixture(t, "costs.csv", "key,value\n"+
		"production_cost_per_unit,1.0\n"+
		"holding_cost_fixed_per_pallet,0.5\n"+
		"holding_cost_per_pallet_day_ambient,0.05\n"+
		"shortage_penalty_per_unit,1000\n"+
		"transport_cost_per_unit:R1,0.2\n")

	costs, err := NewLoader().LoadCostParameters(path)
	if err != nil {
		t.Fatalf("LoadCostParameters: %v", err)
	}
	if costs.ProductionCostPerUnit != 1.0 || costs.ShortagePenaltyPerUnit != 1000 {
		t.Errorf("unexpected scalar costs: %+v", costs)
	}
	if costs.HoldingRate(entities.Ambient) != 0.05 {
		t.Errorf("expected ambient holding rate 0.05, got %v", costs.HoldingRate(entities.Ambient))
	}
	if costs.TransportCostPerUnit["R1"] != 0.2 {
		t.Errorf("expected transport override for R1, got %v", costs.TransportCostPerUnit["R1"])
	}
}

func TestLoadCostParameters_UnrecognizedKey(t *testing.T) {
	path := writeFixture(t, "costs.csv", "key,value\nnot_a_real_key,1\n")
	if _, err := NewLoader().LoadCostParameters(path); err == nil {
		t.Fatal("expected error for unrecognized key")
	}
}
