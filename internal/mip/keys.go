package mip

import (
	"fmt"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// Every key type below implements model.Identifier (an ID() string method)
// so it can index a model.NewMultiMap the way the farmshare order
// fulfillment reference builds its assignment multimaps.

// NodeProductDay indexes production, mix_count, product_produced,
// shortage, and the two demand_consumed_from_* variable families.
type NodeProductDay struct {
	Node    entities.NodeID
	Product entities.ProductID
	Day     int
}

func (k NodeProductDay) ID() string {
	return fmt.Sprintf("%s|%s|%d", k.Node, k.Product, k.Day)
}

// NodeProductStateDay indexes inventory, pallet_count, and disposal.
type NodeProductStateDay struct {
	Node    entities.NodeID
	Product entities.ProductID
	State   entities.StorageState
	Day     int
}

func (k NodeProductStateDay) ID() string {
	return fmt.Sprintf("%s|%s|%s|%d", k.Node, k.Product, k.State, k.Day)
}

// NodeDay indexes any_production and the three labor-hours variables.
type NodeDay struct {
	Node entities.NodeID
	Day  int
}

func (k NodeDay) ID() string {
	return fmt.Sprintf("%s|%d", k.Node, k.Day)
}

// TransitKey indexes in_transit: a shipment of product p in state s,
// departing node Origin on day DepDay, arriving at Destination.
type TransitKey struct {
	Origin      entities.NodeID
	Destination entities.NodeID
	Product     entities.ProductID
	DepDay      int
	State       entities.StorageState
	TruckID     entities.TruckID
}

func (k TransitKey) ID() string {
	return fmt.Sprintf("%s|%s|%s|%d|%s|%s", k.Origin, k.Destination, k.Product, k.DepDay, k.State, k.TruckID)
}

// ArrivalDay returns the day offset at which a shipment departing on DepDay
// over a route with the given transit time lands.
func (k TransitKey) ArrivalDay(transitDays int) int {
	return k.DepDay + transitDays
}
