package entities

import (
	"fmt"
	"time"
)

// InventoryEntry is a known quantity of a product in a given storage state
// at a node, as of a snapshot date.
type InventoryEntry struct {
	Node         NodeID
	Product      ProductID
	State        StorageState
	Quantity     Quantity
	SnapshotDate time.Time
	ProductionDate *time.Time // optional; synthesized for FEFO if absent
}

// Validate checks quantity is non-negative and within the sanity bound.
func (e InventoryEntry) Validate() error {
	if e.Quantity < 0 {
		return fmt.Errorf("inventory %s/%s/%s: quantity cannot be negative, got %d", e.Node, e.Product, e.State, e.Quantity)
	}
	if e.Quantity >= MaxSaneQuantity {
		return fmt.Errorf("inventory %s/%s/%s: quantity %d exceeds sanity bound %d", e.Node, e.Product, e.State, e.Quantity, MaxSaneQuantity)
	}
	return nil
}
