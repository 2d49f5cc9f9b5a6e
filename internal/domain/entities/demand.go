package entities

import (
	"fmt"
	"time"
)

// DemandEntry is external demand for a product at a node on a date.
type DemandEntry struct {
	Node     NodeID
	Product  ProductID
	Date     time.Time
	Quantity Quantity
}

// Validate checks that quantity is non-negative and within the sanity bound
// used across all quantity fields (§4.1 field-level validation).
func (d DemandEntry) Validate() error {
	if d.Quantity < 0 {
		return fmt.Errorf("demand %s/%s on %s: quantity cannot be negative, got %d", d.Node, d.Product, d.Date.Format("2006-01-02"), d.Quantity)
	}
	if d.Quantity >= MaxSaneQuantity {
		return fmt.Errorf("demand %s/%s on %s: quantity %d exceeds sanity bound %d", d.Node, d.Product, d.Date.Format("2006-01-02"), d.Quantity, MaxSaneQuantity)
	}
	return nil
}

// MaxSaneQuantity is the field-level sanity ceiling from spec.md §4.1: any
// quantity at or above one million units is rejected as a likely data-entry
// error rather than modeled.
const MaxSaneQuantity = 1_000_000
