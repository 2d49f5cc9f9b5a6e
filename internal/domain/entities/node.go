package entities

import "fmt"

// Node represents a location in the distribution network: a manufacturing
// site, a storage buffer, a demand point, or any combination of the three.
type Node struct {
	ID                     NodeID
	Name                   string
	CanManufacture         bool
	ProductionRatePerHour  Quantity
	CanStore               bool
	StorageMode            StorageMode
	StorageCapacity        Quantity // 0 = unbounded
	HasDemand              bool
	RequiresTruckSchedules bool
	StartupHours           float64
	ShutdownHours          float64
	ChangeoverHours        float64
}

// Validate checks the node's own field invariants: a non-empty ID, a
// positive production rate when the node manufactures, and non-negative
// overhead hours. Whether a node may host thaw/freeze transitions is
// answered by SupportsTransition and is not checked here.
func (n Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node: id must not be empty")
	}
	if n.CanManufacture && n.ProductionRatePerHour <= 0 {
		return fmt.Errorf("node %s: can_manufacture requires production_rate_per_hour > 0, got %d", n.ID, n.ProductionRatePerHour)
	}
	if n.StartupHours < 0 || n.ShutdownHours < 0 || n.ChangeoverHours < 0 {
		return fmt.Errorf("node %s: overhead hours cannot be negative", n.ID)
	}
	return nil
}

// SupportsTransition reports whether this node can host a frozen<->ambient
// storage-state transition (thaw or freeze), which requires StorageBoth.
func (n Node) SupportsTransition() bool {
	return n.StorageMode == StorageBoth
}

// SupportsState reports whether the node can hold inventory in the given
// storage state at all.
func (n Node) SupportsState(s StorageState) bool {
	switch n.StorageMode {
	case StorageBoth:
		return true
	case StorageFrozen:
		return s == Frozen
	case StorageAmbient:
		return s == Ambient || s == Thawed
	default:
		return false
	}
}
