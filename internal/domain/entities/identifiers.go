// Package entities defines the planning domain model: nodes, routes, truck
// schedules, products, labor days, demand/inventory records, cost
// structures, and the validated container that feeds the MIP builder.
package entities

// NodeID uniquely identifies a location in the distribution network.
type NodeID string

// ProductID uniquely identifies a product after alias resolution.
type ProductID string

// RouteID uniquely identifies a route leg.
type RouteID string

// TruckID uniquely identifies a truck schedule.
type TruckID string

// Quantity is an integer count of units. Discrete manufacturing and
// logistics quantities are never fractional at the domain boundary.
type Quantity int64

// StorageMode describes which storage states a node can host.
type StorageMode int

const (
	StorageFrozen StorageMode = iota
	StorageAmbient
	StorageBoth
)

func (m StorageMode) String() string {
	switch m {
	case StorageFrozen:
		return "frozen"
	case StorageAmbient:
		return "ambient"
	case StorageBoth:
		return "both"
	default:
		return "unknown"
	}
}

// TransportMode describes the temperature state goods travel in on a route.
type TransportMode int

const (
	TransportFrozen TransportMode = iota
	TransportAmbient
)

func (m TransportMode) String() string {
	switch m {
	case TransportFrozen:
		return "frozen"
	case TransportAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// StorageState is the temperature/shelf-life regime a unit of inventory is
// currently held in.
type StorageState int

const (
	Frozen StorageState = iota
	Ambient
	Thawed
)

func (s StorageState) String() string {
	switch s {
	case Frozen:
		return "frozen"
	case Ambient:
		return "ambient"
	case Thawed:
		return "thawed"
	default:
		return "unknown"
	}
}

// DeparturePeriod is the half of the day a truck leaves in.
type DeparturePeriod int

const (
	Morning DeparturePeriod = iota
	Afternoon
)

func (p DeparturePeriod) String() string {
	switch p {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	default:
		return "unknown"
	}
}
