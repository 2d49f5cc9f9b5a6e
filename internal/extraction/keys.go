package extraction

import (
	"strings"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// InventoryKey identifies one (node, product, state, date) aggregate
// inventory cell. It crosses the solution's serialisation boundary as a
// pipe-delimited string, grounded verbatim on the teacher's
// shared.AllocationMap makeKey/parseKey pattern (spec.md §9 "Dynamic
// collection keys") rather than a struct- or tuple-keyed map.
type InventoryKey struct {
	Node    entities.NodeID
	Product entities.ProductID
	State   entities.StorageState
	Date    string // "2006-01-02"
}

// String renders the key in its pipe-delimited wire form.
func (k InventoryKey) String() string {
	return string(k.Node) + "|" + string(k.Product) + "|" + k.State.String() + "|" + k.Date
}

// ParseInventoryKey reverses String, reporting ok=false for a malformed
// key rather than panicking — this is a deserialisation boundary, and a
// corrupt key must surface as a handled error, not a crash.
func ParseInventoryKey(s string) (node entities.NodeID, product entities.ProductID, state string, date string, ok bool) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return "", "", "", "", false
	}
	return entities.NodeID(parts[0]), entities.ProductID(parts[1]), parts[2], parts[3], true
}
