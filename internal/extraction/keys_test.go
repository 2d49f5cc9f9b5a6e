package extraction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sverzijl/planner/internal/domain/entities"
)

func TestInventoryKey_RoundTrip(t *testing.T) {
	k := InventoryKey{Node: "DC1", Product: "SKU1", State: entities.Ambient, Date: "2025-01-05"}
	encoded := k.String()
	require.Equal(t, "DC1|SKU1|ambient|2025-01-05", encoded)

	node, product, state, date, ok := ParseInventoryKey(encoded)
	require.True(t, ok)
	require.Equal(t, entities.NodeID("DC1"), node)
	require.Equal(t, entities.ProductID("SKU1"), product)
	require.Equal(t, "ambient", state)
	require.Equal(t, "2025-01-05", date)
}

func TestParseInventoryKey_Malformed(t *testing.T) {
	_, _, _, _, ok := ParseInventoryKey("not-enough-parts")
	require.False(t, ok)
}
