package fefo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestPool_ConsumeOldestFirst(t *testing.T) {
	p := NewPool()
	p.Add(Batch{ProductionDate: date(t, "2025-01-03"), Quantity: 100})
	p.Add(Batch{ProductionDate: date(t, "2025-01-01"), Quantity: 50})
	p.Add(Batch{ProductionDate: date(t, "2025-01-02"), Quantity: 80})

	allocations, err := p.Consume(60, date(t, "2025-01-10"), 30)
	require.NoError(t, err)
	require.Len(t, allocations, 2)
	require.Equal(t, date(t, "2025-01-01"), allocations[0].ProductionDate)
	require.Equal(t, 50.0, allocations[0].Quantity)
	require.Equal(t, date(t, "2025-01-02"), allocations[1].ProductionDate)
	require.Equal(t, 10.0, allocations[1].Quantity)

	require.InDelta(t, 170.0, p.Total(), epsilon)
}

func TestPool_Consume_InsufficientInventoryIsFatal(t *testing.T) {
	p := NewPool()
	p.Add(Batch{ProductionDate: date(t, "2025-01-01"), Quantity: 10})

	_, err := p.Consume(50, date(t, "2025-01-05"), 30)
	require.Error(t, err)
}

func TestPool_Consume_ExpiredBatchIsFatal(t *testing.T) {
	p := NewPool()
	p.Add(Batch{ProductionDate: date(t, "2025-01-01"), Quantity: 10})

	_, err := p.Consume(5, date(t, "2025-02-15"), 17)
	require.Error(t, err)
}

func TestPool_Consume_ZeroQuantityIsNoop(t *testing.T) {
	p := NewPool()
	p.Add(Batch{ProductionDate: date(t, "2025-01-01"), Quantity: 10})

	allocations, err := p.Consume(0, date(t, "2025-01-02"), 30)
	require.NoError(t, err)
	require.Nil(t, allocations)
	require.InDelta(t, 10.0, p.Total(), epsilon)
}
