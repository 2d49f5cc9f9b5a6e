// Package fefo converts the aggregate, state-level flows a solved MIP
// produces into per-batch, production-date-tagged flows, using
// First-Expired-First-Out ordering. It generalises the teacher's
// allocateFIFO (pkg/mrp/engine.go) — greedy consumption from the oldest
// available lot until demand is met — from "oldest lot first" (receipt
// date) to "earliest-expiry first" (production date + shelf life).
package fefo

import (
	"sort"
	"time"

	plannererrors "github.com/sverzijl/planner/internal/domain/errors"
)

// Batch is a quantity of product produced on one date, still tracked
// separately from other production runs so its age and remaining shelf
// life can be computed.
type Batch struct {
	ProductionDate time.Time
	Quantity       float64
}

// BatchAllocation is the amount drawn from one batch to satisfy a single
// consumption or shipment event.
type BatchAllocation struct {
	ProductionDate time.Time
	Quantity       float64
}

// Pool holds every batch currently on hand for one (node, product, state)
// cell, FEFO-ordered.
type Pool struct {
	batches []Batch
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add inserts a batch, keeping the pool sorted oldest-production-date
// first — the consumption order FEFO requires, since within one
// (node,product,state) cell every batch shares the same shelf life and so
// the oldest production date always expires soonest.
func (p *Pool) Add(b Batch) {
	if b.Quantity <= 0 {
		return
	}
	i := sort.Search(len(p.batches), func(i int) bool {
		return p.batches[i].ProductionDate.After(b.ProductionDate)
	})
	p.batches = append(p.batches, Batch{})
	copy(p.batches[i+1:], p.batches[i:])
	p.batches[i] = b
}

// Total returns the sum of every batch's remaining quantity.
func (p *Pool) Total() float64 {
	var total float64
	for _, b := range p.batches {
		total += b.Quantity
	}
	return total
}

// Consume draws qty units from the pool FEFO, checking that every batch it
// touches has not exceeded shelfLifeDays as of asOf. A batch past its
// shelf life is a bug in the upstream model (the shelf-life sliding-window
// constraint should have forced its disposal already), not a condition this
// allocator can recover from — so it raises rather than silently skipping
// the expired batch (spec.md §4.6).
func (p *Pool) Consume(qty float64, asOf time.Time, shelfLifeDays int) ([]BatchAllocation, error) {
	if qty <= 0 {
		return nil, nil
	}

	var allocations []BatchAllocation
	remaining := qty
	consumed := 0

	for i := 0; i < len(p.batches) && remaining > epsilon; i++ {
		b := &p.batches[i]
		if b.Quantity <= 0 {
			continue
		}

		expiry := b.ProductionDate.AddDate(0, 0, shelfLifeDays)
		if asOf.After(expiry) {
			return nil, &plannererrors.SolutionContractError{Reason: "fefo allocator: batch produced " +
				b.ProductionDate.Format("2006-01-02") + " exceeded its shelf life by the time it was consumed on " + asOf.Format("2006-01-02")}
		}

		take := remaining
		if b.Quantity < take {
			take = b.Quantity
		}
		b.Quantity -= take
		remaining -= take
		allocations = append(allocations, BatchAllocation{ProductionDate: b.ProductionDate, Quantity: take})
		consumed++
	}

	if remaining > epsilon {
		return nil, &plannererrors.SolutionContractError{Reason: "fefo allocator: insufficient batch inventory to cover requested consumption"}
	}

	p.compact()
	return allocations, nil
}

// compact drops fully-consumed batches so Total and future Consume calls
// don't keep iterating over them.
func (p *Pool) compact() {
	out := p.batches[:0]
	for _, b := range p.batches {
		if b.Quantity > epsilon {
			out = append(out, b)
		}
	}
	p.batches = out
}

// epsilon is the reconciliation tolerance spec.md §4.6 allows between
// allocated batch quantities and the aggregate inventory they must sum to.
const epsilon = 1e-6
