package stackpool

import "fmt"

// Len returns the number of nodes materialized in the store, whether they
// belong to a stack or to the free list.
func (p *Pool[T]) Len() int {
	if p == nil || p.released {
		return 0
	}
	return len(p.nodes)
}

// FreeCount returns the number of nodes waiting on the free list.
// It walks the list, so the cost is O(free nodes).
func (p *Pool[T]) FreeCount() int {
	if p == nil || p.released {
		return 0
	}
	n := 0
	for h := p.free; h != End && n < len(p.nodes); n++ {
		if !p.inBounds(h) {
			break
		}
		h = p.nodes[h-1].next
	}
	return n
}

// InUse returns the number of nodes currently held by stacks.
func (p *Pool[T]) InUse() int {
	return p.Len() - p.FreeCount()
}

// Utilization returns the ratio of nodes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the pool has no capacity.
func (p *Pool[T]) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.InUse()) / float64(capacity)
}

// MaxNodes returns the configured node limit, 0 if unlimited.
func (p *Pool[T]) MaxNodes() int64 {
	if p == nil {
		return 0
	}
	return p.maxNodes
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	return PoolMetrics{
		Len:         p.Len(),
		FreeCount:   p.FreeCount(),
		InUse:       p.InUse(),
		Capacity:    p.Capacity(),
		MaxNodes:    p.MaxNodes(),
		Utilization: p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Len         int     // Nodes materialized
	FreeCount   int     // Nodes on the free list
	InUse       int     // Nodes held by stacks
	Capacity    int     // Nodes the store holds without reallocating
	MaxNodes    int64   // Node limit, 0 if unlimited
	Utilization float64 // Ratio of in-use nodes to capacity (0.0-1.0)
}

func (p *Pool[T]) String() string {
	m := p.Metrics()
	return fmt.Sprintf(
		"Pool{nodes: %d, free: %d, in use: %d, capacity: %d, usage: %.1f%%}",
		m.Len,
		m.FreeCount,
		m.InUse,
		m.Capacity,
		m.Utilization*100,
	)
}
