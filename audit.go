package stackpool

import "github.com/RoaringBitmap/roaring/v2"

// AuditReport summarizes a successful Audit.
type AuditReport struct {
	Reachable   uint64 // Nodes reachable from the audited heads
	Free        uint64 // Nodes on the free list
	Unreachable uint64 // Materialized nodes held by neither
}

// Audit checks that the free list and the given stack heads form disjoint,
// acyclic chains. Pass every head that callers still hold; nodes owned by
// none of them are counted as Unreachable.
//
// A node seen twice in one chain yields ErrCycle, a node shared by two
// chains yields ErrChainOverlap and a link leaving the store yields
// ErrInvalidHandle. The regular operations never perform these checks.
func (p *Pool[T]) Audit(heads ...Handle) (AuditReport, error) {
	var report AuditReport
	if err := p.valid(); err != nil {
		return report, err
	}

	seen := roaring.New()
	free, err := p.walk("audit free list", p.free, seen)
	if err != nil {
		return report, err
	}
	report.Free = free

	for _, head := range heads {
		n, err := p.walk("audit", head, seen)
		if err != nil {
			return report, err
		}
		report.Reachable += n
	}

	report.Unreachable = uint64(len(p.nodes)) - seen.GetCardinality()
	return report, nil
}

// walk marks every node of the chain starting at head in seen and returns
// the chain length.
func (p *Pool[T]) walk(op string, head Handle, seen *roaring.Bitmap) (uint64, error) {
	chain := roaring.New()
	var n uint64
	for h := head; h != End; n++ {
		if !p.inBounds(h) {
			return n, handleErr(op, h, ErrInvalidHandle)
		}
		if chain.Contains(uint32(h)) {
			return n, handleErr(op, h, ErrCycle)
		}
		if seen.Contains(uint32(h)) {
			return n, handleErr(op, h, ErrChainOverlap)
		}
		chain.Add(uint32(h))
		h = p.nodes[h-1].next
	}
	seen.Or(chain)
	return n, nil
}
