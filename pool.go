// Package stackpool implements a multi-stack arena allocator.
// Many independent singly-linked stacks share one contiguous node store;
// freed nodes are recycled through an intrusive free list.
package stackpool

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/semaphore"
)

// Handle identifies a node slot in a Pool. Handle h >= 1 addresses the
// (h-1)-th node; the zero value is the End sentinel.
type Handle uint32

const (
	// End is the sentinel handle: the bottom of every stack, the head of an
	// empty stack and the terminator of the free list.
	End Handle = 0
	// MaxHandle is the largest addressable handle.
	MaxHandle Handle = math.MaxUint32
)

// node is a single arena record.
type node[T any] struct {
	value T
	next  Handle
}

// Pool is a contiguous, growable store of nodes shared by any number of
// logical stacks. A stack is nothing more than the head handle a caller
// keeps; every handle returned by Push, Pop or FreeStack supersedes the one
// passed in.
//
// Pool is not goroutine-safe. Use SafePool for concurrent access.
type Pool[T any] struct {
	nodes    []node[T]
	free     Handle // head of the free list
	limit    *semaphore.Weighted
	maxNodes int64
	released bool
}

// New creates a Pool with room for capacity nodes.
// If capacity <= 0 the backing store starts empty.
func New[T any](capacity int, opts ...Option) *Pool[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{free: End}
	if o.maxNodes > 0 {
		p.maxNodes = o.maxNodes
		p.limit = semaphore.NewWeighted(o.maxNodes)
	}
	if capacity > 0 {
		p.Reserve(capacity)
	}
	return p
}

// NewStack returns the head of a fresh, empty stack. No node is allocated
// until the first Push.
func (p *Pool[T]) NewStack() Handle { return End }

// Empty reports whether h is the head of an empty stack.
func (p *Pool[T]) Empty(h Handle) bool { return h == End }

// Push stores value on top of the stack whose head is head and returns the
// new head. A recycled node is used when one is available, otherwise the
// store grows by one node.
//
// Push panics if the pool is invalid, head is out of range, or the store
// cannot grow (ErrResourceExhausted). Use TryPush to get the error instead.
func (p *Pool[T]) Push(value T, head Handle) Handle {
	h, err := p.TryPush(value, head)
	if err != nil {
		panic(err)
	}
	return h
}

// TryPush is like Push but returns failures as errors.
func (p *Pool[T]) TryPush(value T, head Handle) (Handle, error) {
	if err := p.valid(); err != nil {
		return head, err
	}
	if !p.inBounds(head) {
		return head, handleErr("push", head, ErrInvalidHandle)
	}
	if p.free == End {
		if err := p.grow(); err != nil {
			return head, handleErr("push", head, err)
		}
	}

	h := p.free
	n := &p.nodes[h-1]
	// the next free node becomes the head of the free list
	p.free = n.next

	n.next = head
	n.value = value
	return h, nil
}

// Pop removes the top node of the stack and returns the new head.
// The node is moved to the free list; its value is not cleared and will be
// overwritten on reuse.
func (p *Pool[T]) Pop(head Handle) (Handle, error) {
	n, err := p.node("pop", head)
	if err != nil {
		return head, err
	}
	next := n.next
	n.next = p.free
	p.free = head
	return next, nil
}

// FreeStack moves every node of the stack to the free list and returns End,
// the head of the now empty stack. The whole chain is spliced in with a
// single link update after locating its bottom node, so the cost is
// O(length). Freeing End is a no-op.
func (p *Pool[T]) FreeStack(head Handle) (Handle, error) {
	if err := p.valid(); err != nil {
		return head, err
	}
	if head == End {
		return End, nil
	}

	bottom, err := p.node("free stack", head)
	if err != nil {
		return head, err
	}
	for bottom.next != End {
		if bottom, err = p.node("free stack", bottom.next); err != nil {
			return head, err
		}
	}

	bottom.next = p.free
	p.free = head
	return End, nil
}

// Value returns the value stored at h.
func (p *Pool[T]) Value(h Handle) (T, error) {
	n, err := p.node("value", h)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// SetValue overwrites the value stored at h.
func (p *Pool[T]) SetValue(h Handle, value T) error {
	n, err := p.node("set value", h)
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// ValuePtr returns a pointer to the value stored at h for in-place updates.
// The pointer is invalidated by the next store growth (Push, Reserve).
func (p *Pool[T]) ValuePtr(h Handle) (*T, error) {
	n, err := p.node("value", h)
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Next returns the handle linked below h.
func (p *Pool[T]) Next(h Handle) (Handle, error) {
	n, err := p.node("next", h)
	if err != nil {
		return End, err
	}
	return n.next, nil
}

// SetNext relinks h to next.
//
// This is a low-level escape hatch. Both handles are bounds-checked, but
// nothing prevents a node from becoming reachable from two chains or a chain
// from looping. Use Audit to verify the pool afterwards.
func (p *Pool[T]) SetNext(h, next Handle) error {
	n, err := p.node("set next", h)
	if err != nil {
		return err
	}
	if !p.inBounds(next) {
		return handleErr("set next", next, ErrInvalidHandle)
	}
	n.next = next
	return nil
}

// Reserve grows the backing store so it can hold at least n nodes without
// reallocating. It never shrinks the store and has no effect on stacks.
func (p *Pool[T]) Reserve(n int) {
	p.panicIfReleased()
	if n > cap(p.nodes) {
		p.nodes = slices.Grow(p.nodes, n-len(p.nodes))
	}
}

// Capacity returns the number of nodes the store can hold without reallocating.
func (p *Pool[T]) Capacity() int {
	if p == nil || p.released {
		return 0
	}
	return cap(p.nodes)
}

// Reset drops every node and empties the free list while keeping the
// backing capacity. All previously issued handles other than End become
// out of range.
func (p *Pool[T]) Reset() {
	p.panicIfReleased()
	p.releaseLimit()
	clear(p.nodes)
	p.nodes = p.nodes[:0]
	p.free = End
}

// Release drops the backing store and makes the pool unusable.
// Subsequent operations fail with ErrInvalidPool. Releasing twice is safe.
func (p *Pool[T]) Release() {
	if p.released {
		return
	}
	p.releaseLimit()
	p.nodes = nil
	p.free = End
	p.released = true
}

// Begin returns a read-write iterator positioned at head.
func (p *Pool[T]) Begin(head Handle) Iterator[T] {
	return Iterator[T]{cursor[T]{pool: p, at: head}}
}

// End returns the read-write iterator position past the bottom of any stack.
func (p *Pool[T]) End(Handle) Iterator[T] {
	return Iterator[T]{cursor[T]{pool: p, at: End}}
}

// CBegin returns a read-only iterator positioned at head.
func (p *Pool[T]) CBegin(head Handle) ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{pool: p, at: head}}
}

// CEnd returns the read-only iterator position past the bottom of any stack.
func (p *Pool[T]) CEnd(Handle) ConstIterator[T] {
	return ConstIterator[T]{cursor[T]{pool: p, at: End}}
}

// grow appends one fresh node and makes it the free list head.
func (p *Pool[T]) grow() error {
	if uint64(len(p.nodes)) >= uint64(MaxHandle) {
		return fmt.Errorf("%w: handle space full", ErrResourceExhausted)
	}
	if p.limit != nil && !p.limit.TryAcquire(1) {
		return fmt.Errorf("%w: node limit %d reached", ErrResourceExhausted, p.maxNodes)
	}
	p.nodes = append(p.nodes, node[T]{next: End})
	p.free = Handle(len(p.nodes))
	return nil
}

// node resolves h to its record, failing on End or an out-of-range handle.
func (p *Pool[T]) node(op string, h Handle) (*node[T], error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	if h == End || uint64(h) > uint64(len(p.nodes)) {
		return nil, handleErr(op, h, ErrInvalidHandle)
	}
	return &p.nodes[h-1], nil
}

// inBounds reports whether h is End or addresses a materialized node.
func (p *Pool[T]) inBounds(h Handle) bool {
	return uint64(h) <= uint64(len(p.nodes))
}

func (p *Pool[T]) valid() error {
	if p == nil || p.released {
		return ErrInvalidPool
	}
	return nil
}

func (p *Pool[T]) releaseLimit() {
	if p.limit != nil && len(p.nodes) > 0 {
		p.limit.Release(int64(len(p.nodes)))
	}
}

// panicIfReleased panics if the pool has been released.
func (p *Pool[T]) panicIfReleased() {
	if err := p.valid(); err != nil {
		panic(err)
	}
}
