package stackpool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
// Every call is serialized, which also serializes the stacks themselves:
// handles are still only meaningful to the caller that owns them.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafe creates a new goroutine-safe pool with room for capacity nodes.
func NewSafe[T any](capacity int, opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: New[T](capacity, opts...)}
}

// Do runs fn with exclusive access to the underlying pool.
// Use it for compound work such as the utility functions.
func (s *SafePool[T]) Do(fn func(p *Pool[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.p)
}

// NewStack returns the head of a fresh, empty stack.
func (s *SafePool[T]) NewStack() Handle { return End }

// Empty reports whether h is the head of an empty stack.
func (s *SafePool[T]) Empty(h Handle) bool { return h == End }

// Push thread-safely pushes value onto the stack. See Pool.Push.
func (s *SafePool[T]) Push(value T, head Handle) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Push(value, head)
}

// TryPush thread-safely pushes value onto the stack. See Pool.TryPush.
func (s *SafePool[T]) TryPush(value T, head Handle) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.TryPush(value, head)
}

// Pop thread-safely removes the top node of the stack.
func (s *SafePool[T]) Pop(head Handle) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Pop(head)
}

// FreeStack thread-safely returns every node of the stack to the free list.
func (s *SafePool[T]) FreeStack(head Handle) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.FreeStack(head)
}

// Value thread-safely returns the value stored at h.
func (s *SafePool[T]) Value(h Handle) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Value(h)
}

// SetValue thread-safely overwrites the value stored at h.
func (s *SafePool[T]) SetValue(h Handle, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.SetValue(h, value)
}

// Next thread-safely returns the handle linked below h.
func (s *SafePool[T]) Next(h Handle) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Next(h)
}

// SetNext thread-safely relinks h to next. See Pool.SetNext.
func (s *SafePool[T]) SetNext(h, next Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.SetNext(h, next)
}

// Reserve thread-safely grows the backing store to at least n nodes.
func (s *SafePool[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reserve(n)
}

// Capacity thread-safely returns the backing store capacity in nodes.
func (s *SafePool[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Capacity()
}

// Reset thread-safely drops every node, keeping capacity.
func (s *SafePool[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reset()
}

// Release thread-safely drops the backing store and makes the pool unusable.
func (s *SafePool[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Release()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}

// Audit thread-safely checks the pool's chains. See Pool.Audit.
func (s *SafePool[T]) Audit(heads ...Handle) (AuditReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Audit(heads...)
}

// Utility functions for SafePool

// SafePushAll thread-safely pushes values onto the stack. See PushAll.
func SafePushAll[T any](s *SafePool[T], head Handle, values ...T) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PushAll(s.p, head, values...)
}

// SafeToSlice thread-safely drains the stack into a slice. See ToSlice.
func SafeToSlice[T any](s *SafePool[T], head Handle) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ToSlice(s.p, head)
}

// SafeSize thread-safely counts the nodes of the stack. See Size.
func SafeSize[T any](s *SafePool[T], head Handle) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Size(s.p, head)
}
