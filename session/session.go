// Package session manages a process-wide pool of int stacks behind plain
// functions, for callers that cannot hold a pool reference themselves
// (foreign-function shims, scripting bindings, the stackpool REPL).
//
// A Session owns at most one pool at a time. Init and InitEmpty replace it
// wholesale, Delete releases it, and every stack operation in between works
// on handles into that single pool.
package session

import (
	"io"
	"sync"

	"github.com/pavanmanishd/stackpool"
)

// Session holds the current pool. All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	pool     *stackpool.SafePool[int]
	poolOpts []stackpool.Option
	logger   *Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. A nil logger discards output.
func WithLogger(l *Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = NoopLogger()
		}
		s.logger = l
	}
}

// WithPoolOptions sets the options applied to every pool the session creates.
func WithPoolOptions(opts ...stackpool.Option) Option {
	return func(s *Session) {
		s.poolOpts = append(s.poolOpts, opts...)
	}
}

// New creates a Session without a pool. Call Init or InitEmpty before
// pushing.
func New(opts ...Option) *Session {
	s := &Session{logger: NoopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init replaces the current pool with one pre-sized for n nodes.
func (s *Session) Init(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked()
	s.pool = stackpool.NewSafe[int](n, s.poolOpts...)
	s.logger.LogInit(n)
}

// InitEmpty replaces the current pool with an empty one.
func (s *Session) InitEmpty() { s.Init(0) }

// Delete releases the current pool. Handles into it become meaningless.
func (s *Session) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked()
}

func (s *Session) deleteLocked() {
	if s.pool == nil {
		return
	}
	m := s.pool.Metrics()
	s.pool.Release()
	s.pool = nil
	s.logger.LogDelete(m)
}

// Stack returns the head of a new empty stack.
func (s *Session) Stack() stackpool.Handle { return stackpool.End }

// End returns the sentinel handle.
func (s *Session) End() stackpool.Handle { return stackpool.End }

// Push pushes value onto the stack at head and returns the new head.
func (s *Session) Push(value int, head stackpool.Handle) (stackpool.Handle, error) {
	p, err := s.current()
	if err != nil {
		return head, err
	}
	h, err := p.TryPush(value, head)
	s.logger.LogOp("push", head, h, err)
	return h, err
}

// Pop removes the top of the stack at head and returns the new head.
func (s *Session) Pop(head stackpool.Handle) (stackpool.Handle, error) {
	p, err := s.current()
	if err != nil {
		return head, err
	}
	h, err := p.Pop(head)
	s.logger.LogOp("pop", head, h, err)
	return h, err
}

// Value returns the value on top of the stack at head.
func (s *Session) Value(head stackpool.Handle) (int, error) {
	p, err := s.current()
	if err != nil {
		return 0, err
	}
	v, err := p.Value(head)
	s.logger.LogOp("value", head, head, err)
	return v, err
}

// Size returns the number of values in the stack at head.
func (s *Session) Size(head stackpool.Handle) (int, error) {
	p, err := s.current()
	if err != nil {
		return 0, err
	}
	return stackpool.SafeSize(p, head)
}

// Unroll drains the stack at head, returning its values top first.
func (s *Session) Unroll(head stackpool.Handle) ([]int, error) {
	p, err := s.current()
	if err != nil {
		return nil, err
	}
	values, err := stackpool.SafeToSlice(p, head)
	s.logger.LogOp("unroll", head, stackpool.End, err)
	return values, err
}

// Print writes a dump of the stack at head to w.
func (s *Session) Print(w io.Writer, head stackpool.Handle) error {
	p, err := s.current()
	if err != nil {
		return err
	}
	return p.Do(func(pool *stackpool.Pool[int]) error {
		return stackpool.Print(w, pool, head)
	})
}

// Metrics returns a snapshot of the current pool statistics.
func (s *Session) Metrics() (stackpool.PoolMetrics, error) {
	p, err := s.current()
	if err != nil {
		return stackpool.PoolMetrics{}, err
	}
	return p.Metrics(), nil
}

func (s *Session) current() (*stackpool.SafePool[int], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool == nil {
		return nil, stackpool.ErrInvalidPool
	}
	return s.pool, nil
}

// Default is the process-wide session used by the package-level functions.
var Default = New()

// Init replaces the default session's pool with one pre-sized for n nodes.
func Init(n int) { Default.Init(n) }

// InitEmpty replaces the default session's pool with an empty one.
func InitEmpty() { Default.InitEmpty() }

// Delete releases the default session's pool.
func Delete() { Default.Delete() }

// Stack returns the head of a new empty stack.
func Stack() stackpool.Handle { return Default.Stack() }

// End returns the sentinel handle.
func End() stackpool.Handle { return Default.End() }

// Push pushes value onto a stack of the default session.
func Push(value int, head stackpool.Handle) (stackpool.Handle, error) {
	return Default.Push(value, head)
}

// Pop removes the top of a stack of the default session.
func Pop(head stackpool.Handle) (stackpool.Handle, error) { return Default.Pop(head) }

// Value returns the top value of a stack of the default session.
func Value(head stackpool.Handle) (int, error) { return Default.Value(head) }

// Size returns the length of a stack of the default session.
func Size(head stackpool.Handle) (int, error) { return Default.Size(head) }

// Unroll drains a stack of the default session.
func Unroll(head stackpool.Handle) ([]int, error) { return Default.Unroll(head) }
