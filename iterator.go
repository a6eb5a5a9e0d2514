package stackpool

import "iter"

// cursor is the single traversal path shared by both iterator views.
// The pool is resolved on every access, so a cursor stays valid across
// store growth.
type cursor[T any] struct {
	pool *Pool[T]
	at   Handle
}

// Handle returns the current position.
func (c cursor[T]) Handle() Handle { return c.at }

// Done reports whether the cursor is at the end position.
func (c cursor[T]) Done() bool { return c.at == End }

// Value returns the value at the current position.
// It fails with ErrOutOfRange at the end position.
func (c cursor[T]) Value() (T, error) {
	if err := c.check("value"); err != nil {
		var zero T
		return zero, err
	}
	return c.pool.Value(c.at)
}

// Next advances to the node linked below the current one.
// It fails with ErrOutOfRange at the end position.
func (c *cursor[T]) Next() error {
	if err := c.check("advance"); err != nil {
		return err
	}
	next, err := c.pool.Next(c.at)
	if err != nil {
		return err
	}
	c.at = next
	return nil
}

func (c cursor[T]) check(op string) error {
	if err := c.pool.valid(); err != nil {
		return err
	}
	if c.at == End {
		return handleErr(op, End, ErrOutOfRange)
	}
	return nil
}

func newCursor[T any](head Handle, p *Pool[T]) (cursor[T], error) {
	if err := p.valid(); err != nil {
		return cursor[T]{}, err
	}
	if !p.inBounds(head) {
		return cursor[T]{}, handleErr("iterator", head, ErrInvalidHandle)
	}
	return cursor[T]{pool: p, at: head}, nil
}

// Iterator is a forward, read-write cursor over one stack, yielding values
// from head to bottom. Two iterators are equal when they sit on the same
// handle.
type Iterator[T any] struct {
	cursor[T]
}

// NewIterator returns a read-write iterator at head.
// It fails with ErrInvalidPool if p is nil or released.
func NewIterator[T any](head Handle, p *Pool[T]) (Iterator[T], error) {
	c, err := newCursor(head, p)
	return Iterator[T]{c}, err
}

// Set overwrites the value at the current position.
func (it Iterator[T]) Set(value T) error {
	if err := it.check("set"); err != nil {
		return err
	}
	return it.pool.SetValue(it.at, value)
}

// Ptr returns a pointer to the value at the current position.
// See Pool.ValuePtr for its lifetime.
func (it Iterator[T]) Ptr() (*T, error) {
	if err := it.check("value"); err != nil {
		return nil, err
	}
	return it.pool.ValuePtr(it.at)
}

// Equal reports whether both iterators are at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.at == other.at }

// Const returns a read-only view at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ConstIterator is the read-only counterpart of Iterator: it traverses a
// stack without any way to mutate it.
type ConstIterator[T any] struct {
	cursor[T]
}

// NewConstIterator returns a read-only iterator at head.
// It fails with ErrInvalidPool if p is nil or released.
func NewConstIterator[T any](head Handle, p *Pool[T]) (ConstIterator[T], error) {
	c, err := newCursor(head, p)
	return ConstIterator[T]{c}, err
}

// Equal reports whether both iterators are at the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.at == other.at }

// Successor returns a read-only iterator one position further down,
// leaving it untouched.
func (it ConstIterator[T]) Successor() (ConstIterator[T], error) {
	next := it
	err := next.Next()
	return next, err
}

// All returns a sequence of (handle, value) pairs from head to bottom.
// The sequence does not consume the stack and stops at the first invalid
// handle.
func (p *Pool[T]) All(head Handle) iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for h := head; h != End; {
			n, err := p.node("all", h)
			if err != nil {
				return
			}
			if !yield(h, n.value) {
				return
			}
			h = n.next
		}
	}
}

// Values returns the values of the stack from head to bottom.
func (p *Pool[T]) Values(head Handle) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.All(head) {
			if !yield(v) {
				return
			}
		}
	}
}
