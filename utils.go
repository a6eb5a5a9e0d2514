package stackpool

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// PushAll pushes values onto the stack in order, so the first value ends up
// deepest, and returns the new head. With no values head is returned as is.
func PushAll[T any](p *Pool[T], head Handle, values ...T) Handle {
	for _, v := range values {
		head = p.Push(v, head)
	}
	return head
}

// PushSeq is PushAll over an iter.Seq.
func PushSeq[T any](p *Pool[T], head Handle, seq iter.Seq[T]) Handle {
	for v := range seq {
		head = p.Push(v, head)
	}
	return head
}

// ToSlice drains the stack into a slice in head-to-bottom order.
// Every node is popped: the stack is empty afterwards.
func ToSlice[T any](p *Pool[T], head Handle) ([]T, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for head != End {
		v, err := p.Value(head)
		if err != nil {
			return out, err
		}
		out = append(out, v)
		if head, err = p.Pop(head); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Size counts the nodes of the stack without modifying it.
func Size[T any](p *Pool[T], head Handle) (int, error) {
	it, err := NewConstIterator(head, p)
	if err != nil {
		return 0, err
	}
	n := 0
	for end := p.CEnd(head); !it.Equal(end); n++ {
		if err := it.Next(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Print writes a diagnostic dump of the stack to w: a header, one
// "handle -> value" line per node and an END marker.
func Print[T any](w io.Writer, p *Pool[T], head Handle) error {
	it, err := NewConstIterator(head, p)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "STACK (head=%d)\n", head); err != nil {
		return err
	}
	for !it.Done() {
		v, err := it.Value()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d -> %v\n", it.Handle(), v); err != nil {
			return err
		}
		if err := it.Next(); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "END")
	return err
}

// MaxElement returns an iterator at the first node holding the largest
// value, or the end position for an empty stack.
func MaxElement[T cmp.Ordered](p *Pool[T], head Handle) (ConstIterator[T], error) {
	return MaxElementFunc(p, head, cmp.Compare[T])
}

// MinElement returns an iterator at the first node holding the smallest
// value, or the end position for an empty stack.
func MinElement[T cmp.Ordered](p *Pool[T], head Handle) (ConstIterator[T], error) {
	return MinElementFunc(p, head, cmp.Compare[T])
}

// MaxElementFunc is MaxElement with a custom comparison.
func MaxElementFunc[T any](p *Pool[T], head Handle, compare func(a, b T) int) (ConstIterator[T], error) {
	return extreme(p, head, func(v, best T) bool { return compare(v, best) > 0 })
}

// MinElementFunc is MinElement with a custom comparison.
func MinElementFunc[T any](p *Pool[T], head Handle, compare func(a, b T) int) (ConstIterator[T], error) {
	return extreme(p, head, func(v, best T) bool { return compare(v, best) < 0 })
}

func extreme[T any](p *Pool[T], head Handle, better func(v, best T) bool) (ConstIterator[T], error) {
	it, err := NewConstIterator(head, p)
	if err != nil || it.Done() {
		return it, err
	}
	best := it
	bestVal, err := it.Value()
	if err != nil {
		return best, err
	}
	for {
		if err := it.Next(); err != nil {
			return best, err
		}
		if it.Done() {
			return best, nil
		}
		v, err := it.Value()
		if err != nil {
			return best, err
		}
		if better(v, bestVal) {
			best, bestVal = it, v
		}
	}
}
