package stackpool

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when an operation is given the End sentinel
	// or a handle outside the pool's current bounds.
	ErrInvalidHandle = errors.New("stackpool: invalid handle")
	// ErrInvalidPool is returned when an operation has no usable backing pool
	// (nil or released).
	ErrInvalidPool = errors.New("stackpool: invalid pool")
	// ErrOutOfRange is returned when an iterator at the end position is
	// dereferenced or advanced.
	ErrOutOfRange = errors.New("stackpool: iterator out of range")
	// ErrResourceExhausted is returned when the backing store cannot grow.
	ErrResourceExhausted = errors.New("stackpool: resource exhausted")
	// ErrChainOverlap is reported by Audit when a node is reachable from two chains.
	ErrChainOverlap = errors.New("stackpool: node reachable from two chains")
	// ErrCycle is reported by Audit when a chain revisits one of its own nodes.
	ErrCycle = errors.New("stackpool: chain contains a cycle")
)

// HandleError records the operation and handle that caused a failure.
//
// The underlying sentinel can be matched with errors.Is.
type HandleError struct {
	Op     string
	Handle Handle
	Err    error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%s: handle %d: %v", e.Op, e.Handle, e.Err)
}

func (e *HandleError) Unwrap() error { return e.Err }

func handleErr(op string, h Handle, err error) error {
	return &HandleError{Op: op, Handle: h, Err: err}
}
