// Package stackpool implements a multi-stack arena allocator for Go.
//
// # Overview
//
// A Pool keeps the nodes of many independent singly-linked stacks in one
// contiguous, growable slice. A stack is not an object: it is the head
// Handle a caller holds, and the chain of next links below it that ends at
// the End sentinel. This is useful for:
//
//   - Many short stacks with a shared memory budget
//   - Graph and tree traversals that need per-branch work lists
//   - Avoiding one heap allocation per pushed element
//
// # Basic Usage
//
//	pool := stackpool.New[int](16) // room for 16 nodes
//
//	s := pool.NewStack()    // End: empty stack, nothing allocated
//	s = pool.Push(1, s)
//	s = pool.Push(2, s)
//
//	v, _ := pool.Value(s)   // 2
//	s, _ = pool.Pop(s)      // node recycled through the free list
//
//	for v := range pool.Values(s) {
//		fmt.Println(v)
//	}
//
//	s, _ = pool.FreeStack(s) // whole stack recycled at once
//
// # Handles
//
// Handle 0 is End. Handle h >= 1 addresses the (h-1)-th node, so handles
// remain valid across store growth. Every handle returned by Push, Pop or
// FreeStack supersedes the handle passed in; keeping and using the old one
// afterwards is a caller error, since its node may already belong to a
// different stack.
//
// # Free List
//
// Popped and freed nodes are threaded onto an intrusive free list and reused
// before the store grows. Values are not cleared when a node is recycled;
// they are overwritten on the next Push.
//
// # Iterators
//
// Iterator and ConstIterator walk a stack from head to bottom without
// consuming it. ConstIterator offers no way to mutate values. All and Values
// adapt the same traversal to range-over-func loops.
//
// # Errors
//
// Accessors return ErrInvalidHandle for End or out-of-range handles,
// iterators return ErrOutOfRange past the end, and any operation on a
// released pool returns ErrInvalidPool. Push panics with ErrResourceExhausted
// when the store cannot grow; TryPush returns it instead.
//
// # Thread Safety
//
// Pool is not goroutine-safe. For concurrent access, use SafePool:
//
//	safe := stackpool.NewSafe[int](0)
//	head := safe.Push(42, safe.NewStack())
//
// # Low-Level Access
//
// SetNext relinks nodes directly. It can make a node reachable from two
// chains or create a loop; Audit detects both.
package stackpool
