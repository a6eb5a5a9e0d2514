package stackpool_test

import (
	"slices"
	"testing"

	"github.com/pavanmanishd/stackpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEdgeCases covers edge cases of the public API
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		for _, size := range []int{0, -1, -1000} {
			p := stackpool.New[int](size)
			assert.Equal(t, 0, p.Capacity(), "New(%d)", size)
			assert.Equal(t, stackpool.End, p.NewStack())
			p.Release()
		}
	})

	t.Run("UseAfterRelease", func(t *testing.T) {
		p := stackpool.New[int](16)
		h := p.Push(1, p.NewStack())
		p.Release()

		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic after Release()", name)
				}
			}()
			fn()
		}

		testPanic("Push", func() { p.Push(1, stackpool.End) })
		testPanic("Reserve", func() { p.Reserve(100) })
		testPanic("Reset", func() { p.Reset() })
		testPanic("PushAll", func() { stackpool.PushAll(p, stackpool.End, 1, 2) })

		_, err := p.Value(h)
		assert.ErrorIs(t, err, stackpool.ErrInvalidPool)
		_, err = stackpool.Size(p, h)
		assert.ErrorIs(t, err, stackpool.ErrInvalidPool)
		_, err = stackpool.ToSlice(p, h)
		assert.ErrorIs(t, err, stackpool.ErrInvalidPool)
		_, err = stackpool.MaxElement(p, h)
		assert.ErrorIs(t, err, stackpool.ErrInvalidPool)
		assert.Empty(t, slices.Collect(p.Values(h)))
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		p := stackpool.New[int](1024)
		p.Release()
		// Multiple releases should be safe
		p.Release()
		p.Release()
	})

	t.Run("EmptyStackOperations", func(t *testing.T) {
		p := stackpool.New[int](0)
		s := p.NewStack()

		_, err := p.Pop(s)
		assert.ErrorIs(t, err, stackpool.ErrInvalidHandle)
		_, err = p.Value(s)
		assert.ErrorIs(t, err, stackpool.ErrInvalidHandle)

		s, err = p.FreeStack(s)
		require.NoError(t, err)
		assert.True(t, p.Empty(s))

		values, err := stackpool.ToSlice(p, s)
		require.NoError(t, err)
		assert.Empty(t, values)
		assert.Equal(t, 0, p.Len(), "nothing should be allocated for empty stacks")
	})

	t.Run("RecyclingDoesNotScrub", func(t *testing.T) {
		p := stackpool.New[string](0)
		h := p.Push("kept", p.NewStack())
		_, err := p.Pop(h)
		require.NoError(t, err)

		// the stale handle still addresses the recycled node
		v, err := p.Value(h)
		require.NoError(t, err)
		assert.Equal(t, "kept", v)

		reused := p.Push("new", p.NewStack())
		assert.Equal(t, h, reused)
		v, err = p.Value(h)
		require.NoError(t, err)
		assert.Equal(t, "new", v)
	})
}

// TestLargeStack checks long chains and bulk recycling
func TestLargeStack(t *testing.T) {
	const n = 100000

	p := stackpool.New[int](0)
	h := p.NewStack()
	for i := 0; i < n; i++ {
		h = p.Push(i, h)
	}

	size, err := stackpool.Size(p, h)
	require.NoError(t, err)
	assert.Equal(t, n, size)

	h, err = p.FreeStack(h)
	require.NoError(t, err)
	assert.Equal(t, n, p.FreeCount())

	capacity := p.Capacity()
	for i := 0; i < n; i++ {
		h = p.Push(i, h)
	}
	assert.Equal(t, n, p.Len(), "freed nodes should be reused before growing")
	assert.Equal(t, capacity, p.Capacity())
}

// TestManyStacks builds, frees and rebuilds many stacks in one pool
func TestManyStacks(t *testing.T) {
	const numStacks = 1000

	p := stackpool.New[int](0)
	heads := make([]stackpool.Handle, numStacks)
	for s := range heads {
		for j := 0; j <= s%7; j++ {
			heads[s] = p.Push(s*10+j, heads[s])
		}
	}

	// free every other stack
	for s := 0; s < numStacks; s += 2 {
		var err error
		heads[s], err = p.FreeStack(heads[s])
		require.NoError(t, err)
	}
	length := p.Len()

	// rebuild them; the freed nodes are enough
	for s := 0; s < numStacks; s += 2 {
		for j := 0; j <= s%7; j++ {
			heads[s] = p.Push(s*10+j, heads[s])
		}
	}
	assert.Equal(t, length, p.Len())

	for s, h := range heads {
		var want []int
		for j := s % 7; j >= 0; j-- {
			want = append(want, s*10+j)
		}
		assert.Equal(t, want, slices.Collect(p.Values(h)), "stack %d", s)
	}

	report, err := p.Audit(heads...)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), report.Unreachable)
	assert.Equal(t, uint64(0), report.Free)
}

// TestBoundaryConditions tests boundary conditions
func TestBoundaryConditions(t *testing.T) {
	t.Run("ExactCapacity", func(t *testing.T) {
		p := stackpool.New[int](4)
		capacity := p.Capacity()

		h := p.NewStack()
		for i := 0; i < capacity; i++ {
			h = p.Push(i, h)
		}
		assert.Equal(t, capacity, p.Capacity(), "filling reserved capacity must not reallocate")

		// This should trigger growth
		p.Push(capacity, h)
		assert.Greater(t, p.Capacity(), capacity)
	})

	t.Run("NodeLimitOfOne", func(t *testing.T) {
		p := stackpool.New[int](0, stackpool.WithMaxNodes(1))
		h, err := p.TryPush(1, p.NewStack())
		require.NoError(t, err)

		_, err = p.TryPush(2, h)
		assert.ErrorIs(t, err, stackpool.ErrResourceExhausted)

		_, err = p.TryPush(2, p.NewStack())
		assert.ErrorIs(t, err, stackpool.ErrResourceExhausted, "limit is per pool, not per stack")
	})
}
