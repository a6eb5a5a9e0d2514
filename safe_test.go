package stackpool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSafe(t *testing.T) {
	s := NewSafe[int](1024)
	require.NotNil(t, s)
	require.NotNil(t, s.p)
	assert.GreaterOrEqual(t, s.Capacity(), 1024)
}

func TestSafePool_Operations(t *testing.T) {
	s := NewSafe[int](0)

	l := s.NewStack()
	assert.True(t, s.Empty(l))

	l = s.Push(1, l)
	l, err := s.TryPush(2, l)
	require.NoError(t, err)

	v, err := s.Value(l)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	require.NoError(t, s.SetValue(l, 20))
	next, err := s.Next(l)
	require.NoError(t, err)
	assert.Equal(t, Handle(1), next)

	l, err = s.Pop(l)
	require.NoError(t, err)
	assert.Equal(t, Handle(1), l)

	l, err = s.FreeStack(l)
	require.NoError(t, err)
	assert.Equal(t, End, l)

	m := s.Metrics()
	assert.Equal(t, 2, m.FreeCount)
	assert.Equal(t, 0, m.InUse)

	report, err := s.Audit()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), report.Free)

	s.Reserve(64)
	assert.GreaterOrEqual(t, s.Capacity(), 64)

	s.Reset()
	assert.Equal(t, 0, s.Metrics().Len)
}

func TestSafePool_SetNext(t *testing.T) {
	s := NewSafe[int](0)
	a := SafePushAll(s, s.NewStack(), 1, 2)
	b := s.Push(3, s.NewStack())

	require.NoError(t, s.SetNext(b, End))
	assert.ErrorIs(t, s.SetNext(b, 10), ErrInvalidHandle)

	n, err := SafeSize(s, a)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSafePool_Do(t *testing.T) {
	s := NewSafe[int](0)
	var l Handle

	err := s.Do(func(p *Pool[int]) error {
		l = PushAll(p, p.NewStack(), 1, 2, 3)
		return nil
	})
	require.NoError(t, err)

	got, err := SafeToSlice(s, l)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestSafePool_Release(t *testing.T) {
	s := NewSafe[int](0)
	l := s.Push(1, s.NewStack())
	s.Release()

	_, err := s.Value(l)
	assert.ErrorIs(t, err, ErrInvalidPool)
	_, err = s.TryPush(2, l)
	assert.ErrorIs(t, err, ErrInvalidPool)
	assert.Panics(t, func() { s.Push(2, l) })

	// the lock must be released after the panic
	assert.Equal(t, 0, s.Capacity())
}

func TestSafePool_Concurrent(t *testing.T) {
	s := NewSafe[int](0)

	const numWorkers = 8
	const numPushes = 500

	var wg sync.WaitGroup
	results := make([][]int, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			// each worker owns one stack in the shared pool
			l := s.NewStack()
			for i := 0; i < numPushes; i++ {
				l = s.Push(id*numPushes+i, l)
				if i%3 == 2 {
					var err error
					if l, err = s.Pop(l); err != nil {
						t.Error(err)
						return
					}
				}
			}

			values, err := SafeToSlice(s, l)
			if err != nil {
				t.Error(err)
				return
			}
			results[id] = values
		}(w)
	}
	wg.Wait()

	for id, values := range results {
		var want []int
		for i := numPushes - 1; i >= 0; i-- {
			if i%3 != 2 {
				want = append(want, id*numPushes+i)
			}
		}
		assert.Equal(t, want, values, "worker %d", id)
	}

	m := s.Metrics()
	assert.Equal(t, 0, m.InUse)
	assert.Equal(t, m.Len, m.FreeCount)
}
