package vector

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingAllocator(t *testing.T) {
	ca := NewCountingAllocator[int](nil)

	p, err := ca.Allocate(4)
	require.NoError(t, err)
	ca.Construct(&p[0], 1)
	ca.Construct(&p[1], 2)
	ca.Destroy(&p[1])
	ca.Deallocate(p)

	_, err = ca.Allocate(-1)
	require.Error(t, err)

	assert.Equal(t, AllocStats{
		Allocs:       1,
		Deallocs:     1,
		Failures:     1,
		SlotsAlloc:   4,
		SlotsDealloc: 4,
		Constructs:   2,
		Destroys:     1,
	}, ca.Stats())
	assert.Equal(t, int64(1), ca.Stats().LiveElements())
	assert.Zero(t, ca.Stats().LiveSlots())
	assert.Equal(t, int64(3), ca.Stats().Calls())
	assert.Equal(t, HeapAllocator[int]{}.MaxSize(), ca.MaxSize())
}

func TestCountingAllocatorDestroyCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, 64} {
		ca := NewCountingAllocator[string](nil)
		v, err := NewFilled[string](ca, n, "s")
		require.NoError(t, err)

		v.Release()
		stats := ca.Stats()
		assert.Equal(t, int64(n), stats.Destroys, "n=%d", n)
		assert.Equal(t, stats.Allocs, stats.Deallocs, "n=%d", n)
		if n > 0 {
			assert.Equal(t, int64(1), stats.Deallocs, "n=%d", n)
		}
	}
}

func TestCountingAllocatorConcurrent(t *testing.T) {
	ca := NewCountingAllocator[int](NewSafeArenaAllocator[int](4096))
	const workers = 8

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			v := New[int](ca)
			for i := range 100 {
				_ = v.PushBack(i)
			}
			v.Release()
		}()
	}
	wg.Wait()

	stats := ca.Stats()
	assert.Zero(t, stats.LiveElements())
	assert.Zero(t, stats.LiveSlots())
	assert.Zero(t, stats.Failures)
}
