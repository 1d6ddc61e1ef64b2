package vector

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// CountingAllocator wraps an allocator and counts every call made through
// it. Counters are atomic, so one CountingAllocator may be shared by vectors
// on different goroutines as long as the wrapped allocator allows that.
type CountingAllocator[T any] struct {
	inner Allocator[T]

	allocs     atomic.Int64
	failures   atomic.Int64
	slotsIn    atomic.Int64
	_          cpu.CacheLinePad
	deallocs   atomic.Int64
	slotsOut   atomic.Int64
	_          cpu.CacheLinePad
	constructs atomic.Int64
	destroys   atomic.Int64
}

// NewCountingAllocator wraps inner. A nil inner means HeapAllocator.
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &CountingAllocator[T]{inner: inner}
}

func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	p, err := c.inner.Allocate(n)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.allocs.Add(1)
	c.slotsIn.Add(int64(len(p)))
	return p, nil
}

func (c *CountingAllocator[T]) Deallocate(p []T) {
	c.deallocs.Add(1)
	c.slotsOut.Add(int64(len(p)))
	c.inner.Deallocate(p)
}

func (c *CountingAllocator[T]) Construct(p *T, value T) {
	c.constructs.Add(1)
	c.inner.Construct(p, value)
}

func (c *CountingAllocator[T]) Destroy(p *T) {
	c.destroys.Add(1)
	c.inner.Destroy(p)
}

func (c *CountingAllocator[T]) MaxSize() int {
	return c.inner.MaxSize()
}

// Stats returns a snapshot of the counters. Counters are read one at a time,
// so a snapshot taken during concurrent use need not be consistent.
func (c *CountingAllocator[T]) Stats() AllocStats {
	return AllocStats{
		Allocs:       c.allocs.Load(),
		Deallocs:     c.deallocs.Load(),
		Failures:     c.failures.Load(),
		SlotsAlloc:   c.slotsIn.Load(),
		SlotsDealloc: c.slotsOut.Load(),
		Constructs:   c.constructs.Load(),
		Destroys:     c.destroys.Load(),
	}
}

// AllocStats is a snapshot of a CountingAllocator.
type AllocStats struct {
	Allocs       int64 // Successful Allocate calls
	Deallocs     int64 // Deallocate calls
	Failures     int64 // Failed Allocate calls
	SlotsAlloc   int64 // Slots handed out
	SlotsDealloc int64 // Slots handed back
	Constructs   int64 // Construct calls
	Destroys     int64 // Destroy calls
}

// LiveSlots returns slots allocated but not yet deallocated.
func (s AllocStats) LiveSlots() int64 { return s.SlotsAlloc - s.SlotsDealloc }

// LiveElements returns elements constructed but not yet destroyed.
func (s AllocStats) LiveElements() int64 { return s.Constructs - s.Destroys }

// Calls returns the number of Allocate and Deallocate calls, failed or not.
func (s AllocStats) Calls() int64 { return s.Allocs + s.Failures + s.Deallocs }
