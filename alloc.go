package vector

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Allocator supplies raw storage and per-slot construction for a Vector.
//
// Allocate returns n raw slots (len and cap equal to n). The vector treats
// them as uninitialized until it constructs into them. Deallocate must be
// given exactly a slice previously returned by Allocate on the same
// allocator. Construct and Destroy operate on a single slot and never
// release memory.
//
// An allocator shared by vectors on different goroutines must make
// Allocate and Deallocate safe for concurrent use; Construct and Destroy are
// always called on distinct slots.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(p []T)
	Construct(p *T, value T)
	Destroy(p *T)
	MaxSize() int
}

// maxHeapBytes mirrors the runtime's largest single allocation on 64-bit
// platforms. Requests above it would abort the process instead of failing.
var maxHeapBytes = func() uint64 {
	if strconv.IntSize == 64 {
		return 1 << 47
	}
	return math.MaxInt32
}()

// elemSize returns the size in bytes of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// maxSlots returns how many T fit in maxHeapBytes.
func maxSlots[T any]() int {
	size := elemSize[T]()
	if size == 0 {
		return math.MaxInt
	}
	n := maxHeapBytes / uint64(size)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// HeapAllocator allocates slots from the Go heap. It holds no state and is
// safe for concurrent use. The zero value is ready to use.
type HeapAllocator[T any] struct{}

// Allocate returns n zeroed slots. Returns nil if n == 0.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("allocate %d slots: %w", n, ErrNegativeCount)
	case n == 0:
		return nil, nil
	case n > maxSlots[T]():
		return nil, fmt.Errorf("allocate %d slots: %w", n, ErrTooLarge)
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims the region once the
// vector drops it.
func (HeapAllocator[T]) Deallocate([]T) {}

// Construct copies value into the raw slot p.
func (HeapAllocator[T]) Construct(p *T, value T) {
	*p = value
}

// Destroy zeroes the slot so it no longer retains anything the element
// referenced.
func (HeapAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// MaxSize returns the largest slot count a single Allocate can satisfy.
func (HeapAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}
