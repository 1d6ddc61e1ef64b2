package vector

import (
	"fmt"
	"iter"
	"slices"
)

// Vector is a growable array whose storage comes from an Allocator.
// Not goroutine-safe: concurrent readers are fine only while nobody mutates.
//
// The zero value is an empty vector backed by HeapAllocator.
type Vector[T any] struct {
	alloc Allocator[T]
	buf   []T // allocated region, len(buf) is the capacity; nil when capacity is 0
	n     int // live elements occupy buf[:n]
}

// New returns an empty vector that will draw storage from a.
// If a is nil, HeapAllocator is used. No storage is allocated.
func New[T any](a Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: a}
}

// NewFilled returns a vector holding n copies of value in exactly n slots.
// On failure nothing is left allocated.
func NewFilled[T any](a Allocator[T], n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("vector: new filled %d: %w", n, ErrNegativeCount)
	}
	v := New(a)
	if n == 0 {
		return v, nil
	}
	buf, err := v.allocate(n)
	if err != nil {
		return nil, fmt.Errorf("vector: new filled %d: %w", n, err)
	}
	al := v.allocator()
	for i := range n {
		al.Construct(&buf[i], value)
	}
	v.buf, v.n = buf, n
	return v, nil
}

// NewFromSlice returns a vector holding a copy of src in exactly len(src) slots.
func NewFromSlice[T any](a Allocator[T], src []T) (*Vector[T], error) {
	v := New(a)
	if len(src) == 0 {
		return v, nil
	}
	buf, err := v.allocate(len(src))
	if err != nil {
		return nil, fmt.Errorf("vector: new from slice: %w", err)
	}
	v.buf, v.n = buf, v.constructFrom(buf, src)
	return v, nil
}

// Collect drains seq into a new vector sized exactly to the number of values.
func Collect[T any](a Allocator[T], seq iter.Seq[T]) (*Vector[T], error) {
	return NewFromSlice(a, slices.Collect(seq))
}

// Clone returns a deep copy sharing only the allocator.
// The copy's capacity equals v.Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return NewFromSlice(v.alloc, v.Slice())
}

// Release destroys every live element and returns the storage to the
// allocator. The vector is left empty and may be reused. Calling Release
// again is a no-op.
func (v *Vector[T]) Release() {
	if v.buf == nil {
		return
	}
	v.retire(v.buf, v.n)
	v.buf, v.n = nil, 0
}

// At returns the element at index i. It performs only Go's bounds check and
// panics if i is not in [0, Len()). Use Get for a checked access.
func (v *Vector[T]) At(i int) T {
	return v.buf[:v.n][i]
}

// Get returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, fmt.Errorf("vector: get %d of %d: %w", i, v.n, ErrOutOfRange)
	}
	return v.buf[i], nil
}

// Set overwrites the live element at index i. Panics like At.
func (v *Vector[T]) Set(i int, value T) {
	v.buf[:v.n][i] = value
}

// Ref returns the address of the live element at index i. The pointer is
// only valid until the next operation that reallocates. Panics like At.
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[:v.n][i]
}

// Front returns the first element. Panics on an empty vector.
func (v *Vector[T]) Front() T {
	if v.n == 0 {
		panic(fmt.Errorf("vector: Front: %w", ErrEmpty))
	}
	return v.buf[0]
}

// Back returns the last element. Panics on an empty vector.
func (v *Vector[T]) Back() T {
	if v.n == 0 {
		panic(fmt.Errorf("vector: Back: %w", ErrEmpty))
	}
	return v.buf[v.n-1]
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of allocated slots, live or not.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// MaxSize returns the allocator's upper bound on element count.
func (v *Vector[T]) MaxSize() int { return v.allocator().MaxSize() }

// Slice returns the live elements. Its capacity is clipped to Len() so an
// append on it never writes into the vector's raw slots. The slice aliases
// the vector until the next reallocation.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.n:v.n]
}

// Swap exchanges the contents, capacity and allocator of v and o in O(1).
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.alloc, o.alloc = o.alloc, v.alloc
	v.buf, o.buf = o.buf, v.buf
	v.n, o.n = o.n, v.n
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}

// allocate asks the allocator for n slots and checks it kept the contract.
func (v *Vector[T]) allocate(n int) ([]T, error) {
	al := v.allocator()
	if n > al.MaxSize() {
		return nil, fmt.Errorf("%d slots: %w", n, ErrTooLarge)
	}
	buf, err := al.Allocate(n)
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		al.Deallocate(buf)
		return nil, fmt.Errorf("allocator returned %d of %d slots: %w", len(buf), n, ErrAllocFailed)
	}
	return buf[:n:n], nil
}

// constructFrom copy-constructs src into the raw slots at the front of dst
// and returns the number constructed.
func (v *Vector[T]) constructFrom(dst, src []T) int {
	al := v.allocator()
	for i := range src {
		al.Construct(&dst[i], src[i])
	}
	return len(src)
}

// retire destroys the first live elements of buf and deallocates it.
func (v *Vector[T]) retire(buf []T, live int) {
	al := v.allocator()
	for i := range live {
		al.Destroy(&buf[i])
	}
	al.Deallocate(buf)
}
