package vector

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestHeapAllocatorAllocate(t *testing.T) {
	var h HeapAllocator[testStruct]

	p, err := h.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate(10) error = %v", err)
	}
	if len(p) != 10 || cap(p) != 10 {
		t.Errorf("Allocate(10) len/cap = %d/%d, want 10/10", len(p), cap(p))
	}
	for i, s := range p {
		if s != (testStruct{}) {
			t.Errorf("slot %d not zeroed: %+v", i, s)
		}
	}

	if p, err := h.Allocate(0); p != nil || err != nil {
		t.Errorf("Allocate(0) = %v, %v, want nil, nil", p, err)
	}
	if _, err := h.Allocate(-1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Allocate(-1) error = %v, want ErrNegativeCount", err)
	}
	if _, err := h.Allocate(h.MaxSize() + 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Allocate(MaxSize+1) error = %v, want ErrTooLarge", err)
	}
}

func TestHeapAllocatorConstructDestroy(t *testing.T) {
	var h HeapAllocator[*testStruct]
	p, _ := h.Allocate(1)

	s := &testStruct{a: 100}
	h.Construct(&p[0], s)
	if p[0] != s {
		t.Error("Construct did not store the value")
	}
	h.Destroy(&p[0])
	if p[0] != nil {
		t.Error("Destroy should drop the reference")
	}
	h.Deallocate(p)
}

func TestMaxSlots(t *testing.T) {
	size := int(unsafe.Sizeof(testStruct{}))
	got := HeapAllocator[testStruct]{}.MaxSize()
	if want := int(maxHeapBytes / uint64(size)); got != want {
		t.Errorf("MaxSize = %d, want %d", got, want)
	}
	if got := (HeapAllocator[struct{}]{}).MaxSize(); got != math.MaxInt {
		t.Errorf("MaxSize for zero-sized T = %d, want MaxInt", got)
	}
	if (HeapAllocator[byte]{}).MaxSize() <= (HeapAllocator[int64]{}).MaxSize() {
		t.Error("smaller elements should allow more slots")
	}
}
