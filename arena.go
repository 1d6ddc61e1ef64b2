package vector

import "fmt"

// DefaultChunkSize is the default chunk size for new arena allocators (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is one block of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // slots handed out from buf
}

// ArenaAllocator is a chunked bump allocator of T slots. Deallocation is
// deferred to Reset or Release, except that deallocating the most recent
// allocation gives its slots back at once, so scratch vectors released in
// LIFO order reuse the same slots. Not goroutine-safe; use
// SafeArenaAllocator for concurrent access.
type ArenaAllocator[T any] struct {
	chunks     []chunk[T]
	chunkSize  int // bytes, as configured
	chunkSlots int // slots per regular chunk
	cur        int // index of the chunk allocations come from
	released   bool
}

// NewArenaAllocator creates an arena whose chunks span chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used. Each chunk holds at least one slot.
func NewArenaAllocator[T any](chunkSize int) *ArenaAllocator[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	slots := chunkSize
	if size := int(elemSize[T]()); size > 0 {
		slots = max(chunkSize/size, 1)
	}
	a := &ArenaAllocator[T]{chunkSize: chunkSize, chunkSlots: slots}
	a.grow(slots)
	return a
}

// Allocate returns n zeroed slots from the arena. Returns nil if n == 0.
func (a *ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	switch {
	case a.released:
		return nil, ErrReleased
	case n < 0:
		return nil, fmt.Errorf("arena allocate %d slots: %w", n, ErrNegativeCount)
	case n == 0:
		return nil, nil
	case n > maxSlots[T]():
		return nil, fmt.Errorf("arena allocate %d slots: %w", n, ErrTooLarge)
	}

	// Fast path: current chunk has room
	if c := &a.chunks[a.cur]; n <= c.free() {
		return c.take(n), nil
	}

	// Chunks past the current one are only non-empty before a Reset.
	for i := a.cur + 1; i < len(a.chunks); i++ {
		if n <= a.chunks[i].free() {
			a.cur = i
			return a.chunks[i].take(n), nil
		}
	}

	// Slow path: need new chunk
	a.grow(n)
	return a.chunks[a.cur].take(n), nil
}

// Deallocate returns p to the arena when it is the most recent allocation
// in the current chunk. Other regions are reclaimed by Reset.
func (a *ArenaAllocator[T]) Deallocate(p []T) {
	if a.released || len(p) == 0 {
		return
	}
	c := &a.chunks[a.cur]
	if len(p) > c.offset {
		return
	}
	top := c.offset - len(p)
	if &c.buf[top] != &p[0] {
		return
	}
	clear(c.buf[top:c.offset])
	c.offset = top
}

// Construct copies value into the raw slot p.
func (a *ArenaAllocator[T]) Construct(p *T, value T) {
	*p = value
}

// Destroy zeroes the slot.
func (a *ArenaAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// MaxSize returns the largest slot count a single Allocate can satisfy.
func (a *ArenaAllocator[T]) MaxSize() int {
	return maxSlots[T]()
}

// Reset rewinds every chunk for reuse. Regions handed out earlier must no
// longer be used; vectors drawing from the arena should be released first.
func (a *ArenaAllocator[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	a.cur = 0
}

// Release drops all chunks. Later allocations fail with ErrReleased and
// Reset panics.
func (a *ArenaAllocator[T]) Release() {
	a.chunks = nil
	a.cur = 0
	a.released = true
}

// grow appends a chunk of at least min slots and makes it current.
func (a *ArenaAllocator[T]) grow(min int) {
	size := max(a.chunkSlots, min)
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.cur = len(a.chunks) - 1
}

func (a *ArenaAllocator[T]) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}

func (c *chunk[T]) free() int {
	return len(c.buf) - c.offset
}

// take hands out the next n slots, capped so appends cannot spill over.
func (c *chunk[T]) take(n int) []T {
	start := c.offset
	c.offset += n
	return c.buf[start:c.offset:c.offset]
}
