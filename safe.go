package vector

import "sync"

// SafeArenaAllocator is a mutex-protected wrapper around ArenaAllocator so
// that one arena can back vectors owned by different goroutines. Each vector
// itself still needs external synchronization.
type SafeArenaAllocator[T any] struct {
	mu sync.Mutex
	a  *ArenaAllocator[T]
}

// NewSafeArenaAllocator creates a thread-safe arena allocator with the
// specified chunk size. If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArenaAllocator[T any](chunkSize int) *SafeArenaAllocator[T] {
	return &SafeArenaAllocator[T]{a: NewArenaAllocator[T](chunkSize)}
}

// Allocate thread-safely returns n slots from the arena.
func (s *SafeArenaAllocator[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate thread-safely hands p back to the arena.
func (s *SafeArenaAllocator[T]) Deallocate(p []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(p)
}

// Construct touches only the caller's slot and takes no lock.
func (s *SafeArenaAllocator[T]) Construct(p *T, value T) {
	s.a.Construct(p, value)
}

// Destroy touches only the caller's slot and takes no lock.
func (s *SafeArenaAllocator[T]) Destroy(p *T) {
	s.a.Destroy(p)
}

// MaxSize returns the largest slot count a single Allocate can satisfy.
func (s *SafeArenaAllocator[T]) MaxSize() int {
	return s.a.MaxSize()
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArenaAllocator[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks.
func (s *SafeArenaAllocator[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
