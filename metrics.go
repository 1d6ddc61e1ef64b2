package vector

// SizeInUse returns the number of slots currently handed out by the arena.
func (a *ArenaAllocator[T]) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *ArenaAllocator[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (a *ArenaAllocator[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *ArenaAllocator[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the configured chunk size in bytes.
func (a *ArenaAllocator[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *ArenaAllocator[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		ChunkSlots:  a.chunkSlots,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena allocator.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total slots across chunks
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Configured chunk size in bytes
	ChunkSlots  int     // Slots per regular chunk
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArenaAllocator[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SizeInUse thread-safely returns the number of slots handed out.
func (s *SafeArenaAllocator[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}
