// Package vector implements a growable array whose storage is supplied by a
// pluggable allocator.
//
// # Overview
//
// A Vector keeps two things apart: the slots it has allocated and the
// elements that are live in them. The first Len() slots hold constructed
// elements; the remaining Cap()-Len() slots are raw storage that owes
// nothing. Every slot is obtained, constructed into, destroyed and handed
// back through an Allocator, so callers decide where memory comes from and
// can observe exactly what happens to it.
//
// # Basic Usage
//
//	var v vector.Vector[int] // zero value uses the Go heap
//	defer v.Release()        // destroy elements, return storage
//
//	_ = v.PushBack(1)
//	_ = v.Insert(0, 2, 7)    // two copies of 7 before index 0
//	_ = v.Reserve(64)        // capacity only, Len unchanged
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Growth
//
// PushBack constructs into spare capacity without allocating. When capacity
// runs out the vector moves to a region of max(1, 2*Len()) slots, which keeps
// the total copy cost of n appends at O(n). Reserve(n) moves to exactly n
// slots. Insert grows to max(Len()+count, 2*Len()) when it must reallocate.
//
// Reallocation is all-or-nothing: the new region is allocated and filled
// before the old one is destroyed and released. If the allocator fails, the
// operation returns an error and the vector is unchanged.
//
// # Access
//
// At, Set, Ref, Front and Back are the fast accessors. They do not return
// errors; misuse (an index outside [0, Len()), Front on an empty vector)
// panics rather than reading raw slots. Get is the checked accessor and
// returns ErrOutOfRange.
//
// Any pointer from Ref, slice from Slice or sequence being ranged over is
// invalidated by an operation that reallocates (PushBack, Append, Insert,
// InsertOne or Reserve growing the storage). Read through the vector again
// afterwards.
//
// # Allocators
//
//   - HeapAllocator: stateless, backed by make (the default)
//   - ArenaAllocator: chunked bump allocator with Reset/Release bulk cleanup
//   - SafeArenaAllocator: mutex-protected arena for vectors on many goroutines
//   - CountingAllocator: counts allocations, constructions and destructions
//   - LimitAllocator: fails requests beyond a slot budget
//   - TracingAllocator: logs storage traffic through logrus
//
// Allocators are values passed to each vector; one allocator may back many
// vectors.
//
// # Thread Safety
//
// A Vector is not safe for concurrent mutation. Concurrent reads are safe
// while no goroutine mutates. An allocator shared between vectors on
// different goroutines must itself be safe for concurrent use.
package vector
