package vector

import "errors"

var (
	// ErrOutOfRange indicates an index or position outside the live elements.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates an element access on an empty vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrNegativeCount indicates a negative element or slot count.
	ErrNegativeCount = errors.New("vector: negative count")

	// ErrTooLarge indicates a request above the allocator's MaxSize.
	ErrTooLarge = errors.New("vector: request exceeds max size")

	// ErrAllocFailed indicates that the allocator could not supply storage.
	ErrAllocFailed = errors.New("vector: allocation failed")

	// ErrReleased indicates use of an arena allocator after Release.
	ErrReleased = errors.New("vector: use after Release()")
)
