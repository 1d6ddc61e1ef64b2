package vector

import (
	"fmt"
	"sync/atomic"
)

// LimitAllocator caps the number of slots outstanding from the wrapped
// allocator. A request that would exceed the budget fails with
// ErrAllocFailed and reserves nothing. Safe for concurrent use when the
// wrapped allocator is.
type LimitAllocator[T any] struct {
	inner Allocator[T]
	limit int64
	used  atomic.Int64
}

// NewLimitAllocator wraps inner with a budget of limit slots. A nil inner
// means HeapAllocator; a negative limit is treated as zero.
func NewLimitAllocator[T any](inner Allocator[T], limit int) *LimitAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &LimitAllocator[T]{inner: inner, limit: int64(max(limit, 0))}
}

func (l *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return l.inner.Allocate(n)
	}
	for {
		used := l.used.Load()
		if int64(n) > l.limit-used {
			return nil, fmt.Errorf("%d slots with %d of %d in use: %w", n, used, l.limit, ErrAllocFailed)
		}
		if l.used.CompareAndSwap(used, used+int64(n)) {
			break
		}
	}
	p, err := l.inner.Allocate(n)
	if err != nil {
		l.used.Add(-int64(n))
		return nil, err
	}
	return p, nil
}

func (l *LimitAllocator[T]) Deallocate(p []T) {
	l.inner.Deallocate(p)
	l.used.Add(-int64(len(p)))
}

func (l *LimitAllocator[T]) Construct(p *T, value T) { l.inner.Construct(p, value) }

func (l *LimitAllocator[T]) Destroy(p *T) { l.inner.Destroy(p) }

// MaxSize returns the smaller of the budget and the wrapped allocator's bound.
func (l *LimitAllocator[T]) MaxSize() int {
	return int(min(l.limit, int64(l.inner.MaxSize())))
}

// InUse returns the number of slots currently charged against the budget.
func (l *LimitAllocator[T]) InUse() int {
	return int(l.used.Load())
}
