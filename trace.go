package vector

import (
	"reflect"

	"github.com/sirupsen/logrus"
)

// TracingAllocator logs the storage traffic of the wrapped allocator:
// allocations and deallocations at debug level, failed allocations at warn.
// Construct and Destroy are passed through unlogged.
type TracingAllocator[T any] struct {
	inner Allocator[T]
	log   logrus.FieldLogger
}

// NewTracingAllocator wraps inner. A nil inner means HeapAllocator and a nil
// logger means logrus.StandardLogger().
func NewTracingAllocator[T any](inner Allocator[T], logger logrus.FieldLogger) *TracingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TracingAllocator[T]{
		inner: inner,
		log: logger.WithFields(logrus.Fields{
			"prefix": "vector",
			"elem":   reflect.TypeFor[T]().String(),
		}),
	}
}

func (t *TracingAllocator[T]) Allocate(n int) ([]T, error) {
	p, err := t.inner.Allocate(n)
	if err != nil {
		t.log.WithFields(logrus.Fields{
			"op":    "allocate",
			"slots": n,
		}).WithError(err).Warn("Allocation failed")
		return nil, err
	}
	t.log.WithFields(logrus.Fields{
		"op":    "allocate",
		"slots": n,
	}).Debug("Allocated storage")
	return p, nil
}

func (t *TracingAllocator[T]) Deallocate(p []T) {
	t.log.WithFields(logrus.Fields{
		"op":    "deallocate",
		"slots": len(p),
	}).Debug("Released storage")
	t.inner.Deallocate(p)
}

func (t *TracingAllocator[T]) Construct(p *T, value T) { t.inner.Construct(p, value) }

func (t *TracingAllocator[T]) Destroy(p *T) { t.inner.Destroy(p) }

func (t *TracingAllocator[T]) MaxSize() int { return t.inner.MaxSize() }
