package vector

import "fmt"

// PushBack appends value. When spare capacity exists the value is
// constructed in place with no allocation. Otherwise the storage is
// reallocated to max(1, 2*Len()) slots; if that allocation fails the vector
// is left exactly as it was.
func (v *Vector[T]) PushBack(value T) error {
	if v.n < len(v.buf) {
		v.allocator().Construct(&v.buf[v.n], value)
		v.n++
		return nil
	}
	if err := v.insertRealloc(v.n, 1, value); err != nil {
		return fmt.Errorf("vector: push back: %w", err)
	}
	return nil
}

// Append appends values in order. Storage is grown at most once, so either
// all values are appended or, on allocation failure, none are.
func (v *Vector[T]) Append(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if spare := len(v.buf) - v.n; spare >= len(values) {
		v.n += v.constructFrom(v.buf[v.n:], values)
		return nil
	}
	newCap, err := v.growCap(len(values))
	if err != nil {
		return fmt.Errorf("vector: append %d: %w", len(values), err)
	}
	buf, err := v.allocate(newCap)
	if err != nil {
		return fmt.Errorf("vector: append %d: %w", len(values), err)
	}
	// values may alias the old region, so it is retired last.
	v.constructFrom(buf, v.buf[:v.n])
	v.constructFrom(buf[v.n:], values)
	v.adopt(buf, v.n+len(values))
	return nil
}

// InsertOne inserts value before index pos.
func (v *Vector[T]) InsertOne(pos int, value T) error {
	return v.Insert(pos, 1, value)
}

// Insert inserts count copies of value before index pos, shifting the
// elements at and after pos up by count. pos may equal Len() to append.
// A count of zero touches nothing. If the storage must be reallocated and
// allocation fails, the vector is left exactly as it was.
func (v *Vector[T]) Insert(pos, count int, value T) error {
	switch {
	case pos < 0 || pos > v.n:
		return fmt.Errorf("vector: insert at %d of %d: %w", pos, v.n, ErrOutOfRange)
	case count < 0:
		return fmt.Errorf("vector: insert %d: %w", count, ErrNegativeCount)
	case count == 0:
		return nil
	}

	if len(v.buf)-v.n < count {
		if err := v.insertRealloc(pos, count, value); err != nil {
			return fmt.Errorf("vector: insert %d at %d: %w", count, pos, err)
		}
		return nil
	}

	al := v.allocator()
	end := v.n
	after := end - pos
	if after > count {
		// The last count elements move into raw slots past end.
		for i := end - count; i < end; i++ {
			al.Construct(&v.buf[i+count], v.buf[i])
		}
		// The rest shift within live slots, tail first.
		for i := end - count - 1; i >= pos; i-- {
			v.buf[i+count] = v.buf[i]
		}
		for i := pos; i < pos+count; i++ {
			v.buf[i] = value
		}
	} else {
		// The gap reaches past end: its upper part is raw.
		for i := end; i < pos+count; i++ {
			al.Construct(&v.buf[i], value)
		}
		for i := end - 1; i >= pos; i-- {
			al.Construct(&v.buf[i+count], v.buf[i])
		}
		for i := pos; i < end; i++ {
			v.buf[i] = value
		}
	}
	v.n += count
	return nil
}

// Reserve ensures Cap() >= n. If capacity already suffices it does nothing
// and makes no allocator calls. Otherwise the elements move into exactly n
// slots; Len() is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if err := v.relocate(n); err != nil {
		return fmt.Errorf("vector: reserve %d: %w", n, err)
	}
	return nil
}

// growCap returns the capacity to reallocate to when extra more elements
// must fit: at least Len()+extra, otherwise double the current size.
func (v *Vector[T]) growCap(extra int) (int, error) {
	limit := v.MaxSize()
	if extra > limit-v.n {
		return 0, fmt.Errorf("%d more than %d: %w", extra, v.n, ErrTooLarge)
	}
	need := v.n + extra
	doubled := v.n
	if doubled <= limit-v.n {
		doubled += v.n
	} else {
		doubled = limit
	}
	return max(need, doubled, 1), nil
}

// relocate moves the live elements into a fresh region of newCap slots.
// The old region is retired only after the new one has been obtained.
func (v *Vector[T]) relocate(newCap int) error {
	buf, err := v.allocate(newCap)
	if err != nil {
		return err
	}
	v.constructFrom(buf, v.buf[:v.n])
	v.adopt(buf, v.n)
	return nil
}

// insertRealloc builds a new region holding the prefix, count copies of
// value and the suffix, then swaps it in.
func (v *Vector[T]) insertRealloc(pos, count int, value T) error {
	newCap, err := v.growCap(count)
	if err != nil {
		return err
	}
	buf, err := v.allocate(newCap)
	if err != nil {
		return err
	}
	al := v.allocator()
	v.constructFrom(buf, v.buf[:pos])
	for i := pos; i < pos+count; i++ {
		al.Construct(&buf[i], value)
	}
	v.constructFrom(buf[pos+count:], v.buf[pos:v.n])
	v.adopt(buf, v.n+count)
	return nil
}

// adopt retires the current region and takes over buf with live elements.
func (v *Vector[T]) adopt(buf []T, live int) {
	if v.buf != nil {
		v.retire(v.buf, v.n)
	}
	v.buf, v.n = buf, live
}
