package vector

import "iter"

// All yields index/element pairs front to back. The sequence reads the
// vector when iterated, so it can be ranged over again after mutation, but
// mutating the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.buf[:v.n]
		for i, x := range live {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.buf[:v.n]
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.buf[:v.n] {
			if !yield(x) {
				return
			}
		}
	}
}
