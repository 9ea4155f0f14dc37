package boundvec

import "iter"

// All returns an index/value iterator over the live prefix, front to
// back. Size-changing mutation during iteration invalidates it.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live prefix, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an index/value iterator over the live prefix, back to
// front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// FromSeq returns a vector of the given capacity filled from seq.
// Panics if seq yields more than capacity elements.
func FromSeq[T any](capacity int, seq iter.Seq[T]) Vector[T] {
	v := New[T](capacity)
	for x := range seq {
		v.Push(x)
	}
	return v
}
