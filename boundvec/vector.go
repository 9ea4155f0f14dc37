// Package boundvec implements a bounded, contiguous vector whose capacity
// is fixed at construction and whose storage never moves or grows.
//
// The zero Vector is an empty vector with capacity 0. Storage can come
// from a single upfront allocation (New) or from a caller-owned slice
// (Wrap), which places the element storage wherever the caller put it:
// on their stack, inside their struct, in an arena. After construction no
// operation allocates.
//
// Slots past the current length always hold the zero value of T. Every
// shrinking operation clears the slots it vacates so the backing array
// keeps no element values alive.
package boundvec

import "errors"

// ErrCapacity is returned by the Try* methods when an operation would
// push the length past the fixed capacity.
var ErrCapacity = errors.New("boundvec: capacity exceeded")

// Vector is a fixed-capacity contiguous sequence. The live elements
// occupy the first Len() slots of the backing storage, in insertion
// order.
//
// Methods that take indices or grow the vector treat violations as
// programming errors and panic; the Try* variants report ErrCapacity
// instead. Vectors are not safe for concurrent mutation.
type Vector[T any] struct {
	data []T // full-capacity backing, live prefix is data[:size]
	size int
}

// New returns an empty vector with the given fixed capacity, backed by
// one upfront allocation.
func New[T any](capacity int) Vector[T] {
	if capacity < 0 {
		panic("boundvec: negative capacity")
	}
	return Vector[T]{data: make([]T, capacity)}
}

// NewSize returns a vector holding n zero-value elements.
func NewSize[T any](capacity, n int) Vector[T] {
	v := New[T](capacity)
	v.Resize(n)
	return v
}

// NewFill returns a vector holding n copies of fill.
func NewFill[T any](capacity, n int, fill T) Vector[T] {
	v := New[T](capacity)
	v.ResizeFill(n, fill)
	return v
}

// Of returns a vector initialized with elems. len(elems) must not exceed
// capacity.
func Of[T any](capacity int, elems ...T) Vector[T] {
	if len(elems) > capacity {
		panic("boundvec: capacity exceeded")
	}
	v := New[T](capacity)
	v.size = copy(v.data, elems)
	return v
}

// Wrap adopts storage as the vector's backing. The vector starts empty
// with capacity len(storage) and performs no allocation; the caller must
// not touch storage for as long as the vector is in use. The slice is
// cleared so the zero-slot invariant holds from the start.
func Wrap[T any](storage []T) Vector[T] {
	clear(storage)
	return Vector[T]{data: storage[:len(storage):len(storage)]}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at index i. i must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.size {
		panic("boundvec: index out of range")
	}
	return v.data[i]
}

// Set overwrites the element at index i. i must be in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.size {
		panic("boundvec: index out of range")
	}
	v.data[i] = x
}

// Ptr returns a pointer to the element at index i, valid until the next
// size-changing mutation.
func (v *Vector[T]) Ptr(i int) *T {
	if i < 0 || i >= v.size {
		panic("boundvec: index out of range")
	}
	return &v.data[i]
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic("boundvec: front of empty vector")
	}
	return v.data[0]
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic("boundvec: back of empty vector")
	}
	return v.data[v.size-1]
}

// Slice returns the live prefix as a slice sharing the vector's storage.
// The slice is capped at the current length, so appending to it cannot
// touch the vector. It is invalidated by any size-changing mutation.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.size:v.size]
}

// Push appends x. Panics if the vector is full.
func (v *Vector[T]) Push(x T) {
	if v.size == len(v.data) {
		panic("boundvec: capacity exceeded")
	}
	v.data[v.size] = x
	v.size++
}

// TryPush appends x, reporting ErrCapacity when the vector is full.
func (v *Vector[T]) TryPush(x T) error {
	if v.size == len(v.data) {
		return ErrCapacity
	}
	v.data[v.size] = x
	v.size++
	return nil
}

// Pop removes and returns the last element, clearing its slot. The
// vector must not be empty.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("boundvec: pop of empty vector")
	}
	v.size--
	x := v.data[v.size]
	var zero T
	v.data[v.size] = zero
	return x
}

// TryPop removes and returns the last element; ok is false on an empty
// vector.
func (v *Vector[T]) TryPop() (x T, ok bool) {
	if v.size == 0 {
		return x, false
	}
	return v.Pop(), true
}

// Resize sets the length to n. Shrinking clears the vacated slots;
// growing exposes zero-value elements. n must not exceed the capacity.
func (v *Vector[T]) Resize(n int) {
	if err := v.TryResize(n); err != nil {
		panic("boundvec: capacity exceeded")
	}
}

// ResizeFill sets the length to n, filling new slots with fill when
// growing. n must not exceed the capacity.
func (v *Vector[T]) ResizeFill(n int, fill T) {
	if err := v.TryResizeFill(n, fill); err != nil {
		panic("boundvec: capacity exceeded")
	}
}

// TryResize is Resize with ErrCapacity instead of a panic.
func (v *Vector[T]) TryResize(n int) error {
	if n < 0 {
		panic("boundvec: negative size")
	}
	if n <= v.size {
		v.shorten(n)
		return nil
	}
	if n > len(v.data) {
		return ErrCapacity
	}
	// vacated slots are kept zeroed, so the grown range already holds
	// zero values
	v.size = n
	return nil
}

// TryResizeFill is ResizeFill with ErrCapacity instead of a panic.
func (v *Vector[T]) TryResizeFill(n int, fill T) error {
	if n < 0 {
		panic("boundvec: negative size")
	}
	if n <= v.size {
		v.shorten(n)
		return nil
	}
	if n > len(v.data) {
		return ErrCapacity
	}
	for v.size < n {
		v.data[v.size] = fill
		v.size++
	}
	return nil
}

// Erase removes the element at index i, shifting later elements down.
func (v *Vector[T]) Erase(i int) {
	v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [i, j), shifting later elements
// down and clearing the vacated tail. Requires 0 <= i <= j <= Len().
func (v *Vector[T]) EraseRange(i, j int) {
	if i < 0 || j < i || j > v.size {
		panic("boundvec: erase range out of range")
	}
	n := copy(v.data[i:v.size], v.data[j:v.size])
	v.shorten(i + n)
}

// Clear removes all elements and clears their slots. Capacity is
// unchanged.
func (v *Vector[T]) Clear() {
	v.shorten(0)
}

// Swap exchanges the contents of v and o elementwise: common prefix by
// element swaps, then the longer side's tail is pushed onto the shorter
// side and cleared from the longer. Cost is O(max(Len)). Panics if the
// shorter side's capacity cannot hold the longer side's length.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	small, large := v, o
	if small.size > large.size {
		small, large = large, small
	}
	for i := range small.size {
		small.data[i], large.data[i] = large.data[i], small.data[i]
	}
	n := small.size
	for i := n; i < large.size; i++ {
		small.Push(large.data[i])
	}
	large.shorten(n)
}

// Clone returns a vector with the same capacity and elements backed by
// fresh storage.
func (v *Vector[T]) Clone() Vector[T] {
	out := New[T](len(v.data))
	out.size = copy(out.data, v.data[:v.size])
	return out
}

// CopyFrom replaces v's contents with a copy of src's elements, keeping
// v's backing in place. Panics if src's length exceeds v's capacity.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	if src.size > len(v.data) {
		panic("boundvec: capacity exceeded")
	}
	copy(v.data, src.data[:src.size])
	if src.size < v.size {
		clear(v.data[src.size:v.size])
	}
	v.size = src.size
}

// MoveFrom replaces v's contents with src's elements and empties src,
// keeping both backings in place. Panics if src's length exceeds v's
// capacity.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.CopyFrom(src)
	src.shorten(0)
}

// Take transfers src's backing storage to the returned vector and leaves
// src empty with capacity 0. Downstream code may rely on a taken-from
// vector observing length 0.
func Take[T any](src *Vector[T]) Vector[T] {
	out := Vector[T]{data: src.data, size: src.size}
	src.data, src.size = nil, 0
	return out
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// shorten drops the length to n and clears the vacated slots so the
// backing array keeps nothing alive past the live prefix.
func (v *Vector[T]) shorten(n int) {
	clear(v.data[n:v.size])
	v.size = n
}
