package bounded

import (
	"iter"
	"slices"
)

// Sequence is the capability shared by every bounded wrapper.
//
// A minimal implementation only provides the two primitives below; [Iter]
// and [IntoIter] are built on top of them, so a new wrapper type gets
// iteration without further code.
type Sequence[T any] interface {
	// AsSlice returns a read-only view of the elements in insertion order.
	// The view aliases the wrapper's storage: callers must not modify it.
	AsSlice() []T

	// IntoSlice hands every element to the caller in insertion order and
	// leaves the wrapper empty. The wrapper must not be used afterwards.
	IntoSlice() []T
}

var (
	_ Sequence[int] = (*AtLeast[int, One])(nil)
	_ Sequence[int] = (*AtMost[int, Three])(nil)
)

// Iter returns an iterator over the elements of s in insertion order.
// It reads through [Sequence.AsSlice] and can be ranged over any number of
// times.
func Iter[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.AsSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// IntoIter consumes s and returns a one-shot iterator over its elements.
// The elements are taken from s immediately; the first range over the
// result yields each of them once and later ranges yield nothing.
func IntoIter[T any](s Sequence[T]) iter.Seq[T] {
	items := s.IntoSlice()
	return func(yield func(T) bool) {
		rest := items
		items = nil
		for _, v := range rest {
			if !yield(v) {
				return
			}
		}
	}
}

// elems is the storage embedded by every wrapper. Its methods are promoted
// onto [AtLeast] and [AtMost].
type elems[T any] struct {
	items []T
}

// AsSlice implements [Sequence]. The returned slice is clipped so an append
// by the caller cannot write into the wrapper's storage.
func (e *elems[T]) AsSlice() []T { return slices.Clip(e.items) }

// IntoSlice implements [Sequence].
func (e *elems[T]) IntoSlice() []T {
	out := e.items
	e.items = nil
	return out
}

// Iter is the method form of the package-level [Iter].
func (e *elems[T]) Iter() iter.Seq[T] { return Iter[T](e) }

// IntoIter is the method form of the package-level [IntoIter].
func (e *elems[T]) IntoIter() iter.Seq[T] { return IntoIter[T](e) }

// All returns an iterator over index/element pairs.
func (e *elems[T]) All() iter.Seq2[int, T] { return slices.All(e.items) }

// Len returns the number of elements.
func (e *elems[T]) Len() int { return len(e.items) }

// ToSlice returns a copy of the elements that the caller may modify freely.
func (e *elems[T]) ToSlice() []T { return slices.Clone(e.items) }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (e *elems[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(e.items) {
		return zero, false
	}
	return e.items[index], true
}
