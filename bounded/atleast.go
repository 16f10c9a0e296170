package bounded

import "fmt"

// AtLeast is a sequence of T that holds at least N.Count() elements.
//
// Values are created with the NewOne…NewFour constructors, which cannot
// fail, or validated with [TryFrom] / [Of]. The zero value holds no
// elements and does not satisfy the bound; do not construct AtLeast
// directly.
//
// An AtLeast is never modified after construction. [Sequence.IntoSlice] and
// IntoIter move the elements out and leave the wrapper empty.
type AtLeast[T any, N Size] struct {
	elems[T]
}

// Aliases for the supported at-least classes.
type (
	AtLeastOne[T any]   = AtLeast[T, One]
	AtLeastTwo[T any]   = AtLeast[T, Two]
	AtLeastThree[T any] = AtLeast[T, Three]
	AtLeastFour[T any]  = AtLeast[T, Four]
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewOne creates an AtLeastOne holding exactly a.
func NewOne[T any](a T) *AtLeastOne[T] { return NewOneAnd(a, nil) }

// NewOneAnd creates an AtLeastOne holding a followed by every element of
// extra. extra is copied.
func NewOneAnd[T any](a T, extra []T) *AtLeastOne[T] {
	return required[One](extra, a)
}

// NewTwo creates an AtLeastTwo holding exactly a, b.
func NewTwo[T any](a, b T) *AtLeastTwo[T] { return NewTwoAnd(a, b, nil) }

// NewTwoAnd creates an AtLeastTwo holding a, b followed by every element of
// extra. extra is copied.
func NewTwoAnd[T any](a, b T, extra []T) *AtLeastTwo[T] {
	return required[Two](extra, a, b)
}

// NewThree creates an AtLeastThree holding exactly a, b, c.
func NewThree[T any](a, b, c T) *AtLeastThree[T] { return NewThreeAnd(a, b, c, nil) }

// NewThreeAnd creates an AtLeastThree holding a, b, c followed by every
// element of extra. extra is copied.
func NewThreeAnd[T any](a, b, c T, extra []T) *AtLeastThree[T] {
	return required[Three](extra, a, b, c)
}

// NewFour creates an AtLeastFour holding exactly a, b, c, d.
func NewFour[T any](a, b, c, d T) *AtLeastFour[T] { return NewFourAnd(a, b, c, d, nil) }

// NewFourAnd creates an AtLeastFour holding a, b, c, d followed by every
// element of extra. extra is copied.
func NewFourAnd[T any](a, b, c, d T, extra []T) *AtLeastFour[T] {
	return required[Four](extra, a, b, c, d)
}

// required builds the backing slice for the infallible constructors. The
// callers pass exactly N.Count() required elements.
func required[N Size, T any](extra []T, head ...T) *AtLeast[T, N] {
	items := make([]T, 0, len(head)+len(extra))
	items = append(items, head...)
	items = append(items, extra...)
	return &AtLeast[T, N]{elems: elems[T]{items: items}}
}

// TryFrom validates that v holds at least N.Count() elements and wraps it.
//
// On success the returned sequence takes ownership of v without copying;
// the caller must not modify v afterwards. A short slice yields a
// [*LengthError] wrapping [ErrTooFew]:
//
//	hosts, err := bounded.TryFrom[bounded.One](cfg.Hosts)
//	if err != nil {
//	    return fmt.Errorf("config: %w", err)
//	}
func TryFrom[N Size, T any](v []T) (*AtLeast[T, N], error) {
	if err := checkMin[N](len(v)); err != nil {
		return nil, err
	}
	return &AtLeast[T, N]{elems: elems[T]{items: v}}, nil
}

func checkMin[N Size](n int) error {
	if lo := countOf[N](); n < lo {
		return &LengthError{Bound: "AtLeast" + nameOf[N](), Limit: lo, Len: n, Err: ErrTooFew}
	}
	return nil
}

// Validate reports whether s satisfies its bound, returning a
// [*LengthError] wrapping [ErrTooFew] if not. Values from the constructors
// always pass; a zero value, a consumed sequence, or a struct field whose
// key was null or absent in decoded JSON/YAML does not.
//
//	if err := cfg.Hosts.Validate(); err != nil {
//	    return fmt.Errorf("config: hosts: %w", err)
//	}
func (s *AtLeast[T, N]) Validate() error { return checkMin[N](len(s.items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element. The bound guarantees it exists; First
// panics on a value that fails [AtLeast.Validate].
func (s *AtLeast[T, N]) First() T { return s.items[0] }

// Last returns the last element. Like First it panics on a value that
// fails [AtLeast.Validate].
func (s *AtLeast[T, N]) Last() T { return s.items[len(s.items)-1] }

// String returns the class name followed by the elements, e.g.
// "AtLeastTwo[1 2 3]". It implements [fmt.Stringer].
func (s *AtLeast[T, N]) String() string {
	return fmt.Sprintf("AtLeast%s%v", nameOf[N](), s.items)
}

// Only narrows s to its sole element. It returns an error wrapping
// [ErrNotSingular] when s holds more than one element.
//
// Only is a function rather than a method because it applies to
// [AtLeastOne] alone.
func Only[T any](s *AtLeastOne[T]) (T, error) {
	if n := s.Len(); n != 1 {
		var zero T
		return zero, fmt.Errorf("%w: got %d", ErrNotSingular, n)
	}
	return s.items[0], nil
}

// MustOnly is like [Only] but panics if s does not hold exactly one element.
// Use it only where singularity is already guaranteed by the caller.
func MustOnly[T any](s *AtLeastOne[T]) T {
	v, err := Only(s)
	if err != nil {
		panic(err)
	}
	return v
}
