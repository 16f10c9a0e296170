package bounded

import "fmt"

// AtMost is a sequence of T that holds at most N.Count() elements.
//
// [NewAtMost] builds a single-element sequence, which fits every class.
// [AtMostFrom] validates an arbitrary slice, including an empty one. The
// zero value is a valid empty AtMost.
type AtMost[T any, N MaxSize] struct {
	elems[T]
}

// Aliases for the supported at-most classes.
type (
	AtMostOne[T any]   = AtMost[T, One]
	AtMostTwo[T any]   = AtMost[T, Two]
	AtMostThree[T any] = AtMost[T, Three]
)

// NewAtMost creates an AtMost holding exactly a.
//
//	b := bounded.NewAtMost[bounded.Two]("primary")
func NewAtMost[N MaxSize, T any](a T) *AtMost[T, N] {
	return &AtMost[T, N]{elems: elems[T]{items: []T{a}}}
}

// NewAtMostOne creates an AtMostOne holding exactly a.
func NewAtMostOne[T any](a T) *AtMostOne[T] { return NewAtMost[One](a) }

// NewAtMostTwo creates an AtMostTwo holding exactly a.
func NewAtMostTwo[T any](a T) *AtMostTwo[T] { return NewAtMost[Two](a) }

// NewAtMostThree creates an AtMostThree holding exactly a.
func NewAtMostThree[T any](a T) *AtMostThree[T] { return NewAtMost[Three](a) }

// AtMostFrom validates that v holds at most N.Count() elements and wraps it.
// On success the returned sequence takes ownership of v without copying.
// A long slice yields a [*LengthError] wrapping [ErrTooMany].
func AtMostFrom[N MaxSize, T any](v []T) (*AtMost[T, N], error) {
	if err := checkMax[N](len(v)); err != nil {
		return nil, err
	}
	return &AtMost[T, N]{elems: elems[T]{items: v}}, nil
}

func checkMax[N MaxSize](n int) error {
	if hi := countOf[N](); n > hi {
		return &LengthError{Bound: "AtMost" + nameOf[N](), Limit: hi, Len: n, Err: ErrTooMany}
	}
	return nil
}

// Validate reports whether s satisfies its bound. It only fails for a value
// built outside this package's constructors and decoders.
func (s *AtMost[T, N]) Validate() error { return checkMax[N](len(s.items)) }

// IsEmpty reports whether s holds no elements.
func (s *AtMost[T, N]) IsEmpty() bool { return len(s.items) == 0 }

// First returns the first element together with a presence flag.
// Returns the zero value and false when s is empty.
func (s *AtMost[T, N]) First() (T, bool) { return s.Get(0) }

// String returns the class name followed by the elements, e.g.
// "AtMostTwo[1]". It implements [fmt.Stringer].
func (s *AtMost[T, N]) String() string {
	return fmt.Sprintf("AtMost%s%v", nameOf[N](), s.items)
}
