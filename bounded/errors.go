package bounded

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by bounded sequence operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := bounded.TryFrom[bounded.Two](items)
//	if errors.Is(err, bounded.ErrTooFew) {
//	    // items had fewer than two elements
//	}
var (
	// ErrTooFew is returned when a slice is shorter than the minimum of an
	// at-least size class.
	ErrTooFew = errors.New("bounded: too few elements")

	// ErrTooMany is returned when a slice is longer than the maximum of an
	// at-most size class.
	ErrTooMany = errors.New("bounded: too many elements")

	// ErrNotSingular is returned by [Only] when the sequence holds more than
	// one element.
	ErrNotSingular = errors.New("bounded: sequence does not hold exactly one element")
)

// LengthError reports a slice whose length does not fit a size class.
// Err is [ErrTooFew] or [ErrTooMany].
type LengthError struct {
	// Bound names the class that rejected the slice, e.g. "AtLeastThree".
	Bound string
	// Limit is the minimum (at-least) or maximum (at-most) element count.
	Limit int
	// Len is the length of the rejected slice.
	Len int
	Err error
}

func (e *LengthError) Error() string {
	rel := "at least"
	if errors.Is(e.Err, ErrTooMany) {
		rel = "at most"
	}
	return fmt.Sprintf("%v: %s requires %s %d, got %d", e.Err, e.Bound, rel, e.Limit, e.Len)
}

func (e *LengthError) Unwrap() error { return e.Err }
