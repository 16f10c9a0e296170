package bounded_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-bounded/bounded"
)

func TestLengthErrorMessage(t *testing.T) {
	_, err := bounded.TryFrom[bounded.Three]([]int{1, 2})
	assert.EqualError(t, err, "bounded: too few elements: AtLeastThree requires at least 3, got 2")

	_, err = bounded.AtMostFrom[bounded.Two]([]int{1, 2, 3})
	assert.EqualError(t, err, "bounded: too many elements: AtMostTwo requires at most 2, got 3")
}

func TestLengthErrorWrapped(t *testing.T) {
	_, err := bounded.TryFrom[bounded.Four]([]string{"a"})
	wrapped := fmt.Errorf("load peers: %w", err)

	assert.ErrorIs(t, wrapped, bounded.ErrTooFew)
	assert.NotErrorIs(t, wrapped, bounded.ErrTooMany)

	var lerr *bounded.LengthError
	if assert.True(t, errors.As(wrapped, &lerr)) {
		assert.Equal(t, "AtLeastFour", lerr.Bound)
		assert.Equal(t, 4, lerr.Limit)
		assert.Equal(t, 1, lerr.Len)
	}
}

func TestNotSingularMessage(t *testing.T) {
	_, err := bounded.Only(bounded.NewOneAnd(1, []int{2, 3}))
	assert.EqualError(t, err, "bounded: sequence does not hold exactly one element: got 3")
}
