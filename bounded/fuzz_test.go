package bounded_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hasbyte1/go-bounded/bounded"
)

// FuzzTryFrom checks that conversion to AtLeastThree succeeds exactly when
// the input has three or more elements and then preserves it verbatim.
//
// Run with: go test -fuzz=FuzzTryFrom ./bounded/
func FuzzTryFrom(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte{1, 2})
	f.Add([]byte{1, 2, 3})
	f.Add(bytes.Repeat([]byte{0xAA}, 64))

	f.Fuzz(func(t *testing.T, in []byte) {
		s, err := bounded.TryFrom[bounded.Three](in)
		if len(in) < 3 {
			if !errors.Is(err, bounded.ErrTooFew) {
				t.Fatalf("len=%d: expected ErrTooFew, got %v", len(in), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("len=%d: unexpected error: %v", len(in), err)
		}
		if !bytes.Equal(s.AsSlice(), in) {
			t.Fatalf("len=%d: AsSlice differs from input", len(in))
		}
	})
}

// FuzzNewTwoAnd checks that the bulk constructor places the required
// elements before extra and keeps extra's order.
func FuzzNewTwoAnd(f *testing.F) {
	f.Add(byte(1), byte(2), []byte{})
	f.Add(byte(0), byte(0), []byte{3, 4, 5})

	f.Fuzz(func(t *testing.T, a, b byte, extra []byte) {
		s := bounded.NewTwoAnd(a, b, extra)
		want := append([]byte{a, b}, extra...)
		if !bytes.Equal(s.AsSlice(), want) {
			t.Fatalf("got %v want %v", s.AsSlice(), want)
		}
		var iterated []byte
		for v := range bounded.IntoIter[byte](s) {
			iterated = append(iterated, v)
		}
		if !bytes.Equal(iterated, want) {
			t.Fatalf("IntoIter got %v want %v", iterated, want)
		}
	})
}

// FuzzAtMostFrom checks that AtMostTwo accepts exactly the inputs of length
// zero to two.
func FuzzAtMostFrom(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte{1, 2, 3})

	f.Fuzz(func(t *testing.T, in []byte) {
		_, err := bounded.AtMostFrom[bounded.Two](in)
		if (err == nil) != (len(in) <= 2) {
			t.Fatalf("len=%d: err=%v", len(in), err)
		}
	})
}
