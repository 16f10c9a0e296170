package bounded_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-bounded/bounded"
)

func ExampleNewTwo() {
	s := bounded.NewTwo(1, 2)
	for v := range s.Iter() {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
}

func ExampleNewTwoAnd() {
	s := bounded.NewTwoAnd(1, 2, []int{3, 4})
	fmt.Println(s.AsSlice())
	// Output: [1 2 3 4]
}

func ExampleTryFrom() {
	s, err := bounded.TryFrom[bounded.Three]([]int{1, 2, 3})
	fmt.Println(s.Len(), err)

	_, err = bounded.TryFrom[bounded.Three]([]int{1, 2})
	fmt.Println(errors.Is(err, bounded.ErrTooFew))
	// Output:
	// 3 <nil>
	// true
}

func ExampleOnly() {
	v, err := bounded.Only(bounded.NewOne("solo"))
	fmt.Println(v, err)

	_, err = bounded.Only(bounded.MustOf[bounded.One]("a", "b"))
	fmt.Println(err)
	// Output:
	// solo <nil>
	// bounded: sequence does not hold exactly one element: got 2
}

func ExampleAtMostFrom() {
	_, err := bounded.AtMostFrom[bounded.Two]([]string{"a", "b", "c"})
	fmt.Println(err)
	// Output: bounded: too many elements: AtMostTwo requires at most 2, got 3
}

func ExampleIntoIter() {
	s := bounded.NewThree("a", "b", "c")
	for v := range bounded.IntoIter[string](s) {
		fmt.Print(v)
	}
	fmt.Println("", s.Len())
	// Output: abc 0
}
