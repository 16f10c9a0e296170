package bounded

// Size is a compile-time size class used as the bound parameter of
// [AtLeast] and [AtMost]. Implementations are zero-size marker types; the
// methods are called on their zero value.
type Size interface {
	// Count returns the bound, e.g. 2 for [Two].
	Count() int
	// Name returns the class name used in error messages, e.g. "Two".
	Name() string
}

// The size classes provided by this package.
type (
	One   struct{}
	Two   struct{}
	Three struct{}
	Four  struct{}
)

func (One) Count() int   { return 1 }
func (Two) Count() int   { return 2 }
func (Three) Count() int { return 3 }
func (Four) Count() int  { return 4 }

func (One) Name() string   { return "One" }
func (Two) Name() string   { return "Two" }
func (Three) Name() string { return "Three" }
func (Four) Name() string  { return "Four" }

// MaxSize is the subset of size classes accepted as an [AtMost] bound:
// [One], [Two] and [Three].
type MaxSize interface {
	Size
	maxSize()
}

func (One) maxSize()   {}
func (Two) maxSize()   {}
func (Three) maxSize() {}

func countOf[N Size]() int {
	var n N
	return n.Count()
}

func nameOf[N Size]() string {
	var n N
	return n.Name()
}
