package bounded

// Of is the variadic form of [TryFrom], for call sites that list the
// elements inline:
//
//	ports, err := bounded.Of[bounded.Two](80, 443, 8080)
func Of[N Size, T any](items ...T) (*AtLeast[T, N], error) {
	return TryFrom[N](items)
}

// MustOf is like [Of] but panics if fewer than N.Count() items are given.
// It is intended for literals whose length is known at the call site,
// such as package-level variables:
//
//	var defaultResolvers = bounded.MustOf[bounded.One]("1.1.1.1", "8.8.8.8")
func MustOf[N Size, T any](items ...T) *AtLeast[T, N] {
	s, err := TryFrom[N](items)
	if err != nil {
		panic(err)
	}
	return s
}
