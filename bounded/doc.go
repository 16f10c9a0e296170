// Package bounded provides generic slice wrappers whose type encodes a
// guarantee about how many elements they hold.
//
// # Overview
//
// [AtLeast][T, N] holds at least N elements and [AtMost][T, N] holds at most
// N elements, where N is one of the size classes [One], [Two], [Three] or
// [Four]. Aliases name the common instantiations:
//
//	names := bounded.NewTwo("alice", "bob")          // *AtLeastTwo[string]
//	hosts, err := bounded.TryFrom[bounded.One](list) // *AtLeastOne[string]
//	first := hosts.First()                           // no emptiness check
//
// A function that accepts *AtLeastOne[T] no longer needs to handle the
// empty case: the type says it cannot happen.
//
// # Construction
//
// Each at-least family member has two ways in:
//
//   - NewOne/NewTwo/NewThree/NewFour take exactly N required elements and
//     cannot fail. The ...And variants append an extra slice after them.
//   - [TryFrom] validates an arbitrary slice and returns a [*LengthError]
//     (wrapping [ErrTooFew]) when it is too short.
//
// [Of] and [MustOf] are variadic shorthands for literals.
//
// The at-most family is built with [NewAtMost] (exactly one element) or
// validated with [AtMostFrom], which rejects slices longer than N with
// [ErrTooMany].
//
// # Reading
//
// Every wrapper satisfies [Sequence] through two primitives, AsSlice and
// IntoSlice. Iteration is derived from them: [Iter] and [IntoIter] work on
// any Sequence and are available as methods too:
//
//	for name := range names.Iter() {
//	    fmt.Println(name)
//	}
//
// Wrappers are never modified after construction, so concurrent reads are
// safe. IntoSlice and IntoIter hand the elements to the caller and leave the
// wrapper empty.
//
// # Encoding
//
// Wrappers marshal as plain JSON and YAML arrays. Unmarshalling validates the
// decoded length, so a config file with an empty "at least one" list fails
// to load. A key that is missing, or a YAML null, never reaches the decoder
// hooks and leaves the field at its zero value; check such fields with
// Validate:
//
//	if err := json.Unmarshal(data, &cfg); err != nil {
//	    return err
//	}
//	if err := cfg.Hosts.Validate(); err != nil {
//	    return err
//	}
package bounded
