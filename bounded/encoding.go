package bounded

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Wrappers encode as plain arrays. Decoding validates the length through
// the same checks as [TryFrom] and [AtMostFrom] and leaves the receiver
// unchanged on failure. A JSON null decodes as an empty array.
//
// Neither decoder runs a hook for an absent key, and yaml.v3 skips
// UnmarshalYAML for null nodes (null, ~ or an empty value). Those fields keep
// their zero value, which for [AtLeast] is empty and fails Validate. Callers
// decoding into value fields should call Validate after decoding.
//
// Marshal methods use value receivers so that wrappers embedded by value in
// other structs encode correctly.

var (
	_ json.Marshaler   = AtLeast[int, One]{}
	_ json.Unmarshaler = (*AtLeast[int, One])(nil)
	_ yaml.Marshaler   = AtMost[int, One]{}
	_ yaml.Unmarshaler = (*AtMost[int, One])(nil)
)

// MarshalJSON implements [json.Marshaler].
func (s AtLeast[T, N]) MarshalJSON() ([]byte, error) { return json.Marshal(nonNil(s.items)) }

// UnmarshalJSON implements [json.Unmarshaler]. It fails with a
// [*LengthError] when the array is shorter than N.Count().
func (s *AtLeast[T, N]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if err := checkMin[N](len(items)); err != nil {
		return err
	}
	s.items = items
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (s AtLeast[T, N]) MarshalYAML() (any, error) { return nonNil(s.items), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It fails with a
// [*LengthError] when the sequence is shorter than N.Count().
func (s *AtLeast[T, N]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return err
	}
	if err := checkMin[N](len(items)); err != nil {
		return err
	}
	s.items = items
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (s AtMost[T, N]) MarshalJSON() ([]byte, error) { return json.Marshal(nonNil(s.items)) }

// UnmarshalJSON implements [json.Unmarshaler]. It fails with a
// [*LengthError] when the array is longer than N.Count().
func (s *AtMost[T, N]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if err := checkMax[N](len(items)); err != nil {
		return err
	}
	s.items = items
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (s AtMost[T, N]) MarshalYAML() (any, error) { return nonNil(s.items), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It fails with a
// [*LengthError] when the sequence is longer than N.Count().
func (s *AtMost[T, N]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return err
	}
	if err := checkMax[N](len(items)); err != nil {
		return err
	}
	s.items = items
	return nil
}

// nonNil keeps an empty sequence encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
