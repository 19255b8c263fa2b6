package gowot

import (
	"fmt"

	"github.com/reoring/gowot/node"
)

// Cardinality is a field that may hold one value or several. It is
// implemented by exactly two types, Single and Multiple.
type Cardinality[T any] interface {
	// Values returns the held values; a Single yields one element.
	Values() []T
	Len() int
	IsMultiple() bool
	cardinality()
}

// Single is a scalar that appeared as a lone string.
type Single[T any] struct {
	value T
}

// NewSingle wraps v without validation; prefer ScalarCodec.SingleOf for
// values that come from outside.
func NewSingle[T any](v T) Single[T] { return Single[T]{value: v} }

// Value returns the held value.
func (s Single[T]) Value() T         { return s.value }
func (s Single[T]) Values() []T      { return []T{s.value} }
func (s Single[T]) Len() int         { return 1 }
func (s Single[T]) IsMultiple() bool { return false }
func (Single[T]) cardinality()       {}

// Multiple is a scalar list that appeared as an array, in source order.
type Multiple[T any] struct {
	values []T
}

// NewMultiple copies vs into a Multiple.
func NewMultiple[T any](vs ...T) Multiple[T] {
	return Multiple[T]{values: append([]T{}, vs...)}
}

func (m Multiple[T]) Values() []T      { return append([]T{}, m.values...) }
func (m Multiple[T]) Len() int         { return len(m.values) }
func (m Multiple[T]) IsMultiple() bool { return true }
func (Multiple[T]) cardinality()       {}

// Contains reports whether c holds v.
func Contains[T comparable](c Cardinality[T], v T) bool {
	if c == nil {
		return false
	}
	for _, x := range c.Values() {
		if x == v {
			return true
		}
	}
	return false
}

// ScalarCodec converts one scalar family between its string form and T.
type ScalarCodec[T any] struct {
	// Name identifies the family in diagnostics.
	Name string
	// FromString parses and validates one string. Errors may be a ValueError
	// to select the Issue code.
	FromString func(string) (T, error)
	ToString   func(T) string
	// DropInvalid discards array elements that FromString rejects instead of
	// failing the whole field.
	DropInvalid bool
}

// Decode reads a string as Single and an array as Multiple. Non-string array
// elements are discarded.
func (c ScalarCodec[T]) Decode(n node.Node, at PathRef) (Cardinality[T], error) {
	switch x := n.(type) {
	case node.String:
		v, err := c.FromString(string(x))
		if err != nil {
			return nil, at.Issues(valueCode(err, CodeInvalidFormat), err.Error(), "family", c.Name, "actual", string(x))
		}
		return Single[T]{value: v}, nil
	case *node.Array:
		vs := make([]T, 0, x.Len())
		var iss Issues
		for i, e := range x.All() {
			s, ok := e.(node.String)
			if !ok {
				Logger().Debug("dropping non-string element", "family", c.Name, "path", at.Index(i).Pointer(), "kind", e.Kind().String())
				continue
			}
			v, err := c.FromString(string(s))
			if err != nil {
				if c.DropInvalid {
					Logger().Debug("dropping unrecognised element", "family", c.Name, "path", at.Index(i).Pointer(), "value", string(s))
					continue
				}
				iss = append(iss, at.Index(i).Issue(valueCode(err, CodeInvalidFormat), err.Error(), "family", c.Name, "actual", string(s)))
				continue
			}
			vs = append(vs, v)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return Multiple[T]{values: vs}, nil
	}
	return nil, kindIssue(at, "string or array of strings", n)
}

// Encode renders a Single as a string and a Multiple as an array. A nil
// Cardinality encodes to nil, which builders treat as removal.
func (c ScalarCodec[T]) Encode(v Cardinality[T]) node.Node {
	switch x := v.(type) {
	case nil:
		return nil
	case Single[T]:
		return node.String(c.ToString(x.value))
	case *Single[T]:
		if x == nil {
			return nil
		}
		return node.String(c.ToString(x.value))
	case Multiple[T]:
		return c.encodeAll(x.values)
	case *Multiple[T]:
		if x == nil {
			return nil
		}
		return c.encodeAll(x.values)
	}
	panic("unreachable")
}

func (c ScalarCodec[T]) encodeAll(vs []T) node.Node {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = c.ToString(v)
	}
	return node.Strings(ss...)
}

func (c ScalarCodec[T]) parse(s string) (T, error) {
	v, err := c.FromString(s)
	if err != nil {
		return v, fmt.Errorf("%s %q: %w", c.Name, s, err)
	}
	return v, nil
}

// Field returns a descriptor for key decoded through c.
func (c ScalarCodec[T]) Field(key string) Field[Cardinality[T]] {
	return NewField(key, c.Decode, c.Encode)
}

// SingleOf wraps v as a Single. A Single is returned unchanged; T values and
// strings are validated.
func (c ScalarCodec[T]) SingleOf(v any) (Single[T], error) {
	switch x := v.(type) {
	case Single[T]:
		return x, nil
	case *Single[T]:
		return *x, nil
	case T:
		t, err := c.parse(c.ToString(x))
		return Single[T]{value: t}, err
	case string:
		t, err := c.parse(x)
		return Single[T]{value: t}, err
	}
	return Single[T]{}, fmt.Errorf("%s: cannot wrap %T as a single value", c.Name, v)
}

// MultipleOf wraps v as a Multiple. A Multiple is returned unchanged; slices
// of T or of strings are validated element by element.
func (c ScalarCodec[T]) MultipleOf(v any) (Multiple[T], error) {
	switch x := v.(type) {
	case Multiple[T]:
		return x, nil
	case *Multiple[T]:
		return *x, nil
	case []T:
		out := make([]T, 0, len(x))
		for _, e := range x {
			t, err := c.parse(c.ToString(e))
			if err != nil {
				return Multiple[T]{}, err
			}
			out = append(out, t)
		}
		return Multiple[T]{values: out}, nil
	case []string:
		out := make([]T, 0, len(x))
		for _, s := range x {
			t, err := c.parse(s)
			if err != nil {
				return Multiple[T]{}, err
			}
			out = append(out, t)
		}
		return Multiple[T]{values: out}, nil
	}
	return Multiple[T]{}, fmt.Errorf("%s: cannot wrap %T as multiple values", c.Name, v)
}

// Of wraps v by shape: a Cardinality is returned unchanged, a slice becomes
// Multiple and anything else Single.
func (c ScalarCodec[T]) Of(v any) (Cardinality[T], error) {
	switch x := v.(type) {
	case Cardinality[T]:
		return x, nil
	case []T, []string:
		return c.MultipleOf(x)
	}
	return c.SingleOf(v)
}
