// Package node implements the generic structured-document tree that the typed
// WoT model wraps: objects with ordered unique keys, arrays and the JSON
// scalar kinds.
//
// Values are immutable once built. Mutation goes through ObjectBuilder and
// ArrayBuilder, which own their staging data exclusively and hand it over to
// the immutable value on Build.
package node

import (
	"iter"
	"math/big"
	"strconv"
)

// Kind enumerates node kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a document tree node. The set of implementations is closed:
// *Object, *Array, String, Number, Bool and Null.
type Node interface {
	Kind() Kind
	isNode()
}

// String is a string scalar.
type String string

// Number is a number scalar kept in its textual JSON form so that documents
// round-trip without float rounding.
type Number string

// Bool is a boolean scalar.
type Bool bool

// Null is the null scalar.
type Null struct{}

func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

func (String) isNode() {}
func (Number) isNode() {}
func (Bool) isNode()   {}
func (Null) isNode()   {}

// Int returns the Number for i.
func Int(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Float returns the shortest Number that round-trips f.
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// ParseNumber validates s against the JSON number grammar.
func ParseNumber(s string) (Number, error) {
	if !validNumber(s) {
		return "", &strconv.NumError{Func: "ParseNumber", Num: s, Err: strconv.ErrSyntax}
	}
	return Number(s), nil
}

// Int64 returns n as an int64. Integral values written with a fraction or an
// exponent (1.0, 1e3) are accepted.
func (n Number) Int64() (int64, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i, nil
	}
	r, ok := new(big.Rat).SetString(string(n))
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, &strconv.NumError{Func: "Int64", Num: string(n), Err: strconv.ErrRange}
	}
	return r.Num().Int64(), nil
}

// Float64 returns n as a float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// IsInteger reports whether n denotes an integral value.
func (n Number) IsInteger() bool {
	r, ok := new(big.Rat).SetString(string(n))
	return ok && r.IsInt()
}

// Object is an immutable object node. Key order is the insertion order of
// the source document or builder.
type Object struct {
	keys []string
	vals map[string]Node
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isNode()    {}

// EmptyObject returns an object with no fields.
func EmptyObject() *Object { return &Object{} }

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the field names in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Node, bool) {
	if o == nil || o.vals == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// All iterates over the fields in document order.
func (o *Object) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.vals[k]) {
				return
			}
		}
	}
}

// ToBuilder returns a builder initialised with a copy of o's fields.
// Child nodes are immutable and shared.
func (o *Object) ToBuilder() *ObjectBuilder {
	b := NewObjectBuilder()
	for k, v := range o.All() {
		b.Set(k, v)
	}
	return b
}

// Array is an immutable array node.
type Array struct {
	elems []Node
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isNode()    {}

// NewArray returns an array holding a copy of elems.
func NewArray(elems ...Node) *Array {
	return &Array{elems: append([]Node(nil), elems...)}
}

// Strings returns an array of string nodes.
func Strings(ss ...string) *Array {
	elems := make([]Node, len(ss))
	for i, s := range ss {
		elems[i] = String(s)
	}
	return &Array{elems: elems}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the i-th element. It panics when i is out of range.
func (a *Array) At(i int) Node { return a.elems[i] }

// Values returns a copy of the elements.
func (a *Array) Values() []Node {
	if a == nil {
		return nil
	}
	return append([]Node(nil), a.elems...)
}

// All iterates over the elements in order.
func (a *Array) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if a == nil {
			return
		}
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ToBuilder returns a builder initialised with a copy of a's elements.
func (a *Array) ToBuilder() *ArrayBuilder {
	return &ArrayBuilder{elems: a.Values()}
}

// validNumber reports whether s matches the JSON number grammar.
func validNumber(s string) bool {
	i := 0
	n := len(s)
	if i < n && s[i] == '-' {
		i++
	}
	if i >= n {
		return false
	}
	switch {
	case s[i] == '0':
		i++
	case s[i] >= '1' && s[i] <= '9':
		for i < n && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < n && s[i] == '.' {
		i++
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
