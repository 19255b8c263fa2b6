package gowot

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/reoring/gowot/node"
)

// Decoder reads a typed value out of a document node located at at.
type Decoder[T any] func(n node.Node, at PathRef) (T, error)

// Field describes one named member of an entity: its key, how the member is
// decoded and encoded, and whether it is required or lenient.
//
// A lenient field whose value has the wrong shape reads as absent and the
// dropped value is logged at debug level.
type Field[T any] struct {
	Key      string
	decode   Decoder[T]
	encode   func(T) node.Node
	required bool
	lenient  bool
}

// NewField returns a Field for key.
func NewField[T any](key string, dec Decoder[T], enc func(T) node.Node) Field[T] {
	return Field[T]{Key: key, decode: dec, encode: enc}
}

// Required marks the field as mandatory.
func (f Field[T]) Required() Field[T] { f.required = true; return f }

// Lenient makes a malformed value read as absent instead of failing.
func (f Field[T]) Lenient() Field[T] { f.lenient = true; return f }

// IsRequired reports whether the field is mandatory.
func (f Field[T]) IsRequired() bool { return f.required }

// Encode converts v to its document form.
func (f Field[T]) Encode(v T) node.Node { return f.encode(v) }

// Get decodes the field from o. ok is false when the member is absent (or
// malformed and lenient).
func (f Field[T]) Get(o *node.Object) (v T, ok bool, err error) {
	n, present := o.Get(f.Key)
	if !present {
		return v, false, nil
	}
	at := Root().Field(f.Key)
	v, err = f.decode(n, at)
	if err != nil {
		if f.lenient {
			Logger().Debug("dropping malformed lenient field", "path", at.Pointer(), "kind", n.Kind().String(), "error", err)
			var zero T
			return zero, false, nil
		}
		return v, false, err
	}
	return v, true, nil
}

// Lookup is Get for entities that were validated on construction.
func (f Field[T]) Lookup(o *node.Object) (T, bool) {
	v, ok, err := f.Get(o)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, ok
}

// Check validates the field against o.
func (f Field[T]) Check(o *node.Object) Issues {
	if !o.Has(f.Key) {
		if f.required {
			return Root().Field(f.Key).Issues(CodeRequired, "")
		}
		return nil
	}
	_, _, err := f.Get(o)
	return ToIssues(err)
}

// Checker is satisfied by every Field.
type Checker interface {
	Check(o *node.Object) Issues
}

// Validate runs every checker against o and returns the collected Issues.
func Validate(o *node.Object, fields ...Checker) error {
	var iss Issues
	for _, f := range fields {
		iss = AppendIssues(iss, f.Check(o)...)
	}
	return iss.Err()
}

// Nested rebases the Issues of a nested decode under at.
func Nested(at PathRef, err error) error {
	if err == nil {
		return nil
	}
	return ToIssues(err).Prefix(at.ptr)
}

// ValueError is returned by scalar parsers to report why a string was
// rejected. Code is one of the Issue codes.
type ValueError struct {
	Code string
	Msg  string
}

func (e *ValueError) Error() string { return e.Msg }

// InvalidValue returns a ValueError.
func InvalidValue(code, msg string) error { return &ValueError{Code: code, Msg: msg} }

func valueCode(err error, fallback string) string {
	var ve *ValueError
	if errors.As(err, &ve) && ve.Code != "" {
		return ve.Code
	}
	return fallback
}

func kindIssue(at PathRef, want string, n node.Node) Issues {
	return at.Issues(CodeInvalidType, "expected "+want, "expected", want, "actual", n.Kind().String())
}

// AsObject requires n to be an object.
func AsObject(n node.Node, at PathRef) (*node.Object, error) {
	if o, ok := n.(*node.Object); ok {
		return o, nil
	}
	return nil, kindIssue(at, "object", n)
}

// DecodeString requires n to be a string.
func DecodeString(n node.Node, at PathRef) (string, error) {
	if s, ok := n.(node.String); ok {
		return string(s), nil
	}
	return "", kindIssue(at, "string", n)
}

// DecodeBool requires n to be a boolean.
func DecodeBool(n node.Node, at PathRef) (bool, error) {
	if b, ok := n.(node.Bool); ok {
		return bool(b), nil
	}
	return false, kindIssue(at, "boolean", n)
}

// DecodeNumber requires n to be a number.
func DecodeNumber(n node.Node, at PathRef) (node.Number, error) {
	if x, ok := n.(node.Number); ok {
		return x, nil
	}
	return "", kindIssue(at, "number", n)
}

// DecodeInt requires n to be an integral number that fits in int64.
func DecodeInt(n node.Node, at PathRef) (int64, error) {
	x, err := DecodeNumber(n, at)
	if err != nil {
		return 0, err
	}
	if !x.IsInteger() {
		return 0, at.Issues(CodeInvalidType, "expected integer", "expected", "integer", "actual", string(x))
	}
	i, err := x.Int64()
	if err != nil {
		return 0, at.Issues(CodeInvalidFormat, "integer out of range", "actual", string(x))
	}
	return i, nil
}

// DecodeFloat requires n to be a number and converts it to float64.
func DecodeFloat(n node.Node, at PathRef) (float64, error) {
	x, err := DecodeNumber(n, at)
	if err != nil {
		return 0, err
	}
	f, err := x.Float64()
	if err != nil {
		return 0, at.Issues(CodeInvalidFormat, "number out of range", "actual", string(x))
	}
	return f, nil
}

// DecodeStrings requires n to be an array of strings.
func DecodeStrings(n node.Node, at PathRef) ([]string, error) {
	arr, ok := n.(*node.Array)
	if !ok {
		return nil, kindIssue(at, "array", n)
	}
	out := make([]string, 0, arr.Len())
	var iss Issues
	for i, e := range arr.All() {
		s, err := DecodeString(e, at.Index(i))
		if err != nil {
			iss = append(iss, ToIssues(err)...)
			continue
		}
		out = append(out, s)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// DecodeStringMap requires n to be an object of strings, as used by
// multi-language maps.
func DecodeStringMap(n node.Node, at PathRef) (map[string]string, error) {
	o, err := AsObject(n, at)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, o.Len())
	var iss Issues
	for k, v := range o.All() {
		s, err := DecodeString(v, at.Field(k))
		if err != nil {
			iss = append(iss, ToIssues(err)...)
			continue
		}
		out[k] = s
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func encodeString(s string) node.Node { return node.String(s) }
func encodeBool(b bool) node.Node     { return node.Bool(b) }
func encodeInt(i int64) node.Node     { return node.Int(i) }
func encodeFloat(f float64) node.Node { return node.Float(f) }
func encodeNumber(n node.Number) node.Node {
	if n == "" {
		return nil
	}
	return n
}

func encodeStrings(ss []string) node.Node {
	if ss == nil {
		return nil
	}
	return node.Strings(ss...)
}

// encodeStringMap writes keys in sorted order so output is deterministic.
func encodeStringMap(m map[string]string) node.Node {
	if m == nil {
		return nil
	}
	b := node.NewObjectBuilder()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b.Set(k, node.String(m[k]))
	}
	return b.Build()
}

// StringField is a string member.
func StringField(key string) Field[string] { return NewField(key, DecodeString, encodeString) }

// BoolField is a boolean member.
func BoolField(key string) Field[bool] { return NewField(key, DecodeBool, encodeBool) }

// IntField is an integral number member.
func IntField(key string) Field[int64] { return NewField(key, DecodeInt, encodeInt) }

// FloatField is a number member read as float64.
func FloatField(key string) Field[float64] { return NewField(key, DecodeFloat, encodeFloat) }

// NumberField is a number member kept in its textual form.
func NumberField(key string) Field[node.Number] {
	return NewField(key, DecodeNumber, encodeNumber)
}

// StringListField is an array-of-strings member.
func StringListField(key string) Field[[]string] {
	return NewField(key, DecodeStrings, encodeStrings)
}

// StringMapField is a multi-language map member.
func StringMapField(key string) Field[map[string]string] {
	return NewField(key, DecodeStringMap, encodeStringMap)
}

// EnumField is a string member restricted to allowed.
func EnumField(key string, allowed ...string) Field[string] {
	dec := func(n node.Node, at PathRef) (string, error) {
		s, err := DecodeString(n, at)
		if err != nil {
			return "", err
		}
		if !slices.Contains(allowed, s) {
			return "", at.Issues(CodeInvalidEnum, s, "allowed", allowed, "actual", s)
		}
		return s, nil
	}
	return NewField(key, dec, encodeString)
}

// RawField is a member of any kind, returned undecoded.
func RawField(key string) Field[node.Node] {
	dec := func(n node.Node, _ PathRef) (node.Node, error) { return n, nil }
	return NewField(key, dec, func(n node.Node) node.Node { return n })
}

// ObjectField is an object member returned undecoded.
func ObjectField(key string) Field[*node.Object] {
	enc := func(o *node.Object) node.Node {
		if o == nil {
			return nil
		}
		return o
	}
	return NewField(key, AsObject, enc)
}

// EntityField is an object member decoded into an entity by dec.
func EntityField[E Entity](key string, dec func(o *node.Object) (E, error)) Field[E] {
	d := func(n node.Node, at PathRef) (E, error) {
		var zero E
		o, err := AsObject(n, at)
		if err != nil {
			return zero, err
		}
		e, err := dec(o)
		if err != nil {
			return zero, Nested(at, err)
		}
		return e, nil
	}
	enc := func(e E) node.Node {
		if IsNil(e) {
			return nil
		}
		return e.ToJSON()
	}
	return NewField(key, d, enc)
}

// ListField is an array member whose every element is decoded by dec.
func ListField[T any](key string, dec Decoder[T], enc func(T) node.Node) Field[[]T] {
	d := func(n node.Node, at PathRef) ([]T, error) {
		arr, ok := n.(*node.Array)
		if !ok {
			return nil, kindIssue(at, "array", n)
		}
		out := make([]T, 0, arr.Len())
		var iss Issues
		for i, e := range arr.All() {
			v, err := dec(e, at.Index(i))
			if err != nil {
				iss = append(iss, ToIssues(err)...)
				continue
			}
			out = append(out, v)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	}
	e := func(vs []T) node.Node {
		if vs == nil {
			return nil
		}
		b := node.NewArrayBuilder()
		for _, v := range vs {
			b.Append(enc(v))
		}
		return b.Build()
	}
	return NewField(key, d, e)
}

// MapField is an object member whose every value is decoded by dec, which
// also receives the member name. Document order is preserved.
func MapField[T any](key string, dec func(name string, n node.Node, at PathRef) (T, error), enc func(T) node.Node) Field[Map[T]] {
	d := func(n node.Node, at PathRef) (Map[T], error) {
		o, err := AsObject(n, at)
		if err != nil {
			return Map[T]{}, err
		}
		var m Map[T]
		var iss Issues
		for k, v := range o.All() {
			x, err := dec(k, v, at.Field(k))
			if err != nil {
				iss = append(iss, ToIssues(err)...)
				continue
			}
			m.put(k, x)
		}
		if len(iss) > 0 {
			return Map[T]{}, iss
		}
		return m, nil
	}
	e := func(m Map[T]) node.Node {
		b := node.NewObjectBuilder()
		for k, v := range m.All() {
			b.Set(k, enc(v))
		}
		return b.Build()
	}
	return NewField(key, d, e)
}

// CodecField is a string member converted through c.
func CodecField[B any](key string, c Codec[string, B]) Field[B] {
	dec := func(n node.Node, at PathRef) (B, error) {
		var zero B
		s, err := DecodeString(n, at)
		if err != nil {
			return zero, err
		}
		v, err := c.Decode(context.Background(), s)
		if err != nil {
			return zero, at.Issues(valueCode(err, CodeInvalidFormat), err.Error(), "actual", s)
		}
		return v, nil
	}
	enc := func(v B) node.Node {
		s, err := c.Encode(context.Background(), v)
		if err != nil {
			Preconditionf("encode %q: %v", key, err)
		}
		return node.String(s)
	}
	return NewField(key, dec, enc)
}
