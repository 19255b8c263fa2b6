package node

import (
	"errors"
	"slices"
)

// ErrBuilderConsumed is the panic value raised when a builder is used after
// Build handed its staging data over.
var ErrBuilderConsumed = errors.New("node: builder already consumed")

// ObjectBuilder stages the fields of an object. It is owned by a single
// goroutine and must not be used after Build.
type ObjectBuilder struct {
	keys []string
	vals map[string]Node
	done bool
}

// NewObjectBuilder returns an empty object builder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{vals: make(map[string]Node)}
}

func (b *ObjectBuilder) check() {
	if b.done {
		panic(ErrBuilderConsumed)
	}
}

// Set stores v under key. An existing key keeps its position. A nil v removes
// the key.
func (b *ObjectBuilder) Set(key string, v Node) *ObjectBuilder {
	b.check()
	if v == nil {
		return b.Delete(key)
	}
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = v
	return b
}

// Delete removes key if present.
func (b *ObjectBuilder) Delete(key string) *ObjectBuilder {
	b.check()
	if _, ok := b.vals[key]; !ok {
		return b
	}
	delete(b.vals, key)
	if i := slices.Index(b.keys, key); i >= 0 {
		b.keys = slices.Delete(b.keys, i, i+1)
	}
	return b
}

// Get returns the staged value for key.
func (b *ObjectBuilder) Get(key string) (Node, bool) {
	b.check()
	v, ok := b.vals[key]
	return v, ok
}

// Has reports whether key is staged.
func (b *ObjectBuilder) Has(key string) bool {
	_, ok := b.Get(key)
	return ok
}

// Len returns the number of staged fields.
func (b *ObjectBuilder) Len() int {
	b.check()
	return len(b.keys)
}

// Build moves the staged fields into an immutable Object. The builder is
// consumed.
func (b *ObjectBuilder) Build() *Object {
	b.check()
	b.done = true
	o := &Object{keys: b.keys, vals: b.vals}
	b.keys, b.vals = nil, nil
	return o
}

// ArrayBuilder stages the elements of an array. Same ownership rules as
// ObjectBuilder.
type ArrayBuilder struct {
	elems []Node
	done  bool
}

// NewArrayBuilder returns an empty array builder.
func NewArrayBuilder() *ArrayBuilder { return &ArrayBuilder{} }

func (b *ArrayBuilder) check() {
	if b.done {
		panic(ErrBuilderConsumed)
	}
}

// Append adds elements. Nil elements are stored as Null.
func (b *ArrayBuilder) Append(vs ...Node) *ArrayBuilder {
	b.check()
	for _, v := range vs {
		if v == nil {
			v = Null{}
		}
		b.elems = append(b.elems, v)
	}
	return b
}

// Set replaces the i-th element.
func (b *ArrayBuilder) Set(i int, v Node) *ArrayBuilder {
	b.check()
	if v == nil {
		v = Null{}
	}
	b.elems[i] = v
	return b
}

// Len returns the number of staged elements.
func (b *ArrayBuilder) Len() int {
	b.check()
	return len(b.elems)
}

// Build moves the staged elements into an immutable Array.
func (b *ArrayBuilder) Build() *Array {
	b.check()
	b.done = true
	a := &Array{elems: b.elems}
	b.elems = nil
	return a
}
