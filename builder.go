package gowot

import (
	"fmt"
	"reflect"

	"github.com/reoring/gowot/node"
)

// PreconditionError is the panic value for builder misuse: writing a pinned
// discriminator or passing a value of the wrong variant family.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return "gowot: " + e.Msg }

// Preconditionf panics with a PreconditionError.
func Preconditionf(format string, args ...any) {
	panic(&PreconditionError{Msg: fmt.Sprintf(format, args...)})
}

// Builder is embedded by every concrete builder. B is the concrete builder
// type so that setters chain. It owns its staging object exclusively; after
// Finish the staging object is consumed and further use panics.
type Builder[B any] struct {
	self   B
	nb     *node.ObjectBuilder
	pinned map[string]node.Node
}

// NewBuilder returns a Builder staging a copy of from (or an empty object).
func NewBuilder[B any](self B, from *node.Object) Builder[B] {
	nb := node.NewObjectBuilder()
	if from != nil {
		nb = from.ToBuilder()
	}
	return Builder[B]{self: self, nb: nb}
}

// Self returns the concrete builder.
func (b *Builder[B]) Self() B { return b.self }

// Pin writes a discriminator value that no later setter may change.
func (b *Builder[B]) Pin(key string, v node.Node) {
	if b.pinned == nil {
		b.pinned = make(map[string]node.Node, 1)
	}
	b.pinned[key] = v
	b.nb.Set(key, v)
}

// Forbid removes key and makes any later write to it panic.
func (b *Builder[B]) Forbid(key string) {
	if b.pinned == nil {
		b.pinned = make(map[string]node.Node, 1)
	}
	b.pinned[key] = nil
	b.nb.Delete(key)
}

// PutValue is the single funnel for typed setters. A nil value removes the
// field instead of writing null.
func (b *Builder[B]) PutValue(key string, v node.Node) B {
	if pv, ok := b.pinned[key]; ok {
		if (pv == nil && v == nil) || (pv != nil && v != nil && node.Equal(pv, v)) {
			return b.self
		}
		Preconditionf("field %q is fixed by this builder", key)
	}
	b.nb.Set(key, v)
	return b.self
}

// Remove deletes a field.
func (b *Builder[B]) Remove(key string) B {
	return b.PutValue(key, nil)
}

// Get returns the staged value of a field.
func (b *Builder[B]) Get(key string) (node.Node, bool) { return b.nb.Get(key) }

// Finish hands the staged object over. The builder is consumed.
func (b *Builder[B]) Finish() *node.Object { return b.nb.Build() }

// Set writes v through field f.
func Set[B, T any](b *Builder[B], f Field[T], v T) B {
	return b.PutValue(f.Key, f.Encode(v))
}

// SetEntity writes the backing object of e, or removes the field when e is nil.
func SetEntity[B any, E Entity](b *Builder[B], key string, e E) B {
	if IsNil(e) {
		return b.Remove(key)
	}
	return b.PutValue(key, e.ToJSON())
}

// SetCardinality writes v through codec c, or removes the field when v is nil.
func SetCardinality[B, T any](b *Builder[B], key string, c ScalarCodec[T], v Cardinality[T]) B {
	return b.PutValue(key, c.Encode(v))
}

// IsNil reports whether e is nil or a nil pointer.
func IsNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
