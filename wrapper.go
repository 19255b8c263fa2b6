package gowot

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/reoring/gowot/node"
)

// Entity is implemented by every composite typed entity.
type Entity interface {
	// ToJSON returns the backing object itself, not a re-encoding.
	ToJSON() *node.Object
	// Base exposes the embedded Wrapper for equality checks.
	Base() Wrapper
}

// Wrapper is the immutable core embedded in every composite entity: a kind
// tag and the backing object, which is the sole source of truth.
type Wrapper struct {
	kind string
	obj  *node.Object
}

// NewWrapper wraps obj under the given kind tag. A nil obj is treated as an
// empty object.
func NewWrapper(kind string, obj *node.Object) Wrapper {
	if obj == nil {
		obj = node.EmptyObject()
	}
	return Wrapper{kind: kind, obj: obj}
}

// ToJSON returns the backing object.
func (w Wrapper) ToJSON() *node.Object { return w.obj }

// Base returns w.
func (w Wrapper) Base() Wrapper { return w }

// EntityKind returns the kind tag.
func (w Wrapper) EntityKind() string { return w.kind }

// Equal compares the kind tags first, so two entity types over identical
// objects are never equal, then the backing objects structurally.
func (w Wrapper) Equal(o Entity) bool {
	if IsNil(o) {
		return false
	}
	ow := o.Base()
	return w.kind == ow.kind && node.Equal(w.obj, ow.obj)
}

// Hash is consistent with Equal.
func (w Wrapper) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(w.kind))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], node.Hash(w.obj))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// MarshalJSON renders the backing object in document order.
func (w Wrapper) MarshalJSON() ([]byte, error) { return node.MarshalJSON(w.obj) }

// String renders the backing object as compact JSON.
func (w Wrapper) String() string {
	b, err := node.MarshalJSON(w.obj)
	if err != nil {
		return "<" + w.kind + ": " + err.Error() + ">"
	}
	return string(b)
}
