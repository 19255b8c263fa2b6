package td

import (
	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

func entityNode(e gowot.Entity) node.Node {
	if gowot.IsNil(e) {
		return nil
	}
	return e.ToJSON()
}

// putEntry sets one member of the object staged under key; a nil v removes
// the member.
func putEntry[B any](b *gowot.Builder[B], key, name string, v node.Node) B {
	var eb *node.ObjectBuilder
	if cur, ok := b.Get(key); ok {
		if o, isObj := cur.(*node.Object); isObj {
			eb = o.ToBuilder()
		}
	}
	if eb == nil {
		if v == nil {
			return b.Self()
		}
		eb = node.NewObjectBuilder()
	}
	eb.Set(name, v)
	return b.PutValue(key, eb.Build())
}

// appendItem appends v to the array staged under key.
func appendItem[B any](b *gowot.Builder[B], key string, v node.Node) B {
	ab := node.NewArrayBuilder()
	if cur, ok := b.Get(key); ok {
		if a, isArr := cur.(*node.Array); isArr {
			ab = a.ToBuilder()
		}
	}
	ab.Append(v)
	return b.PutValue(key, ab.Build())
}
