package td

import (
	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

// ArrayItems is the "items" member of an array schema: one schema for every
// element, or one schema per position.
type ArrayItems interface {
	// Schemas returns the element schemas; SingleItems yields one.
	Schemas() []DataSchema
	IsTuple() bool
	arrayItems()
}

// SingleItems applies one schema to every element.
type SingleItems struct{ schema DataSchema }

// TupleItems applies schemas positionally.
type TupleItems struct{ schemas []DataSchema }

// NewSingleItems wraps one schema applying to every element.
func NewSingleItems(s DataSchema) SingleItems { return SingleItems{schema: s} }

// NewTupleItems wraps positional element schemas.
func NewTupleItems(schemas ...DataSchema) TupleItems {
	return TupleItems{schemas: append([]DataSchema{}, schemas...)}
}

func (i SingleItems) Schema() DataSchema    { return i.schema }
func (i SingleItems) Schemas() []DataSchema { return []DataSchema{i.schema} }
func (SingleItems) IsTuple() bool           { return false }
func (SingleItems) arrayItems()             {}
func (i TupleItems) Schemas() []DataSchema  { return append([]DataSchema{}, i.schemas...) }
func (TupleItems) IsTuple() bool            { return true }
func (TupleItems) arrayItems()              {}

// decodeArrayItems resolves an object to SingleItems and an array to
// TupleItems. Array elements that are not objects are discarded.
func decodeArrayItems(n node.Node, at gowot.PathRef) (ArrayItems, error) {
	switch x := n.(type) {
	case *node.Object:
		s, err := decodeDataSchema(x, at)
		if err != nil {
			return nil, err
		}
		return SingleItems{schema: s}, nil
	case *node.Array:
		out := make([]DataSchema, 0, x.Len())
		var iss gowot.Issues
		for i, e := range x.All() {
			if _, ok := e.(*node.Object); !ok {
				gowot.Logger().Debug("dropping non-object tuple item", "path", at.Index(i).Pointer(), "kind", e.Kind().String())
				continue
			}
			s, err := decodeDataSchema(e, at.Index(i))
			if err != nil {
				iss = append(iss, gowot.ToIssues(err)...)
				continue
			}
			out = append(out, s)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return TupleItems{schemas: out}, nil
	}
	return nil, at.Issues(gowot.CodeInvalidType, "expected object or array", "actual", n.Kind().String())
}

func encodeArrayItems(items ArrayItems) node.Node {
	switch x := items.(type) {
	case nil:
		return nil
	case SingleItems:
		return entityNode(x.schema)
	case TupleItems:
		b := node.NewArrayBuilder()
		for _, s := range x.schemas {
			b.Append(s.ToJSON())
		}
		return b.Build()
	}
	gowot.Preconditionf("unsupported array items %T", items)
	return nil
}
