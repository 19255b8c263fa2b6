package td

import (
	"slices"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

// DataSchemaType is the "type" discriminator of a data schema.
type DataSchemaType string

const (
	TypeBoolean DataSchemaType = "boolean"
	TypeInteger DataSchemaType = "integer"
	TypeNumber  DataSchemaType = "number"
	TypeString  DataSchemaType = "string"
	TypeObject  DataSchemaType = "object"
	TypeArray   DataSchemaType = "array"
	TypeNull    DataSchemaType = "null"
	// TypeUntyped is reported by schemas without a recognised "type".
	TypeUntyped DataSchemaType = ""
)

var knownTypes = []DataSchemaType{TypeBoolean, TypeInteger, TypeNumber, TypeString, TypeObject, TypeArray, TypeNull}

// DataSchema describes the shape of a value. The concrete type is selected by
// the "type" discriminator.
type DataSchema interface {
	gowot.Entity
	Type() DataSchemaType
	TypeTags() (gowot.Cardinality[TypeTag], bool)
	Title() (string, bool)
	Titles() map[string]string
	Description() (string, bool)
	Descriptions() map[string]string
	Const() (node.Node, bool)
	Default() (node.Node, bool)
	Enum() []node.Node
	Unit() (string, bool)
	OneOf() []DataSchema
	ReadOnly() (bool, bool)
	WriteOnly() (bool, bool)
	Format() (string, bool)
	Equal(o gowot.Entity) bool
	Hash() uint64
	dataSchema()
}

func rawList(key string) gowot.Field[[]node.Node] {
	return gowot.ListField(key,
		func(n node.Node, _ gowot.PathRef) (node.Node, error) { return n, nil },
		func(n node.Node) node.Node { return n })
}

var (
	dsType         = gowot.RawField("type")
	dsTypes        = TypeTags.Field("@type")
	dsTitle        = gowot.StringField("title")
	dsTitles       = gowot.StringMapField("titles")
	dsDescription  = gowot.StringField("description")
	dsDescriptions = gowot.StringMapField("descriptions")
	dsConst        = gowot.RawField("const")
	dsDefault      = gowot.RawField("default")
	dsEnum         = rawList("enum")
	dsUnit         = gowot.StringField("unit").Lenient()
	dsReadOnly     = gowot.BoolField("readOnly").Lenient()
	dsWriteOnly    = gowot.BoolField("writeOnly").Lenient()
	dsFormat       = gowot.StringField("format")

	// assigned in init: these recurse into DataSchemaFromJSON
	dsOneOf      gowot.Field[[]DataSchema]
	dsProperties gowot.Field[gowot.Map[DataSchema]]
	dsItems      gowot.Field[ArrayItems]
)

func init() {
	dsOneOf = gowot.ListField("oneOf", decodeDataSchema, encodeEntity[DataSchema])
	dsProperties = gowot.MapField("properties",
		func(_ string, n node.Node, at gowot.PathRef) (DataSchema, error) { return decodeDataSchema(n, at) },
		encodeEntity[DataSchema])
	dsItems = gowot.NewField("items", decodeArrayItems, encodeArrayItems)
}

func commonDataSchemaChecks(more ...gowot.Checker) []gowot.Checker {
	return append([]gowot.Checker{
		dsTypes, dsTitle, dsTitles, dsDescription, dsDescriptions, dsConst, dsDefault,
		dsEnum, dsUnit, dsOneOf, dsReadOnly, dsWriteOnly, dsFormat,
	}, more...)
}

func encodeEntity[E gowot.Entity](e E) node.Node { return e.ToJSON() }

func decodeDataSchema(n node.Node, at gowot.PathRef) (DataSchema, error) {
	s, err := DataSchemaFromJSON(n)
	if err != nil {
		return nil, gowot.Nested(at, err)
	}
	return s, nil
}

// typeOf reads the discriminator. Anything but a recognised string is
// untyped.
func typeOf(o *node.Object) DataSchemaType {
	n, ok := o.Get("type")
	if !ok {
		return TypeUntyped
	}
	if s, isStr := n.(node.String); isStr && slices.Contains(knownTypes, DataSchemaType(s)) {
		return DataSchemaType(s)
	}
	gowot.Logger().Debug("unrecognised data schema type, treating as untyped", "kind", n.Kind().String())
	return TypeUntyped
}

// DataSchemaFromJSON dispatches n on its "type" member. A missing or
// unrecognised type yields an UntypedSchema; n must be an object.
func DataSchemaFromJSON(n node.Node) (DataSchema, error) {
	o, err := gowot.AsObject(n, gowot.Root())
	if err != nil {
		return nil, err
	}
	switch typeOf(o) {
	case TypeBoolean:
		return asSchema(BooleanSchemaFromJSON(o))
	case TypeInteger:
		return asSchema(IntegerSchemaFromJSON(o))
	case TypeNumber:
		return asSchema(NumberSchemaFromJSON(o))
	case TypeString:
		return asSchema(StringSchemaFromJSON(o))
	case TypeObject:
		return asSchema(ObjectSchemaFromJSON(o))
	case TypeArray:
		return asSchema(ArraySchemaFromJSON(o))
	case TypeNull:
		return asSchema(NullSchemaFromJSON(o))
	}
	return asSchema(UntypedSchemaFromJSON(o))
}

func asSchema[S DataSchema](s S, err error) (DataSchema, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// checkType validates o as a schema of type want.
func checkType(o *node.Object, want DataSchemaType, fields ...gowot.Checker) error {
	if got := typeOf(o); got != want {
		return gowot.Root().Field("type").Issues(gowot.CodeInvalidEnum, "expected "+string(want),
			"expected", string(want), "actual", string(got))
	}
	return gowot.Validate(o, commonDataSchemaChecks(fields...)...)
}

// dataSchemaBase carries the accessors every data schema shares.
type dataSchemaBase struct{ gowot.Wrapper }

func (s dataSchemaBase) TypeTags() (gowot.Cardinality[TypeTag], bool) { return dsTypes.Lookup(s.ToJSON()) }

func (s dataSchemaBase) Title() (string, bool) { return dsTitle.Lookup(s.ToJSON()) }

func (s dataSchemaBase) Titles() map[string]string {
	v, _ := dsTitles.Lookup(s.ToJSON())
	return v
}

func (s dataSchemaBase) Description() (string, bool) { return dsDescription.Lookup(s.ToJSON()) }

func (s dataSchemaBase) Descriptions() map[string]string {
	v, _ := dsDescriptions.Lookup(s.ToJSON())
	return v
}

func (s dataSchemaBase) Const() (node.Node, bool)   { return dsConst.Lookup(s.ToJSON()) }
func (s dataSchemaBase) Default() (node.Node, bool) { return dsDefault.Lookup(s.ToJSON()) }

func (s dataSchemaBase) Enum() []node.Node {
	v, _ := dsEnum.Lookup(s.ToJSON())
	return v
}

// Unit reads as absent when it is not a string.
func (s dataSchemaBase) Unit() (string, bool) { return dsUnit.Lookup(s.ToJSON()) }

func (s dataSchemaBase) OneOf() []DataSchema {
	v, _ := dsOneOf.Lookup(s.ToJSON())
	return v
}

// ReadOnly reads as absent when it is not a boolean.
func (s dataSchemaBase) ReadOnly() (bool, bool) { return dsReadOnly.Lookup(s.ToJSON()) }

// WriteOnly reads as absent when it is not a boolean.
func (s dataSchemaBase) WriteOnly() (bool, bool) { return dsWriteOnly.Lookup(s.ToJSON()) }

func (s dataSchemaBase) Format() (string, bool) { return dsFormat.Lookup(s.ToJSON()) }

func (dataSchemaBase) dataSchema() {}

// dataSchemaBuilder carries the setters every data schema builder shares.
type dataSchemaBuilder[B any] struct {
	gowot.Builder[B]
}

// newDataSchemaBuilder pins "type" unless typ is TypeUntyped.
func newDataSchemaBuilder[B any](self B, typ DataSchemaType, from *node.Object) dataSchemaBuilder[B] {
	db := dataSchemaBuilder[B]{Builder: gowot.NewBuilder(self, from)}
	if typ != TypeUntyped {
		db.Pin("type", node.String(typ))
	}
	return db
}

func (b *dataSchemaBuilder[B]) SetTypeTags(tags gowot.Cardinality[TypeTag]) B {
	return gowot.SetCardinality(&b.Builder, "@type", TypeTags, tags)
}

func (b *dataSchemaBuilder[B]) SetTitle(s string) B { return gowot.Set(&b.Builder, dsTitle, s) }

// SetTitles writes a multi-language map; nil removes it.
func (b *dataSchemaBuilder[B]) SetTitles(m map[string]string) B {
	return gowot.Set(&b.Builder, dsTitles, m)
}

func (b *dataSchemaBuilder[B]) SetDescription(s string) B {
	return gowot.Set(&b.Builder, dsDescription, s)
}

// SetDescriptions writes a multi-language map; nil removes it.
func (b *dataSchemaBuilder[B]) SetDescriptions(m map[string]string) B {
	return gowot.Set(&b.Builder, dsDescriptions, m)
}

// SetConst writes any value; nil removes it.
func (b *dataSchemaBuilder[B]) SetConst(v node.Node) B { return b.PutValue("const", v) }

// SetDefault writes any value; nil removes it.
func (b *dataSchemaBuilder[B]) SetDefault(v node.Node) B { return b.PutValue("default", v) }

func (b *dataSchemaBuilder[B]) SetEnum(values ...node.Node) B {
	return gowot.Set(&b.Builder, dsEnum, values)
}

func (b *dataSchemaBuilder[B]) SetUnit(unit string) B { return gowot.Set(&b.Builder, dsUnit, unit) }

func (b *dataSchemaBuilder[B]) SetOneOf(schemas ...DataSchema) B {
	return gowot.Set(&b.Builder, dsOneOf, schemas)
}

func (b *dataSchemaBuilder[B]) SetReadOnly(v bool) B { return gowot.Set(&b.Builder, dsReadOnly, v) }

func (b *dataSchemaBuilder[B]) SetWriteOnly(v bool) B { return gowot.Set(&b.Builder, dsWriteOnly, v) }

func (b *dataSchemaBuilder[B]) SetFormat(format string) B {
	return gowot.Set(&b.Builder, dsFormat, format)
}

// ToBuilder returns a builder for the concrete type of s over a copy of its
// document.
func ToBuilder(s DataSchema) DataSchemaBuilder {
	switch x := s.(type) {
	case *BooleanSchema:
		return x.ToBuilder()
	case *IntegerSchema:
		return x.ToBuilder()
	case *NumberSchema:
		return x.ToBuilder()
	case *StringSchema:
		return x.ToBuilder()
	case *ObjectSchema:
		return x.ToBuilder()
	case *ArraySchema:
		return x.ToBuilder()
	case *NullSchema:
		return x.ToBuilder()
	case *UntypedSchema:
		return x.ToBuilder()
	case *PropertyAffordance:
		return x.ToBuilder()
	}
	gowot.Preconditionf("unsupported data schema %T", s)
	return nil
}

// DataSchemaBuilder is implemented by every concrete data schema builder.
type DataSchemaBuilder interface {
	BuildSchema() (DataSchema, error)
}
