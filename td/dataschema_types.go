package td

import (
	"regexp"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

var (
	intMinimum          = gowot.IntField("minimum")
	intMaximum          = gowot.IntField("maximum")
	intExclusiveMinimum = gowot.IntField("exclusiveMinimum")
	intExclusiveMaximum = gowot.IntField("exclusiveMaximum")
	intMultipleOf       = gowot.IntField("multipleOf")

	numMinimum          = gowot.FloatField("minimum")
	numMaximum          = gowot.FloatField("maximum")
	numExclusiveMinimum = gowot.FloatField("exclusiveMinimum")
	numExclusiveMaximum = gowot.FloatField("exclusiveMaximum")
	numMultipleOf       = gowot.FloatField("multipleOf")

	strMinLength        = gowot.IntField("minLength")
	strMaxLength        = gowot.IntField("maxLength")
	strPattern          = gowot.NewField("pattern", decodePattern, func(s string) node.Node { return node.String(s) })
	strContentEncoding  = gowot.StringField("contentEncoding")
	strContentMediaType = gowot.StringField("contentMediaType")

	objRequired = gowot.StringListField("required")

	arrMinItems = gowot.IntField("minItems")
	arrMaxItems = gowot.IntField("maxItems")
)

func decodePattern(n node.Node, at gowot.PathRef) (string, error) {
	s, err := gowot.DecodeString(n, at)
	if err != nil {
		return "", err
	}
	if _, err := regexp.Compile(s); err != nil {
		return "", at.Issues(gowot.CodeInvalidFormat, err.Error(), "actual", s)
	}
	return s, nil
}

// ---- boolean ----

// BooleanSchema is a data schema of "type": "boolean".
type BooleanSchema struct{ dataSchemaBase }

// BooleanSchemaFromJSON requires "type" to be "boolean".
func BooleanSchemaFromJSON(o *node.Object) (*BooleanSchema, error) {
	if err := checkType(o, TypeBoolean); err != nil {
		return nil, err
	}
	return &BooleanSchema{dataSchemaBase{gowot.NewWrapper("BooleanSchema", o)}}, nil
}

func (*BooleanSchema) Type() DataSchemaType { return TypeBoolean }

func (s *BooleanSchema) ToBuilder() *BooleanSchemaBuilder { return newBooleanSchemaBuilder(s.ToJSON()) }

// BooleanSchemaBuilder stages a BooleanSchema. It is single use.
type BooleanSchemaBuilder struct {
	dataSchemaBuilder[*BooleanSchemaBuilder]
}

// NewBooleanSchemaBuilder starts a schema with "type" pinned to "boolean".
func NewBooleanSchemaBuilder() *BooleanSchemaBuilder { return newBooleanSchemaBuilder(nil) }

func newBooleanSchemaBuilder(from *node.Object) *BooleanSchemaBuilder {
	b := &BooleanSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeBoolean, from)
	return b
}

func (b *BooleanSchemaBuilder) Build() (*BooleanSchema, error) { return BooleanSchemaFromJSON(b.Finish()) }

func (b *BooleanSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- integer ----

// IntegerSchema is a data schema of "type": "integer".
type IntegerSchema struct{ dataSchemaBase }

// IntegerSchemaFromJSON requires "type" to be "integer"; bounds must be integers.
func IntegerSchemaFromJSON(o *node.Object) (*IntegerSchema, error) {
	if err := checkType(o, TypeInteger, intMinimum, intMaximum, intExclusiveMinimum, intExclusiveMaximum, intMultipleOf); err != nil {
		return nil, err
	}
	return &IntegerSchema{dataSchemaBase{gowot.NewWrapper("IntegerSchema", o)}}, nil
}

func (*IntegerSchema) Type() DataSchemaType { return TypeInteger }

func (s *IntegerSchema) Minimum() (int64, bool) { return intMinimum.Lookup(s.ToJSON()) }

func (s *IntegerSchema) Maximum() (int64, bool) { return intMaximum.Lookup(s.ToJSON()) }

func (s *IntegerSchema) ExclusiveMinimum() (int64, bool) {
	return intExclusiveMinimum.Lookup(s.ToJSON())
}

func (s *IntegerSchema) ExclusiveMaximum() (int64, bool) {
	return intExclusiveMaximum.Lookup(s.ToJSON())
}

func (s *IntegerSchema) MultipleOf() (int64, bool) { return intMultipleOf.Lookup(s.ToJSON()) }

func (s *IntegerSchema) ToBuilder() *IntegerSchemaBuilder { return newIntegerSchemaBuilder(s.ToJSON()) }

// IntegerSchemaBuilder stages an IntegerSchema. It is single use.
type IntegerSchemaBuilder struct {
	dataSchemaBuilder[*IntegerSchemaBuilder]
}

// NewIntegerSchemaBuilder starts a schema with "type" pinned to "integer".
func NewIntegerSchemaBuilder() *IntegerSchemaBuilder { return newIntegerSchemaBuilder(nil) }

func newIntegerSchemaBuilder(from *node.Object) *IntegerSchemaBuilder {
	b := &IntegerSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeInteger, from)
	return b
}

func (b *IntegerSchemaBuilder) SetMinimum(v int64) *IntegerSchemaBuilder {
	return gowot.Set(&b.Builder, intMinimum, v)
}

func (b *IntegerSchemaBuilder) SetMaximum(v int64) *IntegerSchemaBuilder {
	return gowot.Set(&b.Builder, intMaximum, v)
}

func (b *IntegerSchemaBuilder) SetExclusiveMinimum(v int64) *IntegerSchemaBuilder {
	return gowot.Set(&b.Builder, intExclusiveMinimum, v)
}

func (b *IntegerSchemaBuilder) SetExclusiveMaximum(v int64) *IntegerSchemaBuilder {
	return gowot.Set(&b.Builder, intExclusiveMaximum, v)
}

func (b *IntegerSchemaBuilder) SetMultipleOf(v int64) *IntegerSchemaBuilder {
	return gowot.Set(&b.Builder, intMultipleOf, v)
}

func (b *IntegerSchemaBuilder) Build() (*IntegerSchema, error) { return IntegerSchemaFromJSON(b.Finish()) }

func (b *IntegerSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- number ----

// NumberSchema is a data schema of "type": "number".
type NumberSchema struct{ dataSchemaBase }

// NumberSchemaFromJSON requires "type" to be "number".
func NumberSchemaFromJSON(o *node.Object) (*NumberSchema, error) {
	if err := checkType(o, TypeNumber, numMinimum, numMaximum, numExclusiveMinimum, numExclusiveMaximum, numMultipleOf); err != nil {
		return nil, err
	}
	return &NumberSchema{dataSchemaBase{gowot.NewWrapper("NumberSchema", o)}}, nil
}

func (*NumberSchema) Type() DataSchemaType { return TypeNumber }

func (s *NumberSchema) Minimum() (float64, bool) { return numMinimum.Lookup(s.ToJSON()) }

func (s *NumberSchema) Maximum() (float64, bool) { return numMaximum.Lookup(s.ToJSON()) }

func (s *NumberSchema) ExclusiveMinimum() (float64, bool) {
	return numExclusiveMinimum.Lookup(s.ToJSON())
}

func (s *NumberSchema) ExclusiveMaximum() (float64, bool) {
	return numExclusiveMaximum.Lookup(s.ToJSON())
}

func (s *NumberSchema) MultipleOf() (float64, bool) { return numMultipleOf.Lookup(s.ToJSON()) }

func (s *NumberSchema) ToBuilder() *NumberSchemaBuilder { return newNumberSchemaBuilder(s.ToJSON()) }

// NumberSchemaBuilder stages a NumberSchema. It is single use.
type NumberSchemaBuilder struct {
	dataSchemaBuilder[*NumberSchemaBuilder]
}

// NewNumberSchemaBuilder starts a schema with "type" pinned to "number".
func NewNumberSchemaBuilder() *NumberSchemaBuilder { return newNumberSchemaBuilder(nil) }

func newNumberSchemaBuilder(from *node.Object) *NumberSchemaBuilder {
	b := &NumberSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeNumber, from)
	return b
}

func (b *NumberSchemaBuilder) SetMinimum(v float64) *NumberSchemaBuilder {
	return gowot.Set(&b.Builder, numMinimum, v)
}

func (b *NumberSchemaBuilder) SetMaximum(v float64) *NumberSchemaBuilder {
	return gowot.Set(&b.Builder, numMaximum, v)
}

func (b *NumberSchemaBuilder) SetExclusiveMinimum(v float64) *NumberSchemaBuilder {
	return gowot.Set(&b.Builder, numExclusiveMinimum, v)
}

func (b *NumberSchemaBuilder) SetExclusiveMaximum(v float64) *NumberSchemaBuilder {
	return gowot.Set(&b.Builder, numExclusiveMaximum, v)
}

func (b *NumberSchemaBuilder) SetMultipleOf(v float64) *NumberSchemaBuilder {
	return gowot.Set(&b.Builder, numMultipleOf, v)
}

func (b *NumberSchemaBuilder) Build() (*NumberSchema, error) { return NumberSchemaFromJSON(b.Finish()) }

func (b *NumberSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- string ----

// StringSchema is a data schema of "type": "string".
type StringSchema struct{ dataSchemaBase }

// StringSchemaFromJSON rejects a pattern that does not compile as a regular
// expression.
func StringSchemaFromJSON(o *node.Object) (*StringSchema, error) {
	if err := checkType(o, TypeString, strMinLength, strMaxLength, strPattern, strContentEncoding, strContentMediaType); err != nil {
		return nil, err
	}
	return &StringSchema{dataSchemaBase{gowot.NewWrapper("StringSchema", o)}}, nil
}

func (*StringSchema) Type() DataSchemaType { return TypeString }

func (s *StringSchema) MinLength() (int64, bool) { return strMinLength.Lookup(s.ToJSON()) }

func (s *StringSchema) MaxLength() (int64, bool) { return strMaxLength.Lookup(s.ToJSON()) }

func (s *StringSchema) Pattern() (string, bool) { return strPattern.Lookup(s.ToJSON()) }

func (s *StringSchema) ContentEncoding() (string, bool) {
	return strContentEncoding.Lookup(s.ToJSON())
}

func (s *StringSchema) ContentMediaType() (string, bool) {
	return strContentMediaType.Lookup(s.ToJSON())
}

func (s *StringSchema) ToBuilder() *StringSchemaBuilder { return newStringSchemaBuilder(s.ToJSON()) }

// StringSchemaBuilder stages a StringSchema. It is single use.
type StringSchemaBuilder struct {
	dataSchemaBuilder[*StringSchemaBuilder]
}

// NewStringSchemaBuilder starts a schema with "type" pinned to "string".
func NewStringSchemaBuilder() *StringSchemaBuilder { return newStringSchemaBuilder(nil) }

func newStringSchemaBuilder(from *node.Object) *StringSchemaBuilder {
	b := &StringSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeString, from)
	return b
}

func (b *StringSchemaBuilder) SetMinLength(v int64) *StringSchemaBuilder {
	return gowot.Set(&b.Builder, strMinLength, v)
}

func (b *StringSchemaBuilder) SetMaxLength(v int64) *StringSchemaBuilder {
	return gowot.Set(&b.Builder, strMaxLength, v)
}

func (b *StringSchemaBuilder) SetPattern(p string) *StringSchemaBuilder {
	return gowot.Set(&b.Builder, strPattern, p)
}

func (b *StringSchemaBuilder) SetContentEncoding(enc string) *StringSchemaBuilder {
	return gowot.Set(&b.Builder, strContentEncoding, enc)
}

func (b *StringSchemaBuilder) SetContentMediaType(mt string) *StringSchemaBuilder {
	return gowot.Set(&b.Builder, strContentMediaType, mt)
}

func (b *StringSchemaBuilder) Build() (*StringSchema, error) { return StringSchemaFromJSON(b.Finish()) }

func (b *StringSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- object ----

// ObjectSchema is a data schema of "type": "object".
type ObjectSchema struct{ dataSchemaBase }

// ObjectSchemaFromJSON dispatches every entry of properties independently.
func ObjectSchemaFromJSON(o *node.Object) (*ObjectSchema, error) {
	if err := checkType(o, TypeObject, dsProperties, objRequired); err != nil {
		return nil, err
	}
	return &ObjectSchema{dataSchemaBase{gowot.NewWrapper("ObjectSchema", o)}}, nil
}

func (*ObjectSchema) Type() DataSchemaType { return TypeObject }

// Properties returns the property schemas in document order.
func (s *ObjectSchema) Properties() gowot.Map[DataSchema] {
	v, _ := dsProperties.Lookup(s.ToJSON())
	return v
}

// Required returns the required property names in document order.
func (s *ObjectSchema) Required() []string {
	v, _ := objRequired.Lookup(s.ToJSON())
	return v
}

func (s *ObjectSchema) ToBuilder() *ObjectSchemaBuilder { return newObjectSchemaBuilder(s.ToJSON()) }

// ObjectSchemaBuilder stages an ObjectSchema. It is single use.
type ObjectSchemaBuilder struct {
	dataSchemaBuilder[*ObjectSchemaBuilder]
}

// NewObjectSchemaBuilder starts a schema with "type" pinned to "object".
func NewObjectSchemaBuilder() *ObjectSchemaBuilder { return newObjectSchemaBuilder(nil) }

func newObjectSchemaBuilder(from *node.Object) *ObjectSchemaBuilder {
	b := &ObjectSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeObject, from)
	return b
}

// SetProperty adds or replaces one property schema; nil removes it.
func (b *ObjectSchemaBuilder) SetProperty(name string, s DataSchema) *ObjectSchemaBuilder {
	return putEntry(&b.Builder, "properties", name, entityNode(s))
}

// SetProperties replaces every property schema, keeping the order of props.
func (b *ObjectSchemaBuilder) SetProperties(props gowot.Map[DataSchema]) *ObjectSchemaBuilder {
	return gowot.Set(&b.Builder, dsProperties, props)
}

func (b *ObjectSchemaBuilder) SetRequired(names ...string) *ObjectSchemaBuilder {
	return gowot.Set(&b.Builder, objRequired, names)
}

func (b *ObjectSchemaBuilder) Build() (*ObjectSchema, error) { return ObjectSchemaFromJSON(b.Finish()) }

func (b *ObjectSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- array ----

// ArraySchema is a data schema of "type": "array".
type ArraySchema struct{ dataSchemaBase }

// ArraySchemaFromJSON requires "type" to be "array" and re-dispatches "items".
func ArraySchemaFromJSON(o *node.Object) (*ArraySchema, error) {
	if err := checkType(o, TypeArray, dsItems, arrMinItems, arrMaxItems); err != nil {
		return nil, err
	}
	return &ArraySchema{dataSchemaBase{gowot.NewWrapper("ArraySchema", o)}}, nil
}

func (*ArraySchema) Type() DataSchemaType { return TypeArray }

// Items returns the element schema or the positional tuple schemas.
func (s *ArraySchema) Items() (ArrayItems, bool) { return dsItems.Lookup(s.ToJSON()) }

func (s *ArraySchema) MinItems() (int64, bool) { return arrMinItems.Lookup(s.ToJSON()) }

func (s *ArraySchema) MaxItems() (int64, bool) { return arrMaxItems.Lookup(s.ToJSON()) }

func (s *ArraySchema) ToBuilder() *ArraySchemaBuilder { return newArraySchemaBuilder(s.ToJSON()) }

// ArraySchemaBuilder stages an ArraySchema. It is single use.
type ArraySchemaBuilder struct {
	dataSchemaBuilder[*ArraySchemaBuilder]
}

// NewArraySchemaBuilder starts a schema with "type" pinned to "array".
func NewArraySchemaBuilder() *ArraySchemaBuilder { return newArraySchemaBuilder(nil) }

func newArraySchemaBuilder(from *node.Object) *ArraySchemaBuilder {
	b := &ArraySchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeArray, from)
	return b
}

// SetItems writes SingleItems or TupleItems; nil removes them.
func (b *ArraySchemaBuilder) SetItems(items ArrayItems) *ArraySchemaBuilder {
	return b.PutValue("items", encodeArrayItems(items))
}

func (b *ArraySchemaBuilder) SetMinItems(v int64) *ArraySchemaBuilder {
	return gowot.Set(&b.Builder, arrMinItems, v)
}

func (b *ArraySchemaBuilder) SetMaxItems(v int64) *ArraySchemaBuilder {
	return gowot.Set(&b.Builder, arrMaxItems, v)
}

func (b *ArraySchemaBuilder) Build() (*ArraySchema, error) { return ArraySchemaFromJSON(b.Finish()) }

func (b *ArraySchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- null ----

// NullSchema is a data schema of "type": "null".
type NullSchema struct{ dataSchemaBase }

// NullSchemaFromJSON requires "type" to be "null".
func NullSchemaFromJSON(o *node.Object) (*NullSchema, error) {
	if err := checkType(o, TypeNull); err != nil {
		return nil, err
	}
	return &NullSchema{dataSchemaBase{gowot.NewWrapper("NullSchema", o)}}, nil
}

func (*NullSchema) Type() DataSchemaType { return TypeNull }

func (s *NullSchema) ToBuilder() *NullSchemaBuilder { return newNullSchemaBuilder(s.ToJSON()) }

// NullSchemaBuilder stages a NullSchema. It is single use.
type NullSchemaBuilder struct {
	dataSchemaBuilder[*NullSchemaBuilder]
}

// NewNullSchemaBuilder starts a schema with "type" pinned to "null".
func NewNullSchemaBuilder() *NullSchemaBuilder { return newNullSchemaBuilder(nil) }

func newNullSchemaBuilder(from *node.Object) *NullSchemaBuilder {
	b := &NullSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeNull, from)
	return b
}

func (b *NullSchemaBuilder) Build() (*NullSchema, error) { return NullSchemaFromJSON(b.Finish()) }

func (b *NullSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- untyped ----

// UntypedSchema carries only descriptive metadata and no recognised type.
type UntypedSchema struct{ dataSchemaBase }

// UntypedSchemaFromJSON accepts a schema without a recognised "type".
func UntypedSchemaFromJSON(o *node.Object) (*UntypedSchema, error) {
	if err := checkType(o, TypeUntyped); err != nil {
		return nil, err
	}
	return &UntypedSchema{dataSchemaBase{gowot.NewWrapper("UntypedSchema", o)}}, nil
}

func (*UntypedSchema) Type() DataSchemaType { return TypeUntyped }

// RawType returns the unrecognised "type" member, if any.
func (s *UntypedSchema) RawType() (node.Node, bool) { return dsType.Lookup(s.ToJSON()) }

func (s *UntypedSchema) ToBuilder() *UntypedSchemaBuilder { return newUntypedSchemaBuilder(s.ToJSON()) }

// UntypedSchemaBuilder stages an UntypedSchema. It is single use.
type UntypedSchemaBuilder struct {
	dataSchemaBuilder[*UntypedSchemaBuilder]
}

// NewUntypedSchemaBuilder starts a schema that never writes "type".
func NewUntypedSchemaBuilder() *UntypedSchemaBuilder { return newUntypedSchemaBuilder(nil) }

func newUntypedSchemaBuilder(from *node.Object) *UntypedSchemaBuilder {
	b := &UntypedSchemaBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeUntyped, from)
	return b
}

func (b *UntypedSchemaBuilder) Build() (*UntypedSchema, error) { return UntypedSchemaFromJSON(b.Finish()) }

func (b *UntypedSchemaBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }
