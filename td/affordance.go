package td

import (
	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

func schemaField(key string) gowot.Field[DataSchema] {
	return gowot.NewField(key, decodeDataSchema, encodeEntity[DataSchema])
}

func schemaMapField(key string) gowot.Field[gowot.Map[DataSchema]] {
	return gowot.MapField(key,
		func(_ string, n node.Node, at gowot.PathRef) (DataSchema, error) { return decodeDataSchema(n, at) },
		encodeEntity[DataSchema])
}

var (
	affTypes        = TypeTags.Field("@type")
	affTitle        = gowot.StringField("title")
	affTitles       = gowot.StringMapField("titles")
	affDescription  = gowot.StringField("description")
	affDescriptions = gowot.StringMapField("descriptions")
	affURIVariables = schemaMapField("uriVariables")

	propObservable = gowot.BoolField("observable").Lenient()
	propForms      = formsField[PropertyOp]()

	actInput       = schemaField("input")
	actOutput      = schemaField("output")
	actSafe        = gowot.BoolField("safe").Lenient()
	actIdempotent  = gowot.BoolField("idempotent").Lenient()
	actSynchronous = gowot.BoolField("synchronous").Lenient()
	actForms       = formsField[ActionOp]()

	evtSubscription = schemaField("subscription")
	evtData         = schemaField("data")
	evtDataResponse = schemaField("dataResponse")
	evtCancellation = schemaField("cancellation")
	evtForms        = formsField[EventOp]()

	affordanceChecks = []gowot.Checker{affTypes, affTitle, affTitles, affDescription, affDescriptions, affURIVariables}
)

// affordanceBase carries the accessors shared by actions and events.
// Properties get the same members through their data schema.
type affordanceBase struct{ gowot.Wrapper }

func (a affordanceBase) TypeTags() (gowot.Cardinality[TypeTag], bool) { return affTypes.Lookup(a.ToJSON()) }

func (a affordanceBase) Title() (string, bool) { return affTitle.Lookup(a.ToJSON()) }

func (a affordanceBase) Titles() map[string]string {
	v, _ := affTitles.Lookup(a.ToJSON())
	return v
}

func (a affordanceBase) Description() (string, bool) { return affDescription.Lookup(a.ToJSON()) }

func (a affordanceBase) Descriptions() map[string]string {
	v, _ := affDescriptions.Lookup(a.ToJSON())
	return v
}

func (a affordanceBase) URIVariables() gowot.Map[DataSchema] {
	v, _ := affURIVariables.Lookup(a.ToJSON())
	return v
}

type affordanceBuilder[B any] struct {
	gowot.Builder[B]
}

func (b *affordanceBuilder[B]) SetTypeTags(tags gowot.Cardinality[TypeTag]) B {
	return gowot.SetCardinality(&b.Builder, "@type", TypeTags, tags)
}

func (b *affordanceBuilder[B]) SetTitle(s string) B { return gowot.Set(&b.Builder, affTitle, s) }

func (b *affordanceBuilder[B]) SetTitles(m map[string]string) B {
	return gowot.Set(&b.Builder, affTitles, m)
}

func (b *affordanceBuilder[B]) SetDescription(s string) B {
	return gowot.Set(&b.Builder, affDescription, s)
}

func (b *affordanceBuilder[B]) SetDescriptions(m map[string]string) B {
	return gowot.Set(&b.Builder, affDescriptions, m)
}

// SetURIVariable adds or replaces one URI template variable; nil removes it.
func (b *affordanceBuilder[B]) SetURIVariable(name string, s DataSchema) B {
	return putEntry(&b.Builder, "uriVariables", name, entityNode(s))
}

// ---- property ----

// PropertyAffordance is a data schema with forms. Its schema members live
// directly in the property object.
type PropertyAffordance struct {
	dataSchemaBase
}

// PropertyAffordanceFromJSON validates o as a property: its data schema members plus the affordance fields.
func PropertyAffordanceFromJSON(o *node.Object) (*PropertyAffordance, error) {
	var iss gowot.Issues
	if _, err := DataSchemaFromJSON(o); err != nil {
		iss = append(iss, gowot.ToIssues(err)...)
	}
	iss = append(iss, gowot.ToIssues(gowot.Validate(o, affURIVariables, propObservable, propForms))...)
	if err := iss.Err(); err != nil {
		return nil, err
	}
	return &PropertyAffordance{dataSchemaBase{gowot.NewWrapper("PropertyAffordance", o)}}, nil
}

// Schema re-dispatches the property object as a data schema.
func (p *PropertyAffordance) Schema() DataSchema {
	s, err := DataSchemaFromJSON(p.ToJSON())
	if err != nil {
		// validated on construction
		panic(err)
	}
	return s
}

// Type is the type of the property's schema.
func (p *PropertyAffordance) Type() DataSchemaType { return typeOf(p.ToJSON()) }

// Observable reads as absent when it is not a boolean.
func (p *PropertyAffordance) Observable() (bool, bool) { return propObservable.Lookup(p.ToJSON()) }

func (p *PropertyAffordance) Forms() []*PropertyForm {
	v, _ := propForms.Lookup(p.ToJSON())
	return v
}

func (p *PropertyAffordance) URIVariables() gowot.Map[DataSchema] {
	v, _ := affURIVariables.Lookup(p.ToJSON())
	return v
}

func (p *PropertyAffordance) ToBuilder() *PropertyAffordanceBuilder {
	return newPropertyAffordanceBuilder(p.ToJSON())
}

// PropertyAffordanceBuilder stages a PropertyAffordance. It is single use.
type PropertyAffordanceBuilder struct {
	dataSchemaBuilder[*PropertyAffordanceBuilder]
}

// NewPropertyAffordanceBuilder starts from the members of schema; nil starts
// from an untyped property.
func NewPropertyAffordanceBuilder(schema DataSchema) *PropertyAffordanceBuilder {
	if gowot.IsNil(schema) {
		return newPropertyAffordanceBuilder(nil)
	}
	return newPropertyAffordanceBuilder(schema.ToJSON())
}

func newPropertyAffordanceBuilder(from *node.Object) *PropertyAffordanceBuilder {
	b := &PropertyAffordanceBuilder{}
	b.dataSchemaBuilder = newDataSchemaBuilder(b, TypeUntyped, from)
	return b
}

// SetSchema copies every member of schema into the property, replacing
// members with the same name.
func (b *PropertyAffordanceBuilder) SetSchema(schema DataSchema) *PropertyAffordanceBuilder {
	for k, v := range schema.ToJSON().All() {
		b.PutValue(k, v)
	}
	return b
}

func (b *PropertyAffordanceBuilder) SetObservable(v bool) *PropertyAffordanceBuilder {
	return gowot.Set(&b.Builder, propObservable, v)
}

func (b *PropertyAffordanceBuilder) SetForms(forms ...*PropertyForm) *PropertyAffordanceBuilder {
	return gowot.Set(&b.Builder, propForms, forms)
}

func (b *PropertyAffordanceBuilder) AddForm(f *PropertyForm) *PropertyAffordanceBuilder {
	return appendItem(&b.Builder, "forms", f.ToJSON())
}

func (b *PropertyAffordanceBuilder) SetURIVariable(name string, s DataSchema) *PropertyAffordanceBuilder {
	return putEntry(&b.Builder, "uriVariables", name, entityNode(s))
}

func (b *PropertyAffordanceBuilder) Build() (*PropertyAffordance, error) {
	return PropertyAffordanceFromJSON(b.Finish())
}

func (b *PropertyAffordanceBuilder) BuildSchema() (DataSchema, error) { return asSchema(b.Build()) }

// ---- action ----

// ActionAffordance is a function of a Thing; input and output are data schemas.
type ActionAffordance struct{ affordanceBase }

// ActionAffordanceFromJSON validates o as an action affordance.
func ActionAffordanceFromJSON(o *node.Object) (*ActionAffordance, error) {
	checks := append(append([]gowot.Checker{}, affordanceChecks...),
		actInput, actOutput, actSafe, actIdempotent, actSynchronous, actForms)
	if err := gowot.Validate(o, checks...); err != nil {
		return nil, err
	}
	return &ActionAffordance{affordanceBase{gowot.NewWrapper("ActionAffordance", o)}}, nil
}

func (a *ActionAffordance) Input() (DataSchema, bool)  { return actInput.Lookup(a.ToJSON()) }
func (a *ActionAffordance) Output() (DataSchema, bool) { return actOutput.Lookup(a.ToJSON()) }

// Safe reads as absent when it is not a boolean; so do Idempotent and
// Synchronous.
func (a *ActionAffordance) Safe() (bool, bool)        { return actSafe.Lookup(a.ToJSON()) }
func (a *ActionAffordance) Idempotent() (bool, bool)  { return actIdempotent.Lookup(a.ToJSON()) }
func (a *ActionAffordance) Synchronous() (bool, bool) { return actSynchronous.Lookup(a.ToJSON()) }

func (a *ActionAffordance) Forms() []*ActionForm {
	v, _ := actForms.Lookup(a.ToJSON())
	return v
}

func (a *ActionAffordance) ToBuilder() *ActionAffordanceBuilder {
	return newActionAffordanceBuilder(a.ToJSON())
}

// ActionAffordanceBuilder stages an ActionAffordance. It is single use.
type ActionAffordanceBuilder struct {
	affordanceBuilder[*ActionAffordanceBuilder]
}

// NewActionAffordanceBuilder starts an empty action.
func NewActionAffordanceBuilder() *ActionAffordanceBuilder { return newActionAffordanceBuilder(nil) }

func newActionAffordanceBuilder(from *node.Object) *ActionAffordanceBuilder {
	b := &ActionAffordanceBuilder{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

func (b *ActionAffordanceBuilder) SetInput(s DataSchema) *ActionAffordanceBuilder {
	return b.PutValue("input", entityNode(s))
}

func (b *ActionAffordanceBuilder) SetOutput(s DataSchema) *ActionAffordanceBuilder {
	return b.PutValue("output", entityNode(s))
}

func (b *ActionAffordanceBuilder) SetSafe(v bool) *ActionAffordanceBuilder {
	return gowot.Set(&b.Builder, actSafe, v)
}

func (b *ActionAffordanceBuilder) SetIdempotent(v bool) *ActionAffordanceBuilder {
	return gowot.Set(&b.Builder, actIdempotent, v)
}

func (b *ActionAffordanceBuilder) SetSynchronous(v bool) *ActionAffordanceBuilder {
	return gowot.Set(&b.Builder, actSynchronous, v)
}

func (b *ActionAffordanceBuilder) SetForms(forms ...*ActionForm) *ActionAffordanceBuilder {
	return gowot.Set(&b.Builder, actForms, forms)
}

func (b *ActionAffordanceBuilder) AddForm(f *ActionForm) *ActionAffordanceBuilder {
	return appendItem(&b.Builder, "forms", f.ToJSON())
}

func (b *ActionAffordanceBuilder) Build() (*ActionAffordance, error) {
	return ActionAffordanceFromJSON(b.Finish())
}

// ---- event ----

// EventAffordance is an event source of a Thing.
type EventAffordance struct{ affordanceBase }

// EventAffordanceFromJSON validates o as an event affordance.
func EventAffordanceFromJSON(o *node.Object) (*EventAffordance, error) {
	checks := append(append([]gowot.Checker{}, affordanceChecks...),
		evtSubscription, evtData, evtDataResponse, evtCancellation, evtForms)
	if err := gowot.Validate(o, checks...); err != nil {
		return nil, err
	}
	return &EventAffordance{affordanceBase{gowot.NewWrapper("EventAffordance", o)}}, nil
}

func (e *EventAffordance) Subscription() (DataSchema, bool) {
	return evtSubscription.Lookup(e.ToJSON())
}

func (e *EventAffordance) Data() (DataSchema, bool) { return evtData.Lookup(e.ToJSON()) }

func (e *EventAffordance) DataResponse() (DataSchema, bool) {
	return evtDataResponse.Lookup(e.ToJSON())
}

func (e *EventAffordance) Cancellation() (DataSchema, bool) {
	return evtCancellation.Lookup(e.ToJSON())
}

func (e *EventAffordance) Forms() []*EventForm {
	v, _ := evtForms.Lookup(e.ToJSON())
	return v
}

func (e *EventAffordance) ToBuilder() *EventAffordanceBuilder {
	return newEventAffordanceBuilder(e.ToJSON())
}

// EventAffordanceBuilder stages an EventAffordance. It is single use.
type EventAffordanceBuilder struct {
	affordanceBuilder[*EventAffordanceBuilder]
}

// NewEventAffordanceBuilder starts an empty event.
func NewEventAffordanceBuilder() *EventAffordanceBuilder { return newEventAffordanceBuilder(nil) }

func newEventAffordanceBuilder(from *node.Object) *EventAffordanceBuilder {
	b := &EventAffordanceBuilder{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

func (b *EventAffordanceBuilder) SetSubscription(s DataSchema) *EventAffordanceBuilder {
	return b.PutValue("subscription", entityNode(s))
}

func (b *EventAffordanceBuilder) SetData(s DataSchema) *EventAffordanceBuilder {
	return b.PutValue("data", entityNode(s))
}

func (b *EventAffordanceBuilder) SetDataResponse(s DataSchema) *EventAffordanceBuilder {
	return b.PutValue("dataResponse", entityNode(s))
}

func (b *EventAffordanceBuilder) SetCancellation(s DataSchema) *EventAffordanceBuilder {
	return b.PutValue("cancellation", entityNode(s))
}

func (b *EventAffordanceBuilder) SetForms(forms ...*EventForm) *EventAffordanceBuilder {
	return gowot.Set(&b.Builder, evtForms, forms)
}

func (b *EventAffordanceBuilder) AddForm(f *EventForm) *EventAffordanceBuilder {
	return appendItem(&b.Builder, "forms", f.ToJSON())
}

func (b *EventAffordanceBuilder) Build() (*EventAffordance, error) {
	return EventAffordanceFromJSON(b.Finish())
}
