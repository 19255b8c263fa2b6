package td

import (
	"slices"
	"time"

	"github.com/google/uuid"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/codec"
	"github.com/reoring/gowot/node"
)

// Context is the default "@context" written by new builders.
const Context = "https://www.w3.org/2022/wot/td/v1.1"

// ThingModelTag marks a document as a Thing Model.
const ThingModelTag TypeTag = "tm:ThingModel"

func affordanceMapField[A gowot.Entity](key string, from func(*node.Object) (A, error)) gowot.Field[gowot.Map[A]] {
	dec := func(_ string, n node.Node, at gowot.PathRef) (A, error) {
		var zero A
		o, err := gowot.AsObject(n, at)
		if err != nil {
			return zero, err
		}
		a, err := from(o)
		if err != nil {
			return zero, gowot.Nested(at, err)
		}
		return a, nil
	}
	return gowot.MapField(key, dec, encodeEntity[A])
}

var (
	thContext      = gowot.RawField("@context")
	thTypes        = TypeTags.Field("@type")
	thID           = gowot.StringField("id")
	thTitle        = gowot.StringField("title")
	thTitles       = gowot.StringMapField("titles")
	thDescription  = gowot.StringField("description")
	thDescriptions = gowot.StringMapField("descriptions")
	thVersion      = gowot.EntityField("version", VersionInfoFromJSON)
	thCreated      = gowot.CodecField("created", codec.TimeRFC3339())
	thModified     = gowot.CodecField("modified", codec.TimeRFC3339())
	thSupport      = gowot.StringField("support")
	thBase         = gowot.StringField("base")
	thProperties   = affordanceMapField("properties", PropertyAffordanceFromJSON)
	thActions      = affordanceMapField("actions", ActionAffordanceFromJSON)
	thEvents       = affordanceMapField("events", EventAffordanceFromJSON)
	thLinks        = gowot.ListField("links", decodeLink, encodeEntity[*Link])
	thForms        = formsField[ThingOp]()
	thSecurity     = SecurityRefs.Field("security")
	thSecurityDefs = gowot.MapField("securityDefinitions", decodeSecurityDefinition, encodeEntity[SecurityScheme])
	thProfile      = Profiles.Field("profile")
	thSchemaDefs   = schemaMapField("schemaDefinitions")
	thURIVariables = schemaMapField("uriVariables")

	tmOptional = gowot.StringListField("tm:optional")

	thingChecks = []gowot.Checker{
		thContext, thTypes, thID, thTitle, thTitles, thDescription, thDescriptions, thVersion,
		thCreated, thModified, thSupport, thBase, thProperties, thActions, thEvents, thLinks,
		thForms, thSecurity, thSecurityDefs, thProfile, thSchemaDefs, thURIVariables,
	}
)

func decodeSecurityDefinition(name string, n node.Node, at gowot.PathRef) (SecurityScheme, error) {
	s, err := SecuritySchemeFromJSON(name, n)
	if err != nil {
		return nil, gowot.Nested(at, err)
	}
	return s, nil
}

// Thing is implemented by ThingDescription and ThingModel.
type Thing interface {
	gowot.Entity
	ID() (string, bool)
	Title() (string, bool)
	Properties() gowot.Map[*PropertyAffordance]
	Actions() gowot.Map[*ActionAffordance]
	Events() gowot.Map[*EventAffordance]
	SecurityDefinitions() gowot.Map[SecurityScheme]
	IsThingModel() bool
}

// thingBase carries the skeleton shared by Thing Descriptions and Thing
// Models.
type thingBase struct{ gowot.Wrapper }

// Context returns "@context" undecoded.
func (t thingBase) Context() (node.Node, bool) { return thContext.Lookup(t.ToJSON()) }

func (t thingBase) TypeTags() (gowot.Cardinality[TypeTag], bool) { return thTypes.Lookup(t.ToJSON()) }

func (t thingBase) ID() (string, bool) { return thID.Lookup(t.ToJSON()) }

func (t thingBase) Title() (string, bool) { return thTitle.Lookup(t.ToJSON()) }

func (t thingBase) Titles() map[string]string {
	v, _ := thTitles.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Description() (string, bool) { return thDescription.Lookup(t.ToJSON()) }

func (t thingBase) Descriptions() map[string]string {
	v, _ := thDescriptions.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Version() (*VersionInfo, bool) { return thVersion.Lookup(t.ToJSON()) }

func (t thingBase) Created() (time.Time, bool) { return thCreated.Lookup(t.ToJSON()) }

func (t thingBase) Modified() (time.Time, bool) { return thModified.Lookup(t.ToJSON()) }

func (t thingBase) Support() (string, bool) { return thSupport.Lookup(t.ToJSON()) }

// BaseURI returns "base", the URI that relative hrefs resolve against.
func (t thingBase) BaseURI() (string, bool) { return thBase.Lookup(t.ToJSON()) }

func (t thingBase) Properties() gowot.Map[*PropertyAffordance] {
	v, _ := thProperties.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Actions() gowot.Map[*ActionAffordance] {
	v, _ := thActions.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Events() gowot.Map[*EventAffordance] {
	v, _ := thEvents.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Links() []*Link {
	v, _ := thLinks.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Forms() []*ThingForm {
	v, _ := thForms.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Security() (gowot.Cardinality[SecurityRef], bool) {
	return thSecurity.Lookup(t.ToJSON())
}

// SecurityDefinitions returns the named schemes; each scheme's Name is its
// key.
func (t thingBase) SecurityDefinitions() gowot.Map[SecurityScheme] {
	v, _ := thSecurityDefs.Lookup(t.ToJSON())
	return v
}

func (t thingBase) Profile() (gowot.Cardinality[Profile], bool) { return thProfile.Lookup(t.ToJSON()) }

func (t thingBase) SchemaDefinitions() gowot.Map[DataSchema] {
	v, _ := thSchemaDefs.Lookup(t.ToJSON())
	return v
}

func (t thingBase) URIVariables() gowot.Map[DataSchema] {
	v, _ := thURIVariables.Lookup(t.ToJSON())
	return v
}

// IsThingModel reports whether "@type" carries tm:ThingModel.
func (t thingBase) IsThingModel() bool {
	tags, ok := t.TypeTags()
	return ok && gowot.Contains(tags, ThingModelTag)
}

// ---- Thing Description ----

// ThingDescription describes one concrete Thing.
type ThingDescription struct{ thingBase }

// ThingDescriptionFromJSON validates every modelled member of n.
func ThingDescriptionFromJSON(n node.Node) (*ThingDescription, error) {
	o, err := gowot.AsObject(n, gowot.Root())
	if err != nil {
		return nil, err
	}
	if err := gowot.Validate(o, thingChecks...); err != nil {
		return nil, err
	}
	return &ThingDescription{thingBase{gowot.NewWrapper("ThingDescription", o)}}, nil
}

// ParseThingDescription parses a JSON document.
func ParseThingDescription(data []byte, opts ...node.ParseOption) (*ThingDescription, error) {
	n, err := node.ParseJSON(data, opts...)
	if err != nil {
		return nil, gowot.ToIssues(err)
	}
	return ThingDescriptionFromJSON(n)
}

// ParseThingDescriptionYAML parses a YAML document.
func ParseThingDescriptionYAML(data []byte, opts ...node.ParseOption) (*ThingDescription, error) {
	n, err := node.ParseYAML(data, opts...)
	if err != nil {
		return nil, gowot.ToIssues(err)
	}
	return ThingDescriptionFromJSON(n)
}

func (t *ThingDescription) ToBuilder() *ThingDescriptionBuilder {
	return newThingDescriptionBuilder(t.ToJSON())
}

// ---- Thing Model ----

// ThingModel is a template from which Thing Descriptions are derived.
type ThingModel struct{ thingBase }

// ThingModelFromJSON validates every modelled member of n.
func ThingModelFromJSON(n node.Node) (*ThingModel, error) {
	o, err := gowot.AsObject(n, gowot.Root())
	if err != nil {
		return nil, err
	}
	if err := gowot.Validate(o, append(slices.Clone(thingChecks), tmOptional)...); err != nil {
		return nil, err
	}
	return &ThingModel{thingBase{gowot.NewWrapper("ThingModel", o)}}, nil
}

// ParseThingModel parses a JSON document.
func ParseThingModel(data []byte, opts ...node.ParseOption) (*ThingModel, error) {
	n, err := node.ParseJSON(data, opts...)
	if err != nil {
		return nil, gowot.ToIssues(err)
	}
	return ThingModelFromJSON(n)
}

// ParseThingModelYAML parses a YAML document.
func ParseThingModelYAML(data []byte, opts ...node.ParseOption) (*ThingModel, error) {
	n, err := node.ParseYAML(data, opts...)
	if err != nil {
		return nil, gowot.ToIssues(err)
	}
	return ThingModelFromJSON(n)
}

// Optional returns the JSON Pointers listed in tm:optional.
func (t *ThingModel) Optional() []string {
	v, _ := tmOptional.Lookup(t.ToJSON())
	return v
}

func (t *ThingModel) ToBuilder() *ThingModelBuilder { return newThingModelBuilder(t.ToJSON()) }

// ThingFromJSON returns a ThingModel when "@type" carries tm:ThingModel and
// a ThingDescription otherwise.
func ThingFromJSON(n node.Node) (Thing, error) {
	o, err := gowot.AsObject(n, gowot.Root())
	if err != nil {
		return nil, err
	}
	if (thingBase{gowot.NewWrapper("", o)}).IsThingModel() {
		return asThing(ThingModelFromJSON(o))
	}
	return asThing(ThingDescriptionFromJSON(o))
}

func asThing[T Thing](t T, err error) (Thing, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

// NewThingID returns a fresh urn:uuid identifier.
func NewThingID() string { return uuid.New().URN() }

// ---- builders ----

type thingBuilder[B any] struct {
	gowot.Builder[B]
}

// SetContext writes "@context" as given; nil removes it.
func (b *thingBuilder[B]) SetContext(ctx node.Node) B { return b.PutValue("@context", ctx) }

func (b *thingBuilder[B]) SetTypeTags(tags gowot.Cardinality[TypeTag]) B {
	return gowot.SetCardinality(&b.Builder, "@type", TypeTags, tags)
}

func (b *thingBuilder[B]) SetID(id string) B { return gowot.Set(&b.Builder, thID, id) }

func (b *thingBuilder[B]) SetTitle(s string) B { return gowot.Set(&b.Builder, thTitle, s) }

func (b *thingBuilder[B]) SetTitles(m map[string]string) B { return gowot.Set(&b.Builder, thTitles, m) }

func (b *thingBuilder[B]) SetDescription(s string) B {
	return gowot.Set(&b.Builder, thDescription, s)
}

func (b *thingBuilder[B]) SetDescriptions(m map[string]string) B {
	return gowot.Set(&b.Builder, thDescriptions, m)
}

func (b *thingBuilder[B]) SetVersion(v *VersionInfo) B {
	return gowot.SetEntity(&b.Builder, "version", v)
}

func (b *thingBuilder[B]) SetCreated(t time.Time) B { return gowot.Set(&b.Builder, thCreated, t) }

func (b *thingBuilder[B]) SetModified(t time.Time) B { return gowot.Set(&b.Builder, thModified, t) }

func (b *thingBuilder[B]) SetSupport(uri string) B { return gowot.Set(&b.Builder, thSupport, uri) }

func (b *thingBuilder[B]) SetBaseURI(uri string) B { return gowot.Set(&b.Builder, thBase, uri) }

// SetProperty adds or replaces one property; nil removes it.
func (b *thingBuilder[B]) SetProperty(name string, p *PropertyAffordance) B {
	return putEntry(&b.Builder, "properties", name, entityNode(p))
}

// SetAction adds or replaces one action; nil removes it.
func (b *thingBuilder[B]) SetAction(name string, a *ActionAffordance) B {
	return putEntry(&b.Builder, "actions", name, entityNode(a))
}

// SetEvent adds or replaces one event; nil removes it.
func (b *thingBuilder[B]) SetEvent(name string, e *EventAffordance) B {
	return putEntry(&b.Builder, "events", name, entityNode(e))
}

func (b *thingBuilder[B]) SetLinks(links ...*Link) B { return gowot.Set(&b.Builder, thLinks, links) }

func (b *thingBuilder[B]) AddLink(l *Link) B { return appendItem(&b.Builder, "links", l.ToJSON()) }

func (b *thingBuilder[B]) SetForms(forms ...*ThingForm) B {
	return gowot.Set(&b.Builder, thForms, forms)
}

func (b *thingBuilder[B]) AddForm(f *ThingForm) B { return appendItem(&b.Builder, "forms", f.ToJSON()) }

func (b *thingBuilder[B]) SetSecurity(refs gowot.Cardinality[SecurityRef]) B {
	return gowot.SetCardinality(&b.Builder, "security", SecurityRefs, refs)
}

// SetSecurityDefinition registers s under its Name, which must not be
// empty.
func (b *thingBuilder[B]) SetSecurityDefinition(s SecurityScheme) B {
	if s.Name() == "" {
		gowot.Preconditionf("security definition without a name")
	}
	return putEntry(&b.Builder, "securityDefinitions", s.Name(), s.ToJSON())
}

// RemoveSecurityDefinition drops the named scheme.
func (b *thingBuilder[B]) RemoveSecurityDefinition(name string) B {
	return putEntry(&b.Builder, "securityDefinitions", name, nil)
}

func (b *thingBuilder[B]) SetProfile(p gowot.Cardinality[Profile]) B {
	return gowot.SetCardinality(&b.Builder, "profile", Profiles, p)
}

// SetSchemaDefinition adds or replaces one named schema; nil removes it.
func (b *thingBuilder[B]) SetSchemaDefinition(name string, s DataSchema) B {
	return putEntry(&b.Builder, "schemaDefinitions", name, entityNode(s))
}

// SetURIVariable adds or replaces one URI template variable; nil removes it.
func (b *thingBuilder[B]) SetURIVariable(name string, s DataSchema) B {
	return putEntry(&b.Builder, "uriVariables", name, entityNode(s))
}

// ThingDescriptionBuilder stages a ThingDescription. It is single use.
type ThingDescriptionBuilder struct {
	thingBuilder[*ThingDescriptionBuilder]
}

// NewThingDescriptionBuilder starts a document with the default @context.
func NewThingDescriptionBuilder() *ThingDescriptionBuilder {
	return newThingDescriptionBuilder(nil).SetContext(node.String(Context))
}

func newThingDescriptionBuilder(from *node.Object) *ThingDescriptionBuilder {
	b := &ThingDescriptionBuilder{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

func (b *ThingDescriptionBuilder) Build() (*ThingDescription, error) {
	return ThingDescriptionFromJSON(b.Finish())
}

// ThingModelBuilder stages a ThingModel. It is single use.
type ThingModelBuilder struct {
	thingBuilder[*ThingModelBuilder]
}

// NewThingModelBuilder starts a document with the default @context and the
// tm:ThingModel type.
func NewThingModelBuilder() *ThingModelBuilder {
	return newThingModelBuilder(nil).
		SetContext(node.String(Context)).
		SetTypeTags(gowot.NewSingle(ThingModelTag))
}

func newThingModelBuilder(from *node.Object) *ThingModelBuilder {
	b := &ThingModelBuilder{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

// SetOptional writes tm:optional.
func (b *ThingModelBuilder) SetOptional(pointers ...string) *ThingModelBuilder {
	return gowot.Set(&b.Builder, tmOptional, pointers)
}

// SetTypeTags writes "@type", keeping tm:ThingModel as the first tag.
func (b *ThingModelBuilder) SetTypeTags(tags gowot.Cardinality[TypeTag]) *ThingModelBuilder {
	return b.thingBuilder.SetTypeTags(withThingModelTag(tags))
}

// Build validates the staged document. A tm:ThingModel tag is added to
// "@type" when missing so the result reads back as a Thing Model.
func (b *ThingModelBuilder) Build() (*ThingModel, error) {
	n, ok := b.Get("@type")
	if !ok {
		b.SetTypeTags(nil)
	} else if tags, err := TypeTags.Decode(n, gowot.Root().Field("@type")); err == nil && !gowot.Contains(tags, ThingModelTag) {
		b.SetTypeTags(tags)
	}
	return ThingModelFromJSON(b.Finish())
}

func withThingModelTag(tags gowot.Cardinality[TypeTag]) gowot.Cardinality[TypeTag] {
	if tags == nil {
		return gowot.NewSingle(ThingModelTag)
	}
	if gowot.Contains(tags, ThingModelTag) {
		return tags
	}
	return gowot.NewMultiple(append([]TypeTag{ThingModelTag}, tags.Values()...)...)
}
