package td

import (
	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

var (
	formHref          = gowot.StringField("href").Required()
	formContentType   = gowot.StringField("contentType")
	formContentCoding = gowot.StringField("contentCoding")
	formSubprotocol   = gowot.StringField("subprotocol")
	formSecurity      = SecurityRefs.Field("security")
	formScopes        = Scopes.Field("scopes")
	formResponse      = gowot.EntityField("response", ExpectedResponseFromJSON)
	formAddResponses  = gowot.ListField("additionalResponses", decodeAdditionalResponse, encodeEntity[*AdditionalExpectedResponse])

	respContentType = gowot.StringField("contentType")
	addRespSuccess  = gowot.BoolField("success")
	addRespSchema   = gowot.StringField("schema")
)

func formOp[O Operation]() gowot.Field[gowot.Cardinality[O]] { return OpsFor[O]().Field("op") }

// Form is a hypermedia control of the affordance family O. A single unknown
// operation name fails decoding; unknown names inside an op array are
// dropped.
type Form[O Operation] struct{ gowot.Wrapper }

type (
	ThingForm    = Form[ThingOp]
	PropertyForm = Form[PropertyOp]
	ActionForm   = Form[ActionOp]
	EventForm    = Form[EventOp]
)

// FormFromJSON validates o as a form whose "op" belongs to family O.
func FormFromJSON[O Operation](o *node.Object) (*Form[O], error) {
	err := gowot.Validate(o, formHref, formContentType, formContentCoding, formSubprotocol,
		formSecurity, formScopes, formResponse, formAddResponses, formOp[O]())
	if err != nil {
		return nil, err
	}
	return &Form[O]{gowot.NewWrapper(formKind[O](), o)}, nil
}

func decodeForm[O Operation](n node.Node, at gowot.PathRef) (*Form[O], error) {
	o, err := gowot.AsObject(n, at)
	if err != nil {
		return nil, err
	}
	f, err := FormFromJSON[O](o)
	if err != nil {
		return nil, gowot.Nested(at, err)
	}
	return f, nil
}

func formsField[O Operation]() gowot.Field[[]*Form[O]] {
	return gowot.ListField("forms", decodeForm[O], encodeEntity[*Form[O]])
}

func (f *Form[O]) Href() string {
	v, _ := formHref.Lookup(f.ToJSON())
	return v
}

func (f *Form[O]) ContentType() (string, bool)   { return formContentType.Lookup(f.ToJSON()) }
func (f *Form[O]) ContentCoding() (string, bool) { return formContentCoding.Lookup(f.ToJSON()) }
func (f *Form[O]) Subprotocol() (string, bool)   { return formSubprotocol.Lookup(f.ToJSON()) }

func (f *Form[O]) Security() (gowot.Cardinality[SecurityRef], bool) {
	return formSecurity.Lookup(f.ToJSON())
}

func (f *Form[O]) Scopes() (gowot.Cardinality[Scope], bool) { return formScopes.Lookup(f.ToJSON()) }

func (f *Form[O]) Response() (*ExpectedResponse, bool) { return formResponse.Lookup(f.ToJSON()) }

func (f *Form[O]) AdditionalResponses() []*AdditionalExpectedResponse {
	v, _ := formAddResponses.Lookup(f.ToJSON())
	return v
}

// Op returns the declared operations.
func (f *Form[O]) Op() (gowot.Cardinality[O], bool) { return formOp[O]().Lookup(f.ToJSON()) }

func (f *Form[O]) ToBuilder() *FormBuilder[O] { return newFormBuilder[O](f.ToJSON()) }

// FormBuilder builds a Form of family O.
type FormBuilder[O Operation] struct {
	gowot.Builder[*FormBuilder[O]]
}

// NewFormBuilder starts a form pointing at href.
func NewFormBuilder[O Operation](href string) *FormBuilder[O] {
	return newFormBuilder[O](nil).SetHref(href)
}

func newFormBuilder[O Operation](from *node.Object) *FormBuilder[O] {
	b := &FormBuilder[O]{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

func (b *FormBuilder[O]) SetHref(href string) *FormBuilder[O] {
	return gowot.Set(&b.Builder, formHref, href)
}

func (b *FormBuilder[O]) SetContentType(ct string) *FormBuilder[O] {
	return gowot.Set(&b.Builder, formContentType, ct)
}

func (b *FormBuilder[O]) SetContentCoding(cc string) *FormBuilder[O] {
	return gowot.Set(&b.Builder, formContentCoding, cc)
}

func (b *FormBuilder[O]) SetSubprotocol(sp string) *FormBuilder[O] {
	return gowot.Set(&b.Builder, formSubprotocol, sp)
}

func (b *FormBuilder[O]) SetSecurity(refs gowot.Cardinality[SecurityRef]) *FormBuilder[O] {
	return gowot.SetCardinality(&b.Builder, "security", SecurityRefs, refs)
}

func (b *FormBuilder[O]) SetScopes(scopes gowot.Cardinality[Scope]) *FormBuilder[O] {
	return gowot.SetCardinality(&b.Builder, "scopes", Scopes, scopes)
}

func (b *FormBuilder[O]) SetResponse(r *ExpectedResponse) *FormBuilder[O] {
	return gowot.SetEntity(&b.Builder, "response", r)
}

func (b *FormBuilder[O]) SetAdditionalResponses(rs ...*AdditionalExpectedResponse) *FormBuilder[O] {
	return gowot.Set(&b.Builder, formAddResponses, rs)
}

// SetOp writes operations of this form's family; nil removes them.
func (b *FormBuilder[O]) SetOp(ops gowot.Cardinality[O]) *FormBuilder[O] {
	return gowot.SetCardinality(&b.Builder, "op", OpsFor[O](), ops)
}

// SetOpValue accepts an operation, an operation slice, a Cardinality or
// operation names of this form's family. Anything else is a programming
// error and panics.
func (b *FormBuilder[O]) SetOpValue(v any) *FormBuilder[O] {
	ops, err := OpsFor[O]().Of(v)
	if err != nil {
		gowot.Preconditionf("%s: %v", formKind[O](), err)
	}
	return b.SetOp(ops)
}

func (b *FormBuilder[O]) Build() (*Form[O], error) { return FormFromJSON[O](b.Finish()) }

// ---- responses ----

// ExpectedResponse describes the default response of a form.
type ExpectedResponse struct{ gowot.Wrapper }

// ExpectedResponseFromJSON validates a "response" object.
func ExpectedResponseFromJSON(o *node.Object) (*ExpectedResponse, error) {
	if err := gowot.Validate(o, respContentType); err != nil {
		return nil, err
	}
	return &ExpectedResponse{gowot.NewWrapper("ExpectedResponse", o)}, nil
}

func (r *ExpectedResponse) ContentType() (string, bool) { return respContentType.Lookup(r.ToJSON()) }

// NewExpectedResponse builds a response with the given content type.
func NewExpectedResponse(contentType string) *ExpectedResponse {
	o := node.NewObjectBuilder().Set("contentType", node.String(contentType)).Build()
	return &ExpectedResponse{gowot.NewWrapper("ExpectedResponse", o)}
}

// AdditionalExpectedResponse describes a further possible response.
type AdditionalExpectedResponse struct{ gowot.Wrapper }

// AdditionalExpectedResponseFromJSON validates one "additionalResponses" entry.
func AdditionalExpectedResponseFromJSON(o *node.Object) (*AdditionalExpectedResponse, error) {
	if err := gowot.Validate(o, addRespSuccess, respContentType, addRespSchema); err != nil {
		return nil, err
	}
	return &AdditionalExpectedResponse{gowot.NewWrapper("AdditionalExpectedResponse", o)}, nil
}

func decodeAdditionalResponse(n node.Node, at gowot.PathRef) (*AdditionalExpectedResponse, error) {
	o, err := gowot.AsObject(n, at)
	if err != nil {
		return nil, err
	}
	r, err := AdditionalExpectedResponseFromJSON(o)
	return r, gowot.Nested(at, err)
}

func (r *AdditionalExpectedResponse) Success() (bool, bool) { return addRespSuccess.Lookup(r.ToJSON()) }

func (r *AdditionalExpectedResponse) ContentType() (string, bool) {
	return respContentType.Lookup(r.ToJSON())
}

// Schema names an entry of the Thing's schemaDefinitions.
func (r *AdditionalExpectedResponse) Schema() (string, bool) { return addRespSchema.Lookup(r.ToJSON()) }

// NewAdditionalExpectedResponse builds a response entry; empty strings are
// left out.
func NewAdditionalExpectedResponse(success bool, contentType, schema string) *AdditionalExpectedResponse {
	b := node.NewObjectBuilder().Set("success", node.Bool(success))
	if contentType != "" {
		b.Set("contentType", node.String(contentType))
	}
	if schema != "" {
		b.Set("schema", node.String(schema))
	}
	return &AdditionalExpectedResponse{gowot.NewWrapper("AdditionalExpectedResponse", b.Build())}
}
