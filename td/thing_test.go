package td_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
	"github.com/reoring/gowot/td"
)

func TestParseThingDescription_Lamp(t *testing.T) {
	thing, err := td.ParseThingDescription(fixture(t, "lamp.td.json"))
	require.NoError(t, err)

	title, ok := thing.Title()
	require.True(t, ok)
	assert.Equal(t, "MyLampThing", title)
	assert.Equal(t, "Meine Lampe", thing.Titles()["de"])
	assert.False(t, thing.IsThingModel())

	created, ok := thing.Created()
	require.True(t, ok)
	assert.True(t, created.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	_, ok = thing.Modified()
	assert.False(t, ok)

	v, ok := thing.Version()
	require.True(t, ok)
	inst, _ := v.Instance()
	assert.Equal(t, "1.0.0", inst)

	sec, ok := thing.Security()
	require.True(t, ok)
	assert.False(t, sec.IsMultiple())
	assert.Equal(t, []td.SecurityRef{"basic_sc"}, sec.Values())

	assert.Equal(t, []string{"status", "brightness"}, thing.Properties().Keys())
	assert.Equal(t, []string{"toggle"}, thing.Actions().Keys())
	assert.Equal(t, []string{"overheating"}, thing.Events().Keys())
}

func TestParseThingDescription_RoundTripKeepsUnknownMembers(t *testing.T) {
	src := fixture(t, "lamp.td.json")
	thing, err := td.ParseThingDescription(src)
	require.NoError(t, err)

	out, err := thing.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"x-vendor":{"kept":[1,2.50,"three"]}`)
	// dropped op names stay in the document
	assert.Contains(t, string(out), `"bogusOp"`)

	again, err := td.ParseThingDescription(out)
	require.NoError(t, err)
	assert.True(t, thing.Equal(again))
	assert.Equal(t, thing.Hash(), again.Hash())

	raw, err := node.ParseJSON(src)
	require.NoError(t, err)
	assert.True(t, node.Equal(raw, thing.ToJSON()))
}

func TestThingDescriptionFromJSON_WrapsWithoutCopy(t *testing.T) {
	o := obj(t, `{"title":"t"}`)
	thing, err := td.ThingDescriptionFromJSON(o)
	require.NoError(t, err)
	assert.Same(t, o, thing.ToJSON())
}

func TestThingDescription_SecurityDefinitionsCarryNames(t *testing.T) {
	thing, err := td.ParseThingDescription(fixture(t, "lamp.td.json"))
	require.NoError(t, err)

	defs := thing.SecurityDefinitions()
	assert.Equal(t, []string{"basic_sc", "nosec_sc", "combo_sc"}, defs.Keys())

	basic, ok := defs.Get("basic_sc")
	require.True(t, ok)
	require.IsType(t, &td.BasicSecurityScheme{}, basic)
	assert.Equal(t, "basic_sc", basic.Name())
	in, _ := basic.(*td.BasicSecurityScheme).In()
	assert.Equal(t, td.InHeader, in)

	combo, _ := defs.Get("combo_sc")
	oneOf, ok := combo.(*td.OneOfSecurityScheme)
	require.True(t, ok)
	members := oneOf.Members()
	require.Len(t, members, 2)
	assert.Equal(t, td.SecurityRef("basic_sc"), members[0])
	inline, ok := members[1].(*td.BearerSecurityScheme)
	require.True(t, ok)
	assert.Equal(t, "", inline.Name())
}

func TestThingDescription_AffordancesAndForms(t *testing.T) {
	thing, err := td.ParseThingDescription(fixture(t, "lamp.td.json"))
	require.NoError(t, err)

	status, ok := thing.Properties().Get("status")
	require.True(t, ok)
	assert.Equal(t, td.TypeString, status.Type())
	assert.IsType(t, &td.StringSchema{}, status.Schema())
	obs, ok := status.Observable()
	assert.True(t, ok)
	assert.True(t, obs)

	forms := status.Forms()
	require.Len(t, forms, 1)
	ops, ok := forms[0].Op()
	require.True(t, ok)
	assert.True(t, ops.IsMultiple())
	assert.Equal(t, []td.PropertyOp{td.OpReadProperty}, ops.Values())

	brightness, _ := thing.Properties().Get("brightness")
	is, ok := brightness.Schema().(*td.IntegerSchema)
	require.True(t, ok)
	maxV, _ := is.Maximum()
	assert.Equal(t, int64(100), maxV)
	unit, _ := brightness.Unit()
	assert.Equal(t, "percent", unit)

	toggle, _ := thing.Actions().Get("toggle")
	safe, ok := toggle.Safe()
	assert.True(t, ok)
	assert.False(t, safe)
	aops, _ := toggle.Forms()[0].Op()
	assert.Equal(t, []td.ActionOp{td.OpInvokeAction}, aops.Values())

	oh, _ := thing.Events().Get("overheating")
	data, ok := oh.Data()
	require.True(t, ok)
	assert.Equal(t, td.TypeString, data.Type())
	_, ok = oh.Forms()[0].Op()
	assert.False(t, ok)

	links := thing.Links()
	require.Len(t, links, 1)
	hl, ok := links[0].Hreflang()
	require.True(t, ok)
	assert.Equal(t, "en-US", hl.Values()[0].String())
}

func TestThingDescription_NestedIssuePaths(t *testing.T) {
	_, err := td.ParseThingDescription([]byte(`{
		"properties": {"p": {"forms": [{"href": "x", "op": "invokeaction"}]}},
		"securityDefinitions": {"s": {"scheme": "mystery"}},
		"links": [{"href": "x", "hreflang": "not a tag!!"}]
	}`))
	requireIssue(t, err, "/properties/p/forms/0/op", gowot.CodeInvalidEnum)
	requireIssue(t, err, "/securityDefinitions/s/scheme", gowot.CodeDiscriminatorUnknown)
	requireIssue(t, err, "/links/0/hreflang", gowot.CodeInvalidFormat)
}

func TestThingDescription_LenientMembersReadAsAbsent(t *testing.T) {
	thing, err := td.ParseThingDescription([]byte(`{
		"properties": {"p": {"type": "boolean", "observable": "yes", "readOnly": 1}},
		"actions": {"a": {"safe": "no"}}
	}`))
	require.NoError(t, err)
	p, _ := thing.Properties().Get("p")
	_, ok := p.Observable()
	assert.False(t, ok)
	_, ok = p.ReadOnly()
	assert.False(t, ok)
	a, _ := thing.Actions().Get("a")
	_, ok = a.Safe()
	assert.False(t, ok)
}

func TestParseThingDescription_RejectsNonObject(t *testing.T) {
	_, err := td.ParseThingDescription([]byte(`[1]`))
	requireIssue(t, err, "/", gowot.CodeInvalidType)

	_, err = td.ParseThingDescription([]byte(`{"title":`))
	require.Error(t, err)
	iss, ok := gowot.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, gowot.CodeParseError, iss[0].Code)
}

func TestThingDescriptionBuilder(t *testing.T) {
	status, err := td.NewPropertyAffordanceBuilder(mustSchema(t, td.NewStringSchemaBuilder().SetEnum(node.String("on"), node.String("off")))).
		SetObservable(true).
		AddForm(mustForm(t, td.NewFormBuilder[td.PropertyOp]("status").SetOpValue(td.OpReadProperty))).
		Build()
	require.NoError(t, err)

	basic, err := td.NewBasicSecuritySchemeBuilder("basic_sc").SetIn(td.InHeader).Build()
	require.NoError(t, err)
	link, err := td.NewLinkBuilder("https://example.com").SetRel("help").Build()
	require.NoError(t, err)

	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	thing, err := td.NewThingDescriptionBuilder().
		SetID("urn:dev:lamp").
		SetTitle("Lamp").
		SetCreated(when).
		SetSecurityDefinition(basic).
		SetSecurity(gowot.NewSingle(td.SecurityRef("basic_sc"))).
		SetProperty("status", status).
		AddLink(link).
		Build()
	require.NoError(t, err)

	assert.Equal(t,
		`{"@context":"https://www.w3.org/2022/wot/td/v1.1","id":"urn:dev:lamp","title":"Lamp",`+
			`"created":"2025-01-02T03:04:05Z","securityDefinitions":{"basic_sc":{"scheme":"basic","in":"header"}},`+
			`"security":"basic_sc","properties":{"status":{"type":"string","enum":["on","off"],"observable":true,`+
			`"forms":[{"href":"status","op":"readproperty"}]}},"links":[{"href":"https://example.com","rel":"help"}]}`,
		thing.String())

	defs := thing.SecurityDefinitions()
	got, _ := defs.Get("basic_sc")
	assert.True(t, basic.Equal(got))
}

func TestThingDescriptionBuilder_Isolation(t *testing.T) {
	orig, err := td.ParseThingDescription(fixture(t, "lamp.td.json"))
	require.NoError(t, err)

	b := orig.ToBuilder()
	changed, err := b.SetTitle("Other").SetProperty("status", nil).RemoveSecurityDefinition("nosec_sc").Build()
	require.NoError(t, err)

	title, _ := orig.Title()
	assert.Equal(t, "MyLampThing", title)
	assert.Equal(t, 2, orig.Properties().Len())
	assert.Equal(t, 3, orig.SecurityDefinitions().Len())

	title, _ = changed.Title()
	assert.Equal(t, "Other", title)
	assert.Equal(t, []string{"brightness"}, changed.Properties().Keys())
	assert.Equal(t, []string{"basic_sc", "combo_sc"}, changed.SecurityDefinitions().Keys())
	assert.False(t, orig.Equal(changed))

	assert.Panics(t, func() { b.SetTitle("again") })
}

func TestThingDescriptionBuilder_UnnamedSecurityDefinitionPanics(t *testing.T) {
	nosec, err := td.NewNoSecuritySchemeBuilder("").Build()
	require.NoError(t, err)
	assert.PanicsWithError(t, "gowot: security definition without a name", func() {
		td.NewThingDescriptionBuilder().SetSecurityDefinition(nosec)
	})
}

func TestParseThingModelYAML(t *testing.T) {
	tm, err := td.ParseThingModelYAML(fixture(t, "lamp.tm.yaml"))
	require.NoError(t, err)
	assert.True(t, tm.IsThingModel())
	assert.Equal(t, []string{"/events/overheating"}, tm.Optional())

	status, ok := tm.Properties().Get("status")
	require.True(t, ok)
	ro, ok := status.ReadOnly()
	assert.True(t, ok)
	assert.True(t, ro)

	// same document, different entity kind
	n, err := node.ParseYAML(fixture(t, "lamp.tm.yaml"))
	require.NoError(t, err)
	asTD, err := td.ThingDescriptionFromJSON(n)
	require.NoError(t, err)
	assert.False(t, asTD.Equal(tm))
}

func TestThingModel_OptionalMustBeStrings(t *testing.T) {
	_, err := td.ParseThingModel([]byte(`{"@type":"tm:ThingModel","tm:optional":[1]}`))
	requireIssue(t, err, "/tm:optional/0", gowot.CodeInvalidType)
}

func TestThingModelBuilder(t *testing.T) {
	tm, err := td.NewThingModelBuilder().SetTitle("Lamp").SetOptional("/actions/toggle").Build()
	require.NoError(t, err)
	assert.Equal(t,
		`{"@context":"https://www.w3.org/2022/wot/td/v1.1","@type":"tm:ThingModel","title":"Lamp","tm:optional":["/actions/toggle"]}`,
		tm.String())
}

func TestThingModelBuilder_KeepsThingModelTag(t *testing.T) {
	tm, err := td.NewThingModelBuilder().SetTypeTags(gowot.NewSingle[td.TypeTag]("Lamp")).Build()
	require.NoError(t, err)
	assert.True(t, tm.IsThingModel())
	tags, ok := tm.TypeTags()
	require.True(t, ok)
	assert.Equal(t, []td.TypeTag{td.ThingModelTag, "Lamp"}, tags.Values())

	thing, err := td.ThingFromJSON(tm.ToJSON())
	require.NoError(t, err)
	assert.IsType(t, &td.ThingModel{}, thing)

	untagged, err := td.ParseThingModel([]byte(`{"title":"Lamp","@type":"Lamp"}`))
	require.NoError(t, err)
	assert.False(t, untagged.IsThingModel())
	rebuilt, err := untagged.ToBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Lamp","@type":["tm:ThingModel","Lamp"]}`, rebuilt.String())

	cleared, err := td.NewThingModelBuilder().SetTypeTags(nil).Build()
	require.NoError(t, err)
	assert.True(t, cleared.IsThingModel())
}

func TestThingFromJSON_Dispatch(t *testing.T) {
	thing, err := td.ThingFromJSON(obj(t, `{"@type":["Lamp","tm:ThingModel"]}`))
	require.NoError(t, err)
	assert.IsType(t, &td.ThingModel{}, thing)
	assert.True(t, thing.IsThingModel())

	thing, err = td.ThingFromJSON(obj(t, `{"@type":"Lamp"}`))
	require.NoError(t, err)
	assert.IsType(t, &td.ThingDescription{}, thing)

	thing, err = td.ThingFromJSON(obj(t, `{"@type":"tm:ThingModel","tm:optional":"x"}`))
	require.Error(t, err)
	assert.Nil(t, thing)
}

func TestNewThingID(t *testing.T) {
	a, b := td.NewThingID(), td.NewThingID()
	assert.True(t, strings.HasPrefix(a, "urn:uuid:"))
	assert.Len(t, a, len("urn:uuid:")+36)
	assert.NotEqual(t, a, b)
}

func mustSchema(t *testing.T, b td.DataSchemaBuilder) td.DataSchema {
	t.Helper()
	s, err := b.BuildSchema()
	require.NoError(t, err)
	return s
}

func mustForm[O td.Operation](t *testing.T, b *td.FormBuilder[O]) *td.Form[O] {
	t.Helper()
	f, err := b.Build()
	require.NoError(t, err)
	return f
}
