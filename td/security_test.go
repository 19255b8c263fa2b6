package td_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
	"github.com/reoring/gowot/td"
)

func TestSecuritySchemeFromJSON_Dispatch(t *testing.T) {
	cases := []struct {
		src  string
		want td.SecurityScheme
	}{
		{`{"scheme":"nosec"}`, &td.NoSecurityScheme{}},
		{`{"scheme":"basic","in":"query","name":"u"}`, &td.BasicSecurityScheme{}},
		{`{"scheme":"apikey","in":"header","name":"X-Key"}`, &td.APIKeySecurityScheme{}},
		{`{"scheme":"psk","identity":"dev"}`, &td.PSKSecurityScheme{}},
		{`{"scheme":"oauth2","flow":"code","scopes":["a","b"]}`, &td.OAuth2SecurityScheme{}},
		{`{"scheme":"bearer","alg":"ES256","format":"jwt"}`, &td.BearerSecurityScheme{}},
		{`{"scheme":"auto"}`, &td.AutoSecurityScheme{}},
		{`{"scheme":"combo","oneOf":["a","b"]}`, &td.OneOfSecurityScheme{}},
		{`{"scheme":"combo","allOf":["a",{"scheme":"nosec"}]}`, &td.AllOfSecurityScheme{}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			s, err := td.SecuritySchemeFromJSON("sc", obj(t, tc.src))
			require.NoError(t, err)
			assert.IsType(t, tc.want, s)
			assert.Equal(t, "sc", s.Name())
		})
	}
}

func TestSecuritySchemeFromJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		path string
		code string
	}{
		{"missing scheme", `{"in":"header"}`, "/scheme", gowot.CodeDiscriminatorMissing},
		{"scheme not a string", `{"scheme":1}`, "/scheme", gowot.CodeInvalidType},
		{"unknown scheme", `{"scheme":"digest"}`, "/scheme", gowot.CodeDiscriminatorUnknown},
		{"both combinators", `{"scheme":"combo","oneOf":["a"],"allOf":["b"]}`, "/", gowot.CodeMutuallyExclusive},
		{"no combinator", `{"scheme":"combo"}`, "/", gowot.CodeMutuallyExclusive},
		{"bad in", `{"scheme":"apikey","in":"pigeon"}`, "/in", gowot.CodeInvalidEnum},
		{"bad member", `{"scheme":"combo","oneOf":[1]}`, "/oneOf/0", gowot.CodeInvalidType},
		{"bad inline member", `{"scheme":"combo","allOf":[{"scheme":"psk","identity":2}]}`, "/allOf/0/identity", gowot.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := td.SecuritySchemeFromJSON("sc", obj(t, tc.src))
			requireIssue(t, err, tc.path, tc.code)
			assert.Nil(t, s)
		})
	}
}

func TestSecurityScheme_Accessors(t *testing.T) {
	s, err := td.SecuritySchemeFromJSON("oauth", obj(t, `{
		"scheme":"oauth2","description":"d","proxy":"https://proxy","token":"https://t","scopes":"read","x-extra":true
	}`))
	require.NoError(t, err)
	o := s.(*td.OAuth2SecurityScheme)
	assert.Equal(t, td.SchemeOAuth2, o.Scheme())
	d, _ := o.Description()
	assert.Equal(t, "d", d)
	p, _ := o.Proxy()
	assert.Equal(t, "https://proxy", p)
	tok, _ := o.Token()
	assert.Equal(t, "https://t", tok)
	scopes, ok := o.Scopes()
	require.True(t, ok)
	assert.False(t, scopes.IsMultiple())
	assert.True(t, gowot.Contains(scopes, td.Scope("read")))

	x, ok := o.ToJSON().Get("x-extra")
	require.True(t, ok)
	assert.Equal(t, node.Bool(true), x)
}

func TestSecurityScheme_NameIsIdentity(t *testing.T) {
	src := `{"scheme":"basic"}`
	a, err := td.SecuritySchemeFromJSON("a", obj(t, src))
	require.NoError(t, err)
	a2, err := td.SecuritySchemeFromJSON("a", obj(t, src))
	require.NoError(t, err)
	b, err := td.SecuritySchemeFromJSON("b", obj(t, src))
	require.NoError(t, err)

	assert.True(t, a.Equal(a2))
	assert.Equal(t, a.Hash(), a2.Hash())
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestSecuritySchemeBuilders_PinScheme(t *testing.T) {
	b := td.NewAPIKeySecuritySchemeBuilder("key").SetIn(td.InQuery).SetParamName("k")
	assert.PanicsWithError(t, `gowot: field "scheme" is fixed by this builder`, func() {
		b.PutValue("scheme", node.String("basic"))
	})
	assert.NotPanics(t, func() { b.PutValue("scheme", node.String("apikey")) })
	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, `{"scheme":"apikey","in":"query","name":"k"}`, s.String())
	assert.Equal(t, "key", s.Name())

	// rebuilding keeps the name and the pin
	rb := s.ToBuilder().SetDescription("api key")
	assert.Panics(t, func() { rb.Remove("scheme") })
	s2, err := rb.Build()
	require.NoError(t, err)
	assert.Equal(t, "key", s2.Name())
	assert.False(t, s.Equal(s2))
}

func TestComboBuilders_ExclusiveCombinators(t *testing.T) {
	nosec, err := td.NewNoSecuritySchemeBuilder("").Build()
	require.NoError(t, err)

	one, err := td.NewOneOfSecuritySchemeBuilder("either").SetMembers(td.SecurityRef("a"), nosec).Build()
	require.NoError(t, err)
	assert.Equal(t, `{"scheme":"combo","oneOf":["a",{"scheme":"nosec"}]}`, one.String())
	members := one.Members()
	require.Len(t, members, 2)
	assert.IsType(t, &td.NoSecurityScheme{}, members[1])

	assert.PanicsWithError(t, `gowot: field "allOf" is fixed by this builder`, func() {
		td.NewOneOfSecuritySchemeBuilder("x").PutValue("allOf", node.Strings("a"))
	})
	assert.Panics(t, func() {
		td.NewAllOfSecuritySchemeBuilder("x").PutValue("oneOf", node.Strings("a"))
	})

	// members are required
	_, err = td.NewAllOfSecuritySchemeBuilder("all").Build()
	requireIssue(t, err, "/", gowot.CodeMutuallyExclusive)
}

func TestComboFromJSON_DirectConstructorsCheckShape(t *testing.T) {
	_, err := td.AllOfSecuritySchemeFromJSON("x", obj(t, `{"scheme":"combo","oneOf":["a"]}`))
	requireIssue(t, err, "/allOf", gowot.CodeRequired)

	_, err = td.BasicSecuritySchemeFromJSON("x", obj(t, `{"scheme":"psk"}`))
	requireIssue(t, err, "/scheme", gowot.CodeInvalidEnum)
}

func TestAdditionalSecurityScheme(t *testing.T) {
	s, err := td.NewAdditionalSecuritySchemeBuilder("dig", "digest").
		Set("qop", node.String("auth")).
		SetDescription("legacy").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "digest", s.Scheme())
	qop, ok := s.Get("qop")
	require.True(t, ok)
	assert.Equal(t, node.String("auth"), qop)

	// generic dispatch never yields an additional scheme
	_, err = td.SecuritySchemeFromJSON("dig", s.ToJSON())
	requireIssue(t, err, "/scheme", gowot.CodeDiscriminatorUnknown)

	_, err = td.AdditionalSecuritySchemeFromJSON("b", obj(t, `{"scheme":"basic"}`))
	requireIssue(t, err, "/scheme", gowot.CodeInvalidEnum)

	assert.PanicsWithError(t, `gowot: scheme "bearer" has a dedicated builder`, func() {
		td.NewAdditionalSecuritySchemeBuilder("b", "bearer")
	})
}
