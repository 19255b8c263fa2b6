package td

import (
	"slices"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

func lookupIn(o *node.Object) (SecurityIn, bool) {
	v, ok := secIn.Lookup(o)
	return SecurityIn(v), ok
}

// ---- nosec ----

// NoSecurityScheme declares that no security applies.
type NoSecurityScheme struct{ securityBase }

// NoSecuritySchemeFromJSON decodes a "nosec" definition registered under name.
func NoSecuritySchemeFromJSON(name string, o *node.Object) (*NoSecurityScheme, error) {
	if err := checkScheme(o, SchemeNoSec); err != nil {
		return nil, err
	}
	return &NoSecurityScheme{newSecurityBase("NoSecurityScheme", name, o)}, nil
}

func (s *NoSecurityScheme) ToBuilder() *NoSecuritySchemeBuilder {
	return newNoSecurityBuilder(s.name, s.ToJSON())
}

// NoSecuritySchemeBuilder stages a NoSecurityScheme. It is single use.
type NoSecuritySchemeBuilder struct {
	securityBuilder[*NoSecuritySchemeBuilder]
}

// NewNoSecuritySchemeBuilder starts a definition named name with "scheme" pinned to "nosec".
func NewNoSecuritySchemeBuilder(name string) *NoSecuritySchemeBuilder {
	return newNoSecurityBuilder(name, nil)
}

func newNoSecurityBuilder(name string, from *node.Object) *NoSecuritySchemeBuilder {
	b := &NoSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeNoSec, from)
	return b
}

func (b *NoSecuritySchemeBuilder) Build() (*NoSecurityScheme, error) {
	return NoSecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- basic ----

// BasicSecurityScheme is HTTP basic authentication. "in" defaults to header.
type BasicSecurityScheme struct{ securityBase }

// BasicSecuritySchemeFromJSON decodes a "basic" definition registered under name.
func BasicSecuritySchemeFromJSON(name string, o *node.Object) (*BasicSecurityScheme, error) {
	if err := checkScheme(o, SchemeBasic, secIn, secParamName); err != nil {
		return nil, err
	}
	return &BasicSecurityScheme{newSecurityBase("BasicSecurityScheme", name, o)}, nil
}

func (s *BasicSecurityScheme) In() (SecurityIn, bool)    { return lookupIn(s.ToJSON()) }
func (s *BasicSecurityScheme) ParamName() (string, bool) { return secParamName.Lookup(s.ToJSON()) }

func (s *BasicSecurityScheme) ToBuilder() *BasicSecuritySchemeBuilder {
	return newBasicSecurityBuilder(s.name, s.ToJSON())
}

// BasicSecuritySchemeBuilder stages a BasicSecurityScheme. It is single use.
type BasicSecuritySchemeBuilder struct {
	securityBuilder[*BasicSecuritySchemeBuilder]
}

// NewBasicSecuritySchemeBuilder starts a definition named name with "scheme" pinned to "basic".
func NewBasicSecuritySchemeBuilder(name string) *BasicSecuritySchemeBuilder {
	return newBasicSecurityBuilder(name, nil)
}

func newBasicSecurityBuilder(name string, from *node.Object) *BasicSecuritySchemeBuilder {
	b := &BasicSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeBasic, from)
	return b
}

func (b *BasicSecuritySchemeBuilder) SetIn(in SecurityIn) *BasicSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secIn, string(in))
}

func (b *BasicSecuritySchemeBuilder) SetParamName(name string) *BasicSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secParamName, name)
}

func (b *BasicSecuritySchemeBuilder) Build() (*BasicSecurityScheme, error) {
	return BasicSecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- apikey ----

// APIKeySecurityScheme is an API key carried in a header, query parameter,
// body, cookie or URI.
type APIKeySecurityScheme struct{ securityBase }

// APIKeySecuritySchemeFromJSON decodes a "apikey" definition registered under name.
func APIKeySecuritySchemeFromJSON(name string, o *node.Object) (*APIKeySecurityScheme, error) {
	if err := checkScheme(o, SchemeAPIKey, secIn, secParamName); err != nil {
		return nil, err
	}
	return &APIKeySecurityScheme{newSecurityBase("APIKeySecurityScheme", name, o)}, nil
}

func (s *APIKeySecurityScheme) In() (SecurityIn, bool)    { return lookupIn(s.ToJSON()) }
func (s *APIKeySecurityScheme) ParamName() (string, bool) { return secParamName.Lookup(s.ToJSON()) }

func (s *APIKeySecurityScheme) ToBuilder() *APIKeySecuritySchemeBuilder {
	return newAPIKeySecurityBuilder(s.name, s.ToJSON())
}

// APIKeySecuritySchemeBuilder stages an APIKeySecurityScheme. It is single use.
type APIKeySecuritySchemeBuilder struct {
	securityBuilder[*APIKeySecuritySchemeBuilder]
}

// NewAPIKeySecuritySchemeBuilder starts a definition named name with "scheme" pinned to "apikey".
func NewAPIKeySecuritySchemeBuilder(name string) *APIKeySecuritySchemeBuilder {
	return newAPIKeySecurityBuilder(name, nil)
}

func newAPIKeySecurityBuilder(name string, from *node.Object) *APIKeySecuritySchemeBuilder {
	b := &APIKeySecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeAPIKey, from)
	return b
}

func (b *APIKeySecuritySchemeBuilder) SetIn(in SecurityIn) *APIKeySecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secIn, string(in))
}

func (b *APIKeySecuritySchemeBuilder) SetParamName(name string) *APIKeySecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secParamName, name)
}

func (b *APIKeySecuritySchemeBuilder) Build() (*APIKeySecurityScheme, error) {
	return APIKeySecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- psk ----

// PSKSecurityScheme is pre-shared key authentication.
type PSKSecurityScheme struct{ securityBase }

// PSKSecuritySchemeFromJSON decodes a "psk" definition registered under name.
func PSKSecuritySchemeFromJSON(name string, o *node.Object) (*PSKSecurityScheme, error) {
	if err := checkScheme(o, SchemePSK, secIdentity); err != nil {
		return nil, err
	}
	return &PSKSecurityScheme{newSecurityBase("PSKSecurityScheme", name, o)}, nil
}

func (s *PSKSecurityScheme) Identity() (string, bool) { return secIdentity.Lookup(s.ToJSON()) }

func (s *PSKSecurityScheme) ToBuilder() *PSKSecuritySchemeBuilder {
	return newPSKSecurityBuilder(s.name, s.ToJSON())
}

// PSKSecuritySchemeBuilder stages a PSKSecurityScheme. It is single use.
type PSKSecuritySchemeBuilder struct {
	securityBuilder[*PSKSecuritySchemeBuilder]
}

// NewPSKSecuritySchemeBuilder starts a definition named name with "scheme" pinned to "psk".
func NewPSKSecuritySchemeBuilder(name string) *PSKSecuritySchemeBuilder {
	return newPSKSecurityBuilder(name, nil)
}

func newPSKSecurityBuilder(name string, from *node.Object) *PSKSecuritySchemeBuilder {
	b := &PSKSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemePSK, from)
	return b
}

func (b *PSKSecuritySchemeBuilder) SetIdentity(id string) *PSKSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secIdentity, id)
}

func (b *PSKSecuritySchemeBuilder) Build() (*PSKSecurityScheme, error) {
	return PSKSecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- oauth2 ----

// OAuth2SecurityScheme is OAuth 2.0 authorization.
type OAuth2SecurityScheme struct{ securityBase }

// OAuth2SecuritySchemeFromJSON decodes a "oauth2" definition registered under name.
func OAuth2SecuritySchemeFromJSON(name string, o *node.Object) (*OAuth2SecurityScheme, error) {
	if err := checkScheme(o, SchemeOAuth2, secAuthorization, secToken, secRefresh, secScopes, secFlow); err != nil {
		return nil, err
	}
	return &OAuth2SecurityScheme{newSecurityBase("OAuth2SecurityScheme", name, o)}, nil
}

func (s *OAuth2SecurityScheme) Authorization() (string, bool) {
	return secAuthorization.Lookup(s.ToJSON())
}
func (s *OAuth2SecurityScheme) Token() (string, bool)   { return secToken.Lookup(s.ToJSON()) }
func (s *OAuth2SecurityScheme) Refresh() (string, bool) { return secRefresh.Lookup(s.ToJSON()) }
func (s *OAuth2SecurityScheme) Flow() (string, bool)    { return secFlow.Lookup(s.ToJSON()) }

func (s *OAuth2SecurityScheme) Scopes() (gowot.Cardinality[Scope], bool) {
	return secScopes.Lookup(s.ToJSON())
}

func (s *OAuth2SecurityScheme) ToBuilder() *OAuth2SecuritySchemeBuilder {
	return newOAuth2SecurityBuilder(s.name, s.ToJSON())
}

// OAuth2SecuritySchemeBuilder stages an OAuth2SecurityScheme. It is single use.
type OAuth2SecuritySchemeBuilder struct {
	securityBuilder[*OAuth2SecuritySchemeBuilder]
}

// NewOAuth2SecuritySchemeBuilder starts a definition named name with "scheme" pinned to "oauth2".
func NewOAuth2SecuritySchemeBuilder(name string) *OAuth2SecuritySchemeBuilder {
	return newOAuth2SecurityBuilder(name, nil)
}

func newOAuth2SecurityBuilder(name string, from *node.Object) *OAuth2SecuritySchemeBuilder {
	b := &OAuth2SecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeOAuth2, from)
	return b
}

func (b *OAuth2SecuritySchemeBuilder) SetAuthorization(uri string) *OAuth2SecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secAuthorization, uri)
}

func (b *OAuth2SecuritySchemeBuilder) SetToken(uri string) *OAuth2SecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secToken, uri)
}

func (b *OAuth2SecuritySchemeBuilder) SetRefresh(uri string) *OAuth2SecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secRefresh, uri)
}

func (b *OAuth2SecuritySchemeBuilder) SetFlow(flow string) *OAuth2SecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secFlow, flow)
}

// SetScopes writes a single scope or a list; nil removes them.
func (b *OAuth2SecuritySchemeBuilder) SetScopes(scopes gowot.Cardinality[Scope]) *OAuth2SecuritySchemeBuilder {
	return gowot.SetCardinality(&b.Builder, "scopes", Scopes, scopes)
}

func (b *OAuth2SecuritySchemeBuilder) Build() (*OAuth2SecurityScheme, error) {
	return OAuth2SecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- bearer ----

// BearerSecurityScheme is bearer token authentication.
type BearerSecurityScheme struct{ securityBase }

// BearerSecuritySchemeFromJSON decodes a "bearer" definition registered under name.
func BearerSecuritySchemeFromJSON(name string, o *node.Object) (*BearerSecurityScheme, error) {
	if err := checkScheme(o, SchemeBearer, secAuthorization, secAlg, secFormat, secIn, secParamName); err != nil {
		return nil, err
	}
	return &BearerSecurityScheme{newSecurityBase("BearerSecurityScheme", name, o)}, nil
}

func (s *BearerSecurityScheme) Authorization() (string, bool) {
	return secAuthorization.Lookup(s.ToJSON())
}
func (s *BearerSecurityScheme) Alg() (string, bool)       { return secAlg.Lookup(s.ToJSON()) }
func (s *BearerSecurityScheme) Format() (string, bool)    { return secFormat.Lookup(s.ToJSON()) }
func (s *BearerSecurityScheme) In() (SecurityIn, bool)    { return lookupIn(s.ToJSON()) }
func (s *BearerSecurityScheme) ParamName() (string, bool) { return secParamName.Lookup(s.ToJSON()) }

func (s *BearerSecurityScheme) ToBuilder() *BearerSecuritySchemeBuilder {
	return newBearerSecurityBuilder(s.name, s.ToJSON())
}

// BearerSecuritySchemeBuilder stages a BearerSecurityScheme. It is single use.
type BearerSecuritySchemeBuilder struct {
	securityBuilder[*BearerSecuritySchemeBuilder]
}

// NewBearerSecuritySchemeBuilder starts a definition named name with "scheme" pinned to "bearer".
func NewBearerSecuritySchemeBuilder(name string) *BearerSecuritySchemeBuilder {
	return newBearerSecurityBuilder(name, nil)
}

func newBearerSecurityBuilder(name string, from *node.Object) *BearerSecuritySchemeBuilder {
	b := &BearerSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeBearer, from)
	return b
}

func (b *BearerSecuritySchemeBuilder) SetAuthorization(uri string) *BearerSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secAuthorization, uri)
}

func (b *BearerSecuritySchemeBuilder) SetAlg(alg string) *BearerSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secAlg, alg)
}

func (b *BearerSecuritySchemeBuilder) SetFormat(format string) *BearerSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secFormat, format)
}

func (b *BearerSecuritySchemeBuilder) SetIn(in SecurityIn) *BearerSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secIn, string(in))
}

func (b *BearerSecuritySchemeBuilder) SetParamName(name string) *BearerSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secParamName, name)
}

func (b *BearerSecuritySchemeBuilder) Build() (*BearerSecurityScheme, error) {
	return BearerSecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- auto ----

// AutoSecurityScheme leaves the choice of mechanism to protocol negotiation.
type AutoSecurityScheme struct{ securityBase }

// AutoSecuritySchemeFromJSON decodes a "auto" definition registered under name.
func AutoSecuritySchemeFromJSON(name string, o *node.Object) (*AutoSecurityScheme, error) {
	if err := checkScheme(o, SchemeAuto); err != nil {
		return nil, err
	}
	return &AutoSecurityScheme{newSecurityBase("AutoSecurityScheme", name, o)}, nil
}

func (s *AutoSecurityScheme) ToBuilder() *AutoSecuritySchemeBuilder {
	return newAutoSecurityBuilder(s.name, s.ToJSON())
}

// AutoSecuritySchemeBuilder stages an AutoSecurityScheme. It is single use.
type AutoSecuritySchemeBuilder struct {
	securityBuilder[*AutoSecuritySchemeBuilder]
}

// NewAutoSecuritySchemeBuilder starts a definition named name with "scheme" pinned to "auto".
func NewAutoSecuritySchemeBuilder(name string) *AutoSecuritySchemeBuilder {
	return newAutoSecurityBuilder(name, nil)
}

func newAutoSecurityBuilder(name string, from *node.Object) *AutoSecuritySchemeBuilder {
	b := &AutoSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeAuto, from)
	return b
}

func (b *AutoSecuritySchemeBuilder) Build() (*AutoSecurityScheme, error) {
	return AutoSecuritySchemeFromJSON(b.name, b.Finish())
}

// ---- combo ----

// OneOfSecurityScheme is satisfied by any one of its members.
type OneOfSecurityScheme struct{ securityBase }

// OneOfSecuritySchemeFromJSON decodes a combo definition whose members are listed under "oneOf".
func OneOfSecuritySchemeFromJSON(name string, o *node.Object) (*OneOfSecurityScheme, error) {
	if err := checkCombo(o, "oneOf", secOneOf); err != nil {
		return nil, err
	}
	return &OneOfSecurityScheme{newSecurityBase("OneOfSecurityScheme", name, o)}, nil
}

// Members returns the alternatives in document order.
func (s *OneOfSecurityScheme) Members() []ComboMember {
	v, _ := secOneOf.Lookup(s.ToJSON())
	return v
}

func (s *OneOfSecurityScheme) ToBuilder() *OneOfSecuritySchemeBuilder {
	return newOneOfSecurityBuilder(s.name, s.ToJSON())
}

// OneOfSecuritySchemeBuilder stages a OneOfSecurityScheme. It is single use.
type OneOfSecuritySchemeBuilder struct {
	securityBuilder[*OneOfSecuritySchemeBuilder]
}

// NewOneOfSecuritySchemeBuilder starts a combo definition that uses "oneOf"; "allOf" is forbidden.
func NewOneOfSecuritySchemeBuilder(name string) *OneOfSecuritySchemeBuilder {
	return newOneOfSecurityBuilder(name, nil)
}

func newOneOfSecurityBuilder(name string, from *node.Object) *OneOfSecuritySchemeBuilder {
	b := &OneOfSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeCombo, from)
	b.Forbid("allOf")
	return b
}

// SetMembers replaces the alternatives.
func (b *OneOfSecuritySchemeBuilder) SetMembers(members ...ComboMember) *OneOfSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secOneOf, members)
}

func (b *OneOfSecuritySchemeBuilder) Build() (*OneOfSecurityScheme, error) {
	return OneOfSecuritySchemeFromJSON(b.name, b.Finish())
}

// AllOfSecurityScheme requires every member.
type AllOfSecurityScheme struct{ securityBase }

// AllOfSecuritySchemeFromJSON decodes a combo definition whose members are listed under "allOf".
func AllOfSecuritySchemeFromJSON(name string, o *node.Object) (*AllOfSecurityScheme, error) {
	if err := checkCombo(o, "allOf", secAllOf); err != nil {
		return nil, err
	}
	return &AllOfSecurityScheme{newSecurityBase("AllOfSecurityScheme", name, o)}, nil
}

// Members returns the required schemes in document order.
func (s *AllOfSecurityScheme) Members() []ComboMember {
	v, _ := secAllOf.Lookup(s.ToJSON())
	return v
}

func (s *AllOfSecurityScheme) ToBuilder() *AllOfSecuritySchemeBuilder {
	return newAllOfSecurityBuilder(s.name, s.ToJSON())
}

// AllOfSecuritySchemeBuilder stages an AllOfSecurityScheme. It is single use.
type AllOfSecuritySchemeBuilder struct {
	securityBuilder[*AllOfSecuritySchemeBuilder]
}

// NewAllOfSecuritySchemeBuilder starts a combo definition that uses "allOf"; "oneOf" is forbidden.
func NewAllOfSecuritySchemeBuilder(name string) *AllOfSecuritySchemeBuilder {
	return newAllOfSecurityBuilder(name, nil)
}

func newAllOfSecurityBuilder(name string, from *node.Object) *AllOfSecuritySchemeBuilder {
	b := &AllOfSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, SchemeCombo, from)
	b.Forbid("oneOf")
	return b
}

// SetMembers replaces the required schemes.
func (b *AllOfSecuritySchemeBuilder) SetMembers(members ...ComboMember) *AllOfSecuritySchemeBuilder {
	return gowot.Set(&b.Builder, secAllOf, members)
}

func (b *AllOfSecuritySchemeBuilder) Build() (*AllOfSecurityScheme, error) {
	return AllOfSecuritySchemeFromJSON(b.name, b.Finish())
}

func checkCombo(o *node.Object, combinator string, members gowot.Field[[]ComboMember]) error {
	if err := checkScheme(o, SchemeCombo); err != nil {
		return err
	}
	if err := checkCombinator(o); err != nil {
		return err
	}
	if !o.Has(combinator) {
		return gowot.Root().Field(combinator).Issues(gowot.CodeRequired, combinator)
	}
	return gowot.Validate(o, members)
}

// ---- additional ----

// AdditionalSecurityScheme is a scheme outside the base vocabulary, such as a
// vendor extension. It is never produced by SecuritySchemeFromJSON.
type AdditionalSecurityScheme struct{ securityBase }

// AdditionalSecuritySchemeFromJSON accepts any scheme name that the base
// vocabulary does not define.
func AdditionalSecuritySchemeFromJSON(name string, o *node.Object) (*AdditionalSecurityScheme, error) {
	scheme, err := schemeOf(o)
	if err != nil {
		return nil, err
	}
	if slices.Contains(knownSchemes, scheme) {
		return nil, gowot.Root().Field("scheme").Issues(gowot.CodeInvalidEnum,
			"scheme "+scheme+" has a dedicated type", "actual", scheme)
	}
	if err := gowot.Validate(o, commonSecurityFields...); err != nil {
		return nil, err
	}
	return &AdditionalSecurityScheme{newSecurityBase("AdditionalSecurityScheme", name, o)}, nil
}

// Get returns any member of the scheme, including vendor fields.
func (s *AdditionalSecurityScheme) Get(key string) (node.Node, bool) { return s.ToJSON().Get(key) }

func (s *AdditionalSecurityScheme) ToBuilder() *AdditionalSecuritySchemeBuilder {
	return newAdditionalSecurityBuilder(s.name, s.Scheme(), s.ToJSON())
}

// AdditionalSecuritySchemeBuilder stages an AdditionalSecurityScheme. It is single use.
type AdditionalSecuritySchemeBuilder struct {
	securityBuilder[*AdditionalSecuritySchemeBuilder]
}

// NewAdditionalSecuritySchemeBuilder panics when scheme belongs to the base
// vocabulary.
func NewAdditionalSecuritySchemeBuilder(name, scheme string) *AdditionalSecuritySchemeBuilder {
	return newAdditionalSecurityBuilder(name, scheme, nil)
}

func newAdditionalSecurityBuilder(name, scheme string, from *node.Object) *AdditionalSecuritySchemeBuilder {
	if slices.Contains(knownSchemes, scheme) {
		gowot.Preconditionf("scheme %q has a dedicated builder", scheme)
	}
	b := &AdditionalSecuritySchemeBuilder{}
	b.securityBuilder = newSecurityBuilder(b, name, scheme, from)
	return b
}

// Set writes a vendor member; nil removes it.
func (b *AdditionalSecuritySchemeBuilder) Set(key string, v node.Node) *AdditionalSecuritySchemeBuilder {
	return b.PutValue(key, v)
}

func (b *AdditionalSecuritySchemeBuilder) Build() (*AdditionalSecurityScheme, error) {
	return AdditionalSecuritySchemeFromJSON(b.name, b.Finish())
}
