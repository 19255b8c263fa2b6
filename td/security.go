package td

import (
	"fmt"
	"hash/fnv"
	"slices"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

// Scheme discriminator values handled by SecuritySchemeFromJSON.
const (
	SchemeNoSec  = "nosec"
	SchemeBasic  = "basic"
	SchemeAPIKey = "apikey"
	SchemePSK    = "psk"
	SchemeOAuth2 = "oauth2"
	SchemeCombo  = "combo"
	SchemeBearer = "bearer"
	SchemeAuto   = "auto"
)

var knownSchemes = []string{
	SchemeNoSec, SchemeBasic, SchemeAPIKey, SchemePSK, SchemeOAuth2, SchemeCombo, SchemeBearer, SchemeAuto,
}

// SecurityIn is the location of credentials.
type SecurityIn string

const (
	InHeader SecurityIn = "header"
	InQuery  SecurityIn = "query"
	InBody   SecurityIn = "body"
	InCookie SecurityIn = "cookie"
	InURI    SecurityIn = "uri"
	InAuto   SecurityIn = "auto"
)

// SecurityScheme is one named security mechanism. The concrete type is
// selected by the "scheme" discriminator.
type SecurityScheme interface {
	gowot.Entity
	ComboMember
	// Name is the key under which the scheme is registered in
	// securityDefinitions. Inline combo members have an empty name.
	Name() string
	Scheme() string
	TypeTags() (gowot.Cardinality[TypeTag], bool)
	Description() (string, bool)
	Descriptions() map[string]string
	Proxy() (string, bool)
	Equal(o gowot.Entity) bool
	Hash() uint64
	securityScheme()
}

// ComboMember is one entry of a combo scheme's oneOf or allOf list: either a
// SecurityRef naming a definition or an inline SecurityScheme.
type ComboMember interface {
	comboMember()
}

func (SecurityRef) comboMember() {}

var (
	secScheme        = gowot.StringField("scheme").Required()
	secTypes         = TypeTags.Field("@type")
	secDescription   = gowot.StringField("description")
	secDescriptions  = gowot.StringMapField("descriptions")
	secProxy         = gowot.StringField("proxy")
	secIn            = gowot.EnumField("in", string(InHeader), string(InQuery), string(InBody), string(InCookie), string(InURI), string(InAuto))
	secParamName     = gowot.StringField("name")
	secIdentity      = gowot.StringField("identity")
	secAuthorization = gowot.StringField("authorization")
	secToken         = gowot.StringField("token")
	secRefresh       = gowot.StringField("refresh")
	secFlow          = gowot.StringField("flow")
	secAlg           = gowot.StringField("alg")
	secFormat        = gowot.StringField("format")
	secScopes        = Scopes.Field("scopes")

	// assigned in init: members recurse into SecuritySchemeFromJSON
	secOneOf gowot.Field[[]ComboMember]
	secAllOf gowot.Field[[]ComboMember]

	commonSecurityFields = []gowot.Checker{secScheme, secTypes, secDescription, secDescriptions, secProxy}
)

func init() {
	secOneOf = gowot.ListField("oneOf", decodeComboMember, encodeComboMember)
	secAllOf = gowot.ListField("allOf", decodeComboMember, encodeComboMember)
}

func decodeComboMember(n node.Node, at gowot.PathRef) (ComboMember, error) {
	switch x := n.(type) {
	case node.String:
		return SecurityRef(x), nil
	case *node.Object:
		s, err := SecuritySchemeFromJSON("", x)
		if err != nil {
			return nil, gowot.Nested(at, err)
		}
		return s, nil
	}
	return nil, at.Issues(gowot.CodeInvalidType, "expected scheme name or scheme object", "actual", n.Kind().String())
}

func encodeComboMember(m ComboMember) node.Node {
	switch x := m.(type) {
	case SecurityRef:
		return node.String(x)
	case SecurityScheme:
		return x.ToJSON()
	}
	gowot.Preconditionf("unsupported combo member %T", m)
	return nil
}

// SecuritySchemeFromJSON dispatches n on its "scheme" member. A combo scheme
// is dispatched again on which of oneOf or allOf it carries; exactly one
// must be present. Unknown schemes are rejected; vendor schemes go through
// AdditionalSecuritySchemeFromJSON.
func SecuritySchemeFromJSON(name string, n node.Node) (SecurityScheme, error) {
	o, err := gowot.AsObject(n, gowot.Root())
	if err != nil {
		return nil, err
	}
	scheme, err := schemeOf(o)
	if err != nil {
		return nil, err
	}
	switch scheme {
	case SchemeNoSec:
		return asScheme(NoSecuritySchemeFromJSON(name, o))
	case SchemeBasic:
		return asScheme(BasicSecuritySchemeFromJSON(name, o))
	case SchemeAPIKey:
		return asScheme(APIKeySecuritySchemeFromJSON(name, o))
	case SchemePSK:
		return asScheme(PSKSecuritySchemeFromJSON(name, o))
	case SchemeOAuth2:
		return asScheme(OAuth2SecuritySchemeFromJSON(name, o))
	case SchemeBearer:
		return asScheme(BearerSecuritySchemeFromJSON(name, o))
	case SchemeAuto:
		return asScheme(AutoSecuritySchemeFromJSON(name, o))
	case SchemeCombo:
		if err := checkCombinator(o); err != nil {
			return nil, err
		}
		if o.Has("oneOf") {
			return asScheme(OneOfSecuritySchemeFromJSON(name, o))
		}
		return asScheme(AllOfSecuritySchemeFromJSON(name, o))
	}
	return nil, gowot.Root().Field("scheme").Issues(gowot.CodeDiscriminatorUnknown,
		fmt.Sprintf("unsupported scheme %q", scheme), "actual", scheme)
}

func asScheme[S SecurityScheme](s S, err error) (SecurityScheme, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func schemeOf(o *node.Object) (string, error) {
	scheme, ok, err := secScheme.Get(o)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", gowot.Root().Field("scheme").Issues(gowot.CodeDiscriminatorMissing, "scheme")
	}
	return scheme, nil
}

func checkCombinator(o *node.Object) error {
	one, all := o.Has("oneOf"), o.Has("allOf")
	switch {
	case one && all:
		return gowot.Root().Issues(gowot.CodeMutuallyExclusive, "oneOf and allOf are both present", "keys", []string{"oneOf", "allOf"})
	case !one && !all:
		return gowot.Root().Issues(gowot.CodeMutuallyExclusive, "one of oneOf or allOf is required", "keys", []string{"oneOf", "allOf"})
	}
	return nil
}

// checkScheme validates o as a scheme of kind want.
func checkScheme(o *node.Object, want string, fields ...gowot.Checker) error {
	got, err := schemeOf(o)
	if err != nil {
		return err
	}
	if got != want {
		return gowot.Root().Field("scheme").Issues(gowot.CodeInvalidEnum, "expected "+want, "expected", want, "actual", got)
	}
	return gowot.Validate(o, append(slices.Clone(commonSecurityFields), fields...)...)
}

// securityBase carries the accessors every scheme shares.
type securityBase struct {
	gowot.Wrapper
	name string
}

func newSecurityBase(kind, name string, o *node.Object) securityBase {
	return securityBase{Wrapper: gowot.NewWrapper(kind, o), name: name}
}

func (s securityBase) Name() string { return s.name }

func (s securityBase) Scheme() string {
	v, _ := secScheme.Lookup(s.ToJSON())
	return v
}

func (s securityBase) TypeTags() (gowot.Cardinality[TypeTag], bool) { return secTypes.Lookup(s.ToJSON()) }

func (s securityBase) Description() (string, bool) { return secDescription.Lookup(s.ToJSON()) }

func (s securityBase) Descriptions() map[string]string {
	v, _ := secDescriptions.Lookup(s.ToJSON())
	return v
}

func (s securityBase) Proxy() (string, bool) { return secProxy.Lookup(s.ToJSON()) }

// Equal requires the same concrete scheme, the same name and structurally
// equal documents.
func (s securityBase) Equal(o gowot.Entity) bool {
	if !s.Wrapper.Equal(o) {
		return false
	}
	os, ok := o.(SecurityScheme)
	return ok && os.Name() == s.name
}

func (s securityBase) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.name))
	return s.Wrapper.Hash() ^ h.Sum64()
}

func (securityBase) securityScheme() {}
func (securityBase) comboMember()    {}

// securityBuilder carries the setters every scheme builder shares. The
// scheme discriminator is pinned.
type securityBuilder[B any] struct {
	gowot.Builder[B]
	name string
}

func newSecurityBuilder[B any](self B, name, scheme string, from *node.Object) securityBuilder[B] {
	sb := securityBuilder[B]{Builder: gowot.NewBuilder(self, from), name: name}
	sb.Pin("scheme", node.String(scheme))
	return sb
}

// SetName changes the securitySchemeName of the built scheme.
func (b *securityBuilder[B]) SetName(name string) B {
	b.name = name
	return b.Self()
}

func (b *securityBuilder[B]) SetTypeTags(tags gowot.Cardinality[TypeTag]) B {
	return gowot.SetCardinality(&b.Builder, "@type", TypeTags, tags)
}

func (b *securityBuilder[B]) SetDescription(s string) B {
	return gowot.Set(&b.Builder, secDescription, s)
}

// SetDescriptions writes a multi-language map; nil removes it.
func (b *securityBuilder[B]) SetDescriptions(m map[string]string) B {
	return gowot.Set(&b.Builder, secDescriptions, m)
}

func (b *securityBuilder[B]) SetProxy(uri string) B {
	return gowot.Set(&b.Builder, secProxy, uri)
}
