package td

import (
	"errors"
	"regexp"

	"golang.org/x/text/language"

	gowot "github.com/reoring/gowot"
)

// TypeTag is one semantic annotation of "@type".
type TypeTag string

// SecurityRef names an entry of securityDefinitions.
type SecurityRef string

// Profile is a profile URI.
type Profile string

// Scope is an OAuth2 scope.
type Scope string

func plainCodec[T ~string](name string) gowot.ScalarCodec[T] {
	return gowot.ScalarCodec[T]{
		Name:       name,
		FromString: func(s string) (T, error) { return T(s), nil },
		ToString:   func(v T) string { return string(v) },
	}
}

var (
	// TypeTags decodes "@type".
	TypeTags = plainCodec[TypeTag]("@type")
	// SecurityRefs decodes "security".
	SecurityRefs = plainCodec[SecurityRef]("security")
	// Profiles decodes "profile".
	Profiles = plainCodec[Profile]("profile")
	// Scopes decodes "scopes".
	Scopes = plainCodec[Scope]("scopes")
	// Hreflangs decodes "hreflang"; every value must be a well-formed BCP 47
	// tag.
	Hreflangs = gowot.ScalarCodec[Hreflang]{
		Name:       "hreflang",
		FromString: ParseHreflang,
		ToString:   Hreflang.String,
	}
)

// Hreflang is a validated BCP 47 language tag. The original spelling is kept
// so that values round-trip unchanged.
type Hreflang struct {
	raw string
	tag language.Tag
}

var langTagGrammar = regexp.MustCompile(`^[A-Za-z]{1,8}(-[A-Za-z0-9]{1,8})*$`)

// ParseHreflang validates s as a language tag. Well-formed tags with
// unregistered subtags are accepted.
func ParseHreflang(s string) (Hreflang, error) {
	if !langTagGrammar.MatchString(s) {
		return Hreflang{}, gowot.InvalidValue(gowot.CodeInvalidFormat, "not a BCP 47 language tag")
	}
	tag, err := language.Parse(s)
	if err != nil {
		var ve language.ValueError
		if !errors.As(err, &ve) {
			return Hreflang{}, gowot.InvalidValue(gowot.CodeInvalidFormat, "not a BCP 47 language tag: "+err.Error())
		}
	}
	return Hreflang{raw: s, tag: tag}, nil
}

// MustHreflang is ParseHreflang for literals.
func MustHreflang(s string) Hreflang {
	h, err := ParseHreflang(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hreflang) String() string { return h.raw }

// Tag returns the parsed language tag.
func (h Hreflang) Tag() language.Tag { return h.tag }
