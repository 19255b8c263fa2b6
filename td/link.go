package td

import (
	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
)

var (
	linkHref     = gowot.StringField("href").Required()
	linkType     = gowot.StringField("type")
	linkRel      = gowot.StringField("rel")
	linkAnchor   = gowot.StringField("anchor")
	linkSizes    = gowot.StringField("sizes")
	linkHreflang = Hreflangs.Field("hreflang")

	verInstance = gowot.StringField("instance")
	verModel    = gowot.StringField("model")
)

// Link is a web link from the Thing to another resource.
type Link struct{ gowot.Wrapper }

// LinkFromJSON validates o as a link; "href" is required.
func LinkFromJSON(o *node.Object) (*Link, error) {
	if err := gowot.Validate(o, linkHref, linkType, linkRel, linkAnchor, linkSizes, linkHreflang); err != nil {
		return nil, err
	}
	return &Link{gowot.NewWrapper("Link", o)}, nil
}

func decodeLink(n node.Node, at gowot.PathRef) (*Link, error) {
	o, err := gowot.AsObject(n, at)
	if err != nil {
		return nil, err
	}
	l, err := LinkFromJSON(o)
	return l, gowot.Nested(at, err)
}

func (l *Link) Href() string {
	v, _ := linkHref.Lookup(l.ToJSON())
	return v
}

func (l *Link) Type() (string, bool)   { return linkType.Lookup(l.ToJSON()) }
func (l *Link) Rel() (string, bool)    { return linkRel.Lookup(l.ToJSON()) }
func (l *Link) Anchor() (string, bool) { return linkAnchor.Lookup(l.ToJSON()) }
func (l *Link) Sizes() (string, bool)  { return linkSizes.Lookup(l.ToJSON()) }

func (l *Link) Hreflang() (gowot.Cardinality[Hreflang], bool) {
	return linkHreflang.Lookup(l.ToJSON())
}

func (l *Link) ToBuilder() *LinkBuilder { return newLinkBuilder(l.ToJSON()) }

// LinkBuilder stages a Link. It is single use.
type LinkBuilder struct {
	gowot.Builder[*LinkBuilder]
}

// NewLinkBuilder starts a link pointing at href.
func NewLinkBuilder(href string) *LinkBuilder { return newLinkBuilder(nil).SetHref(href) }

func newLinkBuilder(from *node.Object) *LinkBuilder {
	b := &LinkBuilder{}
	b.Builder = gowot.NewBuilder(b, from)
	return b
}

func (b *LinkBuilder) SetHref(href string) *LinkBuilder { return gowot.Set(&b.Builder, linkHref, href) }
func (b *LinkBuilder) SetType(t string) *LinkBuilder    { return gowot.Set(&b.Builder, linkType, t) }
func (b *LinkBuilder) SetRel(rel string) *LinkBuilder   { return gowot.Set(&b.Builder, linkRel, rel) }
func (b *LinkBuilder) SetAnchor(a string) *LinkBuilder  { return gowot.Set(&b.Builder, linkAnchor, a) }
func (b *LinkBuilder) SetSizes(s string) *LinkBuilder   { return gowot.Set(&b.Builder, linkSizes, s) }

// SetHreflang writes one or more language tags; nil removes them.
func (b *LinkBuilder) SetHreflang(h gowot.Cardinality[Hreflang]) *LinkBuilder {
	return gowot.SetCardinality(&b.Builder, "hreflang", Hreflangs, h)
}

func (b *LinkBuilder) Build() (*Link, error) { return LinkFromJSON(b.Finish()) }

// VersionInfo carries the version of a Thing instance and of its model.
type VersionInfo struct{ gowot.Wrapper }

// VersionInfoFromJSON validates a "version" object.
func VersionInfoFromJSON(o *node.Object) (*VersionInfo, error) {
	if err := gowot.Validate(o, verInstance, verModel); err != nil {
		return nil, err
	}
	return &VersionInfo{gowot.NewWrapper("VersionInfo", o)}, nil
}

// NewVersionInfo builds a VersionInfo; an empty model is left out.
func NewVersionInfo(instance, model string) *VersionInfo {
	b := node.NewObjectBuilder().Set("instance", node.String(instance))
	if model != "" {
		b.Set("model", node.String(model))
	}
	return &VersionInfo{gowot.NewWrapper("VersionInfo", b.Build())}
}

func (v *VersionInfo) Instance() (string, bool) { return verInstance.Lookup(v.ToJSON()) }
func (v *VersionInfo) Model() (string, bool)    { return verModel.Lookup(v.ToJSON()) }
