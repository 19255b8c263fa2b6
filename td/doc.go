// Package td models W3C Web of Things Thing Descriptions and Thing Models as
// typed, immutable values over an ordered document tree.
//
// Every entity wraps exactly one *node.Object, which stays the sole source
// of truth: accessors decode on demand, ToJSON returns the backing object
// itself, and fields the model does not know are carried through untouched.
// Entities are validated when they are constructed (FromJSON or a builder's
// Build), so a value that exists satisfies its per-field invariants.
//
// Polymorphic members are resolved into closed variant sets:
//
//   - data schemas dispatch on "type" (DataSchemaFromJSON), falling back to
//     UntypedSchema when the discriminator is absent or unknown;
//   - security schemes dispatch on "scheme" (SecuritySchemeFromJSON), and
//     an unknown scheme is an error unless AdditionalSecuritySchemeFromJSON
//     is used explicitly;
//   - string-or-array members decode to gowot.Single or gowot.Multiple.
//
// Typical usage:
//
//	thing, err := td.ParseThingDescription(data)
//	for name, p := range thing.Properties().All() {
//		schema := p.Schema()
//		...
//	}
//
//	edited, err := thing.ToBuilder().SetTitle("Lamp").Build()
package td
