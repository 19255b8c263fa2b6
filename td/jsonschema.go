package td

import (
	"github.com/reoring/gowot/jsonschema"
	"github.com/reoring/gowot/node"
)

// JSONSchemaOf exports s as a JSON Schema. Members without a JSON Schema
// counterpart, such as unit or @type, are dropped.
func JSONSchemaOf(s DataSchema) *jsonschema.Schema {
	if p, ok := s.(*PropertyAffordance); ok {
		s = p.Schema()
	}
	out := &jsonschema.Schema{Type: string(s.Type()), Format: optional(s.Format())}
	out.Title, _ = s.Title()
	out.Description, _ = s.Description()
	if v, ok := s.Default(); ok {
		out.Default = node.ToAny(v)
	}
	if v, ok := s.Const(); ok {
		out.Const = node.ToAny(v)
	}
	for _, v := range s.Enum() {
		out.Enum = append(out.Enum, node.ToAny(v))
	}
	out.ReadOnly, _ = s.ReadOnly()
	out.WriteOnly, _ = s.WriteOnly()
	for _, o := range s.OneOf() {
		out.OneOf = append(out.OneOf, JSONSchemaOf(o))
	}

	switch x := s.(type) {
	case *IntegerSchema:
		out.Minimum = intBound(x.Minimum())
		out.Maximum = intBound(x.Maximum())
		out.ExclusiveMinimum = intBound(x.ExclusiveMinimum())
		out.ExclusiveMaximum = intBound(x.ExclusiveMaximum())
		out.MultipleOf = intBound(x.MultipleOf())
	case *NumberSchema:
		out.Minimum = floatBound(x.Minimum())
		out.Maximum = floatBound(x.Maximum())
		out.ExclusiveMinimum = floatBound(x.ExclusiveMinimum())
		out.ExclusiveMaximum = floatBound(x.ExclusiveMaximum())
		out.MultipleOf = floatBound(x.MultipleOf())
	case *StringSchema:
		out.MinLength = length(x.MinLength())
		out.MaxLength = length(x.MaxLength())
		out.Pattern = optional(x.Pattern())
		out.ContentEncoding = optional(x.ContentEncoding())
		out.ContentMediaType = optional(x.ContentMediaType())
	case *ObjectSchema:
		props := x.Properties()
		for name, p := range props.All() {
			out.Properties = append(out.Properties, jsonschema.Property{Name: name, Schema: JSONSchemaOf(p)})
		}
		out.Required = x.Required()
	case *ArraySchema:
		if items, ok := x.Items(); ok {
			if items.IsTuple() {
				for _, it := range items.Schemas() {
					out.PrefixItems = append(out.PrefixItems, JSONSchemaOf(it))
				}
			} else {
				out.Items = JSONSchemaOf(items.Schemas()[0])
			}
		}
		out.MinItems = length(x.MinItems())
		out.MaxItems = length(x.MaxItems())
	}
	return out
}

func optional(s string, _ bool) string { return s }

func intBound(v int64, ok bool) *float64 {
	if !ok {
		return nil
	}
	f := float64(v)
	return &f
}

func floatBound(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

func length(v int64, ok bool) *int {
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}
