package td_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gowot/jsonschema"
	"github.com/reoring/gowot/td"
)

func TestJSONSchemaOf(t *testing.T) {
	s, err := td.DataSchemaFromJSON(obj(t, `{
		"type": "object",
		"title": "Reading",
		"unit": "ignored",
		"properties": {
			"level": {"type": "integer", "minimum": 0, "exclusiveMaximum": 10},
			"ratio": {"type": "number", "multipleOf": 0.5},
			"label": {"type": "string", "maxLength": 8, "pattern": "^[a-z]+$", "readOnly": true},
			"pair":  {"type": "array", "items": [{"type": "boolean"}, {"type": "null"}], "minItems": 2},
			"any":   {"oneOf": [{"type": "string"}, {"type": "integer"}], "enum": ["a", 1]}
		},
		"required": ["level"]
	}`))
	require.NoError(t, err)

	js := td.JSONSchemaOf(s)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, "Reading", js.Title)
	assert.Equal(t, []string{"level"}, js.Required)
	assert.Equal(t, []string{"level", "ratio", "label", "pair", "any"}, js.Properties.Names())

	level := js.Properties.Get("level")
	require.NotNil(t, level.Minimum)
	assert.Equal(t, 0.0, *level.Minimum)
	assert.Equal(t, 10.0, *level.ExclusiveMaximum)
	assert.Nil(t, level.Maximum)

	assert.Equal(t, 0.5, *js.Properties.Get("ratio").MultipleOf)

	label := js.Properties.Get("label")
	assert.Equal(t, 8, *label.MaxLength)
	assert.Equal(t, "^[a-z]+$", label.Pattern)
	assert.True(t, label.ReadOnly)

	pair := js.Properties.Get("pair")
	assert.Nil(t, pair.Items)
	require.Len(t, pair.PrefixItems, 2)
	assert.Equal(t, "null", pair.PrefixItems[1].Type)
	assert.Equal(t, 2, *pair.MinItems)

	anyS := js.Properties.Get("any")
	assert.Equal(t, "", anyS.Type)
	require.Len(t, anyS.OneOf, 2)
	assert.Len(t, anyS.Enum, 2)

	out, err := jsonschema.Marshal(js)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"$schema": "https://json-schema.org/draft/2020-12/schema"`)
	assert.NotContains(t, string(out), "ignored")
	assert.Less(t, strings.Index(string(out), `"level"`), strings.Index(string(out), `"any"`))
}

func TestJSONSchemaOf_PropertyAffordance(t *testing.T) {
	p, err := td.PropertyAffordanceFromJSON(obj(t, `{"type":"array","items":{"type":"string"},"forms":[{"href":"x"}]}`))
	require.NoError(t, err)
	js := td.JSONSchemaOf(p)
	assert.Equal(t, "array", js.Type)
	require.NotNil(t, js.Items)
	assert.Equal(t, "string", js.Items.Type)
}
