package node_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gowot/node"
)

func TestJSON_RoundTripPreservesOrderAndNumbers(t *testing.T) {
	in := `{"z":1.50,"a":{"y":[1,2,{"k":null}],"b":true},"s":"hé \"q\" <tag>","big":12345678901234567890}`
	n, err := node.ParseJSON([]byte(in))
	require.NoError(t, err)

	out, err := node.MarshalJSON(n)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1.50,"a":{"y":[1,2,{"k":null}],"b":true},"s":"hé \"q\" <tag>","big":12345678901234567890}`, string(out))

	again, err := node.ParseJSON(out)
	require.NoError(t, err)
	out2, err := node.MarshalJSON(again)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(out2))
}

func TestJSON_KeepsHTMLCharactersLiteral(t *testing.T) {
	in := `{"href":"http://x/?a=1&b=<2>"}`
	out, err := node.MarshalJSON(node.MustParseJSON(in))
	require.NoError(t, err)
	assert.Equal(t, in, string(out))

	out, err = node.MarshalJSONIndent(node.MustParseJSON(`{"k<>&":"a&b"}`), "", " ")
	require.NoError(t, err)
	assert.Equal(t, "{\n \"k<>&\": \"a&b\"\n}", string(out))
}

func TestJSON_Indent(t *testing.T) {
	n := node.MustParseJSON(`{"a":[1,{}],"b":[]}`)
	out, err := node.MarshalJSONIndent(n, "", "  ")
	require.NoError(t, err)
	want := "{\n  \"a\": [\n    1,\n    {}\n  ],\n  \"b\": []\n}"
	assert.Equal(t, want, string(out))
}

func TestJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []node.ParseOption
		code string
		path string
	}{
		{"duplicate key", `{"a":1,"b":{"c":1,"c":2}}`, nil, node.CodeDuplicateKey, "/b/c"},
		{"too deep", `{"a":{"b":{"c":1}}}`, []node.ParseOption{node.WithMaxDepth(2)}, node.CodeTooDeep, "/a/b"},
		{"too big", `{"a":1}`, []node.ParseOption{node.WithMaxBytes(3)}, node.CodeTooBig, "/"},
		{"trailing data", `{} {}`, nil, node.CodeParseError, "/"},
		{"truncated", `{"a":`, nil, node.CodeParseError, ""},
		{"missing colon", `{"a" 1}`, nil, node.CodeParseError, "/"},
		{"missing comma", `[1 2]`, nil, node.CodeParseError, "/"},
		{"trailing comma", `{"a":1,}`, nil, node.CodeParseError, "/"},
		{"leading comma", `{,"a":1}`, nil, node.CodeParseError, "/"},
		{"colon in array", `["a":1]`, nil, node.CodeParseError, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := node.ParseJSON([]byte(tt.in), tt.opts...)
			require.Error(t, err)
			var pe *node.ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
			assert.Equal(t, tt.code, pe.Code)
			if tt.path != "" {
				assert.Equal(t, tt.path, pe.Path)
			}
		})
	}
}

func TestJSON_PointerEscaping(t *testing.T) {
	_, err := node.ParseJSON([]byte(`{"a/b":{"~x":1,"~x":2}}`))
	var pe *node.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "/a~1b/~0x", pe.Path)
}

func TestJSON_ReaderHonoursMaxBytes(t *testing.T) {
	_, err := node.ParseJSONReader(strings.NewReader(`{"a":"0123456789"}`), node.WithMaxBytes(5))
	var pe *node.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, node.CodeTooBig, pe.Code)
}

func TestJSON_MarshalRejectsInvalidNumber(t *testing.T) {
	o := node.NewObjectBuilder().Set("n", node.Number("NaN")).Build()
	_, err := node.MarshalJSON(o)
	assert.Error(t, err)
}
