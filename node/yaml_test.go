package node_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/gowot/node"
)

func TestYAML_ParseKeepsOrder(t *testing.T) {
	in := `
title: Lamp
properties:
  status:
    type: string
    readOnly: true
  brightness:
    type: integer
    minimum: 0
    maximum: 100
    ratio: 0.5
security: nosec_sc
flag: null
`
	n, err := node.ParseYAML([]byte(in))
	require.NoError(t, err)
	o := n.(*node.Object)
	assert.Equal(t, []string{"title", "properties", "security", "flag"}, o.Keys())

	want := node.MustParseJSON(`{"title":"Lamp","properties":{"status":{"type":"string","readOnly":true},"brightness":{"type":"integer","minimum":0,"maximum":100,"ratio":0.5}},"security":"nosec_sc","flag":null}`)
	assert.True(t, node.Equal(want, n))

	props, _ := o.Get("properties")
	assert.Equal(t, []string{"status", "brightness"}, props.(*node.Object).Keys())
}

func TestYAML_RoundTrip(t *testing.T) {
	n := node.MustParseJSON(`{"b":"true","a":[1,2.5,"x",null,false],"c":{"d":"0x1F"}}`)
	out, err := node.MarshalYAML(n)
	require.NoError(t, err)

	back, err := node.ParseYAML(out)
	require.NoError(t, err)
	assert.True(t, node.Equal(n, back), "yaml:\n%s", out)
	assert.Equal(t, []string{"b", "a", "c"}, back.(*node.Object).Keys())
}

func TestYAML_Errors(t *testing.T) {
	_, err := node.ParseYAML([]byte("a: 1\na: 2\n"))
	assert.Error(t, err)

	_, err = node.ParseYAML([]byte("a: .inf\n"))
	assert.Error(t, err)

	_, err = node.ParseYAML([]byte(""))
	assert.Error(t, err)
}

func TestYAML_Aliases(t *testing.T) {
	n, err := node.ParseYAML([]byte("base: &b {href: x}\nforms: [*b, *b]\n"))
	require.NoError(t, err)
	assert.True(t, node.Equal(node.MustParseJSON(`{"base":{"href":"x"},"forms":[{"href":"x"},{"href":"x"}]}`), n))

	var pe *node.ParseError
	_, err = node.ParseYAML([]byte("a: &x\n  - *x\n"))
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, node.CodeParseError, pe.Code)
	assert.Contains(t, pe.Message, "recursive alias")

	_, err = node.ParseYAML([]byte("a: &x {b: {c: *x}}\n"))
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "recursive alias")
}

func TestYAML_AliasExpansionIsBounded(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&sb, "l%d: &l%d [", i, i)
		for k := 0; k < 10; k++ {
			if k > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "*l%d", i-1)
		}
		sb.WriteString("]\n")
	}
	_, err := node.ParseYAML([]byte(sb.String()))
	var pe *node.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, node.CodeTooBig, pe.Code)
}

func TestYAML_MergeKeys(t *testing.T) {
	in := `
defaults: &d
  contentType: application/json
  op: readproperty
extra: &e
  subprotocol: longpoll
  op: observeproperty
form:
  href: /status
  <<: [*d, *e]
  op: writeproperty
`
	n, err := node.ParseYAML([]byte(in))
	require.NoError(t, err)
	form, _ := n.(*node.Object).Get("form")
	want := node.MustParseJSON(`{"href":"/status","contentType":"application/json","subprotocol":"longpoll","op":"writeproperty"}`)
	assert.True(t, node.Equal(want, form))
	assert.Equal(t, []string{"href", "contentType", "subprotocol", "op"}, form.(*node.Object).Keys())

	_, err = node.ParseYAML([]byte("a:\n  <<: 1\n"))
	assert.Error(t, err)
}
