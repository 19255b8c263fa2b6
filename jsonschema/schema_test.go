package jsonschema

import (
	"strings"
	"testing"
)

func TestMarshal_SetsDialectAndOmitsEmpty(t *testing.T) {
	n := 1
	b, err := Marshal(&Schema{Type: "string", MinLength: &n})
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, `"$schema": "`+Draft+`"`) {
		t.Fatalf("missing $schema: %s", got)
	}
	if !strings.Contains(got, `"minLength": 1`) {
		t.Fatalf("missing minLength: %s", got)
	}
	if strings.Contains(got, "properties") || strings.Contains(got, "readOnly") {
		t.Fatalf("empty members should be omitted: %s", got)
	}
}

func TestProperties_KeepOrder(t *testing.T) {
	s := &Schema{Type: "object", Properties: Properties{
		{Name: "zeta", Schema: &Schema{Type: "string"}},
		{Name: "alpha", Schema: &Schema{Type: "integer"}},
	}}
	b, err := Marshal(s)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	got := string(b)
	z, a := strings.Index(got, `"zeta"`), strings.Index(got, `"alpha"`)
	if z < 0 || a < 0 || z > a {
		t.Fatalf("properties out of order: %s", got)
	}
	if s.Properties.Get("alpha").Type != "integer" || s.Properties.Get("missing") != nil {
		t.Fatalf("unexpected lookup result")
	}
}
