package benchmarks_test

import (
	"bytes"
	"os"
	"testing"

	gowot "github.com/reoring/gowot"
	"github.com/reoring/gowot/node"
	"github.com/reoring/gowot/td"
)

func lampJSON(tb testing.TB) []byte {
	tb.Helper()
	data, err := os.ReadFile("../td/testdata/lamp.td.json")
	if err != nil {
		tb.Fatalf("read fixture: %v", err)
	}
	return data
}

// --- Parse ---

func Benchmark_Parse_Node_JSONBytes(b *testing.B) {
	data := lampJSON(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := node.ParseJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_Node_JSONReader(b *testing.B) {
	data := lampJSON(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := node.ParseJSONReader(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_ThingDescription(b *testing.B) {
	data := lampJSON(b)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := td.ParseThingDescription(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_ThingDescription_YAML(b *testing.B) {
	n, err := node.ParseJSON(lampJSON(b))
	if err != nil {
		b.Fatal(err)
	}
	data, err := node.MarshalYAML(n)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := td.ParseThingDescriptionYAML(data); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Accessors re-decode on every call ---

func Benchmark_Access_Properties(b *testing.B) {
	thing, err := td.ParseThingDescription(lampJSON(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if thing.Properties().Len() != 2 {
			b.Fatal("unexpected property count")
		}
	}
}

// --- Equality ---

func Benchmark_EqualHash(b *testing.B) {
	data := lampJSON(b)
	x, err := td.ParseThingDescription(data)
	if err != nil {
		b.Fatal(err)
	}
	y, err := td.ParseThingDescription(data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !x.Equal(y) || x.Hash() != y.Hash() {
			b.Fatal("documents differ")
		}
	}
}

// --- Build ---

func Benchmark_Build_ThingDescription(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f, err := td.NewFormBuilder[td.PropertyOp]("status").SetOpValue(td.OpReadProperty).Build()
		if err != nil {
			b.Fatal(err)
		}
		p, err := td.NewPropertyAffordanceBuilder(nil).SetObservable(true).AddForm(f).Build()
		if err != nil {
			b.Fatal(err)
		}
		_, err = td.NewThingDescriptionBuilder().
			SetTitle("Lamp").
			SetSecurity(gowot.NewSingle(td.SecurityRef("nosec_sc"))).
			SetProperty("status", p).
			Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}
