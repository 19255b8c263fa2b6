package node

import (
	"fmt"
	"slices"

	j "github.com/goccy/go-json"
)

// FromAny converts plain Go values into nodes. Map keys are sorted because Go
// maps carry no order.
func FromAny(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Node:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Number(fmt.Sprint(x)), nil
	case uint64:
		return Number(fmt.Sprint(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case j.Number:
		return ParseNumber(string(x))
	case []string:
		return Strings(x...), nil
	case []any:
		b := NewArrayBuilder()
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			b.Append(n)
		}
		return b.Build(), nil
	case map[string]string:
		b := NewObjectBuilder()
		for _, k := range sortedKeys(x) {
			b.Set(k, String(x[k]))
		}
		return b.Build(), nil
	case map[string]any:
		b := NewObjectBuilder()
		for _, k := range sortedKeys(x) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			b.Set(k, n)
		}
		return b.Build(), nil
	}
	return nil, fmt.Errorf("node: unsupported value of type %T", v)
}

// ToAny converts n into plain Go values: map[string]any, []any, string,
// json.Number, bool and nil.
func ToAny(n Node) any {
	switch x := n.(type) {
	case *Object:
		m := make(map[string]any, x.Len())
		for k, v := range x.All() {
			m[k] = ToAny(v)
		}
		return m
	case *Array:
		out := make([]any, 0, x.Len())
		for _, v := range x.All() {
			out = append(out, ToAny(v))
		}
		return out
	case String:
		return string(x)
	case Number:
		return j.Number(x)
	case Bool:
		return bool(x)
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
