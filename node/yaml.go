package node

import (
	"bytes"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes the first YAML document in data into a node tree.
// Mapping order is kept. Only JSON-compatible content is accepted: mapping
// keys must be scalars and floats must be finite. Aliases are expanded
// (recursive ones are rejected) and merge keys ("<<") are applied.
func ParseYAML(data []byte, opts ...ParseOption) (Node, error) {
	o := collectOptions(opts)
	if o.MaxBytes > 0 && int64(len(data)) > o.MaxBytes {
		return nil, &ParseError{Code: CodeTooBig, Path: "/", Message: "max bytes exceeded"}
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Message: err.Error(), Err: err}
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, &ParseError{Code: CodeParseError, Path: "/", Message: "empty document"}
		}
		root = doc.Content[0]
	}
	if root.Kind == 0 {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Message: "empty document"}
	}
	p := &yamlParser{opt: o, expanding: make(map[*yaml.Node]bool)}
	return p.value(root, "", 0)
}

// maxAliasExpansions bounds the work done on documents that reuse anchors
// many times over.
const maxAliasExpansions = 10000

type yamlParser struct {
	opt       ParseOptions
	expanding map[*yaml.Node]bool
	aliases   int
}

func (p *yamlParser) value(y *yaml.Node, path string, depth int) (Node, error) {
	switch y.Kind {
	case yaml.AliasNode:
		return p.alias(y, path, depth)
	case yaml.MappingNode:
		return p.mapping(y, path, depth)
	case yaml.SequenceNode:
		depth++
		if p.opt.MaxDepth > 0 && depth > p.opt.MaxDepth {
			return nil, &ParseError{Code: CodeTooDeep, Path: pointerOrRoot(path), Message: "max depth exceeded"}
		}
		b := NewArrayBuilder()
		for i, c := range y.Content {
			n, err := p.value(c, AppendIndex(path, i), depth)
			if err != nil {
				return nil, err
			}
			b.Append(n)
		}
		return b.Build(), nil
	case yaml.ScalarNode:
		return yamlScalar(y, path)
	}
	return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "unsupported YAML node"}
}

func (p *yamlParser) alias(y *yaml.Node, path string, depth int) (Node, error) {
	if y.Alias == nil {
		return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "dangling alias"}
	}
	if p.expanding[y.Alias] {
		return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "recursive alias"}
	}
	p.aliases++
	if p.aliases > maxAliasExpansions {
		return nil, &ParseError{Code: CodeTooBig, Path: pointerOrRoot(path), Message: "too many alias expansions"}
	}
	p.expanding[y.Alias] = true
	defer delete(p.expanding, y.Alias)
	return p.value(y.Alias, path, depth)
}

// mapping converts a YAML mapping. Merge keys ("<<") are expanded: keys
// written in the mapping win, then earlier merge sources over later ones.
func (p *yamlParser) mapping(y *yaml.Node, path string, depth int) (Node, error) {
	depth++
	if p.opt.MaxDepth > 0 && depth > p.opt.MaxDepth {
		return nil, &ParseError{Code: CodeTooDeep, Path: pointerOrRoot(path), Message: "max depth exceeded"}
	}
	explicit := make(map[string]bool, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		if k := y.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}
	b := NewObjectBuilder()
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "mapping key must be a scalar"}
		}
		if isMergeKey(k) {
			if err := p.merge(b, explicit, v, path, depth); err != nil {
				return nil, err
			}
			continue
		}
		kp := AppendPointer(path, k.Value)
		if b.Has(k.Value) {
			return nil, &ParseError{Code: CodeDuplicateKey, Path: kp, Message: "duplicate key " + k.Value}
		}
		n, err := p.value(v, kp, depth)
		if err != nil {
			return nil, err
		}
		b.Set(k.Value, n)
	}
	return b.Build(), nil
}

func (p *yamlParser) merge(b *ObjectBuilder, explicit map[string]bool, v *yaml.Node, path string, depth int) error {
	sources := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		sources = v.Content
	}
	for _, src := range sources {
		n, err := p.value(src, path, depth-1)
		if err != nil {
			return err
		}
		o, ok := n.(*Object)
		if !ok {
			return &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "merge key value must be a mapping"}
		}
		for k, mv := range o.All() {
			if !explicit[k] && !b.Has(k) {
				b.Set(k, mv)
			}
		}
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func yamlScalar(y *yaml.Node, path string) (Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: err.Error(), Err: err}
		}
		return Bool(b), nil
	case "!!int":
		if validNumber(y.Value) {
			return Number(y.Value), nil
		}
		var i int64
		if err := y.Decode(&i); err != nil {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: err.Error(), Err: err}
		}
		return Int(i), nil
	case "!!float":
		if validNumber(y.Value) {
			return Number(y.Value), nil
		}
		var f float64
		if err := y.Decode(&f); err != nil {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: err.Error(), Err: err}
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "non-finite number " + y.Value}
		}
		return Float(f), nil
	default:
		return String(y.Value), nil
	}
}

// MarshalYAML renders n as a YAML document with two-space indentation.
func MarshalYAML(n Node) ([]byte, error) {
	y, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{y}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAML(n Node) (*yaml.Node, error) {
	switch x := n.(type) {
	case *Object:
		y := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, v := range x.All() {
			c, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, c)
		}
		return y, nil
	case *Array:
		y := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, v := range x.All() {
			c, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, c)
		}
		return y, nil
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(x)}, nil
	case Number:
		if !validNumber(string(x)) {
			return nil, &strconv.NumError{Func: "MarshalYAML", Num: string(x), Err: strconv.ErrSyntax}
		}
		tag := "!!float"
		if _, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(x)}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(x))}, nil
	case Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, &ParseError{Code: CodeParseError, Path: "/", Message: "cannot marshal node to YAML"}
}
