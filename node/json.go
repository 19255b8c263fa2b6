package node

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
)

// Parse error codes carried by ParseError.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTooDeep      = "too_deep"
	CodeTooBig       = "too_big"
)

// ParseError reports a syntax or limit violation at a JSON Pointer path.
type ParseError struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Path == "" || e.Path == "/" {
		return "node: " + e.Message
	}
	return fmt.Sprintf("node: %s at %s", e.Message, e.Path)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseOptions bounds the documents accepted by the parsers. Zero values
// mean unlimited.
type ParseOptions struct {
	MaxDepth int
	MaxBytes int64
}

// ParseOption mutates ParseOptions.
type ParseOption func(*ParseOptions)

// WithMaxDepth limits container nesting.
func WithMaxDepth(n int) ParseOption { return func(o *ParseOptions) { o.MaxDepth = n } }

// WithMaxBytes limits the input size.
func WithMaxBytes(n int64) ParseOption { return func(o *ParseOptions) { o.MaxBytes = n } }

// WithOptions replaces all options at once.
func WithOptions(opt ParseOptions) ParseOption { return func(o *ParseOptions) { *o = opt } }

func collectOptions(opts []ParseOption) ParseOptions {
	var o ParseOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// ParseJSON decodes a JSON document into a node tree. Object key order is
// kept; duplicate keys are rejected.
func ParseJSON(data []byte, opts ...ParseOption) (Node, error) {
	o := collectOptions(opts)
	if o.MaxBytes > 0 && int64(len(data)) > o.MaxBytes {
		return nil, &ParseError{Code: CodeTooBig, Path: "/", Message: "max bytes exceeded"}
	}
	// The token stream skips separators without checking them.
	if !j.Valid(data) {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Message: "invalid JSON syntax"}
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &jsonParser{dec: dec, opt: o}
	tok, err := p.next("/")
	if err != nil {
		return nil, err
	}
	n, err := p.value(tok, "", 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Message: "unexpected data after top-level value", Err: err}
	}
	return n, nil
}

// ParseJSONReader reads r fully (bounded by MaxBytes when set) and parses it.
func ParseJSONReader(r io.Reader, opts ...ParseOption) (Node, error) {
	o := collectOptions(opts)
	if o.MaxBytes > 0 {
		r = io.LimitReader(r, o.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Code: CodeParseError, Path: "/", Message: err.Error(), Err: err}
	}
	return ParseJSON(data, opts...)
}

// MustParseJSON is like ParseJSON but panics on error. Intended for fixtures.
func MustParseJSON(s string) Node {
	n, err := ParseJSON([]byte(s))
	if err != nil {
		panic(err)
	}
	return n
}

type jsonParser struct {
	dec *j.Decoder
	opt ParseOptions
}

func (p *jsonParser) next(path string) (any, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: err.Error(), Err: err}
	}
	return tok, nil
}

func (p *jsonParser) value(tok any, path string, depth int) (Node, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return p.object(path, depth+1)
		case '[':
			return p.array(path, depth+1)
		}
		return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "unexpected delimiter " + string(rune(v))}
	case string:
		return String(v), nil
	case j.Number:
		return Number(string(v)), nil
	case float64:
		return Float(v), nil
	case bool:
		return Bool(v), nil
	case nil:
		return Null{}, nil
	}
	return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: fmt.Sprintf("unexpected token %T", tok)}
}

func (p *jsonParser) enter(path string, depth int) error {
	if p.opt.MaxDepth > 0 && depth > p.opt.MaxDepth {
		return &ParseError{Code: CodeTooDeep, Path: pointerOrRoot(path), Message: "max depth exceeded"}
	}
	return nil
}

func (p *jsonParser) object(path string, depth int) (Node, error) {
	if err := p.enter(path, depth); err != nil {
		return nil, err
	}
	b := NewObjectBuilder()
	for {
		tok, err := p.next(path)
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return b.Build(), nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "expected object key"}
		}
		kp := AppendPointer(path, key)
		if b.Has(key) {
			return nil, &ParseError{Code: CodeDuplicateKey, Path: kp, Message: "duplicate key " + key}
		}
		vt, err := p.next(kp)
		if err != nil {
			return nil, err
		}
		v, err := p.value(vt, kp, depth)
		if err != nil {
			return nil, err
		}
		b.Set(key, v)
	}
}

func (p *jsonParser) array(path string, depth int) (Node, error) {
	if err := p.enter(path, depth); err != nil {
		return nil, err
	}
	b := NewArrayBuilder()
	for i := 0; ; i++ {
		tok, err := p.next(path)
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == ']' {
			return b.Build(), nil
		}
		v, err := p.value(tok, AppendIndex(path, i), depth)
		if err != nil {
			return nil, err
		}
		b.Append(v)
	}
}

// AppendPointer appends an escaped object key to a JSON Pointer (RFC 6901).
func AppendPointer(path, key string) string {
	return path + "/" + strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

// AppendIndex appends an array index to a JSON Pointer.
func AppendIndex(path string, i int) string {
	return fmt.Sprintf("%s/%d", path, i)
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// MarshalJSON renders n as compact JSON in document order.
func MarshalJSON(n Node) ([]byte, error) {
	w := &jsonWriter{}
	if err := w.write(n, 0); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// MarshalJSONIndent renders n like MarshalJSON with one element per line.
func MarshalJSONIndent(n Node, prefix, indent string) ([]byte, error) {
	w := &jsonWriter{prefix: prefix, indent: indent, pretty: true}
	if err := w.write(n, 0); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

type jsonWriter struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	enc     *j.Encoder
	prefix  string
	indent  string
	pretty  bool
}

func (w *jsonWriter) newline(depth int) {
	if !w.pretty {
		return
	}
	w.buf.WriteByte('\n')
	w.buf.WriteString(w.prefix)
	for i := 0; i < depth; i++ {
		w.buf.WriteString(w.indent)
	}
}

// writeString keeps '&', '<' and '>' literal so hrefs survive unchanged.
func (w *jsonWriter) writeString(s string) error {
	if w.enc == nil {
		w.enc = j.NewEncoder(&w.scratch)
		w.enc.SetEscapeHTML(false)
	}
	w.scratch.Reset()
	if err := w.enc.Encode(s); err != nil {
		return err
	}
	w.buf.Write(bytes.TrimSuffix(w.scratch.Bytes(), []byte{'\n'}))
	return nil
}

func (w *jsonWriter) write(n Node, depth int) error {
	switch x := n.(type) {
	case nil:
		return errors.New("node: cannot marshal a nil node")
	case *Object:
		if x.Len() == 0 {
			w.buf.WriteString("{}")
			return nil
		}
		w.buf.WriteByte('{')
		first := true
		for k, v := range x.All() {
			if !first {
				w.buf.WriteByte(',')
			}
			first = false
			w.newline(depth + 1)
			if err := w.writeString(k); err != nil {
				return err
			}
			w.buf.WriteByte(':')
			if w.pretty {
				w.buf.WriteByte(' ')
			}
			if err := w.write(v, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte('}')
	case *Array:
		if x.Len() == 0 {
			w.buf.WriteString("[]")
			return nil
		}
		w.buf.WriteByte('[')
		for i, v := range x.All() {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			w.newline(depth + 1)
			if err := w.write(v, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte(']')
	case String:
		return w.writeString(string(x))
	case Number:
		if !validNumber(string(x)) {
			return fmt.Errorf("node: invalid number %q", string(x))
		}
		w.buf.WriteString(string(x))
	case Bool:
		if x {
			w.buf.WriteString("true")
		} else {
			w.buf.WriteString("false")
		}
	case Null:
		w.buf.WriteString("null")
	default:
		return fmt.Errorf("node: unsupported node %T", n)
	}
	return nil
}
