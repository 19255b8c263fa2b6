package gowot

import (
	"fmt"

	"github.com/reoring/gowot/node"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef struct {
	ptr string
}

// Root returns the document root.
func Root() PathRef { return PathRef{} }

// At returns a PathRef for an existing JSON Pointer.
func At(pointer string) PathRef {
	if pointer == "/" {
		pointer = ""
	}
	return PathRef{ptr: pointer}
}

// Field appends an object key, escaping '~' and '/' per RFC 6901.
func (p PathRef) Field(name string) PathRef {
	return PathRef{ptr: node.AppendPointer(p.ptr, name)}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{ptr: node.AppendIndex(p.ptr, i)}
}

// Pointer renders the path; the root renders as "/".
func (p PathRef) Pointer() string {
	if p.ptr == "" {
		return "/"
	}
	return p.ptr
}

// Issue creates an Issue at p. kv are alternating Params keys and values.
func (p PathRef) Issue(code, hint string, kv ...any) Issue {
	it := NewIssue(p.Pointer(), code, hint)
	if len(kv) > 1 {
		it.Params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			it.Params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return it
}

// Issues wraps a single Issue at p as an error.
func (p PathRef) Issues(code, hint string, kv ...any) Issues {
	return Issues{p.Issue(code, hint, kv...)}
}
