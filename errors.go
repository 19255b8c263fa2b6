package gowot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/gowot/i18n"
	"github.com/reoring/gowot/node"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeInvalidFormat        = "invalid_format"
	CodeInvalidEnum          = "invalid_enum"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeMutuallyExclusive    = "mutually_exclusive"
	// Document tree errors surfaced by the node parsers.
	CodeParseError   = node.CodeParseError
	CodeDuplicateKey = node.CodeDuplicateKey
	CodeTooDeep      = node.CodeTooDeep
	CodeTooBig       = node.CodeTooBig
)

// Issue represents a single decode or validation failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /properties/status/type).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected kind, offending value, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string"}) for
	// i18n and diagnostics.
	Params map[string]any
}

// NewIssue builds an Issue with the translated message for code.
func NewIssue(path, code, hint string) Issue {
	return Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint}
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path (expected string)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Prefix returns a copy of iss with every path rebased under prefix, which is
// itself a JSON Pointer.
func (iss Issues) Prefix(prefix string) Issues {
	if prefix == "" || prefix == "/" || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssues maps any error into Issues. Parse errors from the node package
// keep their code and path.
func ToIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var pe *node.ParseError
	if errors.As(err, &pe) {
		return Issues{{Path: pe.Path, Code: pe.Code, Message: i18n.T(pe.Code, nil), Hint: pe.Message, Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Hint: err.Error(), Cause: err}}
}

// issuesOrNil keeps the error interface nil when there is nothing to report.
func issuesOrNil(iss Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// Err returns iss as an error, or nil when empty.
func (iss Issues) Err() error { return issuesOrNil(iss) }
