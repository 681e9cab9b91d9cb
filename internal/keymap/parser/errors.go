package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a breadcrumb of mapping keys and sequence indices identifying a
// location inside a parsed document. Segments are strings or ints.
type Path []any

// Child returns a new path with seg appended. The receiver is not
// modified and remains safe to reuse.
func (p Path) Child(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String renders the path as a dotted breadcrumb like "items.f.items".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		switch s := seg.(type) {
		case string:
			b.WriteString(s)
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			fmt.Fprintf(&b, "%v", s)
		}
	}
	return b.String()
}

// ParseError reports a schema violation in a configuration document.
// The first violation found aborts the whole parse; no partial tree is
// produced.
type ParseError struct {
	// Message describes what is wrong.
	Message string

	// Path locates the offending value inside the document.
	Path Path

	// Value is the offending raw value (may be nil).
	Value any

	// Err is the underlying cause when wrapping a YAML decoder failure
	// or a key-code grammar failure.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Err != nil && !strings.Contains(msg, e.Err.Error()) {
		msg = msg + ": " + e.Err.Error()
	}
	if len(e.Path) == 0 {
		return msg
	}
	return e.Path.String() + ": " + msg
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error { return e.Err }

func newError(path Path, message string, value any) *ParseError {
	return &ParseError{Message: message, Path: path, Value: value}
}
