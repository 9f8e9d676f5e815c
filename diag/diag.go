/*
Package diag defines the structured error values of the parsing toolbox
and renders them as source-line-plus-caret diagnostics.

Errors carry a kind, a message and, where one exists, the exact input
location of the failure. Presentation concerns like coloring are left to
clients; Render produces plain text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/source"
)

// Kind classifies toolbox errors.
type Kind int

const (
	// IO flags unreadable input. Fatal, never retried.
	IO Kind = iota + 1

	// UnparsableCharacter flags input the scanner got stuck on. Carries the
	// exact location and the offending character.
	UnparsableCharacter

	// UndefinedSubclause flags a grammar alternative referencing an
	// identifier which is neither a token type nor a rule name. Raised by
	// static validation, before any tokenizing.
	UndefinedSubclause

	// UnexpectedToken flags leftover input: the start rule matched, but
	// tokens remain. Carries the first leftover token's location and type.
	UnexpectedToken

	// NoMatch flags a start rule without any successful alternative.
	NoMatch
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "i/o error"
	case UnparsableCharacter:
		return "unparsable character"
	case UndefinedSubclause:
		return "undefined subclause"
	case UnexpectedToken:
		return "unexpected token"
	case NoMatch:
		return "no match"
	}
	return "unknown error"
}

// Error is a structured toolbox error. Loc is nil for errors without an
// input position (validation errors, i/o errors).
type Error struct {
	Kind    Kind
	Message string
	Loc     *gopeg.Location
	Rule    string // UndefinedSubclause: rule containing the reference
	Ident   string // UndefinedSubclause: the unknown identifier
	TokType string // UnexpectedToken: type tag of the leftover token
	Char    rune   // UnparsableCharacter: the offending character
}

func (e *Error) Error() string {
	if e.Loc == nil {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Loc)
}

// New creates an error without an input location.
func New(kind Kind, msg string, args ...interface{}) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: kind, Message: msg}
}

// At creates an error pinned to an input location.
func At(kind Kind, loc gopeg.Location, msg string, args ...interface{}) *Error {
	e := New(kind, msg, args...)
	e.Loc = &loc
	return e
}

// Render produces a human-readable diagnostic for err. Errors carrying a
// location render as a header, the offending source line and a caret under
// the failing column:
//
//    Parsing failed at input.txt:2:3: unparsable character '#'
//    1x#x10
//      ^
//
// Errors without a location render as the bare message. Non-toolbox errors
// render as their Error() string.
func Render(err error, f *source.File) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Loc == nil || f == nil {
		return e.Message
	}
	loc := *e.Loc
	var b strings.Builder
	fmt.Fprintf(&b, "Parsing failed at %s: %s\n", loc, e.Message)
	if loc.Line < 1 || loc.Line > f.LineCount() {
		return b.String()
	}
	line := f.Line(loc.Line)
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(caretPad(line, loc.Col))
	b.WriteString("^")
	return b.String()
}

// caretPad builds the whitespace run aligning a caret under column col.
// Tabs of the source line are replicated so the caret stays aligned on
// tab-indented input.
func caretPad(line string, col int) string {
	var pad strings.Builder
	runes := []rune(line)
	for i := 0; i < col-1; i++ {
		if i < len(runes) && runes[i] == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}
	return pad.String()
}
