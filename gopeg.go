package gopeg

import "fmt"

// --- Locations and spans ----------------------------------------------------

// Location is a position within a named input: a 1-based line number and a
// 1-based column. Columns count runes, not bytes. Locations of the same
// input are ordered by (line, column).
type Location struct {
	Name string // name of the input this location refers to
	Line int    // 1-based
	Col  int    // 1-based, counted in runes
}

// Before returns true if l is strictly earlier than other, comparing by
// (line, column). Inputs are not compared; comparing locations of different
// inputs is meaningless.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Col < other.Col
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Name, l.Line, l.Col)
}

// Span is a region of input text, given by a start and an end location of
// the same input. The end location is exclusive: it denotes the position
// just behind the last character of the region.
type Span struct {
	Start Location
	End   Location
}

// IsNull returns true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the minimal span covering both s and other.
// Both spans must refer to the same input; extending across inputs is a
// configuration error and panics.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if s.Start.Name != other.Start.Name {
		panic(fmt.Sprintf("gopeg: cannot join spans of different inputs (%q and %q)",
			s.Start.Name, other.Start.Name))
	}
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}

// Join computes the minimal span covering all given spans, all of which must
// refer to the same input. Null spans are skipped.
func Join(spans ...Span) Span {
	var joined Span
	for _, sp := range spans {
		joined = joined.Extend(sp)
	}
	return joined
}

func (s Span) String() string {
	return fmt.Sprintf("(%d:%d…%d:%d)", s.Start.Line, s.Start.Col, s.End.Line, s.End.Col)
}

// --- Tokens -----------------------------------------------------------------

// Token is one lexical unit of input, produced by a scanner and immutable
// thereafter.
//
// An example would be a token for an integer dimension:
//
//    TokType = "dimension"   // type tag of the lexical rule that matched
//    Lexeme  = "23"          // lexeme as it appeared in the input
//    Value   = 23            // transformed value, an int
//    Span    = (1:1…1:3)     // region of input the lexeme covers
//
// Token.Value is the lexical rule's transform applied to the lexeme, or the
// lexeme itself if the rule declares no transform.
type Token struct {
	kind   string
	lexeme string
	value  interface{}
	span   Span
	ignore bool
}

// MakeToken creates an immutable token value.
func MakeToken(kind, lexeme string, value interface{}, span Span, ignore bool) Token {
	return Token{
		kind:   kind,
		lexeme: lexeme,
		value:  value,
		span:   span,
		ignore: ignore,
	}
}

// TokType returns the type tag of the lexical rule which produced t.
func (t Token) TokType() string {
	return t.kind
}

// Lexeme returns the matched input text.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Value returns the token's computed value.
func (t Token) Value() interface{} {
	return t.value
}

// Span returns the input region the token covers.
func (t Token) Span() Span {
	return t.span
}

// Ignored flags tokens which do not become visible parts of a clause
// (whitespace, separators). Ignored tokens still take part in matching and
// span computation.
func (t Token) Ignored() bool {
	return t.ignore
}

func (t Token) String() string {
	return fmt.Sprintf("[%s %q %v]", t.kind, t.lexeme, t.span)
}

// --- Clauses ----------------------------------------------------------------

// Part is a matched constituent of a clause: either a Token or a *Clause.
type Part interface {
	Span() Span
	Value() interface{}
}

var _ Part = Token{}
var _ Part = &Clause{}

// Clause is a successfully parsed non-terminal node. Its type tag is the
// name of the producing grammar rule, its parts are the matched
// constituents with ignored tokens filtered out, and its span covers all
// matched constituents, including ignored ones. A clause is immutable; the
// value is attached by WithValue during construction.
type Clause struct {
	name  string
	parts []Part
	span  Span
	value interface{}
}

// MakeClause creates a clause without a value. The parts slice is owned by
// the clause afterwards.
func MakeClause(name string, parts []Part, span Span) *Clause {
	return &Clause{
		name:  name,
		parts: parts,
		span:  span,
	}
}

// WithValue returns a copy of c carrying the given value. The original
// clause is left untouched, keeping clauses free of mutation.
func (c *Clause) WithValue(value interface{}) *Clause {
	cc := *c
	cc.value = value
	return &cc
}

// Type returns the name of the grammar rule which produced c.
func (c *Clause) Type() string {
	return c.name
}

// Parts returns the matched constituents, ignore-filtered.
// Callers must not modify the returned slice.
func (c *Clause) Parts() []Part {
	return c.parts
}

// Len returns the number of (non-ignored) parts.
func (c *Clause) Len() int {
	return len(c.parts)
}

// Child returns the i-th part.
func (c *Clause) Child(i int) Part {
	return c.parts[i]
}

// Span returns the input region the clause covers.
func (c *Clause) Span() Span {
	return c.span
}

// Value returns the clause's computed value.
func (c *Clause) Value() interface{} {
	return c.value
}

func (c *Clause) String() string {
	return fmt.Sprintf("(%s |%d| %v)", c.name, len(c.parts), c.span)
}
