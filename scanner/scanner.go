/*
Package scanner turns input text into a token stream, driven by declarative
lexical rules.

Clients hand over an ordered list of rules, each consisting of a type tag,
a regular expression pattern, an optional value transform and an ignore
flag. At every input offset the rules are tried strictly in declaration
order and the first rule whose pattern matches anchored at the offset wins.
This is priority order, not longest-match: an earlier rule with a shorter
match shadows a later rule with a longer one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/source"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopeg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.scanner")
}

// Rule is one declarative lexical rule.
type Rule struct {
	// Type is the tag of tokens this rule produces.
	Type string

	// Pattern is a regular expression (RE2 syntax). Matching is anchored at
	// the current input offset; there is no need to prefix the pattern.
	Pattern string

	// Transform, if non-nil, computes the token value from the matched
	// text. Without a transform the token value is the matched text itself.
	Transform func(string) interface{}

	// Ignore marks lexemes which are filtered from clause parts
	// (whitespace, separators). Ignored tokens still appear in the token
	// stream and take part in grammar matching.
	Ignore bool
}

// Tokenizer scans input text with a fixed, ordered list of lexical rules.
// A tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	rules    []Rule
	patterns []*regexp.Regexp
}

// NewTokenizer compiles the given rules into a tokenizer. Rule order is
// match priority. A pattern which does not compile is a configuration
// error.
func NewTokenizer(rules []Rule) (*Tokenizer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("scanner: no lexical rules given")
	}
	t := &Tokenizer{
		rules:    append([]Rule(nil), rules...),
		patterns: make([]*regexp.Regexp, len(rules)),
	}
	for i, r := range rules {
		re, err := regexp.Compile(`\A(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("scanner: rule %q: %w", r.Type, err)
		}
		t.patterns[i] = re
	}
	return t, nil
}

// Types returns the type tags of all rules, in declaration order. This is
// the lexical half of the identifier universe used for grammar validation.
func (t *Tokenizer) Types() []string {
	types := make([]string, len(t.rules))
	for i, r := range t.rules {
		types[i] = r.Type
	}
	return types
}

// Tokens scans the complete file and returns its token stream. If at some
// offset no rule matches, scanning stops immediately with an
// UnparsableCharacter error locating the offending character; no partial
// token list is returned.
func (t *Tokenizer) Tokens(f *source.File) ([]gopeg.Token, error) {
	text := f.Text()
	var tokens []gopeg.Token
	pos := 0
	line, col := 1, 1
	for pos < len(text) {
		rest := text[pos:]
		matched := false
		for i, re := range t.patterns {
			m := re.FindStringIndex(rest)
			if m == nil || m[1] == 0 {
				// zero-width matches would stall the scan; treat as no match
				continue
			}
			lexeme := rest[:m[1]]
			endLine, endCol := advance(line, col, lexeme)
			span := gopeg.Span{
				Start: f.Location(line, col),
				End:   f.Location(endLine, endCol),
			}
			rule := t.rules[i]
			var value interface{} = lexeme
			if rule.Transform != nil {
				value = rule.Transform(lexeme)
			}
			token := gopeg.MakeToken(rule.Type, lexeme, value, span, rule.Ignore)
			tracer().Debugf("token %s", token)
			tokens = append(tokens, token)
			pos += m[1]
			line, col = endLine, endCol
			matched = true
			break
		}
		if !matched {
			r, _ := utf8.DecodeRuneInString(rest)
			err := diag.At(diag.UnparsableCharacter, f.Location(line, col),
				"unparsable character %q", r)
			err.Char = r
			tracer().Errorf(err.Error())
			return nil, err
		}
	}
	tracer().Debugf("scanned %d tokens from %q", len(tokens), f.Name())
	return tokens, nil
}

// advance computes the end location of a lexeme starting at (line, col).
// The end is exclusive. A lexeme embedding k line breaks ends k lines
// further down, at the column just behind its last line segment.
func advance(line, col int, lexeme string) (int, int) {
	k := strings.Count(lexeme, "\n")
	if k == 0 {
		return line, col + utf8.RuneCountInString(lexeme)
	}
	last := lexeme[strings.LastIndexByte(lexeme, '\n')+1:]
	return line + k, utf8.RuneCountInString(last) + 1
}
