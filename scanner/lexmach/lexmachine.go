package lexmach

import (
	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/scanner"
	"github.com/npillmayer/gopeg/source"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'gopeg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.scanner")
}

// Adapter wraps a lexmachine DFA compiled from a declarative rule list.
type Adapter struct {
	rules []scanner.Rule
	lexer *lexmachine.Lexer
}

// NewAdapter compiles the rules into a lexmachine DFA. It returns an error
// if compiling the DFA failed.
func NewAdapter(rules []scanner.Rule) (*Adapter, error) {
	a := &Adapter{
		rules: append([]scanner.Rule(nil), rules...),
		lexer: lexmachine.NewLexer(),
	}
	for i, r := range rules {
		a.lexer.Add([]byte(r.Pattern), makeToken(i))
	}
	if err := a.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// makeToken is a lexmachine action wrapping a match into a token carrying
// the index of the matching rule.
func makeToken(ruleIndex int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(ruleIndex, string(m.Bytes), m), nil
	}
}

// Tokens scans the complete file. Ignored rules still produce tokens, with
// their ignore flag set, so token streams are interchangeable with those of
// the regexp-based scanner. Input no rule matches yields an
// UnparsableCharacter error.
//
// lexmachine counts columns in bytes, so reported columns drift from the
// toolbox's rune columns on non-ASCII lines.
func (a *Adapter) Tokens(f *source.File) ([]gopeg.Token, error) {
	scan, err := a.lexer.Scanner([]byte(f.Text()))
	if err != nil {
		return nil, err
	}
	var tokens []gopeg.Token
	for {
		tok, err, eof := scan.Next()
		if eof {
			return tokens, nil
		}
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				text := f.Text()
				char := rune('?')
				if ui.StartTC < len(text) {
					char = rune(text[ui.StartTC])
				}
				derr := diag.At(diag.UnparsableCharacter,
					f.Location(ui.StartLine, ui.StartColumn),
					"unparsable character %q", char)
				derr.Char = char
				return nil, derr
			}
			return nil, err
		}
		lmtok := tok.(*lexmachine.Token)
		rule := a.rules[lmtok.Type]
		lexeme := string(lmtok.Lexeme)
		var value interface{} = lexeme
		if rule.Transform != nil {
			value = rule.Transform(lexeme)
		}
		span := gopeg.Span{
			Start: f.Location(lmtok.StartLine, lmtok.StartColumn),
			End:   f.Location(lmtok.EndLine, lmtok.EndColumn+1),
		}
		token := gopeg.MakeToken(rule.Type, lexeme, value, span, rule.Ignore)
		tracer().Debugf("token %s", token)
		tokens = append(tokens, token)
	}
}
