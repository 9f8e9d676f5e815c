package parser

import (
	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/gopeg/scanner"
	"github.com/npillmayer/gopeg/source"
	"github.com/spf13/afero"
)

// ParseFile runs the complete pipeline over a file from the OS filesystem:
// load, validate the grammar, tokenize, parse. The source file is returned
// alongside the root clause so callers can render diagnostics against it;
// it is non-nil whenever loading succeeded.
func ParseFile(path string, rules []scanner.Rule, g *grammar.Grammar, start string,
	opts ...Option) (*gopeg.Clause, *source.File, error) {
	return ParseFileFS(afero.NewOsFs(), path, rules, g, start, opts...)
}

// ParseFileFS is ParseFile over an arbitrary filesystem.
func ParseFileFS(fs afero.Fs, path string, rules []scanner.Rule, g *grammar.Grammar,
	start string, opts ...Option) (*gopeg.Clause, *source.File, error) {
	f, err := source.LoadFS(fs, path)
	if err != nil {
		return nil, nil, diag.New(diag.IO, "cannot read %q: %v", path, err)
	}
	clause, err := parseSource(f, rules, g, start, opts...)
	return clause, f, err
}

// ParseText runs the pipeline over in-memory text.
func ParseText(name, text string, rules []scanner.Rule, g *grammar.Grammar,
	start string, opts ...Option) (*gopeg.Clause, *source.File, error) {
	f := source.FromString(name, text)
	clause, err := parseSource(f, rules, g, start, opts...)
	return clause, f, err
}

// parseSource is the composite of spec'd steps, validator first: a grammar
// referencing unknown identifiers is rejected before any tokenizing, even
// if no input would exercise the offending alternative.
func parseSource(f *source.File, rules []scanner.Rule, g *grammar.Grammar,
	start string, opts ...Option) (*gopeg.Clause, error) {
	tokenizer, err := scanner.NewTokenizer(rules)
	if err != nil {
		return nil, err
	}
	if err := grammar.Validate(tokenizer.Types(), g); err != nil {
		return nil, err
	}
	tokens, err := tokenizer.Tokens(f)
	if err != nil {
		return nil, err
	}
	return NewParser(g, opts...).Parse(tokens, start)
}
