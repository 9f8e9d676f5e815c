package parser

import (
	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// Parser parses token streams against a fixed grammar. A parser is
// immutable and safe for concurrent use: every Parse call owns its own
// cursor and memoization state.
type Parser struct {
	g       *grammar.Grammar
	memoize bool
}

// Option configures a parser.
type Option func(*Parser)

// Memoize enables packrat-style memoization keyed by (rule, cursor
// position). Results are identical with and without it; memoization trades
// memory for bounded re-exploration during backtracking. Off by default.
func Memoize(enable bool) Option {
	return func(p *Parser) {
		p.memoize = enable
	}
}

// NewParser creates a parser for a grammar. The grammar should have been
// validated against the lexical rules beforehand (see grammar.Validate);
// the convenience entry points in this package do so.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{g: g}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse matches the complete token stream against the start rule and
// returns the root clause. Failures are reported as diag errors: NoMatch
// if no alternative of the start rule succeeds at position 0, and
// UnexpectedToken if the start rule matches but tokens remain.
func (p *Parser) Parse(tokens []gopeg.Token, start string) (*gopeg.Clause, error) {
	if p.g.Rule(start) == nil {
		err := diag.New(diag.UndefinedSubclause, "start rule %q is not defined", start)
		err.Ident = start
		return nil, err
	}
	r := &run{g: p.g, tokens: tokens}
	if p.memoize {
		r.memo = make(map[memoKey]memoEntry)
	}
	clause, rest, ok := r.parseRule(start, 0)
	if !ok {
		err := diag.New(diag.NoMatch, "no alternative of rule %q matches", start)
		if r.furthest > 0 && r.furthest <= len(tokens) {
			// backtracking discards failed branches, but the deepest cursor
			// any branch reached is still a useful hint
			loc := furthestLocation(tokens, r.furthest)
			err.Loc = &loc
		}
		tracer().Infof("parse failed: %v", err)
		maybePanic(err.Error())
		return nil, err
	}
	if rest < len(tokens) {
		leftover := tokens[rest]
		err := diag.At(diag.UnexpectedToken, leftover.Span().Start,
			"unexpected token %q (%s)", leftover.Lexeme(), leftover.TokType())
		err.TokType = leftover.TokType()
		tracer().Infof("parse failed: %v", err)
		maybePanic(err.Error())
		return nil, err
	}
	tracer().Debugf("parse of %q succeeded, root covers %v", start, clause.Span())
	return clause, nil
}

func furthestLocation(tokens []gopeg.Token, furthest int) gopeg.Location {
	if furthest < len(tokens) {
		return tokens[furthest].Span().Start
	}
	return tokens[len(tokens)-1].Span().End
}

// --- One parse call ---------------------------------------------------------

type memoKey struct {
	rule   string
	cursor int
}

type memoEntry struct {
	clause *gopeg.Clause
	rest   int
	ok     bool
}

// run is the bookkeeping of a single Parse call. Clause/remainder pairs are
// threaded through recursive calls as ordinary values; nothing survives the
// call, which keeps the engine reentrant.
type run struct {
	g        *grammar.Grammar
	tokens   []gopeg.Token
	memo     map[memoKey]memoEntry // nil unless memoizing
	furthest int                   // deepest cursor any alternative reached
}

// parseRule attempts rule name at the given cursor. On success it returns
// the clause together with the cursor of the unconsumed token remainder.
// Failure is an ordinary backtracking result, not an error.
func (r *run) parseRule(name string, cursor int) (*gopeg.Clause, int, bool) {
	rule := r.g.Rule(name)
	if rule == nil {
		return nil, cursor, false
	}
	if r.memo != nil {
		if e, hit := r.memo[memoKey{name, cursor}]; hit {
			return e.clause, e.rest, e.ok
		}
	}
	clause, rest, ok := r.tryAlternatives(rule, cursor)
	if r.memo != nil {
		r.memo[memoKey{name, cursor}] = memoEntry{clause, rest, ok}
	}
	return clause, rest, ok
}

func (r *run) tryAlternatives(rule *grammar.Rule, cursor int) (*gopeg.Clause, int, bool) {
	for _, alt := range rule.Alternatives {
		parts := make([]gopeg.Part, 0, len(alt))
		var span gopeg.Span
		wc := cursor // working cursor
		ok := true
		for _, ident := range alt {
			if wc < len(r.tokens) && r.tokens[wc].TokType() == ident {
				token := r.tokens[wc]
				parts = append(parts, token)
				span = span.Extend(token.Span())
				wc++
				if wc > r.furthest {
					r.furthest = wc
				}
				continue
			}
			child, rest, matched := r.parseRule(ident, wc)
			if !matched {
				ok = false // abandon this alternative, don't retry earlier identifiers
				break
			}
			if child.Type() == rule.Name {
				// self-referential match: splice the child's parts instead
				// of nesting one level, flattening repetition
				parts = append(parts, child.Parts()...)
			} else {
				parts = append(parts, child)
			}
			span = span.Extend(child.Span())
			wc = rest
		}
		if !ok {
			continue
		}
		clause := gopeg.MakeClause(rule.Name, dropIgnored(parts), span)
		clause = clause.WithValue(fold(rule, clause))
		tracer().Debugf("matched %s, remainder at %d", clause, wc)
		return clause, wc, true
	}
	return nil, cursor, false
}

// dropIgnored filters ignore-flagged tokens from the accumulated parts.
// The clause span has been computed over the unfiltered parts already.
func dropIgnored(parts []gopeg.Part) []gopeg.Part {
	filtered := parts[:0]
	for _, part := range parts {
		if token, isToken := part.(gopeg.Token); isToken && token.Ignored() {
			continue
		}
		filtered = append(filtered, part)
	}
	return filtered
}

// fold computes a clause's value: the rule's reducer if one is declared,
// otherwise the ordered list of the parts' values.
func fold(rule *grammar.Rule, clause *gopeg.Clause) interface{} {
	if rule.Reduce != nil {
		return rule.Reduce(clause)
	}
	values := make([]interface{}, clause.Len())
	for i, part := range clause.Parts() {
		values[i] = part.Value()
	}
	return values
}

func maybePanic(msg string) {
	if gconf.GetBool("panic-on-parse-fail") {
		panic(`parse failed.

Configuration flag panic-on-parse-fail is set to true. It is aimed at
helping to debug a grammar and do a post-mortem of why a parse failed.
If this is a production environment and you did not expect this to panic,
please unset panic-on-parse-fail to its default (false).

` + msg)
	}
}
