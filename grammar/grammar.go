/*
Package grammar holds named productions for the ordered-choice parser,
a fluent builder to declare them, and static grammar validation.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add rules,
each consisting of ordered alternatives; an alternative is an ordered
sequence of subclause identifiers, referring either to lexical token types
or to other rules. An optional reducer folds a matched clause into a value.

Example:

    b := grammar.NewBuilder("Boxes")
    b.Rule("boxList").
        Alt("box", "separator", "boxList").
        Alt("box").
        Reduce(sumBoxes)
    b.Rule("box").
        Alt("dimension", "x", "dimension", "x", "dimension").
        Reduce(measureBox)
    g, err := b.Grammar()

Alternative order is part of the grammar's observable semantics: the parser
commits to the first alternative that matches.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopeg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.grammar")
}

// Reducer folds a fully-built clause into a value. The clause's children
// already carry their computed values. Reducers must be pure; the clause
// must not be retained or modified.
type Reducer func(*gopeg.Clause) interface{}

// Rule is a named production: ordered alternatives, each an ordered
// sequence of subclause identifiers, plus an optional value reducer.
type Rule struct {
	Name         string
	Alternatives [][]string
	Reduce       Reducer
}

// Grammar maps rule names to rules. Grammars are constructed once, by a
// Builder, and are read-only thereafter.
type Grammar struct {
	name  string
	rules map[string]*Rule
	order *arraylist.List // rule names in declaration order
}

// Name returns the grammar's descriptive name.
func (g *Grammar) Name() string {
	return g.name
}

// Rule returns the production with the given name, or nil.
func (g *Grammar) Rule(name string) *Rule {
	return g.rules[name]
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.order.Size()
}

// EachRule calls mapper for every rule, in declaration order.
func (g *Grammar) EachRule(mapper func(r *Rule)) {
	it := g.order.Iterator()
	for it.Next() {
		mapper(g.rules[it.Value().(string)])
	}
}

// ruleShape mirrors the hashable parts of a rule. Reducers are functions
// and cannot contribute to a fingerprint.
type ruleShape struct {
	Name         string
	Alternatives [][]string
}

type grammarShape struct {
	Name  string
	Rules []ruleShape
}

// Fingerprint returns a stable hash over the grammar's structure: rule
// names and alternatives, in declaration order. Two grammars with equal
// structure share a fingerprint regardless of their reducers. Clients
// caching parsers per grammar may use it as a key.
func (g *Grammar) Fingerprint() string {
	shape := grammarShape{Name: g.name}
	g.EachRule(func(r *Rule) {
		shape.Rules = append(shape.Rules, ruleShape{
			Name:         r.Name,
			Alternatives: r.Alternatives,
		})
	})
	return fmt.Sprintf("%x", structhash.Md5(shape, 1))
}

// --- Builder ----------------------------------------------------------------

// Builder collects rules for a grammar. Errors during building are
// remembered and reported by Grammar(), so clients may chain calls without
// checking after every step.
type Builder struct {
	name  string
	rules []*Rule
	seen  map[string]bool
	err   error
}

// NewBuilder creates a grammar builder.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		seen: make(map[string]bool),
	}
}

// Rule starts the declaration of a production. Declaring the same name
// twice is an error.
func (b *Builder) Rule(name string) *RuleBuilder {
	rule := &Rule{Name: name}
	if name == "" {
		b.fail("grammar %q: rule with empty name", b.name)
	} else if b.seen[name] {
		b.fail("grammar %q: duplicate rule %q", b.name, name)
	} else {
		b.seen[name] = true
		b.rules = append(b.rules, rule)
	}
	return &RuleBuilder{b: b, rule: rule}
}

// Grammar finishes building and returns the grammar, or the first error
// encountered during building.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", b.name)
	}
	g := &Grammar{
		name:  b.name,
		rules: make(map[string]*Rule, len(b.rules)),
		order: arraylist.New(),
	}
	for _, r := range b.rules {
		if len(r.Alternatives) == 0 {
			return nil, fmt.Errorf("grammar %q: rule %q has no alternatives", b.name, r.Name)
		}
		g.rules[r.Name] = r
		g.order.Add(r.Name)
	}
	tracer().Debugf("built grammar %q with %d rules", b.name, g.Size())
	return g, nil
}

func (b *Builder) fail(msg string, args ...interface{}) {
	if b.err == nil {
		b.err = fmt.Errorf(msg, args...)
	}
}

// RuleBuilder declares the alternatives and the reducer of one production.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// Alt appends one alternative: an ordered sequence of subclause
// identifiers. An empty alternative is an error; the engine has no
// epsilon productions.
func (rb *RuleBuilder) Alt(idents ...string) *RuleBuilder {
	if len(idents) == 0 {
		rb.b.fail("grammar %q: rule %q declares an empty alternative", rb.b.name, rb.rule.Name)
		return rb
	}
	rb.rule.Alternatives = append(rb.rule.Alternatives, idents)
	return rb
}

// Reduce attaches the value reducer.
func (rb *RuleBuilder) Reduce(r Reducer) *RuleBuilder {
	rb.rule.Reduce = r
	return rb
}
