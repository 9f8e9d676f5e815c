/*
Package parser implements an ordered-choice recursive-descent parser with
explicit backtracking.

The parser consumes a token stream against a grammar, starting from a
designated rule. Alternatives of a rule are tried strictly in declaration
order and the first alternative that matches wins; once an alternative
succeeds, no further alternatives are explored (PEG-style semantics, no
ambiguity resolution). On success the parser returns a single root clause
whose parts consume the entire token stream, with values folded bottom-up
through the grammar's reducers.

A rule may reference itself in a non-leading position to express
repetition, e.g.

    boxList := box separator boxList | box

When such a self-referential match succeeds, its parts are spliced into the
enclosing clause instead of nesting one level, so repetition yields flat
part lists. True left recursion is not supported.

Plain unmemoized backtracking admits exponential worst-case time on
pathological grammars; this is accepted behavior. The Memoize option adds
packrat-style memoization keyed by (rule, cursor) without changing
observable results.

There is no cancellation mechanism: callers needing bounded latency on
untrusted grammars must impose their own external deadline.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopeg.parser'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.parser")
}
