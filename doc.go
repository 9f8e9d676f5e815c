/*
Package gopeg is a toolbox for declaratively-driven parsing.

GoPEG strives to be a small and practical tool for building throwaway
interpreters of micro-DSLs. Clients describe their language as plain data:
an ordered list of lexical rules and a set of named grammar productions.
The toolbox tokenizes raw input and builds a syntax tree by ordered-choice
recursive descent, folding caller-supplied value reducers over the tree.
Package structure is as follows:

■ source: Package source models immutable input text, lines and span
extraction.

■ scanner: Package scanner turns input text into a token stream, driven by
declarative lexical rules.

■ grammar: Package grammar holds productions, a fluent grammar builder and
static grammar validation.

■ parser: Package parser implements the ordered-choice backtracking engine
and convenience entry points.

■ diag: Package diag defines structured error values and renders them as
source-line-plus-caret diagnostics.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gopeg
