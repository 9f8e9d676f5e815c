/*
Package lexmach provides an adapter to use the lexmachine scanner generator
as a drop-in tokenizer for the parsing toolbox.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter compiles the same declarative rule list the regexp-based
scanner consumes into a lexmachine DFA and produces the same kind of token
stream. The price is a semantic difference: lexmachine is a maximal-munch
scanner, picking the longest match (breaking ties by rule priority),
whereas the toolbox scanner commits to the first rule that matches at all,
regardless of length. For rule sets where first-match and longest-match
coincide (which covers most practical lexicons) the adapter is an efficient
alternative for large inputs; for priority-sensitive rule sets stay with
package scanner.

Note also that lexmachine's pattern dialect is more restricted than RE2;
patterns are handed over verbatim and compile errors surface from
NewAdapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
