package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/gopeg/diag"
)

// Validate statically checks a grammar against the lexical token types it
// will be parsed with. The identifier universe is the union of token type
// tags and rule names; every subclause identifier of every alternative must
// be a member. Validation fails fast on the first unknown identifier, even
// if no input would ever exercise the offending alternative.
func Validate(tokenTypes []string, g *Grammar) error {
	universe := treeset.NewWithStringComparator()
	for _, tt := range tokenTypes {
		universe.Add(tt)
	}
	g.EachRule(func(r *Rule) {
		universe.Add(r.Name)
	})
	tracer().Debugf("validating grammar %q against %d identifiers", g.Name(), universe.Size())
	var err *diag.Error
	g.EachRule(func(r *Rule) {
		if err != nil {
			return
		}
		for _, alt := range r.Alternatives {
			for _, ident := range alt {
				if !universe.Contains(ident) {
					err = diag.New(diag.UndefinedSubclause,
						"rule %q references undefined subclause %q", r.Name, ident)
					err.Rule = r.Name
					err.Ident = ident
					tracer().Errorf(err.Error())
					return
				}
			}
		}
	})
	if err != nil {
		return err
	}
	return nil
}
