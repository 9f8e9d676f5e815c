package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/gopeg/parser"
	"github.com/npillmayer/gopeg/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'gopeg.repl'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.repl")
}

// We provide the box-measuring puzzle as a built-in demo language. Input
// lines like "2x3x4" describe boxes; the computed value of a box is
// 2l+2w+lwh for sorted dimensions (l,w,h), and a list of boxes sums up.
//
//   boxList := box separator boxList  |  box
//   box     := dimension x dimension x dimension
//
func demoRules() []scanner.Rule {
	return []scanner.Rule{
		{Type: "dimension", Pattern: `\d+`, Transform: func(lexeme string) interface{} {
			d, _ := strconv.Atoi(lexeme)
			return d
		}},
		{Type: "x", Pattern: `x`, Ignore: true},
		{Type: "separator", Pattern: `\r?\n`, Ignore: true},
	}
}

func demoGrammar() *grammar.Grammar {
	b := grammar.NewBuilder("Boxes")
	b.Rule("boxList").
		Alt("box", "separator", "boxList").
		Alt("box").
		Reduce(func(c *gopeg.Clause) interface{} {
			total := 0
			for _, part := range c.Parts() {
				total += part.Value().(int)
			}
			return total
		})
	b.Rule("box").
		Alt("dimension", "x", "dimension", "x", "dimension").
		Reduce(func(c *gopeg.Clause) interface{} {
			l := c.Child(0).Value().(int)
			w := c.Child(1).Value().(int)
			h := c.Child(2).Value().(int)
			if l > w {
				l, w = w, l
			}
			if w > h {
				w, h = h, w
			}
			if l > w {
				l, w = w, l
			}
			return 2*l + 2*w + l*w*h
		})
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating demo grammar: %s", err.Error()))
	}
	return g
}

// main() starts an interactive CLI, where users may enter box lists in the
// demo language and watch how the engine tokenizes, parses and folds them.
// It is intended as a sandbox for experiments during early grammar
// development: failed parses print source-line-plus-caret diagnostics.
//
// A file may be parsed in one shot by passing its path as an argument;
// the process exit status then reflects success.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	rules := demoRules()
	g := demoGrammar()
	if flag.NArg() > 0 { // one-shot: parse a file and print its value
		os.Exit(parseFile(flag.Arg(0), rules, g))
	}
	pterm.Info.Println("Welcome to the GoPEG REPL (demo grammar: boxes)")
	repl, err := readline.New("gopeg> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if path := strings.TrimPrefix(line, ":load "); path != line {
			parseFile(strings.TrimSpace(path), rules, g)
			continue
		}
		eval(line, rules, g)
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func eval(line string, rules []scanner.Rule, g *grammar.Grammar) {
	clause, f, err := parser.ParseText("repl", line, rules, g, "boxList")
	if err != nil {
		pterm.Error.Println(diag.Render(err, f))
		return
	}
	printClause(clause)
}

func parseFile(path string, rules []scanner.Rule, g *grammar.Grammar) int {
	clause, f, err := parser.ParseFile(path, rules, g, "boxList")
	if err != nil {
		pterm.Error.Println(diag.Render(err, f))
		return 1
	}
	printClause(clause)
	return 0
}

func printClause(clause *gopeg.Clause) {
	ll := leveledClause(clause, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	pterm.Info.Println(fmt.Sprintf("value = %v", clause.Value()))
}

// leveledClause flattens a clause tree into pterm's leveled-list format.
func leveledClause(part gopeg.Part, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch p := part.(type) {
	case *gopeg.Clause:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s = %v", p.Type(), p.Value()),
		})
		for _, child := range p.Parts() {
			ll = leveledClause(child, ll, level+1)
		}
	case gopeg.Token:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s %q = %v", p.TokType(), p.Lexeme(), p.Value()),
		})
	}
	return ll
}
