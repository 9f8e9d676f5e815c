package scanner

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/diag"
	"github.com/npillmayer/gopeg/source"
)

func boxRules() []Rule {
	return []Rule{
		{Type: "dimension", Pattern: `\d+`, Transform: func(lexeme string) interface{} {
			d, _ := strconv.Atoi(lexeme)
			return d
		}},
		{Type: "x", Pattern: `x`, Ignore: true},
		{Type: "separator", Pattern: `\n`, Ignore: true},
	}
}

func TestScanBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	tok, err := NewTokenizer(boxRules())
	if err != nil {
		t.Fatal(err)
	}
	f := source.FromString("boxes.txt", "2x3x4\n1x1x10")
	tokens, err := tok.Tokens(f)
	if err != nil {
		t.Fatal(err)
	}
	types := make([]string, len(tokens))
	for i, token := range tokens {
		types[i] = token.TokType()
	}
	expected := []string{"dimension", "x", "dimension", "x", "dimension", "separator",
		"dimension", "x", "dimension", "x", "dimension"}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(types), types)
	}
	for i, tt := range expected {
		if types[i] != tt {
			t.Errorf("token #%d: expected type %q, got %q", i, tt, types[i])
		}
	}
	if v := tokens[4].Value(); v != 4 {
		t.Errorf("expected token #4 to carry value 4, got %v", v)
	}
	if v := tokens[10].Value(); v != 10 {
		t.Errorf("expected token #10 to carry value 10, got %v", v)
	}
	if !tokens[5].Ignored() {
		t.Errorf("expected separator token to be flagged ignored")
	}
}

func TestScanPriorityOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	// an earlier short match shadows a later longer one: priority order,
	// not longest match
	tok, err := NewTokenizer([]Rule{
		{Type: "one", Pattern: `a`},
		{Type: "many", Pattern: `a+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tok.Tokens(source.FromString("test", "aaa"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	for i, token := range tokens {
		if token.TokType() != "one" {
			t.Errorf("token #%d: expected type \"one\", got %q", i, token.TokType())
		}
	}
}

func TestScanPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	tok, err := NewTokenizer([]Rule{
		{Type: "word", Pattern: `[a-z]+`},
		{Type: "brk", Pattern: `\n+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		input string
		spans []gopeg.Span
	}{
		{ // no embedded breaks
			input: "ab",
			spans: []gopeg.Span{span("test", 1, 1, 1, 3)},
		},
		{ // one embedded break
			input: "ab\ncd",
			spans: []gopeg.Span{
				span("test", 1, 1, 1, 3),
				span("test", 1, 3, 2, 1),
				span("test", 2, 1, 2, 3),
			},
		},
		{ // more than one embedded break in a single match
			input: "ab\n\n\ncd",
			spans: []gopeg.Span{
				span("test", 1, 1, 1, 3),
				span("test", 1, 3, 4, 1),
				span("test", 4, 1, 4, 3),
			},
		},
	}
	for _, c := range cases {
		tokens, err := tok.Tokens(source.FromString("test", c.input))
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != len(c.spans) {
			t.Fatalf("input %q: expected %d tokens, got %d", c.input, len(c.spans), len(tokens))
		}
		for i, sp := range c.spans {
			if tokens[i].Span() != sp {
				t.Errorf("input %q, token #%d: expected span %v, got %v",
					c.input, i, sp, tokens[i].Span())
			}
		}
	}
}

func TestScanUnparsableCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	tok, err := NewTokenizer(boxRules())
	if err != nil {
		t.Fatal(err)
	}
	_, err = tok.Tokens(source.FromString("boxes.txt", "2x3x4\n1x#x10"))
	if err == nil {
		t.Fatal("expected scanning to fail on '#'")
	}
	e, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("expected a diag error, got %T", err)
	}
	if e.Kind != diag.UnparsableCharacter {
		t.Errorf("expected kind UnparsableCharacter, got %v", e.Kind)
	}
	if e.Char != '#' {
		t.Errorf("expected offending character '#', got %q", e.Char)
	}
	if e.Loc == nil || e.Loc.Line != 2 || e.Loc.Col != 3 {
		t.Errorf("expected location 2:3, got %v", e.Loc)
	}
}

func TestScanRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	// concatenating the lexemes of all non-ignored tokens reproduces the
	// significant text
	tok, err := NewTokenizer(boxRules())
	if err != nil {
		t.Fatal(err)
	}
	input := "21x3x4\n1x1x10"
	tokens, err := tok.Tokens(source.FromString("test", input))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, token := range tokens {
		if !token.Ignored() {
			b.WriteString(token.Lexeme())
		}
	}
	significant := strings.NewReplacer("x", "", "\n", "").Replace(input)
	if b.String() != significant {
		t.Errorf("expected round-trip %q, got %q", significant, b.String())
	}
}

func TestScanZeroWidthMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	// a rule matching the empty string must not stall the scan
	tok, err := NewTokenizer([]Rule{
		{Type: "maybe", Pattern: `a*`},
		{Type: "b", Pattern: `b`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tok.Tokens(source.FromString("test", "b"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].TokType() != "b" {
		t.Errorf("expected a single \"b\" token, got %v", tokens)
	}
}

func TestScanBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopeg.scanner")
	defer teardown()
	//
	_, err := NewTokenizer([]Rule{{Type: "broken", Pattern: `[`}})
	if err == nil {
		t.Error("expected tokenizer creation to fail for a broken pattern")
	}
}

func span(name string, l1, c1, l2, c2 int) gopeg.Span {
	return gopeg.Span{
		Start: gopeg.Location{Name: name, Line: l1, Col: c1},
		End:   gopeg.Location{Name: name, Line: l2, Col: c2},
	}
}
