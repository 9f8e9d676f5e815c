/*
Package source models input text for lexing and parsing.

A File is an immutable piece of input: the raw text together with its
name and an ordered sequence of lines. Files know how to extract the text
covered by a span and how to hand out locations, which makes them the
natural companion for rendering diagnostics.

Files are loaded through an afero filesystem, so tests and interactive
tools may work against an in-memory filesystem without touching disk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gopeg"
	"github.com/spf13/afero"
)

// File is an immutable input text, split into lines.
type File struct {
	name  string
	text  string
	lines []string // without line terminators
}

// FromString wraps an in-memory text into a File.
func FromString(name, text string) *File {
	return &File{
		name:  name,
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Load reads a whole file from the OS filesystem.
func Load(path string) (*File, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads a whole file from the given filesystem.
func LoadFS(fs afero.Fs, path string) (*File, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return FromString(path, string(content)), nil
}

// Name returns the file's name, usually a path.
func (f *File) Name() string {
	return f.name
}

// Text returns the complete raw text.
func (f *File) Text() string {
	return f.text
}

// LineCount returns the number of lines. Every file has at least one
// (possibly empty) line.
func (f *File) LineCount() int {
	return len(f.lines)
}

// Line returns the 1-based n-th line, without its terminator.
// Out-of-range line numbers are a programming error and panic.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		panic(fmt.Sprintf("source: line %d out of range (file %q has %d lines)",
			n, f.name, len(f.lines)))
	}
	return f.lines[n-1]
}

// Location creates a location within f.
func (f *File) Location(line, col int) gopeg.Location {
	return gopeg.Location{Name: f.name, Line: line, Col: col}
}

// EOF returns the location just behind the last character of the file.
func (f *File) EOF() gopeg.Location {
	last := f.lines[len(f.lines)-1]
	return f.Location(len(f.lines), len([]rune(last))+1)
}

// Read extracts the text covered by span: the tail of the first line from
// the start column, all interior lines in full, and the head of the last
// line up to (excluding) the end column. Spans referencing lines or columns
// outside the file are a programming error and panic.
func (f *File) Read(span gopeg.Span) string {
	if span.IsNull() {
		return ""
	}
	start, end := span.Start, span.End
	if start.Name != f.name {
		panic(fmt.Sprintf("source: span of input %q read from file %q", start.Name, f.name))
	}
	if start.Line == end.Line {
		return slice(f.Line(start.Line), start.Col, end.Col, f.name)
	}
	var b strings.Builder
	first := f.Line(start.Line)
	b.WriteString(slice(first, start.Col, len([]rune(first))+1, f.name))
	for n := start.Line + 1; n < end.Line; n++ {
		b.WriteString("\n")
		b.WriteString(f.Line(n))
	}
	b.WriteString("\n")
	b.WriteString(slice(f.Line(end.Line), 1, end.Col, f.name))
	return b.String()
}

// slice cuts a line by 1-based, end-exclusive rune columns.
func slice(line string, from, to int, name string) string {
	runes := []rune(line)
	if from < 1 || to < from || to > len(runes)+1 {
		panic(fmt.Sprintf("source: columns %d…%d out of range in file %q", from, to, name))
	}
	return string(runes[from-1 : to-1])
}
