package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/gopeg"
)

func TestFromString(t *testing.T) {
	f := FromString("boxes.txt", "2x3x4\n1x1x10")
	assert.Equal(t, "boxes.txt", f.Name())
	assert.Equal(t, "2x3x4\n1x1x10", f.Text())
	require.Equal(t, 2, f.LineCount())
	assert.Equal(t, "2x3x4", f.Line(1))
	assert.Equal(t, "1x1x10", f.Line(2))
}

func TestEmptyFile(t *testing.T) {
	f := FromString("empty", "")
	require.Equal(t, 1, f.LineCount())
	assert.Equal(t, "", f.Line(1))
	assert.Equal(t, gopeg.Location{Name: "empty", Line: 1, Col: 1}, f.EOF())
}

func TestLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "input/boxes.txt", []byte("2x3x4\n"), 0644))
	f, err := LoadFS(fs, "input/boxes.txt")
	require.NoError(t, err)
	assert.Equal(t, "input/boxes.txt", f.Name())
	assert.Equal(t, 2, f.LineCount()) // trailing newline opens an empty line
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFS(afero.NewMemMapFs(), "no/such/file")
	assert.Error(t, err)
}

func TestReadSingleLineSpan(t *testing.T) {
	f := FromString("test", "2x3x4\n1x1x10")
	sp := gopeg.Span{Start: f.Location(1, 3), End: f.Location(1, 6)}
	assert.Equal(t, "3x4", f.Read(sp))
}

func TestReadMultiLineSpan(t *testing.T) {
	f := FromString("test", "abc\ndef\nghi")
	sp := gopeg.Span{Start: f.Location(1, 2), End: f.Location(3, 2)}
	assert.Equal(t, "bc\ndef\ng", f.Read(sp))
}

func TestReadWholeFileSpan(t *testing.T) {
	f := FromString("test", "2x3x4\n1x1x10")
	sp := gopeg.Span{Start: f.Location(1, 1), End: f.Location(2, 7)}
	assert.Equal(t, "2x3x4\n1x1x10", f.Read(sp))
}

func TestReadNullSpan(t *testing.T) {
	f := FromString("test", "abc")
	assert.Equal(t, "", f.Read(gopeg.Span{}))
}

func TestReadOutOfRangePanics(t *testing.T) {
	f := FromString("test", "abc")
	require.Panics(t, func() {
		f.Read(gopeg.Span{Start: f.Location(1, 1), End: f.Location(1, 9)})
	})
	require.Panics(t, func() {
		f.Read(gopeg.Span{Start: f.Location(2, 1), End: f.Location(2, 2)})
	})
}

func TestEOF(t *testing.T) {
	f := FromString("test", "2x3x4\n1x1x10")
	assert.Equal(t, gopeg.Location{Name: "test", Line: 2, Col: 7}, f.EOF())
}
