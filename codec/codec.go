// Package codec serializes cell matrices to and from the plain pattern,
// Golly .cells, and Golly RLE text formats.
package codec

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSaveFormat reports an unknown format name.
	ErrInvalidSaveFormat = errors.New("invalid save format")
	// ErrDecode reports unparseable pattern text.
	ErrDecode = errors.New("decode failed")
)

// FileInfo is the metadata carried by saved files. All fields are optional
// and purely descriptive; they never affect cell interpretation.
type FileInfo struct {
	Name    string
	User    string
	Rule    string
	Comment string
}

type codec interface {
	decode(text string) ([][]bool, FileInfo, error)
	encode(m [][]bool, info FileInfo) string
}

var codecs = map[string]codec{
	"pattern": patternCodec{},
	"cells":   cellsCodec{},
	"rle":     rleCodec{},
}

// Decode deserializes pattern text in the named format.
func Decode(text, format string) ([][]bool, FileInfo, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, FileInfo{}, errors.Wrapf(ErrInvalidSaveFormat, "[Decode] unknown format: %q", format)
	}
	return c.decode(text)
}

// Encode serializes a cell matrix in the named format. Encoders trim the
// matrix to the bounding box of its live cells first.
func Encode(m [][]bool, format string, info FileInfo) (string, error) {
	c, ok := codecs[format]
	if !ok {
		return "", errors.Wrapf(ErrInvalidSaveFormat, "[Encode] unknown format: %q", format)
	}
	return c.encode(m, info), nil
}

// FormatForPath maps a file name to the format its extension implies:
// .cells and .rle select their codecs, anything else is a plain pattern.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cells":
		return "cells"
	case ".rle":
		return "rle"
	default:
		return "pattern"
	}
}

// TrimPadding returns the minimal sub-matrix containing every live cell.
// A matrix with no live cells at all trims to an empty matrix.
func TrimPadding(m [][]bool) [][]bool {
	top, bottom := -1, -1
	left, right := -1, -1
	for y, row := range m {
		for x, alive := range row {
			if !alive {
				continue
			}
			if top < 0 {
				top = y
			}
			bottom = y
			if left < 0 || x < left {
				left = x
			}
			if x > right {
				right = x
			}
		}
	}
	if top < 0 {
		return [][]bool{}
	}

	trimmed := make([][]bool, bottom-top+1)
	for y := range trimmed {
		trimmed[y] = make([]bool, right-left+1)
		copy(trimmed[y], m[top+y][left:right+1])
	}
	return trimmed
}

// splitLines drops a single trailing newline and splits the text into
// lines, the way every codec's decoder consumes its input.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// linesToMatrix converts character rows to cells. The live rune matches
// case-insensitively; anything else is dead. Short rows are right-padded.
func linesToMatrix(lines []string, live byte) [][]bool {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	m := make([][]bool, len(lines))
	for y, line := range lines {
		m[y] = make([]bool, width)
		for x := 0; x < len(line); x++ {
			m[y][x] = line[x] == live || line[x] == live+'a'-'A'
		}
	}
	return m
}

// matrixToLines renders cells as character rows using the live rune and
// '.' for dead cells.
func matrixToLines(m [][]bool, live byte) []string {
	lines := make([]string, len(m))
	for y, row := range m {
		var b strings.Builder
		for _, alive := range row {
			if alive {
				b.WriteByte(live)
			} else {
				b.WriteByte('.')
			}
		}
		lines[y] = b.String()
	}
	return lines
}
