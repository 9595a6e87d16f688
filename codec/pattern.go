package codec

import (
	"strings"

	"github.com/pkg/errors"
)

// patternCodec is the plain text grid format: one row per line, X marks a
// live cell, anything else is dead. The format carries no metadata.
type patternCodec struct{}

func (patternCodec) decode(text string) ([][]bool, FileInfo, error) {
	if text == "" {
		return nil, FileInfo{}, errors.Wrap(ErrDecode, "[pattern] empty input")
	}
	return linesToMatrix(splitLines(text), 'X'), FileInfo{}, nil
}

// encode writes the trimmed matrix as a ./X grid. No trailing newline.
func (patternCodec) encode(m [][]bool, _ FileInfo) string {
	return strings.Join(matrixToLines(TrimPadding(m), 'X'), "\n")
}
