package codec

import (
	"strings"

	"github.com/pkg/errors"
)

const cellsNamePrefix = "!Name: "

// cellsCodec is the Golly .cells format: !-prefixed header lines followed
// by a ./O grid. Only the !Name: line is structured; every other header
// line is comment text, so user and rule written by encode come back as
// part of the comment when decoded.
type cellsCodec struct{}

func (cellsCodec) decode(text string) ([][]bool, FileInfo, error) {
	if text == "" {
		return nil, FileInfo{}, errors.Wrap(ErrDecode, "[cells] empty input")
	}

	var info FileInfo
	var body []string
	var comments []string
	for _, line := range splitLines(text) {
		switch {
		case strings.HasPrefix(line, cellsNamePrefix):
			info.Name = line[len(cellsNamePrefix):]
		case strings.HasPrefix(line, "!"):
			comments = append(comments, strings.TrimPrefix(line[1:], " "))
		default:
			body = append(body, line)
		}
	}
	info.Comment = strings.Join(comments, "\n")

	if len(body) == 0 {
		return nil, info, errors.Wrap(ErrDecode, "[cells] no pattern body")
	}
	return linesToMatrix(body, 'O'), info, nil
}

// encode writes the header lines for any non-empty metadata fields, then
// the trimmed ./O grid with every row newline-terminated.
func (cellsCodec) encode(m [][]bool, info FileInfo) string {
	var b strings.Builder
	if info.Name != "" {
		b.WriteString(cellsNamePrefix + info.Name + "\n")
	}
	if info.User != "" {
		b.WriteString("! " + info.User + "\n")
	}
	if info.Rule != "" {
		b.WriteString("! " + info.Rule + "\n")
	}
	if info.Comment != "" {
		for _, line := range strings.Split(info.Comment, "\n") {
			b.WriteString("! " + line + "\n")
		}
	}
	for _, line := range matrixToLines(TrimPadding(m), 'O') {
		b.WriteString(line + "\n")
	}
	return b.String()
}
