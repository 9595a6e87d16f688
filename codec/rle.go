package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// rleWrapColumn is the column at which encoded cell data wraps, for
// interoperability with external RLE readers.
const rleWrapColumn = 70

// rleCodec is the Golly RLE format: #-prefixed header lines, an
// x/y/rule shape line, then $-separated rows of <count><tag> runs
// terminated by '!'.
type rleCodec struct{}

func (rleCodec) decode(text string) ([][]bool, FileInfo, error) {
	if text == "" {
		return nil, FileInfo{}, errors.Wrap(ErrDecode, "[rle] empty input")
	}

	var info FileInfo
	var body []string
	var comments []string
	for _, line := range splitLines(text) {
		if !strings.HasPrefix(line, "#") {
			body = append(body, line)
			continue
		}
		if len(line) < 2 {
			continue
		}
		value := strings.TrimPrefix(line[2:], " ")
		switch line[1] {
		case 'N', 'n':
			info.Name = value
		case 'O', 'o':
			info.User = value
		case 'C', 'c':
			comments = append(comments, value)
		}
	}
	info.Comment = strings.Join(comments, "\n")

	if len(body) == 0 {
		return nil, info, errors.Wrap(ErrDecode, "[rle] missing shape line")
	}
	width, height, rule, err := parseShapeLine(body[0])
	if err != nil {
		return nil, info, err
	}
	info.Rule = rule

	// Cell data may be wrapped across lines; the terminating '!' ends it.
	data, _, _ := strings.Cut(strings.Join(body[1:], ""), "!")

	m := make([][]bool, height)
	for y := range m {
		m[y] = make([]bool, width)
	}
	rows := strings.Split(data, "$")
	if len(rows) > height && !(height == 0 && data == "") {
		return nil, info, errors.Wrapf(ErrDecode, "[rle] %d rows exceed declared height %d", len(rows), height)
	}
	for y, row := range rows {
		if err := decodeRLERow(row, m, y, width); err != nil {
			return nil, info, err
		}
	}
	return m, info, nil
}

// parseShapeLine reads the comma-separated `key = value` shape line. The
// x and y keys are required; rule is optional; unknown keys are ignored.
func parseShapeLine(line string) (width, height int, rule string, err error) {
	width, height = -1, -1
	for _, part := range strings.Split(line, ",") {
		key, value, found := strings.Cut(part, "=")
		if !found {
			return 0, 0, "", errors.Wrapf(ErrDecode, "[rle] malformed shape line: %q", line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x":
			if width, err = strconv.Atoi(value); err != nil || width < 0 {
				return 0, 0, "", errors.Wrapf(ErrDecode, "[rle] bad x in shape line: %q", line)
			}
		case "y":
			if height, err = strconv.Atoi(value); err != nil || height < 0 {
				return 0, 0, "", errors.Wrapf(ErrDecode, "[rle] bad y in shape line: %q", line)
			}
		case "rule":
			rule = value
		}
	}
	if width < 0 || height < 0 {
		return 0, 0, "", errors.Wrapf(ErrDecode, "[rle] shape line missing x or y: %q", line)
	}
	return width, height, rule, nil
}

// decodeRLERow replays one row of <count><tag> runs into the matrix. Tag
// 'o' marks live cells, 'b' dead ones; any other tag just advances. A row
// running past the declared width or a count with no tag is an error.
func decodeRLERow(row string, m [][]bool, y, width int) error {
	x := 0
	count := 0
	hasCount := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			hasCount = true
			continue
		}

		n := 1
		if hasCount {
			if count == 0 {
				return errors.Wrapf(ErrDecode, "[rle] zero-length run in row %d", y)
			}
			n = count
		}
		if x+n > width {
			return errors.Wrapf(ErrDecode, "[rle] row %d runs past declared width %d", y, width)
		}
		if c == 'o' || c == 'O' {
			for j := 0; j < n; j++ {
				m[y][x+j] = true
			}
		}
		x += n
		count = 0
		hasCount = false
	}
	if hasCount {
		return errors.Wrapf(ErrDecode, "[rle] dangling run count in row %d", y)
	}
	return nil
}

// encode writes #N/#O/#C headers for non-empty metadata, the shape line,
// then the run-length-encoded rows wrapped at a fixed column.
func (rleCodec) encode(m [][]bool, info FileInfo) string {
	t := TrimPadding(m)
	height := len(t)
	width := 0
	if height > 0 {
		width = len(t[0])
	}

	var b strings.Builder
	if info.Name != "" {
		b.WriteString("#N " + info.Name + "\n")
	}
	if info.User != "" {
		b.WriteString("#O " + info.User + "\n")
	}
	if info.Comment != "" {
		for _, line := range strings.Split(info.Comment, "\n") {
			b.WriteString("#C " + line + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("x = %d, y = %d", width, height))
	if info.Rule != "" {
		b.WriteString(", rule = " + info.Rule)
	}
	b.WriteByte('\n')

	var tokens []string
	for y, row := range t {
		if y > 0 {
			tokens = append(tokens, "$")
		}
		tokens = append(tokens, encodeRLERow(row)...)
	}
	tokens = append(tokens, "!")

	// Wrap the cell data without splitting a <count><tag> token.
	column := 0
	for _, token := range tokens {
		if column > 0 && column+len(token) > rleWrapColumn {
			b.WriteByte('\n')
			column = 0
		}
		b.WriteString(token)
		column += len(token)
	}
	return b.String()
}

// encodeRLERow emits the <count><tag> runs for one row, omitting the count
// on runs of one and dropping a trailing run of dead cells.
func encodeRLERow(row []bool) []string {
	var tokens []string
	runStart := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x] == row[runStart] {
			continue
		}
		if !row[runStart] && x == len(row) {
			break // trailing dead cells need not be encoded
		}
		tag := "b"
		if row[runStart] {
			tag = "o"
		}
		if n := x - runStart; n > 1 {
			tokens = append(tokens, strconv.Itoa(n)+tag)
		} else {
			tokens = append(tokens, tag)
		}
		runStart = x
	}
	return tokens
}
