package utils

// NormalizeRows pads ragged rows with dead cells on the right so every row
// matches the longest one. The input rows are not modified.
func NormalizeRows(rows [][]bool) [][]bool {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	normal := make([][]bool, len(rows))
	for y, row := range rows {
		normal[y] = make([]bool, width)
		copy(normal[y], row)
	}
	return normal
}

// FitMatrix centers the given matrix in a matrix of the requested shape.
// Dimensions where the source is smaller are padded with dead cells, the
// extra cell of an odd difference going after the pattern. Dimensions where
// the source is larger keep only the centered window, the extra cell of an
// odd difference being cropped from the end.
func FitMatrix(m [][]bool, rows, cols int) [][]bool {
	srcRows := len(m)
	srcCols := 0
	if srcRows > 0 {
		srcCols = len(m[0])
	}

	// Offsets into the source (positive) or destination (negative).
	yOff := (srcRows - rows) / 2
	xOff := (srcCols - cols) / 2

	fitted := make([][]bool, rows)
	for y := range fitted {
		fitted[y] = make([]bool, cols)
		srcY := y + yOff
		if srcY < 0 || srcY >= srcRows {
			continue
		}
		for x := range fitted[y] {
			srcX := x + xOff
			if srcX < 0 || srcX >= srcCols {
				continue
			}
			fitted[y][x] = m[srcY][srcX]
		}
	}
	return fitted
}
