package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/pji/life/rules"
	"github.com/pji/life/utils"
)

// Grid represents the game board. Cells are stored row-major: cells[y][x]
// is true iff the cell at row y, column x is alive. Width and height are
// fixed at construction; loading a different-sized pattern goes through
// Replace, which centers it over the board.
type Grid struct {
	width      int
	height     int
	cells      [][]bool
	rule       rules.Rule
	wrap       bool
	generation int

	rng    *rand.Rand
	pool   *MatrixPool
	counts [][]int // scratch neighbor counts, reused across ticks
}

// NewGrid creates an all-dead grid with the specified dimensions. The rule
// must be valid B/S notation or the grid is not constructed.
func NewGrid(width, height int, rule string, wrap bool) (*Grid, error) {
	r, err := rules.Parse(rule)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGrid] failed to parse rule")
	}

	g := &Grid{
		width:  width,
		height: height,
		rule:   r,
		wrap:   wrap,
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		pool:   NewMatrixPool(),
	}
	g.cells = g.pool.Get(width, height)
	g.counts = make([][]int, height)
	for y := range g.counts {
		g.counts[y] = make([]int, width)
	}
	return g, nil
}

// FromMatrix creates a wrapping grid sized to the given matrix and copies
// the matrix in. Ragged rows are padded with dead cells on the right.
func FromMatrix(m [][]bool, rule string) (*Grid, error) {
	normal := utils.NormalizeRows(m)
	height := len(normal)
	width := 0
	if height > 0 {
		width = len(normal[0])
	}

	g, err := NewGrid(width, height, rule, true)
	if err != nil {
		return nil, err
	}
	for y, row := range normal {
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int { return g.width }

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int { return g.height }

// GetGeneration returns the number of generations since the last known
// starting pattern.
func (g *Grid) GetGeneration() int { return g.generation }

// ResetGeneration zeroes the generation counter. Callers that edit cells
// by hand use this to mark the board as a fresh starting pattern.
func (g *Grid) ResetGeneration() { g.generation = 0 }

// GetRule returns the grid's rule in B/S notation.
func (g *Grid) GetRule() string { return g.rule.String() }

// SetRule replaces the grid's rule. An invalid rule string leaves the
// current rule in place and reports the error.
func (g *Grid) SetRule(rule string) error {
	r, err := rules.Parse(rule)
	if err != nil {
		return errors.Wrapf(err, "[SetRule] failed to parse rule")
	}
	g.rule = r
	return nil
}

// GetWrap reports whether neighbor lookups wrap toroidally at the edges.
func (g *Grid) GetWrap() bool { return g.wrap }

// SetWrap switches between toroidal and bounded edges.
func (g *Grid) SetWrap(wrap bool) { g.wrap = wrap }

// SetRandomSource replaces the random source used by Randomize.
func (g *Grid) SetRandomSource(rng *rand.Rand) { g.rng = rng }

// Seed replaces the random source with a deterministic one for the seed.
func (g *Grid) Seed(seed int64) {
	g.rng = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// Flip inverts the single cell at column x, row y. Coordinates must be in
// range; callers pre-validate, wrapping with modulo where needed.
func (g *Grid) Flip(x, y int) {
	g.cells[y][x] = !g.cells[y][x]
}

// Clear kills every cell. The rule and generation counter are untouched.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = false
		}
	}
}

// Randomize sets every cell to a 50/50 random state and resets the
// generation counter. Cells are drawn in row-major order so a seeded
// source produces a reproducible board.
func (g *Grid) Randomize() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = g.rng.IntN(2) == 1
		}
	}
	g.generation = 0
}

// Replace installs the given matrix as the new board contents, centering
// it over the grid's dimensions. Ragged rows are padded with dead cells on
// the right. A source larger than the grid keeps only its centered window.
// The generation counter resets.
func (g *Grid) Replace(source [][]bool) {
	normal := utils.NormalizeRows(source)
	old := g.cells
	g.cells = utils.FitMatrix(normal, g.height, g.width)
	g.pool.Put(old)
	g.generation = 0
}

// View returns a copy of the width x height sub-window of cells whose top
// left corner is at column x, row y. The window must lie inside the grid.
func (g *Grid) View(x, y, width, height int) [][]bool {
	window := make([][]bool, height)
	for wy := range window {
		window[wy] = make([]bool, width)
		copy(window[wy], g.cells[y+wy][x:x+width])
	}
	return window
}

// Equal reports whether both grids have identical cell matrices and the
// same rule string. Grids of different shapes are never equal.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	if g.rule.String() != other.rule.String() {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Tick advances the game one generation. Every cell is evaluated against
// the current state; the next matrix is swapped in atomically.
func (g *Grid) Tick() {
	g.countNeighbors()

	next := g.pool.Get(g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)
	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					next[y][x] = g.rule.Apply(g.cells[y][x], g.counts[y][x])
				}
			}
			return nil
		})
	}
	_ = eg.Wait()

	g.pool.Put(g.cells)
	g.cells = next
	g.generation++
}

// countNeighbors accumulates live Moore-neighbor counts into the scratch
// buffer as eight shifted-and-summed copies of the board. Wrapping grids
// roll at the edges; bounded grids treat off-grid neighbors as dead.
func (g *Grid) countNeighbors() {
	w, h := g.width, g.height
	for y := range g.counts {
		for x := range g.counts[y] {
			g.counts[y][x] = 0
		}
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			for y := 0; y < h; y++ {
				srcY := y + dy
				if g.wrap {
					srcY = (srcY + h) % h
				} else if srcY < 0 || srcY >= h {
					continue
				}
				src := g.cells[srcY]
				counts := g.counts[y]
				if g.wrap {
					for x := 0; x < w; x++ {
						if src[(x+dx+w)%w] {
							counts[x]++
						}
					}
				} else {
					for x := max(0, -dx); x < min(w, w-dx); x++ {
						if src[x+dx] {
							counts[x]++
						}
					}
				}
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current cell matrix, used by the autorun
// loop to notice a static board.
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board with X for live cells and . for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
