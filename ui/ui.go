// Package ui implements the interactive terminal board: an edit cursor,
// single-step and free-running simulation, and save-to-file.
package ui

import (
	"fmt"
	"os"

	tl "github.com/JoelOtter/termloop"

	"github.com/pji/life/codec"
	"github.com/pji/life/model"
	"github.com/pji/life/utils"
)

const helpText = "arrows move | space flip | n step | a run | r random | c clear | s save | q quit"

// Board is the termloop entity that owns the grid for the session.
type Board struct {
	grid    *model.Grid
	cfg     utils.Config
	cursorX int
	cursorY int
	running bool
	elapsed float64
	status  string
}

// Run hands the grid to termloop and blocks until the user quits.
func Run(grid *model.Grid, cfg utils.Config) {
	game := tl.NewGame()
	game.Screen().SetFps(30)

	board := &Board{grid: grid, cfg: cfg, status: helpText}
	level := tl.NewBaseLevel(tl.Cell{Bg: tl.ColorBlack, Fg: tl.ColorWhite})
	level.AddEntity(board)
	game.Screen().SetLevel(level)
	game.Start()
}

// Tick dispatches key events. Cursor movement wraps with modulo so Flip
// always sees in-range coordinates.
func (b *Board) Tick(ev tl.Event) {
	if ev.Type != tl.EventKey {
		return
	}
	w, h := b.grid.GetWidth(), b.grid.GetHeight()

	switch ev.Key {
	case tl.KeyArrowUp:
		b.cursorY = (b.cursorY - 1 + h) % h
	case tl.KeyArrowDown:
		b.cursorY = (b.cursorY + 1) % h
	case tl.KeyArrowLeft:
		b.cursorX = (b.cursorX - 1 + w) % w
	case tl.KeyArrowRight:
		b.cursorX = (b.cursorX + 1) % w
	case tl.KeySpace:
		// A manual edit starts a new pattern, so the generation count
		// no longer means anything.
		b.grid.Flip(b.cursorX, b.cursorY)
		b.grid.ResetGeneration()
	}

	switch ev.Ch {
	case 'n':
		b.grid.Tick()
	case 'a':
		b.running = !b.running
		b.elapsed = 0
	case 'r':
		b.grid.Randomize()
	case 'c':
		b.grid.Clear()
	case 's':
		b.save()
	case 'q', 'Q':
		os.Exit(0)
	}
}

// Draw advances the simulation when running and paints the status line,
// the board in half-cell blocks, and the edit cursor.
func (b *Board) Draw(s *tl.Screen) {
	if b.running {
		b.elapsed += s.TimeDelta()
		if b.elapsed >= b.cfg.Pace {
			b.grid.Tick()
			b.elapsed = 0
		}
	}

	b.drawText(s, 0, 0, b.statusLine(), tl.ColorBlack, tl.ColorWhite)

	for ty := 0; ty*2 < b.grid.GetHeight(); ty++ {
		for x := 0; x < b.grid.GetWidth(); x++ {
			top := b.grid.Get(x, ty*2)
			bottom := b.grid.Get(x, ty*2+1)

			ch := ' '
			switch {
			case top && bottom:
				ch = '█'
			case top:
				ch = '▀'
			case bottom:
				ch = '▄'
			}

			fg, bg := tl.ColorWhite, tl.ColorBlack
			if !b.running && x == b.cursorX && ty == b.cursorY/2 {
				fg, bg = tl.ColorBlack, tl.ColorGreen
			}
			s.RenderCell(x, ty+1, &tl.Cell{Ch: ch, Fg: fg, Bg: bg})
		}
	}
}

func (b *Board) statusLine() string {
	line := b.grid.GetRule()
	if b.cfg.ShowGeneration {
		line += fmt.Sprintf(" | gen %d | pop %d", b.grid.GetGeneration(), b.grid.CountLivingCells())
	}
	if b.running {
		line += " | running"
	}
	if b.status != "" {
		line += " | " + b.status
	}
	return line
}

// save writes the board to a .cells file named for the current generation.
func (b *Board) save() {
	name := fmt.Sprintf("life-%04d.cells", b.grid.GetGeneration())
	matrix := b.grid.View(0, 0, b.grid.GetWidth(), b.grid.GetHeight())
	text, err := codec.Encode(matrix, codec.FormatForPath(name), codec.FileInfo{Rule: b.grid.GetRule()})
	if err != nil {
		b.status = err.Error()
		return
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		b.status = err.Error()
		return
	}
	b.status = "saved " + name
}

func (b *Board) drawText(s *tl.Screen, x, y int, text string, fg, bg tl.Attr) {
	for i, ch := range text {
		s.RenderCell(x+i, y, &tl.Cell{Ch: ch, Fg: fg, Bg: bg})
	}
}
