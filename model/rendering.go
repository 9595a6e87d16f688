package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Half-cell block characters pack two grid rows into one terminal row.
const (
	cellBoth   = '█'
	cellTop    = '▀'
	cellBottom = '▄'
	cellNone   = ' '

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal, two grid rows per line.
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Print(Frame(g))
}

// Frame renders the grid as half-cell block characters.
func Frame(g *Grid) string {
	var b strings.Builder
	for y := 0; y < g.GetHeight(); y += 2 {
		for x := 0; x < g.GetWidth(); x++ {
			top := g.Get(x, y)
			bottom := g.Get(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune(cellBoth)
			case top:
				b.WriteRune(cellTop)
			case bottom:
				b.WriteRune(cellBottom)
			default:
				b.WriteRune(cellNone)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
