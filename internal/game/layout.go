package game

import (
	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/puzzle"
)

// CellWidth is the number of screen columns one board cell occupies.
// Terminal cells are roughly twice as tall as wide, so two columns keep
// the board close to square.
const CellWidth = 2

// Rows of chrome around the board: title, HUD, gap above; gap, status and
// hint below.
const (
	chromeAbove = 3
	chromeBelow = 3
)

// Layout places the board and its text lines on a screen.
type Layout struct {
	Title  int // y of the title line
	HUD    int // y of the moves/lit line
	Status int // y of the status line
	Hint   int // y of the line under the status

	Box   core.Rect // border around the board
	Board core.Rect // clickable cell area
}

// ComputeLayout centers a rows x cols board on a screen of the given size.
func ComputeLayout(screenW, screenH, rows, cols int) Layout {
	boxW := cols*CellWidth + 3
	boxH := rows + 2
	total := chromeAbove + boxH + chromeBelow

	top := max((screenH-total)/2, 0)
	box := core.CenterIn(core.NewRect(0, top+chromeAbove, screenW, boxH), boxW, boxH)

	return Layout{
		Title:  top,
		HUD:    top + 1,
		Status: box.Bottom() + 1,
		Hint:   box.Bottom() + 2,
		Box:    box,
		Board:  core.NewRect(box.X+2, box.Y+1, cols*CellWidth, rows),
	}
}

// CellAt maps a screen position to a board cell.
func (l Layout) CellAt(x, y int) (puzzle.Pos, bool) {
	if !l.Board.Contains(x, y) {
		return puzzle.Pos{}, false
	}
	return puzzle.P(y-l.Board.Y, (x-l.Board.X)/CellWidth), true
}

// CellOrigin returns the screen position of a cell's glyph.
func (l Layout) CellOrigin(p puzzle.Pos) (x, y int) {
	return l.Board.X + p.Col*CellWidth, l.Board.Y + p.Row
}
