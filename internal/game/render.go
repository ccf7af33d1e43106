package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/puzzle"
)

// darkGlyph is drawn for every unlit cell except walls.
const darkGlyph = '·'

// Glyph returns the rune and color role for one board cell. Walls are always
// visible, unlit cells are drawn dark whatever they hold, lit cells show
// their tile and the player overrides everything.
func Glyph(c puzzle.Cell, player bool) (rune, core.Color) {
	switch {
	case player:
		return '@', core.ColorPlayer
	case c.Tile == puzzle.TileWall:
		return c.Tile.Symbol(), core.ColorWall
	case !c.Lit:
		return darkGlyph, core.ColorDark
	}
	return c.Tile.Symbol(), TileColor(c.Tile)
}

// TileColor returns the color role of a lit tile.
func TileColor(t puzzle.Tile) core.Color {
	switch t {
	case puzzle.TileWall:
		return core.ColorWall
	case puzzle.TileLampOff:
		return core.ColorLampOff
	case puzzle.TileLampOn:
		return core.ColorLampOn
	case puzzle.TileSwitch:
		return core.ColorSwitch
	case puzzle.TileDoorLocked:
		return core.ColorDoorLocked
	case puzzle.TileDoorOpen:
		return core.ColorDoorOpen
	case puzzle.TileExit:
		return core.ColorExit
	default:
		return core.ColorFloor
	}
}

// Render draws the current room into dst and remembers the layout for
// mouse hit-testing.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()
	dst.Clear()

	l := ComputeLayout(dst.Width(), dst.Height(), snap.Rows, snap.Cols)
	g.layout = l
	g.hasLayout = true

	dst.DrawTextCenteredColored(l.Title, g.title, core.ColorTitle)
	hud := fmt.Sprintf("%s    %s",
		g.catalog.Get("HUD_MOVES", snap.Moves),
		g.catalog.Get("HUD_LIT", snap.LitCount()),
	)
	dst.DrawTextCenteredColored(l.HUD, hud, core.ColorText)

	border := core.ColorBorder
	if snap.Won {
		border = core.ColorWin
	}
	dst.DrawBox(l.Box, border)

	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			p := puzzle.P(r, c)
			ch, color := Glyph(snap.Cell(p), p == snap.Player)
			x, y := l.CellOrigin(p)
			dst.SetColored(x, y, ch, color)
		}
	}

	status := g.catalog.Status(snap.Status)
	if snap.Won {
		dst.DrawTextCenteredColored(l.Status, status, core.ColorWin)
		dst.DrawTextCenteredColored(l.Hint, g.catalog.Get("HUD_WON"), core.ColorHint)
		return
	}
	first, rest := splitLine(status, dst.Width())
	dst.DrawTextCenteredColored(l.Status, first, core.ColorHint)
	dst.DrawTextCenteredColored(l.Hint, rest, core.ColorHint)
}

// splitLine breaks text at the last space that keeps the first part within
// width columns. Text that fits, or has no such space, is returned whole.
func splitLine(text string, width int) (string, string) {
	if core.TextWidth(text) <= width {
		return text, ""
	}
	cut := -1
	for i, r := range text {
		if r == ' ' && core.TextWidth(text[:i]) <= width {
			cut = i
		}
	}
	if cut <= 0 {
		return text, ""
	}
	return text[:cut], strings.TrimSpace(text[cut:])
}
