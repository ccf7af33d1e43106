// Package game adapts a puzzle session to the platform: it turns semantic
// input actions and mouse clicks into engine actions and draws snapshots
// into a core.Screen.
package game

import (
	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/puzzle"
)

// Game is one player's view of a puzzle session. Like the session it wraps,
// it is not safe for concurrent use.
type Game struct {
	session *puzzle.Session
	catalog *i18n.Catalog
	title   string

	layout    Layout
	hasLayout bool
}

// New starts a session on level. Session options such as observers are
// passed through to the engine.
func New(level puzzle.Level, catalog *i18n.Catalog, opts ...puzzle.Option) (*Game, error) {
	if catalog == nil {
		catalog = i18n.New(i18n.DefaultLanguage)
	}
	session, err := puzzle.NewSession(level, opts...)
	if err != nil {
		return nil, err
	}

	title := level.Name
	if level.ID == levels.EscapeID || title == "" {
		title = catalog.Get("TITLE")
	}

	return &Game{
		session: session,
		catalog: catalog,
		title:   title,
	}, nil
}

// ActionTarget returns the cell a directional action addresses for a player
// at player. Non-targeting actions return false.
func ActionTarget(a core.Action, player puzzle.Pos) (puzzle.Pos, bool) {
	dr, dc, ok := a.Offset()
	if !ok {
		return puzzle.Pos{}, false
	}
	return player.Add(dr, dc), true
}

// Apply performs one input action. Each targeting action results in exactly
// one engine action; ActionRestart resets the room. Other actions are not
// game input and return StatusNone.
func (g *Game) Apply(a core.Action) puzzle.Status {
	if a == core.ActionRestart {
		g.Restart()
		return puzzle.StatusRestarted
	}
	target, ok := ActionTarget(a, g.session.Player())
	if !ok {
		return puzzle.StatusNone
	}
	_, status := g.session.HandleAction(target.Row, target.Col)
	return status
}

// Click performs the engine action for a mouse click at screen position
// (x, y). Clicks outside the board are out of bounds. The layout comes from
// the most recent Render.
func (g *Game) Click(x, y int) puzzle.Status {
	if !g.hasLayout {
		return puzzle.StatusOutOfBounds
	}
	p, ok := g.layout.CellAt(x, y)
	if !ok {
		return puzzle.StatusOutOfBounds
	}
	_, status := g.session.HandleAction(p.Row, p.Col)
	return status
}

// Restart reloads the room.
func (g *Game) Restart() puzzle.Snapshot {
	return g.session.Reset()
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() puzzle.Snapshot {
	return g.session.Snapshot()
}

// Level returns the level being played.
func (g *Game) Level() puzzle.Level {
	return g.session.Level()
}

// Title returns the localized room title.
func (g *Game) Title() string {
	return g.title
}

// Won reports whether the room has been completed.
func (g *Game) Won() bool {
	return g.session.Won()
}

// Moves returns the number of successful moves.
func (g *Game) Moves() int {
	return g.session.Moves()
}

// Message returns the localized text of the last visible status.
func (g *Game) Message() string {
	return g.catalog.Status(g.session.Snapshot().Status)
}

// Catalog returns the catalogue used for on-screen text.
func (g *Game) Catalog() *i18n.Catalog {
	return g.catalog
}

// ControlsHelp describes the keyboard and mouse controls.
const ControlsHelp = "arrows/wasd: step  y u b n: diagonal  space/e: here  click: tile  r: restart  esc: menu"

// Controls describes the keyboard and mouse controls.
func (g *Game) Controls() string {
	return ControlsHelp
}
