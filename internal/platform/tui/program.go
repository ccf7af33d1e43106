package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/game"
	"github.com/vovakirdan/lumen/internal/puzzle"
	"github.com/vovakirdan/lumen/internal/storage"
)

// directModel plays a single room without the menu; leaving the room ends
// the program.
type directModel struct {
	GameModel
}

func (m directModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.IsQuitting() || m.BackToMenu() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// Run starts the Bubble Tea program on g directly, without the menu.
// store and logger may be nil.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := directModel{NewGameModel(g, store, cfg, ThemeByName(cfg.Theme), logger, SourceTUI)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks act on tiles
	)

	_, err := p.Run()
	return err
}

// RunMenu starts the full app on level: menu, instructions, game and best
// runs. store and logger may be nil.
func RunMenu(level puzzle.Level, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewAppModel(level, store, cfg, logger, SourceTUI)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(AppModel); ok {
		return m.Err()
	}
	return nil
}
