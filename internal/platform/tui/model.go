package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/game"
	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/puzzle"
	"github.com/vovakirdan/lumen/internal/storage"
)

// Run sources recorded with completed runs.
const (
	SourceTUI = "tui"
	SourceSSH = "ssh"
)

// GameModel is the Bubble Tea model for playing one room.
type GameModel struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	theme    Theme
	keys     GameKeyMap
	help     help.Model
	logger   *log.Logger
	source   string
	runSaved bool // Whether the current win has been recorded

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model. store may be nil.
func NewGameModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, theme Theme, logger *log.Logger, source string) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, boardHeight(cfg)),
		store:  store,
		config: cfg,
		theme:  theme,
		keys:   DefaultGameKeyMap(),
		help:   h,
		logger: logger,
		source: source,
	}
}

// NewGame starts a fresh session on level with events logged at debug level.
func NewGame(level puzzle.Level, catalog *i18n.Catalog, logger *log.Logger) (*game.Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return game.New(level, catalog, puzzle.WithObserver(func(ev puzzle.Event) {
		logger.Debug("puzzle event",
			"kind", ev.Kind,
			"level", ev.LevelID,
			"target", ev.Target,
			"player", ev.Player,
			"moves", ev.Moves,
			"lit", ev.Lit,
		)
	}))
}

// boardHeight leaves the last line for key help when it is shown.
func boardHeight(cfg core.RuntimeConfig) int {
	if cfg.ShowHelp && cfg.ScreenH > 1 {
		return cfg.ScreenH - 1
	}
	return cfg.ScreenH
}

// Init implements tea.Model. The game is event driven and needs no ticks.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// Hit-testing needs the layout of the frame the user sees.
			m.game.Render(m.screen)
			m.game.Click(msg.X, msg.Y)
			m.afterAction()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(m.config))
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, nil
	case core.ActionBack:
		m.backToMenu = true
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.game.Apply(action)
	if action == core.ActionRestart {
		m.runSaved = false
	}
	m.afterAction()
	return m, nil
}

// afterAction records the run the first time the room is won.
func (m *GameModel) afterAction() {
	if !m.game.Won() || m.runSaved {
		return
	}
	m.runSaved = true
	m.logger.Info("room escaped", "level", m.game.Level().ID, "player", m.config.Player, "moves", m.game.Moves())

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		LevelID: m.game.Level().ID,
		Player:  m.config.Player,
		Moves:   m.game.Moves(),
		Source:  m.source,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.theme)
	if m.config.ShowHelp {
		out += "\n" + centerText(m.theme.Help.Render(m.help.View(m.keys)), m.config.ScreenW)
	}
	return out
}

// Game returns the wrapped game.
func (m GameModel) Game() *game.Game {
	return m.game
}

// RunSaved reports whether the current win has been recorded.
func (m GameModel) RunSaved() bool {
	return m.runSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
