package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/game"
	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/puzzle"
	"github.com/vovakirdan/lumen/internal/storage"
)

// Screen identifies the active view of the app.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenGame
	ScreenRuns
)

// AppModel manages the full session flow: menu -> instructions, game or
// best runs -> menu. It is the top-level model for local and SSH play.
type AppModel struct {
	level   puzzle.Level
	store   *storage.Store
	config  core.RuntimeConfig
	catalog *i18n.Catalog
	theme   Theme
	logger  *log.Logger
	source  string

	screen       Screen
	menu         MenuModel
	instructions InstructionsModel
	game         *GameModel
	runs         RunsModel
	err          error
	quitting     bool
}

// NewAppModel creates the app model. store and logger may be nil.
func NewAppModel(level puzzle.Level, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, source string) AppModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := AppModel{
		level:   level,
		store:   store,
		config:  cfg,
		catalog: i18n.New(cfg.Locale),
		theme:   ThemeByName(cfg.Theme),
		logger:  logger,
		source:  source,
	}
	m.menu = m.newMenu()
	return m
}

func (m AppModel) newMenu() MenuModel {
	menu := NewMenuModel(m.catalog, m.theme, m.config.ScreenW, m.config.ScreenH)
	if m.store != nil {
		best, ok, err := m.store.BestMoves(m.level.ID)
		if err != nil {
			m.logger.Warn("could not read best run", "error", err)
		} else if ok {
			menu = menu.WithSubtitle(m.catalog.Get("MENU_BEST", best))
		}
	}
	return menu
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenInstructions:
		return m.updateInstructions(msg)
	case ScreenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceStart:
		g, err := NewGame(m.level, m.catalog, m.logger)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		gm := NewGameModel(g, m.store, m.config, m.theme, m.logger, m.source)
		m.game = &gm
		m.screen = ScreenGame
		m.logger.Debug("game started", "level", m.level.ID, "player", m.config.Player)
		return m, m.game.Init()

	case ChoiceInstructions:
		m.instructions = NewInstructionsModel(m.catalog, m.theme, game.ControlsHelp, m.config.ScreenW, m.config.ScreenH)
		m.screen = ScreenInstructions
		return m, nil

	case ChoiceRuns:
		m.runs = NewRunsModel(m.store, m.level.ID, m.catalog, m.theme, m.config.ScreenW, m.config.ScreenH)
		m.screen = ScreenRuns
		return m, nil
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateInstructions(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.instructions.Update(msg)
	if im, ok := next.(InstructionsModel); ok {
		m.instructions = im
	}

	if m.instructions.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.instructions.Done() {
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.runs.Update(msg)
	if rm, ok := next.(RunsModel); ok {
		m.runs = rm
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// toMenu returns to a fresh menu, refreshing the best-run line.
func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = ScreenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenGame:
		return m.game.View()
	case ScreenInstructions:
		return m.instructions.View()
	case ScreenRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}

// Screen returns the active view.
func (m AppModel) Screen() Screen {
	return m.screen
}

// Err returns the error that ended the session, if any.
func (m AppModel) Err() error {
	return m.err
}

// IsQuitting reports whether the session has ended.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}
