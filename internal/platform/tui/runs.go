package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/storage"
)

// maxRuns is the number of runs loaded for the table.
const maxRuns = 100

// RunsModel is the Bubble Tea model for the best-runs screen of one level.
type RunsModel struct {
	levelID  string
	store    *storage.Store
	catalog  *i18n.Catalog
	theme    Theme
	runs     []storage.Run
	stats    *storage.LevelStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewRunsModel creates the best-runs screen and loads the runs. store may
// be nil, in which case the table stays empty.
func NewRunsModel(store *storage.Store, levelID string, catalog *i18n.Catalog, theme Theme, width, height int) RunsModel {
	if catalog == nil {
		catalog = i18n.New(i18n.DefaultLanguage)
	}
	h := help.New()
	h.Width = width

	m := RunsModel{
		levelID: levelID,
		store:   store,
		catalog: catalog,
		theme:   theme,
		keys:    DefaultMenuKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: m.catalog.Get("RUNS_COL_RANK"), Width: 5},
		{Title: m.catalog.Get("RUNS_COL_PLAYER"), Width: 16},
		{Title: m.catalog.Get("RUNS_COL_MOVES"), Width: 7},
		{Title: m.catalog.Get("RUNS_COL_DATE"), Width: 14},
	}

	// Give spare width to the player column.
	if spare := m.width - 4 - 5 - 16 - 7 - 14 - 8; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats from the store.
func (m *RunsModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.BestRuns(m.levelID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.LevelStats(m.levelID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Moves),
			r.CompletedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs screen.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.back = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs screen.
func (m RunsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(m.catalog.Get("RUNS_TITLE")), m.width))
	b.WriteString("\n")
	if m.stats != nil && m.stats.Runs > 0 {
		line := m.catalog.Get("RUNS_STATS", m.stats.Runs, m.stats.Players, m.stats.AvgMoves)
		b.WriteString(centerText(m.theme.Hint.Render(line), m.width))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render(m.catalog.Get("RUNS_EMPTY"))
	}
	return m.table.View()
}

// Runs returns the loaded runs, best first.
func (m RunsModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}
