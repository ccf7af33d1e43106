package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lumen/internal/i18n"
)

var instructionKeys = []string{
	"HOWTO_MOUSE",
	"HOWTO_LIT",
	"HOWTO_MOVE",
	"HOWTO_LAMP",
	"HOWTO_SWITCH",
	"HOWTO_EXIT",
	"",
	"HOWTO_TILES",
	"HOWTO_TILE_WALL",
	"HOWTO_TILE_LAMP",
	"HOWTO_TILE_DOOR",
	"HOWTO_TILE_EXIT",
}

// InstructionsModel shows the rules. Any key returns to the menu.
type InstructionsModel struct {
	catalog  *i18n.Catalog
	theme    Theme
	controls string
	width    int
	height   int
	done     bool
	quitting bool
}

// NewInstructionsModel creates the rules screen. controls is the key
// summary shown under the rules.
func NewInstructionsModel(catalog *i18n.Catalog, theme Theme, controls string, width, height int) InstructionsModel {
	if catalog == nil {
		catalog = i18n.New(i18n.DefaultLanguage)
	}
	return InstructionsModel{
		catalog:  catalog,
		theme:    theme,
		controls: controls,
		width:    width,
		height:   height,
	}
}

// Init implements tea.Model.
func (m InstructionsModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, nil
		}
		m.done = true
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.done = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View implements tea.Model.
func (m InstructionsModel) View() string {
	var body strings.Builder
	body.WriteString(m.theme.MenuTitle.Render(m.catalog.Get("HOWTO_HEADER")))
	body.WriteString("\n\n")
	for _, k := range instructionKeys {
		if k != "" {
			body.WriteString(m.theme.Text.Render(m.catalog.Get(k)))
		}
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(m.theme.Hint.Render(m.controls))
	body.WriteString("\n\n")
	body.WriteString(m.theme.Help.Render(m.catalog.Get("MENU_BACK") + " (any key)"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(body.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Done reports whether the user dismissed the screen.
func (m InstructionsModel) Done() bool { return m.done }

// IsQuitting reports whether the user asked to quit entirely.
func (m InstructionsModel) IsQuitting() bool { return m.quitting }
