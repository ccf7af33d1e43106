package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lumen/internal/i18n"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceInstructions
	ChoiceRuns
	ChoiceQuit
)

// menuItems lists the main menu in display order with catalogue keys.
var menuItems = []struct {
	choice MenuChoice
	key    string
}{
	{ChoiceStart, "MENU_START"},
	{ChoiceInstructions, "MENU_INSTRUCTIONS"},
	{ChoiceRuns, "MENU_BEST_RUNS"},
	{ChoiceQuit, "MENU_QUIT"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	catalog  *i18n.Catalog
	theme    Theme
	keys     MenuKeyMap
	help     help.Model
	cursor   int
	width    int
	height   int
	subtitle string     // e.g. the best recorded escape
	selected MenuChoice // set when the user confirms an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(catalog *i18n.Catalog, theme Theme, width, height int) MenuModel {
	if catalog == nil {
		catalog = i18n.New(i18n.DefaultLanguage)
	}
	return MenuModel{
		catalog: catalog,
		theme:   theme,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
}

// WithSubtitle returns the menu with a line shown under the title.
func (m MenuModel) WithSubtitle(s string) MenuModel {
	m.subtitle = s
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuItems[m.cursor].choice
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	lines := 4 + len(menuItems) + 2
	if top := (m.height - lines) / 2; top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(m.theme.MenuTitle.Render(m.catalog.Get("TITLE")), m.width))
	b.WriteString("\n")
	if m.subtitle != "" {
		b.WriteString(centerText(m.theme.Hint.Render(m.subtitle), m.width))
	}
	b.WriteString("\n\n")

	// Pad labels to one width so the highlight bar lines up.
	labels := make([]string, len(menuItems))
	widest := 0
	for i, item := range menuItems {
		labels[i] = m.catalog.Get(item.key)
		widest = max(widest, lipgloss.Width(labels[i]))
	}
	for i, label := range labels {
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Width(widest+4).Align(lipgloss.Center).Render(label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Help.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Cursor returns the highlighted entry.
func (m MenuModel) Cursor() MenuChoice {
	return menuItems[m.cursor].choice
}

// Selected returns the confirmed entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within given width. Width is measured in
// terminal cells, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
