package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lumen/internal/core"
)

// Theme contains all configurable visual styles for the room and its menus.
type Theme struct {
	// Text lines
	Title  lipgloss.Style
	Text   lipgloss.Style
	Hint   lipgloss.Style
	Border lipgloss.Style
	Dark   lipgloss.Style
	Win    lipgloss.Style

	// Tiles
	Wall       lipgloss.Style
	Floor      lipgloss.Style
	LampOff    lipgloss.Style
	LampOn     lipgloss.Style
	Switch     lipgloss.Style
	DoorLocked lipgloss.Style
	DoorOpen   lipgloss.Style
	Exit       lipgloss.Style
	Player     lipgloss.Style

	// Menus
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	Help           lipgloss.Style
}

// DefaultTheme returns the default visual theme: warm lamp light on a
// cool dark room.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF5AA")).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Dark:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Win:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A0E6A0")).Bold(true),

		Wall:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4B4B5A")),
		Floor:      lipgloss.NewStyle().Foreground(lipgloss.Color("#DCDCEB")),
		LampOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F5D778")),
		LampOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF5AA")).Bold(true),
		Switch:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8CC8FF")),
		DoorLocked: lipgloss.NewStyle().Foreground(lipgloss.Color("#F09696")),
		DoorOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D2D2D2")),
		Exit:       lipgloss.NewStyle().Foreground(lipgloss.Color("#A0E6A0")).Bold(true),
		Player:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBE50")).Bold(true),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF5AA")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		Help:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Wall = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Floor = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.LampOff = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.LampOn = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Switch = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Underline(true)
	theme.DoorLocked = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Reverse(true)
	theme.DoorOpen = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Exit = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Player = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// Style returns the style for a semantic color role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorTitle:
		return t.Title
	case core.ColorText:
		return t.Text
	case core.ColorHint:
		return t.Hint
	case core.ColorBorder:
		return t.Border
	case core.ColorDark:
		return t.Dark
	case core.ColorWall:
		return t.Wall
	case core.ColorFloor:
		return t.Floor
	case core.ColorLampOff:
		return t.LampOff
	case core.ColorLampOn:
		return t.LampOn
	case core.ColorSwitch:
		return t.Switch
	case core.ColorDoorLocked:
		return t.DoorLocked
	case core.ColorDoorOpen:
		return t.DoorOpen
	case core.ColorExit:
		return t.Exit
	case core.ColorPlayer:
		return t.Player
	case core.ColorWin:
		return t.Win
	default:
		return lipgloss.NewStyle()
	}
}

// ThemeByName returns a theme by name; unknown names get the default.
func ThemeByName(name string) Theme {
	if name == "mono" || name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
