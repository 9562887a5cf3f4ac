package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.PageNav/internal/tui/components"
)

// Theme holds accent-color-derived styles for the tab bar.
type Theme struct {
	accent lipgloss.Color

	header lipgloss.Style
	tabs   components.TabStyles
	menu   components.MenuStyles
	input  lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)

	tabs := components.DefaultTabStyles()
	tabs.Active = tabs.Active.Background(c)
	tabs.Dragging = tabs.Dragging.Foreground(c)
	tabs.Insert = tabs.Insert.Foreground(c)

	menu := components.DefaultMenuStyles()
	menu.Box = menu.Box.BorderForeground(c)
	menu.Danger = menu.Danger.Foreground(colorRed)

	return Theme{
		accent: c,
		header: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		tabs: tabs,
		menu: menu,
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(0, 1),
	}
}

// HeaderStyle returns the style for the header bar.
func (t Theme) HeaderStyle() lipgloss.Style { return t.header }

// TabStyles returns the tab row styles.
func (t Theme) TabStyles() components.TabStyles { return t.tabs }

// MenuStyles returns the context menu styles.
func (t Theme) MenuStyles() components.MenuStyles { return t.menu }

// InputStyle returns the frame drawn around the rename input.
func (t Theme) InputStyle() lipgloss.Style { return t.input }

// Accent returns the accent color.
func (t Theme) Accent() lipgloss.Color { return t.accent }
