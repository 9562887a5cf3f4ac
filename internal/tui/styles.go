// Package tui provides the bubbletea + lipgloss terminal UI for the page
// navigation bar.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette.
var (
	colorGray = lipgloss.Color("#888888")
	colorRed  = lipgloss.Color("#FF6B6B")
)

var noticeStyle = lipgloss.NewStyle().
	Foreground(colorGray).
	Align(lipgloss.Center)
