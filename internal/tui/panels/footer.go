package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77")).Bold(true)
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Hints  []string // key hints for the current mode
	Status string   // transient message, e.g. `Copied "Info"`
}

// RenderFooter renders the footer bar. Left side: the transient status.
// Right side: key hints for the current mode.
func RenderFooter(props FooterProps, width int) string {
	left := ""
	if props.Status != "" {
		left = statusStyle.Render(props.Status)
	}
	right := strings.Join(props.Hints, "  ")

	// Drop hints from the end until the line fits.
	hints := props.Hints
	for len(hints) > 0 && lipgloss.Width(left)+2+lipgloss.Width(right) > width {
		hints = hints[:len(hints)-1]
		right = strings.Join(hints, "  ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}
