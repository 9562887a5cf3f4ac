// Package panels provides the panel components for the page navigation TUI.
package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
// Mode is a string to avoid importing the parent tui package.
type HeaderProps struct {
	Title  string
	Active string // label of the active tab
	Pos    int    // 1-based position of the active tab
	Total  int
	Mode   string // e.g. "BROWSE", "DRAG"
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	title := props.Title
	if title == "" {
		title = "pagenav"
	}

	parts := []string{"▤ " + title}
	if props.Total > 0 {
		noun := "pages"
		if props.Total == 1 {
			noun = "page"
		}
		parts = append(parts, fmt.Sprintf("%d %s", props.Total, noun))
	}
	if props.Active != "" {
		parts = append(parts, fmt.Sprintf("%d: %s", props.Pos, strings.Join(strings.Fields(props.Active), " ")))
	}
	if props.Mode != "" {
		parts = append(parts, props.Mode)
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).MaxWidth(width).Render(content)
}
