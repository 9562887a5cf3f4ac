// Package components provides reusable TUI components for the page navigation bar.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabItem is the render state of one tab.
type TabItem struct {
	ID         string
	Label      string
	Active     bool
	Hover      bool // mouse is over the tab's group
	Dragging   bool // tab is the source of an active drag
	DropTarget bool // tab is the current closest-center drop candidate
}

// TabStyles holds the styles used by TabBar.
type TabStyles struct {
	Active     lipgloss.Style
	Inactive   lipgloss.Style
	Dragging   lipgloss.Style
	DropTarget lipgloss.Style
	Insert     lipgloss.Style
	Trigger    lipgloss.Style
	Add        lipgloss.Style
	Overflow   lipgloss.Style
}

// DefaultTabStyles returns the built-in tab styles using the default accent.
func DefaultTabStyles() TabStyles {
	accent := lipgloss.Color("#7D56F4")
	gray := lipgloss.Color("#888888")
	return TabStyles{
		Active:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1),
		Inactive:   lipgloss.NewStyle().Foreground(gray).Padding(0, 1),
		Dragging:   lipgloss.NewStyle().Italic(true).Foreground(accent).Padding(0, 1),
		DropTarget: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#FAFAFA")).Padding(0, 1),
		Insert:     lipgloss.NewStyle().Foreground(accent),
		Trigger:    lipgloss.NewStyle().Foreground(gray),
		Add:        lipgloss.NewStyle().Foreground(gray),
		Overflow:   lipgloss.NewStyle().Foreground(gray),
	}
}

const (
	addLabel     = "+ Add page"
	triggerGlyph = "⋯"
	insertGlyph  = "+"
	overflowL    = "‹ "
	overflowR    = " ›"
	tabGap       = " "
)

// TabBar is a stateless component that renders the row of tabs with their
// insert slots, menu triggers and the trailing add button. When the row is
// wider than the configured width it scrolls to keep the active tab visible.
type TabBar struct {
	items  []TabItem
	width  int
	styles TabStyles
}

// NewTabBar creates a TabBar for the given items.
func NewTabBar(items []TabItem) TabBar {
	return TabBar{items: items, styles: DefaultTabStyles()}
}

// SetWidth returns a TabBar configured for the given render width. Zero
// disables scrolling.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// SetStyles returns a TabBar using the given styles.
func (t TabBar) SetStyles(s TabStyles) TabBar {
	t.styles = s
	return t
}

// Active returns the index of the active item, or 0 when none is marked.
func (t TabBar) Active() int {
	for i, it := range t.items {
		if it.Active {
			return i
		}
	}
	return 0
}

// View renders the tab row as a single line, wrapping each clickable region
// with mark.
func (t TabBar) View(mark Marker) string {
	if mark == nil {
		mark = NoMarks{}
	}
	if len(t.items) == 0 {
		return mark.Mark(AddZoneID, t.styles.Add.Render(addLabel))
	}

	groups := make([]string, len(t.items))
	for i, it := range t.items {
		groups[i] = t.renderGroup(i, it, mark)
	}
	add := mark.Mark(AddZoneID, t.styles.Add.Render(addLabel))

	start, end := t.visibleRange(groups, lipgloss.Width(add))

	var b strings.Builder
	if start > 0 {
		b.WriteString(t.styles.Overflow.Render(overflowL))
	}
	b.WriteString(strings.Join(groups[start:end], tabGap))
	if end < len(groups) {
		b.WriteString(t.styles.Overflow.Render(overflowR))
	}
	b.WriteString(tabGap + tabGap)
	b.WriteString(add)
	return b.String()
}

func (t TabBar) renderGroup(i int, it TabItem, mark Marker) string {
	var style lipgloss.Style
	switch {
	case it.Dragging:
		style = t.styles.Dragging
	case it.DropTarget:
		style = t.styles.DropTarget
	case it.Active:
		style = t.styles.Active
	default:
		style = t.styles.Inactive
	}

	var b strings.Builder
	if i > 0 {
		// The slot keeps its width when hidden so the row does not shift on hover.
		if it.Hover {
			b.WriteString(mark.Mark(InsertZoneID(it.ID), t.styles.Insert.Render(insertGlyph)))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(" ")
	}
	b.WriteString(mark.Mark(TabZoneID(it.ID), style.Render(singleLine(it.Label))))
	b.WriteString(mark.Mark(TriggerZoneID(it.ID), t.styles.Trigger.Render(triggerGlyph)))
	return mark.Mark(GroupZoneID(it.ID), b.String())
}

// visibleRange picks the window of groups that fits in the width while
// keeping the active tab on screen.
func (t TabBar) visibleRange(groups []string, addW int) (int, int) {
	n := len(groups)
	if t.width <= 0 {
		return 0, n
	}
	widths := make([]int, n)
	total := 0
	for i, g := range groups {
		widths[i] = lipgloss.Width(g)
		total += widths[i]
	}
	total += (n - 1) * len(tabGap)
	fixed := addW + 2*len(tabGap)
	if total+fixed <= t.width {
		return 0, n
	}

	budget := t.width - fixed - lipgloss.Width(overflowL) - lipgloss.Width(overflowR)
	active := t.Active()
	start, end := active, active+1
	used := widths[active]
	// Grow right first, then left, while the next group fits.
	for {
		grew := false
		if end < n && used+len(tabGap)+widths[end] <= budget {
			used += len(tabGap) + widths[end]
			end++
			grew = true
		}
		if start > 0 && used+len(tabGap)+widths[start-1] <= budget {
			start--
			used += len(tabGap) + widths[start]
			grew = true
		}
		if !grew {
			break
		}
	}
	return start, end
}

// singleLine collapses newlines so a label never breaks the row.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
