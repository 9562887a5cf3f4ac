package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuAction is an entry of the per-tab context menu.
type MenuAction int

const (
	ActionSetFirst MenuAction = iota
	ActionRename
	ActionCopy
	ActionDuplicate
	ActionDelete
)

// String returns the stable name of the action.
func (a MenuAction) String() string {
	switch a {
	case ActionSetFirst:
		return "set-first"
	case ActionRename:
		return "rename"
	case ActionCopy:
		return "copy"
	case ActionDuplicate:
		return "duplicate"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type menuEntry struct {
	action    MenuAction
	label     string
	key       string
	separator bool // draw a rule above this entry
}

var menuEntries = []menuEntry{
	{action: ActionSetFirst, label: "Set as first page", key: "f"},
	{action: ActionRename, label: "Rename", key: "r"},
	{action: ActionCopy, label: "Copy", key: "c"},
	{action: ActionDuplicate, label: "Duplicate", key: "d"},
	{action: ActionDelete, label: "Delete", key: "x", separator: true},
}

// MenuActions returns the menu's actions in display order.
func MenuActions() []MenuAction {
	out := make([]MenuAction, len(menuEntries))
	for i, e := range menuEntries {
		out[i] = e.action
	}
	return out
}

// MenuActionMsg is emitted when a menu entry fires. The menu is already
// closed by the time the message is delivered.
type MenuActionMsg struct {
	TabID  string
	Action MenuAction
}

// MenuStyles holds the styles used by ContextMenu.
type MenuStyles struct {
	Box      lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Danger   lipgloss.Style
	Key      lipgloss.Style
	Rule     lipgloss.Style
}

// DefaultMenuStyles returns the built-in menu styles.
func DefaultMenuStyles() MenuStyles {
	gray := lipgloss.Color("#888888")
	return MenuStyles{
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Reverse(true),
		Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Key:      lipgloss.NewStyle().Foreground(gray),
		Rule:     lipgloss.NewStyle().Foreground(gray),
	}
}

// ContextMenu is the popup of actions for one tab. At most one is open:
// the root model holds a single ContextMenu and Open replaces its target.
type ContextMenu struct {
	tabID  string
	open   bool
	cursor int
}

// Open returns the menu opened for tabID with the first entry highlighted.
func (c ContextMenu) Open(tabID string) ContextMenu {
	return ContextMenu{tabID: tabID, open: true}
}

// Close returns the closed menu.
func (c ContextMenu) Close() ContextMenu {
	return ContextMenu{}
}

// IsOpen reports whether the menu is showing.
func (c ContextMenu) IsOpen() bool { return c.open }

// TabID returns the tab the menu belongs to, or "" when closed.
func (c ContextMenu) TabID() string { return c.tabID }

// Highlighted returns the action under the cursor.
func (c ContextMenu) Highlighted() MenuAction { return menuEntries[c.cursor].action }

// Fire closes the menu and returns a command delivering the action.
func (c ContextMenu) Fire(a MenuAction) (ContextMenu, tea.Cmd) {
	if !c.open {
		return c, nil
	}
	id := c.tabID
	return c.Close(), func() tea.Msg { return MenuActionMsg{TabID: id, Action: a} }
}

// Update handles key messages while the menu is open.
func (c ContextMenu) Update(msg tea.Msg) (ContextMenu, tea.Cmd) {
	if !c.open {
		return c, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	key := keyMsg.String()
	switch key {
	case "j", "down", "tab":
		c.cursor = (c.cursor + 1) % len(menuEntries)
		return c, nil
	case "k", "up", "shift+tab":
		c.cursor = (c.cursor + len(menuEntries) - 1) % len(menuEntries)
		return c, nil
	case "enter", " ":
		return c.Fire(c.Highlighted())
	case "esc":
		return c.Close(), nil
	}
	for _, e := range menuEntries {
		if e.key == key {
			return c.Fire(e.action)
		}
	}
	return c, nil
}

// View renders the menu box, or "" when closed.
func (c ContextMenu) View(mark Marker, s MenuStyles) string {
	if !c.open {
		return ""
	}
	if mark == nil {
		mark = NoMarks{}
	}

	width := 0
	for _, e := range menuEntries {
		width = max(width, lipgloss.Width(e.label))
	}
	width += 4 // "  x" key column

	lines := []string{s.Title.Render("Settings")}
	for i, e := range menuEntries {
		if e.separator {
			lines = append(lines, s.Rule.Render(strings.Repeat("─", width)))
		}
		label := e.label + strings.Repeat(" ", width-lipgloss.Width(e.label)-1) + s.Key.Render(e.key)
		style := s.Item
		if e.action == ActionDelete {
			style = s.Danger
		}
		if i == c.cursor {
			style = style.Inherit(s.Selected)
		}
		lines = append(lines, mark.Mark(MenuItemZoneID(e.action), style.Render(label)))
	}
	return mark.Mark(MenuZoneID, s.Box.Render(strings.Join(lines, "\n")))
}
