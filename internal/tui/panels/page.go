package panels

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labelCharLimit caps the length of a tab label typed into the rename input.
// A longer existing label raises the cap so it is never cut on open.
const labelCharLimit = 64

var (
	pageTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	pageDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

// RenameInput is the inline text field used to rename a tab. The root model
// owns enter and esc; every other key is passed to Update.
type RenameInput struct {
	input textinput.Model
	tabID string
	open  bool
}

// NewRenameInput creates a closed rename input.
func NewRenameInput(width int) RenameInput {
	ti := textinput.New()
	ti.Placeholder = "page name"
	ti.CharLimit = labelCharLimit
	ti.Prompt = "› "
	r := RenameInput{input: ti}
	return r.SetWidth(width)
}

// Open focuses the input for tabID, prefilled with label.
func (r RenameInput) Open(tabID, label string) (RenameInput, tea.Cmd) {
	r.tabID = tabID
	r.open = true
	r.input.CharLimit = max(labelCharLimit, utf8.RuneCountInString(label))
	r.input.SetValue(label)
	r.input.CursorEnd()
	return r, r.input.Focus()
}

// Close blurs and clears the input.
func (r RenameInput) Close() RenameInput {
	r.input.Blur()
	r.input.Reset()
	r.tabID = ""
	r.open = false
	return r
}

// IsOpen reports whether the input is showing.
func (r RenameInput) IsOpen() bool { return r.open }

// TabID returns the tab being renamed.
func (r RenameInput) TabID() string { return r.tabID }

// Value returns the current text.
func (r RenameInput) Value() string { return r.input.Value() }

// SetWidth resizes the text field.
func (r RenameInput) SetWidth(w int) RenameInput {
	if w > 4 {
		r.input.Width = w - 4
	}
	return r
}

// Update forwards msg to the text field while open.
func (r RenameInput) Update(msg tea.Msg) (RenameInput, tea.Cmd) {
	if !r.open {
		return r, nil
	}
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

// View renders the input with its prompt and hint.
func (r RenameInput) View() string {
	if !r.open {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		promptStyle.Render("Rename page:"),
		r.input.View(),
		pageDimStyle.Render("Enter to save · Esc to cancel"),
	)
}

// PageProps holds the data for the body panel.
type PageProps struct {
	Label  string
	Pos    int // 1-based
	Total  int
	Rename string // rendered rename input, empty when closed
}

// RenderPage renders the body for the active page.
func RenderPage(props PageProps, width, height int) string {
	title := pageTitleStyle.Render(strings.Join(strings.Fields(props.Label), " "))
	pos := pageDimStyle.Render(fmt.Sprintf("Page %d of %d", props.Pos, props.Total))

	rows := []string{title, pos}
	if props.Rename != "" {
		rows = append(rows, "", props.Rename)
	}
	return lipgloss.NewStyle().
		Width(width).Height(height).
		MaxWidth(width).MaxHeight(height).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
