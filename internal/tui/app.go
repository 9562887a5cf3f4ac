package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/LISSConsulting/LISSTech.PageNav/internal/clipboard"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/logging"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/tabs"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/tui/panels"
)

// statusTTL is how long a footer status stays visible.
const statusTTL = 2 * time.Second

// Options configures a Model.
type Options struct {
	Labels        []string
	Placeholder   string
	CopySuffix    string
	DragThreshold int
	AccentColor   string
	Clipboard     clipboard.Writer
	Logger        *slog.Logger

	// IDFunc overrides tab ID generation; nil uses random UUIDs.
	IDFunc func() string
}

// Model is the root bubbletea model for the tab bar.
type Model struct {
	list *tabs.List

	// Interaction state
	mode   Mode
	menu   components.ContextMenu
	rename panels.RenameInput
	drag   dragState
	hover  string // tab ID under the mouse
	dropID string // closest-center candidate while dragging

	// Hit testing
	zones *zone.Manager
	hits  hitArea

	// Layout
	layout Layout
	theme  Theme
	width  int
	height int

	clip clipboard.Writer
	log  *slog.Logger

	status    string
	statusSeq int
}

// New creates the root Model.
func New(opts Options) Model {
	var listOpts []tabs.Option
	if opts.Placeholder != "" {
		listOpts = append(listOpts, tabs.WithPlaceholder(opts.Placeholder))
	}
	if opts.CopySuffix != "" {
		listOpts = append(listOpts, tabs.WithCopySuffix(opts.CopySuffix))
	}
	if opts.IDFunc != nil {
		listOpts = append(listOpts, tabs.WithIDFunc(opts.IDFunc))
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}

	zones := zone.New()
	return Model{
		list:   tabs.New(opts.Labels, listOpts...),
		mode:   ModeBrowse,
		rename: panels.NewRenameInput(80),
		drag:   newDrag(opts.DragThreshold),
		zones:  zones,
		hits:   zoneHits{zones: zones},
		layout: Calculate(80, 24),
		theme:  NewTheme(opts.AccentColor),
		width:  80,
		height: 24,
		clip:   clip,
		log:    logger,
	}
}

// Tabs returns a copy of the current tabs in display order.
func (m Model) Tabs() []tabs.Tab { return m.list.Tabs() }

// Active returns the active tab index.
func (m Model) Active() int { return m.list.Active() }

// Mode returns the current interaction mode.
func (m Model) Mode() Mode { return m.mode }

// Status returns the transient footer status, if any.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = Calculate(msg.Width, msg.Height)
		m.rename = m.rename.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case components.MenuActionMsg:
		return m.applyAction(msg)
	case copiedMsg:
		return m.handleCopied(msg)
	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	// Cursor blink and other input messages.
	if m.rename.IsOpen() {
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setMode(next Mode) {
	if m.mode == next {
		return
	}
	if !m.mode.CanTransitionTo(next) {
		m.log.Debug("mode transition rejected", "from", m.mode.String(), "to", next.String())
		return
	}
	m.mode = next
}

// check logs a rejected tab operation. Rejections leave the list untouched
// and are otherwise silent.
func (m Model) check(op string, err error) {
	if err != nil {
		m.log.Debug("tab operation rejected", "op", op, "err", err)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if IsGlobalKey(msg.String()) {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeMenu:
		return m.handleMenuKey(msg)
	case ModeRename:
		return m.handleRenameKey(msg)
	case ModeDrag:
		if msg.String() == "esc" {
			m.cancelDrag()
		}
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.list.Active()
	key := msg.String()

	switch key {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.check("select", m.list.Select(active-1))
	case "right", "l":
		m.check("select", m.list.Select(active+1))
	case "home", "g":
		m.check("select", m.list.Select(0))
	case "end", "G":
		m.check("select", m.list.Select(m.list.Len()-1))
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		m.check("select", m.list.Select(n-1))
	case "a":
		m.check("insert", m.list.Insert(m.list.Len()))
	case "i":
		m.check("insert", m.list.Insert(active))
	case "d":
		m.check("duplicate", m.list.Duplicate(active))
	case "f":
		m.check("set-first", m.list.SetFirst(active))
	case "x":
		m.check("delete", m.list.Delete(active))
	case "<", "shift+left":
		m.check("reorder", m.list.Reorder(active, active-1))
	case ">", "shift+right":
		m.check("reorder", m.list.Reorder(active, active+1))
	case "r":
		return m.openRename(m.list.ActiveTab().ID)
	case "c":
		return m, m.copyCmd(m.list.ActiveTab().Label)
	case "m", "enter":
		return m.openMenu(m.list.ActiveTab().ID), nil
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	if !m.menu.IsOpen() {
		m.setMode(ModeBrowse)
	}
	return m, cmd
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		id, value := m.rename.TabID(), m.rename.Value()
		m.closeRename()
		if pos := m.list.IndexOf(id); pos >= 0 {
			m.check("rename", m.list.Rename(pos, value))
		} else {
			m.check("rename", tabs.ErrUnknownTab)
		}
		return m, nil
	case "esc":
		m.closeRename()
		return m, nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

func (m Model) openMenu(tabID string) Model {
	m.menu = m.menu.Open(tabID)
	m.setMode(ModeMenu)
	return m
}

func (m *Model) closeMenu() {
	m.menu = m.menu.Close()
	m.setMode(ModeBrowse)
}

func (m Model) openRename(tabID string) (tea.Model, tea.Cmd) {
	pos := m.list.IndexOf(tabID)
	if pos < 0 {
		m.check("rename", tabs.ErrUnknownTab)
		return m, nil
	}
	label, _ := m.list.Label(pos)
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Open(tabID, label)
	m.setMode(ModeRename)
	return m, cmd
}

func (m *Model) closeRename() {
	m.rename = m.rename.Close()
	m.setMode(ModeBrowse)
}

func (m *Model) cancelDrag() {
	m.drag = m.drag.Cancel()
	m.dropID = ""
	m.setMode(ModeBrowse)
}

// applyAction runs a context menu action against the tab it was opened for.
func (m Model) applyAction(msg components.MenuActionMsg) (tea.Model, tea.Cmd) {
	pos := m.list.IndexOf(msg.TabID)
	if pos < 0 {
		m.check(msg.Action.String(), tabs.ErrUnknownTab)
		return m, nil
	}
	switch msg.Action {
	case components.ActionSetFirst:
		m.check("set-first", m.list.SetFirst(pos))
	case components.ActionRename:
		return m.openRename(msg.TabID)
	case components.ActionCopy:
		label, _ := m.list.Label(pos)
		return m, m.copyCmd(label)
	case components.ActionDuplicate:
		m.check("duplicate", m.list.Duplicate(pos))
	case components.ActionDelete:
		m.check("delete", m.list.Delete(pos))
	}
	return m, nil
}

func (m Model) copyCmd(label string) tea.Cmd {
	clip := m.clip
	return func() tea.Msg {
		return copiedMsg{Label: label, Err: clip.WriteAll(label)}
	}
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Debug("copy failed", "label", msg.Label, "err", msg.Err)
		return m, nil
	}
	m.log.Debug("copied label", "label", msg.Label)
	m.statusSeq++
	m.status = `Copied "` + msg.Label + `"`
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		return m.handleMotion(msg), nil
	case tea.MouseActionRelease:
		return m.handleRelease(msg), nil
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handlePress(msg)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if m.mode == ModeBrowse {
				m.check("select", m.list.Select(m.list.Active()-1))
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if m.mode == ModeBrowse {
				m.check("select", m.list.Select(m.list.Active()+1))
			}
		}
	}
	return m, nil
}

func (m Model) handlePress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X, msg.Y

	switch m.mode {
	case ModeRename:
		m.closeRename()
		return m, nil
	case ModeDrag:
		m.cancelDrag()
		return m, nil
	case ModeMenu:
		for _, a := range components.MenuActions() {
			if hitTest(m.hits, components.MenuItemZoneID(a), x, y) {
				var cmd tea.Cmd
				m.menu, cmd = m.menu.Fire(a)
				m.setMode(ModeBrowse)
				return m, cmd
			}
		}
		if hitTest(m.hits, components.MenuZoneID, x, y) {
			return m, nil
		}
		// The trigger of the open menu toggles it closed.
		owner := m.menu.TabID()
		m.closeMenu()
		if hitTest(m.hits, components.TriggerZoneID(owner), x, y) {
			return m, nil
		}
	}

	for i, t := range m.list.Tabs() {
		switch {
		case i > 0 && hitTest(m.hits, components.InsertZoneID(t.ID), x, y):
			m.check("insert", m.list.Insert(i))
			return m, nil
		case hitTest(m.hits, components.TriggerZoneID(t.ID), x, y):
			return m.openMenu(t.ID), nil
		case hitTest(m.hits, components.TabZoneID(t.ID), x, y):
			m.check("select", m.list.Select(i))
			src, _ := m.hits.Bounds(components.TabZoneID(t.ID))
			m.drag = m.drag.Press(t.ID, x, y, src)
			return m, nil
		}
	}
	if hitTest(m.hits, components.AddZoneID, x, y) {
		m.check("insert", m.list.Insert(m.list.Len()))
	}
	return m, nil
}

func (m Model) handleMotion(msg tea.MouseMsg) Model {
	m.hover = ""
	for _, t := range m.list.Tabs() {
		if hitTest(m.hits, components.GroupZoneID(t.ID), msg.X, msg.Y) {
			m.hover = t.ID
			break
		}
	}

	if !m.drag.Armed() {
		return m
	}
	m.drag = m.drag.Motion(msg.X, msg.Y)
	if m.drag.Active() {
		m.setMode(ModeDrag)
		m.dropID = m.drag.Candidate(m.dropTargets())
	}
	return m
}

func (m Model) handleRelease(msg tea.MouseMsg) Model {
	if !m.drag.Armed() {
		return m
	}
	var (
		src, dst string
		ok       bool
	)
	m.drag, src, dst, ok = m.drag.Release(msg.X, msg.Y, m.dropTargets())
	m.dropID = ""
	if m.mode == ModeDrag {
		m.setMode(ModeBrowse)
	}
	if ok {
		m.log.Debug("drop", "src", src, "dst", dst)
		m.check("reorder", m.list.ReorderByID(src, dst))
	}
	return m
}

func (m Model) dropTargets() []dropTarget {
	var targets []dropTarget
	for _, t := range m.list.Tabs() {
		if r, ok := m.hits.Bounds(components.TabZoneID(t.ID)); ok {
			targets = append(targets, dropTarget{id: t.ID, bounds: r})
		}
	}
	return targets
}

// View renders the header, tab row, body and footer.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.",
			m.width, m.height, minWidth, minHeight)
		return noticeStyle.Width(m.width).Render(msg)
	}

	active := m.list.ActiveTab()
	pos := m.list.Active() + 1

	header := panels.RenderHeader(panels.HeaderProps{
		Title:  "pagenav",
		Active: active.Label,
		Pos:    pos,
		Total:  m.list.Len(),
		Mode:   m.mode.Label(),
	}, m.layout.Header.Width, m.theme.HeaderStyle())

	row := components.NewTabBar(m.tabItems()).
		SetWidth(m.layout.TabRow.Width).
		SetStyles(m.theme.TabStyles()).
		View(m.zones)

	footer := panels.RenderFooter(panels.FooterProps{
		Hints:  ModeHints(m.mode),
		Status: m.status,
	}, m.layout.Footer.Width)

	frame := strings.Join([]string{header, row, "", m.renderBody(active.Label, pos), footer}, "\n")
	return m.zones.Scan(frame)
}

func (m Model) tabItems() []components.TabItem {
	all := m.list.Tabs()
	active := m.list.Active()
	dragging := m.drag.Active()
	items := make([]components.TabItem, len(all))
	for i, t := range all {
		items[i] = components.TabItem{
			ID:         t.ID,
			Label:      t.Label,
			Active:     i == active,
			Hover:      t.ID == m.hover || i == active,
			Dragging:   dragging && t.ID == m.drag.SourceID(),
			DropTarget: dragging && t.ID == m.dropID && t.ID != m.drag.SourceID(),
		}
	}
	return items
}

// renderBody draws the page panel, with the context menu above it when
// open. The menu is aligned under its tab.
func (m Model) renderBody(label string, pos int) string {
	rename := ""
	if m.rename.IsOpen() {
		rename = m.theme.InputStyle().Render(m.rename.View())
	}
	page := panels.RenderPage(panels.PageProps{
		Label:  label,
		Pos:    pos,
		Total:  m.list.Len(),
		Rename: rename,
	}, m.layout.Body.Width, m.layout.Body.Height)

	if !m.menu.IsOpen() {
		return page
	}

	menu := m.menu.View(m.zones, m.theme.MenuStyles())
	x := 0
	if r, ok := m.hits.Bounds(components.TabZoneID(m.menu.TabID())); ok {
		x = r.X
	}
	x = max(0, min(x, m.layout.Body.Width-lipgloss.Width(menu)))
	pad := strings.Repeat(" ", x)

	lines := strings.Split(menu, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	lines = append(lines, strings.Split(page, "\n")...)
	if len(lines) > m.layout.Body.Height {
		lines = lines[:m.layout.Body.Height]
	}
	return strings.Join(lines, "\n")
}
