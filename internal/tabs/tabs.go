// Package tabs owns the ordered tab list and the active-tab index for the
// page navigation bar.
package tabs

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DefaultPlaceholder is the label given to newly inserted tabs.
const DefaultPlaceholder = "Untitled"

// DefaultCopySuffix is appended to a label when a tab is duplicated.
const DefaultCopySuffix = " Copy"

var (
	// ErrOutOfRange is returned when a position does not address a tab
	// (or, for Insert, a valid insertion point).
	ErrOutOfRange = errors.New("tabs: position out of range")

	// ErrLastTab is returned when deleting the only remaining tab.
	ErrLastTab = errors.New("tabs: cannot delete the last tab")

	// ErrEmptyLabel is returned when a rename trims to an empty label.
	ErrEmptyLabel = errors.New("tabs: label must not be empty")

	// ErrUnknownTab is returned when an ID does not name a tab in the list.
	ErrUnknownTab = errors.New("tabs: unknown tab id")
)

// Tab is a single page in the navigation bar. ID is assigned once at
// creation and never changes; labels need not be unique.
type Tab struct {
	ID    string
	Label string
}

// List is the tab list controller. The zero value is not usable; call New.
//
// Invariant: 0 <= Active() < Len() after every operation. Operations that
// would break it are rejected with an error and leave the list unchanged.
type List struct {
	tabs        []Tab
	active      int
	placeholder string
	copySuffix  string
	newID       func() string
}

// Option configures a List.
type Option func(*List)

// WithPlaceholder sets the label used by Insert.
func WithPlaceholder(label string) Option {
	return func(l *List) { l.placeholder = label }
}

// WithCopySuffix sets the suffix appended by Duplicate.
func WithCopySuffix(suffix string) Option {
	return func(l *List) { l.copySuffix = suffix }
}

// WithIDFunc overrides tab ID generation.
func WithIDFunc(fn func() string) Option {
	return func(l *List) { l.newID = fn }
}

// New creates a List seeded with one tab per label. The first tab is active.
// An empty labels slice seeds a single placeholder tab so the list is never
// empty.
func New(labels []string, opts ...Option) *List {
	l := &List{
		placeholder: DefaultPlaceholder,
		copySuffix:  DefaultCopySuffix,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	for _, label := range labels {
		l.tabs = append(l.tabs, Tab{ID: l.newID(), Label: label})
	}
	if len(l.tabs) == 0 {
		l.tabs = append(l.tabs, Tab{ID: l.newID(), Label: l.placeholder})
	}
	return l
}

// Len returns the number of tabs.
func (l *List) Len() int { return len(l.tabs) }

// Active returns the index of the active tab.
func (l *List) Active() int { return l.active }

// ActiveTab returns the active tab.
func (l *List) ActiveTab() Tab { return l.tabs[l.active] }

// Tabs returns a copy of the tabs in display order.
func (l *List) Tabs() []Tab {
	out := make([]Tab, len(l.tabs))
	copy(out, l.tabs)
	return out
}

// Labels returns the tab labels in display order.
func (l *List) Labels() []string {
	out := make([]string, len(l.tabs))
	for i, t := range l.tabs {
		out[i] = t.Label
	}
	return out
}

// Label returns the label at pos.
func (l *List) Label(pos int) (string, error) {
	if !l.valid(pos) {
		return "", ErrOutOfRange
	}
	return l.tabs[pos].Label, nil
}

// IndexOf returns the position of the tab with the given ID, or -1.
func (l *List) IndexOf(id string) int {
	for i, t := range l.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Select makes the tab at pos active.
func (l *List) Select(pos int) error {
	if !l.valid(pos) {
		return ErrOutOfRange
	}
	l.active = pos
	return nil
}

// Insert adds a placeholder tab at pos (0..Len) and makes it active.
func (l *List) Insert(pos int) error {
	if pos < 0 || pos > len(l.tabs) {
		return ErrOutOfRange
	}
	l.tabs = insertAt(l.tabs, pos, Tab{ID: l.newID(), Label: l.placeholder})
	l.active = pos
	return nil
}

// Delete removes the tab at pos. If it was active, the tab before it (or
// the first tab) becomes active; tabs after it shift the active index down.
func (l *List) Delete(pos int) error {
	if !l.valid(pos) {
		return ErrOutOfRange
	}
	if len(l.tabs) == 1 {
		return ErrLastTab
	}
	l.tabs = append(l.tabs[:pos:pos], l.tabs[pos+1:]...)
	switch {
	case l.active == pos:
		l.active = max(0, pos-1)
	case l.active > pos:
		l.active--
	}
	return nil
}

// SetFirst moves the tab at pos to the front, keeping the relative order of
// the others, and makes the front tab active.
func (l *List) SetFirst(pos int) error {
	if !l.valid(pos) {
		return ErrOutOfRange
	}
	if pos != 0 {
		l.tabs = move(l.tabs, pos, 0)
	}
	l.active = 0
	return nil
}

// Duplicate inserts a copy of the tab at pos right after it, with a fresh
// ID and the copy suffix, and makes the copy active.
func (l *List) Duplicate(pos int) error {
	if !l.valid(pos) {
		return ErrOutOfRange
	}
	dup := Tab{ID: l.newID(), Label: l.tabs[pos].Label + l.copySuffix}
	l.tabs = insertAt(l.tabs, pos+1, dup)
	l.active = pos + 1
	return nil
}

// Rename replaces the label at pos with the whitespace-trimmed label.
func (l *List) Rename(pos int, label string) error {
	if !l.valid(pos) {
		return ErrOutOfRange
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	l.tabs[pos].Label = label
	return nil
}

// Reorder moves the tab at from to position to, shifting the tabs between.
// The active tab keeps being active wherever it ends up.
func (l *List) Reorder(from, to int) error {
	if !l.valid(from) || !l.valid(to) {
		return ErrOutOfRange
	}
	if from == to {
		return nil
	}
	l.tabs = move(l.tabs, from, to)
	switch {
	case l.active == from:
		l.active = to
	case from < l.active && to >= l.active:
		l.active--
	case from > l.active && to <= l.active:
		l.active++
	}
	return nil
}

// ReorderByID moves the tab with ID src to the position currently held by
// the tab with ID dst.
func (l *List) ReorderByID(src, dst string) error {
	from, to := l.IndexOf(src), l.IndexOf(dst)
	if from < 0 || to < 0 {
		return ErrUnknownTab
	}
	return l.Reorder(from, to)
}

func (l *List) valid(pos int) bool {
	return pos >= 0 && pos < len(l.tabs)
}

func insertAt(s []Tab, pos int, t Tab) []Tab {
	s = append(s, Tab{})
	copy(s[pos+1:], s[pos:])
	s[pos] = t
	return s
}

// move relocates s[from] to index to, shifting the elements between.
func move(s []Tab, from, to int) []Tab {
	t := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = t
	return s
}
