package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// recordMarks records every zone ID it is asked to mark.
type recordMarks struct {
	ids map[string]string
}

func newRecordMarks() *recordMarks { return &recordMarks{ids: map[string]string{}} }

func (r *recordMarks) Mark(id, v string) string {
	r.ids[id] = v
	return v
}

func items(labels ...string) []TabItem {
	out := make([]TabItem, len(labels))
	for i, l := range labels {
		out[i] = TabItem{ID: "id-" + l, Label: l, Active: i == 0}
	}
	return out
}

func TestTabBar_View_ContainsAllTabs(t *testing.T) {
	labels := []string{"Info", "Details", "Other", "Ending"}
	view := NewTabBar(items(labels...)).View(nil)
	for _, label := range labels {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q: got %q", label, view)
		}
	}
	if !strings.Contains(view, addLabel) {
		t.Errorf("View() missing add button: %q", view)
	}
	if strings.Count(view, triggerGlyph) != len(labels) {
		t.Errorf("want one menu trigger per tab, got %q", view)
	}
}

func TestTabBar_View_SingleLine(t *testing.T) {
	view := NewTabBar(items("A", "B\nC")).View(nil)
	if lipgloss.Height(view) != 1 {
		t.Errorf("tab row should be one line, got %q", view)
	}
}

func TestTabBar_Active(t *testing.T) {
	it := items("A", "B", "C")
	it[0].Active = false
	it[2].Active = true
	if got := NewTabBar(it).Active(); got != 2 {
		t.Errorf("Active() = %d, want 2", got)
	}
	if got := NewTabBar(nil).Active(); got != 0 {
		t.Errorf("empty Active() = %d, want 0", got)
	}
}

func TestTabBar_Empty(t *testing.T) {
	view := NewTabBar(nil).View(nil)
	if !strings.Contains(view, addLabel) {
		t.Errorf("empty bar should still offer add: %q", view)
	}
}

func TestTabBar_Zones(t *testing.T) {
	it := items("Info", "Details")
	marks := newRecordMarks()
	NewTabBar(it).View(marks)

	for _, id := range []string{
		TabZoneID("id-Info"), TriggerZoneID("id-Info"), GroupZoneID("id-Info"),
		TabZoneID("id-Details"), TriggerZoneID("id-Details"), GroupZoneID("id-Details"),
		AddZoneID,
	} {
		if _, ok := marks.ids[id]; !ok {
			t.Errorf("zone %q not marked", id)
		}
	}
	if _, ok := marks.ids[InsertZoneID("id-Info")]; ok {
		t.Error("first tab must not have an insert slot")
	}
	if _, ok := marks.ids[InsertZoneID("id-Details")]; ok {
		t.Error("insert slot should be hidden when not hovered")
	}
}

func TestTabBar_InsertVisibleOnHover(t *testing.T) {
	it := items("Info", "Details")
	it[1].Hover = true
	marks := newRecordMarks()
	view := NewTabBar(it).View(marks)
	if _, ok := marks.ids[InsertZoneID("id-Details")]; !ok {
		t.Error("hovered tab should expose its insert slot")
	}
	if !strings.Contains(view, insertGlyph+" ") {
		t.Errorf("insert glyph missing: %q", view)
	}
}

func TestTabBar_HoverDoesNotShiftRow(t *testing.T) {
	plain := items("Info", "Details", "Other")
	hovered := items("Info", "Details", "Other")
	hovered[2].Hover = true
	a := lipgloss.Width(NewTabBar(plain).View(nil))
	b := lipgloss.Width(NewTabBar(hovered).View(nil))
	if a != b {
		t.Errorf("width changed on hover: %d vs %d", a, b)
	}
}

func TestTabBar_ScrollKeepsActiveVisible(t *testing.T) {
	labels := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}
	it := items(labels...)
	it[0].Active = false
	it[6].Active = true

	view := NewTabBar(it).SetWidth(50).View(nil)
	if !strings.Contains(view, "Golf") {
		t.Errorf("active tab scrolled out of view: %q", view)
	}
	if strings.Contains(view, "Alpha") {
		t.Errorf("first tab should have scrolled away: %q", view)
	}
	if !strings.Contains(view, overflowL) {
		t.Errorf("missing left overflow marker: %q", view)
	}
	if w := lipgloss.Width(view); w > 50 {
		t.Errorf("row width %d exceeds 50", w)
	}
}

func TestTabBar_NoScrollWhenItFits(t *testing.T) {
	view := NewTabBar(items("A", "B")).SetWidth(200).View(nil)
	if strings.Contains(view, overflowL) || strings.Contains(view, overflowR) {
		t.Errorf("unexpected overflow markers: %q", view)
	}
}
