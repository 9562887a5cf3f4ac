package components

// Zone ID prefixes for mouse hit testing. Every clickable region of the tab
// row and the context menu is wrapped with a zone marker under one of these
// IDs; the root model resolves mouse events against the marked bounds.
const (
	zoneTabPrefix     = "tab:"
	zoneGroupPrefix   = "group:"
	zoneTriggerPrefix = "trigger:"
	zoneInsertPrefix  = "insert:"
	zoneMenuPrefix    = "menu-item:"

	// AddZoneID marks the trailing "+ Add page" button.
	AddZoneID = "insert-end"

	// MenuZoneID marks the whole context menu box.
	MenuZoneID = "menu"
)

// Marker wraps rendered content in a zone marker. *zone.Manager satisfies it.
type Marker interface {
	Mark(id, v string) string
}

// NoMarks is a Marker that returns content unchanged.
type NoMarks struct{}

// Mark returns v.
func (NoMarks) Mark(_, v string) string { return v }

// TabZoneID is the zone of a tab's label pill (select, drag source and drop target).
func TabZoneID(tabID string) string { return zoneTabPrefix + tabID }

// GroupZoneID spans a tab's insert slot, pill and menu trigger; used for hover.
func GroupZoneID(tabID string) string { return zoneGroupPrefix + tabID }

// TriggerZoneID is the zone of a tab's "⋯" menu trigger.
func TriggerZoneID(tabID string) string { return zoneTriggerPrefix + tabID }

// InsertZoneID is the zone of the "+" slot rendered before a tab.
func InsertZoneID(tabID string) string { return zoneInsertPrefix + tabID }

// MenuItemZoneID is the zone of one context menu entry.
func MenuItemZoneID(a MenuAction) string { return zoneMenuPrefix + a.String() }
