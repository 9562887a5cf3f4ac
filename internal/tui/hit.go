package tui

import zone "github.com/lrstanley/bubblezone"

// hitArea resolves a zone ID to its last rendered bounds.
type hitArea interface {
	Bounds(id string) (Rect, bool)
}

// zoneHits reads bounds from a bubblezone manager.
type zoneHits struct {
	zones *zone.Manager
}

// Bounds returns the rectangle zone id occupied in the last scanned frame.
func (z zoneHits) Bounds(id string) (Rect, bool) {
	if z.zones == nil {
		return Rect{}, false
	}
	info := z.zones.Get(id)
	if info == nil || info.IsZero() {
		return Rect{}, false
	}
	return Rect{
		X:      info.StartX,
		Y:      info.StartY,
		Width:  info.EndX - info.StartX + 1,
		Height: info.EndY - info.StartY + 1,
	}, true
}

// hitTest reports whether (x, y) falls inside zone id.
func hitTest(h hitArea, id string, x, y int) bool {
	r, ok := h.Bounds(id)
	return ok && r.Contains(x, y)
}
