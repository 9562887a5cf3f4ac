package tui

// Minimum terminal size the tab bar renders at.
const (
	minWidth  = 40
	minHeight = 10
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the center point of r.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, TabRow, Body, Footer Rect
	TooSmall                     bool // true when terminal is below the minimum size
}

// Calculate computes the layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 40 or height < 10.
//
//   - Header: full width, 1 row at top
//   - TabRow: full width, 1 row, followed by a 1-row gap
//   - Body: full width, everything between the gap and the footer
//   - Footer: full width, 1 row at bottom
func Calculate(width, height int) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}

	bodyY := 3 // header + tab row + gap
	bodyH := height - bodyY - 1

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		TabRow: Rect{X: 0, Y: 1, Width: width, Height: 1},
		Body:   Rect{X: 0, Y: bodyY, Width: width, Height: bodyH},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
}
