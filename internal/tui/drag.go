package tui

import "math"

// dropTarget is a tab that can receive a drop, with its on-screen bounds.
type dropTarget struct {
	id     string
	bounds Rect
}

// dragState recognizes a press-move-release gesture on a tab and resolves
// where it lands. A press only becomes a drag after the pointer has moved
// threshold cells; anything less is a click.
type dragState struct {
	threshold int

	armed    bool
	active   bool
	sourceID string
	source   Rect
	originX  int
	originY  int
	x, y     int
}

func newDrag(threshold int) dragState {
	return dragState{threshold: threshold}
}

// Press arms the gesture for the tab id whose bounds are src.
func (d dragState) Press(id string, x, y int, src Rect) dragState {
	return dragState{
		threshold: d.threshold,
		armed:     true,
		sourceID:  id,
		source:    src,
		originX:   x,
		originY:   y,
		x:         x,
		y:         y,
	}
}

// Motion tracks the pointer and activates the drag once it has travelled
// far enough from the press point.
func (d dragState) Motion(x, y int) dragState {
	if !d.armed {
		return d
	}
	d.x, d.y = x, y
	if !d.active && chebyshev(x-d.originX, y-d.originY) >= d.threshold {
		d.active = true
	}
	return d
}

// Release ends the gesture. ok is false when the press never became a drag,
// no target could be resolved, or the tab was dropped on itself.
func (d dragState) Release(x, y int, targets []dropTarget) (next dragState, src, dst string, ok bool) {
	d = d.Motion(x, y)
	next = newDrag(d.threshold)
	if !d.active {
		return next, "", "", false
	}
	dst = d.Candidate(targets)
	if dst == "" || dst == d.sourceID {
		return next, "", "", false
	}
	return next, d.sourceID, dst, true
}

// Cancel drops the gesture without a result.
func (d dragState) Cancel() dragState {
	return newDrag(d.threshold)
}

// Armed reports whether a press is being tracked.
func (d dragState) Armed() bool { return d.armed }

// Active reports whether the press has become a drag.
func (d dragState) Active() bool { return d.active }

// SourceID returns the tab being dragged.
func (d dragState) SourceID() string { return d.sourceID }

// Candidate returns the target whose center is closest to the center of the
// dragged tab, which moves with the pointer. Returns "" when inactive or
// there are no targets.
func (d dragState) Candidate(targets []dropTarget) string {
	if !d.active || len(targets) == 0 {
		return ""
	}
	cx, cy := d.source.Center()
	cx += float64(d.x - d.originX)
	cy += float64(d.y - d.originY)

	best, bestDist := "", math.Inf(1)
	for _, t := range targets {
		tx, ty := t.bounds.Center()
		dist := math.Hypot(tx-cx, ty-cy)
		if dist < bestDist {
			best, bestDist = t.id, dist
		}
	}
	return best
}

func chebyshev(dx, dy int) int {
	return max(abs(dx), abs(dy))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
