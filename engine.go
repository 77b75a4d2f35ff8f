package textlayout

import "math"

// HitTestPoint is the result of mapping a point to a text offset.
type HitTestPoint struct {
	// Offset is the byte offset of the nearest grapheme boundary.
	Offset int

	// IsInside reports whether the point lies within the text both
	// vertically and horizontally.
	IsInside bool
}

// HitTestPosition is the result of mapping a text offset to a point.
type HitTestPosition struct {
	// Point is the caret position on the baseline of the line.
	Point Point

	// Line is the index of the line containing the offset.
	Line int
}

// Engine maps between points and offsets of a Layout.
// Implementations must be safe for concurrent use.
type Engine interface {
	HitTestPoint(l *Layout, p Point) HitTestPoint
	HitTestTextPosition(l *Layout, offset int) HitTestPosition
}

// DefaultEngine returns the engine used when none is configured.
func DefaultEngine() Engine {
	return GraphemeEngine{}
}

// boundsFunc returns the extents of the i-th grapheme of a line.
type boundsFunc func(i int) GraphemeBounds

// searchLine finds the grapheme boundary nearest to x on a line with n
// graphemes starting at starts. It returns the line-local byte offset,
// whether x lies within the line, and false when no grapheme contains x.
func searchLine(starts []int, bounds boundsFunc, x float64) (int, bool, bool) {
	n := len(starts) - 1
	if n <= 0 || math.IsNaN(x) {
		return 0, false, true
	}

	if first := bounds(0); x <= first.Leading {
		return 0, false, true
	}
	if last := bounds(n - 1); x > last.Trailing {
		return starts[n], false, true
	}

	left, right := 0, n
	for left < right {
		mid := left + (right-left)/2
		b := bounds(mid)
		switch {
		case x < b.Leading:
			right = mid
		case x > b.Trailing:
			left = mid + 1
		default:
			// Ties go to the trailing edge.
			if x-b.Leading < b.Trailing-x {
				return starts[mid], true, true
			}
			return starts[mid+1], true, true
		}
	}
	return 0, false, false
}

// hitTestPoint runs vertical bucketing, then searches the visible part of
// the chosen line with the grapheme bounds produced by lineBounds.
func hitTestPoint(l *Layout, p Point, lineBounds func(line string, starts []int) boundsFunc) HitTestPoint {
	n, vertical := l.lineForY(p.Y)
	lm := l.lines[n]

	visible := l.text[lm.StartOffset:lm.VisibleEnd()]
	starts := graphemeStarts(visible)
	local, horizontal, ok := searchLine(starts, lineBounds(visible, starts), p.X)
	if !ok {
		Logger().Debug("textlayout: hit test found no grapheme",
			"line", n, "x", p.X, "y", p.Y)
		return HitTestPoint{}
	}

	// local never passes the visible end, so a hard break is never hit.
	return HitTestPoint{Offset: lm.StartOffset + local, IsInside: vertical && horizontal}
}
