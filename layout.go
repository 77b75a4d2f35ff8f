package textlayout

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/gogpu/textlayout/font"
)

// Layout is text broken into lines under a width constraint.
//
// A Layout is immutable: WithWidth returns a new Layout and leaves the
// receiver untouched. Queries are safe for concurrent use when the
// Measurer is.
type Layout struct {
	text     string
	measurer Measurer
	opts     options
	family   font.Family

	lines []LineMetric
	// widths holds the measured width of the visible part of every line.
	widths []float64
	size   Size
}

// New lays out text measured by m.
func New(text string, m Measurer, opts ...Option) (*Layout, error) {
	if m == nil {
		return nil, ErrNilMeasurer
	}
	return newLayout(text, m, font.Family{}, buildOptions(opts)), nil
}

func newLayout(text string, m Measurer, family font.Family, o options) *Layout {
	l := &Layout{
		text:     text,
		measurer: m,
		opts:     o,
		family:   family,
		lines:    breakLines(text, m, o.maxWidth, o.lineSpacing),
	}

	l.widths = make([]float64, len(l.lines))
	for i, lm := range l.lines {
		l.widths[i] = m.Advance(text[lm.StartOffset:lm.VisibleEnd()])
		l.size.Width = math.Max(l.size.Width, l.widths[i])
	}
	l.size.Height = l.lines[len(l.lines)-1].Bottom()

	Logger().Debug("textlayout: layout built",
		"bytes", len(text),
		"lines", len(l.lines),
		"max_width", o.maxWidth,
		"width", l.size.Width,
		"height", l.size.Height)
	return l
}

// Text returns the laid out text.
func (l *Layout) Text() string {
	return l.text
}

// Measurer returns the measurer the layout was built with.
func (l *Layout) Measurer() Measurer {
	return l.measurer
}

// LineCount returns the number of visual lines. It is at least 1.
func (l *Layout) LineCount() int {
	return len(l.lines)
}

// LineText returns the text of line n, including its trailing whitespace.
func (l *Layout) LineText(n int) (string, bool) {
	if n < 0 || n >= len(l.lines) {
		return "", false
	}
	lm := l.lines[n]
	return l.text[lm.StartOffset:lm.EndOffset], true
}

// LineMetric returns the metrics of line n.
func (l *Layout) LineMetric(n int) (LineMetric, bool) {
	if n < 0 || n >= len(l.lines) {
		return LineMetric{}, false
	}
	return l.lines[n], true
}

// Lines returns a copy of all line metrics.
func (l *Layout) Lines() []LineMetric {
	out := make([]LineMetric, len(l.lines))
	copy(out, l.lines)
	return out
}

// Size returns the width of the widest visible line and the total height.
func (l *Layout) Size() Size {
	return l.size
}

// MaxWidth returns the width the layout was wrapped to.
func (l *Layout) MaxWidth() float64 {
	return l.opts.maxWidth
}

// Font returns the font family the layout was created with. Layouts made
// by New return the zero Family.
func (l *Layout) Font() font.Family {
	return l.family
}

// FontSize returns the font size the layout was created with.
func (l *Layout) FontSize() float64 {
	return l.opts.fontSize
}

// Weight returns the weight requested with WithWeight, or
// font.WeightNormal.
func (l *Layout) Weight() font.Weight {
	return l.opts.weight
}

// Style returns the style requested with WithStyle, or font.StyleNormal.
func (l *Layout) Style() font.Style {
	return l.opts.style
}

// TextColor returns the default text colour.
func (l *Layout) TextColor() color.Color {
	return l.opts.color
}

// Alignment returns the horizontal alignment.
func (l *Layout) Alignment() Alignment {
	return l.opts.alignment
}

// Engine returns the hit-test engine.
func (l *Layout) Engine() Engine {
	return l.opts.engine
}

// LineOriginX returns the x offset at which line n starts when drawn with
// the layout's alignment. Lines align within MaxWidth, or within the
// layout width when wrapping is disabled.
func (l *Layout) LineOriginX(n int) (float64, bool) {
	if n < 0 || n >= len(l.lines) {
		return 0, false
	}
	container := l.opts.maxWidth
	if math.IsInf(container, 1) || container <= 0 {
		container = l.size.Width
	}
	return alignOffset(l.opts.alignment, l.widths[n], container), true
}

// WithWidth returns a new Layout of the same text wrapped to w.
func (l *Layout) WithWidth(w float64) *Layout {
	o := l.opts
	o.maxWidth = normalizeWidth(w)
	return newLayout(l.text, l.measurer, l.family, o)
}

// HitTestPoint returns the text offset nearest to p.
func (l *Layout) HitTestPoint(p Point) HitTestPoint {
	return l.opts.engine.HitTestPoint(l, p)
}

// HitTestTextPosition returns the caret position for a byte offset.
// Offsets past the end are clamped. It panics if offset is negative or
// does not fall on a character boundary.
func (l *Layout) HitTestTextPosition(offset int) HitTestPosition {
	return l.opts.engine.HitTestTextPosition(l, offset)
}

// RectsForRange returns one rectangle per line covered by the byte range
// [start, end). Offsets are clamped to the text. Lines inside the range
// extend to the end of their visible content.
//
// Only lines holding part of the range get a rectangle, so an empty
// range yields none; draw carets with CaretRect instead.
func (l *Layout) RectsForRange(start, end int) []Rect {
	start = clampOffset(start, len(l.text))
	end = clampOffset(end, len(l.text))
	if start > end {
		start, end = end, start
	}
	if start == end {
		// A caret, not a selection: see CaretRect.
		return nil
	}

	first := l.HitTestTextPosition(start)
	last := l.HitTestTextPosition(end)

	rects := make([]Rect, 0, last.Line-first.Line+1)
	for i := first.Line; i <= last.Line; i++ {
		lm := l.lines[i]
		x0 := 0.0
		if i == first.Line {
			x0 = first.Point.X
		}
		x1 := math.Max(l.widths[i], x0)
		if i == last.Line {
			// The range stops where this line begins; it selects nothing here.
			if i != first.Line && end == lm.StartOffset {
				break
			}
			x1 = last.Point.X
		}
		rects = append(rects, NewRect(Pt(x0, lm.YOffset), Pt(x1, lm.Bottom())))
	}
	return rects
}

// CaretRect returns the zero-width box of a caret at offset: the x of
// HitTestTextPosition across the full height of its line. It panics on
// the same offsets as HitTestTextPosition.
func (l *Layout) CaretRect(offset int) Rect {
	pos := l.HitTestTextPosition(offset)
	lm := l.lines[pos.Line]
	return NewRect(Pt(pos.Point.X, lm.YOffset), Pt(pos.Point.X, lm.Bottom()))
}

// ImageBounds returns the box enclosing the ink of every line, relative
// to the top-left of the layout. Like hit testing it ignores alignment.
// When the Measurer is not a BoundsMeasurer the box spans from the origin
// to Size. A layout without ink, such as whitespace only, returns the zero
// Rect.
func (l *Layout) ImageBounds() Rect {
	bm, ok := l.measurer.(BoundsMeasurer)
	if !ok {
		return NewRect(Pt(0, 0), Pt(l.size.Width, l.size.Height))
	}

	var ink font.Rect
	for _, lm := range l.lines {
		b := bm.Bounds(l.text[lm.StartOffset:lm.VisibleEnd()])
		ink = ink.Union(b.Offset(0, lm.YOffset+lm.Baseline))
	}
	if ink.Empty() {
		return Rect{}
	}
	return NewRect(Pt(ink.MinX, ink.MinY), Pt(ink.MaxX, ink.MaxY))
}

// lineForOffset returns the index of the last line starting at or before
// offset.
func (l *Layout) lineForOffset(offset int) int {
	i := sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].StartOffset > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// lineForY returns the line containing y and whether y lies within the
// layout's vertical extent.
func (l *Layout) lineForY(y float64) (int, bool) {
	last := len(l.lines) - 1
	if math.IsNaN(y) || y < 0 {
		return 0, false
	}
	if y >= l.lines[last].Bottom() {
		return last, false
	}
	i := sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].YOffset > y
	})
	if i == 0 {
		return 0, true
	}
	return i - 1, true
}

// checkOffset clamps offset to the text and panics when it is negative or
// splits a UTF-8 sequence.
func (l *Layout) checkOffset(offset int) int {
	if offset < 0 {
		panic(fmt.Sprintf("textlayout: offset %d is negative", offset))
	}
	if offset >= len(l.text) {
		return len(l.text)
	}
	if !utf8.RuneStart(l.text[offset]) {
		panic(fmt.Sprintf("textlayout: offset %d is not a character boundary", offset))
	}
	return offset
}

func clampOffset(offset, n int) int {
	if offset < 0 {
		return 0
	}
	if offset > n {
		return n
	}
	return offset
}
