package textlayout

// GraphemeEngine hit-tests by measuring line prefixes with the layout's
// Measurer. Every measured grapheme costs two Advance calls; a point query
// measures O(log n) graphemes of one line.
type GraphemeEngine struct{}

// HitTestPoint implements Engine.
func (GraphemeEngine) HitTestPoint(l *Layout, p Point) HitTestPoint {
	return hitTestPoint(l, p, func(line string, starts []int) boundsFunc {
		return func(i int) GraphemeBounds {
			return measureGrapheme(l.measurer, line, starts, i)
		}
	})
}

// HitTestTextPosition implements Engine.
func (GraphemeEngine) HitTestTextPosition(l *Layout, offset int) HitTestPosition {
	offset = l.checkOffset(offset)
	if l.text == "" {
		lm := l.lines[0]
		return HitTestPosition{Point: Pt(0, lm.YOffset+lm.Baseline)}
	}

	n := l.lineForOffset(offset)
	lm := l.lines[n]
	line := l.text[lm.StartOffset:lm.EndOffset]
	starts := graphemeStarts(line)
	snapped := starts[graphemeAt(starts, offset-lm.StartOffset)]

	return HitTestPosition{
		Point: Pt(l.measurer.Advance(line[:snapped]), lm.YOffset+lm.Baseline),
		Line:  n,
	}
}
