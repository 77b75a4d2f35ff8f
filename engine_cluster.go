package textlayout

import "github.com/gogpu/textlayout/font"

// ClusterEngine hit-tests against the shaped clusters of a line. The line
// is measured once through a ClusterMeasurer and the search walks the
// resulting edges, so kerning and ligatures inside a line are reflected
// in the caret positions. Layouts whose Measurer does not report clusters
// fall back to GraphemeEngine.
type ClusterEngine struct{}

// HitTestPoint implements Engine.
func (ClusterEngine) HitTestPoint(l *Layout, p Point) HitTestPoint {
	cm, ok := l.measurer.(ClusterMeasurer)
	if !ok {
		return GraphemeEngine{}.HitTestPoint(l, p)
	}
	return hitTestPoint(l, p, func(line string, starts []int) boundsFunc {
		edges := graphemeEdges(cm.Clusters(line), starts)
		return func(i int) GraphemeBounds {
			return GraphemeBounds{Leading: edges[i], Trailing: edges[i+1]}
		}
	})
}

// HitTestTextPosition implements Engine.
func (ClusterEngine) HitTestTextPosition(l *Layout, offset int) HitTestPosition {
	cm, ok := l.measurer.(ClusterMeasurer)
	if !ok {
		return GraphemeEngine{}.HitTestTextPosition(l, offset)
	}

	offset = l.checkOffset(offset)
	if l.text == "" {
		lm := l.lines[0]
		return HitTestPosition{Point: Pt(0, lm.YOffset+lm.Baseline)}
	}

	n := l.lineForOffset(offset)
	lm := l.lines[n]
	line := l.text[lm.StartOffset:lm.EndOffset]
	starts := graphemeStarts(line)
	edges := graphemeEdges(cm.Clusters(line), starts)

	return HitTestPosition{
		Point: Pt(edges[graphemeAt(starts, offset-lm.StartOffset)], lm.YOffset+lm.Baseline),
		Line:  n,
	}
}

// graphemeEdges distributes cluster advances over graphemes and returns
// the x of every grapheme start followed by the line width.
//
// A cluster spanning several grapheme starts (a ligature) is split evenly
// between them. A cluster starting inside a grapheme adds to that grapheme.
func graphemeEdges(clusters []font.Cluster, starts []int) []float64 {
	n := len(starts) - 1
	widths := make([]float64, max(n, 0))

	for _, c := range clusters {
		if n == 0 {
			break
		}
		first := graphemeAt(starts, c.Start)
		if first >= n {
			first = n - 1
		}
		k := 0
		for i := first; i < n && starts[i] < c.End; i++ {
			if starts[i] >= c.Start {
				k++
			}
		}
		if k == 0 {
			widths[first] += c.Advance
			continue
		}
		share := c.Advance / float64(k)
		for i := first; i < n && starts[i] < c.End; i++ {
			if starts[i] >= c.Start {
				widths[i] += share
			}
		}
	}

	edges := make([]float64, n+1)
	for i, w := range widths {
		edges[i+1] = edges[i] + w
	}
	return edges
}
