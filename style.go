package textlayout

import (
	"image/color"
	"sort"
)

// rangeAttr is one rendering attribute over the bytes [start, end).
// A nil field leaves that attribute alone.
type rangeAttr struct {
	start, end int
	color      color.Color
	underline  *bool
}

// StyleRun is a span of text sharing the same rendering attributes.
// Runs returned by a Layout cover the text without gaps.
type StyleRun struct {
	Start, End int
	Color      color.Color
	Underline  bool
}

// StyleRuns returns the rendering attributes of the text as consecutive
// runs, merging neighbours with equal attributes. Range offsets are
// clamped to the text and empty ranges are ignored. Empty text has a
// single empty run carrying the defaults.
func (l *Layout) StyleRuns() []StyleRun {
	n := len(l.text)
	cuts := []int{0, n}
	for _, a := range l.opts.ranges {
		cuts = append(cuts, clampOffset(a.start, n), clampOffset(a.end, n))
	}
	sort.Ints(cuts)

	var runs []StyleRun
	for i := 0; i+1 < len(cuts); i++ {
		start, end := cuts[i], cuts[i+1]
		if start == end {
			continue
		}
		run := l.styleOver(start, end)
		if k := len(runs) - 1; k >= 0 && sameStyle(runs[k], run) {
			runs[k].End = end
			continue
		}
		runs = append(runs, run)
	}
	if runs == nil {
		runs = append(runs, StyleRun{Color: l.opts.color, Underline: l.opts.underline})
	}
	return runs
}

// StyleAt returns the run containing byte offset off, clamped to the
// text. An offset at the end of the text belongs to the last run.
func (l *Layout) StyleAt(off int) StyleRun {
	runs := l.StyleRuns()
	off = clampOffset(off, len(l.text))
	i := sort.Search(len(runs), func(i int) bool { return runs[i].End > off })
	if i == len(runs) {
		i--
	}
	return runs[i]
}

// styleOver resolves the attributes of [start, end), which no range
// boundary splits.
func (l *Layout) styleOver(start, end int) StyleRun {
	run := StyleRun{Start: start, End: end, Color: l.opts.color, Underline: l.opts.underline}
	n := len(l.text)
	for _, a := range l.opts.ranges {
		if clampOffset(a.start, n) > start || clampOffset(a.end, n) < end {
			continue
		}
		if a.color != nil {
			run.Color = a.color
		}
		if a.underline != nil {
			run.Underline = *a.underline
		}
	}
	return run
}

func sameStyle(a, b StyleRun) bool {
	if a.Underline != b.Underline {
		return false
	}
	ar, ag, ab, aa := a.Color.RGBA()
	br, bg, bb, ba := b.Color.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
