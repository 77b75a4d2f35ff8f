package font

// Face measures text with a Source at a specific size.
// Advances are the sum of glyph advances plus pair kerning; no shaping
// is applied. Face is a lightweight value and is safe for concurrent use.
type Face struct {
	source *Source
	size   float64
	config faceConfig
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	fm := f.source.parsed.Metrics(f.size, f.config.hinting)

	// FontMetrics.Descent may be negative (below baseline);
	// Metrics.Descent is the absolute distance from the baseline.
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	gap := fm.LineGap
	if gap < 0 {
		gap = 0
	}

	return Metrics{
		Ascent:    fm.Ascent,
		Descent:   descent,
		LineGap:   gap,
		XHeight:   fm.XHeight,
		CapHeight: fm.CapHeight,
	}
}

// Advance returns the total advance width of the text in pixels.
func (f *Face) Advance(text string) float64 {
	return f.walk(text, nil)
}

// Bounds returns the ink box of text. It implements BoundsMeasurer.
func (f *Face) Bounds(text string) Rect {
	var ink Rect
	f.walk(text, func(gid uint16, pen float64) {
		b := f.source.parsed.GlyphBounds(gid, f.size, f.config.hinting)
		ink = ink.Union(b.Offset(pen, 0))
	})
	return ink
}

// walk lays glyphs of text along the baseline, kerning each pair, and
// calls visit with every glyph and its pen position. It returns the
// final pen position.
func (f *Face) walk(text string, visit func(gid uint16, pen float64)) float64 {
	parsed := f.source.parsed
	var (
		pen     float64
		prev    uint16
		hasPrev bool
	)
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		if hasPrev {
			pen += parsed.Kern(prev, gid, f.size, f.config.hinting)
		}
		if visit != nil {
			visit(gid, pen)
		}
		pen += parsed.GlyphAdvance(gid, f.size, f.config.hinting)
		prev, hasPrev = gid, true
	}
	return pen
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.parsed.GlyphIndex(r) != 0
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}
