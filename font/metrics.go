package font

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the height of one line box in a layout.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Measurer is the text measurement oracle consumed by the layout engine.
type Measurer interface {
	// Advance returns the advance width of text.
	Advance(text string) float64

	// Metrics returns the vertical metrics of the font.
	Metrics() Metrics
}

// Cluster is one shaped cluster of a measured string.
// Start and End are byte offsets into the measured string.
type Cluster struct {
	Start, End int

	// Advance is the horizontal advance of all glyphs in the cluster.
	Advance float64
}

// BoundsMeasurer is a Measurer that can also report where text puts ink.
type BoundsMeasurer interface {
	Measurer

	// Bounds returns the union of the glyph boxes of text drawn with its
	// pen starting at the origin on the baseline. It returns an empty Rect
	// when no glyph has ink, for instance for whitespace.
	Bounds(text string) Rect
}

// Rect is a box in pixels. Y grows downward, so ink above the baseline
// has negative Y.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest Rect containing r and o.
// Empty rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.Empty():
		return r
	case r.Empty():
		return o
	}
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}
