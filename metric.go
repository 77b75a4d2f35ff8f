package textlayout

// LineMetric describes one visual line of a Layout.
type LineMetric struct {
	// StartOffset is the byte offset of the first byte of the line.
	StartOffset int

	// EndOffset is the byte offset just past the line, including its
	// trailing whitespace and hard line break.
	EndOffset int

	// TrailingWhitespace is the byte length of the whitespace, including
	// any line break, at the end of the line. It is not part of the
	// visible line.
	TrailingWhitespace int

	// Baseline is the distance from the top of the line to its baseline.
	Baseline float64

	// Height is the height of the line box.
	Height float64

	// YOffset is the distance from the top of the layout to the top of
	// the line.
	YOffset float64
}

// VisibleEnd returns the byte offset just past the visible content.
func (m LineMetric) VisibleEnd() int {
	return m.EndOffset - m.TrailingWhitespace
}

// Bottom returns the distance from the top of the layout to the bottom
// of the line.
func (m LineMetric) Bottom() float64 {
	return m.YOffset + m.Height
}
