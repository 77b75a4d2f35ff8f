package font

// Parser turns raw TTF or OTF bytes into a ParsedFont.
// The package ships one implementation backed by
// golang.org/x/image/font/opentype; WithParser substitutes another.
type Parser interface {
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the subset of a parsed font that measurement needs.
// ppem is the font size in pixels per em.
type ParsedFont interface {
	// Name is the family name, or "".
	Name() string
	// FullName is the full face name, or "".
	FullName() string

	// GlyphIndex maps a rune to a glyph. 0 means the font has no glyph.
	GlyphIndex(r rune) uint16
	GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64
	// Kern is the pair adjustment added between left and right, or 0.
	Kern(left, right uint16, ppem float64, h Hinting) float64
	// GlyphBounds is the ink box of a glyph drawn at the origin.
	// Glyphs without ink, or unknown to the font, give an empty Rect.
	GlyphBounds(glyphIndex uint16, ppem float64, h Hinting) Rect

	Metrics(ppem float64, h Hinting) FontMetrics
}

// FontMetrics are the raw vertical metrics a Parser reports at one size.
// Descent may be negative depending on the parser; Face.Metrics
// normalizes it.
type FontMetrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}
