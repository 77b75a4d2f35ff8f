// Package textlayout breaks text into lines and maps between screen
// coordinates and text offsets.
//
// # Overview
//
// A Layout is built once per (text, width) pair. The line breaker fills
// lines greedily at whitespace, asking a Measurer for advance widths, and
// records a LineMetric per visual line. Hit testing then converts a point
// to the nearest grapheme boundary and an offset back to a point. All
// offsets are byte offsets into the text and all offset arithmetic snaps
// to extended grapheme cluster boundaries.
//
// # Quick Start
//
//	fonts, err := font.NewSystem(font.WithGoFonts())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	txt := textlayout.NewText(fonts)
//
//	l, err := txt.NewLayout("piet  text!", textlayout.WithMaxWidth(40),
//	    textlayout.WithFont("Go", 16))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hit := l.HitTestPoint(textlayout.Pt(12, 3))
//	pos := l.HitTestTextPosition(hit.Offset)
//
// A Layout can also be built directly from any Measurer with New.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the first line
//   - X increases right, measured from the start of each line
//   - Y increases down; a line spans [YOffset, YOffset+Height)
//
// Alignment does not move hit-test coordinates. Renderers that align
// lines add LineOriginX to every x they draw or receive.
//
// # Engines
//
// GraphemeEngine measures prefixes of a line with the Measurer for every
// grapheme it tests. ClusterEngine measures the line once through a
// ClusterMeasurer and searches the resulting cluster edges.
//
// # Concurrency
//
// Layout is immutable. Queries on one Layout may run concurrently as long
// as its Measurer is safe for concurrent use, which holds for every
// measurer in package font.
package textlayout
