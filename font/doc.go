// Package font provides text measurement oracles backed by real font files.
//
// The package separates font data from sized instances, the same way the
// layout engine separates text from its measured lines:
//
//   - Source: heavyweight parsed font data, shared across the application
//   - Face: lightweight measurer at a specific size (golang.org/x/image)
//   - ShapedFace: measurer that shapes text with go-text/typesetting
//   - System: an explicit registry of loaded families
//
// Every measurer reports advance widths of arbitrary substrings and the
// vertical metrics of the font. Nothing here caches measurement results;
// callers that need caching wrap a measurer themselves.
//
// # Example usage
//
//	fonts, err := font.NewSystem(font.WithGoFonts())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	family, _ := fonts.Family("Go")
//	face, err := fonts.Face(family, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w := face.Advance("Hello")
package font
