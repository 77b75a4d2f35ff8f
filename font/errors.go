package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrUnknownFamily is returned when a family is not registered in a System.
	ErrUnknownFamily = errors.New("font: unknown family")

	// ErrUnknownBackend is returned when a measurement backend is not supported.
	ErrUnknownBackend = errors.New("font: unknown backend")
)
