package textlayout

import "errors"

var (
	// ErrUnknownFamily is returned when a layout names a font family that
	// is not registered in the font system.
	ErrUnknownFamily = errors.New("textlayout: unknown font family")

	// ErrNilMeasurer is returned when a layout is created without a measurer.
	ErrNilMeasurer = errors.New("textlayout: nil measurer")
)
