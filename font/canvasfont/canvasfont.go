// Package canvasfont measures text with github.com/tdewolff/canvas font
// faces. It is an alternative oracle to the faces in package font; the
// layout engine accepts any of them.
package canvasfont

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/textlayout/font"
)

// ptPerMM converts canvas lengths (millimetres) to points. Face sizes are
// given in points, which the layout treats as pixels.
const ptPerMM = 72.0 / 25.4

// ErrInvalidSize is returned when a face is requested at a non-positive size.
var ErrInvalidSize = errors.New("canvasfont: size must be positive")

// Face is a measurer backed by a canvas font face.
// Face is safe for concurrent use once created.
type Face struct {
	face *canvas.FontFace
	size float64
}

// New loads font data into a new canvas family and returns a face at size.
func New(name string, data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, font.ErrEmptyFontData
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("canvasfont: loading %q: %w", name, err)
	}
	return &Face{
		face: family.Face(size, canvas.Black, canvas.FontRegular, canvas.FontNormal),
		size: size,
	}, nil
}

// FromSource creates a face from a font.Source at size.
func FromSource(src *font.Source, size float64) (*Face, error) {
	return New(src.Name(), src.Bytes(), size)
}

// Advance returns the advance width of text.
func (f *Face) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	return f.face.TextWidth(text) * ptPerMM
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() font.Metrics {
	m := f.face.Metrics()
	ascent := math.Abs(m.Ascent) * ptPerMM
	descent := math.Abs(m.Descent) * ptPerMM
	gap := m.LineHeight*ptPerMM - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return font.Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: gap,
	}
}

// Size returns the face size in points.
func (f *Face) Size() float64 {
	return f.size
}
