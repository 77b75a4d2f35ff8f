package textlayout

import (
	"fmt"

	"github.com/gogpu/textlayout/font"
)

// TextOption configures a Text factory.
type TextOption func(*Text)

// WithLayoutDefaults sets options applied to every layout before the
// options passed to NewLayout.
func WithLayoutDefaults(opts ...Option) TextOption {
	return func(t *Text) {
		t.defaults = append(t.defaults, opts...)
	}
}

// WithFaceOptions sets options used when the factory creates faces.
func WithFaceOptions(opts ...font.FaceOption) TextOption {
	return func(t *Text) {
		t.faceOpts = append(t.faceOpts, opts...)
	}
}

// Text creates layouts from fonts registered in a font.System.
// Text is safe for concurrent use.
type Text struct {
	fonts    *font.System
	defaults []Option
	faceOpts []font.FaceOption
}

// NewText returns a factory resolving fonts through fonts.
func NewText(fonts *font.System, opts ...TextOption) *Text {
	t := &Text{fonts: fonts}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fonts returns the font system used by the factory.
func (t *Text) Fonts() *font.System {
	return t.fonts
}

// FontFamily looks up a registered family by name.
func (t *Text) FontFamily(name string) (font.Family, bool) {
	if t.fonts == nil {
		return font.Family{}, false
	}
	return t.fonts.Family(name)
}

// LoadFont registers font data with the font system.
func (t *Text) LoadFont(data []byte) (font.Family, error) {
	if t.fonts == nil {
		return font.Family{}, fmt.Errorf("textlayout: loading font: %w", ErrUnknownFamily)
	}
	fam, err := t.fonts.Load(data)
	if err != nil {
		return font.Family{}, fmt.Errorf("textlayout: loading font: %w", err)
	}
	return fam, nil
}

// NewLayout lays out text with the font chosen by WithFont, measured by
// the font system's backend. Without WithFont the system's default family
// is used. WithWeight and WithStyle then pick the closest face of that
// family. An unregistered family yields an error wrapping
// ErrUnknownFamily.
//
// Range attributes never change which face measures the text: a layout is
// measured by one face at one size.
func (t *Text) NewLayout(text string, opts ...Option) (*Layout, error) {
	all := make([]Option, 0, len(t.defaults)+len(opts))
	all = append(all, t.defaults...)
	all = append(all, opts...)
	o := buildOptions(all)

	fam, err := t.resolveFamily(o.family)
	if err != nil {
		return nil, err
	}
	if o.weightSet || o.styleSet {
		fam = t.matchFace(fam, o)
	}
	m, err := t.fonts.Face(fam, o.fontSize, t.faceOpts...)
	if err != nil {
		return nil, fmt.Errorf("textlayout: creating face for %q: %w", fam.Name(), err)
	}
	return newLayout(text, m, fam, o), nil
}

// matchFace picks the face of fam's family for the requested weight and
// style, keeping fam's own value for whichever was not requested.
func (t *Text) matchFace(fam font.Family, o options) font.Family {
	w, st := o.weight, o.style
	if src, ok := t.fonts.Source(fam); ok {
		if !o.weightSet {
			w = src.Weight()
		}
		if !o.styleSet {
			st = src.Style()
		}
	}
	if face, ok := t.fonts.Match(fam, w, st); ok {
		return face
	}
	return fam
}

func (t *Text) resolveFamily(name string) (font.Family, error) {
	if t.fonts == nil {
		return font.Family{}, fmt.Errorf("%w: %q (no font system)", ErrUnknownFamily, name)
	}
	if name == "" {
		fam := t.fonts.Default()
		if fam.IsZero() {
			return font.Family{}, fmt.Errorf("%w: font system is empty", ErrUnknownFamily)
		}
		return fam, nil
	}
	fam, ok := t.fonts.Family(name)
	if !ok {
		return font.Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return fam, nil
}
