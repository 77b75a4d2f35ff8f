package font

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
)

// Source represents a loaded font file.
// One Source can create multiple faces at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection.
	// It must point to the Source itself.
	addr *Source

	data   []byte
	parsed ParsedFont

	name     string
	fullName string

	// shapedOnce guards the lazily parsed go-text font used by ShapedFace.
	// gotext.Font is read-only and safe for concurrent use, unlike gotext.Face.
	shapedOnce sync.Once
	shapedFont *gotext.Font
	shapedErr  error
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Parsers may keep references into the data, so they get the copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := config.parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &Source{
		data:     dataCopy,
		parsed:   parsed,
		name:     parsed.Name(),
		fullName: parsed.FullName(),
	}
	s.addr = s
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewSource(data, opts...)
}

// Name returns the font family name, falling back to the full name.
func (s *Source) Name() string {
	s.copyCheck()
	if s.name != "" {
		return s.name
	}
	if s.fullName != "" {
		return s.fullName
	}
	return "Unknown Font"
}

// FullName returns the full font name, or "" if the font does not carry one.
func (s *Source) FullName() string {
	s.copyCheck()
	return s.fullName
}

// Weight returns the weight the font declares in its OS/2 table, inferred
// from its subfamily name when the table is silent. Fonts that go-text
// cannot parse report WeightNormal.
func (s *Source) Weight() Weight {
	s.copyCheck()
	f, err := s.goTextFont()
	if err != nil {
		return WeightNormal
	}
	return Weight(f.Describe().Aspect.Weight)
}

// Style returns the slant the font declares. Fonts that go-text cannot
// parse report StyleNormal.
func (s *Source) Style() Style {
	s.copyCheck()
	f, err := s.goTextFont()
	if err != nil {
		return StyleNormal
	}
	if f.Describe().Aspect.Style == gotext.StyleItalic {
		return StyleItalic
	}
	return StyleNormal
}

// Bytes returns the raw font data. The returned slice must not be modified.
func (s *Source) Bytes() []byte {
	s.copyCheck()
	return s.data
}

// Parsed returns the parsed font for advanced operations.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Face creates a Face at the specified size (in pixels per em).
// Panics if s is nil (e.g. when the NewSource error was ignored).
func (s *Source) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("font: Source is nil; did you check the error from NewSource?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Face{source: s, size: size, config: config}
}

// ShapedFace creates a ShapedFace at the specified size (in pixels per em).
// The go-text font is parsed on first use and shared by all shaped faces
// of this source.
func (s *Source) ShapedFace(size float64, opts ...FaceOption) (*ShapedFace, error) {
	if s == nil {
		panic("font: Source is nil; did you check the error from NewSource?")
	}
	s.copyCheck()

	f, err := s.goTextFont()
	if err != nil {
		return nil, err
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newShapedFace(s, f, size, config), nil
}

// goTextFont returns the go-text font for this source, parsing it once.
func (s *Source) goTextFont() (*gotext.Font, error) {
	s.shapedOnce.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapedErr = fmt.Errorf("font: failed to parse font for shaping: %w", err)
			return
		}
		s.shapedFont = face.Font
	})
	return s.shapedFont, s.shapedErr
}

// copyCheck panics if Source was copied by value.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("font: Source must not be copied by value")
	}
}
