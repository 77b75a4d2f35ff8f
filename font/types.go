package font

import "strconv"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the base direction used when shaping text.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting. Advances keep their fractional part.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting. Advances are rounded to whole pixels.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Backend selects how a System measures text.
type Backend int

const (
	// BackendXImage measures with golang.org/x/image glyph advances and kerning.
	BackendXImage Backend = iota
	// BackendShaped measures with go-text/typesetting HarfBuzz shaping.
	BackendShaped
)

// String returns the string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendXImage:
		return "ximage"
	case BackendShaped:
		return "shaped"
	default:
		return unknownStr
	}
}

// ParseBackend returns the backend with the given name.
func ParseBackend(name string) (Backend, bool) {
	switch name {
	case "ximage", "":
		return BackendXImage, true
	case "shaped":
		return BackendShaped, true
	default:
		return 0, false
	}
}

// Weight is the stroke thickness of a face on the CSS scale,
// 100 (thin) to 900 (black).
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// String returns the CSS keyword for w, or its number when w is not one
// of the named weights.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemibold:
		return "Semibold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	default:
		return strconv.Itoa(int(w))
	}
}

// Style is the slant of a face.
type Style int

const (
	// StyleNormal is an upright face.
	StyleNormal Style = iota
	// StyleItalic is an italic or oblique face.
	StyleItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	default:
		return unknownStr
	}
}
