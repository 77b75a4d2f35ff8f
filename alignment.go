package textlayout

// Alignment specifies horizontal alignment of lines within the layout width.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignJustify is carried for renderers; lines are positioned as AlignLeft.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return "Unknown"
	}
}

// alignOffset returns the x offset of a line of width w inside a container.
func alignOffset(a Alignment, w, container float64) float64 {
	var offset float64
	switch a {
	case AlignCenter:
		offset = (container - w) / 2
	case AlignRight:
		offset = container - w
	default:
		return 0
	}
	if offset <= 0 {
		return 0
	}
	return offset
}
