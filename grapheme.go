package textlayout

import "github.com/rivo/uniseg"

// GraphemeBounds are the line-local x extents of one grapheme cluster.
type GraphemeBounds struct {
	Leading, Trailing float64
}

// GraphemeBoundsAt returns the extents of the grapheme starting the index-th
// cluster of lineText. It reports false when index is out of range or the
// line is empty. Each call measures two prefixes with m; nothing is cached.
func GraphemeBoundsAt(m Measurer, lineText string, index int) (GraphemeBounds, bool) {
	if lineText == "" || index < 0 {
		return GraphemeBounds{}, false
	}
	starts := graphemeStarts(lineText)
	if index >= len(starts)-1 {
		return GraphemeBounds{}, false
	}
	return measureGrapheme(m, lineText, starts, index), true
}

// graphemeStarts returns the byte offset of every grapheme cluster in s,
// followed by len(s).
func graphemeStarts(s string) []int {
	starts := make([]int, 0, len(s)+1)
	offset := 0
	state := -1
	rest := s
	for rest != "" {
		starts = append(starts, offset)
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		offset += len(cluster)
	}
	return append(starts, len(s))
}

// graphemeAt returns the index of the grapheme containing byte offset off.
// starts must come from graphemeStarts.
func graphemeAt(starts []int, off int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func measureGrapheme(m Measurer, lineText string, starts []int, index int) GraphemeBounds {
	return GraphemeBounds{
		Leading:  m.Advance(lineText[:starts[index]]),
		Trailing: m.Advance(lineText[:starts[index+1]]),
	}
}
