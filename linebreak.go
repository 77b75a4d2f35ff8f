package textlayout

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// BreakLines splits text into visual lines no wider than maxWidth.
//
// Lines break at whitespace; a word that does not fit starts a new line
// and the whitespace before it becomes trailing whitespace of the previous
// line. A word wider than maxWidth is never split. Hard breaks (LF, CR,
// CRLF, U+2028, U+2029) always end a line, and text that ends with one
// gets an extra empty line. Empty text yields a single empty line.
//
// maxWidth of +Inf or NaN disables wrapping. Only WithLineSpacing is
// consulted among opts.
func BreakLines(text string, m Measurer, maxWidth float64, opts ...Option) []LineMetric {
	o := buildOptions(opts)
	return breakLines(text, m, normalizeWidth(maxWidth), o.lineSpacing)
}

// lineBreaker accumulates lines with their vertical placement.
type lineBreaker struct {
	text     string
	m        Measurer
	maxWidth float64
	baseline float64
	height   float64
	lines    []LineMetric
	y        float64
}

func breakLines(text string, m Measurer, maxWidth, lineSpacing float64) []LineMetric {
	metrics := m.Metrics()
	b := &lineBreaker{
		text:     text,
		m:        m,
		maxWidth: maxWidth,
		baseline: metrics.Ascent,
		height:   metrics.LineHeight() * lineSpacing,
		lines:    make([]LineMetric, 0, 4),
	}

	pos := 0
	for {
		end, brLen := nextHardBreak(text, pos)
		b.paragraph(pos, end, brLen)
		if brLen == 0 {
			break
		}
		pos = end + brLen
		if pos == len(text) {
			// Text ends with a hard break: the caret can sit on a new line.
			b.emit(pos, pos, 0)
			break
		}
	}
	return b.lines
}

// paragraph wraps text[start:end] followed by a hard break of brLen bytes.
func (b *lineBreaker) paragraph(start, end, brLen int) {
	lineStart := start
	visEnd := -1 // end of the last word placed on the current line
	starts := graphemeStarts(b.text[start:end])

	cursor := start
	for cursor < end {
		wordStart := skipCluster(b.text, cursor, end, true, start, starts)
		if wordStart == end {
			break
		}
		wordEnd := skipCluster(b.text, wordStart, end, false, start, starts)

		switch {
		case visEnd < 0:
			visEnd = wordEnd
		case b.fits(lineStart, wordEnd):
			visEnd = wordEnd
		default:
			b.emit(lineStart, wordStart, wordStart-visEnd)
			lineStart, visEnd = wordStart, wordEnd
		}
		cursor = wordEnd
	}

	if visEnd < 0 {
		visEnd = lineStart
	}
	b.emit(lineStart, end+brLen, end+brLen-visEnd)
}

func (b *lineBreaker) fits(start, end int) bool {
	if math.IsInf(b.maxWidth, 1) {
		return true
	}
	return b.m.Advance(b.text[start:end]) <= b.maxWidth
}

func (b *lineBreaker) emit(start, end, trailing int) {
	b.lines = append(b.lines, LineMetric{
		StartOffset:        start,
		EndOffset:          end,
		TrailingWhitespace: trailing,
		Baseline:           b.baseline,
		Height:             b.height,
		YOffset:            b.y,
	})
	b.y += b.height
}

// nextHardBreak returns the offset of the first hard break at or after pos
// and its length in bytes. With no break left it returns len(text), 0.
func nextHardBreak(text string, pos int) (int, int) {
	for i := pos; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\n', '\u2028', '\u2029':
			return i, size
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return i, 2
			}
			return i, 1
		}
		i += size
	}
	return len(text), 0
}

// skipCluster is skipSpace over whole graphemes: a stop inside a grapheme
// moves on to its end and skipping resumes there. A space followed by a
// combining mark is thus whitespace to the breaker, and lines only start
// on grapheme boundaries. starts are the grapheme starts of the
// paragraph beginning at base.
func skipCluster(text string, pos, end int, space bool, base int, starts []int) int {
	for {
		pos = skipSpace(text, pos, end, space)
		i := graphemeAt(starts, pos-base)
		if starts[i]+base == pos {
			return pos
		}
		pos = starts[i+1] + base
	}
}

// skipSpace advances from pos while runes are (space == true) or are not
// (space == false) breakable whitespace, stopping at end.
func skipSpace(text string, pos, end int, space bool) int {
	for pos < end {
		r, size := utf8.DecodeRuneInString(text[pos:end])
		if isBreakingSpace(r) != space {
			return pos
		}
		pos += size
	}
	return end
}

// isBreakingSpace reports whether a line may break after r.
// No-break spaces glue words together.
func isBreakingSpace(r rune) bool {
	switch r {
	case '\u00A0', '\u2007', '\u202F':
		return false
	}
	return unicode.IsSpace(r)
}
