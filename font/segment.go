package font

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// shapingRun is a contiguous range of runes [start, end) with a single
// direction and script, shaped in one HarfBuzz call.
type shapingRun struct {
	start, end int
	direction  di.Direction
	script     language.Script
}

// splitRuns partitions runes into shaping runs. Directions come from the
// Unicode bidi algorithm; they only select the shaping direction of each
// run, the runs stay in logical order.
func splitRuns(text string, runes []rune, base Direction) []shapingRun {
	if len(runes) == 0 {
		return nil
	}

	levels := bidiLevels(text, len(runes), base)
	scripts := runScripts(runes)

	runs := make([]shapingRun, 0, 2)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[start] && scripts[i] == scripts[start] {
			continue
		}
		dir := di.DirectionLTR
		if levels[start]%2 == 1 {
			dir = di.DirectionRTL
		}
		runs = append(runs, shapingRun{
			start:     start,
			end:       i,
			direction: dir,
			script:    scripts[start],
		})
		start = i
	}
	return runs
}

// bidiLevels returns the embedding level of every rune.
// On failure every rune gets the base level.
func bidiLevels(text string, n int, base Direction) []int {
	levels := make([]int, n)

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
		for i := range levels {
			levels[i] = 1
		}
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < n; j++ {
			levels[j] = level
		}
	}
	return levels
}

// runScripts returns the script of every rune. Common and Inherited runes
// take the script of the preceding rune, or of the first concrete rune
// when they lead the text.
func runScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Script(0)
	for i, s := range scripts {
		if s == language.Common || s == language.Inherited {
			if last != 0 {
				scripts[i] = last
			}
			continue
		}
		last = s
	}

	// Leading neutrals take the first concrete script.
	first := language.Latin
	for _, s := range scripts {
		if s != language.Common && s != language.Inherited {
			first = s
			break
		}
	}
	for i, s := range scripts {
		if s != language.Common && s != language.Inherited {
			break
		}
		scripts[i] = first
	}
	return scripts
}
