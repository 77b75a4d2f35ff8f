package font

import (
	"sort"
	"sync"
	"unicode/utf8"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedFace measures text by shaping it with go-text/typesetting's
// HarfBuzz implementation. Kerning, ligatures and complex scripts are
// reflected in the reported advances.
//
// ShapedFace is safe for concurrent use. The parsed go-text Font is shared;
// a lightweight gotext.Face is created per call (gotext.Face is NOT safe
// for concurrent use) and HarfbuzzShaper instances are pooled.
type ShapedFace struct {
	source  *Source
	font    *gotext.Font
	size    float64
	config  faceConfig
	shapers *sync.Pool
}

// newShapedFace creates a ShapedFace for an already parsed go-text font.
func newShapedFace(s *Source, f *gotext.Font, size float64, config faceConfig) *ShapedFace {
	return &ShapedFace{
		source: s,
		font:   f,
		size:   size,
		config: config,
		shapers: &sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Metrics returns the font metrics at this face's size.
// Vertical metrics come from the same font data as the shaping input.
func (f *ShapedFace) Metrics() Metrics {
	return f.source.Face(f.size, WithHinting(f.config.hinting)).Metrics()
}

// Advance returns the shaped advance width of the text in pixels.
func (f *ShapedFace) Advance(text string) float64 {
	var total float64
	for _, c := range f.Clusters(text) {
		total += c.Advance
	}
	return total
}

// Clusters shapes text and returns its clusters in logical order.
// Cluster offsets are byte offsets into text.
func (f *ShapedFace) Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	offsets := runeByteOffsets(text, len(runes))

	clusters := make([]Cluster, 0, len(runes))
	f.shape(text, runes, func(run shapingRun, glyphs []shaping.Glyph) {
		clusters = appendRunClusters(clusters, glyphs, run, offsets)
	})
	return clusters
}

// Bounds returns the ink box of the shaped text. Runs are placed one
// after another in logical order. It implements BoundsMeasurer.
func (f *ShapedFace) Bounds(text string) Rect {
	if text == "" {
		return Rect{}
	}

	var (
		ink Rect
		pen float64
	)
	f.shape(text, []rune(text), func(_ shapingRun, glyphs []shaping.Glyph) {
		for _, g := range glyphs {
			x0 := pen + fixedToFloat(g.XOffset+g.XBearing)
			top := -fixedToFloat(g.YOffset + g.YBearing)
			ink = ink.Union(Rect{
				MinX: min(x0, x0+fixedToFloat(g.Width)),
				MinY: min(top, top-fixedToFloat(g.Height)),
				MaxX: max(x0, x0+fixedToFloat(g.Width)),
				MaxY: max(top, top-fixedToFloat(g.Height)),
			})
			pen += fixedToFloat(g.Advance)
		}
	})
	return ink
}

// shape splits text into bidi and script runs and passes the glyphs of
// each shaped run to visit, in logical run order.
func (f *ShapedFace) shape(text string, runes []rune, visit func(shapingRun, []shaping.Glyph)) {
	face := gotext.NewFace(f.font)
	lang := language.NewLanguage(f.config.language)

	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	defer f.shapers.Put(hb)

	for _, run := range splitRuns(text, runes, f.config.direction) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: run.direction,
			Face:      face,
			Size:      floatToFixed(f.size),
			Script:    run.script,
			Language:  lang,
		})
		visit(run, out.Glyphs)
	}
}

// Source returns the Source this face was created from.
func (f *ShapedFace) Source() *Source {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *ShapedFace) Size() float64 {
	return f.size
}

// appendRunClusters groups the glyphs of one shaped run by cluster and
// appends them in logical order. A cluster spans from its first rune to
// the first rune of the next cluster of the run.
func appendRunClusters(dst []Cluster, glyphs []shaping.Glyph, run shapingRun, offsets []int) []Cluster {
	if len(glyphs) == 0 {
		return dst
	}

	advances := make(map[int]float64, len(glyphs))
	for _, g := range glyphs {
		advances[g.TextIndex()] += fixedToFloat(g.Advance)
	}

	starts := make([]int, 0, len(advances))
	for idx := range advances {
		starts = append(starts, idx)
	}
	sort.Ints(starts)

	for i, start := range starts {
		end := run.end
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if start < run.start {
			start = run.start
		}
		dst = append(dst, Cluster{
			Start:   offsets[start],
			End:     offsets[end],
			Advance: advances[starts[i]],
		})
	}
	return dst
}

// runeByteOffsets returns the byte offset of every rune plus len(text).
func runeByteOffsets(text string, n int) []int {
	offsets := make([]int, 0, n+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	// Invalid UTF-8 decodes as one rune per byte, matching []rune(text).
	if len(offsets) != n {
		offsets = offsets[:0]
		for i := 0; i < len(text); {
			offsets = append(offsets, i)
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
		}
	}
	return append(offsets, len(text))
}
