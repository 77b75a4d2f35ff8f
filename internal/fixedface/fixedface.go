// Package fixedface provides a deterministic measurer driven by a table of
// per-rune advances. Layout tests use it to assert exact coordinates.
package fixedface

import (
	"sync/atomic"
	"unicode"

	"github.com/gogpu/textlayout/font"
)

// DefaultMetrics are the metrics used when none are given.
var DefaultMetrics = font.Metrics{Ascent: 10, Descent: 2}

// Face measures text as the sum of per-rune advances.
// Face is safe for concurrent use.
type Face struct {
	def     float64
	widths  map[rune]float64
	metrics font.Metrics
	calls   atomic.Int64
}

// New returns a face where every rune advances by def unless widths
// overrides it. Zero-width entries are allowed (combining marks).
func New(def float64, widths map[rune]float64) *Face {
	w := make(map[rune]float64, len(widths))
	for r, adv := range widths {
		w[r] = adv
	}
	return &Face{def: def, widths: w, metrics: DefaultMetrics}
}

// WithMetrics returns a copy of f reporting m as its metrics.
func (f *Face) WithMetrics(m font.Metrics) *Face {
	return &Face{def: f.def, widths: f.widths, metrics: m}
}

// Advance returns the sum of the advances of the runes of text.
func (f *Face) Advance(text string) float64 {
	f.calls.Add(1)
	var total float64
	for _, r := range text {
		total += f.rune(r)
	}
	return total
}

// Metrics returns the face metrics.
func (f *Face) Metrics() font.Metrics {
	return f.metrics
}

// Clusters reports one cluster per rune.
func (f *Face) Clusters(text string) []font.Cluster {
	clusters := make([]font.Cluster, 0, len(text))
	for i, r := range text {
		clusters = append(clusters, font.Cluster{Start: i, Advance: f.rune(r)})
	}
	for i := range clusters {
		if i+1 < len(clusters) {
			clusters[i].End = clusters[i+1].Start
		} else {
			clusters[i].End = len(text)
		}
	}
	return clusters
}

// Bounds inks every non-space rune with a box as wide as its advance,
// reaching from the ascent line down to the baseline.
func (f *Face) Bounds(text string) font.Rect {
	var (
		ink font.Rect
		pen float64
	)
	for _, r := range text {
		adv := f.rune(r)
		if !unicode.IsSpace(r) {
			ink = ink.Union(font.Rect{MinX: pen, MinY: -f.metrics.Ascent, MaxX: pen + adv, MaxY: 0})
		}
		pen += adv
	}
	return ink
}

// Calls returns the number of Advance calls made so far.
func (f *Face) Calls() int64 {
	return f.calls.Load()
}

// ResetCalls zeroes the Advance call counter.
func (f *Face) ResetCalls() {
	f.calls.Store(0)
}

func (f *Face) rune(r rune) float64 {
	if adv, ok := f.widths[r]; ok {
		return adv
	}
	return f.def
}

// Uniform returns a face where every rune advances by w.
func Uniform(w float64) *Face {
	return New(w, nil)
}

// Measurer hides the Clusters and Bounds methods of f, leaving a plain
// measurer.
func Measurer(f *Face) font.Measurer {
	return plain{f}
}

type plain struct{ f *Face }

func (p plain) Advance(text string) float64 { return p.f.Advance(text) }
func (p plain) Metrics() font.Metrics       { return p.f.Metrics() }
