package textlayout

import (
	"strings"
	"testing"

	"github.com/gogpu/textlayout/font"
)

const benchText = "The quick brown fox jumps over the lazy dog. " +
	"Pack my box with five dozen liquor jugs.\n" +
	"How vexingly quick daft zebras jump!"

func benchFace(b *testing.B, backend font.Backend) Measurer {
	b.Helper()
	fonts := goFonts(b, font.WithBackend(backend))
	m, err := fonts.Face(font.Family{}, 16)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkBreakLines(b *testing.B) {
	m := benchFace(b, font.BackendXImage)
	text := strings.Repeat(benchText+" ", 8)

	b.ReportAllocs()
	for b.Loop() {
		BreakLines(text, m, 300)
	}
}

func BenchmarkHitTestPoint(b *testing.B) {
	for _, e := range engines {
		b.Run(e.name, func(b *testing.B) {
			l := mustLayout(b, benchText, benchFace(b, font.BackendShaped),
				WithMaxWidth(300), WithEngine(e.engine))
			p := Pt(150, 20)

			b.ReportAllocs()
			for b.Loop() {
				l.HitTestPoint(p)
			}
		})
	}
}

func BenchmarkHitTestTextPosition(b *testing.B) {
	l := mustLayout(b, benchText, benchFace(b, font.BackendXImage), WithMaxWidth(300))
	offset := len(benchText) / 2

	b.ReportAllocs()
	for b.Loop() {
		l.HitTestTextPosition(offset)
	}
}
