package textlayout

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/textlayout/font"
	"github.com/gogpu/textlayout/internal/fixedface"
)

func TestHitTestPointMidGrapheme(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "tßßypi", tsseypiFace(), WithEngine(e.engine))
			got := l.HitTestPoint(Pt(27, 5))
			if got != (HitTestPoint{Offset: 6, IsInside: true}) {
				t.Errorf("HitTestPoint(27) = %+v, want offset 6 inside", got)
			}
		})
	}
}

func TestHitTestPointTerminates(t *testing.T) {
	m := tsseypiFace()
	l := mustLayout(t, "tßßypi", m)

	for x := -5.0; x <= 45; x += 0.5 {
		m.ResetCalls()
		got := l.HitTestPoint(Pt(x, 5))
		// two bounds checks plus at most ceil(log2(6))+1 bisection steps
		if calls := m.Calls(); calls > 2*(2+4) {
			t.Errorf("x=%v: %d Advance calls", x, calls)
		}
		if got.Offset < 0 || got.Offset > len("tßßypi") {
			t.Errorf("x=%v: offset %d out of range", x, got.Offset)
		}
	}
}

func TestHitTestTextPositionEdges(t *testing.T) {
	offsets := []int{0, 1, 3, 5, 6, 7, 8}
	edges := []float64{0, 5, 13, 21, 28, 36, 39}

	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "tßßypi", tsseypiFace(), WithEngine(e.engine))
			for i, off := range offsets {
				pos := l.HitTestTextPosition(off)
				if pos.Point != Pt(edges[i], 10) || pos.Line != 0 {
					t.Errorf("HitTestTextPosition(%d) = %+v, want (%v, 10) line 0", off, pos, edges[i])
				}
			}
		})
	}
}

func TestHitTestRoundTrip(t *testing.T) {
	texts := []string{"tßßypi", "piet text!", "a\u00A0b #\uFE0F\u20E3 c"}
	for _, e := range engines {
		for _, text := range texts {
			t.Run(e.name+"/"+text, func(t *testing.T) {
				l := mustLayout(t, text, tsseypiFace(), WithEngine(e.engine))
				for _, off := range graphemeStarts(text) {
					pos := l.HitTestTextPosition(off)
					hit := l.HitTestPoint(pos.Point)
					if hit.Offset != off {
						t.Errorf("round trip of %d: point %+v hit %d", off, pos.Point, hit.Offset)
					}
				}
			})
		}
	}
}

func TestHitTestTextPositionMonotonic(t *testing.T) {
	text := "piet text most best"
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, text, tsseypiFace(), WithEngine(e.engine))
			prev := -1.0
			for off := 0; off <= len(text); off++ {
				x := l.HitTestTextPosition(off).Point.X
				if x < prev {
					t.Errorf("x(%d) = %v < x(%d) = %v", off, x, off-1, prev)
				}
				prev = x
			}
			assertClose(t, "x at end", prev, l.Size().Width, 1e-9)
		})
	}
}

func TestHitTestKeycap(t *testing.T) {
	const text = "#\uFE0F\u20E3"
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, text, uniform(), WithEngine(e.engine))
			if len(text) != 7 {
				t.Fatalf("len = %d, want 7", len(text))
			}

			for _, off := range []int{0, 1, 4} {
				if x := l.HitTestTextPosition(off).Point.X; x != 0 {
					t.Errorf("HitTestTextPosition(%d).X = %v, want 0", off, x)
				}
			}
			if x := l.HitTestTextPosition(7).Point.X; x != 15 {
				t.Errorf("HitTestTextPosition(7).X = %v, want 15", x)
			}

			tests := []struct {
				x    float64
				want int
			}{
				{7, 0},
				{7.5, 7}, // midpoint resolves to the trailing edge
				{8, 7},
				{15, 7},
			}
			for _, tt := range tests {
				if got := l.HitTestPoint(Pt(tt.x, 5)).Offset; got != tt.want {
					t.Errorf("HitTestPoint(%v).Offset = %d, want %d", tt.x, got, tt.want)
				}
			}
		})
	}
}

func TestHitTestEmpty(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "", uniform(), WithEngine(e.engine))

			if got := l.HitTestPoint(Pt(0, 0)); got != (HitTestPoint{}) {
				t.Errorf("HitTestPoint(0,0) = %+v, want zero", got)
			}
			if got := l.HitTestPoint(Pt(30, 5)); got.Offset != 0 || got.IsInside {
				t.Errorf("HitTestPoint(30,5) = %+v, want 0 outside", got)
			}
			want := HitTestPosition{Point: Pt(0, 10)}
			for _, off := range []int{0, 5} {
				if got := l.HitTestTextPosition(off); got != want {
					t.Errorf("HitTestTextPosition(%d) = %+v, want %+v", off, got, want)
				}
			}
		})
	}
}

func TestHitTestPointHorizontal(t *testing.T) {
	const text = "piet text!"
	tests := []struct {
		name string
		x    float64
		want HitTestPoint
	}{
		{"before start", -1, HitTestPoint{0, false}},
		{"at start", 0, HitTestPoint{0, false}},
		{"leading half", 12, HitTestPoint{2, true}},
		{"trailing half", 13, HitTestPoint{3, true}},
		{"at width", 50, HitTestPoint{10, true}},
		{"past width", 51, HitTestPoint{10, false}},
		{"far right", 1e9, HitTestPoint{10, false}},
		{"NaN", math.NaN(), HitTestPoint{0, false}},
	}
	for _, e := range engines {
		l := mustLayout(t, text, uniform(), WithEngine(e.engine))
		for _, tt := range tests {
			t.Run(e.name+"/"+tt.name, func(t *testing.T) {
				if got := l.HitTestPoint(Pt(tt.x, 5)); got != tt.want {
					t.Errorf("HitTestPoint(%v) = %+v, want %+v", tt.x, got, tt.want)
				}
			})
		}
	}
}

func TestHitTestTrailingWhitespace(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "piet  text!", uniform(), WithMaxWidth(25), WithEngine(e.engine))
			if l.LineCount() != 2 {
				t.Fatalf("LineCount() = %d, want 2", l.LineCount())
			}

			pos := l.HitTestTextPosition(5)
			if pos.Line != 0 || pos.Point.X != 25 {
				t.Errorf("HitTestTextPosition(5) = %+v, want x 25 on line 0", pos)
			}
			pos = l.HitTestTextPosition(6)
			if pos != (HitTestPosition{Point: Pt(0, 22), Line: 1}) {
				t.Errorf("HitTestTextPosition(6) = %+v, want (0, 22) line 1", pos)
			}

			// Clicking in the trailing whitespace lands on the visible end.
			if got := l.HitTestPoint(Pt(24, 5)); got != (HitTestPoint{4, false}) {
				t.Errorf("HitTestPoint(24, 5) = %+v, want 4 outside", got)
			}
			if got := l.HitTestPoint(Pt(2, 15)); got != (HitTestPoint{6, true}) {
				t.Errorf("HitTestPoint(2, 15) = %+v, want 6 inside", got)
			}
		})
	}
}

func TestHitTestVertical(t *testing.T) {
	const text = "piet text most best"
	tests := []struct {
		name string
		p    Point
		want HitTestPoint
	}{
		{"above", Pt(2, -5), HitTestPoint{0, false}},
		{"first line", Pt(2, 0), HitTestPoint{0, true}},
		{"second line", Pt(2, 13), HitTestPoint{5, true}},
		{"line boundary", Pt(2, 12), HitTestPoint{5, true}},
		{"last line", Pt(3, 47.9), HitTestPoint{16, true}},
		{"at bottom", Pt(3, 48), HitTestPoint{16, false}},
		{"below", Pt(3, 100), HitTestPoint{16, false}},
		{"below and past end", Pt(100, 100), HitTestPoint{19, false}},
		{"NaN y", Pt(2, math.NaN()), HitTestPoint{0, false}},
	}
	for _, e := range engines {
		l := mustLayout(t, text, uniform(), WithMaxWidth(30), WithEngine(e.engine))
		if l.LineCount() != 4 {
			t.Fatalf("LineCount() = %d, want 4", l.LineCount())
		}
		for _, tt := range tests {
			t.Run(e.name+"/"+tt.name, func(t *testing.T) {
				if got := l.HitTestPoint(tt.p); got != tt.want {
					t.Errorf("HitTestPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
				}
			})
		}
	}
}

func TestHitTestHardBreaks(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "ab\r\ncd\n", uniform(), WithEngine(e.engine))
			if l.LineCount() != 3 {
				t.Fatalf("LineCount() = %d, want 3", l.LineCount())
			}

			if got := l.HitTestPoint(Pt(40, 5)); got != (HitTestPoint{2, false}) {
				t.Errorf("past end of CRLF line = %+v, want 2 outside", got)
			}
			// inside CRLF snaps to the start of the cluster
			if pos := l.HitTestTextPosition(3); pos.Point.X != 10 || pos.Line != 0 {
				t.Errorf("HitTestTextPosition(3) = %+v, want x 10 line 0", pos)
			}
			if pos := l.HitTestTextPosition(7); pos != (HitTestPosition{Point: Pt(0, 34), Line: 2}) {
				t.Errorf("HitTestTextPosition(7) = %+v, want (0, 34) line 2", pos)
			}
			if got := l.HitTestPoint(Pt(5, 30)); got != (HitTestPoint{7, false}) {
				t.Errorf("HitTestPoint on trailing empty line = %+v, want 7 outside", got)
			}
		})
	}
}

func TestHitTestPointStopsBeforeBreak(t *testing.T) {
	texts := []string{"ab\ncd", "ab\r\ncd\r", "x  \u2028y\u2029", "\n\n", "piet text\nmost best\n"}
	for _, e := range engines {
		for _, text := range texts {
			for _, w := range []float64{math.Inf(1), 25, 0} {
				l := mustLayout(t, text, uniform(), WithEngine(e.engine), WithMaxWidth(w))
				for i, lm := range l.Lines() {
					got := l.HitTestPoint(Pt(1000, lm.YOffset+1))
					if got.Offset != lm.VisibleEnd() {
						t.Errorf("%s %q/%v line %d: offset %d, want visible end %d",
							e.name, text, w, i, got.Offset, lm.VisibleEnd())
					}
				}
			}
		}
	}
}

func TestHitTestPointSpaceWithMark(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "aaaa \u0301bbbb", uniform(), WithEngine(e.engine), WithMaxWidth(22))
			if got := l.HitTestPoint(Pt(1, 15)); got != (HitTestPoint{7, true}) {
				t.Errorf("HitTestPoint(1, 15) = %+v, want 7 inside", got)
			}
			if got := l.HitTestPoint(Pt(1000, 5)); got.Offset != 4 {
				t.Errorf("past end of first line = %+v, want 4", got)
			}
		})
	}
}

func TestHitTestTextPositionClamps(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "abc", uniform(), WithEngine(e.engine))
			if pos := l.HitTestTextPosition(100); pos.Point.X != 15 {
				t.Errorf("HitTestTextPosition(100).X = %v, want 15", pos.Point.X)
			}
		})
	}
}

func TestHitTestTextPositionPanics(t *testing.T) {
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			l := mustLayout(t, "tß", uniform(), WithEngine(e.engine))
			expectPanic(t, "textlayout: offset 2 is not a character boundary", func() {
				l.HitTestTextPosition(2)
			})
			expectPanic(t, "textlayout: offset -1 is negative", func() {
				l.HitTestTextPosition(-1)
			})
		})
	}
}

func TestSearchLineNoGrapheme(t *testing.T) {
	// Bounds with gaps between graphemes.
	starts := []int{0, 1, 2, 3}
	bounds := func(i int) GraphemeBounds {
		return GraphemeBounds{Leading: float64(10 * i), Trailing: float64(10*i + 5)}
	}

	if _, _, ok := searchLine(starts, bounds, 7); ok {
		t.Error("searchLine in a gap reported a grapheme")
	}
	off, inside, ok := searchLine(starts, bounds, 12)
	if !ok || !inside || off != 1 {
		t.Errorf("searchLine(12) = %d, %v, %v; want 1, true, true", off, inside, ok)
	}
}

// gappyMeasurer shrinks every second measurement, so consecutive grapheme
// bounds no longer touch.
type gappyMeasurer struct{ calls int }

func (m *gappyMeasurer) Advance(s string) float64 {
	m.calls++
	w := 10 * float64(utf8.RuneCountInString(s))
	if m.calls%2 == 0 {
		w -= 5
	}
	return w
}

func (m *gappyMeasurer) Metrics() font.Metrics { return fixedface.DefaultMetrics }

func TestHitTestSearchFailureLogs(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m := &gappyMeasurer{}
	l := mustLayout(t, "abcd", m)
	m.calls = 0

	// Graphemes measure as [0,5] [10,15] [20,25] [30,35]; 17 is in a gap.
	got := l.HitTestPoint(Pt(17, 5))
	if got != (HitTestPoint{}) {
		t.Errorf("HitTestPoint in a gap = %+v, want zero", got)
	}
	if !strings.Contains(buf.String(), "hit test found no grapheme") {
		t.Errorf("expected debug record, got: %s", buf.String())
	}
}

func TestClusterEngineFallback(t *testing.T) {
	plain := fixedface.Measurer(tsseypiFace())
	if _, ok := plain.(ClusterMeasurer); ok {
		t.Fatal("plain measurer reports clusters")
	}
	l := mustLayout(t, "tßßypi", plain, WithEngine(ClusterEngine{}))
	if got := l.HitTestPoint(Pt(27, 5)).Offset; got != 6 {
		t.Errorf("HitTestPoint(27) = %d, want 6", got)
	}
	if x := l.HitTestTextPosition(3).Point.X; x != 13 {
		t.Errorf("HitTestTextPosition(3).X = %v, want 13", x)
	}
}

func TestClusterEngineMeasuresOnce(t *testing.T) {
	m := tsseypiFace()
	l := mustLayout(t, "tßßypi", m, WithEngine(ClusterEngine{}))
	m.ResetCalls()
	l.HitTestPoint(Pt(27, 5))
	l.HitTestTextPosition(5)
	if m.Calls() != 0 {
		t.Errorf("ClusterEngine made %d Advance calls, want 0", m.Calls())
	}
}

func TestGraphemeEdges(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		clusters []font.Cluster
		want     []float64
	}{
		{
			name: "one per rune",
			text: "ab",
			clusters: []font.Cluster{
				{Start: 0, End: 1, Advance: 5},
				{Start: 1, End: 2, Advance: 7},
			},
			want: []float64{0, 5, 12},
		},
		{
			name:     "ligature split evenly",
			text:     "fi",
			clusters: []font.Cluster{{Start: 0, End: 2, Advance: 10}},
			want:     []float64{0, 5, 10},
		},
		{
			name: "mark cluster joins its grapheme",
			text: "e\u0301x",
			clusters: []font.Cluster{
				{Start: 0, End: 1, Advance: 5},
				{Start: 1, End: 3, Advance: 1},
				{Start: 3, End: 4, Advance: 5},
			},
			want: []float64{0, 6, 11},
		},
		{
			name: "empty",
			text: "",
			want: []float64{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graphemeEdges(tt.clusters, graphemeStarts(tt.text))
			if len(got) != len(tt.want) {
				t.Fatalf("graphemeEdges = %v, want %v", got, tt.want)
			}
			for i := range got {
				assertClose(t, "edge", got[i], tt.want[i], 1e-9)
			}
		})
	}
}

func TestDefaultEngine(t *testing.T) {
	if _, ok := DefaultEngine().(GraphemeEngine); !ok {
		t.Errorf("DefaultEngine() = %T, want GraphemeEngine", DefaultEngine())
	}
	l := mustLayout(t, "abc", uniform())
	if _, ok := l.Engine().(GraphemeEngine); !ok {
		t.Errorf("Engine() = %T, want GraphemeEngine", l.Engine())
	}
}
