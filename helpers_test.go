package textlayout

import (
	"math"
	"testing"

	"github.com/gogpu/textlayout/internal/fixedface"
)

// uniform returns a face where every rune is 5 wide, ascent 10, descent 2.
func uniform() *fixedface.Face {
	return fixedface.Uniform(5)
}

// tsseypiFace measures "tßßypi" with edges 0, 5, 13, 21, 28, 36, 39.
func tsseypiFace() *fixedface.Face {
	return fixedface.New(5, map[rune]float64{'ß': 8, 'y': 7, 'p': 8, 'i': 3})
}

func mustLayout(t testing.TB, text string, m Measurer, opts ...Option) *Layout {
	t.Helper()
	l, err := New(text, m, opts...)
	if err != nil {
		t.Fatalf("New(%q) error = %v", text, err)
	}
	return l
}

func assertClose(t testing.TB, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// engines lists every engine; tests that must hold for all of them range
// over it.
var engines = []struct {
	name   string
	engine Engine
}{
	{"grapheme", GraphemeEngine{}},
	{"cluster", ClusterEngine{}},
}

// expectPanic runs fn and fails unless it panics with want.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if msg, _ := r.(string); msg != want {
			t.Errorf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}
