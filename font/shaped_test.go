package font

import (
	"math"
	"sync"
	"testing"
)

func shapedFace(t testing.TB, size float64, opts ...FaceOption) *ShapedFace {
	t.Helper()
	f, err := goRegular(t).ShapedFace(size, opts...)
	if err != nil {
		t.Fatalf("ShapedFace() error = %v", err)
	}
	return f
}

// checkClusters verifies that clusters are ordered, non-empty, and cover text.
func checkClusters(t *testing.T, text string, clusters []Cluster) {
	t.Helper()
	if len(clusters) == 0 {
		t.Fatalf("Clusters(%q) is empty", text)
	}
	if clusters[0].Start != 0 {
		t.Errorf("first cluster starts at %d, want 0", clusters[0].Start)
	}
	for i, c := range clusters {
		if c.End <= c.Start {
			t.Errorf("cluster %d = [%d, %d) is empty", i, c.Start, c.End)
		}
		if i > 0 && clusters[i-1].End != c.Start {
			t.Errorf("cluster %d starts at %d, previous ends at %d", i, c.Start, clusters[i-1].End)
		}
	}
	if last := clusters[len(clusters)-1]; last.End != len(text) {
		t.Errorf("last cluster ends at %d, want %d", last.End, len(text))
	}
}

func TestShapedFaceClusters(t *testing.T) {
	face := shapedFace(t, 16)

	tests := []struct {
		name string
		text string
	}{
		{"latin", "Hello"},
		{"multibyte", "tßßypi"},
		{"combining", "e\u0301a"},
		{"hebrew", "שלום"},
		{"mixed", "abc שלום def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkClusters(t, tt.text, face.Clusters(tt.text))
		})
	}
}

func TestShapedFaceClustersLatin(t *testing.T) {
	clusters := shapedFace(t, 16).Clusters("Hello")
	if len(clusters) != 5 {
		t.Fatalf("Clusters(Hello) = %d clusters, want 5", len(clusters))
	}
	for i, c := range clusters {
		if c.Advance <= 0 {
			t.Errorf("cluster %d advance = %v, want > 0", i, c.Advance)
		}
	}
}

func TestShapedFaceEmpty(t *testing.T) {
	face := shapedFace(t, 16)
	if got := face.Clusters(""); got != nil {
		t.Errorf("Clusters(\"\") = %v, want nil", got)
	}
	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
}

func TestShapedFaceMatchesFace(t *testing.T) {
	src := goRegular(t)
	plain := src.Face(16)
	shaped, err := src.ShapedFace(16)
	if err != nil {
		t.Fatal(err)
	}

	for _, text := range []string{"Hello", "piet text!", "typing"} {
		a, b := plain.Advance(text), shaped.Advance(text)
		if math.Abs(a-b) > 0.05*a {
			t.Errorf("Advance(%q): shaped %v, plain %v", text, b, a)
		}
	}
	if plain.Metrics() != shaped.Metrics() {
		t.Errorf("Metrics differ: shaped %+v, plain %+v", shaped.Metrics(), plain.Metrics())
	}
}

func TestShapedFaceConcurrent(t *testing.T) {
	face := shapedFace(t, 16)
	want := face.Advance("concurrent shaping")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if got := face.Advance("concurrent shaping"); got != want {
					t.Errorf("Advance = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestShapedFaceAccessors(t *testing.T) {
	src := goRegular(t)
	face, err := src.ShapedFace(12, WithDirection(DirectionRTL), WithLanguage("he"))
	if err != nil {
		t.Fatal(err)
	}
	if face.Source() != src {
		t.Error("Source() mismatch")
	}
	if face.Size() != 12 {
		t.Errorf("Size() = %v, want 12", face.Size())
	}
}
