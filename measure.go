package textlayout

import "github.com/gogpu/textlayout/font"

// Measurer is the text measurement oracle. Advance must be deterministic
// for a given string; widths of prefixes are expected to be
// non-decreasing as the prefix grows.
type Measurer = font.Measurer

// ClusterMeasurer is a Measurer that can also report the shaped clusters
// of a string. ClusterEngine uses it to measure a line in one call.
type ClusterMeasurer interface {
	Measurer

	// Clusters returns the clusters of text in logical order.
	// Offsets are byte offsets into text.
	Clusters(text string) []font.Cluster
}

// BoundsMeasurer is a Measurer that reports glyph ink. ImageBounds uses
// it when available.
type BoundsMeasurer = font.BoundsMeasurer
