package textlayout

import (
	"image/color"
	"math"

	"github.com/gogpu/textlayout/font"
)

// DefaultFontSize is the font size used when WithFont gives none.
const DefaultFontSize = 12.0

// Option configures a Layout.
//
// Example:
//
//	l, err := textlayout.New("piet text", face,
//	    textlayout.WithMaxWidth(120),
//	    textlayout.WithAlignment(textlayout.AlignCenter))
type Option func(*options)

// options holds the configuration of a Layout.
type options struct {
	maxWidth    float64
	lineSpacing float64
	alignment   Alignment
	family      string
	fontSize    float64
	weight      font.Weight
	style       font.Style
	weightSet   bool
	styleSet    bool
	color       color.Color
	underline   bool
	ranges      []rangeAttr
	engine      Engine
}

// defaultOptions returns the default layout options: no wrapping,
// natural line height, left alignment, black text, GraphemeEngine.
func defaultOptions() options {
	return options{
		maxWidth:    math.Inf(1),
		lineSpacing: 1,
		alignment:   AlignLeft,
		fontSize:    DefaultFontSize,
		weight:      font.WeightNormal,
		style:       font.StyleNormal,
		color:       color.Black,
		engine:      DefaultEngine(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxWidth sets the width lines are wrapped to.
// math.Inf(1) disables wrapping and NaN is treated the same way.
func WithMaxWidth(w float64) Option {
	return func(o *options) {
		o.maxWidth = normalizeWidth(w)
	}
}

// WithLineSpacing sets a multiplier for the line height.
// Values that are not positive and finite keep the natural line height.
func WithLineSpacing(s float64) Option {
	return func(o *options) {
		if s > 0 && !math.IsInf(s, 1) {
			o.lineSpacing = s
		}
	}
}

// WithAlignment sets the horizontal alignment reported by LineOriginX.
func WithAlignment(a Alignment) Option {
	return func(o *options) {
		o.alignment = a
	}
}

// WithFont selects the font family and size used by Text.NewLayout.
// An empty family selects the font system's default family; a size that
// is not positive keeps DefaultFontSize.
func WithFont(family string, size float64) Option {
	return func(o *options) {
		o.family = family
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithWeight asks Text.NewLayout for the face of the chosen family whose
// weight is nearest to w. Without it the chosen face's own weight is kept.
func WithWeight(w font.Weight) Option {
	return func(o *options) {
		o.weight = w
		o.weightSet = true
	}
}

// WithStyle asks Text.NewLayout for an upright or italic face of the
// chosen family. Without it the chosen face's own style is kept.
func WithStyle(s font.Style) Option {
	return func(o *options) {
		o.style = s
		o.styleSet = true
	}
}

// WithTextColor sets the default text colour. The layout only carries it.
func WithTextColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.color = c
		}
	}
}

// WithUnderline sets whether text is underlined by default. The layout
// only carries it.
func WithUnderline(on bool) Option {
	return func(o *options) {
		o.underline = on
	}
}

// WithRangeColor colours the bytes [start, end). Range attributes are
// applied in the order given; a later range overrides an earlier one
// where they overlap. They do not affect measurement.
func WithRangeColor(start, end int, c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.ranges = append(o.ranges, rangeAttr{start: start, end: end, color: c})
		}
	}
}

// WithRangeUnderline turns underlining on or off for the bytes
// [start, end). See WithRangeColor for how ranges combine.
func WithRangeUnderline(start, end int, on bool) Option {
	return func(o *options) {
		o.ranges = append(o.ranges, rangeAttr{start: start, end: end, underline: &on})
	}
}

// WithEngine selects the hit-test engine. A nil engine keeps the default.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

func normalizeWidth(w float64) float64 {
	if math.IsNaN(w) {
		return math.Inf(1)
	}
	return w
}
