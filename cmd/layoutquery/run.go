package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/textlayout"
	"github.com/gogpu/textlayout/font"
	"github.com/gogpu/textlayout/font/canvasfont"
	"github.com/gogpu/textlayout/internal/fixedface"
)

// fixedAdvance is the advance of every rune under -oracle fixed.
const fixedAdvance = 5

var errNoLayout = errors.New("no layout: set text first")

// runner executes query statements against a layout that is rebuilt
// whenever the font, width, or text changes.
type runner struct {
	out    io.Writer
	oracle string
	engine textlayout.Engine
	fonts  *font.System
	text   *textlayout.Text

	family string
	size   float64
	width  float64
	source *string

	layout *textlayout.Layout
	// stale is set when the layout must be rebuilt from scratch; a width
	// change alone reuses the layout through WithWidth.
	stale bool
}

func newRunner(out io.Writer, oracle, engine string) (*runner, error) {
	r := &runner{
		out:    out,
		oracle: oracle,
		size:   textlayout.DefaultFontSize,
		width:  math.Inf(1),
	}

	switch engine {
	case "grapheme", "":
		r.engine = textlayout.GraphemeEngine{}
	case "cluster":
		r.engine = textlayout.ClusterEngine{}
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}

	backend := font.BackendXImage
	switch oracle {
	case "ximage", "canvas", "fixed":
	case "shaped":
		backend = font.BackendShaped
	default:
		return nil, fmt.Errorf("unknown oracle %q", oracle)
	}

	fonts, err := font.NewSystem(font.WithGoFonts(), font.WithBackend(backend))
	if err != nil {
		return nil, err
	}
	r.fonts = fonts
	r.text = textlayout.NewText(fonts, textlayout.WithLayoutDefaults(textlayout.WithEngine(r.engine)))
	return r, nil
}

// run executes every statement of s in order and stops at the first error.
func (r *runner) run(s *Script) error {
	for _, st := range s.Statements {
		if err := r.exec(st); err != nil {
			return fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	return nil
}

func (r *runner) exec(st *Statement) (err error) {
	// Offsets that split a character panic in the layout; report them as
	// script errors instead.
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%v", v)
		}
	}()

	switch {
	case st.Font != nil:
		r.family, r.size = st.Font.Family, st.Font.Size
		r.stale = true
	case st.Width != nil:
		r.width = math.Inf(1)
		if st.Width.Value.Number != nil {
			r.width = *st.Width.Value.Number
		}
		if r.layout != nil && !r.stale {
			r.layout = r.layout.WithWidth(r.width)
		}
	case st.Text != nil:
		text := st.Text.Value
		r.source = &text
		r.stale = true
	case st.Lines != nil:
		return r.printLines()
	case st.Size != nil:
		l, err := r.current()
		if err != nil {
			return err
		}
		size := l.Size()
		fmt.Fprintf(r.out, "size %s x %s\n", num(size.Width), num(size.Height))
	case st.Point != nil:
		l, err := r.current()
		if err != nil {
			return err
		}
		p := textlayout.Pt(st.Point.X, st.Point.Y)
		hit := l.HitTestPoint(p)
		fmt.Fprintf(r.out, "point %s %s -> offset=%d inside=%t\n", num(p.X), num(p.Y), hit.Offset, hit.IsInside)
	case st.Offset != nil:
		l, err := r.current()
		if err != nil {
			return err
		}
		pos := l.HitTestTextPosition(st.Offset.Offset)
		fmt.Fprintf(r.out, "offset %d -> x=%s y=%s line=%d\n",
			st.Offset.Offset, num(pos.Point.X), num(pos.Point.Y), pos.Line)
	case st.Range != nil:
		l, err := r.current()
		if err != nil {
			return err
		}
		rects := l.RectsForRange(st.Range.Start, st.Range.End)
		parts := make([]string, len(rects))
		for i, rc := range rects {
			parts[i] = fmt.Sprintf("(%s,%s)-(%s,%s)", num(rc.Min.X), num(rc.Min.Y), num(rc.Max.X), num(rc.Max.Y))
		}
		fmt.Fprintf(r.out, "range %d %d -> [%s]\n", st.Range.Start, st.Range.End, strings.Join(parts, " "))
	}
	return nil
}

func (r *runner) printLines() error {
	l, err := r.current()
	if err != nil {
		return err
	}
	for i := range l.LineCount() {
		lm, _ := l.LineMetric(i)
		text, _ := l.LineText(i)
		fmt.Fprintf(r.out, "line %d [%d,%d) trailing=%d y=%s height=%s baseline=%s %q\n",
			i, lm.StartOffset, lm.EndOffset, lm.TrailingWhitespace,
			num(lm.YOffset), num(lm.Height), num(lm.Baseline), text)
	}
	return nil
}

// current returns the layout, rebuilding it when needed.
func (r *runner) current() (*textlayout.Layout, error) {
	if r.source == nil {
		return nil, errNoLayout
	}
	if r.layout != nil && !r.stale {
		return r.layout, nil
	}

	l, err := r.build(*r.source)
	if err != nil {
		return nil, err
	}
	r.layout, r.stale = l, false
	return l, nil
}

func (r *runner) build(text string) (*textlayout.Layout, error) {
	opts := []textlayout.Option{
		textlayout.WithMaxWidth(r.width),
		textlayout.WithFont(r.family, r.size),
		textlayout.WithEngine(r.engine),
	}

	switch r.oracle {
	case "fixed":
		return textlayout.New(text, fixedface.Uniform(fixedAdvance), opts...)
	case "canvas":
		fam, ok := r.text.FontFamily(r.family)
		if r.family == "" {
			fam, ok = r.fonts.Default(), true
		}
		src, found := r.fonts.Source(fam)
		if !ok || !found {
			return nil, fmt.Errorf("%w: %q", textlayout.ErrUnknownFamily, r.family)
		}
		face, err := canvasfont.FromSource(src, r.size)
		if err != nil {
			return nil, err
		}
		return textlayout.New(text, face, opts...)
	default:
		return r.text.NewLayout(text, opts...)
	}
}

// num formats a coordinate compactly.
func num(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
