package font

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is an opaque handle to a font registered in a System.
// The zero Family refers to no font.
type Family struct {
	name string
}

// Name returns the name the family was resolved by.
func (f Family) Name() string {
	return f.name
}

// IsZero reports whether f refers to no font.
func (f Family) IsZero() bool {
	return f.name == ""
}

// SystemOption configures a System.
type SystemOption func(*systemConfig)

type systemConfig struct {
	backend Backend
	data    [][]byte
	files   []string
	source  []SourceOption
}

// WithBackend sets the measurement backend used by System.Face.
// The default is BackendXImage.
func WithBackend(b Backend) SystemOption {
	return func(c *systemConfig) {
		c.backend = b
	}
}

// WithGoFonts registers the Go font families (Go, Go Medium, Go Mono)
// shipped with golang.org/x/image. The regular face is registered first
// and becomes the default family.
func WithGoFonts() SystemOption {
	return func(c *systemConfig) {
		c.data = append(c.data,
			goregular.TTF,
			gobold.TTF,
			goitalic.TTF,
			gobolditalic.TTF,
			gomedium.TTF,
			gomono.TTF,
			gomonobold.TTF,
		)
	}
}

// WithFontData registers fonts from raw TTF/OTF data.
func WithFontData(data ...[]byte) SystemOption {
	return func(c *systemConfig) {
		c.data = append(c.data, data...)
	}
}

// WithFontFiles registers fonts from files.
func WithFontFiles(paths ...string) SystemOption {
	return func(c *systemConfig) {
		c.files = append(c.files, paths...)
	}
}

// WithSourceOptions sets options applied to every Source the System loads.
func WithSourceOptions(opts ...SourceOption) SystemOption {
	return func(c *systemConfig) {
		c.source = append(c.source, opts...)
	}
}

// System is an explicit registry of loaded fonts. Families are looked up
// case-insensitively by family name ("Go") or full name ("Go Bold").
// When several fonts share a family name, the first one loaded wins;
// Match selects among them by weight and style.
//
// System is safe for concurrent use.
type System struct {
	backend Backend
	srcOpts []SourceOption

	mu      sync.RWMutex
	sources map[string]*Source
	// members lists the faces of each family in load order.
	members map[string][]member
	names   []string
	def     Family
}

// member is one face of a family with its declared aspect.
type member struct {
	src    *Source
	weight Weight
	style  Style
}

// NewSystem creates a System and loads the fonts named by opts.
func NewSystem(opts ...SystemOption) (*System, error) {
	var config systemConfig
	for _, opt := range opts {
		opt(&config)
	}
	if config.backend.String() == unknownStr {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(config.backend))
	}

	s := &System{
		backend: config.backend,
		srcOpts: config.source,
		sources: make(map[string]*Source),
		members: make(map[string][]member),
	}
	for i, data := range config.data {
		if _, err := s.Load(data); err != nil {
			return nil, fmt.Errorf("font: loading font %d: %w", i, err)
		}
	}
	for _, path := range config.files {
		src, err := NewSourceFromFile(path, s.srcOpts...)
		if err != nil {
			return nil, fmt.Errorf("font: loading %s: %w", path, err)
		}
		s.register(src)
	}
	return s, nil
}

// Backend returns the measurement backend used by Face.
func (s *System) Backend() Backend {
	return s.backend
}

// Load parses font data and registers it. The returned Family refers to
// the loaded font by its full name when the font carries one.
func (s *System) Load(data []byte) (Family, error) {
	src, err := NewSource(data, s.srcOpts...)
	if err != nil {
		return Family{}, err
	}
	return s.register(src), nil
}

func (s *System) register(src *Source) Family {
	m := member{src: src, weight: src.Weight(), style: src.Style()}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{src.Name(), src.FullName()} {
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := s.sources[key]; ok {
			continue
		}
		s.sources[key] = src
		s.names = append(s.names, name)
	}

	key := strings.ToLower(src.Name())
	s.members[key] = append(s.members[key], m)

	if s.def.IsZero() {
		s.def = Family{name: src.Name()}
	}
	return faceFamily(src)
}

// faceFamily returns the handle naming exactly src.
func faceFamily(src *Source) Family {
	if full := src.FullName(); full != "" {
		return Family{name: full}
	}
	return Family{name: src.Name()}
}

// Match returns the face of fam's family that best fits w and st.
// Faces with style st are preferred over any weight difference; among
// them the nearest weight wins and ties go to the face loaded first.
// The zero Family matches within Default. It reports false when fam is
// not registered.
func (s *System) Match(fam Family, w Weight, st Style) (Family, bool) {
	if fam.IsZero() {
		fam = s.Default()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	src, ok := s.sources[strings.ToLower(fam.name)]
	if !ok {
		return Family{}, false
	}
	best := -1
	members := s.members[strings.ToLower(src.Name())]
	for i, m := range members {
		if best < 0 || m.fits(w, st, members[best]) {
			best = i
		}
	}
	if best < 0 {
		return faceFamily(src), true
	}
	return faceFamily(members[best].src), true
}

// fits reports whether m matches w and st strictly better than other.
func (m member) fits(w Weight, st Style, other member) bool {
	if (m.style == st) != (other.style == st) {
		return m.style == st
	}
	return weightDistance(m.weight, w) < weightDistance(other.weight, w)
}

func weightDistance(a, b Weight) Weight {
	if a > b {
		return a - b
	}
	return b - a
}

// Family looks up a registered family by name.
func (s *System) Family(name string) (Family, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.sources[strings.ToLower(name)]; !ok {
		return Family{}, false
	}
	return Family{name: name}, true
}

// Families returns the names of all registered families, sorted.
func (s *System) Families() []string {
	s.mu.RLock()
	names := make([]string, len(s.names))
	copy(names, s.names)
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Default returns the family of the first font loaded, or the zero Family
// when the System is empty.
func (s *System) Default() Family {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}

// Source returns the Source registered for fam.
func (s *System) Source(fam Family) (*Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src, ok := s.sources[strings.ToLower(fam.name)]
	return src, ok
}

// Face returns a measurer for fam at size (pixels per em) using the
// System's backend. The zero Family resolves to Default.
func (s *System) Face(fam Family, size float64, opts ...FaceOption) (Measurer, error) {
	return s.FaceWith(s.backend, fam, size, opts...)
}

// FaceWith is like Face but measures with the given backend.
func (s *System) FaceWith(b Backend, fam Family, size float64, opts ...FaceOption) (Measurer, error) {
	if fam.IsZero() {
		fam = s.Default()
	}
	src, ok := s.Source(fam)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, fam.name)
	}

	switch b {
	case BackendXImage:
		return src.Face(size, opts...), nil
	case BackendShaped:
		face, err := src.ShapedFace(size, opts...)
		if err != nil {
			return nil, err
		}
		return face, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
}
