package font

// SourceOption configures Source creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Source.
type sourceConfig struct {
	parser Parser
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parser: ximageParser{},
	}
}

// WithParser specifies the font parser backend.
// The default parser uses golang.org/x/image/font/opentype.
// A nil parser keeps the default.
func WithParser(p Parser) SourceOption {
	return func(c *sourceConfig) {
		if p != nil {
			c.parser = p
		}
	}
}

// FaceOption configures Face and ShapedFace creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for a face.
type faceConfig struct {
	direction Direction
	hinting   Hinting
	language  string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		hinting:   HintingNone,
		language:  "en",
	}
}

// WithDirection sets the base text direction for the face.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ja", "ar").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}
