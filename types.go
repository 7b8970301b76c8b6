package md2site

import "fmt"

// TOC level bounds.
const (
	MinTOCLevel     = 1
	MaxTOCLevel     = 6
	DefaultTOCLevel = 3
)

// MaxContentSize limits Markdown input to 10MB.
const MaxContentSize = 10 * 1024 * 1024

// ContentMetadata holds metadata extracted from a document. It is populated
// once during extraction and not mutated afterwards.
type ContentMetadata struct {
	Title       string
	Description string
	Date        string
	Tags        []string
	Custom      map[string]any
}

// ProcessorConfig controls per-document processing. Supplied per call and
// read-only for the duration of the call.
type ProcessorConfig struct {
	Sanitize    bool
	TOC         bool
	TOCMaxLevel int
	Options     map[string]any
}

// DefaultProcessorConfig returns the default processing configuration:
// sanitization on, TOC off, TOC depth 3.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Sanitize:    true,
		TOC:         false,
		TOCMaxLevel: DefaultTOCLevel,
	}
}

// Validate checks that the TOC level is within bounds.
func (c *ProcessorConfig) Validate() error {
	if c.TOCMaxLevel < MinTOCLevel || c.TOCMaxLevel > MaxTOCLevel {
		return fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidTOCLevel, c.TOCMaxLevel, MinTOCLevel, MaxTOCLevel)
	}
	return nil
}

// OutputConfig controls output generation. It is owned by the generator and
// shared across calls; see HTMLGenerator for the locking rules.
type OutputConfig struct {
	// Minify enables HTML minification (takes precedence over PrettyPrint).
	Minify bool

	// PrettyPrint enables indented, line-broken output.
	PrettyPrint bool

	// Metadata is injected into the head as <meta name= content=> tags.
	Metadata map[string]string

	// AssetDir is an optional directory of static assets copied into the
	// output directory.
	AssetDir string

	// Options carries additional generation options.
	Options map[string]any
}

// Input contains the parameters for a single document conversion.
type Input struct {
	// Markdown content (required).
	Markdown string

	// Template selects the page template by name. Empty means the default.
	Template string

	// Processor overrides the service's per-document processing config.
	// Nil means the service default.
	Processor *ProcessorConfig
}
