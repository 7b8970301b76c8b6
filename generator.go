package md2site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// HTMLGenerator validates, decorates, and writes HTML documents. It is
// safe for concurrent use: each call works on a snapshot of the current
// configuration.
type HTMLGenerator struct {
	mu     sync.RWMutex
	cfg    OutputConfig
	fmt    *formatter
	assets *AssetCache
}

// GeneratorOption configures an HTMLGenerator.
type GeneratorOption func(*HTMLGenerator) error

// WithMinify enables HTML minification.
func WithMinify(enabled bool) GeneratorOption {
	return func(g *HTMLGenerator) error {
		g.cfg.Minify = enabled
		return nil
	}
}

// WithPrettyPrint enables indented output. Minify takes precedence when
// both are set.
func WithPrettyPrint(enabled bool) GeneratorOption {
	return func(g *HTMLGenerator) error {
		g.cfg.PrettyPrint = enabled
		return nil
	}
}

// WithMetadata sets the meta tags injected into each document head.
func WithMetadata(metadata map[string]string) GeneratorOption {
	return func(g *HTMLGenerator) error {
		g.cfg.Metadata = metadata
		return nil
	}
}

// WithAssetDir sets the directory whose files are copied alongside output.
// The directory must exist.
func WithAssetDir(dir string) GeneratorOption {
	return func(g *HTMLGenerator) error {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrAssetDir, dir)
		}
		g.cfg.AssetDir = dir
		return nil
	}
}

// WithOutputOption sets one free-form output option.
func WithOutputOption(key string, value any) GeneratorOption {
	return func(g *HTMLGenerator) error {
		if g.cfg.Options == nil {
			g.cfg.Options = make(map[string]any)
		}
		g.cfg.Options[key] = value
		return nil
	}
}

// NewHTMLGenerator builds a generator with the given options applied in
// order.
func NewHTMLGenerator(opts ...GeneratorOption) (*HTMLGenerator, error) {
	g := &HTMLGenerator{
		fmt:    newFormatter(),
		assets: NewAssetCache(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if err := validateOutputOptions(g.cfg.Options); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns a snapshot of the current output configuration.
func (g *HTMLGenerator) Config() OutputConfig {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// SetConfig replaces the output configuration.
func (g *HTMLGenerator) SetConfig(cfg OutputConfig) error {
	if err := validateOutputOptions(cfg.Options); err != nil {
		return err
	}
	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
	return nil
}

// Assets exposes the generator's asset cache.
func (g *HTMLGenerator) Assets() *AssetCache {
	return g.assets
}

// Generate validates content, injects metadata, formats per configuration,
// and writes the result to outputPath, creating parent directories as
// needed. Configured assets are copied into the output directory, keeping
// their names. Formatted output is validated again before writing.
func (g *HTMLGenerator) Generate(content, outputPath string) error {
	cfg := g.Config()

	if err := validateOutputPath(outputPath); err != nil {
		return err
	}
	if err := ValidateStructure(content); err != nil {
		return err
	}

	out := InjectMetadata(content, cfg.Metadata)
	out, err := g.fmt.Format(out, cfg)
	if err != nil {
		return err
	}
	if err := ValidateStructure(out); err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if cfg.AssetDir != "" {
		if err := g.assets.CopyAssets(cfg.AssetDir, dir); err != nil {
			return err
		}
	}
	return nil
}

// UpdateMetadata rewrites the meta tags of a previously generated file
// using the generator's configured metadata.
func (g *HTMLGenerator) UpdateMetadata(path string) error {
	return UpdateMetadata(path, g.Config().Metadata)
}

// validateOutputPath requires a non-empty path with an .html extension.
func validateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidOutputPath)
	}
	if !strings.EqualFold(filepath.Ext(path), ".html") {
		return fmt.Errorf("%w: %s must end in .html", ErrInvalidOutputPath, path)
	}
	return nil
}

// validateOutputOptions type-checks the known free-form options.
func validateOutputOptions(opts map[string]any) error {
	if opts == nil {
		return nil
	}
	if v, ok := opts["minify"]; ok {
		if _, isBool := v.(bool); !isBool {
			return fmt.Errorf("%w: minify must be a boolean", ErrInvalidOptions)
		}
	}
	if v, ok := opts["indent_size"]; ok {
		if _, isInt := v.(int); !isInt {
			return fmt.Errorf("%w: indent_size must be an integer", ErrInvalidOptions)
		}
	}
	return nil
}
