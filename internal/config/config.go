// Package config loads and validates site configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength       = 200  // Site or page title
	MaxDescriptionLength = 500  // Meta description
	MaxAuthorLength      = 100  // Author name
	MaxURLLength         = 2048 // Browser limit
	MaxDateLength        = 30   // "2025-12-31" or "December 31, 2025"
	MaxPatternLength     = 256  // Glob pattern
	MaxTemplateLength    = 100  // Template name
)

// Config holds all configuration for site generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Processor ProcessorConfig `yaml:"processor"`
	Site      SiteConfig      `yaml:"site"`
	Assets    AssetsConfig    `yaml:"assets"`
	Template  TemplateConfig  `yaml:"template"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir     string   `yaml:"dir"`     // Default input directory (empty = must specify)
	Include []string `yaml:"include"` // Glob patterns; empty = all markdown files
}

// OutputConfig defines output destination and formatting options.
type OutputConfig struct {
	Dir         string `yaml:"dir"`         // Default output directory (empty = same as source)
	Minify      bool   `yaml:"minify"`      // Wins over prettyPrint
	PrettyPrint bool   `yaml:"prettyPrint"` // Indented output
}

// ProcessorConfig defines content processing options.
type ProcessorConfig struct {
	Sanitize    bool `yaml:"sanitize"`
	TOC         bool `yaml:"toc"`
	TOCMaxLevel int  `yaml:"tocMaxLevel"` // 1-6, default 3
}

// SiteConfig defines site-wide metadata injected into every page head.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	BaseURL     string `yaml:"baseURL"`
	Date        string `yaml:"date"` // "auto" or "auto:FORMAT" resolves to build date
}

// AssetsConfig defines static asset copying options.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Directory copied into the output dir (empty = none)
}

// TemplateConfig defines page template options.
type TemplateConfig struct {
	Name string `yaml:"name"` // Registered template name (empty = built-in page)
	Path string `yaml:"path"` // Template file loaded and registered under Name
}

// Validate checks field lengths and enum values. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.title", c.Site.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.description", c.Site.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.author", c.Site.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.baseURL", c.Site.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.date", c.Site.Date, MaxDateLength); err != nil {
		return err
	}

	for i, pattern := range c.Input.Include {
		if err := validateFieldLength(fmt.Sprintf("input.include[%d]", i), pattern, MaxPatternLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("template.name", c.Template.Name, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.path", c.Template.Path, MaxURLLength); err != nil {
		return err
	}

	if c.Processor.TOCMaxLevel != 0 {
		if c.Processor.TOCMaxLevel < 1 || c.Processor.TOCMaxLevel > 6 {
			return fmt.Errorf("processor.tocMaxLevel: must be between 1 and 6, got %d", c.Processor.TOCMaxLevel)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{
		Processor: ProcessorConfig{TOCMaxLevel: 3},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, ~/.config/go-md2site/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2site", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchPaths returns the paths resolveConfigPath would try for name,
// for use in error hints.
func SearchPaths(name string) []string {
	paths := make([]string, 0, 4)
	for _, ext := range []string{".yaml", ".yml"} {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2site", name+ext))
		}
	}
	return paths
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
