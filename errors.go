package md2site

import "errors"

// Sentinel errors for library operations.
var (
	// Content validation errors.
	ErrEmptyContent      = errors.New("content cannot be empty")
	ErrContentTooLarge   = errors.New("content exceeds maximum size")
	ErrSuspiciousPattern = errors.New("suspicious content pattern detected")

	// Structural validation errors.
	ErrInvalidStructure = errors.New("invalid HTML structure")

	// Metadata injection errors.
	ErrHeadNotFound = errors.New("no head section could be found or created")

	// Asset handling errors.
	ErrAssetDir  = errors.New("invalid or unreadable asset directory")
	ErrAssetCopy = errors.New("failed to copy asset")

	// Conversion and rendering errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrMinify         = errors.New("HTML minification failed")

	// Configuration validation errors.
	ErrInvalidTOCLevel   = errors.New("invalid TOC level")
	ErrInvalidOutputPath = errors.New("invalid output path - expected .html")
	ErrInvalidOptions    = errors.New("invalid options")
)
