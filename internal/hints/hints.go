// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-md2site/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2site") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetDirectory returns hints for asset directory errors.
func ForAssetDirectory(dir string) string {
	return format("check that " + dir + " exists and is a directory")
}

// ForNoInputs returns hints when discovery finds no markdown files.
func ForNoInputs(patterns []string) string {
	if len(patterns) == 0 {
		return format("pass files or directories, or use --include '**/*.md'")
	}
	return format("no files match " + strings.Join(patterns, ", "))
}

// ForContentTooLarge returns a hint for oversized source documents.
func ForContentTooLarge() string {
	return format("split the document; inputs are capped at 10MB")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
