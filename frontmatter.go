package md2site

import (
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// frontmatterDelimiter opens and closes the metadata block.
const frontmatterDelimiter = "---"

// ExtractMetadata parses a leading frontmatter block and applies the
// first-heading title fallback. An unparseable block is tolerated: the
// metadata simply stays empty.
func ExtractMetadata(content string) ContentMetadata {
	meta := ContentMetadata{Custom: map[string]any{}}

	if strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		var block strings.Builder
		lines := strings.Split(content, "\n")
		for _, line := range lines[1:] {
			if line == frontmatterDelimiter {
				break
			}
			block.WriteString(line)
			block.WriteByte('\n')
		}

		var fields map[string]any
		if err := yamlutil.Unmarshal([]byte(block.String()), &fields); err == nil {
			applyFields(&meta, fields)
		}
	}

	if meta.Title == "" {
		for _, line := range strings.Split(content, "\n") {
			if title, ok := strings.CutPrefix(line, "# "); ok {
				meta.Title = strings.TrimSpace(title)
				break
			}
		}
	}

	return meta
}

// StripFrontmatter returns content with a leading frontmatter block
// removed. Content without one is returned unchanged, as is content whose
// block never closes.
func StripFrontmatter(content string) string {
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines[1:] {
		if line == frontmatterDelimiter {
			return strings.Join(lines[i+2:], "\n")
		}
	}
	return content
}

// applyFields routes recognized keys to their fields; everything else goes
// into Custom.
func applyFields(meta *ContentMetadata, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "title":
			meta.Title = scalarString(value)
		case "description":
			meta.Description = scalarString(value)
		case "date":
			meta.Date = scalarString(value)
		case "tags":
			meta.Tags = stringList(value)
		default:
			meta.Custom[key] = value
		}
	}
}

// scalarString converts a frontmatter scalar to a trimmed string.
// Unquoted dates may decode as time.Time; they are rendered as YYYY-MM-DD.
// Non-string, non-time values yield "".
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return ""
	}
}

// stringList converts a frontmatter sequence to a slice of trimmed strings,
// skipping non-string and empty entries.
func stringList(value any) []string {
	seq, ok := value.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range seq {
		if s, ok := item.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
