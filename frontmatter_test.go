package md2site

import (
	"strings"
	"testing"
)

func TestExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("full frontmatter", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: My Post\ndescription: A post\ndate: \"2026-01-15\"\ntags:\n  - go\n  - web\nauthor: someone\n---\n# Body heading\n"
		meta := ExtractMetadata(content)

		if meta.Title != "My Post" {
			t.Errorf("Title = %q, want %q", meta.Title, "My Post")
		}
		if meta.Description != "A post" {
			t.Errorf("Description = %q, want %q", meta.Description, "A post")
		}
		if meta.Date != "2026-01-15" {
			t.Errorf("Date = %q, want %q", meta.Date, "2026-01-15")
		}
		if len(meta.Tags) != 2 || meta.Tags[0] != "go" || meta.Tags[1] != "web" {
			t.Errorf("Tags = %v, want [go web]", meta.Tags)
		}
		if meta.Custom["author"] != "someone" {
			t.Errorf("Custom[author] = %v, want someone", meta.Custom["author"])
		}
	})

	t.Run("unquoted date", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("---\ndate: 2026-01-15\n---\nbody")
		if meta.Date != "2026-01-15" {
			t.Errorf("Date = %q, want 2026-01-15", meta.Date)
		}
	})

	t.Run("title falls back to first h1", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("Intro text\n\n# Actual Title\n\nmore")
		if meta.Title != "Actual Title" {
			t.Errorf("Title = %q, want %q", meta.Title, "Actual Title")
		}
	})

	t.Run("frontmatter title wins over h1", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("---\ntitle: From Frontmatter\n---\n# From Heading")
		if meta.Title != "From Frontmatter" {
			t.Errorf("Title = %q, want %q", meta.Title, "From Frontmatter")
		}
	})

	t.Run("no frontmatter no heading", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("just a paragraph")
		if meta.Title != "" {
			t.Errorf("Title = %q, want empty", meta.Title)
		}
		if len(meta.Custom) != 0 {
			t.Errorf("Custom = %v, want empty", meta.Custom)
		}
	})

	t.Run("malformed yaml tolerated", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("---\n: : :\n---\n# Fallback")
		if meta.Title != "Fallback" {
			t.Errorf("Title = %q, want Fallback", meta.Title)
		}
	})

	t.Run("non-string tags skipped", func(t *testing.T) {
		t.Parallel()

		meta := ExtractMetadata("---\ntags:\n  - go\n  - 42\n  - \"\"\n---\nbody")
		if len(meta.Tags) != 1 || meta.Tags[0] != "go" {
			t.Errorf("Tags = %v, want [go]", meta.Tags)
		}
	})
}

func TestStripFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips block",
			input: "---\ntitle: x\n---\n# Body",
			want:  "# Body",
		},
		{
			name:  "no frontmatter",
			input: "# Body",
			want:  "# Body",
		},
		{
			name:  "unclosed block kept",
			input: "---\ntitle: x\nno closer",
			want:  "---\ntitle: x\nno closer",
		},
		{
			name:  "delimiter mid-document untouched",
			input: "para\n---\nmore",
			want:  "para\n---\nmore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripFrontmatter(tt.input); got != tt.want {
				t.Fatalf("StripFrontmatter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractMetadata_DoesNotReadBodyKeys(t *testing.T) {
	t.Parallel()

	meta := ExtractMetadata("# Title\n\ntitle: not frontmatter\n")
	if strings.Contains(meta.Title, "not frontmatter") {
		t.Errorf("body text leaked into metadata: %q", meta.Title)
	}
}
