package md2site

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHTMLGenerator_Options(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		g, err := NewHTMLGenerator()
		if err != nil {
			t.Fatalf("NewHTMLGenerator() error = %v", err)
		}
		cfg := g.Config()
		if cfg.Minify || cfg.PrettyPrint || cfg.AssetDir != "" {
			t.Errorf("default config not neutral: %+v", cfg)
		}
	})

	t.Run("asset dir must exist", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTMLGenerator(WithAssetDir(filepath.Join(t.TempDir(), "missing")))
		if !errors.Is(err, ErrAssetDir) {
			t.Fatalf("NewHTMLGenerator() = %v, want ErrAssetDir", err)
		}
	})

	t.Run("option type checking", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTMLGenerator(WithOutputOption("minify", "yes"))
		if !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("string minify option = %v, want ErrInvalidOptions", err)
		}

		_, err = NewHTMLGenerator(WithOutputOption("indent_size", 2.5))
		if !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("float indent_size option = %v, want ErrInvalidOptions", err)
		}

		_, err = NewHTMLGenerator(
			WithOutputOption("minify", true),
			WithOutputOption("indent_size", 2),
		)
		if err != nil {
			t.Fatalf("well-typed options = %v, want nil", err)
		}
	})
}

func TestHTMLGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("writes validated document", func(t *testing.T) {
		t.Parallel()

		g, err := NewHTMLGenerator(WithMetadata(map[string]string{"author": "a"}))
		if err != nil {
			t.Fatal(err)
		}

		out := filepath.Join(t.TempDir(), "sub", "page.html")
		if err := g.Generate("<p>hello</p>", out); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("output not written: %v", err)
		}
		got := string(data)
		for _, want := range []string{"<!DOCTYPE", "<head>", "<meta name=\"author\"", "<p>hello</p>"} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("pretty printed output", func(t *testing.T) {
		t.Parallel()

		g, err := NewHTMLGenerator(WithPrettyPrint(true))
		if err != nil {
			t.Fatal(err)
		}

		out := filepath.Join(t.TempDir(), "page.html")
		if err := g.Generate("<div><p>x</p></div>", out); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		data, _ := os.ReadFile(out)
		if !strings.Contains(string(data), "    <p>x") {
			t.Errorf("output not indented:\n%s", data)
		}
	})

	t.Run("rejects non-html extension", func(t *testing.T) {
		t.Parallel()

		g, _ := NewHTMLGenerator()
		err := g.Generate("<p>x</p>", filepath.Join(t.TempDir(), "page.pdf"))
		if !errors.Is(err, ErrInvalidOutputPath) {
			t.Fatalf("Generate() = %v, want ErrInvalidOutputPath", err)
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()

		g, _ := NewHTMLGenerator()
		if err := g.Generate("<p>x</p>", "  "); !errors.Is(err, ErrInvalidOutputPath) {
			t.Fatalf("Generate() = %v, want ErrInvalidOutputPath", err)
		}
	})

	t.Run("rejects invalid structure", func(t *testing.T) {
		t.Parallel()

		g, _ := NewHTMLGenerator()
		err := g.Generate("<div>Test</p>", filepath.Join(t.TempDir(), "bad.html"))
		if !errors.Is(err, ErrInvalidStructure) {
			t.Fatalf("Generate() = %v, want ErrInvalidStructure", err)
		}
	})

	t.Run("copies assets into output dir", func(t *testing.T) {
		t.Parallel()

		assetDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(assetDir, "site.css"), []byte("body{}"), 0o644); err != nil {
			t.Fatal(err)
		}

		g, err := NewHTMLGenerator(WithAssetDir(assetDir))
		if err != nil {
			t.Fatal(err)
		}

		outDir := t.TempDir()
		if err := g.Generate("<p>x</p>", filepath.Join(outDir, "page.html")); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		copied := filepath.Join(outDir, "site.css")
		if _, err := os.Stat(copied); err != nil {
			t.Errorf("asset not copied to %s: %v", copied, err)
		}
	})
}

func TestHTMLGenerator_SetConfig(t *testing.T) {
	t.Parallel()

	g, _ := NewHTMLGenerator()
	if err := g.SetConfig(OutputConfig{Options: map[string]any{"minify": 1}}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("SetConfig() = %v, want ErrInvalidOptions", err)
	}

	if err := g.SetConfig(OutputConfig{Minify: true}); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}
	if !g.Config().Minify {
		t.Error("SetConfig() did not apply")
	}
}

func TestHTMLGenerator_UpdateMetadata(t *testing.T) {
	t.Parallel()

	g, err := NewHTMLGenerator(WithMetadata(map[string]string{"author": "new"}))
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "page.html")
	if err := g.Generate("<p>x</p>", out); err != nil {
		t.Fatal(err)
	}

	if err := g.UpdateMetadata(out); err != nil {
		t.Fatalf("UpdateMetadata() error = %v", err)
	}
	data, _ := os.ReadFile(out)
	if n := strings.Count(string(data), "<meta name=\"author\""); n != 1 {
		t.Errorf("author meta count = %d, want 1:\n%s", n, data)
	}
}
