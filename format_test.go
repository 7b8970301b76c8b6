package md2site

import (
	"strings"
	"testing"
)

func TestPrettyPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "nested elements",
			input: "<div><p>ok</p></div>",
			want:  "<div>\n    <p>ok\n    </p>\n</div>",
		},
		{
			name:  "void element no indent increase",
			input: "<div><br><p>x</p></div>",
			want:  "<div>\n    <br>\n    <p>x\n    </p>\n</div>",
		},
		{
			name:  "pre content verbatim",
			input: "<div><pre>line1\n  line2</pre></div>",
			want:  "<div>\n    <pre>line1\n  line2</pre>\n</div>",
		},
		{
			name:  "doctype no depth change",
			input: "<!DOCTYPE html><p>x</p>",
			want:  "<!DOCTYPE html>\n<p>x\n</p>",
		},
		{
			name:  "inter-tag whitespace dropped",
			input: "<div>\n\n   <p>  ok  </p>\n</div>",
			want:  "<div>\n    <p>ok\n    </p>\n</div>",
		},
		{
			name:  "comment on its own line",
			input: "<div><!-- note --><p>x</p></div>",
			want:  "<div>\n    <!-- note -->\n    <p>x\n    </p>\n</div>",
		},
		{
			name:  "self closing tag",
			input: "<div><hr/></div>",
			want:  "<div>\n    <hr/>\n</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := prettyPrint(tt.input)
			if got != tt.want {
				t.Fatalf("prettyPrint(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrettyPrint_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<div><p>ok</p></div>",
		"<!DOCTYPE html><html><head><title>T</title></head><body><p>x</p></body></html>",
		"<div><pre>a\n  b\nc</pre><p>after</p></div>",
		"<ul><li>one<li>two</ul>",
	}

	for _, input := range inputs {
		once := prettyPrint(input)
		twice := prettyPrint(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestFormat_PreservesValidity(t *testing.T) {
	t.Parallel()

	f := newFormatter()
	inputs := []string{
		"<!DOCTYPE html>\n<html><head><title>T</title></head><body><p>hello</p><div><span>x</span></div></body></html>",
		"<div><table><tr><td>1</td></tr></table></div>",
	}

	for _, input := range inputs {
		if err := ValidateStructure(input); err != nil {
			t.Fatalf("test input invalid: %v", err)
		}
		for _, cfg := range []OutputConfig{
			{PrettyPrint: true},
			{Minify: true},
			{},
		} {
			out, err := f.Format(input, cfg)
			if err != nil {
				t.Fatalf("Format(%+v) error = %v", cfg, err)
			}
			if err := ValidateStructure(out); err != nil {
				t.Errorf("Format(%+v) broke validity:\n%s", cfg, out)
			}
		}
	}
}

func TestFormat_Modes(t *testing.T) {
	t.Parallel()

	f := newFormatter()
	input := "<div>\n  <p>ok</p>\n</div>"

	t.Run("passthrough", func(t *testing.T) {
		t.Parallel()

		out, err := f.Format(input, OutputConfig{})
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if out != input {
			t.Errorf("passthrough changed content: %q", out)
		}
	})

	t.Run("minify shrinks whitespace", func(t *testing.T) {
		t.Parallel()

		out, err := f.Format(input, OutputConfig{Minify: true})
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if !strings.Contains(out, "ok") {
			t.Errorf("minified output lost content: %q", out)
		}
		if strings.Contains(out, "\n  ") {
			t.Errorf("minified output kept indentation: %q", out)
		}
		if !strings.Contains(out, "</p>") {
			t.Errorf("minified output dropped end tag: %q", out)
		}
	})

	t.Run("minify wins over pretty", func(t *testing.T) {
		t.Parallel()

		out, err := f.Format(input, OutputConfig{Minify: true, PrettyPrint: true})
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if strings.Contains(out, "    <p>") {
			t.Errorf("pretty printing applied despite minify: %q", out)
		}
	})
}

func TestCleanLines(t *testing.T) {
	t.Parallel()

	input := "a   \n\n  b\t\n   \nc"
	want := "a\n  b\nc"
	if got := cleanLines(input); got != want {
		t.Fatalf("cleanLines(%q) = %q, want %q", input, got, want)
	}
}
