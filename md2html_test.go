package md2site

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
			wantNot: []string{"<!DOCTYPE", "<head"},
		},
		{
			name:  "auto heading IDs",
			input: "# First\n\n## Second",
			wantContains: []string{
				`id="first"`,
				`id="second"`,
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "GFM strikethrough",
			input: "~~deleted~~",
			wantContains: []string{
				"<del>",
				"deleted",
				"</del>",
			},
		},
		{
			name:  "GFM task list",
			input: "- [x] Done\n- [ ] Todo",
			wantContains: []string{
				"<input",
				"checked",
				"type=\"checkbox\"",
			},
		},
		{
			name:  "footnote",
			input: "Text[^1]\n\n[^1]: Footnote content",
			wantContains: []string{
				"<sup",
				"Footnote content",
			},
		},
		{
			name:  "fenced code with class-based highlighting",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"func",
				"main",
			},
			wantNot: []string{"style=\"color"},
		},
		{
			name:  "raw html escaped",
			input: "text <script>alert(1)</script>",
			wantNot: []string{
				"<script>",
			},
		},
	}

	conv := newGoldmarkConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "# x"); err == nil {
		t.Fatal("ToHTML() with canceled context = nil error")
	}
}

func TestGoldmarkConverter_ToHTML_Timeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "# x"); err == nil {
		t.Fatal("ToHTML() after deadline = nil error")
	}
}

func TestGoldmarkConverter_HeadingEvents(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	events := conv.HeadingEvents("# One\n\npara\n\n## Two *emph*\n")

	if len(events) != 6 {
		t.Fatalf("event count = %d, want 6: %+v", len(events), events)
	}

	if events[0].Kind != HeadingStart || events[0].Level != 1 {
		t.Errorf("events[0] = %+v, want start level 1", events[0])
	}
	if events[1].Kind != HeadingText || events[1].Text != "One" {
		t.Errorf("events[1] = %+v, want text One", events[1])
	}
	if events[2].Kind != HeadingEnd {
		t.Errorf("events[2] = %+v, want end", events[2])
	}
	if events[3].Level != 2 {
		t.Errorf("events[3].Level = %d, want 2", events[3].Level)
	}
	if events[4].Text != "Two emph" {
		t.Errorf("events[4].Text = %q, want %q", events[4].Text, "Two emph")
	}
}
