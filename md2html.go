package md2site

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
	HeadingEvents(content string) []HeadingEvent
}

// goldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with GFM extensions and
// syntax highlighting.
func newGoldmarkConverter() *goldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes for external stylesheet control
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Anchor IDs on headings
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used. The ==highlight==
			// feature uses placeholders converted after Goldmark.
		),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML body fragment. The doctype and
// head section are the generator's responsibility. Supports context
// cancellation via goroutine + select pattern since Goldmark doesn't
// natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// HeadingEventKind discriminates heading stream events.
type HeadingEventKind int

// Heading event kinds, in document order: start, text, end.
const (
	HeadingStart HeadingEventKind = iota
	HeadingText
	HeadingEnd
)

// HeadingEvent is one event in the block-level heading stream consumed by
// the TOC builder. Level is set on start events, Text on text events.
type HeadingEvent struct {
	Kind  HeadingEventKind
	Level int
	Text  string
}

// HeadingEvents parses the Markdown source and emits a start/text/end event
// triple per heading, in document order.
func (c *goldmarkConverter) HeadingEvents(content string) []HeadingEvent {
	source := []byte(content)
	doc := c.md.Parser().Parse(text.NewReader(source))

	var events []HeadingEvent
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if entering {
			events = append(events,
				HeadingEvent{Kind: HeadingStart, Level: h.Level},
				HeadingEvent{Kind: HeadingText, Text: nodeText(h, source)},
			)
		} else {
			events = append(events, HeadingEvent{Kind: HeadingEnd, Level: h.Level})
		}
		return ast.WalkContinue, nil
	})
	return events
}

// nodeText collects the plain text under a node, descending through inline
// markup.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(nodeText(c, source))
		}
	}
	return buf.String()
}
