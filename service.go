package md2site

import (
	"context"
	"encoding/json"
	"html/template"
	"strings"
)

// Service runs the full markdown-to-HTML pipeline: validate, extract
// metadata, preprocess, convert, decorate, and render. A Service is safe
// for concurrent use; per-call processor settings come from the Input.
type Service struct {
	pre       markdownPreprocessor
	converter htmlConverter
	renderer  TemplateRenderer
	generator *HTMLGenerator
	cfg       ProcessorConfig
}

// Result is the outcome of one conversion.
type Result struct {
	HTML     string
	Metadata ContentMetadata
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithProcessorConfig sets the default processor configuration used when
// an Input carries none.
func WithProcessorConfig(cfg ProcessorConfig) ServiceOption {
	return func(s *Service) { s.cfg = cfg }
}

// WithRenderer replaces the template renderer.
func WithRenderer(r TemplateRenderer) ServiceOption {
	return func(s *Service) { s.renderer = r }
}

// WithGenerator replaces the output generator used by Publish.
func WithGenerator(g *HTMLGenerator) ServiceOption {
	return func(s *Service) { s.generator = g }
}

// NewService builds a Service with a CommonMark converter and the built-in
// page template.
func NewService(opts ...ServiceOption) (*Service, error) {
	s := &Service{
		pre:       &commonMarkPreprocessor{},
		converter: newGoldmarkConverter(),
		renderer:  NewTemplateRenderer(),
		cfg:       DefaultProcessorConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if s.generator == nil {
		g, err := NewHTMLGenerator()
		if err != nil {
			return nil, err
		}
		s.generator = g
	}
	return s, nil
}

// Generator returns the generator used by Publish.
func (s *Service) Generator() *HTMLGenerator {
	return s.generator
}

// Convert runs the pipeline on in.Markdown and returns the rendered HTML
// with the extracted metadata. The context cancels the markdown
// conversion stage.
func (s *Service) Convert(ctx context.Context, in Input) (Result, error) {
	if err := validateContent(in.Markdown); err != nil {
		return Result{}, err
	}

	cfg := s.cfg
	if in.Processor != nil {
		cfg = *in.Processor
		if err := cfg.Validate(); err != nil {
			return Result{}, err
		}
	}

	meta := ExtractMetadata(in.Markdown)
	body := StripFrontmatter(in.Markdown)
	body = s.pre.PreprocessMarkdown(ctx, body)

	html, err := s.converter.ToHTML(ctx, body)
	if err != nil {
		return Result{}, err
	}
	html = convertMarkPlaceholders(html)

	if cfg.TOC {
		if toc := BuildTOC(s.converter.HeadingEvents(body), cfg.TOCMaxLevel); toc != "" {
			html = toc + "\n" + html
		}
	}
	if cfg.Sanitize {
		html = Sanitize(html)
	}
	if jsonLD := structuredData(meta); jsonLD != "" {
		html += "\n" + jsonLD
	}

	rendered, err := s.renderer.Render(in.Template, TemplateContext{
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Tags:        meta.Tags,
		Content:     template.HTML(html),
		Custom:      meta.Custom,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: rendered, Metadata: meta}, nil
}

// Publish converts in.Markdown and writes the generated document to
// outputPath through the configured generator.
func (s *Service) Publish(ctx context.Context, in Input, outputPath string) (Result, error) {
	res, err := s.Convert(ctx, in)
	if err != nil {
		return Result{}, err
	}
	if err := s.generator.Generate(res.HTML, outputPath); err != nil {
		return Result{}, err
	}
	return res, nil
}

// structuredData renders custom frontmatter fields as a JSON-LD script
// block, empty when there are none. The block is appended after
// sanitization, so the script tag survives into the output.
func structuredData(meta ContentMetadata) string {
	if len(meta.Custom) == 0 {
		return ""
	}
	payload := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebPage",
	}
	if meta.Title != "" {
		payload["name"] = meta.Title
	}
	if meta.Description != "" {
		payload["description"] = meta.Description
	}
	if meta.Date != "" {
		payload["datePublished"] = meta.Date
	}
	for k, v := range meta.Custom {
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<script type="application/ld+json">`)
	b.WriteString("\n")
	b.Write(data)
	b.WriteString("\n</script>")
	return b.String()
}

// ConvertString is a convenience wrapper over Convert for plain markdown
// input with default settings.
func (s *Service) ConvertString(ctx context.Context, markdown string) (string, error) {
	res, err := s.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Stats reports size and structure statistics for generated content.
func (s *Service) Stats(content string) map[string]int {
	return Stats(content)
}
