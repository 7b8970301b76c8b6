package md2site

import (
	"fmt"
	"html/template"
	"os"
	"strings"
)

// TemplateContext carries the values a page template can reference.
// Content is already-rendered HTML and is inserted without escaping.
type TemplateContext struct {
	Title       string
	Description string
	Date        string
	Tags        []string
	Content     template.HTML
	Custom      map[string]any
}

// TemplateRenderer renders a named template against a page context.
type TemplateRenderer interface {
	Render(name string, ctx TemplateContext) (string, error)
}

// defaultPageTemplate wraps converted content into a minimal page body.
// The generator supplies the doctype and head, so the template emits only
// body-level markup.
const defaultPageTemplate = `<article>
{{- if .Title}}
<h1>{{.Title}}</h1>
{{- end}}
{{- if .Date}}
<time datetime="{{.Date}}">{{.Date}}</time>
{{- end}}
{{.Content}}
{{- if .Tags}}
<ul class="tags">
{{- range .Tags}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</article>
`

// htmlTemplateRenderer renders with html/template. The zero template set
// holds the built-in page template under the name "page".
type htmlTemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer returns a renderer preloaded with the built-in
// "page" template. Additional template sources can be registered with
// Parse.
func NewTemplateRenderer() TemplateRenderer {
	t := template.Must(template.New("page").Parse(defaultPageTemplate))
	return &htmlTemplateRenderer{tmpl: t}
}

// NewTemplateRendererFromFile returns a renderer whose "page" template is
// replaced by the contents of path.
func NewTemplateRendererFromFile(path string) (TemplateRenderer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	r := &htmlTemplateRenderer{tmpl: template.New("root")}
	if err := r.Parse("page", string(raw)); err != nil {
		return nil, err
	}
	return r, nil
}

// Parse registers or replaces a named template.
func (r *htmlTemplateRenderer) Parse(name, text string) error {
	t, err := r.tmpl.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	r.tmpl = t
	return nil
}

// Render executes the named template, falling back to "page" when name is
// empty.
func (r *htmlTemplateRenderer) Render(name string, ctx TemplateContext) (string, error) {
	if name == "" {
		name = "page"
	}
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return b.String(), nil
}
