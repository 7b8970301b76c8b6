package md2site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// indentUnit is the pretty-printer indentation step.
const indentUnit = "    "

var scriptMediaType = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)

// formatter dispatches between minification and pretty-printing.
type formatter struct {
	m *minify.M
}

// newFormatter builds the minifier with CSS and JS minification enabled.
// End tags and quotes are kept so minified output still satisfies the
// structural validator: the optional-tag set does not cover every end tag
// the minifier would otherwise omit.
func newFormatter() *formatter {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepEndTags:      true,
		KeepDocumentTags: true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(scriptMediaType, js.Minify)
	return &formatter{m: m}
}

// Format applies the configured output transformation. Minify wins over
// PrettyPrint; with neither set, content passes through unchanged.
func (f *formatter) Format(content string, cfg OutputConfig) (string, error) {
	switch {
	case cfg.Minify:
		out, err := f.m.String("text/html", content)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMinify, err)
		}
		return out, nil
	case cfg.PrettyPrint:
		return prettyPrint(content), nil
	default:
		return content, nil
	}
}

// tokenKind discriminates pretty-printer tokens.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenTag
	tokenComment
)

// htmlToken is one lexical unit of the pretty-printer input.
type htmlToken struct {
	kind tokenKind
	text string
}

// tokenizeHTML splits content into text, tag, and comment tokens. Comments
// are kept whole so inner angle brackets don't split them. An unterminated
// tag or comment at end of input degrades to a text token.
func tokenizeHTML(content string) []htmlToken {
	var tokens []htmlToken
	i := 0
	for i < len(content) {
		if content[i] != '<' {
			j := strings.IndexByte(content[i:], '<')
			if j == -1 {
				tokens = append(tokens, htmlToken{tokenText, content[i:]})
				break
			}
			tokens = append(tokens, htmlToken{tokenText, content[i : i+j]})
			i += j
			continue
		}

		if strings.HasPrefix(content[i:], "<!--") {
			end := strings.Index(content[i:], "-->")
			if end == -1 {
				tokens = append(tokens, htmlToken{tokenText, content[i:]})
				break
			}
			tokens = append(tokens, htmlToken{tokenComment, content[i : i+end+3]})
			i += end + 3
			continue
		}

		end := strings.IndexByte(content[i:], '>')
		if end == -1 {
			tokens = append(tokens, htmlToken{tokenText, content[i:]})
			break
		}
		tokens = append(tokens, htmlToken{tokenTag, content[i : i+end+1]})
		i += end + 1
	}
	return tokens
}

// prettyPrint formats HTML with one indent step per open element. Opening
// tags start a new indented line and increase depth unless void; closing
// tags decrease depth first. Text between tags is trimmed and appended
// inline after the preceding tag. <pre> spans suspend depth tracking and
// copy their content verbatim. A post-pass strips trailing whitespace and
// drops empty lines.
func prettyPrint(content string) string {
	tokens := tokenizeHTML(content)

	var b strings.Builder
	b.Grow(len(content) + len(content)/4)
	depth := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.kind {
		case tokenText:
			if trimmed := strings.TrimSpace(tok.text); trimmed != "" {
				b.WriteString(trimmed)
			}

		case tokenComment:
			writeIndented(&b, depth, tok.text)

		case tokenTag:
			name := tagName(tok.text)
			if strings.HasPrefix(tok.text, "<!") || strings.HasPrefix(tok.text, "<?") {
				writeIndented(&b, depth, tok.text)
				continue
			}
			if strings.HasPrefix(tok.text, "</") {
				if depth > 0 {
					depth--
				}
				writeIndented(&b, depth, tok.text)
				continue
			}
			writeIndented(&b, depth, tok.text)
			if name == "pre" {
				i = copyPreSpan(&b, tokens, i)
				continue
			}
			if !voidElements[name] && !strings.HasSuffix(tok.text, "/>") {
				depth++
			}
		}
	}

	return cleanLines(b.String())
}

// writeIndented emits a newline, the current indentation, and the token.
func writeIndented(b *strings.Builder, depth int, text string) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString(text)
}

// copyPreSpan copies tokens verbatim from just after the <pre> opener at
// tokens[start] through the matching </pre>, untouched whitespace included.
// Returns the index of the last consumed token.
func copyPreSpan(b *strings.Builder, tokens []htmlToken, start int) int {
	for i := start + 1; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind == tokenTag && strings.HasPrefix(tok.text, "</") && tagName(tok.text) == "pre" {
			b.WriteString(tok.text)
			return i
		}
		b.WriteString(tok.text)
	}
	return len(tokens) - 1
}

// cleanLines strips trailing whitespace per line and drops empty lines.
func cleanLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
