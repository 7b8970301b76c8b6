package md2site

import (
	"fmt"
	"html"
	"os"
	"sort"
	"strings"
)

// InjectMetadata returns content wrapped into a well-formed document with
// one <meta> tag per key. A missing doctype is prepended. A missing head is
// inserted after the <html> opening tag when one exists, otherwise a whole
// <html><head>...</head> prefix is synthesized. <html> is an optional
// element, so no closing tag is appended for the synthesized prefix.
// Keys are emitted in sorted order so output is deterministic.
func InjectMetadata(content string, metadata map[string]string) string {
	out := ensureDoctype(content)
	tags := metaTags(metadata)

	if injected, ok := injectIntoHead(out, tags); ok {
		return injected
	}
	if injected, ok := insertHead(out, tags); ok {
		return injected
	}
	return synthesizeHead(out, tags)
}

// UpdateMetadata rewrites the metadata of an existing HTML file in place.
// Lines carrying <meta> tags inside the head block are dropped and the new
// set is injected. Meta tags elsewhere in the document are left alone. The
// file must already contain a head section.
func UpdateMetadata(path string, metadata map[string]string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(raw), "\n")
	kept := make([]string, 0, len(lines))
	inHead := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "<head") && !strings.Contains(lower, "</head") {
			inHead = true
		}
		if inHead && strings.HasPrefix(strings.TrimSpace(lower), "<meta") {
			continue
		}
		if strings.Contains(lower, "</head>") {
			inHead = false
		}
		kept = append(kept, line)
	}

	updated, ok := injectIntoHead(strings.Join(kept, "\n"), metaTags(metadata))
	if !ok {
		return fmt.Errorf("%w: %s", ErrHeadNotFound, path)
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// metaTags renders one <meta> line per key, keys sorted, values escaped.
func metaTags(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "<meta name=\"%s\" content=\"%s\">\n",
			html.EscapeString(k), html.EscapeString(metadata[k]))
	}
	return b.String()
}

// ensureDoctype prepends an HTML5 doctype when content lacks one.
func ensureDoctype(content string) string {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) >= 9 && strings.EqualFold(trimmed[:9], "<!doctype") {
		return content
	}
	return "<!DOCTYPE html>\n" + content
}

// injectIntoHead inserts tags into an existing head section: before
// </head> when present, otherwise directly after the <head> opening tag
// with a synthesized </head> closer. Reports false when the document has
// no head.
func injectIntoHead(content, tags string) (string, bool) {
	lower := strings.ToLower(content)

	if idx := strings.Index(lower, "</head>"); idx >= 0 {
		return content[:idx] + tags + content[idx:], true
	}

	idx := strings.Index(lower, "<head")
	if idx < 0 {
		return content, false
	}
	end := strings.IndexByte(content[idx:], '>')
	if end < 0 {
		return content, false
	}
	at := idx + end + 1
	return content[:at] + "\n" + tags + "</head>\n" + content[at:], true
}

// insertHead places a new head section after the <html> opening tag.
// Reports false when the document has no <html> element.
func insertHead(content, tags string) (string, bool) {
	lower := strings.ToLower(content)

	idx := strings.Index(lower, "<html")
	if idx < 0 {
		return content, false
	}
	end := strings.IndexByte(content[idx:], '>')
	if end < 0 {
		return content, false
	}
	at := idx + end + 1
	return content[:at] + "\n<head>\n" + tags + "</head>" + content[at:], true
}

// synthesizeHead wraps headless content with an <html><head> prefix right
// after the doctype.
func synthesizeHead(content, tags string) string {
	prefix := "<html>\n<head>\n" + tags + "</head>\n"

	lower := strings.ToLower(content)
	idx := strings.Index(lower, "<!doctype")
	if idx < 0 {
		return prefix + content
	}
	end := strings.IndexByte(content[idx:], '>')
	if end < 0 {
		return prefix + content
	}
	at := idx + end + 1
	rest := strings.TrimLeft(content[at:], "\n")
	return content[:at] + "\n" + prefix + rest
}
