package md2site

import "strings"

// deniedTags are stripped during sanitization.
var deniedTags = map[string]bool{
	"script": true, "iframe": true, "object": true, "embed": true,
}

// Sanitize removes denied tags from HTML text in a single pass. Only the tag
// delimiters are dropped; text between a denied open/close pair is kept. This
// partial-stripping policy is load-bearing for output compatibility: callers
// depend on script bodies surviving as plain text. It is not full content
// removal, and attribute values on non-denied tags pass through untouched.
func Sanitize(html string) string {
	var out strings.Builder
	out.Grow(len(html))

	var tag strings.Builder
	inTag := false

	for _, c := range html {
		switch {
		case c == '<':
			inTag = true
			tag.Reset()
		case c == '>' && inTag:
			inTag = false
			raw := tag.String()
			if !deniedTags[bareTagName(raw)] {
				out.WriteByte('<')
				out.WriteString(raw)
				out.WriteByte('>')
			}
		case inTag:
			tag.WriteRune(c)
		default:
			out.WriteRune(c)
		}
	}
	return out.String()
}

// bareTagName extracts the name from inner tag text: strip a leading '/',
// take up to the first whitespace, lower-case.
func bareTagName(inner string) string {
	name := strings.TrimPrefix(inner, "/")
	if idx := strings.IndexFunc(name, isSpace); idx != -1 {
		name = name[:idx]
	}
	return strings.ToLower(name)
}
