package md2site

import (
	"fmt"
	"strings"
)

// voidElements are HTML5 elements that never have a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// optionalTags are HTML5 elements whose closing tag may be omitted.
var optionalTags = map[string]bool{
	"html": true, "head": true, "body": true, "tbody": true, "thead": true,
	"tfoot": true, "tr": true, "th": true, "td": true, "li": true,
	"dt": true, "dd": true,
}

// ValidateStructure checks HTML tag balance with a single forward pass.
// It accepts implicitly closed optional tags, ignores doctype and
// processing-instruction tags, and skips comments. A nil return means the
// content is structurally valid.
func ValidateStructure(content string) error {
	if !isValidHTML(content) {
		return ErrInvalidStructure
	}
	return nil
}

// isValidHTML is the tag-balance state machine. State: the stack of open
// element names, an in-tag flag, an in-comment flag, and the offset where
// the current tag started. Tag syntax is ASCII, so the scan is byte-wise;
// multi-byte UTF-8 sequences never contain '<' or '>'.
func isValidHTML(content string) bool {
	var stack []string
	inTag := false
	inComment := false
	tagStart := 0

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '<':
			if inTag || inComment {
				continue
			}
			if strings.HasPrefix(content[i:], "<!--") {
				inComment = true
				i += 3
				continue
			}
			inTag = true
			tagStart = i

		case '>':
			if inComment {
				if i >= 2 && content[i-2:i+1] == "-->" {
					inComment = false
				}
				continue
			}
			if !inTag {
				continue
			}
			inTag = false
			tag := content[tagStart : i+1]

			// Doctypes, XML declarations, etc.
			if strings.HasPrefix(tag, "<!") || strings.HasPrefix(tag, "<?") {
				continue
			}

			closing := strings.HasPrefix(tag, "</")
			name := tagName(tag)
			if name == "" {
				continue
			}

			if closing {
				if voidElements[name] {
					continue
				}
				if !popMatching(&stack, name) {
					return false
				}
			} else if !strings.HasSuffix(tag, "/>") && !voidElements[name] {
				stack = append(stack, name)
			}
		}
	}

	if inTag || inComment {
		return false
	}
	for _, name := range stack {
		if !optionalTags[name] {
			return false
		}
	}
	return true
}

// tagName extracts the lower-cased element name from raw tag text: the
// leading "<" or "</" is stripped, the name runs to the first whitespace,
// and any trailing ">" or "/" is dropped.
func tagName(tag string) string {
	inner := strings.TrimPrefix(strings.TrimPrefix(tag, "</"), "<")
	if idx := strings.IndexFunc(inner, isSpace); idx != -1 {
		inner = inner[:idx]
	}
	inner = strings.TrimSuffix(inner, ">")
	inner = strings.TrimSuffix(inner, "/")
	return strings.ToLower(inner)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// popMatching handles a closing tag against the open-element stack.
// A direct match pops one element. A mismatch against an optional element
// pops optional elements until a match is found; a mismatch against a
// non-optional element is a hard failure. A closing tag over an empty
// stack is ignored.
func popMatching(stack *[]string, name string) bool {
	s := *stack
	if len(s) == 0 {
		return true
	}
	top := s[len(s)-1]
	if top == name {
		*stack = s[:len(s)-1]
		return true
	}
	if !optionalTags[top] {
		return false
	}
	for len(s) > 0 {
		top = s[len(s)-1]
		if top == name {
			s = s[:len(s)-1]
			*stack = s
			return true
		}
		if !optionalTags[top] {
			return false
		}
		s = s[:len(s)-1]
	}
	*stack = s
	return true
}

// Stats returns simple counters for HTML content: "tag_count" from a
// single-pass angle-bracket scan, "size_bytes", and "line_count".
func Stats(content string) map[string]int {
	tagCount := 0
	insideTag := false
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '<':
			if !insideTag {
				insideTag = true
				tagCount++
			}
		case '>':
			insideTag = false
		}
	}

	lineCount := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		lineCount++
	}

	return map[string]int{
		"tag_count":  tagCount,
		"size_bytes": len(content),
		"line_count": lineCount,
	}
}

// validateContent enforces the raw-content policy: non-empty, bounded size,
// and no disallowed URI-scheme patterns anywhere in the text.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len(content) > MaxContentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrContentTooLarge, len(content), MaxContentSize)
	}

	lower := strings.ToLower(content)
	for _, pattern := range []string{"javascript:", "data:", "vbscript:"} {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("%w: %q", ErrSuspiciousPattern, pattern)
		}
	}
	return nil
}
