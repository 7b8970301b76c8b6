package md2site

import (
	"html"
	"strings"
	"unicode"
)

// BuildTOC walks a heading event stream into a nested navigation list.
// Headings deeper than maxLevel are skipped. The returned block is
// self-contained and not yet inserted into any document.
//
// Slugs are derived from the heading text with no collision de-duplication;
// duplicate headings produce duplicate anchors. Accepted limitation.
func BuildTOC(events []HeadingEvent, maxLevel int) string {
	entries := collectEntries(events, maxLevel)

	var toc strings.Builder
	toc.WriteString("<nav class=\"toc\" aria-label=\"Table of Contents\">\n<ul>\n")
	writeEntries(&toc, entries)
	toc.WriteString("</ul>\n</nav>")
	return toc.String()
}

// tocEntry is one heading destined for the navigation list. Transient:
// produced and consumed during TOC building only.
type tocEntry struct {
	text  string
	level int
	id    string
}

// collectEntries folds start/text/end events into entries. Text between a
// start and its end accumulates; the entry is emitted on the end event.
func collectEntries(events []HeadingEvent, maxLevel int) []tocEntry {
	var entries []tocEntry
	var current strings.Builder
	level := 0

	for _, ev := range events {
		switch ev.Kind {
		case HeadingStart:
			current.Reset()
			level = ev.Level
		case HeadingText:
			current.WriteString(ev.Text)
		case HeadingEnd:
			if level == 0 {
				continue
			}
			if level <= maxLevel {
				entries = append(entries, tocEntry{
					text:  current.String(),
					level: level,
					id:    Slugify(current.String()),
				})
			}
			level = 0
		}
	}
	return entries
}

// writeEntries emits list items in event order, opening a nested list each
// time an entry's level exceeds the current depth and closing lists when it
// is shallower, then closes whatever lists remain open.
func writeEntries(toc *strings.Builder, entries []tocEntry) {
	depth := 1

	for _, entry := range entries {
		for entry.level > depth {
			toc.WriteString("<ul>\n")
			depth++
		}
		for entry.level < depth {
			toc.WriteString("</ul>\n")
			depth--
		}

		text := html.EscapeString(entry.text)
		toc.WriteString("<li><a href=\"#")
		toc.WriteString(entry.id)
		toc.WriteString("\" aria-label=\"")
		toc.WriteString(text)
		toc.WriteString("\">")
		toc.WriteString(text)
		toc.WriteString("</a></li>\n")
	}

	for depth > 1 {
		toc.WriteString("</ul>\n")
		depth--
	}
}

// Slugify normalizes heading text into a URL-safe anchor: lower-cased,
// whitespace/hyphen/underscore mapped to '-', every other non-[a-z0-9]
// character dropped.
func Slugify(text string) string {
	var slug strings.Builder
	for _, c := range strings.ToLower(text) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			slug.WriteRune(c)
		case unicode.IsSpace(c) || c == '-' || c == '_':
			slug.WriteByte('-')
		}
	}
	return slug.String()
}
