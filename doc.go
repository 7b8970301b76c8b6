// Package md2site turns Markdown documents into validated, sanitized HTML
// pages, with optional minification or pretty-printing.
//
// # Quick Start
//
// Create a service, publish a document:
//
//	svc, err := md2site.NewService()
//	if err != nil {
//	    return err
//	}
//	_, err = svc.Publish(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	}, "public/index.html")
//
// Use Convert to get the rendered page without writing it:
//
//	res, err := svc.Convert(ctx, md2site.Input{Markdown: src})
//
// # Pipeline
//
// Each document moves through these stages:
//
//  1. Content validation (empty, oversized, disallowed URI schemes)
//  2. Frontmatter extraction (YAML block + first-heading title fallback)
//  3. Markdown preprocessing (line normalization, ==highlight== syntax)
//  4. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  5. Optional table-of-contents generation, prepended to the body
//  6. Optional sanitization (script/iframe/object/embed tag stripping)
//  7. Page template rendering
//  8. Output generation: structural validation, metadata injection,
//     minify or pretty-print, re-validation, write, asset copy
//
// The structural validator is a single-pass tag-balance state machine that
// understands HTML5 void elements, optional closing tags, and comments. Every
// page is validated before and after transformation; a page that fails either
// check is never written.
//
// # Concurrency
//
// All pipeline stages are synchronous and reentrant. One Service may be
// shared across goroutines; the generator's output configuration and the
// asset cache are guarded by read/write locks. Each Generate call works from
// its own configuration snapshot, so reconfiguring the generator during an
// in-flight call affects only subsequent calls.
package md2site
