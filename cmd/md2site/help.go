package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build HTML pages from markdown files or directories.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --include <glob>      Limit discovery to matching files (repeatable)")
	fmt.Fprintln(w, "      --watch               Rebuild on source changes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --minify              Minify generated HTML")
	fmt.Fprintln(w, "      --pretty              Indent generated HTML")
	fmt.Fprintln(w, "      --assets <dir>        Asset directory copied into the output directory")
	fmt.Fprintln(w, "      --template <path>     Page template file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "      --sanitize            Strip script, iframe, object, embed tags")
	fmt.Fprintln(w, "      --no-sanitize         Disable sanitization")
	fmt.Fprintln(w, "      --toc                 Prepend a table of contents")
	fmt.Fprintln(w, "      --toc-level <n>       Max heading depth for TOC (1-6, default: 3)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site metadata:")
	fmt.Fprintln(w, "      --site-title <s>      Site title meta tag")
	fmt.Fprintln(w, "      --site-desc <s>       Site description meta tag")
	fmt.Fprintln(w, "      --site-author <s>     Author meta tag")
	fmt.Fprintln(w, "      --site-url <s>        Base URL meta tag")
	fmt.Fprintln(w, "      --site-date <s>       Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file timing")
	fmt.Fprintln(w, "      --version             Print version and exit")
}
