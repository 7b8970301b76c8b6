package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds site-wide metadata flags.
type siteFlags struct {
	title       string
	description string
	author      string
	baseURL     string
	date        string
}

// processorFlags holds content processing flags.
type processorFlags struct {
	sanitize   bool
	noSanitize bool
	toc        bool
	tocLevel   int
}

// outputFlags holds output destination and formatting flags.
type outputFlags struct {
	output   string
	minify   bool
	pretty   bool
	assets   string
	template string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	site      siteFlags
	processor processorFlags
	output    outputFlags
	include   []string
	workers   int
	watch     bool
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addSiteFlags adds site metadata flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.title, "site-title", "", "site title injected into page heads")
	fs.StringVar(&f.description, "site-desc", "", "site description meta tag")
	fs.StringVar(&f.author, "site-author", "", "author meta tag")
	fs.StringVar(&f.baseURL, "site-url", "", "site base URL meta tag")
	fs.StringVar(&f.date, "site-date", "", "build date (\"auto\" = today)")
}

// addProcessorFlags adds content processing flags to a FlagSet.
func addProcessorFlags(fs *flag.FlagSet, f *processorFlags) {
	fs.BoolVar(&f.sanitize, "sanitize", false, "strip script, iframe, object, embed tags")
	fs.BoolVar(&f.noSanitize, "no-sanitize", false, "disable sanitization")
	fs.BoolVar(&f.toc, "toc", false, "prepend a table of contents")
	fs.IntVar(&f.tocLevel, "toc-level", 0, "max heading depth for TOC (1-6, default: 3)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.minify, "minify", false, "minify generated HTML")
	fs.BoolVar(&f.pretty, "pretty", false, "indent generated HTML")
	fs.StringVar(&f.assets, "assets", "", "asset directory copied into the output directory")
	fs.StringVar(&f.template, "template", "", "page template file")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringSliceVar(&f.include, "include", nil, "glob patterns limiting discovered files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "rebuild on source changes")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addProcessorFlags(fs, &f.processor)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
