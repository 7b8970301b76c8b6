package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrBuildFailed  = errors.New("build finished with errors")
)

// buildParams is the merged flag and config view one build runs with.
type buildParams struct {
	inputs    []string
	outputDir string
	include   []string
	workers   int

	minify   bool
	pretty   bool
	assets   string
	template string
	metadata map[string]string

	sanitize bool
	toc      bool
	tocLevel int

	quiet   bool
	verbose bool
	watch   bool
}

// BuildResult holds the outcome of a single file build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run executes the build command. It loads configuration, merges flags
// over it, discovers inputs, and builds them through a worker pool.
func run(args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args[1:])
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return nil
	}

	if flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return err
		}
		env.Config = cfg
	}

	params, err := mergeParams(flags, positional, env)
	if err != nil {
		return err
	}

	newService, err := serviceFactory(params, env)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if params.watch {
		return runWatch(ctx, params, newService, env)
	}
	return runBuild(ctx, params, newService, env)
}

// mergeParams folds flags over the loaded config; flags win.
func mergeParams(flags *buildFlags, positional []string, env *Environment) (*buildParams, error) {
	cfg := env.Config

	p := &buildParams{
		inputs:    positional,
		outputDir: flags.output.output,
		include:   flags.include,
		workers:   flags.workers,
		minify:    flags.output.minify || cfg.Output.Minify,
		pretty:    flags.output.pretty || cfg.Output.PrettyPrint,
		assets:    flags.output.assets,
		template:  flags.output.template,
		sanitize:  flags.processor.sanitize || cfg.Processor.Sanitize,
		toc:       flags.processor.toc || cfg.Processor.TOC,
		tocLevel:  flags.processor.tocLevel,
		quiet:     flags.common.quiet,
		verbose:   flags.common.verbose,
		watch:     flags.watch,
	}

	if flags.processor.noSanitize {
		p.sanitize = false
	}
	if len(p.inputs) == 0 && cfg.Input.Dir != "" {
		p.inputs = []string{cfg.Input.Dir}
	}
	if len(p.inputs) == 0 {
		return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInputs(nil))
	}
	if len(p.include) == 0 {
		p.include = cfg.Input.Include
	}
	if p.outputDir == "" {
		p.outputDir = cfg.Output.Dir
	}
	if p.assets == "" {
		p.assets = cfg.Assets.Dir
	}
	if p.template == "" {
		p.template = cfg.Template.Path
	}
	if p.tocLevel == 0 {
		p.tocLevel = cfg.Processor.TOCMaxLevel
	}
	if p.tocLevel == 0 {
		p.tocLevel = md2site.DefaultTOCLevel
	}

	if err := validateWorkers(p.workers); err != nil {
		return nil, err
	}

	metadata, err := siteMetadata(flags.site, cfg.Site, env.Now())
	if err != nil {
		return nil, err
	}
	p.metadata = metadata

	return p, nil
}

// siteMetadata builds the meta tag set from flags and config; flag values
// win per key. Dates support "auto" and "auto:FORMAT".
func siteMetadata(flags siteFlags, site config.SiteConfig, now time.Time) (map[string]string, error) {
	pick := func(flagVal, cfgVal string) string {
		if flagVal != "" {
			return flagVal
		}
		return cfgVal
	}

	metadata := make(map[string]string, 5)
	if v := pick(flags.title, site.Title); v != "" {
		metadata["site"] = v
	}
	if v := pick(flags.description, site.Description); v != "" {
		metadata["description"] = v
	}
	if v := pick(flags.author, site.Author); v != "" {
		metadata["author"] = v
	}
	if v := pick(flags.baseURL, site.BaseURL); v != "" {
		metadata["url"] = v
	}
	if v := pick(flags.date, site.Date); v != "" {
		resolved, err := dateutil.ResolveDate(v, now)
		if err != nil {
			return nil, err
		}
		metadata["date"] = resolved
	}
	return metadata, nil
}

// serviceFactory returns a constructor for per-worker services. Building
// one up front validates the generator and template configuration before
// any worker starts.
func serviceFactory(p *buildParams, env *Environment) (func() (*md2site.Service, error), error) {
	factory := func() (*md2site.Service, error) {
		genOpts := []md2site.GeneratorOption{
			md2site.WithMinify(p.minify),
			md2site.WithPrettyPrint(p.pretty),
			md2site.WithMetadata(p.metadata),
		}
		if p.assets != "" {
			genOpts = append(genOpts, md2site.WithAssetDir(p.assets))
		}
		gen, err := md2site.NewHTMLGenerator(genOpts...)
		if err != nil {
			if errors.Is(err, md2site.ErrAssetDir) {
				return nil, fmt.Errorf("%w%s", err, hints.ForAssetDirectory(p.assets))
			}
			return nil, err
		}

		svcOpts := []md2site.ServiceOption{
			md2site.WithGenerator(gen),
			md2site.WithProcessorConfig(md2site.ProcessorConfig{
				Sanitize:    p.sanitize,
				TOC:         p.toc,
				TOCMaxLevel: p.tocLevel,
			}),
		}
		if p.template != "" {
			renderer, err := md2site.NewTemplateRendererFromFile(p.template)
			if err != nil {
				return nil, err
			}
			svcOpts = append(svcOpts, md2site.WithRenderer(renderer))
		}
		return md2site.NewService(svcOpts...)
	}

	if _, err := factory(); err != nil {
		return nil, err
	}
	return factory, nil
}

// runBuild discovers inputs, builds them, and reports the outcome.
func runBuild(ctx context.Context, p *buildParams, newService func() (*md2site.Service, error), env *Environment) error {
	var files []FileToBuild
	for _, input := range p.inputs {
		found, err := discoverFiles(input, p.outputDir, p.include)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInputs(p.include))
	}

	results := buildBatch(ctx, p, newService, files)
	return reportResults(results, p, env)
}

// buildBatch processes files concurrently, one service per worker.
func buildBatch(ctx context.Context, p *buildParams, newService func() (*md2site.Service, error), files []FileToBuild) []BuildResult {
	concurrency := resolveWorkers(p.workers)
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]BuildResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc, err := newService()
			if err != nil {
				for idx := range jobs {
					results[idx] = BuildResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = buildFile(ctx, svc, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildFile processes a single file and returns the result.
func buildFile(ctx context.Context, svc *md2site.Service, f FileToBuild) BuildResult {
	start := time.Now()
	result := BuildResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	_, err = svc.Publish(ctx, md2site.Input{Markdown: string(content)}, f.OutputPath)
	result.Err = err
	result.Duration = time.Since(start)
	return result
}

// reportResults prints per-file outcomes and returns an error when any
// file failed.
func reportResults(results []BuildResult, p *buildParams, env *Environment) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "error: %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if p.verbose {
			fmt.Fprintf(env.Stdout, "built %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else if !p.quiet {
			fmt.Fprintf(env.Stdout, "built %s\n", r.OutputPath)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed", ErrBuildFailed, failed, len(results))
	}
	if !p.quiet {
		fmt.Fprintf(env.Stdout, "%d files built\n", len(results))
	}
	return nil
}

// resolveWorkers determines the pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
