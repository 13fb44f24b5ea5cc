package cssdts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ErrGlob is returned when an include pattern is malformed.
var ErrGlob = zerr.New("invalid glob pattern")

// DefaultIncludes are the stylesheet globs used when none are configured.
var DefaultIncludes = []string{"**/*.css"}

// GenerateConfig configures a batch regeneration over a stylesheet tree.
type GenerateConfig struct {
	SourceDir   string   // Root the include globs are relative to (default ".")
	Includes    []string // Stylesheet globs (default DefaultIncludes)
	Concurrency int      // Files processed at once (default GOMAXPROCS)
}

// ScanConfig configures a batch source scan.
type ScanConfig struct {
	Root         string   // Directory whose .gitignore applies (default ".")
	Patterns     []string // Source globs, relative to the working directory
	InstanceName string   // Passed to every load
	Concurrency  int
}

// FileResult is the outcome of loading one file.
type FileResult struct {
	Path        string
	Stylesheets []StylesheetResult
	Err         error
}

// GenerateResult summarizes a batch run. Per-file failures are collected
// rather than aborting the batch.
type GenerateResult struct {
	Files       []FileResult
	Stats       ScanStats
	Regenerated int // Declarations written
	Fresh       int // Declarations already up to date
	Failed      int // Files whose load returned an error
}

// Errors returns the per-file failures in discovery order.
func (r *GenerateResult) Errors() []error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Generate regenerates the declaration of every stylesheet under
// config.SourceDir that is new to the loader or changed since it last looked.
func Generate(ctx context.Context, loader *Loader, config GenerateConfig) (*GenerateResult, error) {
	if config.SourceDir == "" {
		config.SourceDir = "."
	}
	if len(config.Includes) == 0 {
		config.Includes = DefaultIncludes
	}

	patterns := make([]string, len(config.Includes))
	for i, include := range config.Includes {
		patterns[i] = filepath.Join(config.SourceDir, include)
	}

	files, stats, err := expandGlobPatternsWithStats(patterns, newFileFilter(config.SourceDir))
	if err != nil {
		return nil, zerr.With(errors.Join(ErrGlob, err), "source", config.SourceDir)
	}

	loader.logger.Debug("stylesheets discovered", "count", len(files), "skipped", stats.FilesSkipped)

	result := run(ctx, files, config.Concurrency, func(ctx context.Context, path string) FileResult {
		abs, err := filepath.Abs(path)
		if err != nil {
			return FileResult{Path: path, Err: err}
		}
		resp, err := loader.Load(ctx, Request{
			ResourcePath: abs,
			Options:      Options{Type: ModeStylesheet},
		})
		return FileResult{Path: abs, Stylesheets: resp.Stylesheets, Err: err}
	})
	result.Stats = stats
	return result, nil
}

// ScanSources runs a source-mode load over every file matching config.Patterns,
// regenerating the declarations of the stylesheets they import.
func ScanSources(ctx context.Context, loader *Loader, config ScanConfig) (*GenerateResult, error) {
	if config.Root == "" {
		config.Root = "."
	}

	files, stats, err := expandGlobPatternsWithStats(config.Patterns, newFileFilter(config.Root))
	if err != nil {
		return nil, errors.Join(ErrGlob, err)
	}

	loader.logger.Debug("sources discovered", "count", len(files), "skipped", stats.FilesSkipped)

	result := run(ctx, files, config.Concurrency, func(ctx context.Context, path string) FileResult {
		abs, err := filepath.Abs(path)
		if err != nil {
			return FileResult{Path: path, Err: err}
		}
		// #nosec G304 - path comes from configured globs
		content, err := os.ReadFile(abs)
		if err != nil {
			return FileResult{Path: abs, Err: err}
		}
		resp, err := loader.Load(ctx, Request{
			ResourcePath: abs,
			Content:      string(content),
			Options:      Options{Type: ModeSource, InstanceName: config.InstanceName},
		})
		return FileResult{Path: abs, Stylesheets: resp.Stylesheets, Err: err}
	})
	result.Stats = stats
	return result, nil
}

// run loads files with bounded concurrency, keeping discovery order
func run(ctx context.Context, files []string, concurrency int, load func(context.Context, string) FileResult) *GenerateResult {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err}
				return nil
			}
			results[i] = load(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return Summarize(results)
}

// Summarize tallies per-file results into a GenerateResult. Hosts that
// drive the Loader themselves, such as an esbuild build, use it to report
// like a batch run.
func Summarize(files []FileResult) *GenerateResult {
	result := &GenerateResult{Files: files}
	for _, f := range files {
		if f.Err != nil {
			result.Failed++
			continue
		}
		for _, s := range f.Stylesheets {
			if s.Outcome == OutcomeRegenerated {
				result.Regenerated++
			} else {
				result.Fresh++
			}
		}
	}
	return result
}
