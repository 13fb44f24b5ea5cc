package cssdts

import (
	"context"
	"io"
	"log/slog"

	"github.com/yacobolo/cssdts/internal/freshness"
	"github.com/yacobolo/cssdts/internal/instances"
	"github.com/yacobolo/cssdts/internal/refscan"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Mode selects what the loader does with a file.
type Mode string

const (
	// ModeStylesheet regenerates the declaration for the file itself.
	ModeStylesheet Mode = "css"
	// ModeSource scans the file for stylesheet imports. The default.
	ModeSource Mode = "ts"
)

// ParseMode validates a mode name. Empty means ModeSource.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeSource:
		return ModeSource, nil
	case ModeStylesheet:
		return ModeStylesheet, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownMode, "parsing loader type"), "type", s)
	}
}

// Options are the per-invocation loader options.
type Options struct {
	Type         Mode   // "css" or "ts" (default)
	InstanceName string // Compiler instance to invalidate when stylesheets are found
}

// Request is one loader invocation.
type Request struct {
	ResourcePath string
	Content      string
	SourceMap    string
	Options      Options
}

// StylesheetResult is the freshness outcome for one stylesheet.
type StylesheetResult struct {
	Path    string
	Outcome Outcome
}

// Response carries the untouched content and what happened to each stylesheet.
type Response struct {
	Content     string
	SourceMap   string
	Stylesheets []StylesheetResult
}

// Regenerated counts the stylesheets whose declaration was written.
func (r Response) Regenerated() int {
	n := 0
	for _, s := range r.Stylesheets {
		if s.Outcome == OutcomeRegenerated {
			n++
		}
	}
	return n
}

// Callback receives the result of Run exactly once.
type Callback func(err error, content, sourceMap string)

// Loader is the entry point a bundler calls for each file.
// It is safe for concurrent use.
type Loader struct {
	gate      *freshness.Gate
	registry  *instances.Registry
	extension string
	logger    *slog.Logger
}

type loaderOptions struct {
	cache     *freshness.Cache
	registry  *instances.Registry
	extension string
	logger    *slog.Logger
	stat      freshness.StatFunc
}

// Option configures a Loader.
type Option func(*loaderOptions)

// WithCache shares a timestamp cache between loaders.
func WithCache(cache *freshness.Cache) Option {
	return func(o *loaderOptions) {
		o.cache = cache
	}
}

// WithRegistry sets the compiler instances InstanceName is looked up in.
func WithRegistry(registry *instances.Registry) Option {
	return func(o *loaderOptions) {
		o.registry = registry
	}
}

// WithExtension overrides the ".css" suffix that marks stylesheet imports.
func WithExtension(ext string) Option {
	return func(o *loaderOptions) {
		o.extension = ext
	}
}

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loaderOptions) {
		o.logger = logger
	}
}

// WithStat replaces os.Stat for mtime lookups.
func WithStat(stat freshness.StatFunc) Option {
	return func(o *loaderOptions) {
		o.stat = stat
	}
}

// New creates a Loader that regenerates declarations with generator.
func New(generator Generator, opts ...Option) *Loader {
	o := loaderOptions{
		extension: refscan.DefaultExtension,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = instances.NewRegistry()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Loader{
		gate:      freshness.NewGate(o.cache, generator, o.stat, o.logger),
		registry:  o.registry,
		extension: o.extension,
		logger:    o.logger,
	}
}

// Registry returns the compiler instances the loader invalidates.
func (l *Loader) Registry() *instances.Registry {
	return l.registry
}

// Cache returns the loader's timestamp cache.
func (l *Loader) Cache() *freshness.Cache {
	return l.gate.Cache()
}

// Load processes one file. On success the response echoes the request's
// content and source map unchanged; any error fails the whole invocation.
// A type other than "css" or "ts" is passed through with no side effects.
func (l *Loader) Load(ctx context.Context, req Request) (Response, error) {
	mode := req.Options.Type
	if mode == "" {
		mode = ModeSource
	}

	var (
		results []StylesheetResult
		err     error
	)
	switch mode {
	case ModeStylesheet:
		results, err = l.loadStylesheet(ctx, req)
	case ModeSource:
		results, err = l.loadSource(ctx, req)
	default:
		l.logger.Debug("unknown loader type, passing through", "path", req.ResourcePath, "type", string(mode))
	}
	if err != nil {
		return Response{}, err
	}

	return Response{
		Content:     req.Content,
		SourceMap:   req.SourceMap,
		Stylesheets: results,
	}, nil
}

// Run calls Load on its own goroutine and reports through callback exactly once.
func (l *Loader) Run(ctx context.Context, req Request, callback Callback) {
	go func() {
		resp, err := l.Load(ctx, req)
		if err != nil {
			callback(err, "", "")
			return
		}
		callback(nil, resp.Content, resp.SourceMap)
	}()
}

func (l *Loader) loadStylesheet(ctx context.Context, req Request) ([]StylesheetResult, error) {
	outcome, err := l.gate.Ensure(ctx, req.ResourcePath)
	if err != nil {
		return nil, err
	}
	return []StylesheetResult{{Path: req.ResourcePath, Outcome: outcome}}, nil
}

func (l *Loader) loadSource(ctx context.Context, req Request) ([]StylesheetResult, error) {
	refs, err := refscan.Scan(req.ResourcePath, []byte(req.Content), l.extension)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}

	l.logger.Debug("stylesheet imports found", "path", req.ResourcePath, "count", len(refs))

	if name := req.Options.InstanceName; name != "" {
		if err := l.registry.Invalidate(name, req.ResourcePath); err != nil {
			return nil, err
		}
	}

	// Siblings of a failed regeneration run to completion.
	results := make([]StylesheetResult, len(refs))
	var g errgroup.Group
	for i, ref := range refs {
		g.Go(func() error {
			outcome, err := l.gate.Ensure(ctx, ref)
			if err != nil {
				return err
			}
			results[i] = StylesheetResult{Path: ref, Outcome: outcome}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
