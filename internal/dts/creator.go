// Package dts generates TypeScript declaration files for CSS modules.
package dts

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/zerr"
)

const (
	defaultCacheSize = 256
	dirPerm          = 0o755
	filePerm         = 0o644
)

var _ Generator = (*Creator)(nil)

// cacheEntry remembers the tokens of one stylesheet revision
type cacheEntry struct {
	sum    uint64
	tokens []string
}

// Creator parses stylesheets and prepares their declaration files.
// It is safe for concurrent use.
type Creator struct {
	config Config
	cache  *lru.Cache[string, cacheEntry]
}

// NewCreator creates a Creator with the given configuration
func NewCreator(config Config) (*Creator, error) {
	size := config.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	if config.Naming == "" {
		config.Naming = NamingAsIs
	}
	return &Creator{config: config, cache: cache}, nil
}

// Create reads and tokenizes the stylesheet at path and renders its declaration
func (c *Creator) Create(ctx context.Context, path string, opts CreateOptions) (Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := opts.InitialContents
	if content == nil {
		// #nosec G304 - path comes from the bundler or configured globs
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, wrapPath(ErrRead, err, path)
		}
		content = data
	}

	if opts.ClearCache {
		c.cache.Remove(path)
	}

	tokens, err := c.tokens(path, content)
	if err != nil {
		return nil, err
	}

	outputPath, err := c.outputPath(path)
	if err != nil {
		return nil, err
	}

	names := c.config.Naming.Apply(tokens)
	return &Result{
		SourcePath: path,
		OutputPath: outputPath,
		Tokens:     names,
		contents:   render(names, c.config.NamedExports, c.config.EOL),
	}, nil
}

// tokens returns cached tokens when the content hash is unchanged
func (c *Creator) tokens(path string, content []byte) ([]string, error) {
	sum := xxhash.Sum64(content)
	if entry, ok := c.cache.Get(path); ok && entry.sum == sum {
		return entry.tokens, nil
	}

	tokens, err := ParseTokens(string(content))
	if err != nil {
		return nil, wrapPath(ErrParse, err, path)
	}

	c.cache.Add(path, cacheEntry{sum: sum, tokens: tokens})
	return tokens, nil
}

// outputPath places the declaration next to the stylesheet, or mirrors the
// stylesheet's position under SearchDir into OutDir
func (c *Creator) outputPath(path string) (string, error) {
	if c.config.OutDir == "" {
		return path + ".d.ts", nil
	}

	rel, err := filepath.Rel(c.config.SearchDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(zerr.Wrap(ErrOutsideSearchDir, "placing declaration"), "path", path), "search_dir", c.config.SearchDir)
	}

	return filepath.Join(c.config.OutDir, rel) + ".d.ts", nil
}

// Result is a rendered declaration file
type Result struct {
	SourcePath string   // The stylesheet
	OutputPath string   // Where WriteFile puts the declaration
	Tokens     []string // Exported names, after the naming convention
	contents   string
	written    bool
}

// Contents returns the rendered declaration source
func (r *Result) Contents() string {
	return r.contents
}

// Written reports whether the last WriteFile call changed the file on disk
func (r *Result) Written() bool {
	return r.written
}

// WriteFile writes the declaration to OutputPath. Files that already hold
// identical contents are left untouched so watchers don't see a change.
func (r *Result) WriteFile(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.written = false
	// #nosec G304 - OutputPath is derived from the stylesheet path
	if existing, err := os.ReadFile(r.OutputPath); err == nil &&
		xxhash.Sum64(existing) == xxhash.Sum64String(r.contents) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(r.OutputPath), dirPerm); err != nil {
		return wrapPath(ErrWrite, err, r.OutputPath)
	}
	if err := os.WriteFile(r.OutputPath, []byte(r.contents), filePerm); err != nil {
		return wrapPath(ErrWrite, err, r.OutputPath)
	}

	r.written = true
	return nil
}
