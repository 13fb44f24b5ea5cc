package freshness

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/yacobolo/cssdts/internal/dts"
	"go.trai.ch/zerr"
)

// ErrStat is returned when a stylesheet's modification time cannot be read.
var ErrStat = zerr.New("failed to stat stylesheet")

// Outcome describes what Ensure did for a path.
type Outcome uint8

const (
	// OutcomeFresh means the declaration was up to date and nothing was generated.
	OutcomeFresh Outcome = iota
	// OutcomeRegenerated means the declaration was created and written.
	OutcomeRegenerated
)

func (o Outcome) String() string {
	if o == OutcomeRegenerated {
		return "regenerated"
	}
	return "fresh"
}

// StatFunc reads file metadata. os.Stat in production.
type StatFunc func(name string) (fs.FileInfo, error)

// Gate regenerates declaration files for stylesheets whose mtime advanced.
type Gate struct {
	cache     *Cache
	generator dts.Generator
	stat      StatFunc
	logger    *slog.Logger
}

// NewGate creates a gate. A nil cache gets a fresh one, a nil stat uses
// os.Stat and a nil logger discards.
func NewGate(cache *Cache, generator dts.Generator, stat StatFunc, logger *slog.Logger) *Gate {
	if cache == nil {
		cache = NewCache()
	}
	if stat == nil {
		stat = os.Stat
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gate{
		cache:     cache,
		generator: generator,
		stat:      stat,
		logger:    logger,
	}
}

// Cache returns the timestamp cache the gate records into.
func (g *Gate) Cache() *Cache {
	return g.cache
}

// Ensure regenerates the declaration for path if the stylesheet is new or
// changed since the last observation.
//
// The new mtime is recorded before generation starts and is kept if
// generation fails, so a failed stylesheet is retried only after it changes
// again. There is no per-path exclusion around the generator call.
func (g *Gate) Ensure(ctx context.Context, path string) (Outcome, error) {
	info, err := g.stat(path)
	if err != nil {
		return OutcomeFresh, zerr.With(errors.Join(ErrStat, err), "path", path)
	}

	mtime := info.ModTime()
	if !g.cache.Observe(path, mtime) {
		g.logger.Debug("declaration fresh", "path", path, "mtime", mtime)
		return OutcomeFresh, nil
	}

	decl, err := g.generator.Create(ctx, path, dts.CreateOptions{ClearCache: true})
	if err != nil {
		return OutcomeFresh, err
	}
	if err := decl.WriteFile(ctx); err != nil {
		return OutcomeFresh, err
	}
	if w, ok := decl.(interface{ Written() bool }); ok && !w.Written() {
		g.logger.Debug("declaration unchanged on disk", "path", path)
	}

	g.logger.Debug("declaration regenerated", "path", path, "mtime", mtime)
	return OutcomeRegenerated, nil
}
