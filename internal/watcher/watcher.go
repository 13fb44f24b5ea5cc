// Package watcher reports debounced batches of changed files under a
// directory tree.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// skipDirectories are never watched.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Config configures a Watcher.
type Config struct {
	Root     string
	Debounce time.Duration
	// Ignore reports paths (files or directories) to leave out. Optional.
	Ignore func(path string) bool
}

// Watcher collects fsnotify events and hands them over in batches once
// the tree has been quiet for the debounce period.
type Watcher struct {
	fs     *fsnotify.Watcher
	config Config
	logger *slog.Logger
}

// New creates a watcher and registers every directory under config.Root.
func New(config Config, logger *slog.Logger) (*Watcher, error) {
	if config.Root == "" {
		config.Root = "."
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fsw, config: config, logger: logger}
	for dir := range w.directories(config.Root) {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run delivers sorted, deduplicated batches of changed paths to onChange
// until ctx is done, then closes the watcher. onChange runs on the Run
// goroutine; events arriving meanwhile are batched for the next call.
func (w *Watcher) Run(ctx context.Context, onChange func([]string)) error {
	defer w.fs.Close()

	pending := make(map[string]struct{})
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.track(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
			} else {
				timer.Reset(w.config.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			paths := slices.Sorted(maps.Keys(pending))
			clear(pending)
			onChange(paths)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// track reports whether event names a file worth reporting. New
// directories are added to the watch list instead.
func (w *Watcher) track(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			for dir := range w.directories(event.Name) {
				if err := w.fs.Add(dir); err != nil {
					w.logger.Warn("cannot watch directory", "path", dir, "error", err)
				}
			}
			return false
		}
	}

	return !w.ignored(event.Name)
}

func (w *Watcher) ignored(path string) bool {
	return w.config.Ignore != nil && w.config.Ignore(path)
}

// directories yields root and every directory below it that is not skipped.
func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are left unwatched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && (skipDirectories[d.Name()] || w.ignored(path)) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
