package cssdts

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yacobolo/cssdts/internal/watcher"
)

// sourceExtensions are the files Watch loads in source mode.
var sourceExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".mts": true, ".cts": true,
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
}

// WatchConfig configures Watch.
type WatchConfig struct {
	Root         string        // Directory tree to watch (default ".")
	InstanceName string        // Passed to every source-mode load
	Debounce     time.Duration // Quiet period before a batch is loaded
	OnResult     func(FileResult)
}

// Watch loads every stylesheet and source file under config.Root as it
// changes, until ctx is done. Stylesheets load in stylesheet mode, sources
// in source mode. A removed stylesheet is forgotten by the cache so that
// recreating it regenerates its declaration. Load failures are reported
// through OnResult and do not stop the watch.
func Watch(ctx context.Context, loader *Loader, config WatchConfig) error {
	if config.Root == "" {
		config.Root = "."
	}
	root, err := filepath.Abs(config.Root)
	if err != nil {
		return err
	}

	filter := newFileFilter(root)
	w, err := watcher.New(watcher.Config{
		Root:     root,
		Debounce: config.Debounce,
		Ignore:   filter.shouldSkipFile,
	}, loader.logger)
	if err != nil {
		return err
	}

	loader.logger.Info("watching", "root", root)

	return w.Run(ctx, func(paths []string) {
		for _, path := range paths {
			result, ok := loader.loadChanged(ctx, path, config.InstanceName)
			if ok && config.OnResult != nil {
				config.OnResult(result)
			}
		}
	})
}

// loadChanged loads one changed path. ok is false for paths that are
// neither stylesheets nor sources, and for removed files.
func (l *Loader) loadChanged(ctx context.Context, path, instanceName string) (FileResult, bool) {
	isStylesheet := strings.HasSuffix(path, l.extension)
	if !isStylesheet && !sourceExtensions[filepath.Ext(path)] {
		return FileResult{}, false
	}

	// #nosec G304 - path comes from the watched tree
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if isStylesheet {
			l.gate.Cache().Forget(path)
			l.logger.Debug("stylesheet removed", "path", path)
		}
		return FileResult{}, false
	}
	if err != nil {
		return FileResult{Path: path, Err: err}, true
	}

	req := Request{ResourcePath: path, Options: Options{Type: ModeStylesheet}}
	if !isStylesheet {
		req.Content = string(content)
		req.Options = Options{Type: ModeSource, InstanceName: instanceName}
	}

	resp, err := l.Load(ctx, req)
	return FileResult{Path: path, Stylesheets: resp.Stylesheets, Err: err}, true
}
