package cssdts

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// PluginName is reported by esbuild for messages from the plugin.
const PluginName = "cssdts"

const (
	DefaultSourceFilter     = `\.(ts|tsx|js|jsx|mts|cts)$`
	DefaultStylesheetFilter = `\.css$`
)

// PluginOptions configures Plugin.
type PluginOptions struct {
	SourceFilter     string // Paths loaded in source mode (default DefaultSourceFilter)
	StylesheetFilter string // Paths loaded in stylesheet mode (default DefaultStylesheetFilter)
	InstanceName     string // Passed to every source-mode load
	// OnResult, when set, is called after every load, including failed ones.
	// esbuild runs loads concurrently, so it must be safe for concurrent use.
	OnResult func(FileResult)
}

// sourceLoaders maps file extensions to the esbuild loader for their unchanged contents
var sourceLoaders = map[string]api.Loader{
	".ts":  api.LoaderTS,
	".mts": api.LoaderTS,
	".cts": api.LoaderTS,
	".tsx": api.LoaderTSX,
	".js":  api.LoaderJS,
	".mjs": api.LoaderJS,
	".cjs": api.LoaderJS,
	".jsx": api.LoaderJSX,
	".css": api.LoaderCSS,
}

// loaderFor picks the loader esbuild would have used for path
func loaderFor(path string) (api.Loader, bool) {
	if strings.HasSuffix(path, ".module.css") {
		return api.LoaderLocalCSS, true
	}
	loader, ok := sourceLoaders[filepath.Ext(path)]
	return loader, ok
}

// Plugin returns an esbuild plugin that runs loader on every matching file.
// Contents are handed back unchanged; stylesheets imported by a source file
// are added to esbuild's watch list.
func Plugin(loader *Loader, opts PluginOptions) api.Plugin {
	if opts.SourceFilter == "" {
		opts.SourceFilter = DefaultSourceFilter
	}
	if opts.StylesheetFilter == "" {
		opts.StylesheetFilter = DefaultStylesheetFilter
	}

	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: opts.StylesheetFilter, Namespace: "file"},
				onLoad(loader, Options{Type: ModeStylesheet}, opts.OnResult))
			build.OnLoad(api.OnLoadOptions{Filter: opts.SourceFilter, Namespace: "file"},
				onLoad(loader, Options{Type: ModeSource, InstanceName: opts.InstanceName}, opts.OnResult))
		},
	}
}

func onLoad(loader *Loader, options Options, report func(FileResult)) func(api.OnLoadArgs) (api.OnLoadResult, error) {
	return func(args api.OnLoadArgs) (api.OnLoadResult, error) {
		esbuildLoader, ok := loaderFor(args.Path)
		if !ok {
			return api.OnLoadResult{}, nil
		}

		// #nosec G304 - path comes from esbuild's resolver
		content, err := os.ReadFile(args.Path)
		if err != nil {
			return api.OnLoadResult{}, err
		}

		resp, err := loader.Load(context.Background(), Request{
			ResourcePath: args.Path,
			Content:      string(content),
			Options:      options,
		})
		if report != nil {
			report(FileResult{Path: args.Path, Stylesheets: resp.Stylesheets, Err: err})
		}
		if err != nil {
			return api.OnLoadResult{}, err
		}

		var watch []string
		if options.Type == ModeSource {
			for _, s := range resp.Stylesheets {
				watch = append(watch, s.Path)
			}
		}

		return api.OnLoadResult{
			PluginName: PluginName,
			Contents:   &resp.Content,
			Loader:     esbuildLoader,
			WatchFiles: watch,
		}, nil
	}
}
