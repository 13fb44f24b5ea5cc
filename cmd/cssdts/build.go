package main

import (
	"errors"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/report"
)

var errNoEntryPoints = errors.New("no entry points: set --entry or build.entry")

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Bundle with esbuild, regenerating declarations as files load",
	Long: `Run an esbuild build with the cssdts plugin installed. Every source
and stylesheet esbuild loads passes through the loader, so declarations
are refreshed as part of the build.`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("entry", nil, "Entry points")
	f.String("outdir", "dist", "Output directory")
	f.Bool("minify", false, "Minify output")
	f.String("instance-name", "", "Compiler instance name reported to the loader")
}

func runBuild(_ *cobra.Command, _ []string) error {
	entries := getStringsWithFallback("entry", "build.entry", nil)
	if len(entries) == 0 {
		return errNoEntryPoints
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}

	instance := getStringWithFallback("instance-name", "instance-name", "")
	if instance != "" {
		loader.Registry().Register(instance, cssdts.NewTracker())
	}

	var (
		mu    sync.Mutex
		files []cssdts.FileResult
	)
	plugin := cssdts.Plugin(loader, cssdts.PluginOptions{
		InstanceName: instance,
		OnResult: func(r cssdts.FileResult) {
			mu.Lock()
			defer mu.Unlock()
			files = append(files, r)
		},
	})

	minify := getBoolWithFallback("minify", "build.minify", false)
	result := api.Build(api.BuildOptions{
		EntryPoints:       entries,
		Bundle:            true,
		Outdir:            getStringWithFallback("outdir", "build.outdir", "dist"),
		Write:             true,
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		LogLevel:          api.LogLevelSilent,
		Plugins:           []api.Plugin{plugin},
	})

	summary := cssdts.Summarize(files)
	summary.Stats = cssdts.ScanStats{FilesDiscovered: len(files), FilesScanned: len(files)}

	r := report.FromResult("build", summary, getIntWithFallback("max-issues", "max-issues", 0))
	r.AddBuildErrors(result.Errors, cssdts.PluginName)

	cliLogger.Debug("build finished", "outputs", len(result.OutputFiles), "warnings", len(result.Warnings))
	return writeReport(r)
}
