// Package cssdts keeps TypeScript declaration files for CSS Modules fresh
// while a bundler runs.
//
// A Loader is invoked once per file the bundler routes through it. In source
// mode it finds the stylesheets imported by the file's top-level import
// declarations and regenerates each declaration whose stylesheet changed. In
// stylesheet mode it regenerates the declaration for the file itself. File
// content always passes through unchanged.
//
// # Loading
//
//	gen, err := cssdts.NewGenerator(cssdts.GeneratorConfig{})
//	loader := cssdts.New(gen)
//	resp, err := loader.Load(ctx, cssdts.Request{
//		ResourcePath: "/app/src/Button.ts",
//		Content:      src,
//	})
//
// # esbuild
//
// Plugin wires a Loader into an esbuild build:
//
//	api.Build(api.BuildOptions{
//		EntryPoints: []string{"src/main.ts"},
//		Plugins:     []api.Plugin{cssdts.Plugin(loader, cssdts.PluginOptions{})},
//	})
//
// # CLI Tool
//
// cssdts also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssdts/cmd/cssdts@latest
package cssdts

import (
	"github.com/yacobolo/cssdts/internal/dts"
	"github.com/yacobolo/cssdts/internal/freshness"
	"github.com/yacobolo/cssdts/internal/instances"
)

// Generator creates declaration files. See NewGenerator.
type Generator = dts.Generator

// GeneratorConfig configures the built-in declaration generator.
type GeneratorConfig = dts.Config

// NamingConvention selects how class names are exported.
type NamingConvention = dts.NamingConvention

// Outcome reports whether a declaration was regenerated.
type Outcome = freshness.Outcome

const (
	// OutcomeFresh means the declaration was up to date.
	OutcomeFresh = freshness.OutcomeFresh
	// OutcomeRegenerated means the declaration was created and written.
	OutcomeRegenerated = freshness.OutcomeRegenerated
)

type (
	// Cache is the per-loader stylesheet mtime cache.
	Cache = freshness.Cache
	// StatFunc reads file metadata.
	StatFunc = freshness.StatFunc
	// Invalidator is a compiler instance that can be told to re-check a file.
	Invalidator = instances.Invalidator
	// Registry maps instance names to invalidators.
	Registry = instances.Registry
	// Tracker is an in-process Invalidator.
	Tracker = instances.Tracker
)

// NewCache creates an empty timestamp cache.
func NewCache() *Cache { return freshness.NewCache() }

// NewRegistry creates an empty instance registry.
func NewRegistry() *Registry { return instances.NewRegistry() }

// NewTracker creates an empty tracker.
func NewTracker() *Tracker { return instances.NewTracker() }

// NewGenerator creates the built-in declaration generator.
func NewGenerator(config GeneratorConfig) (Generator, error) {
	creator, err := dts.NewCreator(config)
	if err != nil {
		return nil, err
	}
	return creator, nil
}

// ParseNaming validates a naming convention name. Empty means as written.
func ParseNaming(s string) (NamingConvention, error) {
	return dts.ParseNaming(s)
}
