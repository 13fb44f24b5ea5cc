package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate declarations as files change",
	Long: `Generate once, then watch --root for changes. Changed stylesheets are
regenerated directly; changed sources refresh the stylesheets they import.
Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.String("root", ".", "Directory tree to watch")
	f.Duration("debounce", 0, "Quiet period before changes are processed (default 100ms)")
	f.String("instance-name", "", "Compiler instance to invalidate for changed sources")
	addGenerateFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	initial, err := cssdts.Generate(cmd.Context(), loader, buildGenerateConfig())
	if err != nil {
		return err
	}
	for _, f := range initial.Files {
		logResult(f)
	}
	cliLogger.Info("initial generation", "regenerated", initial.Regenerated, "fresh", initial.Fresh, "failed", initial.Failed)

	config := buildWatchConfig()
	config.OnResult = logResult
	if name := config.InstanceName; name != "" {
		tracker := cssdts.NewTracker()
		loader.Registry().Register(name, tracker)
		defer loader.Registry().Unregister(name)
		config.OnResult = func(r cssdts.FileResult) {
			logResult(r)
			logInvalidated(name, tracker)
		}
	}

	return cssdts.Watch(cmd.Context(), loader, config)
}

// logInvalidated logs the paths tracker holds as pending, then clears it so
// each batch reports only its own invalidations.
func logInvalidated(instance string, tracker *cssdts.Tracker) {
	for _, path := range tracker.Pending() {
		cliLogger.Debug("invalidated", "instance", instance, "path", cssdts.RelativePath(path))
	}
	tracker.Reset()
}

// logResult reports one load: failures at error level, regenerations at info.
func logResult(r cssdts.FileResult) {
	if r.Err != nil {
		logger.LogError(cliLogger.With("path", cssdts.RelativePath(r.Path)), logFormat(), r.Err)
		return
	}
	for _, s := range r.Stylesheets {
		if s.Outcome == cssdts.OutcomeRegenerated {
			cliLogger.Info("regenerated", "stylesheet", cssdts.RelativePath(s.Path))
		}
	}
}
