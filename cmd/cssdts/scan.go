package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Regenerate declarations for stylesheets imported by source files",
	Long: `Read TypeScript and JavaScript sources, find the stylesheets their
top-level import declarations name and regenerate each declaration
whose stylesheet changed.`,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "Source file patterns to scan")
	f.String("instance-name", "", "Compiler instance to invalidate for each source that imports a stylesheet")
}

func runScan(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	config := buildScanConfig()
	var tracker *cssdts.Tracker
	if config.InstanceName != "" {
		tracker = cssdts.NewTracker()
		loader.Registry().Register(config.InstanceName, tracker)
	}

	result, err := cssdts.ScanSources(cmd.Context(), loader, config)
	if err != nil {
		return err
	}

	if tracker != nil {
		logInvalidated(config.InstanceName, tracker)
		loader.Registry().Unregister(config.InstanceName)
	}

	maxIssues := getIntWithFallback("max-issues", "max-issues", 0)
	return writeReport(report.FromResult("scan", result, maxIssues))
}
