package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdts"
	"github.com/yacobolo/cssdts/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Regenerate declarations for changed stylesheets",
	Long: `Find stylesheets under --source and write a .d.ts declaration for
each one. Files ignored by .gitignore, node_modules and existing
declarations are skipped.`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("include", nil, "Glob patterns for stylesheets, relative to --source")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	result, err := cssdts.Generate(cmd.Context(), loader, buildGenerateConfig())
	if err != nil {
		return err
	}

	maxIssues := getIntWithFallback("max-issues", "max-issues", 0)
	return writeReport(report.FromResult("generate", result, maxIssues))
}
