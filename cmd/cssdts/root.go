package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssdts",
	Short: "TypeScript declarations for CSS Modules",
	Long: `Keep a .css.d.ts declaration next to every CSS Modules stylesheet.
Declarations are regenerated only when a stylesheet is new or changed.`,
	// Every command, including the root, loads config and the logger first.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		setupLogger()
		return nil
	},
	// Default behavior: run generate when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.String("color", "auto", "Color output: auto|always|never")
	pf.String("config", defaultConfigPath, "Config file path")
	pf.String("log-format", "pretty", "Log format: pretty|json")
	pf.String("extension", ".css", "Import suffix that marks a stylesheet")
	pf.Int("concurrency", 0, "Files processed at once (0 = GOMAXPROCS)")
	pf.String("naming", "", "Class name convention: as-is|camel-case|camel-case-only|dashes|dashes-only")
	pf.Bool("named-exports", false, "Emit one named export per class")
	pf.String("out-dir", "", "Write declarations under this directory instead of next to stylesheets")
	pf.String("source", ".", "Stylesheet root directory")
	pf.String("output-format", "", "Output format: issues|summary|json")
	pf.Int("max-issues", 0, "Max issues to show (0 = unlimited)")
	pf.Bool("print-lines", true, "Show source lines with issues")
	pf.Bool("print-linter-name", true, "Show (cssdts) suffix on issues")

	// The root command runs generate, so it accepts generate's flags too.
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
