package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigPath + " config file",
	Long:  `Create a ` + defaultConfigPath + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created "+defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssdts configuration
# Docs: https://github.com/yacobolo/cssdts

# Shared settings
verbose: false
color: auto                # auto | always | never
log-format: pretty         # pretty | json
extension: .css            # import suffix that marks a stylesheet
concurrency: 0             # 0 = GOMAXPROCS
instance-name: ""          # compiler instance invalidated by source loads
output-format: issues      # issues | summary | json
max-issues: 0              # 0 = unlimited
print-lines: true
print-linter-name: true

# Declaration generation
generate:
  source: .
  include:
    - "**/*.css"
  out-dir: ""              # empty = next to each stylesheet
  naming: as-is            # as-is | camel-case | camel-case-only | dashes | dashes-only
  named-exports: false

# Source scanning
scan:
  paths:
    - "src/**/*.{ts,tsx,mts,cts,js,jsx}"

# esbuild
build:
  entry:
    - src/main.ts
  outdir: dist
  minify: false

# File watching
watch:
  root: .
  debounce: 100ms
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
