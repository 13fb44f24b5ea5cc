package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdts"
)

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Run the loader on one file and print its content unchanged",
	Long: `Run a single loader invocation the way a bundler would. With --type ts
(default) FILE is a source whose stylesheet imports are refreshed; with
--type css FILE is a stylesheet. The file content is written to stdout
unchanged so the command can sit in a pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.String("type", "ts", "Loader type: ts|css")
	f.String("instance-name", "", "Compiler instance to invalidate")
}

func runLoad(cmd *cobra.Command, args []string) error {
	mode, err := cssdts.ParseMode(getStringWithFallback("type", "type", ""))
	if err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	// #nosec G304 - path is the user's argument
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}

	// No compiler runs alongside the CLI; a tracker stands in for one.
	instance := getStringWithFallback("instance-name", "instance-name", "")
	tracker := cssdts.NewTracker()
	if instance != "" {
		loader.Registry().Register(instance, tracker)
		defer loader.Registry().Unregister(instance)
	}

	resp, err := loader.Load(cmd.Context(), cssdts.Request{
		ResourcePath: path,
		Content:      string(content),
		Options:      cssdts.Options{Type: mode, InstanceName: instance},
	})
	if err != nil {
		return err
	}

	for _, s := range resp.Stylesheets {
		cliLogger.Debug(s.Outcome.String(), "path", cssdts.RelativePath(s.Path))
	}
	logInvalidated(instance, tracker)

	_, err = fmt.Fprint(cmd.OutOrStdout(), resp.Content)
	return err
}
