// Package main provides the cssdts CLI for keeping CSS Modules declaration
// files up to date.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/yacobolo/cssdts/internal/logger"
)

// errIssues reports that failures were already printed and the process
// should exit 1 without logging anything further.
var errIssues = errors.New("issues found")

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		if !errors.Is(err, errIssues) {
			logger.LogError(cliLogger, logFormat(), err)
		}
		os.Exit(1)
	}
}
