package main

import (
	"log/slog"
	"os"

	"github.com/yacobolo/cssdts/internal/logger"
	"github.com/yacobolo/cssdts/internal/report"
)

// cliLogger is replaced once configuration is loaded.
var cliLogger = logger.New(os.Stderr, logger.Options{})

func logFormat() logger.Format {
	return logger.ParseFormat(getStringWithFallback("log-format", "log-format", "pretty"))
}

func setupLogger() {
	level := slog.LevelInfo
	if getBoolWithFallback("verbose", "verbose", false) {
		level = slog.LevelDebug
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = slog.LevelError
	}

	cliLogger = logger.New(os.Stderr, logger.Options{
		Level:     level,
		Format:    logFormat(),
		UseColors: report.ShouldUseColors(getStringWithFallback("color", "color", "auto")),
	})
}
