package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/yacobolo/cssdts/internal/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "watching src", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "stylesheet missing", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "regeneration failed", goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "fresh", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, slog.LevelInfo, false))

			lg.Log(t.Context(), tt.level, tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, slog.LevelDebug, false)).
		With("instance", "app").
		WithGroup("css")

	lg.Debug("regenerated", "path", "src/Button.css", "classes", 3)

	goldie.New(t).Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil, true)).Error("boom")

	assert.Equal(t, "✗ boom\n", buf.String())
}

func TestPrettyHandler_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil, true)).Warn("careful")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "⚠ careful")
}

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New(buf, logger.Options{Level: slog.LevelInfo, Format: logger.FormatJSON})

	lg.Info("generated", "count", 2)

	assert.Contains(t, buf.String(), `"msg":"generated"`)
	assert.Contains(t, buf.String(), `"count":2`)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat("json"))
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat("JSON"))
	assert.Equal(t, logger.FormatPretty, logger.ParseFormat(""))
	assert.Equal(t, logger.FormatPretty, logger.ParseFormat("xml"))
}
