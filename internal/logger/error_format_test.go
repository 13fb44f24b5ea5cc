package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssdts/internal/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "plain error",
			err:          errors.New("disk full"),
			wantMessages: []string{"disk full"},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "reading stylesheet"), "regenerating"),
			wantMessages: []string{"regenerating", "reading stylesheet", "root cause"},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var got []string
			for _, e := range entries {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.wantMessages, got)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.New("unknown instance"), "instance", "app")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 1)
	assert.Equal(t, "unknown instance", entries[0].Message)
	assert.Equal(t, map[string]any{"instance": "app"}, entries[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}, {Message: "root"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "stat failed", Metadata: map[string]any{"path": "a.css", "instance": "app"}},
			},
			want: "Error: stat failed\n       instance: app\n       path: a.css",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestLogError(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil, false))

	logger.LogError(lg, logger.FormatPretty, zerr.Wrap(errors.New("no such file"), "reading config"))

	assert.Equal(t, "✗ Error: reading config\n\n  Caused by:\n    → no such file\n", buf.String())

	buf.Reset()
	logger.LogError(lg, logger.FormatPretty, nil)
	assert.Empty(t, buf.String())
}
