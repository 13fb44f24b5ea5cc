package report

import (
	"github.com/evanw/esbuild/pkg/api"
)

// AddBuildErrors appends esbuild errors as issues. Errors raised by the
// cssdts plugin are skipped; the loader results already carry them.
func (r *Report) AddBuildErrors(messages []api.Message, pluginName string) {
	for _, msg := range messages {
		if msg.PluginName == pluginName {
			continue
		}

		issue := Issue{
			FromLinter: "esbuild",
			Text:       msg.Text,
			Severity:   SeverityError,
		}
		if loc := msg.Location; loc != nil {
			issue.Pos = IssuePos{Filename: loc.File, Line: loc.Line, Column: loc.Column + 1}
			if loc.LineText != "" {
				issue.SourceLines = []string{loc.LineText}
			}
		}
		r.Issues = append(r.Issues, issue)
	}
}
