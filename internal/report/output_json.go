package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version      string      `json:"version"`
	Timestamp    string      `json:"timestamp"`
	Command      string      `json:"command"`
	Summary      JSONSummary `json:"summary"`
	Declarations []string    `json:"declarations"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONSummary contains file and declaration counts
type JSONSummary struct {
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
	Regenerated  int `json:"regenerated"`
	Fresh        int `json:"fresh"`
	Failed       int `json:"failed"`
	TotalIssues  int `json:"total_issues"`
	Truncated    int `json:"truncated"`
}

// JSONIssue represents a single failure
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the report as JSON
func WriteJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(report))
}

// buildJSONOutput converts a Report to JSONOutput
func buildJSONOutput(report *Report) JSONOutput {
	issues := make([]JSONIssue, len(report.Issues))
	for i, issue := range report.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	declarations := report.Declarations
	if declarations == nil {
		declarations = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Command:   report.Command,
		Summary: JSONSummary{
			FilesScanned: report.FilesScanned,
			FilesSkipped: report.FilesSkipped,
			Regenerated:  report.Regenerated,
			Fresh:        report.Fresh,
			Failed:       report.Failed,
			TotalIssues:  len(report.Issues) + report.TruncatedCount,
			Truncated:    report.TruncatedCount,
		},
		Declarations: declarations,
		Issues:       issues,
	}
}
