package report

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/yacobolo/cssdts"
)

// Report is a batch result prepared for output
type Report struct {
	Command        string // "generate" or "scan"
	FilesScanned   int
	FilesSkipped   int
	Regenerated    int
	Fresh          int
	Failed         int
	Declarations   []string // Stylesheets whose declaration was written
	Issues         []Issue
	TruncatedCount int
	MaxIssues      int
}

// FromResult converts a batch result. Per-file errors become issues; parse
// errors keep their position and source line. A positive maxIssues caps the
// number of issues kept.
func FromResult(command string, result *cssdts.GenerateResult, maxIssues int) *Report {
	r := &Report{
		Command:      command,
		FilesScanned: result.Stats.FilesScanned,
		FilesSkipped: result.Stats.FilesSkipped,
		Regenerated:  result.Regenerated,
		Fresh:        result.Fresh,
		Failed:       result.Failed,
		MaxIssues:    maxIssues,
	}

	for _, f := range result.Files {
		for _, s := range f.Stylesheets {
			if s.Outcome == cssdts.OutcomeRegenerated {
				r.Declarations = append(r.Declarations, cssdts.RelativePath(s.Path))
			}
		}
		if f.Err != nil {
			r.Issues = append(r.Issues, issueFor(f.Path, f.Err))
		}
	}

	if maxIssues > 0 && len(r.Issues) > maxIssues {
		r.TruncatedCount = len(r.Issues) - maxIssues
		r.Issues = r.Issues[:maxIssues]
	}
	return r
}

// issueFor positions err inside path when it carries a location
func issueFor(path string, err error) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       err.Error(),
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: cssdts.RelativePath(path)},
	}

	var perr *cssdts.ParseError
	if errors.As(err, &perr) {
		issue.Text = perr.Message
		issue.Pos.Line = perr.Line
		issue.Pos.Column = perr.Column
		if line, ok := readLine(path, perr.Line); ok {
			issue.SourceLines = []string{line}
		}
	}
	return issue
}

// readLine returns the 1-based line n of path
func readLine(path string, n int) (string, bool) {
	// #nosec G304 - path is a file the batch just processed
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		if i == n {
			return strings.TrimRight(scanner.Text(), "\r"), true
		}
	}
	return "", false
}

// ErrorCount returns the number of error-severity issues
func (r *Report) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n + r.TruncatedCount
}
