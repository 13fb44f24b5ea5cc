// Package report formats batch results for the terminal and for machines.
package report

// LinterName is the FromLinter value of every issue.
const LinterName = "cssdts"

// Issue represents a single failure in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssdts"
	Text        string   `json:"Text"`        // "unexpected '"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/Button.tsx"
	Line     int    `json:"Line"`     // 0 when the failure has no position
	Column   int    `json:"Column"`   // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)
