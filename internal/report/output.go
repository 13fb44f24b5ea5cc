package report

import (
	"fmt"
	"io"
)

// OutputFormat selects how a report is written
type OutputFormat string

const (
	// OutputIssues prints issues in golangci-lint format followed by the summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints the summary only
	OutputSummary OutputFormat = "summary"
	// OutputJSON writes the machine-readable report
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, opts Options) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, report); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	case OutputSummary:
		reporter := NewReporter(w, opts)
		reporter.PrintDeclarations(report)
		reporter.PrintSummary(report)
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintDeclarations(report)
		reporter.PrintIssues(report.Issues)
		reporter.PrintSummary(report)
	}
	return nil
}
