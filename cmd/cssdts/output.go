package main

import (
	"fmt"
	"os"

	"github.com/yacobolo/cssdts/internal/report"
)

// writeReport prints r unless --quiet and turns failures into the exit code.
func writeReport(r *report.Report) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		format := report.DetermineOutputFormat(getStringWithFallback("output-format", "output-format", ""), quiet)
		if err := report.WriteOutput(os.Stdout, r, format, buildReportOptions()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	// Any failed load fails the run
	if r.ErrorCount() > 0 {
		return errIssues
	}
	return nil
}
