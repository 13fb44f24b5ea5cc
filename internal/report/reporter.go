package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Options controls terminal output
type Options struct {
	UseColors       bool
	PrintLines      bool // Print the offending source line with a caret
	PrintLinterName bool // Append "(cssdts)" to each issue
	Verbose         bool // List every regenerated declaration
}

// Reporter handles formatting and outputting batch results
type Reporter struct {
	w    io.Writer
	opts Options
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// ShouldUseColors resolves a --color value of "always", "never" or "auto"
func ShouldUseColors(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	// Sort issues by file, then line, then column
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.opts.UseColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.opts.UseColors))

	if r.opts.PrintLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tabbed source.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintDeclarations lists the declarations written, in verbose mode only
func (r *Reporter) PrintDeclarations(report *Report) {
	if !r.opts.Verbose {
		return
	}
	for _, path := range report.Declarations {
		fmt.Fprintf(r.w, "%s %s.d.ts\n", RenderStyle(StyleGreen, "✓", r.opts.UseColors), path)
	}
}

// PrintSummary outputs the counts line and the issue total
func (r *Reporter) PrintSummary(report *Report) {
	fmt.Fprintf(r.w, "%s, %s, %s",
		pluralizeCount(report.FilesScanned, "file", "files"),
		RenderStyle(StyleGreen, fmt.Sprintf("%d regenerated", report.Regenerated), r.opts.UseColors),
		fmt.Sprintf("%d fresh", report.Fresh))
	if report.FilesSkipped > 0 {
		fmt.Fprintf(r.w, " (%d skipped)", report.FilesSkipped)
	}
	fmt.Fprintln(r.w)

	total := len(report.Issues) + report.TruncatedCount
	if total == 0 {
		return
	}

	fmt.Fprintln(r.w)
	summary := pluralizeCount(total, "issue", "issues")
	if report.TruncatedCount > 0 {
		summary = fmt.Sprintf("%s (%s truncated)", summary, pluralizeCount(report.TruncatedCount, "issue", "issues"))
	}
	fmt.Fprintln(r.w, RenderStyle(StyleRed, summary+":", r.opts.UseColors))
	fmt.Fprintf(r.w, "* %s: %d\n", LinterName, total)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
