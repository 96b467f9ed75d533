// Package reporter formats pipeline errors and stylist diagnostics for
// the terminal, and offers a read-only browser over a finished batch of
// them: a source-line-plus-caret excerpt keyed by a diagnostic's span,
// and a tcell/tview screen for paging through a finished batch of them.
// This package never drives execution, only renders what the pipeline
// already decided.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdgonz7/vasm/token"
)

// Severity distinguishes a fatal pipeline error from an advisory
// style diagnostic: red for fatal, magenta for suggestion.
type Severity int

const (
	SeverityError Severity = iota
	SeveritySuggestion
)

// Diagnostic is the reporter's own flattened view of an error or style
// finding, independent of which pipeline stage produced it.
type Diagnostic struct {
	File     string
	Span     token.Span
	Message  string
	Severity Severity
}

// Report writes one diagnostic as "file:line:col: error: message" plus
// a caret-annotated excerpt of the offending line.
func Report(w io.Writer, d Diagnostic, lines []string) {
	label := "error"
	if d.Severity == SeveritySuggestion {
		label = "suggestion"
	}
	fmt.Fprintf(w, "%s:%s: %s: %s\n", d.File, d.Span, label, d.Message)

	lineIdx := d.Span.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return
	}
	line := lines[lineIdx]
	fmt.Fprintf(w, "  %s\n", line)

	indent := d.Span.CharBegin - 1
	if indent < 0 {
		indent = 0
	}
	if indent > len(line) {
		indent = len(line)
	}
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", indent))
}

// ReportAll writes every diagnostic in order, returning the count of
// SeverityError entries so callers can decide on an exit code.
func ReportAll(w io.Writer, diags []Diagnostic, lines []string) int {
	errors := 0
	for _, d := range diags {
		Report(w, d, lines)
		if d.Severity == SeverityError {
			errors++
		}
	}
	return errors
}
