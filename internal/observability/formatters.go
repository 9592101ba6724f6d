// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxLinesToShow is the default number of lines to display per section
	maxLinesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreboard outputs a human-readable summary of the finalized scoreboard.
func (p *Printer) PrintScoreboard(board *types.Scoreboard) {
	if board == nil {
		return
	}

	var sb strings.Builder
	for _, entry := range board.Entries {
		sb.WriteString(fmt.Sprintf("%-40s %.2f", truncateName(entry.FileName, 40), entry.RelevanceScore))
		if entry.Status == types.StatusFailed {
			sb.WriteString("  (failed)")
		}
		sb.WriteString("\n")
	}

	failures := board.Failures()
	sb.WriteString(fmt.Sprintf("\n%d scored, %d failed", len(board.Entries)-len(failures), len(failures)))

	p.printBox("Scoreboard", sb.String())
}

// PrintStructuredResume outputs a per-section summary of a classified resume.
func (p *Printer) PrintStructuredResume(fileName string, resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	if resume.IsEmpty() {
		sb.WriteString("(no recognized sections)")
	}
	for _, label := range resume.Order {
		lines := resume.Lines(label)
		sb.WriteString(fmt.Sprintf("%s (%d lines)\n", label, len(lines)))
		count := min(len(lines), maxLinesToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", lines[i]))
		}
		if len(lines) > maxLinesToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-maxLinesToShow))
		}
	}

	p.printBox(fileName, strings.TrimRight(sb.String(), "\n"))
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-3] + "..."
}
