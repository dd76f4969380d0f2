// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/freelanceguard/freelance-guard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAssessment outputs a human-readable summary of a validated risk
// assessment.
func (p *Printer) PrintAssessment(assessment *types.Assessment) {
	if assessment == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/10\n", assessment.OverallScore))
	if assessment.Verdict != "" {
		sb.WriteString(fmt.Sprintf("Verdict:  %s\n", assessment.Verdict))
	}
	sb.WriteString("\n")

	if len(assessment.RedFlags) > 0 {
		sb.WriteString("Red Flags:\n")
		count := min(len(assessment.RedFlags), maxItemsToShow)
		for i := 0; i < count; i++ {
			flag := assessment.RedFlags[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", flag.Severity, flag.Type))
			if flag.Evidence != "" {
				sb.WriteString(fmt.Sprintf("    %q\n", flag.Evidence))
			}
		}
		if len(assessment.RedFlags) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(assessment.RedFlags)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(assessment.GreenFlags) > 0 {
		sb.WriteString("Green Flags:\n")
		count := min(len(assessment.GreenFlags), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", assessment.GreenFlags[i]))
		}
		if len(assessment.GreenFlags) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(assessment.GreenFlags)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if assessment.Advice != "" {
		sb.WriteString(fmt.Sprintf("Advice: %s\n", assessment.Advice))
	}

	p.printBox("Client Risk Assessment", strings.TrimRight(sb.String(), "\n"))
}

// PrintRedemption outputs a human-readable summary of a redemption attempt.
func (p *Printer) PrintRedemption(code string, result *types.RedemptionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Code:     %s\n", types.CanonicalCode(code)))
	if result.Valid {
		sb.WriteString(fmt.Sprintf("Discount: %d%%\n", result.Discount))
		if result.UsesRemaining != nil {
			sb.WriteString(fmt.Sprintf("Left:     %d uses\n", *result.UsesRemaining))
		}
	} else {
		sb.WriteString("Status:   rejected\n")
	}
	sb.WriteString(fmt.Sprintf("Message:  %s", result.Message))

	p.printBox("Code Redemption", sb.String())
}
