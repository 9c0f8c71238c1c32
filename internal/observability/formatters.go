// Package observability provides formatted terminal output for the chat CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/bhanuprakash-18/zeppy/internal/rendering"
	"github.com/bhanuprakash-18/zeppy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer renders responses for the terminal.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintResponse renders one assistant response: paragraphs first, then any
// job cards, FAQ block or detail payload, then the options menu.
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) PrintResponse(resp types.Response) {
	for _, paragraph := range resp.Paragraphs {
		fmt.Fprintln(p.out, paragraph)
	}

	if resp.FAQ != nil {
		fmt.Fprintf(p.out, "\nQ: %s\n", resp.FAQ.Question)
		for _, line := range rendering.Flatten(resp.FAQ.Answer) {
			fmt.Fprintln(p.out, line)
		}
	}

	for _, ranked := range resp.Jobs {
		p.printJobCard(ranked)
	}
	if resp.Remaining > 0 {
		fmt.Fprintf(p.out, "... %d more available - type /more to see them.\n", resp.Remaining)
	}

	if resp.Detail != nil {
		p.printJobDetail(resp.Detail)
	}

	if len(resp.Options) > 0 {
		fmt.Fprintln(p.out)
		for i, option := range resp.Options {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, option.Label)
		}
	}
}

func (p *Printer) printJobCard(ranked types.RankedJob) {
	job := ranked.Job
	content := fmt.Sprintf("%s\nLocation: %s\nType:     %s\n(details: /job %d)",
		job.Title, job.Location, job.Type, job.ID)
	p.printBox(fmt.Sprintf("JOB #%d", job.ID), content)
}

func (p *Printer) printJobDetail(detail *types.JobDetail) {
	job := detail.Job

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Location:   %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Department: %s\n", job.Department))
	sb.WriteString(fmt.Sprintf("Type:       %s\n", job.Type))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n\n", job.Salary))
	sb.WriteString(job.Description + "\n\nRequirements:\n")
	for _, req := range job.Requirements {
		sb.WriteString("  • " + req + "\n")
	}
	sb.WriteString("\nWhat we offer:\n")
	for _, item := range detail.Offer {
		sb.WriteString("  • " + item + "\n")
	}
	sb.WriteString("\nHow to apply:\n")
	for i, step := range detail.ProcessSteps {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}
	sb.WriteString("\nPortal: " + detail.PortalURL)

	p.printBox(job.Title, sb.String())
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
