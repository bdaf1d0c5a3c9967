package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
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

// PrintContact outputs a human-readable summary of the contact profile.
func (p *Printer) PrintContact(contact *types.ContactProfile) {
	if contact == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Emails:   %s\n", orNone(contact.Emails)))
	sb.WriteString(fmt.Sprintf("Phones:   %s\n", orNone(contact.Phones)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orNone(contact.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:   %s", orNone(contact.GitHub)))

	p.printBox("CONTACT", sb.String())
}

// PrintSkills outputs the taxonomy matches and free phrases found.
func (p *Printer) PrintSkills(skills *types.SkillProfile) {
	if skills == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Taxonomy matches: %d\n", len(skills.Matches)))
	count := min(len(skills.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s (%s)\n", skills.Matches[i].Name, skills.Matches[i].Category))
	}
	if len(skills.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills.Matches)-maxItemsToShow))
	}
	sb.WriteString(fmt.Sprintf("Free phrases: %d", len(skills.Phrases)))

	p.printBox("SKILLS", sb.String())
}

// PrintFormatting outputs the formatting findings.
func (p *Printer) PrintFormatting(formatting *types.FormattingReport) {
	if formatting == nil {
		return
	}
	if len(formatting.Issues) == 0 && len(formatting.Warnings) == 0 {
		p.printBox("FORMATTING", "No issues detected")
		return
	}

	var sb strings.Builder
	for _, issue := range formatting.Issues {
		sb.WriteString(fmt.Sprintf("✗ %s\n", issue))
	}
	for _, warning := range formatting.Warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
	}

	p.printBox("FORMATTING", strings.TrimRight(sb.String(), "\n"))
}

// PrintScore outputs the final score and each recommendation.
func (p *Printer) PrintScore(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score: %d/100\n", analysis.ATSScore))
	sb.WriteString(fmt.Sprintf("Titles: %d  Education: %d\n", len(analysis.Experience), len(analysis.Education)))
	if len(analysis.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for i, rec := range analysis.Recommendations {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	p.printBox("SCORE", strings.TrimRight(sb.String(), "\n"))
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
