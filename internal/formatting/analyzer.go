// Package formatting detects visual and structural anomalies in resume text
// that commonly break ATS parsers.
package formatting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

var (
	// Bullet and geometric decoration glyphs that ATS parsers choke on.
	decorationPattern = regexp.MustCompile(`[★☆•●○◆◇▪▫■□►▶◄◀]`)
	// Runs of 5+ spaces usually mean table or column layout.
	wideGapPattern = regexp.MustCompile(` {5,}`)
)

// A line must be longer than this to count as a header/footer candidate;
// shorter repeats are usually blank lines or section dividers.
const repeatedLineMinLength = 10

// Analyze inspects raw resume text for formatting constructs that confuse
// automated parsers. It is a pure function: deterministic, no side effects,
// and empty input yields an empty report.
func Analyze(text string) types.FormattingReport {
	var report types.FormattingReport

	if decorations := decorationPattern.FindAllString(text, -1); len(decorations) > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf(
			"Found %d special characters that may not parse correctly", len(decorations)))
	}

	if wideGapPattern.MatchString(text) {
		report.Warnings = append(report.Warnings,
			"Possible table/column formatting detected - may not parse correctly")
	}

	if repeated := countRepeatedLines(text); repeated > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"Found %d repeated lines (possible headers/footers)", repeated))
	}

	return report
}

// countRepeatedLines counts distinct lines that occur more than twice and are
// long enough to look like a page header or footer.
func countRepeatedLines(text string) int {
	counts := make(map[string]int)
	for _, line := range strings.Split(text, "\n") {
		counts[line]++
	}

	repeated := 0
	for line, count := range counts {
		if count > 2 && len(line) > repeatedLineMinLength {
			repeated++
		}
	}
	return repeated
}
