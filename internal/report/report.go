package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	bannerWidth = 70

	// Display caps. The taxonomy match list is printed in full; free phrases
	// and job titles are truncated with a "+N more" line.
	maxPhrasesShown = 30
	maxTitlesShown  = 10
)

// DefaultOutputFile is the report path used when none is configured.
const DefaultOutputFile = "ats_report.txt"

// Build renders the fixed-layout text report for an analysis.
func Build(analysis *types.Analysis) string {
	var sb strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	sb.WriteString(banner + "\n")
	sb.WriteString("ATS COMPATIBILITY REPORT\n")
	sb.WriteString(banner + "\n\n")

	writeScore(&sb, analysis)
	writeStatistics(&sb, analysis)
	writeContact(&sb, &analysis.Contact)
	writeSkills(&sb, &analysis.Skills)
	writeExperience(&sb, analysis.Experience)
	writeEducation(&sb, analysis.Education)
	writeFormatting(&sb, &analysis.Formatting)
	writeRecommendations(&sb, analysis.Recommendations)

	sb.WriteString(banner + "\n")
	sb.WriteString("Report generated by ATS Scanner\n")
	sb.WriteString(banner + "\n")

	return sb.String()
}

// Write renders the report and writes it to path.
func Write(analysis *types.Analysis, path string) error {
	if err := os.WriteFile(path, []byte(Build(analysis)), 0644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write report to %s", path), Cause: err}
	}
	return nil
}

func writeScore(sb *strings.Builder, analysis *types.Analysis) {
	fmt.Fprintf(sb, "ATS COMPATIBILITY SCORE: %d/100\n", analysis.ATSScore)

	switch {
	case analysis.ATSScore >= 80:
		sb.WriteString("Status: ✓ EXCELLENT - Resume is highly ATS-compatible\n\n")
	case analysis.ATSScore >= 60:
		sb.WriteString("Status: ⚠ GOOD - Resume should parse correctly with minor issues\n\n")
	case analysis.ATSScore >= 40:
		sb.WriteString("Status: ⚠ FAIR - Some improvements recommended\n\n")
	default:
		sb.WriteString("Status: ✗ NEEDS IMPROVEMENT - Significant ATS compatibility issues\n\n")
	}

	if analysis.Failed() {
		fmt.Fprintf(sb, "SCAN ERROR: %s\n\n", analysis.Error)
	}
}

func writeStatistics(sb *strings.Builder, analysis *types.Analysis) {
	sb.WriteString("DOCUMENT STATISTICS:\n")
	fmt.Fprintf(sb, "  - Text Length: %d characters\n", analysis.TextLength)
	fmt.Fprintf(sb, "  - Word Count: %d words\n\n", analysis.WordCount)
}

func writeContact(sb *strings.Builder, contact *types.ContactProfile) {
	sb.WriteString("CONTACT INFORMATION DETECTED:\n")
	fmt.Fprintf(sb, "  - Email: %s\n", joinOrNotFound(contact.Emails))
	fmt.Fprintf(sb, "  - Phone: %s\n", joinOrNotFound(contact.Phones))
	fmt.Fprintf(sb, "  - LinkedIn: %s\n", joinOrNotFound(contact.LinkedIn))
	fmt.Fprintf(sb, "  - GitHub: %s\n\n", joinOrNotFound(contact.GitHub))
}

func writeSkills(sb *strings.Builder, skills *types.SkillProfile) {
	fmt.Fprintf(sb, "SKILLS EXTRACTED: %d skills identified\n", len(skills.Matches))
	if len(skills.Matches) > 0 {
		for _, match := range skills.Matches {
			fmt.Fprintf(sb, "  - %s\n", match.Name)
		}
	} else {
		sb.WriteString("  (No skills detected via taxonomy matcher)\n")
	}

	if len(skills.Phrases) > 0 {
		fmt.Fprintf(sb, "\nADDITIONAL SKILL PHRASES: %d\n", len(skills.Phrases))
		writeCapped(sb, skills.Phrases, maxPhrasesShown)
	}
	sb.WriteString("\n")
}

func writeExperience(sb *strings.Builder, titles []string) {
	fmt.Fprintf(sb, "JOB TITLES DETECTED: %d\n", len(titles))
	writeCapped(sb, titles, maxTitlesShown)
	sb.WriteString("\n")
}

func writeEducation(sb *strings.Builder, education []string) {
	fmt.Fprintf(sb, "EDUCATION DETECTED: %d\n", len(education))
	for _, entry := range education {
		fmt.Fprintf(sb, "  - %s\n", entry)
	}
	sb.WriteString("\n")
}

func writeFormatting(sb *strings.Builder, formatting *types.FormattingReport) {
	if len(formatting.Issues) > 0 {
		sb.WriteString("FORMATTING ISSUES:\n")
		for _, issue := range formatting.Issues {
			fmt.Fprintf(sb, "  ✗ %s\n", issue)
		}
		sb.WriteString("\n")
	}

	if len(formatting.Warnings) > 0 {
		sb.WriteString("FORMATTING WARNINGS:\n")
		for _, warning := range formatting.Warnings {
			fmt.Fprintf(sb, "  ⚠ %s\n", warning)
		}
		sb.WriteString("\n")
	}
}

func writeRecommendations(sb *strings.Builder, recommendations []string) {
	if len(recommendations) == 0 {
		return
	}
	sb.WriteString("RECOMMENDATIONS FOR IMPROVEMENT:\n")
	for i, rec := range recommendations {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, rec)
	}
	sb.WriteString("\n")
}

// writeCapped writes up to limit bulleted items and a "... and N more" line
// when the list is longer.
func writeCapped(sb *strings.Builder, items []string, limit int) {
	shown := items
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, item := range shown {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

func joinOrNotFound(values []string) string {
	if len(values) == 0 {
		return "Not found"
	}
	return strings.Join(values, ", ")
}
