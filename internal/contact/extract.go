// Package contact recovers identity and contact fields from resume text via
// pattern matching.
package contact

import (
	"regexp"

	"github.com/jonathan/ats-scanner/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// Extract runs the four contact scans independently over the same text.
// Matches are reported in document order, duplicates included; a field with
// no matches is an empty list, not an error. The phone pattern's optional
// country-code group is never exposed on its own: each match is the full
// matched string.
func Extract(text string) types.ContactProfile {
	return types.ContactProfile{
		Emails:   findAll(emailPattern, text),
		Phones:   findAll(phonePattern, text),
		LinkedIn: findAll(linkedinPattern, text),
		GitHub:   findAll(githubPattern, text),
	}
}

// findAll wraps FindAllString so that no matches yields an empty slice
// instead of nil, keeping JSON output as [] rather than null.
func findAll(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
