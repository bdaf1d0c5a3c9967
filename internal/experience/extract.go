// Package experience recovers job-title-like phrases from resume text.
package experience

import (
	"regexp"
)

// Three alternative title shapes, matched independently:
// seniority qualifier + role word + title noun ("Senior Software Engineer"),
// domain qualifier + title noun ("DevOps Engineer"),
// leadership title + "of" + area ("Director of Engineering").
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Principal|Staff|Chief)\s+\w+\s+(?:Engineer|Developer|Manager|Analyst|Architect|Designer)\b`),
	regexp.MustCompile(`(?i)\b(?:Software|DevOps|Data|Product|Project|Engineering|Development)\s+(?:Engineer|Manager|Lead|Director)\b`),
	regexp.MustCompile(`(?i)\b(?:VP|Director|Manager|Coordinator|Specialist|Consultant)\s+of\s+\w+\b`),
}

// Extract returns the union of all title pattern matches with duplicates
// removed, in first-seen order. A phrase matched by two patterns appears once.
func Extract(text string) []string {
	seen := make(map[string]bool)
	titles := make([]string, 0)

	for _, pattern := range titlePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			titles = append(titles, match)
		}
	}

	return titles
}
