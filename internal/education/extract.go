// Package education recovers degree-like phrases from resume text.
package education

import (
	"regexp"
)

// Two alternative degree shapes: the spelled-out degree name with a required
// field-of-study keyword ("Bachelor of Science"), and the abbreviated degree
// token with an optional trailing field ("B.S. in Computer Science").
// Abbreviated and spelled-out forms of the same credential are reported as
// distinct entries; no normalization is attempted.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Bachelor|Master|Ph\.?D\.?|Doctor|Associate)(?:'s)?\s+(?:of\s+)?(?:Science|Arts|Engineering|Business|Computer Science)`),
	regexp.MustCompile(`(?i)(?:B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?|MBA|Ph\.?D\.?)(?:\s+in\s+[\w\s]+)?`),
}

// Extract returns the union of all degree pattern matches with duplicates
// removed, in first-seen order.
func Extract(text string) []string {
	seen := make(map[string]bool)
	degrees := make([]string, 0)

	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			degrees = append(degrees, match)
		}
	}

	return degrees
}
