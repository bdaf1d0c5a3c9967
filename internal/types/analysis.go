// Package types provides type definitions for structured data used throughout the ATS scanner.
package types

// FormattingReport holds the findings of the formatting analyzer.
// Issues are hard problems that will likely break an ATS parser; warnings are
// soft problems that may degrade parsing. Both lists are in detection order.
type FormattingReport struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// ContactProfile holds the identity and contact fields recovered from the
// resume text. Every field is independently optional; an empty list means the
// field was not found, never an error.
type ContactProfile struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn []string `json:"linkedin"`
	GitHub   []string `json:"github"`
}

// SkillMatch is a single full match from the skill taxonomy matcher:
// the matched text and the taxonomy category it belongs to.
type SkillMatch struct {
	Name     string `json:"skill"`
	Category string `json:"type"`
}

// SkillProfile combines the taxonomy matcher output with free noun phrases.
// Matches mirror the matcher's own output order and are not deduplicated;
// Phrases are deduplicated in insertion order and capped at 50 entries.
type SkillProfile struct {
	Matches []SkillMatch `json:"extracted_skills"`
	Phrases []string     `json:"skill_phrases"`
}

// Analysis is the aggregate result of a single document scan. It is
// constructed once per scan by the pipeline and not mutated after scoring.
type Analysis struct {
	TextLength      int              `json:"text_length"`
	WordCount       int              `json:"word_count"`
	Formatting      FormattingReport `json:"formatting"`
	Contact         ContactProfile   `json:"contact"`
	Skills          SkillProfile     `json:"skills"`
	Experience      []string         `json:"experience"`
	Education       []string         `json:"education"`
	ATSScore        int              `json:"ats_score"`
	Recommendations []string         `json:"recommendations"`

	// Error is set on a degenerate analysis when text extraction failed.
	// The score is 0 and all other sections are empty in that case.
	Error string `json:"error,omitempty"`
}

// Failed reports whether this is a degenerate analysis produced after a
// terminal extraction failure.
func (a *Analysis) Failed() bool {
	return a.Error != ""
}
