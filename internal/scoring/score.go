// Package scoring turns an aggregate analysis into a 0-100 ATS compatibility
// score with an ordered list of recommendations.
package scoring

import (
	"github.com/jonathan/ats-scanner/internal/types"
)

// Deduction table. Deductions are cumulative and independent; the final score
// is clamped to [0, 100]. Every deduction emits exactly one recommendation so
// the user can see why each point was lost. This is deliberately a flat
// additive rule set, not a weighted model.
const (
	issueDeduction             = 10
	warningDeduction           = 5
	missingEmailDeduction      = 15
	missingPhoneDeduction      = 10
	fewSkillsDeduction         = 10
	missingEducationDeduction  = 5
	missingExperienceDeduction = 5

	// Fewer taxonomy matches than this counts as a thin skill section.
	minSkillMatches = 5
)

// Fixed recommendation messages for the presence/absence deductions.
const (
	recAddEmail       = "Add email address for better ATS parsing"
	recAddPhone       = "Add phone number for better ATS parsing"
	recAddSkills      = "Add more specific technical skills"
	recClarifyDegrees = "Ensure education section is clearly formatted"
	recClarifyTitles  = "Ensure job titles are clearly formatted"
)

// Score applies the deduction table to an analysis. Recommendations are
// ordered: formatting issues, formatting warnings, then the fixed messages
// for missing contact fields, skills, education, and experience.
func Score(analysis *types.Analysis) (int, []string) {
	score := 100
	recommendations := make([]string, 0)

	score -= len(analysis.Formatting.Issues) * issueDeduction
	score -= len(analysis.Formatting.Warnings) * warningDeduction
	recommendations = append(recommendations, analysis.Formatting.Issues...)
	recommendations = append(recommendations, analysis.Formatting.Warnings...)

	if len(analysis.Contact.Emails) == 0 {
		score -= missingEmailDeduction
		recommendations = append(recommendations, recAddEmail)
	}
	if len(analysis.Contact.Phones) == 0 {
		score -= missingPhoneDeduction
		recommendations = append(recommendations, recAddPhone)
	}

	if len(analysis.Skills.Matches) < minSkillMatches {
		score -= fewSkillsDeduction
		recommendations = append(recommendations, recAddSkills)
	}

	if len(analysis.Education) == 0 {
		score -= missingEducationDeduction
		recommendations = append(recommendations, recClarifyDegrees)
	}
	if len(analysis.Experience) == 0 {
		score -= missingExperienceDeduction
		recommendations = append(recommendations, recClarifyTitles)
	}

	return clamp(score), recommendations
}

// clamp bounds a score to [0, 100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
