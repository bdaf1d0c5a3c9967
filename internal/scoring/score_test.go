package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scanner/internal/types"
)

// completeAnalysis returns an analysis with nothing to deduct for.
func completeAnalysis() *types.Analysis {
	return &types.Analysis{
		Contact: types.ContactProfile{
			Emails: []string{"a@b.com"},
			Phones: []string{"555-123-4567"},
		},
		Skills: types.SkillProfile{
			Matches: []types.SkillMatch{
				{Name: "Go", Category: "Hard Skill"},
				{Name: "Python", Category: "Hard Skill"},
				{Name: "Docker", Category: "Hard Skill"},
				{Name: "Kubernetes", Category: "Hard Skill"},
				{Name: "SQL", Category: "Hard Skill"},
			},
		},
		Experience: []string{"Senior Software Engineer"},
		Education:  []string{"Bachelor of Science"},
	}
}

func TestScore_PerfectResume(t *testing.T) {
	score, recommendations := Score(completeAnalysis())

	assert.Equal(t, 100, score)
	assert.Empty(t, recommendations)
}

func TestScore_DeductionTable(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(a *types.Analysis)
		wantScore int
		wantRec   string
	}{
		{
			name:      "one formatting issue",
			mutate:    func(a *types.Analysis) { a.Formatting.Issues = []string{"issue text"} },
			wantScore: 90,
			wantRec:   "issue text",
		},
		{
			name:      "one formatting warning",
			mutate:    func(a *types.Analysis) { a.Formatting.Warnings = []string{"warning text"} },
			wantScore: 95,
			wantRec:   "warning text",
		},
		{
			name:      "no emails",
			mutate:    func(a *types.Analysis) { a.Contact.Emails = nil },
			wantScore: 85,
			wantRec:   "Add email address for better ATS parsing",
		},
		{
			name:      "no phones",
			mutate:    func(a *types.Analysis) { a.Contact.Phones = nil },
			wantScore: 90,
			wantRec:   "Add phone number for better ATS parsing",
		},
		{
			name:      "four taxonomy matches is too few",
			mutate:    func(a *types.Analysis) { a.Skills.Matches = a.Skills.Matches[:4] },
			wantScore: 90,
			wantRec:   "Add more specific technical skills",
		},
		{
			name:      "no education",
			mutate:    func(a *types.Analysis) { a.Education = nil },
			wantScore: 95,
			wantRec:   "Ensure education section is clearly formatted",
		},
		{
			name:      "no experience",
			mutate:    func(a *types.Analysis) { a.Experience = nil },
			wantScore: 95,
			wantRec:   "Ensure job titles are clearly formatted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := completeAnalysis()
			tt.mutate(analysis)

			score, recommendations := Score(analysis)

			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, []string{tt.wantRec}, recommendations)
		})
	}
}

func TestScore_AddingEmailRestoresExactlyFifteen(t *testing.T) {
	analysis := completeAnalysis()
	analysis.Contact.Emails = nil
	without, _ := Score(analysis)

	analysis.Contact.Emails = []string{"a@b.com"}
	with, _ := Score(analysis)

	assert.Equal(t, 15, with-without)
}

func TestScore_MoreIssuesNeverIncreaseScore(t *testing.T) {
	analysis := completeAnalysis()
	previous, _ := Score(analysis)

	for i := 0; i < 12; i++ {
		analysis.Formatting.Issues = append(analysis.Formatting.Issues, "issue")
		score, _ := Score(analysis)
		assert.LessOrEqual(t, score, previous)
		previous = score
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	analysis := &types.Analysis{
		Formatting: types.FormattingReport{
			Issues: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
		},
	}

	score, _ := Score(analysis)

	assert.Equal(t, 0, score)
}

func TestScore_RecommendationOrderIsFixed(t *testing.T) {
	// Order: issues, warnings, email, phone, skills, education, experience
	analysis := &types.Analysis{
		Formatting: types.FormattingReport{
			Issues:   []string{"glyph issue"},
			Warnings: []string{"table warning"},
		},
	}

	score, recommendations := Score(analysis)

	assert.Equal(t, 40, score)
	assert.Equal(t, []string{
		"glyph issue",
		"table warning",
		"Add email address for better ATS parsing",
		"Add phone number for better ATS parsing",
		"Add more specific technical skills",
		"Ensure education section is clearly formatted",
		"Ensure job titles are clearly formatted",
	}, recommendations)
}
