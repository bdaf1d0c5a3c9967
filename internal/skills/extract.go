// Package skills builds the resume's skill profile by combining the skill
// taxonomy matcher with a noun phrase pass from the language model.
package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/ats-scanner/internal/nlp"
	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// maxPhrases caps the free phrase list.
	maxPhrases = 50
	// maxPhraseTokens keeps phrases to reasonable skill-name length.
	maxPhraseTokens = 3
)

// Extract runs the taxonomy pass and the phrase pass over the resume text.
//
// The taxonomy pass mirrors the matcher's output order with no local ranking,
// filtering, or deduplication. The phrase pass keeps noun phrases of at most
// three tokens, deduplicated by exact string in insertion order and truncated
// to 50 entries.
//
// Extract fails fast with ModelUnavailableError when the collaborators in
// models are not initialized, so a caller can tell "no skills found" apart
// from "extractor not initialized".
func Extract(ctx context.Context, models *nlp.Models, text string) (types.SkillProfile, error) {
	if !models.Ready() {
		return types.SkillProfile{}, &nlp.ModelUnavailableError{
			Message: "NLP collaborators are not initialized; load models before scanning",
		}
	}

	profile := types.SkillProfile{
		Matches: make([]types.SkillMatch, 0),
		Phrases: make([]string, 0, maxPhrases),
	}

	annotations, err := models.Matcher.Annotate(ctx, text)
	if err != nil {
		return types.SkillProfile{}, fmt.Errorf("taxonomy matching failed: %w", err)
	}
	for _, annotation := range annotations {
		profile.Matches = append(profile.Matches, types.SkillMatch{
			Name:     annotation.Text,
			Category: annotation.Category,
		})
	}

	phrases, err := models.Segmenter.Segment(ctx, text)
	if err != nil {
		return types.SkillProfile{}, fmt.Errorf("phrase segmentation failed: %w", err)
	}

	seen := make(map[string]bool)
	for _, phrase := range phrases {
		if len(strings.Fields(phrase)) > maxPhraseTokens {
			continue
		}
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		profile.Phrases = append(profile.Phrases, phrase)
		if len(profile.Phrases) == maxPhrases {
			break
		}
	}

	return profile, nil
}
