package skills

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scanner/internal/nlp"
	"github.com/jonathan/ats-scanner/internal/types"
)

type stubSegmenter struct {
	phrases []string
	err     error
}

func (s *stubSegmenter) Segment(_ context.Context, _ string) ([]string, error) {
	return s.phrases, s.err
}

type stubMatcher struct {
	annotations []nlp.Annotation
	err         error
}

func (s *stubMatcher) Annotate(_ context.Context, _ string) ([]nlp.Annotation, error) {
	return s.annotations, s.err
}

func stubModels(annotations []nlp.Annotation, phrases []string) *nlp.Models {
	return &nlp.Models{
		Segmenter: &stubSegmenter{phrases: phrases},
		Matcher:   &stubMatcher{annotations: annotations},
	}
}

func TestExtract_NilModels(t *testing.T) {
	_, err := Extract(context.Background(), nil, "some resume text")

	var unavailable *nlp.ModelUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestExtract_MissingCollaborator(t *testing.T) {
	models := &nlp.Models{Matcher: &stubMatcher{}}

	_, err := Extract(context.Background(), models, "some resume text")

	var unavailable *nlp.ModelUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestExtract_MirrorsMatcherOrder(t *testing.T) {
	models := stubModels([]nlp.Annotation{
		{Text: "Python", Category: "Hard Skill"},
		{Text: "Go", Category: "Hard Skill"},
		{Text: "Python", Category: "Hard Skill"},
	}, nil)

	profile, err := Extract(context.Background(), models, "text")
	require.NoError(t, err)

	// Repeated matches stay repeated, in document order.
	assert.Equal(t, []types.SkillMatch{
		{Name: "Python", Category: "Hard Skill"},
		{Name: "Go", Category: "Hard Skill"},
		{Name: "Python", Category: "Hard Skill"},
	}, profile.Matches)
}

func TestExtract_PhrasesDedupedInOrder(t *testing.T) {
	models := stubModels(nil, []string{"cloud infrastructure", "team leadership", "cloud infrastructure"})

	profile, err := Extract(context.Background(), models, "text")
	require.NoError(t, err)

	assert.Equal(t, []string{"cloud infrastructure", "team leadership"}, profile.Phrases)
}

func TestExtract_LongPhrasesDropped(t *testing.T) {
	models := stubModels(nil, []string{
		"distributed systems",
		"large scale distributed systems design",
		"systems design",
	})

	profile, err := Extract(context.Background(), models, "text")
	require.NoError(t, err)

	assert.Equal(t, []string{"distributed systems", "systems design"}, profile.Phrases)
}

func TestExtract_PhraseCap(t *testing.T) {
	phrases := make([]string, 0, 80)
	for i := 0; i < 80; i++ {
		phrases = append(phrases, fmt.Sprintf("phrase %d", i))
	}
	models := stubModels(nil, phrases)

	profile, err := Extract(context.Background(), models, "text")
	require.NoError(t, err)

	require.Len(t, profile.Phrases, 50)
	assert.Equal(t, "phrase 0", profile.Phrases[0])
	assert.Equal(t, "phrase 49", profile.Phrases[49])
}

func TestExtract_EmptyProfileIsNonNil(t *testing.T) {
	profile, err := Extract(context.Background(), stubModels(nil, nil), "text")
	require.NoError(t, err)

	assert.NotNil(t, profile.Matches)
	assert.NotNil(t, profile.Phrases)
	assert.Empty(t, profile.Matches)
	assert.Empty(t, profile.Phrases)
}

func TestExtract_MatcherErrorPropagates(t *testing.T) {
	matcherErr := errors.New("taxonomy unavailable")
	models := &nlp.Models{
		Segmenter: &stubSegmenter{},
		Matcher:   &stubMatcher{err: matcherErr},
	}

	_, err := Extract(context.Background(), models, "text")

	require.ErrorIs(t, err, matcherErr)
}

func TestExtract_SegmenterErrorPropagates(t *testing.T) {
	segmentErr := errors.New("model call failed")
	models := &nlp.Models{
		Segmenter: &stubSegmenter{err: segmentErr},
		Matcher:   &stubMatcher{},
	}

	_, err := Extract(context.Background(), models, "text")

	require.ErrorIs(t, err, segmentErr)
}
