package nlp

import (
	"context"
	"strings"
	"unicode"
)

// ChunkSegmenter is the deterministic local segmenter. It approximates noun
// phrase chunking with a stopword heuristic: text is split on punctuation and
// line breaks, then each fragment is reduced to maximal runs of content
// tokens. It is the default when no language model API key is configured, and
// it makes the phrase pass reproducible for a fixed input.
type ChunkSegmenter struct{}

// NewChunkSegmenter returns the local segmenter.
func NewChunkSegmenter() *ChunkSegmenter {
	return &ChunkSegmenter{}
}

// stopwords are function words that terminate a candidate phrase.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "nor": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"by": true, "with": true, "from": true, "as": true, "into": true,
	"over": true, "under": true, "between": true, "through": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"has": true, "have": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "done": true,
	"will": true, "would": true, "can": true, "could": true,
	"shall": true, "should": true, "may": true, "might": true, "must": true,
	"i": true, "me": true, "my": true, "we": true, "our": true, "us": true,
	"you": true, "your": true, "he": true, "she": true, "it": true,
	"his": true, "her": true, "its": true, "they": true, "them": true,
	"their": true, "this": true, "that": true, "these": true, "those": true,
	"who": true, "which": true, "what": true, "where": true, "when": true,
	"not": true, "no": true, "so": true, "very": true, "also": true,
	"using": true, "used": true, "use": true,
}

// Segment splits text into candidate noun phrases. It never fails; degenerate
// input yields an empty phrase list.
func (s *ChunkSegmenter) Segment(_ context.Context, text string) ([]string, error) {
	phrases := make([]string, 0)

	for _, fragment := range splitFragments(text) {
		run := make([]string, 0, 4)
		flush := func() {
			if len(run) > 0 {
				phrases = append(phrases, strings.Join(run, " "))
				run = run[:0]
			}
		}

		for _, token := range strings.Fields(fragment) {
			word := strings.Trim(token, `"'`)
			// Sentence-final periods are noise; internal ones (Node.js) stay.
			trimmed := strings.TrimRight(word, ".")
			if trimmed == "" || stopwords[strings.ToLower(trimmed)] {
				flush()
				continue
			}
			run = append(run, trimmed)
			// A trailing period ends the sentence, and the phrase with it.
			if trimmed != word {
				flush()
			}
		}
		flush()
	}

	return phrases, nil
}

// splitFragments breaks text on line breaks and phrase-terminating
// punctuation, keeping intra-phrase characters like '+', '#', '.', and '/'
// (C++, C#, Node.js, CI/CD) intact.
func splitFragments(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', '\t', ',', ';', ':', '!', '?', '(', ')', '[', ']', '{', '}', '|', '•', '·':
			return true
		}
		return unicode.Is(unicode.Pd, r) && r != '-'
	})
}
