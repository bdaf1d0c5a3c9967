package nlp

import (
	"context"

	"go.uber.org/zap"
)

// Segmenter produces noun phrases from free text. Implementations wrap a
// language model, are stateless per call, and must be safe for concurrent use.
type Segmenter interface {
	Segment(ctx context.Context, text string) ([]string, error)
}

// Matcher annotates free text against a fixed skill taxonomy.
type Matcher interface {
	Annotate(ctx context.Context, text string) ([]Annotation, error)
}

// Annotation is a single full match reported by the taxonomy matcher.
// Text is the matched span as it appears in the document.
type Annotation struct {
	Text     string
	Category string
}

// Models bundles the NLP collaborators. Construct it once at process warm-up
// with LoadModels and pass it into the skill extractor; there is no hidden
// global model state.
type Models struct {
	Segmenter Segmenter
	Matcher   Matcher
}

// Ready reports whether both collaborators are initialized.
func (m *Models) Ready() bool {
	return m != nil && m.Segmenter != nil && m.Matcher != nil
}

// LoadOptions configures LoadModels.
type LoadOptions struct {
	// SkillDBPath is the taxonomy database JSON file. Empty resolves the
	// bundled data/skills.json.
	SkillDBPath string
	// APIKey enables the Gemini-backed segmenter when set; otherwise the
	// deterministic local chunker is used.
	APIKey string
	// GeminiModel overrides the default Gemini model name.
	GeminiModel string
	Logger      *zap.Logger
}

// LoadModels constructs the NLP collaborators. Building the taxonomy matcher
// reads and validates the whole skill database, so this belongs at process
// start, not on the scan path.
func LoadModels(ctx context.Context, opts LoadOptions) (*Models, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	matcher, err := NewDBMatcher(opts.SkillDBPath)
	if err != nil {
		return nil, err
	}
	logger.Info("skill taxonomy loaded",
		zap.String("path", matcher.Path()),
		zap.Int("skills", matcher.Len()))

	var segmenter Segmenter
	if opts.APIKey != "" {
		gemini, err := NewGeminiSegmenter(ctx, opts.APIKey, opts.GeminiModel)
		if err != nil {
			return nil, err
		}
		segmenter = gemini
		logger.Info("using Gemini phrase segmenter", zap.String("model", gemini.Model()))
	} else {
		segmenter = NewChunkSegmenter()
		logger.Info("using local phrase segmenter")
	}

	return &Models{Segmenter: segmenter, Matcher: matcher}, nil
}

// Close releases resources held by the collaborators, if any.
func (m *Models) Close() error {
	if closer, ok := m.Segmenter.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
