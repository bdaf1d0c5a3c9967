// Package pipeline provides the high-level orchestration for a document scan.
package pipeline

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scanner/internal/contact"
	"github.com/jonathan/ats-scanner/internal/education"
	"github.com/jonathan/ats-scanner/internal/experience"
	"github.com/jonathan/ats-scanner/internal/extraction"
	"github.com/jonathan/ats-scanner/internal/formatting"
	"github.com/jonathan/ats-scanner/internal/nlp"
	"github.com/jonathan/ats-scanner/internal/scoring"
	"github.com/jonathan/ats-scanner/internal/skills"
	"github.com/jonathan/ats-scanner/internal/types"
)

// extractionFailedMessage is the error recorded on a degenerate analysis when
// the document yields no text.
const extractionFailedMessage = "Could not extract text from PDF"

// ProgressEvent represents a progress update during a scan.
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as scan stages complete.
type ProgressCallback func(event ProgressEvent)

// Stage names reported in progress events.
const (
	StageExtraction = "extraction"
	StageFormatting = "formatting"
	StageContact    = "contact"
	StageSkills     = "skills"
	StageExperience = "experience"
	StageEducation  = "education"
	StageScoring    = "scoring"
)

// Options holds configuration for a single scan.
type Options struct {
	DocumentPath string
	// Models are the shared NLP collaborators, loaded once per process.
	Models     *nlp.Models
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// Scan runs the full analysis pipeline over one document.
//
// On extraction failure it returns the degenerate analysis (score 0, Error
// set) together with the error, so the caller can still render a minimal
// report. A model failure aborts the scan with a nil analysis: a partial
// analysis would corrupt the score, since deductions depend on section
// presence.
func Scan(ctx context.Context, opts Options) (*types.Analysis, error) {
	runID := uuid.New().String()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", runID), zap.String("document", opts.DocumentPath))

	logger.Info("starting ATS scan")

	text, err := extraction.Extract(opts.DocumentPath)
	if err != nil {
		logger.Warn("text extraction failed", zap.Error(err))
		return &types.Analysis{Error: extractionFailedMessage, ATSScore: 0}, err
	}
	emit(opts.OnProgress, StageExtraction, runID, "extracted document text")

	analysis := &types.Analysis{
		TextLength: utf8.RuneCountInString(text),
		WordCount:  len(strings.Fields(text)),
	}

	// The five extractors share only the immutable raw text and each writes a
	// distinct field of the analysis, so they run in parallel without locks.
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analysis.Formatting = formatting.Analyze(text)
		emit(opts.OnProgress, StageFormatting, runID, "analyzed formatting")
		return nil
	})
	g.Go(func() error {
		analysis.Contact = contact.Extract(text)
		emit(opts.OnProgress, StageContact, runID, "extracted contact info")
		return nil
	})
	g.Go(func() error {
		profile, err := skills.Extract(gCtx, opts.Models, text)
		if err != nil {
			return err
		}
		analysis.Skills = profile
		emit(opts.OnProgress, StageSkills, runID, "extracted skills")
		return nil
	})
	g.Go(func() error {
		analysis.Experience = experience.Extract(text)
		emit(opts.OnProgress, StageExperience, runID, "extracted job titles")
		return nil
	})
	g.Go(func() error {
		analysis.Education = education.Extract(text)
		emit(opts.OnProgress, StageEducation, runID, "extracted education")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("scan failed", zap.Error(err))
		return nil, err
	}

	analysis.ATSScore, analysis.Recommendations = scoring.Score(analysis)
	emit(opts.OnProgress, StageScoring, runID, "calculated ATS score")

	logger.Info("scan complete",
		zap.Int("ats_score", analysis.ATSScore),
		zap.Int("word_count", analysis.WordCount),
		zap.Int("skill_matches", len(analysis.Skills.Matches)))

	return analysis, nil
}

// emit calls the progress callback if configured.
func emit(callback ProgressCallback, stage, runID, message string) {
	if callback != nil {
		callback(ProgressEvent{Stage: stage, Message: message, RunID: runID})
	}
}
