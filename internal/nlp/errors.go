// Package nlp provides the external NLP collaborators used by the skill
// extractor: a phrase segmenter and a skill taxonomy matcher. Both are
// expensive to construct and are loaded once per process via LoadModels,
// then shared read-only across scans.
package nlp

import "fmt"

// ModelUnavailableError indicates the NLP collaborators were not initialized
// before a scan. It is fatal for the skill extractor so that callers can tell
// "no skills found" apart from "extractor not initialized".
type ModelUnavailableError struct {
	Message string
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model unavailable: %s", e.Message)
}

// SkillDBError represents a failure loading, validating, or parsing the skill
// taxonomy database.
type SkillDBError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SkillDBError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill database %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("skill database %s: %s", e.Path, e.Message)
}

func (e *SkillDBError) Unwrap() error {
	return e.Cause
}

// SegmentationError represents a failure in the language model phrase pass.
type SegmentationError struct {
	Message string
	Cause   error
}

func (e *SegmentationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("segmentation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("segmentation error: %s", e.Message)
}

func (e *SegmentationError) Unwrap() error {
	return e.Cause
}
