// Package extraction wraps the document readers that turn a source file into
// the raw text consumed by the analysis pipeline.
package extraction

import "fmt"

// ExtractionError represents a terminal failure to read a document: the file
// is unreadable, unparseable, or has no extractable text layer (for example a
// scanned-image PDF without OCR).
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
