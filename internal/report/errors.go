// Package report renders the analysis into the human-readable ATS report and
// its optional HTML and PDF forms.
package report

import "fmt"

// RenderError represents a failure producing one of the report artifacts.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
