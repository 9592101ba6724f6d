package ingestion

import "fmt"

// ExtractionError represents a failure to pull text out of a source document.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// OCRError represents a failure of the optical character recognition fallback.
type OCRError struct {
	Path    string
	Message string
	Cause   error
}

func (e *OCRError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("OCR failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("OCR failed for %s: %s", e.Path, e.Message)
}

func (e *OCRError) Unwrap() error {
	return e.Cause
}
