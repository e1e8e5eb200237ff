package services

import (
	"errors"
	"fmt"

	"atscribe/resume-analyzer/internal/models"
)

// ErrNotFound means the requested session has no stored record of the
// requested kind.
var ErrNotFound = errors.New("not found")

// InputRejectedError carries the classifier verdict for a document the user can
// correct and resubmit.
type InputRejectedError struct {
	Document string // "resume" or "job description"
	Verdict  Verdict
}

func (e *InputRejectedError) Error() string {
	return fmt.Sprintf("invalid %s (%s): %s", e.Document, e.Verdict.ReasonCode, e.Verdict.Message)
}

// ExtractionError wraps a failure to pull text out of an uploaded file.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// BatchRejectedError rejects an entire ranking batch: no candidate is ranked
// while any uploaded file fails validation or extraction.
type BatchRejectedError struct {
	Files []models.InvalidFile
}

func (e *BatchRejectedError) Error() string {
	return fmt.Sprintf("%d invalid file(s) in batch", len(e.Files))
}

// MalformedResponseError means the provider returned something we could not
// parse as the expected structure. Raw keeps the full payload for diagnostics.
// Never retried.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse provider response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ProviderRejectedError means the provider itself judged the submitted resume
// invalid after our own classifiers accepted it.
type ProviderRejectedError struct {
	Reason string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("provider rejected resume: %s", e.Reason)
}
