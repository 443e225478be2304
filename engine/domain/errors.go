package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the retrieval pipeline. Startup-time failures
// (ErrCorpusLoad, ErrIndexBuild) abort initialization; per-query translation
// failures (ErrTranslationUnavailable) degrade to untranslated text; a
// per-query embedding failure (ErrEmbedding) surfaces to the caller.
var (
	ErrCorpusLoad             = errors.New("corpus load failed")
	ErrIndexBuild             = errors.New("index build failed")
	ErrTranslationUnavailable = errors.New("translation unavailable")
	ErrEmbedding              = errors.New("embedding failed")

	ErrInvalidQuery  = errors.New("invalid query")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrUnknownLanguage = errors.New("unknown language code")
)

// ValidationError wraps a sentinel with the field and value that failed.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}
