package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errMissingCollege  = errors.New("college is empty")
	errMissingQuestion = errors.New("question is empty")
	errMissingAnswer   = errors.New("answer is empty")
)

// ValidateRecord checks a Record before it enters the corpus. Records that
// fail validation are quarantined by the loader, never indexed.
func ValidateRecord(rec Record) error {
	if strings.TrimSpace(rec.College) == "" {
		return NewValidationError("college", rec.College, errMissingCollege)
	}
	if strings.TrimSpace(rec.Question) == "" {
		return NewValidationError("question", rec.Question, errMissingQuestion)
	}
	if strings.TrimSpace(rec.Answer) == "" {
		return NewValidationError("answer", rec.Answer, errMissingAnswer)
	}
	if rec.Language != "" {
		if _, ok := SupportedLanguages[rec.Language]; !ok {
			return NewValidationError("language", rec.Language, ErrUnknownLanguage)
		}
	}
	return nil
}

// ValidateQuery checks an incoming query before orchestration.
func ValidateQuery(question, language string, topK int) error {
	if strings.TrimSpace(question) == "" {
		return NewValidationError("question", question, ErrEmptyQuestion)
	}
	if language != "" {
		if _, ok := SupportedLanguages[language]; !ok {
			return NewValidationError("language", language, ErrUnknownLanguage)
		}
	}
	if topK < 0 {
		return NewValidationError("top_k", fmt.Sprint(topK), ErrInvalidQuery)
	}
	return nil
}
