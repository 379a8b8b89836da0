package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIncome is returned when the combined annual gross income is not positive.
	ErrNoIncome           = errors.New("no income: wage or other income must be positive")
	ErrUnknownVariant     = errors.New("unknown sim_version")
	ErrTooManySubmissions = errors.New("too many submissions for this fingerprint")
	ErrSubmissionNotFound = errors.New("no submission found for this fingerprint")
)

// ValidationError reports a request field the caller has to fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("Missing: %s", field)}
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
