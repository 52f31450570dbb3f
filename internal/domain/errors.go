package domain

import (
	"errors"
	"fmt"
)

// DomainError represents an invalid lookup input
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidField         = "INVALID_FIELD"
	ErrCodeLookupNotFound       = "LOOKUP_NOT_FOUND"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrLookupNotFound       = errors.New("lookup not found")
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
		Err:     ErrMissingRequiredField,
	}
}

func NewInvalidFieldError(field, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("%s is invalid: %s", field, reason),
		Err:     ErrInvalidField,
	}
}

func NewLookupNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeLookupNotFound,
		Message: fmt.Sprintf("lookup %s not found", id),
		Err:     ErrLookupNotFound,
	}
}

func IsDomainError(err error) (*DomainError, bool) {
	var domErr *DomainError
	ok := errors.As(err, &domErr)
	return domErr, ok
}
