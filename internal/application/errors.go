package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeConfiguration       = "CONFIGURATION_ERROR"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewConfigurationError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfiguration,
		Message:    "Lookup is not configured",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewUpstreamUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamUnavailable,
		Message:    "Address validation service unavailable",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out waiting for the address validation service",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    "Resource not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToServiceError maps invoker and repository failures to a ServiceError.
func ToServiceError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr
	}
	if _, ok := IsConfigurationError(err); ok {
		return NewConfigurationError(err)
	}
	if errors.Is(err, domain.ErrLookupNotFound) {
		return NewNotFoundError(err)
	}
	if _, ok := domain.IsDomainError(err); ok {
		return NewInvalidInputError(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	if _, ok := IsFallbackError(err); ok {
		return NewUpstreamUnavailableError(err)
	}
	if _, ok := IsTransportError(err); ok {
		return NewUpstreamUnavailableError(err)
	}
	return NewInternalError(err)
}
