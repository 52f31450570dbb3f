package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// ErrorCategory represents the nature of an error for logging, metrics and
// the audit trail
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	// Context Errors (Transient - network/timeout issues)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// Missing credentials or bad input never succeed on repeat
	if _, ok := IsConfigurationError(err); ok {
		return CategoryClientError
	}
	if _, ok := domain.IsDomainError(err); ok {
		return CategoryClientError
	}

	// Both endpoints down
	if fbErr, ok := IsFallbackError(err); ok {
		if CategorizeError(fbErr.Backup) == CategoryPermanent {
			return CategoryPermanent
		}
		return CategoryTransient
	}

	if tErr, ok := IsTransportError(err); ok {
		switch tErr.Op {
		case OpRequest:
			return CategoryTransient
		case OpStatus:
			if tErr.StatusCode >= http.StatusInternalServerError || tErr.StatusCode == http.StatusTooManyRequests {
				return CategoryTransient
			}
			return CategoryPermanent
		case OpDecode, OpEmpty, OpFault:
			return CategoryPermanent
		}
		return CategoryInfrastructure
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeConfiguration, ErrCodeNotFound:
			return CategoryClientError
		case ErrCodeTimeout, ErrCodeUpstreamUnavailable:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}
