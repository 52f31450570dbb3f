package application

import (
	"errors"
	"fmt"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// Transport operations that can fail.
const (
	OpBuild   = "build"
	OpRequest = "request"
	OpStatus  = "status"
	OpDecode  = "decode"
	OpFault   = "fault"
	OpEmpty   = "empty"
)

// TransportError is a network failure, timeout or unusable payload from one
// endpoint.
type TransportError struct {
	Protocol   domain.Protocol
	Endpoint   string
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s %s failed (status: %d): %v", e.Protocol, e.Op, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s %s failed: %v", e.Protocol, e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(protocol domain.Protocol, endpoint, op string, statusCode int, err error) *TransportError {
	return &TransportError{
		Protocol:   protocol,
		Endpoint:   endpoint,
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}

func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	ok := errors.As(err, &tErr)
	return tErr, ok
}

// FatalResponseError describes a primary response that carried TypeCode "3".
// It only appears as the primary cause of a FallbackError.
type FatalResponseError struct {
	Endpoint string
	Info     domain.ErrorInfo
}

func (e *FatalResponseError) Error() string {
	return fmt.Sprintf("%s returned fatal error (TypeCode %s): %s", e.Endpoint, e.Info.TypeCode, e.Info.Desc)
}

// FallbackError reports that both the primary and the backup attempt failed.
// Attempts counts the calls actually made: 1 when the caller's context ended
// before the backup was tried.
type FallbackError struct {
	Primary  error
	Backup   error
	Attempts int
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("both primary and backup endpoints failed: primary: %v; backup: %v", e.Primary, e.Backup)
}

func (e *FallbackError) Unwrap() []error {
	return []error{e.Primary, e.Backup}
}

func IsFallbackError(err error) (*FallbackError, bool) {
	var fbErr *FallbackError
	ok := errors.As(err, &fbErr)
	return fbErr, ok
}

// ConfigurationError is raised before any network call when a required
// credential is missing.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

var ErrMissingLicenseKey = &ConfigurationError{Field: "LicenseKey", Message: "license key cannot be empty"}

func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	ok := errors.As(err, &cfgErr)
	return cfgErr, ok
}
