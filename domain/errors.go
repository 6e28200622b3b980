package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for the caller boundary
type ErrorKind int

const (
	// KindInvalidParameters marks malformed input or a provider-rejected (400) request. Not retryable.
	KindInvalidParameters ErrorKind = iota + 1
	// KindServiceUnavailable marks a provider 5xx, connection failure or timeout. Caller may retry later.
	KindServiceUnavailable
	// KindAPI marks any other non-success HTTP status, with the status attached.
	KindAPI
	// KindMapping marks a required field missing or malformed in a provider response.
	KindMapping
	// KindValidation marks a value object constructed with out-of-range or malformed data.
	KindValidation
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameters:
		return "invalid_parameters"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindAPI:
		return "api_error"
	case KindMapping:
		return "mapping_error"
	case KindValidation:
		return "validation_error"
	}
	return "unknown"
}

// Error is the single error type crossing the gateway and service boundaries.
// Transport and HTTP failures are re-raised as one of the kinds above;
// validation errors propagate directly from value object constructors.
type Error struct {
	Kind       ErrorKind
	StatusCode int // set for KindAPI only
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind == KindAPI && e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidParameters builds an invalid-parameters error
func NewInvalidParameters(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidParameters, Message: fmt.Sprintf(format, args...)}
}

// NewServiceUnavailable builds a service-unavailable error wrapping the cause
func NewServiceUnavailable(message string, cause error) *Error {
	return &Error{Kind: KindServiceUnavailable, Message: message, Err: cause}
}

// NewAPIError builds a generic API error carrying the HTTP status
func NewAPIError(statusCode int, message string) *Error {
	return &Error{Kind: KindAPI, StatusCode: statusCode, Message: message}
}

// NewMappingError builds a mapping error for a provider contract mismatch
func NewMappingError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindMapping, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError builds a validation error
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 if err is not a domain Error
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
