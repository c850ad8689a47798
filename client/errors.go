package client

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of client errors
type ErrorType int

const (
	ErrorValidation ErrorType = iota
	ErrorNetwork
	ErrorAPI
	ErrorCancelled
	ErrorUnknown
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorValidation:
		return "validation"
	case ErrorNetwork:
		return "network"
	case ErrorAPI:
		return "api"
	case ErrorCancelled:
		return "cancelled"
	case ErrorUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ClientError represents a structured error produced while talking to the
// video-download backend. API errors additionally carry the HTTP status
// code reported by the backend.
type ClientError struct {
	Type       ErrorType `json:"type"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	Cause      error     `json:"cause,omitempty"`
}

// Error implements the error interface
func (ce *ClientError) Error() string {
	switch {
	case ce.Type == ErrorAPI:
		return fmt.Sprintf("%s: %s (status %d)", ce.Type.String(), ce.Message, ce.StatusCode)
	case ce.Cause != nil:
		return fmt.Sprintf("%s: %s (caused by: %v)", ce.Type.String(), ce.Message, ce.Cause)
	default:
		return fmt.Sprintf("%s: %s", ce.Type.String(), ce.Message)
	}
}

// Unwrap returns the underlying cause error
func (ce *ClientError) Unwrap() error {
	return ce.Cause
}

// NewValidationError creates a ClientError for invalid input or an invalid
// response shape. Validation errors are terminal and never retried.
func NewValidationError(message string) *ClientError {
	return &ClientError{
		Type:    ErrorValidation,
		Message: message,
	}
}

// NewNetworkError creates a ClientError for a transport-level failure.
func NewNetworkError(message string, cause error) *ClientError {
	return &ClientError{
		Type:    ErrorNetwork,
		Message: message,
		Cause:   cause,
	}
}

// NewAPIError creates a ClientError for a request-level error reported by
// the backend, carrying the response status code.
func NewAPIError(statusCode int, message string) *ClientError {
	return &ClientError{
		Type:       ErrorAPI,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewCancelledError creates a ClientError for a caller-initiated abort.
// The context error is kept as the cause so errors.Is with
// context.Canceled or context.DeadlineExceeded still holds.
func NewCancelledError(cause error) *ClientError {
	return &ClientError{
		Type:    ErrorCancelled,
		Message: "request cancelled",
		Cause:   cause,
	}
}

// NewUnknownError creates a ClientError for an unexpected failure that is
// none of the classified kinds. Unknown errors are never retried.
func NewUnknownError(message string, cause error) *ClientError {
	return &ClientError{
		Type:    ErrorUnknown,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if the error is of a specific type
func (ce *ClientError) IsType(errorType ErrorType) bool {
	return ce.Type == errorType
}

// IsClientError checks if an error is a ClientError and optionally of a specific type
func IsClientError(err error, errorType ...ErrorType) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}
	if len(errorType) == 0 {
		return true
	}
	for _, et := range errorType {
		if ce.Type == et {
			return true
		}
	}
	return false
}

// IsRetryable reports whether another attempt may be made for this error.
// Only network and API failures are retryable; validation failures,
// cancellation, and unclassified errors are terminal.
func IsRetryable(err error) bool {
	return IsClientError(err, ErrorNetwork, ErrorAPI)
}
