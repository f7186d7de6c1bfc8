// Package errors provides structured error types for the pokedex application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the load API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The fetch layer reports exactly three failure kinds:
//   - NETWORK_ERROR: the transport failed before a response arrived
//   - API_ERROR: the upstream answered with a non-2xx status (see [APIError])
//   - PARSE_ERROR: the body was not JSON or did not have the expected shape
//
// The remaining codes are used by callers (CLI, HTTP handlers) to classify
// their own failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid pokemon id: %s", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Fetch layer errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeAPI     Code = "API_ERROR"
	ErrCodeParse   Code = "PARSE_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// APIError reports a response whose status is outside the 2xx range.
type APIError struct {
	Status     int    // HTTP status code (e.g., 404)
	StatusText string // Reason phrase (e.g., "Not Found")
	URL        string // Requested URL
}

// NewAPIError builds an APIError, filling StatusText from the status code
// when the server did not send one.
func NewAPIError(url string, status int, statusText string) *APIError {
	if statusText == "" {
		statusText = http.StatusText(status)
	}
	return &APIError{Status: status, StatusText: statusText, URL: url}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d %s", e.Status, e.StatusText)
}

// Code returns the error code for this error type. A 404 is reported as
// NOT_FOUND so callers can map it to their own not-found handling.
func (e *APIError) Code() Code {
	if e.Status == http.StatusNotFound {
		return ErrCodeNotFound
	}
	return ErrCodeAPI
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or *APIError with a
// matching code. An *APIError matches both ErrCodeAPI and its own Code().
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == code {
		return true
	}
	var api *APIError
	if errors.As(err, &api) {
		return code == ErrCodeAPI || api.Code() == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var api *APIError
	if errors.As(err, &api) {
		return api.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Status returns the HTTP status carried by err, or 0 if there is none.
func Status(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		return api.Status
	}
	return 0
}
