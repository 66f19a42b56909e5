package dropbox

import (
	"errors"
	"fmt"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidInput - a shared link or conversion method was rejected before any network activity
	ErrInvalidInput = Error("invalid input")

	// ErrConfigurationMissing - required credentials were absent when a client was constructed from configuration
	ErrConfigurationMissing = Error("dropbox configuration missing")
)

const (
	errorSummaryKey = "error_summary"
	errorKey        = "error"
)

// APIError is the structured failure returned for every transport-level problem: network errors, non-2xx
// responses and undecodable response bodies.  Code is the HTTP status (0 when no response was received) and
// Response holds the failing response body decoded as a JSON object, when there was one.
type APIError struct {
	Message  string
	Code     int
	Response map[string]any

	err error
}

// NewAPIError initializer for APIError struct.  It never fails.
func NewAPIError(message string, code int, response map[string]any) *APIError {
	return &APIError{
		Message:  message,
		Code:     code,
		Response: response,
	}
}

// Error returns the message, prefixed by the status code when one is known.
func (e *APIError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("dropbox: %s", e.Message)
	}
	return fmt.Sprintf("dropbox: %s (status %d)", e.Message, e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// Summary returns response.error_summary when present.
func (e *APIError) Summary() (string, bool) {
	if e.Response == nil {
		return "", false
	}
	summary, ok := e.Response[errorSummaryKey].(string)
	return summary, ok
}

// Tag returns response.error[".tag"] when present.  Any missing or mistyped level yields ("", false).
func (e *APIError) Tag() (string, bool) {
	if e.Response == nil {
		return "", false
	}
	detail, ok := e.Response[errorKey].(map[string]any)
	if !ok {
		return "", false
	}
	tag, ok := detail[tagKey].(string)
	return tag, ok
}

// AsAPIError reports whether err is, or wraps, an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// WrapAPIError is NewAPIError with an underlying cause that errors.Is and errors.As can reach.
func WrapAPIError(message string, code int, response map[string]any, cause error) *APIError {
	e := NewAPIError(message, code, response)
	e.err = cause
	return e
}
