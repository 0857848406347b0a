package ghin

import (
	"errors"
	"fmt"
	"time"
)

// Error type constants for ClientError.Type.
const (
	// ErrorTypeConfig marks a malformed configuration at construction time.
	ErrorTypeConfig = "Config"
	// ErrorTypeValidation marks client-side request validation failures,
	// raised before any network access.
	ErrorTypeValidation = "Validation"
	// ErrorTypeNetwork marks transport-level failures (DNS, connect,
	// timeout, body read).
	ErrorTypeNetwork = "Network"
	// ErrorTypeServer marks 5xx responses from the service.
	ErrorTypeServer = "Server"
	// ErrorTypeClient marks 4xx responses from the service.
	ErrorTypeClient = "Client"
	// ErrorTypeResponse marks responses whose shape fails schema
	// validation after decoding.
	ErrorTypeResponse = "Response"
)

// ClientError is the single error type surfaced by this package. Transport
// failures and schema failures share this one channel; callers distinguish
// them by Type.
type ClientError struct {
	Type       string
	Message    string
	Cause      error
	RequestID  string
	Method     string
	URL        string
	Entity     string
	StatusCode int
	Timestamp  time.Time
}

// Error implements error.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsValidation reports whether err is a client-side validation failure,
// i.e. the request was rejected before any network access.
func IsValidation(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrorTypeValidation || clientErr.Type == ErrorTypeConfig
	}
	return false
}

func newConfigError(message string, cause error) *ClientError {
	return &ClientError{
		Type:      ErrorTypeConfig,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

func newValidationError(message string, cause error) *ClientError {
	return &ClientError{
		Type:      ErrorTypeValidation,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}
