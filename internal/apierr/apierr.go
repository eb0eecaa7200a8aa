// Package apierr defines the error taxonomy shared by every skysnoop
// component. The kinds are flat and all satisfy the APIError marker so
// callers can catch broadly with IsAPIError or narrowly with errors.As.
package apierr

import (
	"errors"
	"fmt"
	"time"
)

// APIError is implemented by every error kind in this package.
type APIError interface {
	error
	apiError()
}

// IsAPIError reports whether any error in err's chain originated from
// this library.
func IsAPIError(err error) bool {
	var ae APIError
	return errors.As(err, &ae)
}

// TransportError covers network-level failures: unreachable host, TLS
// failure, connection reset. The core never retries these.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
func (e *TransportError) apiError()     {}

// TimeoutError indicates the configured request timeout was exceeded.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
func (e *TimeoutError) apiError()     {}

// RemoteError is a non-success response from a backend. Body carries the
// raw response text for diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func (e *RemoteError) apiError() {}

// ValidationError means caller-supplied parameters failed a precondition
// before any network traffic happened.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Msg }
func (e *ValidationError) apiError()     {}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError means the selected backend cannot perform the
// requested operation, natively or by simulation. This is an expected,
// documented outcome for specific (backend, operation) pairs, not a defect.
// Alternative names the backend that does support the operation, when one
// exists.
type UnsupportedOperationError struct {
	Backend     string
	Operation   string
	Reason      string
	Alternative string
}

func (e *UnsupportedOperationError) Error() string {
	msg := fmt.Sprintf("%s is not supported by the %s backend", e.Operation, e.Backend)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Alternative != "" {
		msg += fmt.Sprintf(" (use the %s backend instead)", e.Alternative)
	}
	return msg
}

func (e *UnsupportedOperationError) apiError() {}
