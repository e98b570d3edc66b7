// Package apierr provides error classification for the client SDK.
// The SDK never retries on its own; classification tells callers which
// failures are worth retrying with their own policy.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCategory determines how errors should be handled by caller retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried by the caller with backoff.
	// Examples: 500 Internal Server Error, network timeouts, 429.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Sentinel errors for the status codes callers most often branch on.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized (missing, expired or revoked token)")
	ErrForbidden    = errors.New("forbidden (token lacks required permission)")
	ErrThrottled    = errors.New("request throttled")
)

// APIBody is the error document the REST API returns alongside a failure
// status.
type APIBody struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// ClassifiedError wraps an API failure with categorization metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int      // HTTP status code (0 for non-HTTP errors)
	API        *APIBody // Decoded error document, when the body parsed
	Body       string   // Raw response body for debugging
	Underlying error    // The original error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.API != nil && e.API.Message != "" {
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Category, e.StatusCode, e.API.Message)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is maps well-known status codes onto the package sentinels so callers can
// use errors.Is without inspecting the struct.
func (e *ClassifiedError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrThrottled:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// IsIrrecoverable reports whether err is classified as not worth retrying.
func IsIrrecoverable(err error) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category == Irrecoverable
	}
	return false
}
