package apierr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failure response is retained for
// debugging.
const maxErrorBody = 8 << 10

// FromResponse drains resp and builds a classified error for operation op.
// The response body is consumed; callers must not read it afterwards.
func FromResponse(op string, resp *http.Response) *ClassifiedError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	e := &ClassifiedError{
		Category:   categoryFor(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Body:       string(raw),
		Underlying: fmt.Errorf("%s: status %d", op, resp.StatusCode),
	}
	var body APIBody
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		e.API = &body
	}
	return e
}

// NewNetworkError creates a classified error for network-level failures,
// which are always recoverable as they may be transient.
func NewNetworkError(op string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", op, err),
	}
}

// categoryFor maps HTTP status codes to error categories:
// 4xx client errors (except 408/429) are irrecoverable, 5xx and anything
// unexpected are recoverable.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}
