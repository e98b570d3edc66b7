package linkedin

import "github.com/relayforge/linkedin-go/internal/apierr"

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrNotFound is returned when the addressed resource does not exist
	// (HTTP 404).
	ErrNotFound = apierr.ErrNotFound

	// ErrUnauthorized is returned when the access token is missing, expired
	// or revoked (HTTP 401).
	ErrUnauthorized = apierr.ErrUnauthorized

	// ErrForbidden is returned when the token lacks the required permission
	// (HTTP 403).
	ErrForbidden = apierr.ErrForbidden

	// ErrThrottled is returned when the API throttles the caller (HTTP 429).
	ErrThrottled = apierr.ErrThrottled
)

// IsIrrecoverable reports whether err is classified as not worth retrying.
// The SDK never retries on its own; callers with a retry policy should skip
// errors for which this returns true.
func IsIrrecoverable(err error) bool { return apierr.IsIrrecoverable(err) }
