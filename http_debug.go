package linkedin

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// debugging client issues.
//
// When to use:
//   - Set LINKEDIN_DEBUG=true or DEBUG=true environment variable
//   - During development when building new API integrations
//   - When investigating unexpected API responses or auth failures
//
// Security considerations:
//   - Dumps include the Authorization header and full payloads
//   - Only enable in development/staging environments
//
// Example usage:
//
//	export LINKEDIN_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - LINKEDIN_DEBUG=true (targeted client debugging)
//   - DEBUG=true (general debug flag, common in development workflows)
//
// Returns true if either environment variable is set to "true"
// (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("LINKEDIN_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
