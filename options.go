package linkedin

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the metrics and authorization transport
// wrappers are installed, so transport-related options (like debug logging)
// will be placed underneath them. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithBaseURL points the client at a different API root, e.g. a sandbox or
// an httptest server. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The client's
// transport is still wrapped with the auth and metrics round-trippers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the auth wrapper; dumps include
// the bearer token and full payloads. Do not enable this option in
// production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
