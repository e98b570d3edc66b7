package linkedin

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Endpoint is LinkedIn's OAuth2 endpoint pair. Authorization-URL
// construction and code/token exchange are handled entirely by
// golang.org/x/oauth2 against these URLs.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.linkedin.com/uas/oauth2/authorization",
	TokenURL: "https://www.linkedin.com/uas/oauth2/accessToken",
}

// NewOAuthConfig returns an oauth2.Config pinned to the LinkedIn endpoints.
// Use its AuthCodeURL and Exchange to run the three-legged flow, then feed
// the resulting TokenSource to New.
func NewOAuthConfig(clientID, clientSecret, redirectURL string, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     Endpoint,
	}
}

// StaticTokenSource wraps an already-issued access token. The token is never
// refreshed; callers own its lifecycle.
func StaticTokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

// authTransport decorates every outgoing request with the bearer token, the
// JSON format header, and a request id for log correlation.
type authTransport struct {
	base      http.RoundTripper
	tokens    oauth2.TokenSource
	userAgent string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("oauth2 token: %w", err)
	}

	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	tok.SetAuthHeader(cloned)
	cloned.Header.Set("x-li-format", "json")
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	if t.userAgent != "" {
		cloned.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(cloned)
}
