// Package linkedin is a Go client for the LinkedIn REST API: company pages,
// company sharing, and company following.
//
// Every operation builds a resource path, optionally serializes a JSON body,
// and performs one synchronous OAuth2-authenticated HTTP call. Token
// acquisition and refresh are delegated to golang.org/x/oauth2; this package
// only injects the bearer token it is handed.
package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/relayforge/linkedin-go/internal/api"
)

// DefaultBaseURL is the production REST API root.
const DefaultBaseURL = "https://api.linkedin.com/v1"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL   string
	http      *http.Client
	tokens    oauth2.TokenSource
	userAgent string
}

// New constructs a Client that authenticates every request with tokens from
// ts. Additional options can be provided via functional arguments.
func New(ts oauth2.TokenSource, opts ...Option) (*Client, error) {
	if ts == nil {
		return nil, errors.New("token source cannot be nil")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		tokens:  ts,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap HTTP transport so every request picks up the bearer token and
	// request counters. Options that wrap the transport (debug logging)
	// end up beneath this pair and see the fully-decorated request.
	c.wrapTransport()

	return c, nil
}

// NewWithAccessToken constructs a Client from a previously obtained access
// token. Convenience constructor for callers that completed the OAuth2
// exchange elsewhere.
func NewWithAccessToken(accessToken string, opts ...Option) (*Client, error) {
	if accessToken == "" {
		return nil, errors.New("access token cannot be empty")
	}
	return New(StaticTokenSource(accessToken), opts...)
}

// wrapTransport installs the metrics and auth round-trippers over whatever
// transport the options left behind.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &authTransport{
		base:      &metricsTransport{base: base},
		tokens:    c.tokens,
		userAgent: c.userAgent,
	}
}

// --------------------------------------------------------------------
// Company operations - delegated to internal/api
// --------------------------------------------------------------------

// GetCompany retrieves a single company profile. Use the unique selectors
// (ID, URL, Name, or a zero selector for the authenticated member's own
// company); the multi-company selectors return an envelope, see
// ListCompanies.
func (c *Client) GetCompany(ctx context.Context, sel CompanySelector) (*Company, error) {
	return api.GetCompany(ctx, c.http, c.baseURL, sel)
}

// ListCompanies retrieves companies matched by the multi-company selectors
// (Domain, IsAdmin).
func (c *Client) ListCompanies(ctx context.Context, sel CompanySelector) (*CompanyList, error) {
	return api.ListCompanies(ctx, c.http, c.baseURL, sel)
}

// ListCompanyUpdates retrieves a company's update feed. Paging and
// event-type filters go through sel.Params.
func (c *Client) ListCompanyUpdates(ctx context.Context, sel CompanySelector) (*UpdateList, error) {
	return api.ListCompanyUpdates(ctx, c.http, c.baseURL, sel)
}

// GetCompanyStatistics retrieves a company's statistics document. Its shape
// varies by page type, so it is returned undecoded.
func (c *Client) GetCompanyStatistics(ctx context.Context, sel CompanySelector) (json.RawMessage, error) {
	return api.GetCompanyStatistics(ctx, c.http, c.baseURL, sel)
}

// GetHistoricalFollowStatistics retrieves time-bucketed follower counts.
func (c *Client) GetHistoricalFollowStatistics(ctx context.Context, sel CompanySelector) (*FollowStatistics, error) {
	return api.GetHistoricalFollowStatistics(ctx, c.http, c.baseURL, sel)
}

// GetHistoricalUpdateStatistics retrieves time-bucketed engagement counts
// for a company's status updates.
func (c *Client) GetHistoricalUpdateStatistics(ctx context.Context, sel CompanySelector) (*UpdateStatistics, error) {
	return api.GetHistoricalUpdateStatistics(ctx, c.http, c.baseURL, sel)
}

// ListUpdateComments retrieves the comments on one company update.
func (c *Client) ListUpdateComments(ctx context.Context, sel CompanySelector, updateKey string) (*CommentList, error) {
	return api.ListUpdateComments(ctx, c.http, c.baseURL, sel, updateKey)
}

// ListUpdateLikes retrieves the likes on one company update.
func (c *Client) ListUpdateLikes(ctx context.Context, sel CompanySelector, updateKey string) (*LikeList, error) {
	return api.ListUpdateLikes(ctx, c.http, c.baseURL, sel, updateKey)
}

// --------------------------------------------------------------------
// Sharing operations - delegated to internal/api
// --------------------------------------------------------------------

// AddCompanyShare posts a new share on a company page. Visibility defaults
// to "anyone" unless the caller supplies one.
func (c *Client) AddCompanyShare(ctx context.Context, companyID int, share Share) (*ShareAck, error) {
	return api.AddCompanyShare(ctx, c.http, c.baseURL, companyID, share)
}

// --------------------------------------------------------------------
// Following operations - delegated to internal/api
// --------------------------------------------------------------------

// FollowCompany starts following a company on behalf of the authenticated
// member.
func (c *Client) FollowCompany(ctx context.Context, companyID int) error {
	return api.FollowCompany(ctx, c.http, c.baseURL, companyID)
}

// UnfollowCompany stops following a company on behalf of the authenticated
// member.
func (c *Client) UnfollowCompany(ctx context.Context, companyID int) error {
	return api.UnfollowCompany(ctx, c.http, c.baseURL, companyID)
}

// --------------------------------------------------------------------
// Search operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchCompanies runs a keyword search over company pages.
func (c *Client) SearchCompanies(ctx context.Context, params CompanySearchParams) (*CompanySearchResult, error) {
	return api.SearchCompanies(ctx, c.http, c.baseURL, params)
}
