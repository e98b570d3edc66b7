package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/relayforge/linkedin-go/internal/types"
)

// GetCompany retrieves a single company profile. Use it with the unique
// selectors (id, url, universal-name, or none for the member's own company);
// the multi-company selectors return an envelope, see ListCompanies.
func GetCompany(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (*types.Company, error) {
	var c types.Company
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, ""), "get company", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCompanies retrieves the company envelope produced by the
// multi-company selectors (email-domain, is-company-admin).
func ListCompanies(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (*types.CompanyList, error) {
	var cl types.CompanyList
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, ""), "list companies", &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// ListCompanyUpdates retrieves a company's update feed. Paging and
// event-type filters go through sel.Params.
func ListCompanyUpdates(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (*types.UpdateList, error) {
	var ul types.UpdateList
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, "/updates"), "list company updates", &ul); err != nil {
		return nil, err
	}
	return &ul, nil
}

// GetCompanyStatistics retrieves a company's statistics document. Its shape
// varies by page type, so it is returned undecoded.
func GetCompanyStatistics(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, "/company-statistics"), "get company statistics", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// GetHistoricalFollowStatistics retrieves time-bucketed follower counts.
// Bucket granularity and time range go through sel.Params
// (time-granularity, start-timestamp, end-timestamp).
func GetHistoricalFollowStatistics(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (*types.FollowStatistics, error) {
	var fs types.FollowStatistics
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, "/historical-follow-statistics"), "get historical follow statistics", &fs); err != nil {
		return nil, err
	}
	return &fs, nil
}

// GetHistoricalUpdateStatistics retrieves time-bucketed engagement counts
// for a company's status updates.
func GetHistoricalUpdateStatistics(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector) (*types.UpdateStatistics, error) {
	var us types.UpdateStatistics
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, "/historical-status-update-statistics"), "get historical update statistics", &us); err != nil {
		return nil, err
	}
	return &us, nil
}

// ListUpdateComments retrieves the comments on one company update.
func ListUpdateComments(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector, updateKey string) (*types.CommentList, error) {
	if err := types.ValidateUpdateKey(updateKey); err != nil {
		return nil, err
	}
	suffix := "/updates/key=" + url.QueryEscape(updateKey) + "/update-comments"
	var cl types.CommentList
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, suffix), "list update comments", &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// ListUpdateLikes retrieves the likes on one company update.
func ListUpdateLikes(ctx context.Context, httpClient *http.Client, baseURL string, sel CompanySelector, updateKey string) (*types.LikeList, error) {
	if err := types.ValidateUpdateKey(updateKey); err != nil {
		return nil, err
	}
	suffix := "/updates/key=" + url.QueryEscape(updateKey) + "/likes"
	var ll types.LikeList
	if err := getJSON(ctx, httpClient, sel.requestURL(baseURL, suffix), "list update likes", &ll); err != nil {
		return nil, err
	}
	return &ll, nil
}
