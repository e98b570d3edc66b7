package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/relayforge/linkedin-go/internal/types"
)

// SearchCompanies runs a keyword search over company pages.
func SearchCompanies(ctx context.Context, httpClient *http.Client, baseURL string, params types.CompanySearchParams) (*types.CompanySearchResult, error) {
	if err := types.ValidateKeywords(params.Keywords); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("keywords", params.Keywords)
	if params.Start > 0 {
		q.Set("start", strconv.Itoa(params.Start))
	}
	if params.Count > 0 {
		q.Set("count", strconv.Itoa(params.Count))
	}
	for _, facet := range params.Facets {
		q.Add("facet", facet)
	}
	u := baseURL + "/company-search?" + q.Encode()

	var res types.CompanySearchResult
	if err := getJSON(ctx, httpClient, u, "search companies", &res); err != nil {
		return nil, err
	}
	return &res, nil
}
