package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/relayforge/linkedin-go/internal/apierr"
)

// getJSON performs a GET against u and decodes the 200 response into out.
// Non-200 statuses become classified errors attributed to op.
func getJSON(ctx context.Context, httpClient *http.Client, u, op string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return apierr.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apierr.FromResponse(op, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
