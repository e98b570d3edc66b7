package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/relayforge/linkedin-go/internal/apierr"
	"github.com/relayforge/linkedin-go/internal/types"
)

// AddCompanyShare posts a new share on a company page. A caller-supplied
// visibility is honored as-is; when left unset it defaults to "anyone".
func AddCompanyShare(ctx context.Context, httpClient *http.Client, baseURL string, companyID int, share types.Share) (*types.ShareAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCompanyID(companyID); err != nil {
		return nil, err
	}
	if share.Visibility == nil {
		share.Visibility = &types.Visibility{Code: types.VisibilityAnyone}
	}
	body, err := json.Marshal(share)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/companies/%d/shares", baseURL, companyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, apierr.NewNetworkError("add company share", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apierr.FromResponse("add company share", resp)
	}

	var ack types.ShareAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
