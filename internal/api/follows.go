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

// FollowCompany starts following a company on behalf of the authenticated
// member.
func FollowCompany(ctx context.Context, httpClient *http.Client, baseURL string, companyID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateCompanyID(companyID); err != nil {
		return err
	}
	body, err := json.Marshal(types.FollowRequest{ID: companyID})
	if err != nil {
		return err
	}
	u := baseURL + "/people/~/following/companies"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return apierr.NewNetworkError("follow company", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return apierr.FromResponse("follow company", resp)
	}
	return nil
}

// UnfollowCompany stops following a company on behalf of the authenticated
// member.
func UnfollowCompany(ctx context.Context, httpClient *http.Client, baseURL string, companyID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateCompanyID(companyID); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/people/~/following/companies/id=%d", baseURL, companyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return apierr.NewNetworkError("unfollow company", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return apierr.FromResponse("unfollow company", resp)
	}
	return nil
}
