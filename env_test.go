package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("LINKEDIN_ACCESS_TOKEN", "")
	t.Setenv("LINKEDIN_BASE_URL", "")
	t.Setenv("LINKEDIN_HTTP_TIMEOUT", "")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestNewFromEnv_RequiresAccessToken(t *testing.T) {
	t.Setenv("LINKEDIN_ACCESS_TOKEN", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error when LINKEDIN_ACCESS_TOKEN is unset")
	}
}

func TestNewFromEnv_EndToEnd(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Company{ID: 1})
	}))
	defer srv.Close()

	t.Setenv("LINKEDIN_ACCESS_TOKEN", "env-token")
	t.Setenv("LINKEDIN_BASE_URL", srv.URL)
	t.Setenv("LINKEDIN_HTTP_TIMEOUT", "2s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.http.Timeout != 2*time.Second {
		t.Fatalf("HTTPTimeout not applied: %v", c.http.Timeout)
	}
	if _, err := c.GetCompany(context.Background(), CompanySelector{}); err != nil {
		t.Fatalf("GetCompany: %v", err)
	}
	if gotAuth != "Bearer env-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestConfigOAuthConfig(t *testing.T) {
	t.Setenv("LINKEDIN_CLIENT_ID", "cid")
	t.Setenv("LINKEDIN_CLIENT_SECRET", "csecret")
	t.Setenv("LINKEDIN_REDIRECT_URL", "https://example.com/cb")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	oc := cfg.OAuthConfig("r_basicprofile")
	if oc.ClientID != "cid" || oc.ClientSecret != "csecret" || oc.RedirectURL != "https://example.com/cb" {
		t.Fatalf("oauth config = %+v", oc)
	}
	if oc.Endpoint != Endpoint {
		t.Fatalf("endpoint = %+v", oc.Endpoint)
	}
}
