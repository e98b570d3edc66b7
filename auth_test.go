package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthTransport_DecoratesRequests(t *testing.T) {
	t.Parallel()
	var gotAuth, gotFormat, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFormat = r.Header.Get("x-li-format")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(Company{ID: 1})
	}))
	defer srv.Close()

	c, err := NewWithAccessToken("secret-token", WithBaseURL(srv.URL), WithUserAgent("linkedin-go-test/1.0"))
	if err != nil {
		t.Fatalf("NewWithAccessToken: %v", err)
	}
	if _, err := c.GetCompany(context.Background(), CompanySelector{}); err != nil {
		t.Fatalf("GetCompany: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotFormat != "json" {
		t.Fatalf("x-li-format = %q", gotFormat)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-Id not set")
	}
}

func TestAuthTransport_FreshRequestIDPerCall(t *testing.T) {
	t.Parallel()
	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode(Company{ID: 1})
	}))
	defer srv.Close()

	c, err := NewWithAccessToken("tok", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewWithAccessToken: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := c.GetCompany(context.Background(), CompanySelector{}); err != nil {
			t.Fatalf("GetCompany: %v", err)
		}
	}
	if len(ids) != 2 || ids[0] == ids[1] {
		t.Fatalf("expected distinct request ids, got %v", ids)
	}
}

func TestNewOAuthConfig_PinsEndpoints(t *testing.T) {
	t.Parallel()
	cfg := NewOAuthConfig("id", "secret", "https://example.com/callback", "r_basicprofile", "rw_company_admin")
	if cfg.Endpoint != Endpoint {
		t.Fatalf("endpoint = %+v", cfg.Endpoint)
	}
	if cfg.ClientID != "id" || cfg.ClientSecret != "secret" || len(cfg.Scopes) != 2 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.Endpoint.TokenURL != "https://www.linkedin.com/uas/oauth2/accessToken" {
		t.Fatalf("token URL = %q", cfg.Endpoint.TokenURL)
	}
}

func TestStaticTokenSource(t *testing.T) {
	t.Parallel()
	tok, err := StaticTokenSource("abc").Token()
	if err != nil || tok.AccessToken != "abc" {
		t.Fatalf("token = %+v err=%v", tok, err)
	}
}
