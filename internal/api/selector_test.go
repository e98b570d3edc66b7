package api

import (
	"net/url"
	"testing"
)

func TestSelectorResolve_EachKey(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		sel       CompanySelector
		wantPath  string
		wantQuery string
	}{
		{"domain", CompanySelector{Domain: "apple.com"}, "/companies", "email-domain=apple.com"},
		{"id", CompanySelector{ID: 162479}, "/companies/id=162479", ""},
		{"url", CompanySelector{URL: "https://www.linkedin.com/company/apple"}, "/companies/url=https%3A%2F%2Fwww.linkedin.com%2Fcompany%2Fapple", ""},
		{"name", CompanySelector{Name: "apple"}, "/companies/universal-name=apple", ""},
		{"is_admin", CompanySelector{IsAdmin: true}, "/companies", "is-company-admin=true"},
		{"default", CompanySelector{}, "/companies/~", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path, q := tc.sel.resolve()
			if path != tc.wantPath {
				t.Fatalf("path = %q, want %q", path, tc.wantPath)
			}
			if enc := q.Encode(); enc != tc.wantQuery {
				t.Fatalf("query = %q, want %q", enc, tc.wantQuery)
			}
		})
	}
}

func TestSelectorResolve_PriorityOrder(t *testing.T) {
	t.Parallel()
	// All five keys set: domain wins, the rest are ignored.
	sel := CompanySelector{
		Domain:  "apple.com",
		ID:      1,
		URL:     "https://example.com",
		Name:    "apple",
		IsAdmin: true,
	}
	path, q := sel.resolve()
	if path != "/companies" || q.Get("email-domain") != "apple.com" {
		t.Fatalf("domain should win: path=%q query=%q", path, q.Encode())
	}
	if q.Get("is-company-admin") != "" {
		t.Fatalf("losing selector leaked into query: %q", q.Encode())
	}

	// Drop domain: id wins over url, name, is_admin.
	sel.Domain = ""
	path, q = sel.resolve()
	if path != "/companies/id=1" || len(q) != 0 {
		t.Fatalf("id should win: path=%q query=%q", path, q.Encode())
	}

	// Drop id: url wins.
	sel.ID = 0
	if path, _ = sel.resolve(); path != "/companies/url=https%3A%2F%2Fexample.com" {
		t.Fatalf("url should win: path=%q", path)
	}

	// Drop url: name wins over is_admin.
	sel.URL = ""
	if path, _ = sel.resolve(); path != "/companies/universal-name=apple" {
		t.Fatalf("name should win: path=%q", path)
	}

	// Drop name: is_admin wins.
	sel.Name = ""
	path, q = sel.resolve()
	if path != "/companies" || q.Get("is-company-admin") != "true" {
		t.Fatalf("is_admin should win: path=%q query=%q", path, q.Encode())
	}
}

func TestSelectorResolve_EscapesFreeText(t *testing.T) {
	t.Parallel()
	path, _ := CompanySelector{Name: "acme & co"}.resolve()
	if path != "/companies/universal-name=acme+%26+co" {
		t.Fatalf("name not escaped: %q", path)
	}
	path, _ = CompanySelector{URL: "https://example.com/?a=b"}.resolve()
	if path != "/companies/url=https%3A%2F%2Fexample.com%2F%3Fa%3Db" {
		t.Fatalf("url not escaped: %q", path)
	}
	_, q := CompanySelector{Domain: "weird domain.com"}.resolve()
	if q.Encode() != "email-domain=weird+domain.com" {
		t.Fatalf("domain not escaped: %q", q.Encode())
	}
}

func TestSelectorRequestURL(t *testing.T) {
	t.Parallel()
	sel := CompanySelector{
		ID:     162479,
		Fields: []string{"id", "name", "description"},
		Params: url.Values{"start": {"20"}, "count": {"10"}},
	}
	got := sel.requestURL("https://api.example.com/v1", "/updates")
	want := "https://api.example.com/v1/companies/id=162479/updates:(id,name,description)?count=10&start=20"
	if got != want {
		t.Fatalf("requestURL = %q, want %q", got, want)
	}
}

func TestSelectorResolve_DoesNotMutateParams(t *testing.T) {
	t.Parallel()
	params := url.Values{"start": {"0"}}
	sel := CompanySelector{Domain: "apple.com", Params: params}
	_, q := sel.resolve()
	if q.Get("email-domain") != "apple.com" || q.Get("start") != "0" {
		t.Fatalf("merged query wrong: %q", q.Encode())
	}
	if params.Get("email-domain") != "" {
		t.Fatalf("caller params mutated: %q", params.Encode())
	}
}
