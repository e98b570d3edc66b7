package api

import (
	"fmt"
	"net/url"
	"strings"
)

// CompanySelector identifies which company resource a call addresses.
//
// At most one selector field is honored, in fixed priority order:
// Domain > ID > URL > Name > IsAdmin. When none is set the path addresses
// the authenticated member's own company ("~"). Free-text selector values
// are percent-escaped before they reach the wire.
type CompanySelector struct {
	// Domain selects companies by e-mail domain ("apple.com").
	Domain string
	// ID selects a company by its numeric identifier.
	ID int
	// URL selects a company by its public page URL.
	URL string
	// Name selects a company by universal name ("linkedin").
	Name string
	// IsAdmin selects the companies the authenticated member administers.
	IsAdmin bool

	// Fields, when non-empty, renders a field-selector segment
	// ":(f1,f2,...)" after the resource path.
	Fields []string
	// Params are extra query parameters passed through untouched by
	// selector resolution (paging, event-type, time ranges).
	Params url.Values
}

// resolve returns the company resource path together with the query values
// implied by the winning selector merged over a copy of s.Params.
func (s CompanySelector) resolve() (string, url.Values) {
	q := url.Values{}
	for k, vs := range s.Params {
		q[k] = append([]string(nil), vs...)
	}
	switch {
	case s.Domain != "":
		q.Set("email-domain", s.Domain)
		return "/companies", q
	case s.ID != 0:
		return fmt.Sprintf("/companies/id=%d", s.ID), q
	case s.URL != "":
		return "/companies/url=" + url.QueryEscape(s.URL), q
	case s.Name != "":
		return "/companies/universal-name=" + url.QueryEscape(s.Name), q
	case s.IsAdmin:
		q.Set("is-company-admin", "true")
		return "/companies", q
	default:
		return "/companies/~", q
	}
}

// requestURL assembles the final URL for a company call: selector path,
// optional sub-resource suffix, optional field selector, then query string.
func (s CompanySelector) requestURL(baseURL, suffix string) string {
	path, q := s.resolve()
	u := baseURL + path + suffix
	if len(s.Fields) > 0 {
		u += ":(" + strings.Join(s.Fields, ",") + ")"
	}
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
