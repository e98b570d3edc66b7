package types

// ------------------------------
// Request Types
// ------------------------------

// Visibility controls who can see a share.
type Visibility struct {
	Code string `json:"code"`
}

// VisibilityAnyone is the visibility applied to a share when the caller
// leaves Share.Visibility unset.
const VisibilityAnyone = "anyone"

// ShareContent is the optional link attachment of a share.
type ShareContent struct {
	Title             string `json:"title,omitempty"`
	Description       string `json:"description,omitempty"`
	SubmittedURL      string `json:"submitted-url,omitempty"`
	SubmittedImageURL string `json:"submitted-image-url,omitempty"`
}

// Share holds parameters for a new company share.
type Share struct {
	Comment    string        `json:"comment,omitempty"`
	Content    *ShareContent `json:"content,omitempty"`
	Visibility *Visibility   `json:"visibility,omitempty"`
}

// FollowRequest is the body of a follow-company call.
type FollowRequest struct {
	ID int `json:"id"`
}

// CompanySearchParams holds parameters for a company search.
type CompanySearchParams struct {
	Keywords string
	Start    int
	Count    int
	// Facets are appended verbatim as a facet query parameter each,
	// e.g. "location,us:84".
	Facets []string
}
