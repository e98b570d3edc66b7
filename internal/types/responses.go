package types

// ------------------------------
// Response Envelopes
// ------------------------------
//
// Collection resources share a paging envelope: _total is the size of the
// full result set, _start/_count echo the requested page.

// CompanyList is the envelope returned by multi-company selectors
// (email-domain, is-company-admin) and by company search.
type CompanyList struct {
	Total  int       `json:"_total"`
	Start  int       `json:"_start,omitempty"`
	Count  int       `json:"_count,omitempty"`
	Values []Company `json:"values"`
}

// UpdateList is the envelope of a company's update feed.
type UpdateList struct {
	Total  int      `json:"_total"`
	Start  int      `json:"_start,omitempty"`
	Count  int      `json:"_count,omitempty"`
	Values []Update `json:"values"`
}

// CommentList is the envelope of an update's comments.
type CommentList struct {
	Total  int       `json:"_total"`
	Values []Comment `json:"values"`
}

// LikeList is the envelope of an update's likes.
type LikeList struct {
	Total  int    `json:"_total"`
	Values []Like `json:"values"`
}

// FollowStatistics is the envelope of historical follower buckets.
type FollowStatistics struct {
	Total  int                     `json:"_total"`
	Values []FollowStatisticsPoint `json:"values"`
}

// UpdateStatistics is the envelope of historical status-update buckets.
type UpdateStatistics struct {
	Total  int                     `json:"_total"`
	Values []UpdateStatisticsPoint `json:"values"`
}

// ShareAck is returned when a share is accepted.
type ShareAck struct {
	UpdateKey string `json:"updateKey"`
	UpdateURL string `json:"updateUrl,omitempty"`
}

// CompanySearchResult wraps the companies envelope of a search response.
type CompanySearchResult struct {
	Companies CompanyList `json:"companies"`
}
