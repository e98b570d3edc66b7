package types

import "encoding/json"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Company represents a company page profile.
type Company struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	UniversalName string   `json:"universalName,omitempty"`
	Description   string   `json:"description,omitempty"`
	WebsiteURL    string   `json:"websiteUrl,omitempty"`
	LogoURL       string   `json:"logoUrl,omitempty"`
	Ticker        string   `json:"ticker,omitempty"`
	FoundedYear   int      `json:"foundedYear,omitempty"`
	NumFollowers  int      `json:"numFollowers,omitempty"`
	EmailDomains  []string `json:"emailDomains,omitempty"`
	Specialties   []string `json:"specialties,omitempty"`
}

// Update represents one item in a company's update feed. The updateContent
// document is polymorphic across update types, so it is left undecoded.
type Update struct {
	UpdateKey     string          `json:"updateKey"`
	UpdateType    string          `json:"updateType,omitempty"`
	Timestamp     int64           `json:"timestamp,omitempty"`
	NumLikes      int             `json:"numLikes,omitempty"`
	IsCommentable bool            `json:"isCommentable,omitempty"`
	IsLikable     bool            `json:"isLikable,omitempty"`
	UpdateContent json.RawMessage `json:"updateContent,omitempty"`
}

// Person is the author stub attached to comments and likes.
type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Headline  string `json:"headline,omitempty"`
}

// Comment represents a single comment on a company update.
type Comment struct {
	ID        int    `json:"id"`
	Comment   string `json:"comment"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Person    Person `json:"person"`
}

// Like represents a single like on a company update.
type Like struct {
	Person Person `json:"person"`
}

// FollowStatisticsPoint is one bucket of historical follower counts.
type FollowStatisticsPoint struct {
	Time               int64 `json:"time"`
	OrganicFollowCount int   `json:"organicFollowCount,omitempty"`
	PaidFollowCount    int   `json:"paidFollowCount,omitempty"`
	TotalFollowCount   int   `json:"totalFollowCount,omitempty"`
}

// UpdateStatisticsPoint is one bucket of historical status-update engagement.
type UpdateStatisticsPoint struct {
	Time            int64   `json:"time"`
	ImpressionCount int     `json:"impressionCount,omitempty"`
	ClickCount      int     `json:"clickCount,omitempty"`
	LikeCount       int     `json:"likeCount,omitempty"`
	CommentCount    int     `json:"commentCount,omitempty"`
	ShareCount      int     `json:"shareCount,omitempty"`
	Engagement      float64 `json:"engagement,omitempty"`
}
