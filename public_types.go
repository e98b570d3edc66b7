package linkedin

import (
	"github.com/relayforge/linkedin-go/internal/api"
	"github.com/relayforge/linkedin-go/internal/types"
)

// Public type aliases so SDK consumers can import only the linkedin package.

// CompanySelector identifies which company resource a call addresses. See
// the field documentation for the fixed selector priority order.
type CompanySelector = api.CompanySelector

// Requests
type (
	Share               = types.Share
	ShareContent        = types.ShareContent
	Visibility          = types.Visibility
	CompanySearchParams = types.CompanySearchParams
)

// VisibilityAnyone is the default share visibility.
const VisibilityAnyone = types.VisibilityAnyone

// Domain entities
type (
	Company = types.Company
	Update  = types.Update
	Person  = types.Person
	Comment = types.Comment
	Like    = types.Like
)

// Responses
type (
	CompanyList         = types.CompanyList
	UpdateList          = types.UpdateList
	CommentList         = types.CommentList
	LikeList            = types.LikeList
	FollowStatistics    = types.FollowStatistics
	UpdateStatistics    = types.UpdateStatistics
	ShareAck            = types.ShareAck
	CompanySearchResult = types.CompanySearchResult
)

// Errors re-exported in errors.go
