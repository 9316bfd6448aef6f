package repositories

import (
	"time"

	"github.com/anonto42/chyll/backend/internal/models"
)

type SortOrder string

const (
	SortDate       SortOrder = "date"
	SortLikes      SortOrder = "likes"
	SortComments   SortOrder = "comments"
	SortEngagement SortOrder = "engagement"
	SortRelevance  SortOrder = "relevance"
)

// Counter names a public post counter that can be bumped by users.
type Counter string

const (
	CounterLikes    Counter = "likes"
	CounterComments Counter = "comments"
	CounterShares   Counter = "shares"
)

// PostFilter narrows a post listing. Zero fields do not filter.
type PostFilter struct {
	Platform models.Platform
	Category models.Category
	Since    time.Time
	SortBy   SortOrder
	Skip     int64
	Limit    int64
}

// SearchFilter matches Query case-insensitively against content and author.
type SearchFilter struct {
	Query    string
	Platform models.Platform
	SortBy   SortOrder
	Limit    int64
}

type PlatformStats struct {
	Platform models.Platform `json:"platform" bson:"_id"`
	Posts    int64           `json:"posts" bson:"posts"`
	Likes    int64           `json:"likes" bson:"likes"`
	Comments int64           `json:"comments" bson:"comments"`
	Shares   int64           `json:"shares" bson:"shares"`
}

type Overview struct {
	TotalPosts    int64                     `json:"total_posts"`
	TotalLikes    int64                     `json:"total_likes"`
	TotalComments int64                     `json:"total_comments"`
	TotalShares   int64                     `json:"total_shares"`
	TotalVideos   int64                     `json:"total_videos"`
	ByCategory    map[models.Category]int64 `json:"by_category"`
}

// TimeRangeSince converts a 24h/7d/30d range to its lower bound. "all" and
// unknown values yield the zero time.
func TimeRangeSince(now time.Time, timeRange string) time.Time {
	switch timeRange {
	case "24h":
		return now.Add(-24 * time.Hour)
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

// videoPlatforms host real playable video, preferred for the featured slot.
var videoPlatforms = []models.Platform{models.PlatformYouTube, models.PlatformReddit}
