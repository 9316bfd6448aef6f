package models

import "time"

// Post is the canonical, platform-neutral feed item stored in MongoDB
type Post struct {
	ID            string    `json:"id" bson:"_id"`
	Platform      Platform  `json:"platform" bson:"platform"`
	PlatformColor string    `json:"platformColor" bson:"platform_color"`
	User          PostUser  `json:"user" bson:"user"`
	Content       string    `json:"content" bson:"content"`
	Media         Media     `json:"media" bson:"media"`
	Likes         int64     `json:"likes" bson:"likes"`
	Comments      int64     `json:"comments" bson:"comments"`
	Shares        int64     `json:"shares" bson:"shares"`
	Timestamp     string    `json:"timestamp" bson:"timestamp"` // relative, e.g. "2 hours ago"
	Category      Category  `json:"category" bson:"category"`
	SourceID      string    `json:"sourceId,omitempty" bson:"source_id,omitempty"` // empty for seed posts
	SourceURL     string    `json:"sourceUrl,omitempty" bson:"source_url,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

// PostUser is a snapshot of the author at ingestion time
type PostUser struct {
	Name     string `json:"name" bson:"name"`
	Username string `json:"username" bson:"username"`
	Avatar   string `json:"avatar" bson:"avatar"`
}

type Media struct {
	Type      MediaType `json:"type" bson:"type"`
	URL       string    `json:"url" bson:"url"`
	Thumbnail string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// Engagement is the sum of all public counters.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments + p.Shares
}

// CommentRequest defines the request body for commenting on a post
type CommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=2000"`
}

// PostListQuery is bound from the query string of GET /posts
type PostListQuery struct {
	Platform  string `query:"platform" validate:"omitempty,platform"`
	Category  string `query:"category" validate:"omitempty,category"`
	TimeRange string `query:"time_range" validate:"omitempty,oneof=24h 7d 30d all"`
	SortBy    string `query:"sort_by" validate:"omitempty,oneof=date likes comments engagement"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Skip      int    `query:"skip" validate:"omitempty,min=0"`
}

// SearchQuery is bound from the query string of GET /search
type SearchQuery struct {
	Platform string `query:"platform" validate:"omitempty,platform"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=relevance date likes comments"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=200"`
}
