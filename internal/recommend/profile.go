package recommend

import (
	"github.com/anonto42/chyll/backend/internal/models"
)

const (
	maxSummarizedPosts = 50
	maxSummaryRunes    = 200
	highEngagementMin  = 5
)

var defaultPreferredCategories = []string{string(models.CategoryViral), string(models.CategoryTrending)}

// InterestProfile is the compact description of a user sent to the model.
type InterestProfile struct {
	UserID              string   `json:"-"`
	FavoritePlatforms   []string `json:"favorite_platforms"`
	SavedPostsCount     int      `json:"saved_posts_count"`
	PreferredCategories []string `json:"preferred_categories"`
	EngagementLevel     string   `json:"engagement_level"`
}

// BuildInterestProfile summarizes user. A nil user yields the anonymous
// profile.
func BuildInterestProfile(user *models.User, favoriteCount int) InterestProfile {
	profile := InterestProfile{
		FavoritePlatforms:   []string{},
		SavedPostsCount:     favoriteCount,
		PreferredCategories: append([]string(nil), defaultPreferredCategories...),
		EngagementLevel:     "medium",
	}
	if user != nil {
		profile.UserID = user.ID
		if len(user.FavoritePlatforms) > 0 {
			profile.FavoritePlatforms = append(profile.FavoritePlatforms, user.FavoritePlatforms...)
		}
	}
	if favoriteCount > highEngagementMin {
		profile.EngagementLevel = "high"
	}
	return profile
}

// PostSummary is one candidate post as shown to the model.
type PostSummary struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
}

// SummarizePosts keeps the first 50 posts and truncates their content.
func SummarizePosts(posts []models.Post) []PostSummary {
	if len(posts) > maxSummarizedPosts {
		posts = posts[:maxSummarizedPosts]
	}
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{
			ID:       p.ID,
			Platform: string(p.Platform),
			Content:  truncateRunes(p.Content, maxSummaryRunes),
			Category: string(p.Category),
			Likes:    p.Likes,
			Comments: p.Comments,
		})
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
