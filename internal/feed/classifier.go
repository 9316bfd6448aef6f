package feed

import "github.com/anonto42/chyll/backend/internal/models"

// Engagement carries the raw public counters a classifier may look at.
type Engagement struct {
	Likes    int64
	Comments int64
	Shares   int64
	Views    int64
}

type metric int

const (
	metricLikes metric = iota
	metricLikesAndShares
	metricViews
)

type thresholds struct {
	metric metric
	high   int64
	medium int64
}

// Scores strictly above high are viral, strictly above medium trending.
var classifierTable = map[models.Platform]thresholds{
	models.PlatformFacebook:  {metricLikesAndShares, 5_000_000, 2_000_000},
	models.PlatformInstagram: {metricLikes, 5_000_000, 1_000_000},
	models.PlatformLinkedIn:  {metricLikes, 500_000, 300_000},
	models.PlatformPinterest: {metricLikes, 2_000_000, 1_000_000},
	models.PlatformReddit:    {metricLikes, 50_000, 20_000},
	models.PlatformTwitter:   {metricLikes, 50_000, 10_000},
	models.PlatformTikTok:    {metricLikes, 10_000_000, 5_000_000},
	models.PlatformSnapchat:  {metricLikes, 3_000_000, 1_500_000},
	models.PlatformThreads:   {metricLikes, 4_000_000, 2_000_000},
	models.PlatformYouTube:   {metricViews, 10_000_000, 1_000_000},
}

// EngagementScore reduces counters to the single number the platform is
// classified on: views for YouTube, likes+3*shares for Facebook, likes
// everywhere else.
func EngagementScore(p models.Platform, e Engagement) int64 {
	switch classifierTable[p].metric {
	case metricViews:
		return e.Views
	case metricLikesAndShares:
		return e.Likes + 3*e.Shares
	default:
		return e.Likes
	}
}

// Classify buckets a score with the platform's thresholds. Unknown
// platforms always land in most-liked.
func Classify(p models.Platform, score int64) models.Category {
	t, ok := classifierTable[p]
	if !ok {
		return models.CategoryMostLiked
	}
	switch {
	case score > t.high:
		return models.CategoryViral
	case score > t.medium:
		return models.CategoryTrending
	default:
		return models.CategoryMostLiked
	}
}

func Categorize(p models.Platform, e Engagement) models.Category {
	return Classify(p, EngagementScore(p, e))
}
