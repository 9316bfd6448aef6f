package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/models"
)

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name     string
		platform models.Platform
		score    int64
		want     models.Category
	}{
		{"instagram above high", models.PlatformInstagram, 6_000_000, models.CategoryViral},
		{"instagram at high is not viral", models.PlatformInstagram, 5_000_000, models.CategoryTrending},
		{"instagram at medium is not trending", models.PlatformInstagram, 1_000_000, models.CategoryMostLiked},
		{"twitter viral", models.PlatformTwitter, 60_000, models.CategoryViral},
		{"twitter trending", models.PlatformTwitter, 10_001, models.CategoryTrending},
		{"reddit trending", models.PlatformReddit, 25_000, models.CategoryTrending},
		{"reddit most liked", models.PlatformReddit, 20_000, models.CategoryMostLiked},
		{"linkedin viral", models.PlatformLinkedIn, 500_001, models.CategoryViral},
		{"tiktok trending", models.PlatformTikTok, 7_000_000, models.CategoryTrending},
		{"snapchat trending", models.PlatformSnapchat, 2_000_000, models.CategoryTrending},
		{"threads most liked", models.PlatformThreads, 2_000_000, models.CategoryMostLiked},
		{"pinterest viral", models.PlatformPinterest, 2_500_000, models.CategoryViral},
		{"youtube viral", models.PlatformYouTube, 15_000_000, models.CategoryViral},
		{"zero", models.PlatformFacebook, 0, models.CategoryMostLiked},
		{"unknown platform", models.Platform("myspace"), 1 << 40, models.CategoryMostLiked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.platform, tt.score))
		})
	}
}

func TestEngagementScoreUsesPlatformMetric(t *testing.T) {
	e := Engagement{Likes: 1_000_000, Comments: 5, Shares: 1_500_000, Views: 12_000_000}

	require.Equal(t, int64(5_500_000), EngagementScore(models.PlatformFacebook, e))
	require.Equal(t, int64(12_000_000), EngagementScore(models.PlatformYouTube, e))
	require.Equal(t, int64(1_000_000), EngagementScore(models.PlatformTwitter, e))

	require.Equal(t, models.CategoryViral, Categorize(models.PlatformFacebook, e))
	require.Equal(t, models.CategoryViral, Categorize(models.PlatformYouTube, e))
}

func TestClassifyIsMonotonic(t *testing.T) {
	scores := []int64{0, 1, 9_999, 10_000, 10_001, 20_001, 50_001, 300_001, 1_000_001, 1_500_001, 2_000_001, 5_000_001, 10_000_001, 1 << 50}
	for _, p := range models.Platforms {
		prev := -1
		for _, s := range scores {
			rank := Classify(p, s).Rank()
			require.GreaterOrEqual(t, rank, prev, "platform %s score %d", p, s)
			prev = rank
		}
	}
}

func TestEveryPlatformHasThresholdsAndColor(t *testing.T) {
	for _, p := range models.Platforms {
		_, ok := classifierTable[p]
		require.True(t, ok, "no thresholds for %s", p)
		require.NotEmpty(t, Color(p), "no color for %s", p)
		_, ok = ProfileFor(p)
		require.True(t, ok, "no profile for %s", p)
	}
	require.Len(t, Platforms(), len(models.Platforms))
	require.Equal(t, "#FF4500", Color(models.PlatformReddit))
}
