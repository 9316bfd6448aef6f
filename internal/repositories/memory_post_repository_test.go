package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/models"
)

func newPost(id string, platform models.Platform, category models.Category, likes, comments, shares int64) *models.Post {
	p := &models.Post{
		ID:       id,
		Platform: platform,
		Category: category,
		Content:  "post " + id,
		User:     models.PostUser{Name: "Author " + id, Username: "@" + id},
		Media:    models.Media{Type: models.MediaImage, URL: "https://example.com/" + id + ".jpg"},
		Likes:    likes,
		Comments: comments,
		Shares:   shares,
		SourceID: string(platform) + "_" + id,
	}
	if platform == models.PlatformYouTube {
		p.Media.Type = models.MediaVideo
	}
	return p
}

func seededMemoryRepo(t *testing.T) *MemoryPostRepository {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryPostRepository(WithMemoryClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	}))
	ctx := context.Background()
	for _, p := range []*models.Post{
		newPost("a", models.PlatformReddit, models.CategoryViral, 900, 10, 1),
		newPost("b", models.PlatformTwitter, models.CategoryTrending, 50, 300, 2),
		newPost("c", models.PlatformReddit, models.CategoryMostLiked, 5, 1, 0),
		newPost("d", models.PlatformYouTube, models.CategoryViral, 100, 20, 500),
	} {
		require.NoError(t, repo.CreatePost(ctx, p))
	}
	return repo
}

func ids(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestMemoryCreateRejectsDuplicateSource(t *testing.T) {
	repo := seededMemoryRepo(t)

	dup := newPost("z", models.PlatformReddit, models.CategoryViral, 1, 1, 1)
	dup.SourceID = "reddit_a"
	require.ErrorIs(t, repo.CreatePost(context.Background(), dup), ErrDuplicate)

	seedOnly := newPost("", models.PlatformFacebook, models.CategoryMostLiked, 1, 1, 1)
	seedOnly.SourceID = ""
	require.NoError(t, repo.CreatePost(context.Background(), seedOnly))
	require.NotEmpty(t, seedOnly.ID)

	count, err := repo.CountSeedPosts(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestMemoryListSorting(t *testing.T) {
	repo := seededMemoryRepo(t)
	ctx := context.Background()

	tests := []struct {
		sortBy SortOrder
		want   []string
	}{
		{SortDate, []string{"d", "c", "b", "a"}},
		{SortLikes, []string{"a", "d", "b", "c"}},
		{SortComments, []string{"b", "d", "a", "c"}},
		{SortEngagement, []string{"a", "d", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			posts, err := repo.ListPosts(ctx, PostFilter{SortBy: tt.sortBy})
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(posts))
		})
	}
}

func TestMemoryListFiltersAndPaging(t *testing.T) {
	repo := seededMemoryRepo(t)
	ctx := context.Background()

	posts, err := repo.ListPosts(ctx, PostFilter{Platform: models.PlatformReddit, SortBy: SortLikes})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, ids(posts))

	posts, err = repo.ListPosts(ctx, PostFilter{Category: models.CategoryViral, SortBy: SortLikes})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "d"}, ids(posts))

	posts, err = repo.ListPosts(ctx, PostFilter{SortBy: SortLikes, Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"d", "b"}, ids(posts))

	posts, err = repo.ListPosts(ctx, PostFilter{Skip: 10})
	require.NoError(t, err)
	require.Empty(t, posts)

	// posts were created at 12:01..12:04
	since := time.Date(2025, 6, 1, 12, 2, 30, 0, time.UTC)
	count, err := repo.CountPosts(ctx, PostFilter{Since: since})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestMemorySearch(t *testing.T) {
	repo := seededMemoryRepo(t)
	ctx := context.Background()

	posts, err := repo.SearchPosts(ctx, SearchFilter{Query: "AUTHOR B"})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, ids(posts))

	posts, err = repo.SearchPosts(ctx, SearchFilter{Query: "post", Platform: models.PlatformReddit, SortBy: SortRelevance})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, ids(posts))

	posts, err = repo.SearchPosts(ctx, SearchFilter{Query: "", Limit: 3, SortBy: SortLikes})
	require.NoError(t, err)
	require.Len(t, posts, 3)
}

func TestMemoryFeaturedFallbacks(t *testing.T) {
	ctx := context.Background()

	repo := seededMemoryRepo(t)
	_, err := repo.IncrementCounter(ctx, "d", CounterLikes)
	require.NoError(t, err)
	featured, err := repo.GetFeaturedPost(ctx)
	require.NoError(t, err)
	// "a" is viral with more likes but is not a video
	require.Equal(t, "d", featured.ID)

	repo = NewMemoryPostRepository()
	require.NoError(t, repo.CreatePost(ctx, newPost("x", models.PlatformTikTok, models.CategoryTrending, 5, 0, 0)))
	require.NoError(t, repo.CreatePost(ctx, newPost("y", models.PlatformTikTok, models.CategoryViral, 1, 0, 0)))
	featured, err = repo.GetFeaturedPost(ctx)
	require.NoError(t, err)
	require.Equal(t, "y", featured.ID)

	_, err = NewMemoryPostRepository().GetFeaturedPost(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryIncrementCounter(t *testing.T) {
	repo := seededMemoryRepo(t)
	ctx := context.Background()

	post, err := repo.IncrementCounter(ctx, "c", CounterComments)
	require.NoError(t, err)
	require.EqualValues(t, 2, post.Comments)

	post, err = repo.IncrementCounter(ctx, "c", CounterShares)
	require.NoError(t, err)
	require.EqualValues(t, 1, post.Shares)

	_, err = repo.IncrementCounter(ctx, "missing", CounterLikes)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryIncrementCounterTouchesUpdatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryPostRepository(WithMemoryClock(func() time.Time { return now }))
	ctx := context.Background()

	p := newPost("a", models.PlatformReddit, models.CategoryViral, 1, 0, 0)
	require.NoError(t, repo.CreatePost(ctx, p))
	require.Equal(t, now, p.UpdatedAt)

	now = now.Add(90 * time.Second)
	post, err := repo.IncrementCounter(ctx, "a", CounterLikes)
	require.NoError(t, err)
	require.Equal(t, now, post.UpdatedAt)
	require.Equal(t, p.CreatedAt, post.CreatedAt)

	stored, err := repo.GetPostByID(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, now, stored.UpdatedAt)
}

func TestMemoryAggregates(t *testing.T) {
	repo := seededMemoryRepo(t)
	ctx := context.Background()

	stats, err := repo.PlatformStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.Equal(t, PlatformStats{Platform: models.PlatformReddit, Posts: 2, Likes: 905, Comments: 11, Shares: 1}, stats[0])

	overview, err := repo.Overview(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, overview.TotalPosts)
	require.EqualValues(t, 1055, overview.TotalLikes)
	require.EqualValues(t, 2, overview.ByCategory[models.CategoryViral])
	require.EqualValues(t, 1, overview.TotalVideos)

	existing, err := repo.ExistingSourceIDs(ctx, []string{"reddit_a", "reddit_zzz"})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"reddit_a": true}, existing)
}

func TestTimeRangeSince(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, now.Add(-24*time.Hour), TimeRangeSince(now, "24h"))
	require.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), TimeRangeSince(now, "7d"))
	require.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), TimeRangeSince(now, "30d"))
	require.True(t, TimeRangeSince(now, "all").IsZero())
}
