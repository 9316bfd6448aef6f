package repositories

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anonto42/chyll/backend/internal/models"
)

// mongoRepo connects to MONGO_TEST_URI and returns a repository on a
// throwaway database.
func mongoRepo(t *testing.T) *MongoPostRepository {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("chyll_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	repo := NewMongoPostRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func seededMongoRepo(t *testing.T) *MongoPostRepository {
	t.Helper()
	repo := mongoRepo(t)
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

func TestMongoCreateRejectsDuplicateSource(t *testing.T) {
	repo := seededMongoRepo(t)
	ctx := context.Background()

	dup := newPost("z", models.PlatformReddit, models.CategoryViral, 1, 1, 1)
	dup.SourceID = "reddit_a"
	require.ErrorIs(t, repo.CreatePost(ctx, dup), ErrDuplicate)

	// seed posts have no source id and must not collide with each other
	for i := 0; i < 2; i++ {
		seedOnly := newPost("", models.PlatformFacebook, models.CategoryMostLiked, 1, 1, 1)
		seedOnly.SourceID = ""
		require.NoError(t, repo.CreatePost(ctx, seedOnly))
	}

	count, err := repo.CountSeedPosts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	existing, err := repo.ExistingSourceIDs(ctx, []string{"reddit_a", "reddit_zz", "youtube_d"})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"reddit_a": true, "youtube_d": true}, existing)
}

func TestMongoListAndSearch(t *testing.T) {
	repo := seededMongoRepo(t)
	ctx := context.Background()

	posts, err := repo.ListPosts(ctx, PostFilter{SortBy: SortLikes})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "d", "b", "c"}, ids(posts))

	posts, err = repo.ListPosts(ctx, PostFilter{SortBy: SortEngagement, Platform: models.PlatformReddit})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, ids(posts))

	posts, err = repo.ListPosts(ctx, PostFilter{SortBy: SortComments, Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"d", "a"}, ids(posts))

	posts, err = repo.SearchPosts(ctx, SearchFilter{Query: "AUTHOR B", SortBy: SortRelevance})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, ids(posts))

	// regex metacharacters are matched literally
	posts, err = repo.SearchPosts(ctx, SearchFilter{Query: "post .*"})
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestMongoFeaturedAndCounters(t *testing.T) {
	repo := seededMongoRepo(t)
	ctx := context.Background()

	featured, err := repo.GetFeaturedPost(ctx)
	require.NoError(t, err)
	require.Equal(t, "d", featured.ID)

	// stored times have millisecond precision
	time.Sleep(5 * time.Millisecond)
	post, err := repo.IncrementCounter(ctx, "c", CounterLikes)
	require.NoError(t, err)
	require.EqualValues(t, 6, post.Likes)
	require.True(t, post.UpdatedAt.After(post.CreatedAt), "updated_at %v not after created_at %v", post.UpdatedAt, post.CreatedAt)

	_, err = repo.IncrementCounter(ctx, "missing", CounterShares)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetPostByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMongoAggregates(t *testing.T) {
	repo := seededMongoRepo(t)
	ctx := context.Background()

	overview, err := repo.Overview(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, overview.TotalPosts)
	require.EqualValues(t, 1055, overview.TotalLikes)
	require.EqualValues(t, 1, overview.TotalVideos)
	require.EqualValues(t, 2, overview.ByCategory[models.CategoryViral])

	stats, err := repo.PlatformStats(ctx)
	require.NoError(t, err)
	require.Equal(t, models.PlatformReddit, stats[0].Platform)
	require.EqualValues(t, 2, stats[0].Posts)
}
