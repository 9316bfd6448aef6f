package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
)

const youtubeVideosJSON = `{"items": [
	{
		"id": "abc123",
		"snippet": {
			"title": "Biggest video ever",
			"channelTitle": "Mr Beast",
			"publishedAt": "2024-05-30T12:00:00Z",
			"thumbnails": {
				"medium": {"url": "https://i.ytimg.com/vi/abc123/mqdefault.jpg"},
				"high": {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg"}
			}
		},
		"statistics": {"viewCount": "15000000", "likeCount": "400000", "commentCount": "12000"}
	},
	{
		"id": "def456",
		"snippet": {"title": "", "channelTitle": "", "publishedAt": "garbage"},
		"statistics": {"viewCount": "5000"}
	}
]}`

func newTestYouTubeAdapter(t *testing.T, handler http.HandlerFunc) *YouTubeAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	n := feed.NewNormalizer(feed.WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
	a, c := NewYouTubeAdapter(context.Background(), "test-key", n,
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.True(t, c.Configured)
	return a
}

func TestYouTubeFetchTrending(t *testing.T) {
	a := newTestYouTubeAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "mostPopular", r.URL.Query().Get("chart"))
		assert.Equal(t, "US", r.URL.Query().Get("regionCode"))
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(youtubeVideosJSON))
	})

	posts := a.Fetch(context.Background(), 80)
	require.Len(t, posts, 2)

	top := posts[0]
	require.Equal(t, models.PlatformYouTube, top.Platform)
	require.Equal(t, "#FF0000", top.PlatformColor)
	require.Equal(t, "Mr Beast", top.User.Name)
	require.Equal(t, "@MrBeast", top.User.Username)
	require.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", top.User.Avatar)
	require.Equal(t, models.Media{
		Type:      models.MediaVideo,
		URL:       "https://www.youtube.com/watch?v=abc123",
		Thumbnail: "https://i.ytimg.com/vi/abc123/hqdefault.jpg",
	}, top.Media)
	require.Equal(t, int64(400000), top.Likes)
	require.Equal(t, int64(12000), top.Comments)
	require.Equal(t, int64(0), top.Shares)
	require.Equal(t, models.CategoryViral, top.Category)
	require.Equal(t, "2 days ago", top.Timestamp)
	require.Equal(t, "abc123", top.SourceID)

	bare := posts[1]
	require.Equal(t, "Untitled Video", bare.Content)
	require.Equal(t, "Unknown Channel", bare.User.Name)
	require.Equal(t, "@unknown", bare.User.Username)
	require.Equal(t, feed.VideoPlaceholder, bare.Media.Thumbnail)
	require.Equal(t, "recently", bare.Timestamp)
	require.Equal(t, models.CategoryMostLiked, bare.Category)
}

func TestYouTubeSearchIsTwoStep(t *testing.T) {
	a := newTestYouTubeAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/youtube/v3/search":
			assert.Equal(t, "cats", r.URL.Query().Get("q"))
			assert.Equal(t, "viewCount", r.URL.Query().Get("order"))
			_, _ = w.Write([]byte(`{"items": [{"id": {"videoId": "abc123"}}, {"id": {"videoId": "def456"}}]}`))
		case "/youtube/v3/videos":
			assert.Equal(t, "abc123,def456", strings.Join(r.URL.Query()["id"], ","))
			_, _ = w.Write([]byte(youtubeVideosJSON))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	posts, err := a.Search(context.Background(), "cats", 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestYouTubeFetchAPIErrorYieldsEmpty(t *testing.T) {
	a := newTestYouTubeAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quotaExceeded"}}`))
	})

	require.Empty(t, a.Fetch(context.Background(), 10))
}

func TestYouTubeUnconfigured(t *testing.T) {
	a, c := NewYouTubeAdapter(context.Background(), "", feed.NewNormalizer())
	require.False(t, c.Configured)
	require.Contains(t, c.Reason, "YOUTUBE_API_KEY")
	require.Empty(t, a.Fetch(context.Background(), 10))

	posts, err := a.Search(context.Background(), "cats", 10)
	require.NoError(t, err)
	require.Empty(t, posts)
}
