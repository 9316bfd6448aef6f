package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
)

const redditListingJSON = `{"data": {"children": [
	{"data": {
		"id": "img1", "title": "Look at this", "author": "alice",
		"subreddit_name_prefixed": "r/pics", "permalink": "/r/pics/comments/img1/look/",
		"url": "https://i.redd.it/img1.jpg", "domain": "i.redd.it", "thumbnail": "https://b.thumbs.redditmedia.com/img1.jpg",
		"post_hint": "image", "ups": 60000, "num_comments": 1200, "num_crossposts": 3, "created_utc": 1717236000
	}},
	{"data": {
		"id": "vid1", "title": "Watch this", "author": "bob",
		"subreddit_name_prefixed": "r/videos", "permalink": "/r/videos/comments/vid1/watch/",
		"url": "https://v.redd.it/vid1", "domain": "v.redd.it", "thumbnail": "https://b.thumbs.redditmedia.com/vid1.jpg",
		"is_video": true, "media": {"reddit_video": {"fallback_url": "https://v.redd.it/vid1/DASH_720.mp4"}},
		"ups": 25000, "num_comments": 300, "num_crossposts": 0, "created_utc": 1717236000
	}},
	{"data": {
		"id": "prev1", "title": "Preview only", "author": "carol",
		"subreddit_name_prefixed": "r/aww", "permalink": "/r/aww/comments/prev1/p/",
		"url": "https://imgur.com/gallery/x", "domain": "imgur.com", "thumbnail": "default",
		"preview": {"images": [{"source": {"url": "https://preview.redd.it/p.jpg?width=640&amp;s=abc"}}]},
		"ups": 10, "num_comments": 1, "num_crossposts": 0, "created_utc": 1717236000
	}},
	{"data": {
		"id": "self1", "title": "Text post", "author": "dave",
		"subreddit_name_prefixed": "r/funny", "permalink": "/r/funny/comments/self1/t/",
		"url": "https://www.reddit.com/r/funny/comments/self1/t/", "domain": "self.funny", "thumbnail": "self",
		"ups": 99999, "num_comments": 5, "num_crossposts": 0, "created_utc": 1717236000
	}}
]}}`

func newTestRedditAdapter(t *testing.T, handler http.HandlerFunc, subs ...string) *RedditAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	n := feed.NewNormalizer(feed.WithClock(func() time.Time {
		return time.Unix(1717236000, 0).Add(2 * time.Hour)
	}))
	a, c := NewRedditAdapter(ClientCredentials{}, n,
		WithRedditBaseURL(server.URL),
		WithRedditDelay(0),
		WithSubreddits(subs...),
	)
	require.True(t, c.Configured)
	require.Equal(t, "public", c.Mode)
	return a
}

func TestRedditFetchKeepsOnlyMediaPosts(t *testing.T) {
	a := newTestRedditAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/pics/hot.json", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(redditListingJSON))
	}, "pics")

	posts := a.Fetch(context.Background(), 10)
	require.Len(t, posts, 3)

	img := posts[0]
	require.Equal(t, models.PlatformReddit, img.Platform)
	require.Equal(t, "r/pics", img.User.Name)
	require.Equal(t, "u/alice", img.User.Username)
	require.Equal(t, models.MediaImage, img.Media.Type)
	require.Equal(t, "https://i.redd.it/img1.jpg", img.Media.URL)
	require.Equal(t, models.CategoryViral, img.Category)
	require.Equal(t, int64(3), img.Shares)
	require.Equal(t, "img1", img.SourceID)
	require.Equal(t, "https://reddit.com/r/pics/comments/img1/look/", img.SourceURL)
	require.Equal(t, "2 hours ago", img.Timestamp)

	vid := posts[1]
	require.Equal(t, models.MediaVideo, vid.Media.Type)
	require.Equal(t, "https://v.redd.it/vid1/DASH_720.mp4", vid.Media.URL)
	require.Equal(t, "https://b.thumbs.redditmedia.com/vid1.jpg", vid.Media.Thumbnail)
	require.Equal(t, models.CategoryTrending, vid.Category)

	prev := posts[2]
	require.Equal(t, models.MediaImage, prev.Media.Type)
	require.Equal(t, "https://preview.redd.it/p.jpg?width=640&s=abc", prev.Media.URL)
	require.Equal(t, models.CategoryMostLiked, prev.Category)
}

func TestRedditFetchSkipsFailingSubreddits(t *testing.T) {
	var calls int32
	a := newTestRedditAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if strings.HasPrefix(r.URL.Path, "/r/broken") {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(redditListingJSON))
	}, "broken", "pics")

	posts := a.Fetch(context.Background(), 50)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.Len(t, posts, 3)
}

func TestRedditFetchMalformedBodyYieldsEmpty(t *testing.T) {
	a := newTestRedditAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	}, "pics")

	require.Empty(t, a.Fetch(context.Background(), 10))
}

func TestRedditFetchTruncatesToLimit(t *testing.T) {
	a := newTestRedditAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(redditListingJSON))
	}, "pics", "aww")

	require.Len(t, a.Fetch(context.Background(), 4), 4)
	require.Empty(t, a.Fetch(context.Background(), 0))
}

func TestRedditFetchStopsWhenContextCancelled(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(redditListingJSON))
	}))
	defer server.Close()

	a, _ := NewRedditAdapter(ClientCredentials{}, feed.NewNormalizer(),
		WithRedditBaseURL(server.URL),
		WithRedditDelay(time.Hour),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	posts := a.Fetch(ctx, 30)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Len(t, posts, 3)
}

func TestRedditOAuthMode(t *testing.T) {
	_, c := NewRedditAdapter(ClientCredentials{ClientID: "id", ClientSecret: "secret"}, feed.NewNormalizer())
	require.True(t, c.Configured)
	require.Equal(t, "oauth", c.Mode)
}
