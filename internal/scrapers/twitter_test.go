package scrapers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
)

const twitterSearchJSON = `{
	"data": [
		{"id": "1", "text": "photo tweet", "author_id": "u1", "created_at": "2024-05-30T10:00:00.000Z",
		 "attachments": {"media_keys": ["m1"]}, "public_metrics": {"retweet_count": 10, "reply_count": 5, "like_count": 100}},
		{"id": "2", "text": "video tweet", "author_id": "u2", "created_at": "2024-05-30T10:00:00.000Z",
		 "attachments": {"media_keys": ["m2"]}, "public_metrics": {"retweet_count": 500, "reply_count": 50, "like_count": 60000}},
		{"id": "3", "text": "no media", "author_id": "u1",
		 "public_metrics": {"retweet_count": 1, "reply_count": 1, "like_count": 999999}},
		{"id": "4", "text": "gif tweet", "author_id": "u1",
		 "attachments": {"media_keys": ["m3"]}, "public_metrics": {"like_count": 5}}
	],
	"includes": {
		"users": [
			{"id": "u1", "name": "Alice", "username": "alice", "profile_image_url": "https://pbs.twimg.com/alice.jpg"},
			{"id": "u2", "name": "Bob", "username": "bob"}
		],
		"media": [
			{"media_key": "m1", "type": "photo", "url": "https://pbs.twimg.com/media/m1.jpg"},
			{"media_key": "m2", "type": "video", "preview_image_url": "https://pbs.twimg.com/media/m2.jpg"},
			{"media_key": "m3", "type": "animated_gif", "preview_image_url": "https://pbs.twimg.com/media/m3.jpg"}
		]
	}
}`

func newTestTwitterAdapter(t *testing.T, handler http.HandlerFunc) *TwitterAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, c := NewTwitterAdapter("test-token", feed.NewNormalizer(),
		WithTwitterBaseURL(server.URL),
		WithTwitterDelay(0),
	)
	require.True(t, c.Configured)
	return a
}

func TestTwitterFetchKeepsMediaTweetsSortedByEngagement(t *testing.T) {
	var calls int32
	a := newTestTwitterAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/2/tweets/search/recent", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		assert.Contains(t, r.URL.Query().Get("expansions"), "attachments.media_keys")
		_, _ = w.Write([]byte(twitterSearchJSON))
	})

	posts := a.Fetch(context.Background(), 20)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Len(t, posts, 2, "duplicates across queries are dropped")

	video := posts[0]
	require.Equal(t, "2", video.SourceID)
	require.Equal(t, models.MediaVideo, video.Media.Type)
	require.Equal(t, "https://pbs.twimg.com/media/m2.jpg", video.Media.URL)
	require.Equal(t, "@bob", video.User.Username)
	require.Equal(t, "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=100&h=100&fit=crop", video.User.Avatar)
	require.Equal(t, models.CategoryViral, video.Category)
	require.Equal(t, int64(500), video.Shares)
	require.Equal(t, "https://twitter.com/bob/status/2", video.SourceURL)

	photo := posts[1]
	require.Equal(t, models.MediaImage, photo.Media.Type)
	require.Equal(t, "https://pbs.twimg.com/media/m1.jpg", photo.Media.URL)
	require.Equal(t, "Alice", photo.User.Name)
	require.Equal(t, models.CategoryMostLiked, photo.Category)
}

func TestTwitterRecordsDropMediaWithoutURL(t *testing.T) {
	var resp twitterSearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"data": [
			{"id": "1", "author_id": "u1", "attachments": {"media_keys": ["m1"]}},
			{"id": "2", "author_id": "u1", "attachments": {"media_keys": ["m2"]}},
			{"id": "3", "author_id": "u1", "attachments": {"media_keys": ["m3"]}}
		],
		"includes": {
			"users": [{"id": "u1", "name": "Alice", "username": "alice"}],
			"media": [
				{"media_key": "m1", "type": "photo"},
				{"media_key": "m2", "type": "video"},
				{"media_key": "m3", "type": "photo", "url": "https://pbs.twimg.com/media/m3.jpg"}
			]
		}
	}`), &resp))

	recs := resp.records()
	require.Len(t, recs, 1)
	require.Equal(t, "3", recs[0].SourceID)
	require.Equal(t, "https://pbs.twimg.com/media/m3.jpg", recs[0].MediaURL)
}

func TestTwitterStopsOnRateLimit(t *testing.T) {
	var calls int32
	a := newTestTwitterAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	require.Empty(t, a.Fetch(context.Background(), 30))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTwitterContinuesAfterServerError(t *testing.T) {
	var calls int32
	a := newTestTwitterAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(twitterSearchJSON))
	})

	posts := a.Fetch(context.Background(), 1)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Len(t, posts, 1)
	require.Equal(t, "2", posts[0].SourceID)
}

func TestTwitterUnconfigured(t *testing.T) {
	a, c := NewTwitterAdapter("", feed.NewNormalizer())
	require.False(t, c.Configured)
	require.Empty(t, a.Fetch(context.Background(), 10))
}
