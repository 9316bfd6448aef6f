package scrapers

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	youtubeRegion     = "US"
	youtubeMaxResults = 50
)

var videoParts = []string{"snippet", "statistics", "contentDetails"}

// YouTubeAdapter reads the most popular chart through the Data API v3.
type YouTubeAdapter struct {
	service    *youtube.Service
	region     string
	normalizer *feed.Normalizer
}

var _ Searcher = (*YouTubeAdapter)(nil)

// NewYouTubeAdapter builds the adapter. Without an API key it is
// Unconfigured and every fetch returns an empty list. Extra client options
// are appended after the key, so tests can point it at a local server.
func NewYouTubeAdapter(ctx context.Context, apiKey string, n *feed.Normalizer, opts ...option.ClientOption) (*YouTubeAdapter, Capability) {
	a := &YouTubeAdapter{region: youtubeRegion, normalizer: n}
	if apiKey == "" {
		return a, Unconfigured("api", "YOUTUBE_API_KEY not set")
	}

	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		logger.Log.WithError(err).Error("failed to create youtube service")
		return a, Unconfigured("api", err.Error())
	}
	a.service = svc
	return a, Configured("api")
}

func (a *YouTubeAdapter) Platform() models.Platform {
	return models.PlatformYouTube
}

// Fetch returns up to 50 trending videos.
func (a *YouTubeAdapter) Fetch(ctx context.Context, maxResults int) []models.Post {
	if a.service == nil {
		logger.Log.Warn("youtube adapter is not configured, skipping fetch")
		return []models.Post{}
	}
	n := min(maxResults, youtubeMaxResults)
	if n <= 0 {
		return []models.Post{}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := a.service.Videos.List(videoParts).
		Chart("mostPopular").
		RegionCode(a.region).
		MaxResults(int64(n)).
		Context(ctx).
		Do()
	if err != nil {
		logger.Log.WithError(err).Error("youtube trending request failed")
		return []models.Post{}
	}
	return a.toPosts(resp.Items)
}

// Search finds videos matching q, ordered by view count.
func (a *YouTubeAdapter) Search(ctx context.Context, q string, maxResults int) ([]models.Post, error) {
	if a.service == nil {
		return []models.Post{}, nil
	}
	n := min(maxResults, youtubeMaxResults)
	if n <= 0 {
		return []models.Post{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	search, err := a.service.Search.List([]string{"snippet"}).
		Q(q).
		Type("video").
		Order("viewCount").
		MaxResults(int64(n)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return []models.Post{}, nil
	}

	videos, err := a.service.Videos.List(videoParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video details: %w", err)
	}
	return a.toPosts(videos.Items), nil
}

func (a *YouTubeAdapter) toPosts(items []*youtube.Video) []models.Post {
	posts := make([]models.Post, 0, len(items))
	for _, v := range items {
		if v == nil || v.Id == "" {
			continue
		}
		post, err := a.normalizer.Normalize(models.PlatformYouTube, videoRecord(v), "")
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func videoRecord(v *youtube.Video) feed.RawRecord {
	watchURL := "https://www.youtube.com/watch?v=" + v.Id
	r := feed.RawRecord{
		IsVideo:   true,
		VideoURL:  watchURL,
		SourceID:  v.Id,
		SourceURL: watchURL,
	}

	if s := v.Snippet; s != nil {
		thumb := bestThumbnail(s.Thumbnails)
		r.Content = strings.TrimSpace(s.Title)
		r.ThumbnailURL = thumb
		r.Author = feed.RawAuthor{Name: s.ChannelTitle, Avatar: thumb}
		if s.ChannelTitle != "" {
			r.Author.Username = "@" + strings.ReplaceAll(s.ChannelTitle, " ", "")
		}
		if t, err := feed.ParseSourceTime(s.PublishedAt); err == nil {
			r.PublishedAt = t
		}
	}
	if st := v.Statistics; st != nil {
		r.Likes = toInt64(st.LikeCount)
		r.Comments = toInt64(st.CommentCount)
		r.Views = toInt64(st.ViewCount)
	}
	return r
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return feed.VideoPlaceholder
	}
	for _, th := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return feed.VideoPlaceholder
}

func toInt64(n uint64) int64 {
	const maxInt64 = 1<<63 - 1
	if n > maxInt64 {
		return maxInt64
	}
	return int64(n)
}
