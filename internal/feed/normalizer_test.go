package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/models"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(WithClock(func() time.Time { return fixedNow }))
}

func TestNormalizeFillsDefaults(t *testing.T) {
	n := newTestNormalizer()

	post, err := n.Normalize(models.PlatformFacebook, RawRecord{ImageHint: true}, "post-1")
	require.NoError(t, err)

	want := models.Post{
		ID:            "post-1",
		Platform:      models.PlatformFacebook,
		PlatformColor: "#1877F2",
		User: models.PostUser{
			Name:     "Unknown User",
			Username: "Unknown",
			Avatar:   defaultAvatar,
		},
		Content:   "No content",
		Media:     models.Media{Type: models.MediaImage, URL: imagePlaceholder, Thumbnail: imagePlaceholder},
		Timestamp: "recently",
		Category:  models.CategoryMostLiked,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	if diff := cmp.Diff(want, post); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePlatformDefaults(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		platform models.Platform
		content  string
		name     string
	}{
		{models.PlatformInstagram, "No caption", "Unknown User"},
		{models.PlatformTikTok, "No caption", "Unknown User"},
		{models.PlatformPinterest, "No description", "Unknown User"},
		{models.PlatformReddit, "Untitled post", "r/unknown"},
		{models.PlatformYouTube, "Untitled Video", "Unknown Channel"},
		{models.PlatformTwitter, "No content", "Unknown User"},
	}
	for _, tt := range tests {
		post, err := n.Normalize(tt.platform, RawRecord{}, "")
		require.NoError(t, err)
		require.Equal(t, tt.content, post.Content, tt.platform)
		require.Equal(t, tt.name, post.User.Name, tt.platform)
		require.NotEmpty(t, post.ID)
		require.NotEmpty(t, post.Media.URL)
		require.NotEmpty(t, post.Media.Thumbnail)
	}
}

func TestNormalizeRejectsUnknownPlatform(t *testing.T) {
	_, err := newTestNormalizer().Normalize(models.Platform("myspace"), RawRecord{}, "")

	var nerr *NormalizationError
	require.True(t, errors.As(err, &nerr))
	require.Equal(t, "platform", nerr.Field)
}

func TestInferMediaPriority(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRecord
		want models.Media
	}{
		{
			name: "image hint wins over preview",
			raw:  RawRecord{ImageHint: true, MediaURL: "https://i.redd.it/a.jpg", PreviewImages: []string{"https://preview/x.jpg"}},
			want: models.Media{Type: models.MediaImage, URL: "https://i.redd.it/a.jpg", Thumbnail: "https://i.redd.it/a.jpg"},
		},
		{
			name: "video flag uses fallback url and thumbnail",
			raw:  RawRecord{IsVideo: true, VideoURL: "https://v.redd.it/x/DASH_720.mp4", ThumbnailURL: "https://b.thumbs/x.jpg"},
			want: models.Media{Type: models.MediaVideo, URL: "https://v.redd.it/x/DASH_720.mp4", Thumbnail: "https://b.thumbs/x.jpg"},
		},
		{
			name: "known video domain",
			raw:  RawRecord{Domain: "youtu.be", MediaURL: "https://youtu.be/abc", ThumbnailURL: "https://b.thumbs/y.jpg"},
			want: models.Media{Type: models.MediaVideo, URL: "https://youtu.be/abc", Thumbnail: "https://b.thumbs/y.jpg"},
		},
		{
			name: "preview image is unescaped",
			raw:  RawRecord{Domain: "imgur.com", PreviewImages: []string{"https://preview.redd.it/p.jpg?width=640&amp;s=abc"}},
			want: models.Media{Type: models.MediaImage, URL: "https://preview.redd.it/p.jpg?width=640&s=abc", Thumbnail: "https://preview.redd.it/p.jpg?width=640&s=abc"},
		},
		{
			name: "http thumbnail",
			raw:  RawRecord{ThumbnailURL: "https://b.thumbs/z.jpg"},
			want: models.Media{Type: models.MediaImage, URL: "https://b.thumbs/z.jpg", Thumbnail: "https://b.thumbs/z.jpg"},
		},
		{
			name: "non http thumbnail falls back to placeholder",
			raw:  RawRecord{ThumbnailURL: "self"},
			want: models.Media{Type: models.MediaText, URL: imagePlaceholder, Thumbnail: imagePlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inferMedia(tt.raw, imagePlaceholder))
		})
	}
}

func TestNormalizeTimestamps(t *testing.T) {
	n := newTestNormalizer()

	post, err := n.Normalize(models.PlatformYouTube, RawRecord{PublishedAt: fixedNow.Add(-60 * 24 * time.Hour)}, "")
	require.NoError(t, err)
	require.Equal(t, "2 months ago", post.Timestamp)

	post, err = n.Normalize(models.PlatformReddit, RawRecord{PublishedAt: fixedNow.Add(-60 * 24 * time.Hour)}, "")
	require.NoError(t, err)
	require.Equal(t, "60 days ago", post.Timestamp)

	post, err = n.Normalize(models.PlatformLinkedIn, RawRecord{Timestamp: "3 hours ago", PublishedAt: fixedNow}, "")
	require.NoError(t, err)
	require.Equal(t, "3 hours ago", post.Timestamp)
}

func TestNormalizeYouTubeClassifiesOnViews(t *testing.T) {
	post, err := newTestNormalizer().Normalize(models.PlatformYouTube, RawRecord{
		IsVideo:  true,
		VideoURL: "https://www.youtube.com/watch?v=abc",
		Likes:    10,
		Views:    15_000_000,
	}, "")
	require.NoError(t, err)
	require.Equal(t, models.CategoryViral, post.Category)
	require.Equal(t, int64(0), post.Shares)
	require.Equal(t, videoPlaceholder, post.User.Avatar)
}

func TestNormalizeAlwaysProducesValidPosts(t *testing.T) {
	n := newTestNormalizer()
	faker := gofakeit.New(42)

	for i := 0; i < 200; i++ {
		p := models.Platforms[faker.Number(0, len(models.Platforms)-1)]
		raw := RawRecord{
			Author:       RawAuthor{Name: faker.Name(), Username: faker.Username()},
			Content:      faker.Phrase(),
			ImageHint:    faker.Bool(),
			IsVideo:      faker.Bool(),
			MediaURL:     faker.URL(),
			Domain:       faker.RandomString([]string{"", "youtube.com", "imgur.com", "v.redd.it"}),
			ThumbnailURL: faker.RandomString([]string{"", "self", faker.URL()}),
			Likes:        faker.Int64() % 100_000_000,
			Comments:     faker.Int64() % 1_000_000,
			Shares:       faker.Int64() % 1_000_000,
			Views:        faker.Int64() % 100_000_000,
			PublishedAt:  faker.DateRange(fixedNow.AddDate(-3, 0, 0), fixedNow),
		}

		post, err := n.Normalize(p, raw, "")
		require.NoError(t, err)
		require.True(t, post.Category.Valid())
		require.Contains(t, []models.MediaType{models.MediaImage, models.MediaVideo, models.MediaText}, post.Media.Type)
		require.GreaterOrEqual(t, post.Likes, int64(0))
		require.GreaterOrEqual(t, post.Comments, int64(0))
		require.GreaterOrEqual(t, post.Shares, int64(0))
		require.Equal(t, Color(p), post.PlatformColor)
		require.NotEmpty(t, post.Timestamp)
		require.NotEmpty(t, post.Media.Thumbnail)
	}
}
