package feed

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anonto42/chyll/backend/internal/models"
)

const (
	defaultAvatar      = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100&h=100&fit=crop"
	twitterAvatar      = "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=100&h=100&fit=crop"
	imagePlaceholder   = "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800&h=600&fit=crop"
	squarePlaceholder  = "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800&h=800&fit=crop"
	videoPlaceholder   = "https://images.unsplash.com/photo-1611162616475-46b635cb6868?w=800&h=600&fit=crop"
	defaultAuthorName  = "Unknown User"
	defaultAuthorLogin = "Unknown"
)

// VideoPlaceholder is the thumbnail used when a video source has none.
const VideoPlaceholder = videoPlaceholder

var videoDomains = map[string]bool{
	"youtube.com": true,
	"youtu.be":    true,
	"v.redd.it":   true,
}

// Profile holds the per-platform defaults used to fill gaps in raw records.
type Profile struct {
	DefaultContent   string
	DefaultName      string
	DefaultUsername  string
	DefaultAvatar    string
	MediaPlaceholder string
	FormatTime       TimeFormatter
}

var profiles = map[models.Platform]Profile{
	models.PlatformFacebook:  synthetic("No content", imagePlaceholder),
	models.PlatformInstagram: synthetic("No caption", squarePlaceholder),
	models.PlatformTikTok:    synthetic("No caption", videoPlaceholder),
	models.PlatformLinkedIn:  synthetic("No content", imagePlaceholder),
	models.PlatformPinterest: synthetic("No description", imagePlaceholder),
	models.PlatformThreads:   synthetic("No content", imagePlaceholder),
	models.PlatformSnapchat:  synthetic("No content", imagePlaceholder),
	models.PlatformReddit: {
		DefaultContent:   "Untitled post",
		DefaultName:      "r/unknown",
		DefaultUsername:  "u/unknown",
		DefaultAvatar:    defaultAvatar,
		MediaPlaceholder: imagePlaceholder,
		FormatTime:       FormatTimeAgoCoarse,
	},
	models.PlatformYouTube: {
		DefaultContent:   "Untitled Video",
		DefaultName:      "Unknown Channel",
		DefaultUsername:  "@unknown",
		DefaultAvatar:    videoPlaceholder,
		MediaPlaceholder: videoPlaceholder,
		FormatTime:       FormatTimeAgo,
	},
	models.PlatformTwitter: {
		DefaultContent:   "No content",
		DefaultName:      defaultAuthorName,
		DefaultUsername:  "@unknown",
		DefaultAvatar:    twitterAvatar,
		MediaPlaceholder: imagePlaceholder,
		FormatTime:       FormatTimeAgo,
	},
}

func synthetic(content, placeholder string) Profile {
	return Profile{
		DefaultContent:   content,
		DefaultName:      defaultAuthorName,
		DefaultUsername:  defaultAuthorLogin,
		DefaultAvatar:    defaultAvatar,
		MediaPlaceholder: placeholder,
		FormatTime:       FormatTimeAgo,
	}
}

// ProfileFor returns the defaults for p and whether p is known.
func ProfileFor(p models.Platform) (Profile, bool) {
	prof, ok := profiles[p]
	return prof, ok
}

// Normalizer turns raw records into canonical posts.
type Normalizer struct {
	now func() time.Time
}

type Option func(*Normalizer)

// WithClock fixes the time used for relative timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize builds a Post from r. When id is empty a new UUID is assigned.
// The only failure is an unknown platform.
func (n *Normalizer) Normalize(p models.Platform, r RawRecord, id string) (models.Post, error) {
	prof, ok := profiles[p]
	if !ok {
		return models.Post{}, &NormalizationError{Field: "platform", Reason: "unknown platform " + string(p)}
	}
	if id == "" {
		id = uuid.NewString()
	}
	now := n.now().UTC()

	likes, comments, shares, views := clamp(r.Likes), clamp(r.Comments), clamp(r.Shares), clamp(r.Views)

	post := models.Post{
		ID:            id,
		Platform:      p,
		PlatformColor: Color(p),
		User: models.PostUser{
			Name:     orDefault(r.Author.Name, prof.DefaultName),
			Username: orDefault(r.Author.Username, prof.DefaultUsername),
			Avatar:   orDefault(r.Author.Avatar, prof.DefaultAvatar),
		},
		Content:   orDefault(r.Content, prof.DefaultContent),
		Media:     inferMedia(r, prof.MediaPlaceholder),
		Likes:     likes,
		Comments:  comments,
		Shares:    shares,
		Category:  Categorize(p, Engagement{Likes: likes, Comments: comments, Shares: shares, Views: views}),
		SourceID:  r.SourceID,
		SourceURL: r.SourceURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch {
	case r.Timestamp != "":
		post.Timestamp = r.Timestamp
	case !r.PublishedAt.IsZero():
		post.Timestamp = prof.FormatTime(now, r.PublishedAt)
	default:
		post.Timestamp = recently
	}

	return post, nil
}

// inferMedia picks the media type and URL from the first hint that applies:
// image hint, video flag, known video domain, preview images, then an http
// thumbnail. Records with no usable URL get the platform placeholder.
func inferMedia(r RawRecord, placeholder string) models.Media {
	media := models.Media{Type: models.MediaText}

	switch {
	case r.ImageHint:
		media.Type = models.MediaImage
		media.URL = r.MediaURL
	case r.IsVideo:
		media.Type = models.MediaVideo
		media.URL = orDefault(r.VideoURL, r.MediaURL)
		media.Thumbnail = httpOnly(r.ThumbnailURL)
	case videoDomains[strings.ToLower(r.Domain)]:
		media.Type = models.MediaVideo
		media.URL = r.MediaURL
		media.Thumbnail = httpOnly(r.ThumbnailURL)
	case len(r.PreviewImages) > 0:
		media.Type = models.MediaImage
		media.URL = strings.ReplaceAll(r.PreviewImages[0], "&amp;", "&")
	}

	if media.URL == "" {
		if thumb := httpOnly(r.ThumbnailURL); thumb != "" {
			media.Type = models.MediaImage
			media.URL = thumb
		} else {
			media.URL = placeholder
		}
	}
	if media.Thumbnail == "" {
		media.Thumbnail = media.URL
	}
	return media
}

func httpOnly(u string) string {
	if strings.HasPrefix(u, "http") {
		return u
	}
	return ""
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
