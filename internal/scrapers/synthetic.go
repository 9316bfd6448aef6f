package scrapers

import (
	"context"
	"fmt"
	"strings"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// Sample is one entry of a platform's static catalog.
type Sample struct {
	Name      string
	Username  string
	Avatar    string
	Content   string
	MediaURL  string
	Likes     int64
	Comments  int64
	Shares    int64
	Timestamp string
}

// Catalog is the fixed sample set served by a synthetic adapter.
type Catalog []Sample

type catalogSource struct {
	catalog  Catalog
	prefix   string
	media    models.MediaType
	envLabel string
}

// Platforms without a public API are served from fixed catalogs.
var catalogSources = map[models.Platform]catalogSource{
	models.PlatformFacebook:  {facebookCatalog, "fb_sample_", models.MediaImage, "FACEBOOK"},
	models.PlatformInstagram: {instagramCatalog, "ig_sample_", models.MediaImage, "INSTAGRAM"},
	models.PlatformTikTok:    {tiktokCatalog, "tiktok_sample_", models.MediaVideo, "TIKTOK"},
	models.PlatformLinkedIn:  {linkedinCatalog, "linkedin_sample_", models.MediaImage, "LINKEDIN"},
	models.PlatformPinterest: {pinterestCatalog, "pin_sample_", models.MediaImage, "PINTEREST"},
	models.PlatformThreads:   {threadsCatalog, "threads_sample_", models.MediaImage, "THREADS"},
	models.PlatformSnapchat:  {snapchatCatalog, "snap_sample_", models.MediaImage, "SNAPCHAT"},
}

// SyntheticPlatforms lists the platforms served from catalogs.
func SyntheticPlatforms() []models.Platform {
	out := make([]models.Platform, 0, len(catalogSources))
	for _, p := range models.Platforms {
		if _, ok := catalogSources[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// CatalogFor returns a copy of the platform's catalog.
func CatalogFor(p models.Platform) Catalog {
	src, ok := catalogSources[p]
	if !ok {
		return nil
	}
	return append(Catalog(nil), src.catalog...)
}

// SyntheticAdapter serves a platform from its static catalog.
type SyntheticAdapter struct {
	platform   models.Platform
	src        catalogSource
	normalizer *feed.Normalizer
}

// NewSyntheticAdapter builds the adapter for p. Credentials are optional:
// without them the adapter reports Unconfigured but still serves samples.
func NewSyntheticAdapter(p models.Platform, creds ClientCredentials, n *feed.Normalizer) (*SyntheticAdapter, Capability, error) {
	src, ok := catalogSources[p]
	if !ok {
		return nil, Capability{}, fmt.Errorf("no catalog for platform %s", p)
	}
	a := &SyntheticAdapter{platform: p, src: src, normalizer: n}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return a, Unconfigured("sample", fmt.Sprintf("%s_CLIENT_ID/%s_CLIENT_SECRET not set", src.envLabel, src.envLabel)), nil
	}
	return a, Configured("sample"), nil
}

func (a *SyntheticAdapter) Platform() models.Platform {
	return a.platform
}

// Fetch returns the first min(maxResults, len(catalog)) samples.
func (a *SyntheticAdapter) Fetch(ctx context.Context, maxResults int) []models.Post {
	n := min(maxResults, len(a.src.catalog))
	if n <= 0 {
		return []models.Post{}
	}

	posts := make([]models.Post, 0, n)
	for i, s := range a.src.catalog[:n] {
		post, err := a.normalizer.Normalize(a.platform, s.record(a.src.media, fmt.Sprintf("%s%d", a.src.prefix, i)), "")
		if err != nil {
			logger.Log.WithError(err).WithField("platform", a.platform).Warn("skipping sample")
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

func (s Sample) record(media models.MediaType, sourceID string) feed.RawRecord {
	r := feed.RawRecord{
		Author: feed.RawAuthor{
			Name:     s.Name,
			Username: s.Username,
			Avatar:   s.Avatar,
		},
		Content:   strings.TrimSpace(s.Content),
		MediaURL:  s.MediaURL,
		Likes:     s.Likes,
		Comments:  s.Comments,
		Shares:    s.Shares,
		Timestamp: s.Timestamp,
		SourceID:  sourceID,
	}
	if media == models.MediaVideo {
		r.IsVideo = true
	} else {
		r.ImageHint = true
	}
	return r
}
