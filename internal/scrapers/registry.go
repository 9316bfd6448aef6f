package scrapers

import (
	"context"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// ClientCredentials is an OAuth client id/secret pair.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// Credentials holds every secret the adapters may use. All are optional.
type Credentials struct {
	YouTubeAPIKey      string
	TwitterBearerToken string
	Reddit             ClientCredentials
	Platforms          map[models.Platform]ClientCredentials // synthetic platforms
}

// BuildRegistry constructs an adapter for every platform and logs the
// capability each one ended up with.
func BuildRegistry(ctx context.Context, creds Credentials, n *feed.Normalizer) *Registry {
	reg := NewRegistry()

	for _, p := range SyntheticPlatforms() {
		a, c, err := NewSyntheticAdapter(p, creds.Platforms[p], n)
		if err != nil {
			logger.Log.WithError(err).WithField("platform", p).Error("failed to build adapter")
			continue
		}
		reg.Register(a, c)
	}

	reddit, c := NewRedditAdapter(creds.Reddit, n)
	reg.Register(reddit, c)

	yt, c := NewYouTubeAdapter(ctx, creds.YouTubeAPIKey, n)
	reg.Register(yt, c)

	tw, c := NewTwitterAdapter(creds.TwitterBearerToken, n)
	reg.Register(tw, c)

	for p, c := range reg.Capabilities() {
		entry := logger.Log.WithField("platform", p).WithField("mode", c.Mode)
		if c.Configured {
			entry.Info("adapter configured")
		} else {
			entry.WithField("reason", c.Reason).Warn("adapter unconfigured")
		}
	}
	return reg
}
