package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	redditPublicBaseURL = "https://old.reddit.com"
	redditOAuthBaseURL  = "https://oauth.reddit.com"
	redditTokenURL      = "https://www.reddit.com/api/v1/access_token"
	redditUserAgent     = "chyll-feed/1.0 (by /u/chyll-feed)"
	redditMinPerSub     = 5
	redditMaxPerRequest = 100
	requestTimeout      = 15 * time.Second
	politenessDelay     = time.Second
)

var defaultSubreddits = []string{"pics", "funny", "videos", "interestingasfuck", "nextfuckinglevel", "aww"}

// RedditOption configures the RedditAdapter.
type RedditOption func(*RedditAdapter)

// WithRedditBaseURL sets a custom base URL (useful for testing).
func WithRedditBaseURL(url string) RedditOption {
	return func(a *RedditAdapter) {
		a.baseURL = strings.TrimRight(url, "/")
	}
}

// WithRedditHTTPClient sets a custom HTTP client.
func WithRedditHTTPClient(c HTTPClient) RedditOption {
	return func(a *RedditAdapter) {
		a.httpClient = c
	}
}

// WithRedditDelay overrides the pause between subreddit requests.
func WithRedditDelay(d time.Duration) RedditOption {
	return func(a *RedditAdapter) {
		a.delay = d
	}
}

func WithSubreddits(subs ...string) RedditOption {
	return func(a *RedditAdapter) {
		a.subreddits = subs
	}
}

// RedditAdapter reads the hot listing of a fixed set of subreddits.
type RedditAdapter struct {
	baseURL    string
	httpClient HTTPClient
	subreddits []string
	delay      time.Duration
	normalizer *feed.Normalizer
}

// NewRedditAdapter uses app-only OAuth when client credentials are given
// and the public JSON listing otherwise. Either way the adapter is usable.
func NewRedditAdapter(creds ClientCredentials, n *feed.Normalizer, opts ...RedditOption) (*RedditAdapter, Capability) {
	a := &RedditAdapter{
		baseURL:    redditPublicBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		subreddits: defaultSubreddits,
		delay:      politenessDelay,
		normalizer: n,
	}
	capability := Configured("public")

	if creds.ClientID != "" && creds.ClientSecret != "" {
		cfg := clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     redditTokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		client := cfg.Client(context.Background())
		client.Timeout = requestTimeout
		a.httpClient = client
		a.baseURL = redditOAuthBaseURL
		capability = Configured("oauth")
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, capability
}

func (a *RedditAdapter) Platform() models.Platform {
	return models.PlatformReddit
}

// Fetch spreads limit over the subreddits, at least five per subreddit,
// and keeps only posts that carry media.
func (a *RedditAdapter) Fetch(ctx context.Context, limit int) []models.Post {
	if limit <= 0 || len(a.subreddits) == 0 {
		return []models.Post{}
	}
	perSub := max(limit/len(a.subreddits), redditMinPerSub)

	posts := make([]models.Post, 0, limit)
	for i, sub := range a.subreddits {
		if i > 0 {
			if err := sleepCtx(ctx, a.delay); err != nil {
				break
			}
		}
		listing, err := a.fetchSubreddit(ctx, sub, perSub)
		if err != nil {
			logger.Log.WithError(err).WithField("subreddit", sub).Warn("reddit fetch failed")
			continue
		}
		for _, child := range listing.Data.Children {
			if !child.Data.hasMedia() {
				continue
			}
			post, err := a.normalizer.Normalize(models.PlatformReddit, child.Data.record(), "")
			if err != nil {
				continue
			}
			posts = append(posts, post)
		}
	}

	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

func (a *RedditAdapter) fetchSubreddit(ctx context.Context, sub string, n int) (*redditListing, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", a.baseURL, sub, min(n, redditMaxPerRequest))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", redditUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}
	return &listing, nil
}

// API response types

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID                    string  `json:"id"`
	Title                 string  `json:"title"`
	Author                string  `json:"author"`
	SubredditNamePrefixed string  `json:"subreddit_name_prefixed"`
	Permalink             string  `json:"permalink"`
	URL                   string  `json:"url"`
	Domain                string  `json:"domain"`
	Thumbnail             string  `json:"thumbnail"`
	PostHint              string  `json:"post_hint"`
	IsVideo               bool    `json:"is_video"`
	Ups                   int64   `json:"ups"`
	NumComments           int64   `json:"num_comments"`
	NumCrossposts         int64   `json:"num_crossposts"`
	CreatedUTC            float64 `json:"created_utc"`
	Media                 *struct {
		RedditVideo *struct {
			FallbackURL string `json:"fallback_url"`
		} `json:"reddit_video"`
	} `json:"media"`
	Preview *struct {
		Images []struct {
			Source struct {
				URL string `json:"url"`
			} `json:"source"`
		} `json:"images"`
	} `json:"preview"`
}

func (p redditPost) hasMedia() bool {
	return p.PostHint == "image" ||
		p.IsVideo ||
		(p.Preview != nil && len(p.Preview.Images) > 0) ||
		strings.HasPrefix(p.Thumbnail, "http")
}

func (p redditPost) record() feed.RawRecord {
	r := feed.RawRecord{
		Author: feed.RawAuthor{
			Name: p.SubredditNamePrefixed,
		},
		Content:      strings.TrimSpace(p.Title),
		ImageHint:    p.PostHint == "image",
		MediaURL:     p.URL,
		IsVideo:      p.IsVideo,
		Domain:       p.Domain,
		ThumbnailURL: p.Thumbnail,
		Likes:        p.Ups,
		Comments:     p.NumComments,
		Shares:       p.NumCrossposts,
		SourceID:     p.ID,
	}
	if p.Author != "" {
		r.Author.Username = "u/" + p.Author
	}
	if strings.HasPrefix(p.Thumbnail, "http") {
		r.Author.Avatar = p.Thumbnail
	}
	if p.Media != nil && p.Media.RedditVideo != nil {
		r.VideoURL = p.Media.RedditVideo.FallbackURL
	}
	if p.Preview != nil {
		for _, img := range p.Preview.Images {
			if img.Source.URL != "" {
				r.PreviewImages = append(r.PreviewImages, img.Source.URL)
			}
		}
	}
	if p.CreatedUTC > 0 {
		r.PublishedAt = time.Unix(int64(p.CreatedUTC), 0).UTC()
	}
	if p.Permalink != "" {
		r.SourceURL = "https://reddit.com" + p.Permalink
	}
	return r
}
