package scrapers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	twitterBaseURL       = "https://api.twitter.com"
	twitterMinPerRequest = 10
	twitterMaxPerRequest = 100
)

var twitterQueries = []string{
	"(viral OR trending) -is:retweet has:media lang:en",
	"breaking news -is:retweet has:media lang:en",
	"(amazing OR incredible) -is:retweet has:images lang:en",
}

// errRateLimited stops the remaining queries of a fetch.
var errRateLimited = errors.New("twitter rate limit reached")

// TwitterOption configures the TwitterAdapter.
type TwitterOption func(*TwitterAdapter)

// WithTwitterBaseURL sets a custom base URL (useful for testing).
func WithTwitterBaseURL(url string) TwitterOption {
	return func(a *TwitterAdapter) {
		a.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTwitterHTTPClient sets a custom HTTP client.
func WithTwitterHTTPClient(c HTTPClient) TwitterOption {
	return func(a *TwitterAdapter) {
		a.httpClient = c
	}
}

// WithTwitterDelay overrides the pause between queries.
func WithTwitterDelay(d time.Duration) TwitterOption {
	return func(a *TwitterAdapter) {
		a.delay = d
	}
}

// TwitterAdapter runs a few recent-search queries against the API v2.
type TwitterAdapter struct {
	bearerToken string
	baseURL     string
	httpClient  HTTPClient
	delay       time.Duration
	normalizer  *feed.Normalizer
}

// NewTwitterAdapter is Unconfigured without a bearer token.
func NewTwitterAdapter(bearerToken string, n *feed.Normalizer, opts ...TwitterOption) (*TwitterAdapter, Capability) {
	a := &TwitterAdapter{
		bearerToken: bearerToken,
		baseURL:     twitterBaseURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		delay:       politenessDelay,
		normalizer:  n,
	}
	for _, opt := range opts {
		opt(a)
	}
	if bearerToken == "" {
		return a, Unconfigured("api", "TWITTER_BEARER_TOKEN not set")
	}
	return a, Configured("api")
}

func (a *TwitterAdapter) Platform() models.Platform {
	return models.PlatformTwitter
}

// Fetch merges the query results, keeps tweets with media, and returns the
// most engaging ones first.
func (a *TwitterAdapter) Fetch(ctx context.Context, maxResults int) []models.Post {
	if a.bearerToken == "" {
		logger.Log.Warn("twitter adapter is not configured, skipping fetch")
		return []models.Post{}
	}
	if maxResults <= 0 {
		return []models.Post{}
	}
	perQuery := min(max(maxResults/len(twitterQueries), twitterMinPerRequest), twitterMaxPerRequest)

	seen := make(map[string]bool)
	posts := make([]models.Post, 0, maxResults)
	for i, q := range twitterQueries {
		if i > 0 {
			if err := sleepCtx(ctx, a.delay); err != nil {
				break
			}
		}
		resp, err := a.search(ctx, q, perQuery)
		if errors.Is(err, errRateLimited) {
			logger.Log.Warn("twitter rate limit reached, stopping")
			break
		}
		if err != nil {
			logger.Log.WithError(err).WithField("query", q).Warn("twitter search failed")
			continue
		}
		for _, raw := range resp.records() {
			if seen[raw.SourceID] {
				continue
			}
			seen[raw.SourceID] = true
			post, err := a.normalizer.Normalize(models.PlatformTwitter, raw, "")
			if err != nil {
				continue
			}
			posts = append(posts, post)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Engagement() > posts[j].Engagement()
	})
	if len(posts) > maxResults {
		posts = posts[:maxResults]
	}
	return posts
}

func (a *TwitterAdapter) search(ctx context.Context, query string, n int) (*twitterSearchResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(n))
	params.Set("tweet.fields", "created_at,public_metrics,author_id,attachments")
	params.Set("expansions", "author_id,attachments.media_keys")
	params.Set("user.fields", "name,username,profile_image_url")
	params.Set("media.fields", "url,preview_image_url,type")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/2/tweets/search/recent?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("twitter returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out twitterSearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &out, nil
}

// API response types

type twitterSearchResponse struct {
	Data     []twitterTweet `json:"data"`
	Includes struct {
		Users []twitterUser  `json:"users"`
		Media []twitterMedia `json:"media"`
	} `json:"includes"`
}

type twitterTweet struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	AuthorID    string `json:"author_id"`
	CreatedAt   string `json:"created_at"`
	Attachments struct {
		MediaKeys []string `json:"media_keys"`
	} `json:"attachments"`
	PublicMetrics struct {
		RetweetCount int64 `json:"retweet_count"`
		ReplyCount   int64 `json:"reply_count"`
		LikeCount    int64 `json:"like_count"`
	} `json:"public_metrics"`
}

type twitterUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

type twitterMedia struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	PreviewImageURL string `json:"preview_image_url"`
}

// records joins tweets with their expanded users and media. Tweets whose
// first attachment is not a photo or video, or has no image URL, are dropped.
func (r *twitterSearchResponse) records() []feed.RawRecord {
	users := make(map[string]twitterUser, len(r.Includes.Users))
	for _, u := range r.Includes.Users {
		users[u.ID] = u
	}
	media := make(map[string]twitterMedia, len(r.Includes.Media))
	for _, m := range r.Includes.Media {
		media[m.MediaKey] = m
	}

	out := make([]feed.RawRecord, 0, len(r.Data))
	for _, t := range r.Data {
		if len(t.Attachments.MediaKeys) == 0 {
			continue
		}
		m, ok := media[t.Attachments.MediaKeys[0]]
		if !ok {
			continue
		}

		rec := feed.RawRecord{
			Content:  strings.TrimSpace(t.Text),
			Likes:    t.PublicMetrics.LikeCount,
			Comments: t.PublicMetrics.ReplyCount,
			Shares:   t.PublicMetrics.RetweetCount,
			SourceID: t.ID,
		}
		switch m.Type {
		case "photo":
			if m.URL == "" {
				continue
			}
			rec.ImageHint = true
			rec.MediaURL = m.URL
		case "video":
			if m.PreviewImageURL == "" {
				continue
			}
			rec.IsVideo = true
			rec.VideoURL = m.PreviewImageURL
			rec.ThumbnailURL = m.PreviewImageURL
		default:
			continue
		}

		u := users[t.AuthorID]
		rec.Author = feed.RawAuthor{Name: u.Name, Avatar: u.ProfileImageURL}
		handle := "unknown"
		if u.Username != "" {
			rec.Author.Username = "@" + u.Username
			handle = u.Username
		}
		rec.SourceURL = fmt.Sprintf("https://twitter.com/%s/status/%s", handle, t.ID)
		if ts, err := feed.ParseSourceTime(t.CreatedAt); err == nil {
			rec.PublishedAt = ts
		}
		out = append(out, rec)
	}
	return out
}
