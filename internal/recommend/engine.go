// Package recommend ranks posts for a user with an LLM and falls back to a
// deterministic trending order whenever the model cannot be used.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
	"github.com/anonto42/chyll/backend/pkg/metrics"
)

const (
	defaultTimeout  = 20 * time.Second
	maxTopicPosts   = 30
	topicsCacheKey  = "chyll:trending_topics:%d"
	operationRank   = "recommend"
	operationTopics = "trending_topics"
)

// Topic is one detected theme across recent posts.
type Topic struct {
	Topic     string   `json:"topic"`
	Count     int      `json:"count"`
	Platforms []string `json:"platforms"`
}

type Engine struct {
	generator Generator
	cache     TopicCache
	timeout   time.Duration
}

type EngineOption func(*Engine)

func WithTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

func WithTopicCache(c TopicCache) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// NewEngine accepts a nil generator; every call then takes the fallback.
func NewEngine(gen Generator, opts ...EngineOption) *Engine {
	e := &Engine{
		generator: gen,
		cache:     NoopTopicCache{},
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports whether a model is configured.
func (e *Engine) Enabled() bool {
	return e.generator != nil
}

// Recommend orders candidates by relevance to profile and returns at most
// limit of them. The second result is false when the trending fallback was
// used.
func (e *Engine) Recommend(ctx context.Context, profile InterestProfile, candidates []models.Post, limit int) ([]models.Post, bool) {
	if limit <= 0 || len(candidates) == 0 {
		return []models.Post{}, false
	}

	ranked, err := e.rank(ctx, profile, candidates, limit)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", profile.UserID).Warn("recommendation fell back to trending")
		metrics.RecordRecommendationFallback(operationRank)
		return head(TrendingSort(candidates), limit), false
	}
	return ranked, true
}

func (e *Engine) rank(ctx context.Context, profile InterestProfile, candidates []models.Post, limit int) ([]models.Post, error) {
	if e.generator == nil {
		return nil, fmt.Errorf("no model configured")
	}

	interests, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, err
	}
	summaries, err := json.MarshalIndent(SummarizePosts(candidates), "", "  ")
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(`Based on this user's interests and the available posts, recommend the TOP %d most relevant posts.

USER INTERESTS:
%s

AVAILABLE POSTS:
%s

Return ONLY a JSON array of post IDs in order of relevance (most relevant first).
Format: ["post_id_1", "post_id_2", ...]`, limit, interests, summaries)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	text, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(cleanJSON(text)), &ids); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}

	byID := make(map[string]models.Post, len(candidates))
	for _, p := range candidates {
		byID[p.ID] = p
	}
	out := make([]models.Post, 0, limit)
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		delete(byID, id)
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no known post ids")
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":     profile.UserID,
		"recommended": len(out),
	}).Debug("model recommendations ready")
	return out, nil
}

// TrendingScore weighs shares above comments above likes.
func TrendingScore(p models.Post) int64 {
	return p.Likes + 2*p.Comments + 3*p.Shares
}

// TrendingSort returns a copy of posts ordered by TrendingScore, highest
// first. Ties keep their input order.
func TrendingSort(posts []models.Post) []models.Post {
	out := append([]models.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool {
		return TrendingScore(out[i]) > TrendingScore(out[j])
	})
	return out
}

// TrendingTopics detects themes in posts. Results from the model are cached;
// without a model the posts are bucketed by category.
func (e *Engine) TrendingTopics(ctx context.Context, posts []models.Post, limit int) []Topic {
	if limit <= 0 {
		return []Topic{}
	}
	key := fmt.Sprintf(topicsCacheKey, limit)
	if topics, ok := e.cache.Get(ctx, key); ok {
		return topics
	}

	topics, err := e.detectTopics(ctx, posts, limit)
	if err != nil {
		logger.Log.WithError(err).Warn("trending topics fell back to category buckets")
		metrics.RecordRecommendationFallback(operationTopics)
		return CategoryTopics(posts, limit)
	}
	e.cache.Set(ctx, key, topics)
	return topics
}

func (e *Engine) detectTopics(ctx context.Context, posts []models.Post, limit int) ([]Topic, error) {
	if e.generator == nil {
		return nil, fmt.Errorf("no model configured")
	}
	if len(posts) > maxTopicPosts {
		posts = posts[:maxTopicPosts]
	}

	type topicInput struct {
		Content  string `json:"content"`
		Platform string `json:"platform"`
		Likes    int64  `json:"likes"`
	}
	input := make([]topicInput, 0, len(posts))
	for _, p := range posts {
		input = append(input, topicInput{Content: truncateRunes(p.Content, maxSummaryRunes), Platform: string(p.Platform), Likes: p.Likes})
	}
	body, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(`Analyze these posts and identify the TOP %d trending topics/themes.

POSTS:
%s

Return ONLY a JSON array of trending topics with format:
[{"topic": "topic name", "count": number_of_posts, "platforms": ["platform1", "platform2"]}]`, limit, body)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	text, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	var topics []Topic
	if err := json.Unmarshal([]byte(cleanJSON(text)), &topics); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}
	out := make([]Topic, 0, len(topics))
	for _, t := range topics {
		if strings.TrimSpace(t.Topic) == "" {
			continue
		}
		if t.Platforms == nil {
			t.Platforms = []string{}
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no topics")
	}
	return head(out, limit), nil
}

// CategoryTopics buckets posts by category, largest bucket first.
func CategoryTopics(posts []models.Post, limit int) []Topic {
	type bucket struct {
		count     int
		platforms map[string]bool
	}
	buckets := make(map[models.Category]*bucket)
	for _, p := range posts {
		b, ok := buckets[p.Category]
		if !ok {
			b = &bucket{platforms: make(map[string]bool)}
			buckets[p.Category] = b
		}
		b.count++
		b.platforms[string(p.Platform)] = true
	}

	topics := make([]Topic, 0, len(buckets))
	for c, b := range buckets {
		platforms := make([]string, 0, len(b.platforms))
		for p := range b.platforms {
			platforms = append(platforms, p)
		}
		sort.Strings(platforms)
		topics = append(topics, Topic{Topic: string(c), Count: b.count, Platforms: platforms})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Topic < topics[j].Topic
	})
	return head(topics, limit)
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
