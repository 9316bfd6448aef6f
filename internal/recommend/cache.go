package recommend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/anonto42/chyll/backend/pkg/logger"
)

// TopicTTL is how long detected topics are reused.
const TopicTTL = 10 * time.Minute

// TopicCache stores detected trending topics between requests.
type TopicCache interface {
	Get(ctx context.Context, key string) ([]Topic, bool)
	Set(ctx context.Context, key string, topics []Topic)
}

type NoopTopicCache struct{}

func (NoopTopicCache) Get(context.Context, string) ([]Topic, bool) { return nil, false }
func (NoopTopicCache) Set(context.Context, string, []Topic)        {}

// RedisTopicCache keeps topics as JSON strings with a TTL. Redis errors
// are logged and treated as misses.
type RedisTopicCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTopicCache(client *redis.Client) *RedisTopicCache {
	return &RedisTopicCache{client: client, ttl: TopicTTL}
}

func (c *RedisTopicCache) Get(ctx context.Context, key string) ([]Topic, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).Warn("topic cache read failed")
		}
		return nil, false
	}
	var topics []Topic
	if err := json.Unmarshal(raw, &topics); err != nil {
		logger.Log.WithError(err).Warn("discarding malformed cached topics")
		return nil, false
	}
	return topics, true
}

func (c *RedisTopicCache) Set(ctx context.Context, key string, topics []Topic) {
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("topic cache write failed")
	}
}
