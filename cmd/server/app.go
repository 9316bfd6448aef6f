package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/ingest"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/recommend"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/pkg/config"
	"github.com/anonto42/chyll/backend/pkg/firebase"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// app is everything both subcommands need
type app struct {
	cfg        *config.Config
	db         *config.DB
	posts      repositories.PostRepository
	normalizer *feed.Normalizer
	registry   *scrapers.Registry
	ingester   *ingest.Ingester
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, db: db, normalizer: feed.NewNormalizer()}

	if db.Mongo != nil {
		mongoRepo := repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase))
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			db.CloseDB()
			return nil, fmt.Errorf("failed to create post indexes: %w", err)
		}
		a.posts = mongoRepo
	} else {
		logger.Log.Warn("MONGO_URI not set, posts are kept in memory")
		a.posts = repositories.NewMemoryPostRepository()
	}

	a.registry = scrapers.BuildRegistry(ctx, credentials(cfg), a.normalizer)
	a.ingester = ingest.NewIngester(a.posts, a.registry)
	return a, nil
}

// persistent reports whether posts outlive the process.
func (a *app) persistent() bool {
	_, ok := a.posts.(*repositories.MongoPostRepository)
	return ok
}

func (a *app) Close() {
	a.db.CloseDB()
}

func credentials(cfg *config.Config) scrapers.Credentials {
	creds := scrapers.Credentials{
		YouTubeAPIKey:      cfg.YouTubeAPIKey,
		TwitterBearerToken: cfg.TwitterBearerToken,
		Reddit: scrapers.ClientCredentials{
			ClientID:     cfg.RedditClientID,
			ClientSecret: cfg.RedditClientSecret,
		},
		Platforms: make(map[models.Platform]scrapers.ClientCredentials),
	}
	for name, pair := range cfg.PlatformCredentials {
		creds.Platforms[models.Platform(strings.ToLower(name))] = scrapers.ClientCredentials{
			ClientID:     pair[0],
			ClientSecret: pair[1],
		}
	}
	return creds
}

// authBroker prefers the HTTP session broker, then Firebase. With neither
// configured logins answer 502.
func (a *app) authBroker(ctx context.Context) auth.Broker {
	if a.cfg.AuthBrokerURL != "" {
		return auth.NewHTTPBroker(a.cfg.AuthBrokerURL)
	}
	if a.cfg.FirebaseCredentialsPath != "" {
		client, err := firebase.NewAuthClient(ctx, a.cfg.FirebaseCredentialsPath, a.cfg.FirebaseProjectID)
		if err != nil {
			logger.Log.WithError(err).Error("failed to initialize Firebase, logins are disabled")
			return nil
		}
		return auth.NewFirebaseBroker(client)
	}
	logger.Log.Warn("neither AUTH_BROKER_URL nor FIREBASE_CREDENTIALS_PATH set, logins are disabled")
	return nil
}

func (a *app) recommendationEngine(ctx context.Context) *recommend.Engine {
	var opts []recommend.EngineOption
	if a.db.Redis != nil {
		opts = append(opts, recommend.WithTopicCache(recommend.NewRedisTopicCache(a.db.Redis)))
	}

	if a.cfg.GeminiAPIKey == "" {
		logger.Log.Warn("GEMINI_API_KEY not set, recommendations use trending order")
		return recommend.NewEngine(nil, opts...)
	}
	gen, err := recommend.NewGeminiGenerator(ctx, a.cfg.GeminiAPIKey, a.cfg.GeminiModel)
	if err != nil {
		logger.Log.WithError(err).Error("failed to create Gemini client, recommendations use trending order")
		return recommend.NewEngine(nil, opts...)
	}
	return recommend.NewEngine(gen, opts...)
}
