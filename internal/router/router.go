package router

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/handlers"
	"github.com/anonto42/chyll/backend/internal/ingest"
	"github.com/anonto42/chyll/backend/internal/middleware"
	"github.com/anonto42/chyll/backend/internal/recommend"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// Dependencies are the long-lived services the routes are built from.
type Dependencies struct {
	SQL        *gorm.DB
	Posts      repositories.PostRepository
	Broker     auth.Broker
	Tokens     *auth.TokenIssuer
	Engine     *recommend.Engine
	Registry   *scrapers.Registry
	Normalizer *feed.Normalizer
}

// SetupRoutes migrates the relational schema, builds repositories and
// handlers and registers every route.
func SetupRoutes(e *echo.Echo, deps Dependencies) error {
	if err := repositories.Migrate(deps.SQL); err != nil {
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}
	logger.Log.Info("relational auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(deps.SQL)
	sessionRepo := repositories.NewPostgresSessionRepository(deps.SQL)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(deps.SQL)
	activityRepo := repositories.NewPostgresActivityRepository(deps.SQL)
	feedRepo := repositories.NewPostgresCustomFeedRepository(deps.SQL)

	authService := auth.NewService(deps.Broker, deps.Tokens, userRepo, sessionRepo, activityRepo)
	ingester := ingest.NewIngester(deps.Posts, deps.Registry)
	requireSession := middleware.RequireSession(authService)
	optionalSession := middleware.OptionalSession(authService)

	api := e.Group("/api")
	api.GET("/", handlers.Welcome)

	// --- Public routes; a session is attached when present ---
	public := api.Group("", optionalSession)

	handlers.NewPostHandler(deps.Posts, activityRepo).RegisterPostRoutes(public)
	handlers.NewFeedHandler(deps.Posts).RegisterFeedRoutes(public)
	handlers.NewScraperHandler(ingester, deps.Registry, deps.Posts, deps.Normalizer).RegisterScraperRoutes(public)
	handlers.NewAnalyticsHandler(deps.Posts).RegisterAnalyticsRoutes(public)
	handlers.NewRecommendationHandler(deps.Engine, deps.Posts, favoriteRepo).RegisterRecommendationRoutes(public)
	logger.Log.Info("feed routes configured")

	// --- Auth ---
	authHandler := handlers.NewAuthHandler(authService, favoriteRepo)
	authHandler.RegisterAuthRoutes(api.Group("/auth"))
	api.GET("/auth/me", authHandler.Me, requireSession)
	logger.Log.Info("auth routes configured")

	// --- Protected routes (require a session) ---
	userGroup := api.Group("/user", requireSession)
	handlers.NewUserHandler(userRepo, favoriteRepo, activityRepo, feedRepo, deps.Posts).RegisterUserRoutes(userGroup)
	logger.Log.Info("user routes configured")

	return nil
}
