package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/middleware"
	"github.com/anonto42/chyll/backend/internal/recommend"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
	defaultTopicLimit          = 5
	maxTopicLimit              = 20
	candidatePoolSize          = 100
)

// RecommendationHandler serves personalized and trending suggestions.
// Both endpoints degrade to deterministic rankings when the model is
// unavailable.
type RecommendationHandler struct {
	engine             *recommend.Engine
	postRepository     repositories.PostRepository
	favoriteRepository repositories.FavoriteRepository
}

func NewRecommendationHandler(engine *recommend.Engine, postRepo repositories.PostRepository, favoriteRepo repositories.FavoriteRepository) *RecommendationHandler {
	return &RecommendationHandler{
		engine:             engine,
		postRepository:     postRepo,
		favoriteRepository: favoriteRepo,
	}
}

// RegisterRecommendationRoutes expects a group with an optional session
func (h *RecommendationHandler) RegisterRecommendationRoutes(g *echo.Group) {
	g.GET("/recommendations", h.GetRecommendations)
	g.GET("/trending/topics", h.GetTrendingTopics)
}

func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()
	limit, err := queryLimit(c, "limit", defaultRecommendationLimit, maxRecommendationLimit)
	if err != nil {
		return err
	}

	candidates, err := h.postRepository.ListPosts(ctx, repositories.PostFilter{
		SortBy: repositories.SortDate,
		Limit:  candidatePoolSize,
	})
	if err != nil {
		return storeError(err, "No posts found")
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		posts := recommend.TrendingSort(candidates)
		if len(posts) > limit {
			posts = posts[:limit]
		}
		return c.JSON(http.StatusOK, echo.Map{"recommendations": posts, "personalized": false, "source": "trending"})
	}

	favorites, err := h.favoriteRepository.CountFavorites(ctx, user.ID)
	if err != nil {
		logger.Log.WithError(err).Warn("failed to count favorites for recommendations")
	}
	profile := recommend.BuildInterestProfile(user, int(favorites))

	posts, fromModel := h.engine.Recommend(ctx, profile, candidates, limit)
	source := "trending"
	if fromModel {
		source = "ai"
	}
	return c.JSON(http.StatusOK, echo.Map{"recommendations": posts, "personalized": fromModel, "source": source})
}

func (h *RecommendationHandler) GetTrendingTopics(c echo.Context) error {
	ctx := c.Request().Context()
	limit, err := queryLimit(c, "limit", defaultTopicLimit, maxTopicLimit)
	if err != nil {
		return err
	}

	posts, err := h.postRepository.ListPosts(ctx, repositories.PostFilter{
		SortBy: repositories.SortEngagement,
		Limit:  candidatePoolSize,
	})
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, echo.Map{"topics": h.engine.TrendingTopics(ctx, posts, limit)})
}
