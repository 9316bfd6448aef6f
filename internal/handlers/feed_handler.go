package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
)

const defaultSearchLimit = 50

// FeedHandler serves search and the platform directory
type FeedHandler struct {
	postRepository repositories.PostRepository
}

func NewFeedHandler(postRepo repositories.PostRepository) *FeedHandler {
	return &FeedHandler{postRepository: postRepo}
}

func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
	g.GET("/platforms", h.GetPlatforms)
}

// Search matches q case-insensitively against content and author. q must
// be present but may be empty.
func (h *FeedHandler) Search(c echo.Context) error {
	if !c.QueryParams().Has("q") {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	var q models.SearchQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	filter := repositories.SearchFilter{
		Query:    c.QueryParam("q"),
		Platform: models.Platform(q.Platform),
		SortBy:   repositories.SortOrder(q.SortBy),
		Limit:    defaultSearchLimit,
	}
	if filter.SortBy == "" {
		filter.SortBy = repositories.SortRelevance
	}
	if q.Limit > 0 {
		filter.Limit = int64(q.Limit)
	}

	posts, err := h.postRepository.SearchPosts(c.Request().Context(), filter)
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *FeedHandler) GetPlatforms(c echo.Context) error {
	return c.JSON(http.StatusOK, feed.Platforms())
}
