package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/middleware"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const defaultPostLimit = 100

// PostHandler serves the feed and the public post counters
type PostHandler struct {
	postRepository     repositories.PostRepository
	activityRepository repositories.ActivityRepository
	now                func() time.Time
}

// NewPostHandler creates a new PostHandler. activityRepo may be nil.
func NewPostHandler(postRepo repositories.PostRepository, activityRepo repositories.ActivityRepository) *PostHandler {
	return &PostHandler{
		postRepository:     postRepo,
		activityRepository: activityRepo,
		now:                time.Now,
	}
}

// RegisterPostRoutes registers post routes. Counter routes log activity
// when the group carries an optional session.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/featured", h.GetFeaturedPost)
	g.GET("/posts/new-count", h.NewPostCount)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts/:id/like", h.LikePost)
	g.POST("/posts/:id/comment", h.CommentPost)
	g.POST("/posts/:id/share", h.SharePost)
}

// ListPosts lists posts filtered by platform, category and time range
func (h *PostHandler) ListPosts(c echo.Context) error {
	var q models.PostListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	filter := repositories.PostFilter{
		Platform: models.Platform(q.Platform),
		Category: models.Category(q.Category),
		Since:    repositories.TimeRangeSince(h.now().UTC(), q.TimeRange),
		SortBy:   repositories.SortOrder(q.SortBy),
		Skip:     int64(q.Skip),
		Limit:    defaultPostLimit,
	}
	if filter.SortBy == "" {
		filter.SortBy = repositories.SortDate
	}
	if q.Limit > 0 {
		filter.Limit = int64(q.Limit)
	}

	posts, err := h.postRepository.ListPosts(c.Request().Context(), filter)
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, posts)
}

// GetFeaturedPost returns the hero post
func (h *PostHandler) GetFeaturedPost(c echo.Context) error {
	post, err := h.postRepository.GetFeaturedPost(c.Request().Context())
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, post)
}

// NewPostCount reports how many posts arrived after ?since=<RFC3339>
func (h *PostHandler) NewPostCount(c echo.Context) error {
	since, err := time.Parse(time.RFC3339, c.QueryParam("since"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "since must be an RFC3339 timestamp")
	}

	count, err := h.postRepository.CountPosts(c.Request().Context(), repositories.PostFilter{Since: since.UTC()})
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, echo.Map{"new_count": count, "has_new": count > 0})
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(err, "Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) LikePost(c echo.Context) error {
	post, err := h.bump(c, repositories.CounterLikes, models.ActionLike)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"likes": post.Likes, "isLiked": true})
}

func (h *PostHandler) CommentPost(c echo.Context) error {
	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.bump(c, repositories.CounterComments, models.ActionComment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "commentCount": post.Comments})
}

func (h *PostHandler) SharePost(c echo.Context) error {
	post, err := h.bump(c, repositories.CounterShares, models.ActionShare)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"shares": post.Shares})
}

// bump increments counter on the post in the path and logs the action for
// signed-in users.
func (h *PostHandler) bump(c echo.Context, counter repositories.Counter, action models.ActivityAction) (*models.Post, error) {
	ctx := c.Request().Context()
	post, err := h.postRepository.IncrementCounter(ctx, c.Param("id"), counter)
	if err != nil {
		return nil, storeError(err, "Post not found")
	}

	if user := middleware.CurrentUser(c); user != nil && h.activityRepository != nil {
		if err := h.activityRepository.LogActivity(ctx, user.ID, action, post.ID); err != nil {
			logger.Log.WithError(err).WithField("action", action).Warn("failed to log activity")
		}
	}
	return post, nil
}
