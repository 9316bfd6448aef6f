package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/middleware"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// UserHandler serves the signed-in user's profile, favorites, activity and
// saved feeds. Every route requires a session.
type UserHandler struct {
	userRepository       repositories.UserRepository
	favoriteRepository   repositories.FavoriteRepository
	activityRepository   repositories.ActivityRepository
	customFeedRepository repositories.CustomFeedRepository
	postRepository       repositories.PostRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	activityRepo repositories.ActivityRepository,
	feedRepo repositories.CustomFeedRepository,
	postRepo repositories.PostRepository,
) *UserHandler {
	return &UserHandler{
		userRepository:       userRepo,
		favoriteRepository:   favoriteRepo,
		activityRepository:   activityRepo,
		customFeedRepository: feedRepo,
		postRepository:       postRepo,
	}
}

// RegisterUserRoutes registers user routes on a session-protected group
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.POST("/favorites/:id", h.ToggleFavorite)
	g.GET("/favorites", h.GetFavorites)
	g.PUT("/preferences", h.UpdatePreferences)
	g.GET("/activity", h.GetActivity)
	g.GET("/feeds", h.GetFeeds)
	g.POST("/feeds", h.CreateFeed)
	g.DELETE("/feeds/:id", h.DeleteFeed)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ids, err := h.favoriteRepository.GetFavoritePostIDs(c.Request().Context(), user.ID)
	if err != nil {
		return storeError(err, "User profile not found")
	}
	user.FavoritePosts = ids
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the fields present in the request
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Picture != "" {
		user.Picture = req.Picture
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if err := h.userRepository.UpdateUser(c.Request().Context(), user); err != nil {
		return storeError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// ToggleFavorite adds the post to the user's favorites, or removes it if it
// is already there
func (h *UserHandler) ToggleFavorite(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)
	postID := c.Param("id")

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		return storeError(err, "Post not found")
	}

	isFavorite, err := h.favoriteRepository.IsFavorite(ctx, user.ID, postID)
	if err != nil {
		return storeError(err, "Post not found")
	}

	action := models.ActionFavorite
	if isFavorite {
		action = models.ActionUnfavorite
		err = h.favoriteRepository.RemoveFavorite(ctx, user.ID, postID)
	} else {
		err = h.favoriteRepository.AddFavorite(ctx, user.ID, postID)
	}
	if err != nil {
		return storeError(err, "Post not found")
	}

	if err := h.activityRepository.LogActivity(ctx, user.ID, action, postID); err != nil {
		logger.Log.WithError(err).WithField("action", action).Warn("failed to log activity")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "isFavorite": !isFavorite})
}

// GetFavorites returns the favorited posts, most recent first. Favorites
// whose post no longer exists are skipped.
func (h *UserHandler) GetFavorites(c echo.Context) error {
	ctx := c.Request().Context()
	user := middleware.CurrentUser(c)

	ids, err := h.favoriteRepository.GetFavoritePostIDs(ctx, user.ID)
	if err != nil {
		return storeError(err, "No favorites found")
	}
	if len(ids) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No favorites found")
	}

	posts, err := h.postRepository.GetPostsByIDs(ctx, ids)
	if err != nil {
		return storeError(err, "No favorites found")
	}
	return c.JSON(http.StatusOK, orderByIDs(posts, ids))
}

func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.FavoritePlatforms != nil {
		user.FavoritePlatforms = dedupe(req.FavoritePlatforms)
	}
	if req.Notifications != nil {
		user.Notifications = *req.Notifications
	}
	if err := h.userRepository.UpdateUser(c.Request().Context(), user); err != nil {
		return storeError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":                 true,
		"favoritePlatforms":       user.FavoritePlatforms,
		"notificationPreferences": user.Notifications,
	})
}

func (h *UserHandler) GetActivity(c echo.Context) error {
	limit, err := queryLimit(c, "limit", defaultActivityLimit, maxActivityLimit)
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	activities, err := h.activityRepository.GetActivities(c.Request().Context(), user.ID, limit)
	if err != nil {
		return storeError(err, "No activity found")
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *UserHandler) GetFeeds(c echo.Context) error {
	user := middleware.CurrentUser(c)
	feeds, err := h.customFeedRepository.GetFeedsByUser(c.Request().Context(), user.ID)
	if err != nil {
		return storeError(err, "No feeds found")
	}
	return c.JSON(http.StatusOK, feeds)
}

func (h *UserHandler) CreateFeed(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req models.CreateCustomFeedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	feed := &models.CustomFeed{
		UserID:     user.ID,
		Name:       req.Name,
		Platforms:  dedupe(req.Platforms),
		Categories: dedupe(req.Categories),
		TimeRange:  req.TimeRange,
		SortBy:     req.SortBy,
	}
	if feed.TimeRange == "" {
		feed.TimeRange = "all"
	}
	if feed.SortBy == "" {
		feed.SortBy = "date"
	}
	if err := h.customFeedRepository.CreateFeed(c.Request().Context(), feed); err != nil {
		return storeError(err, "Feed not found")
	}
	return c.JSON(http.StatusCreated, feed)
}

// DeleteFeed only deletes feeds owned by the caller
func (h *UserHandler) DeleteFeed(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if err := h.customFeedRepository.DeleteFeed(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return storeError(err, "Feed not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// dedupe keeps the first occurrence of each value
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
