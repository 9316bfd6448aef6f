package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// AnalyticsHandler serves aggregate counts over the feed store
type AnalyticsHandler struct {
	postRepository repositories.PostRepository
	now            func() time.Time
}

func NewAnalyticsHandler(postRepo repositories.PostRepository) *AnalyticsHandler {
	return &AnalyticsHandler{postRepository: postRepo, now: time.Now}
}

func (h *AnalyticsHandler) RegisterAnalyticsRoutes(g *echo.Group) {
	g.GET("/analytics/overview", h.Overview)
	g.GET("/analytics/platforms", h.Platforms)
	g.GET("/analytics/export", h.Export)
}

func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.postRepository.Overview(c.Request().Context())
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) Platforms(c echo.Context) error {
	stats, err := h.postRepository.PlatformStats(c.Request().Context())
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, stats)
}

var exportHeader = []string{
	"id", "platform", "category", "author", "username", "content",
	"media_type", "media_url", "likes", "comments", "shares", "source_url", "created_at",
}

// Export dumps every post as JSON (default) or CSV
func (h *AnalyticsHandler) Export(c echo.Context) error {
	format := c.QueryParam("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		return echo.NewHTTPError(http.StatusBadRequest, "format must be json or csv")
	}

	posts, err := h.postRepository.ListPosts(c.Request().Context(), repositories.PostFilter{SortBy: repositories.SortDate})
	if err != nil {
		return storeError(err, "No posts found")
	}

	exportedAt := h.now().UTC()
	if format == "json" {
		return c.JSON(http.StatusOK, echo.Map{
			"exported_at": exportedAt,
			"total":       len(posts),
			"posts":       posts,
		})
	}

	filename := "chyll-export-" + exportedAt.Format("20060102-150405") + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range posts {
		if err := w.Write(csvRow(p)); err != nil {
			logger.Log.WithError(err).Error("csv export interrupted")
			return nil
		}
	}
	w.Flush()
	return w.Error()
}

func csvRow(p models.Post) []string {
	return []string{
		p.ID,
		string(p.Platform),
		string(p.Category),
		p.User.Name,
		p.User.Username,
		p.Content,
		string(p.Media.Type),
		p.Media.URL,
		strconv.FormatInt(p.Likes, 10),
		strconv.FormatInt(p.Comments, 10),
		strconv.FormatInt(p.Shares, 10),
		p.SourceURL,
		p.CreatedAt.Format(time.RFC3339),
	}
}
