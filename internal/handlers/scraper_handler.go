package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/ingest"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	defaultFetchLimit = 20
	maxFetchLimit     = 100
	maxImportRecords  = 500
)

// ScraperHandler triggers adapter fetches and accepts externally scraped
// records
type ScraperHandler struct {
	ingester       *ingest.Ingester
	registry       *scrapers.Registry
	postRepository repositories.PostRepository
	normalizer     *feed.Normalizer
}

func NewScraperHandler(ing *ingest.Ingester, reg *scrapers.Registry, postRepo repositories.PostRepository, n *feed.Normalizer) *ScraperHandler {
	return &ScraperHandler{
		ingester:       ing,
		registry:       reg,
		postRepository: postRepo,
		normalizer:     n,
	}
}

func (h *ScraperHandler) RegisterScraperRoutes(g *echo.Group) {
	g.POST("/scraper/fetch-:platform", h.Fetch)
	g.POST("/scraper/import/:platform", h.Import)
	g.GET("/scraper/status", h.Status)
}

// Fetch runs one adapter batch and stores the new posts
func (h *ScraperHandler) Fetch(c echo.Context) error {
	platform, err := models.ParsePlatform(c.Param("platform"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	limit, err := queryLimit(c, "limit", defaultFetchLimit, maxFetchLimit)
	if err != nil {
		return err
	}

	res, err := h.ingester.Run(c.Request().Context(), platform, limit)
	if err != nil {
		if errors.Is(err, ingest.ErrUnknownPlatform) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		logger.Log.WithError(err).WithField("platform", platform).Error("ingestion failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store fetched posts")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"platform":      platform,
		"posts_added":   res.Added,
		"total_fetched": res.Fetched,
	})
}

type importRequest struct {
	Records []any `json:"records"`
}

// Import normalizes loosely typed records scraped elsewhere. Records that
// cannot be decoded or carry no source_id are counted as rejected.
func (h *ScraperHandler) Import(c echo.Context) error {
	platform, err := models.ParsePlatform(c.Param("platform"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	var req importRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if len(req.Records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "records must not be empty")
	}
	if len(req.Records) > maxImportRecords {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too many records")
	}

	posts := make([]models.Post, 0, len(req.Records))
	rejected := 0
	for _, raw := range req.Records {
		record, err := feed.DecodeRawRecord(raw)
		if err != nil || record.SourceID == "" {
			rejected++
			continue
		}
		post, err := h.normalizer.Normalize(platform, record, "")
		if err != nil {
			rejected++
			continue
		}
		posts = append(posts, post)
	}

	res, err := h.ingester.Ingest(c.Request().Context(), platform, posts)
	if err != nil {
		logger.Log.WithError(err).WithField("platform", platform).Error("import failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store imported posts")
	}
	logger.Log.WithFields(logrus.Fields{
		"platform": platform,
		"received": len(req.Records),
		"rejected": rejected,
	}).Info("records imported")

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"platform":      platform,
		"posts_added":   res.Added,
		"total_fetched": res.Fetched,
		"rejected":      rejected,
	})
}

type platformStatus struct {
	Platform models.Platform `json:"platform"`
	Posts    int64           `json:"posts"`
	scrapers.Capability
}

// Status reports stored posts and adapter capability per platform
func (h *ScraperHandler) Status(c echo.Context) error {
	stats, err := h.postRepository.PlatformStats(c.Request().Context())
	if err != nil {
		return storeError(err, "No posts found")
	}
	counts := make(map[models.Platform]int64, len(stats))
	var total int64
	for _, s := range stats {
		counts[s.Platform] = s.Posts
		total += s.Posts
	}

	caps := h.registry.Capabilities()
	out := make([]platformStatus, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		capability, ok := caps[p]
		if !ok {
			capability = scrapers.Unconfigured("none", "no adapter registered")
		}
		out = append(out, platformStatus{Platform: p, Posts: counts[p], Capability: capability})
	}

	seeded, err := h.postRepository.CountSeedPosts(c.Request().Context())
	if err != nil {
		return storeError(err, "No posts found")
	}
	return c.JSON(http.StatusOK, echo.Map{"total_posts": total, "seed_posts": seeded, "platforms": out})
}
