package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ingestedPostsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chyll_ingested_posts_total",
			Help: "Posts inserted into the feed store by ingestion runs",
		},
		[]string{"platform"},
	)

	adapterFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chyll_adapter_fetch_duration_seconds",
			Help:    "Duration of platform adapter fetches in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"platform"},
	)

	recommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chyll_recommendation_fallbacks_total",
			Help: "Recommendation requests answered by the trending fallback",
		},
		[]string{"operation"},
	)
)

// Middleware records request count and latency per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			httpRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func RecordIngested(platform string, added int) {
	ingestedPostsTotal.WithLabelValues(platform).Add(float64(added))
}

func ObserveFetch(platform string, d time.Duration) {
	adapterFetchDuration.WithLabelValues(platform).Observe(d.Seconds())
}

func RecordRecommendationFallback(operation string) {
	recommendationFallbacks.WithLabelValues(operation).Inc()
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
