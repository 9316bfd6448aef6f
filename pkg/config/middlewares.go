package config

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/anonto42/chyll/backend/pkg/logger"
	"github.com/anonto42/chyll/backend/pkg/metrics"
)

// SetupMiddleware installs the global middleware stack. Credentialed CORS
// is only enabled for explicit origins.
func SetupMiddleware(e *echo.Echo, cfg *Config) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.Log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	corsCfg := middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}
	if len(cfg.CORSOrigins) > 0 && cfg.CORSOrigins[0] != "*" {
		corsCfg.AllowCredentials = true
	}
	e.Use(middleware.CORSWithConfig(corsCfg))
}
