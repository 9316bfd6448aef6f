// Package main is the chyll API server and ingestion CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/ingest"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/router"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/internal/seed"
	"github.com/anonto42/chyll/backend/internal/validators"
	"github.com/anonto42/chyll/backend/pkg/config"
	"github.com/anonto42/chyll/backend/pkg/logger"
	"github.com/anonto42/chyll/backend/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "chyll",
		Short:        "Social feed aggregator API",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newIngestCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger.Init(cfg.Env)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if added, err := a.ingester.SeedIfEmpty(ctx, seed.Posts(a.normalizer)); err != nil {
		logger.Log.WithError(err).Error("failed to seed feed store")
	} else if added > 0 {
		logger.Log.WithField("posts", added).Info("feed store seeded")
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.IsProduction()
	e.Validator = validators.NewValidator()
	config.SetupMiddleware(e, cfg)

	engine := a.recommendationEngine(ctx)
	logger.Log.WithField("model_enabled", engine.Enabled()).Info("recommendation engine ready")

	err = router.SetupRoutes(e, router.Dependencies{
		SQL:        a.db.Postgres,
		Posts:      a.posts,
		Broker:     a.authBroker(ctx),
		Tokens:     auth.NewTokenIssuer(cfg.SessionSecret),
		Engine:     engine,
		Registry:   a.registry,
		Normalizer: a.normalizer,
	})
	if err != nil {
		return err
	}

	purged, err := repositories.NewPostgresSessionRepository(a.db.Postgres).DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		logger.Log.WithError(err).Warn("failed to purge expired sessions")
	} else if purged > 0 {
		logger.Log.WithField("sessions", purged).Info("purged expired sessions")
	}

	metricsSrv := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: metrics.Handler()}
	go func() {
		logger.Log.WithField("port", cfg.MetricsPort).Info("metrics server listening")
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Error("metrics server stopped")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("port", cfg.Port).Info("API server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("API server shutdown failed")
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("metrics server shutdown failed")
	}
	return nil
}

func newIngestCmd() *cobra.Command {
	var (
		limit int
		query string
	)

	cmd := &cobra.Command{
		Use:   "ingest <platform|all>",
		Short: "Fetch one batch from a platform adapter and store new posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := config.Load()
			logger.Init(cfg.Env)

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.persistent() {
				return errors.New("MONGO_URI is not set: ingested posts would not be persisted")
			}

			platforms, err := ingestPlatforms(a.registry, args[0])
			if err != nil {
				return err
			}
			if query != "" && len(platforms) != 1 {
				return errors.New("--query needs a single platform")
			}

			for _, p := range platforms {
				var res ingest.Result
				if query != "" {
					res, err = a.ingester.Search(ctx, p, query, limit)
				} else {
					res, err = a.ingester.Run(ctx, p, limit)
				}
				if err != nil {
					return fmt.Errorf("ingest %s: %w", p, err)
				}
				logger.Log.WithFields(logrus.Fields{
					"platform": p,
					"added":    res.Added,
					"fetched":  res.Fetched,
				}).Info("ingest finished")
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d added, %d fetched\n", p, res.Added, res.Fetched)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum posts to fetch per platform")
	cmd.Flags().StringVar(&query, "query", "", "keyword search instead of the default feed (youtube only)")
	return cmd
}

// ingestPlatforms resolves the ingest argument. "all" means every
// registered adapter in display order.
func ingestPlatforms(reg *scrapers.Registry, arg string) ([]models.Platform, error) {
	if arg == "all" {
		return reg.Platforms(), nil
	}
	p, err := models.ParsePlatform(arg)
	if err != nil {
		return nil, err
	}
	return []models.Platform{p}, nil
}
