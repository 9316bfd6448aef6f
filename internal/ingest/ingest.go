// Package ingest moves adapter output into the feed store.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/pkg/logger"
	"github.com/anonto42/chyll/backend/pkg/metrics"
)

var (
	ErrUnknownPlatform   = errors.New("no adapter registered for platform")
	ErrSearchUnsupported = errors.New("platform adapter does not support search")
)

// Store is the part of the post repository ingestion needs.
type Store interface {
	CreatePost(ctx context.Context, post *models.Post) error
	ExistingSourceIDs(ctx context.Context, sourceIDs []string) (map[string]bool, error)
	CountPosts(ctx context.Context, filter repositories.PostFilter) (int64, error)
}

// Result is reported back to the scraper endpoints.
type Result struct {
	Added   int `json:"posts_added"`
	Fetched int `json:"total_fetched"`
}

type Ingester struct {
	store    Store
	registry *scrapers.Registry
}

func NewIngester(store Store, registry *scrapers.Registry) *Ingester {
	return &Ingester{store: store, registry: registry}
}

// Run fetches up to limit posts from the platform's adapter and ingests them.
func (i *Ingester) Run(ctx context.Context, p models.Platform, limit int) (Result, error) {
	if i.registry == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	posts, ok := i.registry.Fetch(ctx, p, limit)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	return i.Ingest(ctx, p, posts)
}

// Search runs a keyword search on the platform's adapter and ingests the
// results.
func (i *Ingester) Search(ctx context.Context, p models.Platform, query string, limit int) (Result, error) {
	if i.registry == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	a, ok := i.registry.Get(p)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, p)
	}
	searcher, ok := a.(scrapers.Searcher)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrSearchUnsupported, p)
	}
	posts, err := searcher.Search(ctx, query, limit)
	if err != nil {
		return Result{}, fmt.Errorf("search %s: %w", p, err)
	}
	return i.Ingest(ctx, p, posts)
}

// Ingest inserts the posts whose source id is not stored yet. Posts without
// a source id are skipped; only seeding inserts those. Re-ingesting the same
// batch adds nothing.
func (i *Ingester) Ingest(ctx context.Context, p models.Platform, posts []models.Post) (Result, error) {
	res := Result{Fetched: len(posts)}
	if len(posts) == 0 {
		return res, nil
	}

	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		if post.SourceID != "" {
			ids = append(ids, post.SourceID)
		}
	}
	existing, err := i.store.ExistingSourceIDs(ctx, ids)
	if err != nil {
		return res, fmt.Errorf("lookup existing source ids: %w", err)
	}
	if existing == nil {
		existing = make(map[string]bool)
	}

	for idx := range posts {
		post := posts[idx]
		if post.SourceID == "" || existing[post.SourceID] {
			continue
		}
		// marks within-batch repeats too
		existing[post.SourceID] = true

		if err := i.store.CreatePost(ctx, &post); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				continue
			}
			return res, fmt.Errorf("insert post %s: %w", post.SourceID, err)
		}
		res.Added++
	}

	metrics.RecordIngested(string(p), res.Added)
	logger.Log.WithFields(logrus.Fields{
		"platform": p,
		"fetched":  res.Fetched,
		"added":    res.Added,
	}).Info("ingestion finished")
	return res, nil
}

// SeedIfEmpty inserts posts only when the store holds nothing at all.
// It reports how many were inserted.
func (i *Ingester) SeedIfEmpty(ctx context.Context, posts []models.Post) (int, error) {
	count, err := i.store.CountPosts(ctx, repositories.PostFilter{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	added := 0
	for idx := range posts {
		post := posts[idx]
		if err := i.store.CreatePost(ctx, &post); err != nil {
			return added, fmt.Errorf("insert seed post: %w", err)
		}
		added++
	}
	logger.Log.WithField("posts", added).Info("seeded empty feed store")
	return added, nil
}
