// Package scrapers holds one adapter per source platform. Adapters never
// fail outward: transport or parse problems are logged and produce fewer
// (possibly zero) posts.
package scrapers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
	"github.com/anonto42/chyll/backend/pkg/metrics"
)

// Adapter fetches normalized posts from a single platform.
type Adapter interface {
	Platform() models.Platform
	Fetch(ctx context.Context, maxResults int) []models.Post
}

// Searcher is implemented by adapters that can look up posts by keyword.
type Searcher interface {
	Search(ctx context.Context, q string, maxResults int) ([]models.Post, error)
}

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Capability says whether an adapter was built with the credentials it
// wants. Unconfigured synthetic adapters still serve their catalog;
// unconfigured live adapters return nothing.
type Capability struct {
	Configured bool   `json:"configured"`
	Mode       string `json:"mode"`
	Reason     string `json:"reason,omitempty"`
}

func Configured(mode string) Capability {
	return Capability{Configured: true, Mode: mode}
}

func Unconfigured(mode, reason string) Capability {
	return Capability{Mode: mode, Reason: reason}
}

// Registry maps platforms to their adapter and the capability it was built with.
type Registry struct {
	adapters     map[models.Platform]Adapter
	capabilities map[models.Platform]Capability
}

func NewRegistry() *Registry {
	return &Registry{
		adapters:     make(map[models.Platform]Adapter),
		capabilities: make(map[models.Platform]Capability),
	}
}

func (r *Registry) Register(a Adapter, c Capability) {
	r.adapters[a.Platform()] = a
	r.capabilities[a.Platform()] = c
}

func (r *Registry) Get(p models.Platform) (Adapter, bool) {
	a, ok := r.adapters[p]
	return a, ok
}

// Capabilities returns a copy keyed by platform.
func (r *Registry) Capabilities() map[models.Platform]Capability {
	out := make(map[models.Platform]Capability, len(r.capabilities))
	for p, c := range r.capabilities {
		out[p] = c
	}
	return out
}

// Platforms lists registered platforms in display order.
func (r *Registry) Platforms() []models.Platform {
	out := make([]models.Platform, 0, len(r.adapters))
	for _, p := range models.Platforms {
		if _, ok := r.adapters[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Fetch runs the platform's adapter and records how long it took.
func (r *Registry) Fetch(ctx context.Context, p models.Platform, maxResults int) ([]models.Post, bool) {
	a, ok := r.adapters[p]
	if !ok {
		return nil, false
	}
	start := time.Now()
	posts := a.Fetch(ctx, maxResults)
	metrics.ObserveFetch(string(p), time.Since(start))

	logger.Log.WithFields(logrus.Fields{
		"platform": p,
		"fetched":  len(posts),
		"elapsed":  time.Since(start).String(),
	}).Info("adapter fetch finished")
	return posts, true
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
