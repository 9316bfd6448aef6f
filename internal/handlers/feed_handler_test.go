package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
)

func TestSearch(t *testing.T) {
	app := newTestApp(t)
	p := samplePost("a", models.PlatformReddit, models.CategoryViral, 10)
	p.Content = "Golang tips for busy people"
	app.addPost(t, p)
	p = samplePost("b", models.PlatformTwitter, models.CategoryViral, 500)
	p.Content = "Why I love GOLANG"
	app.addPost(t, p)
	p = samplePost("c", models.PlatformTwitter, models.CategoryViral, 999)
	p.Content = "Cats"
	app.addPost(t, p)

	rec := app.do(t, request{path: "/api/search?q=golang"})
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []models.Post
	decode(t, rec, &posts)
	require.Len(t, posts, 2)
	require.Equal(t, "b", posts[0].ID)

	rec = app.do(t, request{path: "/api/search?q=golang&platform=reddit"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &posts)
	require.Len(t, posts, 1)
	require.Equal(t, "a", posts[0].ID)

	// author names are searched too
	rec = app.do(t, request{path: "/api/search?q=author%20c"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &posts)
	require.Len(t, posts, 1)
	require.Equal(t, "c", posts[0].ID)

	rec = app.do(t, request{path: "/api/search?q="})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &posts)
	require.Len(t, posts, 3)
}

func TestSearchRequiresQuery(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, request{path: "/api/search"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, request{path: "/api/search?q=x&sort_by=random"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlatforms(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, request{path: "/api/platforms"})
	require.Equal(t, http.StatusOK, rec.Code)

	var platforms []feed.PlatformInfo
	decode(t, rec, &platforms)
	require.Len(t, platforms, len(models.Platforms))
}

func TestHealthAndWelcome(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, request{path: "/health"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, request{path: "/api/"})
	require.Equal(t, http.StatusOK, rec.Code)
}
