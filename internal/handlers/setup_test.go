package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/feed"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/recommend"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/router"
	"github.com/anonto42/chyll/backend/internal/scrapers"
	"github.com/anonto42/chyll/backend/internal/testutil"
	"github.com/anonto42/chyll/backend/internal/validators"
)

type stubBroker map[string]auth.Identity

func (b stubBroker) Exchange(ctx context.Context, sessionID string) (*auth.Identity, error) {
	id, ok := b[sessionID]
	if !ok {
		return nil, auth.ErrInvalidSession
	}
	return &id, nil
}

type testApp struct {
	e     *echo.Echo
	posts *repositories.MemoryPostRepository
}

type appOption func(*router.Dependencies)

func withBroker(b auth.Broker) appOption {
	return func(d *router.Dependencies) { d.Broker = b }
}

func withEngine(e *recommend.Engine) appOption {
	return func(d *router.Dependencies) { d.Engine = e }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()

	n := feed.NewNormalizer()
	reg := scrapers.NewRegistry()
	fb, c, err := scrapers.NewSyntheticAdapter(models.PlatformFacebook, scrapers.ClientCredentials{}, n)
	require.NoError(t, err)
	reg.Register(fb, c)

	posts := repositories.NewMemoryPostRepository()
	deps := router.Dependencies{
		SQL:        testutil.OpenSQLite(t),
		Posts:      posts,
		Broker:     stubBroker{"sess-ada": {Email: "ada@example.com", Name: "Ada"}},
		Tokens:     auth.NewTokenIssuer("test-secret"),
		Engine:     recommend.NewEngine(nil),
		Registry:   reg,
		Normalizer: n,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	require.NoError(t, router.SetupRoutes(e, deps))
	return &testApp{e: e, posts: posts}
}

type request struct {
	method string
	path   string
	body   string
	token  string
}

func (a *testApp) do(t *testing.T, r request) *httptest.ResponseRecorder {
	t.Helper()
	if r.method == "" {
		r.method = http.MethodGet
	}
	req := httptest.NewRequest(r.method, r.path, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+r.token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// login opens a session for the stub identity and returns its token
func (a *testApp) login(t *testing.T) string {
	t.Helper()
	rec := a.do(t, request{method: http.MethodPost, path: "/api/auth/session", body: `{"session_id": "sess-ada"}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		SessionToken string `json:"session_token"`
	}
	decode(t, rec, &body)
	require.NotEmpty(t, body.SessionToken)
	return body.SessionToken
}

func (a *testApp) addPost(t *testing.T, p models.Post) models.Post {
	t.Helper()
	require.NoError(t, a.posts.CreatePost(context.Background(), &p))
	return p
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func samplePost(id string, platform models.Platform, category models.Category, likes int64) models.Post {
	return models.Post{
		ID:       id,
		Platform: platform,
		Category: category,
		Content:  "Content of " + id,
		User:     models.PostUser{Name: "Author " + id, Username: "@" + id},
		Media:    models.Media{Type: models.MediaImage, URL: "https://example.com/" + id + ".jpg"},
		Likes:    likes,
		SourceID: string(platform) + "_" + id,
	}
}
