package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/models"
)

type stubAuthenticator map[string]*models.User

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "explode" {
		return nil, errors.New("database gone")
	}
	if u, ok := s[token]; ok {
		return u, nil
	}
	return nil, auth.ErrUnauthenticated
}

func newEcho(mw echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, user.ID)
	}, mw)
	return e
}

func TestRequireSession(t *testing.T) {
	e := newEcho(RequireSession(stubAuthenticator{"good": {ID: "u1"}}))

	tests := []struct {
		name     string
		prepare  func(*http.Request)
		wantCode int
		wantBody string
	}{
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"}) }, http.StatusOK, "u1"},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusOK, "u1"},
		{"lowercase bearer", func(r *http.Request) { r.Header.Set("Authorization", "bearer good") }, http.StatusOK, "u1"},
		{"missing", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"invalid", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }, http.StatusUnauthorized, ""},
		{"basic auth", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }, http.StatusUnauthorized, ""},
		{"store failure", func(r *http.Request) { r.Header.Set("Authorization", "Bearer explode") }, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				require.Contains(t, rec.Body.String(), "Not authenticated")
			}
		})
	}
}

func TestOptionalSession(t *testing.T) {
	e := newEcho(OptionalSession(stubAuthenticator{"good": {ID: "u1"}}))

	for token, want := range map[string]string{"": "anonymous", "bad": "anonymous", "good": "u1"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, want, rec.Body.String())
	}
}
