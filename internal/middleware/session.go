package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

const (
	// SessionCookie carries the session token set by POST /auth/session.
	SessionCookie = "session_token"
	userKey       = "user"
	tokenKey      = "session_token"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// SessionToken reads the token from the session cookie, falling back to a
// "Bearer <token>" Authorization header.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireSession rejects the request with 401 unless it carries a live
// session. The cause is never revealed.
func RequireSession(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c)
			user, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthenticated) {
					logger.Log.WithError(err).Error("session lookup failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			c.Set(userKey, user)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// OptionalSession attaches the user when a live session is present and
// lets anonymous requests through.
func OptionalSession(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := SessionToken(c); token != "" {
				if user, err := a.Authenticate(c.Request().Context(), token); err == nil {
					c.Set(userKey, user)
					c.Set(tokenKey, token)
				}
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by the session middleware, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userKey).(*models.User)
	return user
}
