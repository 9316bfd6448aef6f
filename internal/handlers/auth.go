package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/anonto42/chyll/backend/internal/auth"
	"github.com/anonto42/chyll/backend/internal/middleware"
	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService        *auth.Service
	favoriteRepository repositories.FavoriteRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(svc *auth.Service, favoriteRepo repositories.FavoriteRepository) *AuthHandler {
	return &AuthHandler{
		authService:        svc,
		favoriteRepository: favoriteRepo,
	}
}

// RegisterAuthRoutes registers the public auth routes. /auth/me needs the
// session middleware and is registered separately.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/session", h.CreateSession)
	g.POST("/logout", h.Logout)
}

// CreateSession exchanges a broker session id for a local session and sets
// the session cookie
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, session, err := h.authService.Login(c.Request().Context(), req.SessionID)
	switch {
	case errors.Is(err, auth.ErrInvalidSession):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session")
	case errors.Is(err, auth.ErrBrokerUnavailable):
		logger.Log.WithError(err).Error("auth broker unavailable")
		return echo.NewHTTPError(http.StatusBadGateway, "Authentication service unavailable")
	case err != nil:
		logger.Log.WithError(err).Error("login failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	if err := h.loadFavorites(c, user); err != nil {
		return err
	}
	c.SetCookie(sessionCookie(session.Token, session.ExpiresAt))
	return c.JSON(http.StatusOK, echo.Map{
		"user":          user,
		"session_token": session.Token,
		"expires_at":    session.ExpiresAt,
	})
}

// Me returns the signed-in user
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	if err := h.loadFavorites(c, user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout always succeeds and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			logger.Log.WithError(err).Warn("failed to delete session on logout")
		}
	}
	c.SetCookie(sessionCookie("", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out"})
}

func (h *AuthHandler) loadFavorites(c echo.Context, user *models.User) error {
	ids, err := h.favoriteRepository.GetFavoritePostIDs(c.Request().Context(), user.ID)
	if err != nil {
		return storeError(err, "User not found")
	}
	user.FavoritePosts = ids
	return nil
}

// sessionCookie builds the cross-site session cookie. An empty token
// expires it.
func sessionCookie(token string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	return cookie
}
