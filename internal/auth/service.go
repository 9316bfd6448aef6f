package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/pkg/logger"
)

// ErrUnauthenticated covers every reason a session token is not accepted.
var ErrUnauthenticated = errors.New("not authenticated")

// Service turns broker identities into local users and sessions.
type Service struct {
	broker   Broker
	tokens   *TokenIssuer
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	activity repositories.ActivityRepository
	now      func() time.Time
}

func NewService(broker Broker, tokens *TokenIssuer, users repositories.UserRepository, sessions repositories.SessionRepository, activity repositories.ActivityRepository) *Service {
	return &Service{
		broker:   broker,
		tokens:   tokens,
		users:    users,
		sessions: sessions,
		activity: activity,
		now:      time.Now,
	}
}

// Login validates sessionID with the broker, creates the user on first
// sight and opens a new session.
func (s *Service) Login(ctx context.Context, sessionID string) (*models.User, *models.Session, error) {
	if s.broker == nil {
		return nil, nil, fmt.Errorf("%w: no auth broker configured", ErrBrokerUnavailable)
	}
	id, err := s.broker.Exchange(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, id.Email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		user = &models.User{
			Email:             id.Email,
			Name:              id.Name,
			Picture:           id.Picture,
			FavoritePlatforms: []string{},
		}
		if err := s.users.CreateUser(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("create user: %w", err)
		}
		logger.Log.WithField("user_id", user.ID).Info("new user registered")
	case err != nil:
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	session := &models.Session{UserID: user.ID, Token: token, ExpiresAt: expiresAt}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	if s.activity != nil {
		if err := s.activity.LogActivity(ctx, user.ID, models.ActionLogin, ""); err != nil {
			logger.Log.WithError(err).Warn("failed to log login activity")
		}
	}
	return user, session, nil
}

// Authenticate resolves a session token to its user. Expired sessions are
// deleted when they are seen.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	if _, err := s.tokens.Parse(token); err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	if !session.ExpiresAt.After(s.now()) {
		if err := s.sessions.DeleteSessionByToken(ctx, token); err != nil {
			logger.Log.WithError(err).Warn("failed to delete expired session")
		}
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Logout removes the session; unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSessionByToken(ctx, token)
}
