package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anonto42/chyll/backend/internal/models"
	"github.com/anonto42/chyll/backend/internal/repositories"
	"github.com/anonto42/chyll/backend/internal/testutil"
)

type stubBroker map[string]Identity

func (b stubBroker) Exchange(ctx context.Context, sessionID string) (*Identity, error) {
	id, ok := b[sessionID]
	if !ok {
		return nil, ErrInvalidSession
	}
	return &id, nil
}

type serviceFixture struct {
	svc      *Service
	users    *repositories.PostgresUserRepository
	sessions *repositories.PostgresSessionRepository
	activity *repositories.PostgresActivityRepository
}

func newServiceFixture(t *testing.T) serviceFixture {
	db := testutil.OpenSQLite(t)
	f := serviceFixture{
		users:    repositories.NewPostgresUserRepository(db),
		sessions: repositories.NewPostgresSessionRepository(db),
		activity: repositories.NewPostgresActivityRepository(db),
	}
	broker := stubBroker{
		"sess-ada": {Email: "ada@example.com", Name: "Ada", Picture: "https://example.com/ada.png"},
	}
	f.svc = NewService(broker, NewTokenIssuer("test-secret"), f.users, f.sessions, f.activity)
	return f
}

func TestLoginCreatesUserOnce(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	user, session, err := f.svc.Login(ctx, "sess-ada")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Ada", user.Name)
	require.Equal(t, user.ID, session.UserID)
	require.NotEmpty(t, session.Token)

	again, second, err := f.svc.Login(ctx, "sess-ada")
	require.NoError(t, err)
	require.Equal(t, user.ID, again.ID)
	require.NotEqual(t, session.Token, second.Token)

	activities, err := f.activity.GetActivities(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, models.ActionLogin, activities[0].Action)
}

func TestLoginRejectsUnknownSession(t *testing.T) {
	f := newServiceFixture(t)

	_, _, err := f.svc.Login(context.Background(), "nope")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoginWithoutBroker(t *testing.T) {
	f := newServiceFixture(t)
	svc := NewService(nil, NewTokenIssuer("x"), f.users, f.sessions, nil)

	_, _, err := svc.Login(context.Background(), "sess-ada")
	require.ErrorIs(t, err, ErrBrokerUnavailable)
}

func TestAuthenticate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	user, session, err := f.svc.Login(ctx, "sess-ada")
	require.NoError(t, err)

	got, err := f.svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = f.svc.Authenticate(ctx, "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)

	// well signed but never stored
	orphan, _, err := f.svc.tokens.Issue(user.ID)
	require.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, orphan)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateDeletesExpiredSession(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, session, err := f.svc.Login(ctx, "sess-ada")
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Now().Add(SessionTTL + time.Hour) }
	_, err = f.svc.Authenticate(ctx, session.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.sessions.GetSessionByToken(ctx, session.Token)
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLogout(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, session, err := f.svc.Login(ctx, "sess-ada")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, session.Token))
	_, err = f.svc.Authenticate(ctx, session.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	require.NoError(t, f.svc.Logout(ctx, ""))
	require.NoError(t, f.svc.Logout(ctx, "unknown"))
}
