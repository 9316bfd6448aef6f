package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, expiresAt, err := issuer.Issue("user-1")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(SessionTTL), expiresAt, time.Minute)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestTokenRejectsForeignSignature(t *testing.T) {
	token, _, err := NewTokenIssuer("secret-a").Issue("user-1")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issuer.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, _, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
