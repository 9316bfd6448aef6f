// Package auth exchanges identity-provider session ids for local sessions.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

var (
	// ErrInvalidSession means the broker rejected the session id.
	ErrInvalidSession = errors.New("invalid session id")
	// ErrBrokerUnavailable means the broker could not be reached or answered unexpectedly.
	ErrBrokerUnavailable = errors.New("auth broker unavailable")
)

// Identity is what a broker knows about the person behind a session id.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Broker validates an opaque session id with an external identity provider.
type Broker interface {
	Exchange(ctx context.Context, sessionID string) (*Identity, error)
}

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPBroker asks a session-data endpoint about the id passed in the
// X-Session-ID header.
type HTTPBroker struct {
	url        string
	httpClient HTTPClient
}

type HTTPBrokerOption func(*HTTPBroker)

func WithBrokerHTTPClient(c HTTPClient) HTTPBrokerOption {
	return func(b *HTTPBroker) {
		b.httpClient = c
	}
}

func NewHTTPBroker(url string, opts ...HTTPBrokerOption) *HTTPBroker {
	b := &HTTPBroker{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *HTTPBroker) Exchange(ctx context.Context, sessionID string) (*Identity, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, ErrInvalidSession
	default:
		return nil, fmt.Errorf("%w: status %d", ErrBrokerUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrokerUnavailable, err)
	}
	var id Identity
	if err := json.Unmarshal(body, &id); err != nil {
		return nil, fmt.Errorf("%w: malformed session data: %v", ErrBrokerUnavailable, err)
	}
	if id.Email == "" {
		return nil, ErrInvalidSession
	}
	return &id, nil
}

// TokenVerifier is the part of the Firebase auth client the broker uses.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseBroker treats the session id as a Firebase ID token.
type FirebaseBroker struct {
	verifier TokenVerifier
}

func NewFirebaseBroker(v TokenVerifier) *FirebaseBroker {
	return &FirebaseBroker{verifier: v}
}

func (b *FirebaseBroker) Exchange(ctx context.Context, idToken string) (*Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrInvalidSession
	}
	token, err := b.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidSession
	}

	id := &Identity{
		Email:   claimString(token.Claims, "email"),
		Name:    claimString(token.Claims, "name"),
		Picture: claimString(token.Claims, "picture"),
	}
	if id.Email == "" {
		return nil, ErrInvalidSession
	}
	if id.Name == "" {
		id.Name = strings.Split(id.Email, "@")[0]
	}
	return id, nil
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
