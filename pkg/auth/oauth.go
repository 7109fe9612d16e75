package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lilknig/ember-api/pkg/logger"
)

// ProviderAdapter is the provider-specific half of the OAuth2 flow: building
// the consent URL and turning a callback code into a verified profile.
type ProviderAdapter interface {
	Provider() Provider
	AuthCodeURL(state string) string
	ResolveProfile(ctx context.Context, code string) (ProviderProfile, error)
}

// StateStore persists one-time CSRF state tokens. Consume must atomically
// remove the token so a given state value authorizes at most one callback.
type StateStore interface {
	Store(ctx context.Context, state string, ttl time.Duration) error
	// Consume returns ErrStateNotFound when the token is absent, expired or
	// already used.
	Consume(ctx context.Context, state string) error
}

// OAuthService drives the authorization-code flow across registered provider
// adapters and reconciles callbacks through the account resolver.
type OAuthService struct {
	adapters map[string]ProviderAdapter
	states   StateStore
	resolver *Resolver
	stateTTL time.Duration
	logger   *slog.Logger
}

type OAuthOption func(*OAuthService)

// WithOAuthLogger sets a custom logger for the OAuth service.
func WithOAuthLogger(l *slog.Logger) OAuthOption {
	return func(s *OAuthService) { s.logger = l }
}

// WithStateTTL overrides the lifetime of generated state tokens.
func WithStateTTL(ttl time.Duration) OAuthOption {
	return func(s *OAuthService) { s.stateTTL = ttl }
}

// WithAdapter registers a provider adapter under its lowercase provider name.
func WithAdapter(a ProviderAdapter) OAuthOption {
	return func(s *OAuthService) {
		s.adapters[strings.ToLower(a.Provider().String())] = a
	}
}

// NewOAuthService creates an OAuth service. Adapters are registered through
// WithAdapter; requests naming any other provider are rejected.
func NewOAuthService(states StateStore, resolver *Resolver, opts ...OAuthOption) *OAuthService {
	s := &OAuthService{
		adapters: make(map[string]ProviderAdapter),
		states:   states,
		resolver: resolver,
		stateTTL: 10 * time.Minute,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthURL generates the consent URL for the named provider, backed by a
// fresh one-time state token.
func (s *OAuthService) AuthURL(ctx context.Context, providerName string) (string, error) {
	a, err := s.adapter(providerName)
	if err != nil {
		return "", err
	}

	state, err := generateState()
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}

	if err := s.states.Store(ctx, state, s.stateTTL); err != nil {
		return "", fmt.Errorf("failed to store state: %w", err)
	}

	return a.AuthCodeURL(state), nil
}

// Authenticate completes the callback leg: consumes the state token,
// resolves the provider profile and reconciles it with the user store.
func (s *OAuthService) Authenticate(ctx context.Context, providerName, state, code string) (*User, error) {
	a, err := s.adapter(providerName)
	if err != nil {
		return nil, err
	}

	if err := s.states.Consume(ctx, state); err != nil {
		if errors.Is(err, ErrStateNotFound) {
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("failed to validate state: %w", err)
	}

	profile, err := a.ResolveProfile(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider profile: %w", err)
	}

	user, err := s.resolver.Resolve(ctx, a.Provider(), profile)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "federated login",
		logger.UserID(user.ID.String()),
		logger.Provider(user.Provider),
	)

	return user, nil
}

func (s *OAuthService) adapter(name string) (ProviderAdapter, error) {
	a, ok := s.adapters[strings.ToLower(name)]
	if !ok {
		return nil, UnsupportedProviderError{Name: name}
	}
	return a, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
