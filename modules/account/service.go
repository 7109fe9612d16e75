package account

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/lilknig/ember-api/pkg/auth"
)

// Authenticator defines the local email/password operations the module exposes.
type Authenticator interface {
	Register(ctx context.Context, email, password, name string) (*auth.User, error)
	Login(ctx context.Context, email, password string) (*auth.User, error)
}

// OAuthFlow defines the federated login operations the module exposes.
type OAuthFlow interface {
	AuthURL(ctx context.Context, providerName string) (string, error)
	Authenticate(ctx context.Context, providerName, state, code string) (*auth.User, error)
}

// Service is the HTTP surface for account access: local register/login plus
// the OAuth2 start/callback pair with its completion redirects.
type Service struct {
	local       Authenticator
	oauth       OAuthFlow
	redirectURI *url.URL
	logger      *slog.Logger
}

type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService wires the account handlers. The configured redirect URI must be
// an absolute URL; completion redirects append query parameters to it.
func NewService(cfg Config, local Authenticator, oauth OAuthFlow, opts ...Option) (*Service, error) {
	target, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("parse oauth2 redirect uri: %w", err)
	}
	if !target.IsAbs() {
		return nil, fmt.Errorf("oauth2 redirect uri %q is not absolute", cfg.RedirectURI)
	}

	s := &Service{
		local:       local,
		oauth:       oauth,
		redirectURI: target,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Handle returns the JSON auth endpoints, meant to be mounted under
// /api/v1/auth. The OAuth2 redirect endpoints live at the server root and
// are registered separately via StartOAuth and OAuthCallback.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", s.register)
	r.Post("/login", s.login)

	return r
}
