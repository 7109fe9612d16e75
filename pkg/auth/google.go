package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// GoogleConfig holds the Google OAuth2/OIDC client settings.
type GoogleConfig struct {
	ClientID     string        `env:"GOOGLE_OAUTH_CLIENT_ID,required"`
	ClientSecret string        `env:"GOOGLE_OAUTH_CLIENT_SECRET,required"`
	RedirectURL  string        `env:"GOOGLE_OAUTH_REDIRECT_URL,required"`
	Scopes       []string      `env:"GOOGLE_OAUTH_SCOPES" envSeparator:"," envDefault:"openid,profile,email"`
	StateTTL     time.Duration `env:"GOOGLE_OAUTH_STATE_TTL" envDefault:"10m"`
}

type googleAdapter struct {
	conf     *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

var _ ProviderAdapter = (*googleAdapter)(nil)

// NewGoogleAdapter discovers Google's OIDC endpoints and returns an adapter
// that validates callback ID tokens against them.
func NewGoogleAdapter(ctx context.Context, cfg GoogleConfig) (ProviderAdapter, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover google oidc endpoints: %w", err)
	}

	return &googleAdapter{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     provider.Endpoint(),
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

func (a *googleAdapter) Provider() Provider { return ProviderGoogle }

func (a *googleAdapter) AuthCodeURL(state string) string {
	return a.conf.AuthCodeURL(state)
}

// ResolveProfile exchanges the authorization code and extracts the identity
// claims (sub, email, email_verified, name) from the verified ID token.
func (a *googleAdapter) ResolveProfile(ctx context.Context, code string) (ProviderProfile, error) {
	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return ProviderProfile{}, ErrInvalidCode
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok {
		return ProviderProfile{}, errors.New("token response carries no id_token")
	}

	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return ProviderProfile{}, fmt.Errorf("failed to verify id token: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return ProviderProfile{}, fmt.Errorf("failed to decode id token claims: %w", err)
	}

	return ProviderProfile{
		ExternalID:    idToken.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
	}, nil
}
