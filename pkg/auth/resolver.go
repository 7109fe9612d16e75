package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lilknig/ember-api/pkg/logger"
	"github.com/lilknig/ember-api/pkg/sanitizer"
)

// ProviderProfile is the normalized identity assertion produced by a
// provider adapter after token verification.
type ProviderProfile struct {
	ExternalID    string
	Email         string
	EmailVerified bool
	Name          string
}

// Resolver reconciles federated identity assertions with canonical user
// records, enforcing one email, one provider.
type Resolver struct {
	store  UserStore
	logger *slog.Logger
}

type ResolverOption func(*Resolver)

// WithResolverLogger sets a custom logger for the resolver.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates an account resolver over the given store.
func NewResolver(store UserStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the user for a verified provider assertion, creating the
// record on first login and refreshing the display name on repeat logins.
// An email owned by a different provider yields ProviderConflictError and
// leaves the existing record untouched.
func (r *Resolver) Resolve(ctx context.Context, provider Provider, profile ProviderProfile) (*User, error) {
	if strings.TrimSpace(profile.Email) == "" {
		return nil, ErrProviderEmailMissing
	}
	email := sanitizer.NormalizeEmail(profile.Email)
	profile.Name = sanitizer.SingleLine(profile.Name)

	user, err := r.store.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if errors.Is(err, ErrUserNotFound) {
		created, createErr := r.createFederated(ctx, provider, profile, email)
		switch {
		case createErr == nil:
			return created, nil
		case errors.Is(createErr, ErrEmailAlreadyExists):
			// Lost a concurrent first-login race; continue with the record
			// the winner inserted.
			user, err = r.store.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to reload user after create race: %w", err)
			}
		default:
			return nil, createErr
		}
	}

	if user.Provider != provider {
		return nil, ProviderConflictError{Provider: user.Provider}
	}

	user.Name = profile.Name
	user.UpdatedAt = time.Now()
	if err := r.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to refresh user: %w", err)
	}

	return user, nil
}

func (r *Resolver) createFederated(ctx context.Context, provider Provider, profile ProviderProfile, email string) (*User, error) {
	now := time.Now()
	user := &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               profile.Name,
		Provider:           provider,
		ProviderExternalID: profile.ExternalID,
		Role:               RoleUser,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := r.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "federated account created",
		logger.UserID(user.ID.String()),
		logger.Email(sanitizer.MaskEmail(user.Email)),
		logger.Provider(provider),
	)

	return user, nil
}
