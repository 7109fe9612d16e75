package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lilknig/ember-api/pkg/logger"
	"github.com/lilknig/ember-api/pkg/sanitizer"
	"github.com/lilknig/ember-api/pkg/validator"
)

// UserStore defines the persistence operations the authentication flows
// depend on. Lookups return ErrUserNotFound for missing records; CreateUser
// returns ErrEmailAlreadyExists when the insert violates the unique email
// index.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]User, error)
	// UpdateUser persists the mutable fields of an existing record
	// (name, updated_at). Identity fields are never rewritten.
	UpdateUser(ctx context.Context, user *User) error
}

// Service implements local email/password registration and login.
type Service struct {
	store  UserStore
	hasher PasswordHasher
	logger *slog.Logger
}

type ServiceOption func(*Service)

// WithServiceLogger sets a custom logger for the service.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates an authentication service over the given store and
// credential hasher.
func NewService(store UserStore, hasher PasswordHasher, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		hasher: hasher,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a local account. The duplicate-email check runs before
// the password policy, so a taken email conflicts regardless of the rest of
// the input. The unique index remains the final authority under concurrent
// registration: a duplicate-key insert surfaces as ErrEmailAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)
	name = sanitizer.SingleLine(name)
	if err := validator.Apply(validator.ValidEmail("email", email)); err != nil {
		return nil, err
	}

	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	if err := s.hasher.IsAcceptable(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Provider:     ProviderLocal,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID.String()),
		logger.Email(sanitizer.MaskEmail(user.Email)),
	)

	return user, nil
}

// Login verifies email/password credentials. Unknown email, wrong password
// and federated accounts without a local password all fail with the same
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Verify(ctx, password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
