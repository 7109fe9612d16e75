package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lilknig/ember-api/pkg/validator"
)

// PasswordConfig tunes credential hashing and the acceptance policy.
type PasswordConfig struct {
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"10"`
	MinLength  int `env:"AUTH_PASSWORD_MIN_LENGTH" envDefault:"6"`
}

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	// Hash produces a salted hash; equal inputs yield distinct outputs.
	Hash(ctx context.Context, raw string) (string, error)
	// Verify compares raw against encoded. Mismatch and malformed hashes
	// both surface ErrInvalidCredentials.
	Verify(ctx context.Context, raw, encoded string) error
	// IsAcceptable applies the password acceptance policy.
	IsAcceptable(raw string) error
}

type bcryptHasher struct {
	cost   int
	policy validator.PasswordPolicy
}

var _ PasswordHasher = (*bcryptHasher)(nil)

type PasswordHasherOption func(*bcryptHasher)

// WithBcryptCost overrides the bcrypt cost factor.
func WithBcryptCost(cost int) PasswordHasherOption {
	return func(h *bcryptHasher) { h.cost = cost }
}

// WithPasswordPolicy overrides the policy applied by IsAcceptable.
func WithPasswordPolicy(policy validator.PasswordPolicy) PasswordHasherOption {
	return func(h *bcryptHasher) { h.policy = policy }
}

// NewPasswordHasher returns a bcrypt-backed PasswordHasher.
func NewPasswordHasher(opts ...PasswordHasherOption) PasswordHasher {
	h := &bcryptHasher{
		cost:   bcrypt.DefaultCost,
		policy: validator.DefaultPasswordPolicy(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewPasswordHasherFromConfig builds a hasher from environment-driven config.
// Zero config values keep the package defaults.
func NewPasswordHasherFromConfig(cfg PasswordConfig, opts ...PasswordHasherOption) PasswordHasher {
	base := make([]PasswordHasherOption, 0, 2+len(opts))
	if cfg.BcryptCost > 0 {
		base = append(base, WithBcryptCost(cfg.BcryptCost))
	}
	if cfg.MinLength > 0 {
		policy := validator.DefaultPasswordPolicy()
		policy.MinLength = cfg.MinLength
		base = append(base, WithPasswordPolicy(policy))
	}
	base = append(base, opts...)
	return NewPasswordHasher(base...)
}

func (h *bcryptHasher) Hash(_ context.Context, raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(_ context.Context, raw, encoded string) error {
	if bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (h *bcryptHasher) IsAcceptable(raw string) error {
	return validator.Apply(validator.StrongPassword("password", raw, h.policy))
}
