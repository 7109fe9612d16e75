package auth

import (
	"errors"
	"fmt"
)

// General authentication errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// OAuth flow errors.
var (
	ErrInvalidState         = errors.New("invalid or expired oauth state")
	ErrStateNotFound        = errors.New("oauth state not found")
	ErrInvalidCode          = errors.New("invalid authorization code")
	ErrProviderEmailMissing = errors.New("email not found from oauth2 provider")
)

// ProviderConflictError reports a federated login against an email already
// owned by a different provider. Provider is the EXISTING record's provider,
// not the one attempting the login.
type ProviderConflictError struct {
	Provider Provider
}

func (e ProviderConflictError) Error() string {
	return fmt.Sprintf("email already registered with %s provider", e.Provider)
}

// UnsupportedProviderError reports a login attempt through a provider this
// service has no adapter for.
type UnsupportedProviderError struct {
	Name string
}

func (e UnsupportedProviderError) Error() string {
	return fmt.Sprintf("login with %s is not supported", e.Name)
}
