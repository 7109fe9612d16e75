package account

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lilknig/ember-api/core"
	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/logger"
	"github.com/lilknig/ember-api/pkg/validator"
)

// clientError translates domain failures into their client-facing HTTP form.
// Validation errors pass through untouched so the envelope renderer can
// aggregate the field details; unknown causes pass through and collapse to
// the opaque 500.
func clientError(err error) error {
	var verrs validator.ValidationErrors
	var conflict auth.ProviderConflictError

	switch {
	case errors.As(err, &verrs):
		return err
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return core.BadRequest("Email already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return core.Unauthorized("Invalid email or password")
	case errors.As(err, &conflict):
		return core.BadRequest(fmt.Sprintf("Email already registered with %s provider", conflict.Provider))
	case errors.Is(err, auth.ErrProviderEmailMissing):
		return core.BadRequest("Email not found from OAuth2 provider")
	default:
		return err
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	translated := clientError(err)

	var httpErr core.HTTPError
	var verrs validator.ValidationErrors
	if !errors.As(translated, &httpErr) && !errors.As(translated, &verrs) {
		s.logger.ErrorContext(r.Context(), "account request failed", logger.Error(err))
	}

	core.Error(w, translated)
}

// failureMessage is the sanitized text carried in the failure redirect's
// error parameter. Unknown causes collapse to a generic message so internal
// detail never reaches the front-end.
func failureMessage(err error) string {
	var unsupported auth.UnsupportedProviderError
	var conflict auth.ProviderConflictError

	switch {
	case errors.As(err, &unsupported):
		return fmt.Sprintf("Login with %s is not supported", unsupported.Name)
	case errors.As(err, &conflict):
		return fmt.Sprintf("Email already registered with %s provider", conflict.Provider)
	case errors.Is(err, auth.ErrProviderEmailMissing):
		return "Email not found from OAuth2 provider"
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return "Email already registered"
	case errors.Is(err, auth.ErrInvalidState):
		return "Invalid or expired authentication state"
	case errors.Is(err, auth.ErrInvalidCode):
		return "Invalid authorization code"
	default:
		return "Authentication failed"
	}
}
