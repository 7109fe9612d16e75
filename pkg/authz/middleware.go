package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lilknig/ember-api/core"
	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/logger"
)

// CredentialVerifier authenticates HTTP Basic credentials. Routing it
// through the login path keeps a single verification authority, so gate
// checks and the login endpoint cannot drift apart.
type CredentialVerifier interface {
	Login(ctx context.Context, email, password string) (*auth.User, error)
}

// Middleware enforces the policy on every request. Public paths pass through
// untouched. Everything else requires HTTP Basic credentials verified per
// request; role rules additionally require the matching role. The verified
// principal is stored in the request context for downstream handlers.
func Middleware(policy *Policy, verifier CredentialVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			access := policy.Evaluate(r.URL.Path)
			if access.Level == LevelPublic || access.Level == LevelDevOnly {
				next.ServeHTTP(w, r)
				return
			}

			email, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			user, err := verifier.Login(r.Context(), email, password)
			if err != nil {
				log.DebugContext(r.Context(), "request authentication failed",
					logger.Component("authz"),
					slog.String("path", r.URL.Path),
				)
				unauthorized(w)
				return
			}

			if access.Level == LevelRole && user.Role != access.Role {
				log.WarnContext(r.Context(), "role requirement not met",
					logger.Component("authz"),
					logger.UserID(user.ID.String()),
					logger.Role(access.Role),
					slog.String("path", r.URL.Path),
				)
				core.Error(w, core.Forbidden("Insufficient permissions"))
				return
			}

			ctx := auth.ContextWithPrincipal(r.Context(), user.AsPrincipal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	core.Error(w, core.Unauthorized("Authentication required"))
}
