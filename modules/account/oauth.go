package account

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/logger"
)

// StartOAuth begins the authorization-code flow: issue a one-time state and
// send the client to the provider's consent page. Failures follow the same
// front-end redirect as callback failures.
func (s *Service) StartOAuth(w http.ResponseWriter, r *http.Request) {
	ww := wrapWriter(w, r)
	providerName := chi.URLParam(r, "provider")

	consentURL, err := s.oauth.AuthURL(r.Context(), providerName)
	if err != nil {
		s.completeFailure(ww, r, providerName, err)
		return
	}

	http.Redirect(ww, r, consentURL, http.StatusFound)
}

// OAuthCallback finishes the flow after the provider redirects back:
// consume the state, exchange the code, resolve the account, redirect.
func (s *Service) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ww := wrapWriter(w, r)
	providerName := chi.URLParam(r, "provider")
	query := r.URL.Query()

	if denied := query.Get("error"); denied != "" {
		s.completeFailure(ww, r, providerName, fmt.Errorf("provider returned %q", denied))
		return
	}

	user, err := s.oauth.Authenticate(r.Context(), providerName, query.Get("state"), query.Get("code"))
	if err != nil {
		s.completeFailure(ww, r, providerName, err)
		return
	}

	s.completeSuccess(ww, r, user)
}

// completeSuccess sends the resolved user to the front-end callback with the
// account fields as query parameters. A response that is already written is
// left alone.
func (s *Service) completeSuccess(w middleware.WrapResponseWriter, r *http.Request, user *auth.User) {
	if w.Status() != 0 {
		s.logger.DebugContext(r.Context(), "response already written, skipping success redirect")
		return
	}

	s.logger.InfoContext(r.Context(), "federated login completed",
		logger.UserID(user.ID), logger.Provider(user.Provider))

	http.Redirect(w, r, s.frontendURL(url.Values{
		"userId":   {user.ID.String()},
		"email":    {user.Email},
		"name":     {user.Name},
		"provider": {user.Provider.String()},
	}), http.StatusFound)
}

// completeFailure sends the sanitized failure message to the front-end
// callback as a single error parameter. Same committed-response rule as the
// success path.
func (s *Service) completeFailure(w middleware.WrapResponseWriter, r *http.Request, providerName string, err error) {
	s.logger.WarnContext(r.Context(), "oauth2 login failed",
		logger.Provider(providerName), logger.Error(err))

	if w.Status() != 0 {
		s.logger.DebugContext(r.Context(), "response already written, skipping failure redirect")
		return
	}

	http.Redirect(w, r, s.frontendURL(url.Values{
		"error": {failureMessage(err)},
	}), http.StatusFound)
}

// frontendURL builds the completion redirect target, preserving query
// parameters already present on the configured URI.
func (s *Service) frontendURL(params url.Values) string {
	target := *s.redirectURI

	q := target.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	target.RawQuery = q.Encode()

	return target.String()
}

// wrapWriter reuses the wrapper installed by upstream middleware when there
// is one, so writes made before the completion handlers stay visible to the
// committed-response check.
func wrapWriter(w http.ResponseWriter, r *http.Request) middleware.WrapResponseWriter {
	if ww, ok := w.(middleware.WrapResponseWriter); ok {
		return ww
	}
	return middleware.NewWrapResponseWriter(w, r.ProtoMajor)
}
