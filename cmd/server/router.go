package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lilknig/ember-api/core"
	"github.com/lilknig/ember-api/modules/account"
	"github.com/lilknig/ember-api/modules/users"
	"github.com/lilknig/ember-api/pkg/authz"
	"github.com/lilknig/ember-api/pkg/clientip"
	"github.com/lilknig/ember-api/pkg/logger"
	"github.com/lilknig/ember-api/pkg/requestid"
)

type routerDeps struct {
	log       *slog.Logger
	policy    *authz.Policy
	verifier  authz.CredentialVerifier
	cors      authz.Config
	account   *account.Service
	users     *users.Service
	authLimit func(http.Handler) http.Handler
	healthz   http.HandlerFunc
}

// newRouter assembles the middleware chain and route table. CORS runs before
// the authorization policy so preflight requests never need credentials.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(requestLogger(d.log))
	r.Use(recoverer(d.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.cors.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Authorization", "Content-Type", "X-Requested-With", "Accept",
			"Origin", "Access-Control-Request-Method",
			"Access-Control-Request-Headers", "X-Request-ID",
		},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           d.cors.MaxAge,
	}))
	r.Use(authz.Middleware(d.policy, d.verifier, d.log))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	r.Get("/healthz", d.healthz)

	r.Route("/api/v1", func(r chi.Router) {
		// Set before the mounts so the module routers inherit the JSON
		// handlers instead of chi's plain-text defaults.
		r.NotFound(notFoundHandler)
		r.MethodNotAllowed(methodNotAllowedHandler)

		r.Group(func(r chi.Router) {
			r.Use(d.authLimit)
			r.Mount("/auth", d.account.Handle())
		})
		r.Mount("/users", d.users.Handle())
	})

	r.Get("/oauth2/authorization/{provider}", d.account.StartOAuth)
	r.Get("/login/oauth2/code/{provider}", d.account.OAuthCallback)

	// Always mounted; outside development the policy routes these paths to
	// the authenticated catch-all.
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/debug", middleware.Profiler())

	return r
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	core.Error(w, core.NotFound("Resource not found"))
}

func methodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	core.Error(w, core.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed"))
}

// requestLogger emits one structured record per request once the handler
// chain completes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("ip", clientip.FromContext(r.Context())),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// recoverer converts handler panics into opaque 500 responses.
// http.ErrAbortHandler keeps its net/http meaning and is re-raised.
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.ErrorContext(r.Context(), "panic while serving request",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if ww, ok := w.(middleware.WrapResponseWriter); !ok || ww.Status() == 0 {
					core.Error(w, core.Internal())
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
