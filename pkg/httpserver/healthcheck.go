package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lilknig/ember-api/pkg/logger"
)

// HealthCheckHandler returns a handler usable for liveness and readiness
// probes.
//
//   - Liveness: with no dependency checks the handler returns 200 OK with
//     body "ALIVE".
//   - Readiness: each supplied check runs against the request context; if all
//     succeed the handler returns 200 OK with body "READY", otherwise
//     503 Service Unavailable with body "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
