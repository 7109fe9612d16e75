package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lilknig/ember-api/core"
	"github.com/lilknig/ember-api/pkg/clientip"
	"github.com/lilknig/ember-api/pkg/logger"
)

// Middleware throttles requests per client address. Over-limit requests get
// a 429 with Retry-After; when the limiter itself fails the request is let
// through and the failure is logged.
func Middleware(limiter Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientip.FromContext(r.Context())
			if key == "" {
				key = clientip.Resolve(r)
			}
			if key == "" {
				key = "unresolved"
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.ErrorContext(r.Context(), "rate limit check failed", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				retryAfter := (res.RetryAfter() + time.Second - 1) / time.Second
				w.Header().Set("Retry-After", strconv.FormatInt(int64(retryAfter), 10))
				core.Error(w, core.NewHTTPError(http.StatusTooManyRequests, "Too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
