// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and health-check handlers.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then drains in-flight requests within the configured shutdown
// deadline. Construction goes through New or NewFromConfig with functional
// options:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger) {
//			l.Info("listening", "addr", cfg.Addr)
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Startup and shutdown failures are wrapped with the ErrStart and ErrShutdown
// sentinels so callers can branch with errors.Is.
package httpserver
