// Package logger standardises structured logging on top of log/slog.
//
// New builds a *slog.Logger from functional options: output format (text for
// development, JSON for aggregation), minimum level, static attributes, and
// ContextExtractor callbacks that pull request-scoped values (such as a
// request id) out of context on every log call.
//
// Attribute constructors in attr.go keep key naming consistent across the
// codebase:
//
//	log.InfoContext(ctx, "user registered",
//	    logger.UserID(user.ID),
//	    logger.Email(sanitizer.MaskEmail(user.Email)),
//	)
//
// Error and Errors produce empty attributes for nil errors, so success paths
// can log without a nil check.
package logger
