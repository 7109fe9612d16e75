// Package pg owns PostgreSQL connection plumbing: pool construction with
// startup retry, goose migrations from an embedded filesystem, health checks,
// and error classification helpers.
//
// The pool is pgx-native (pgxpool); callers that need a database/sql handle
// bridge through stdlib.OpenDBFromPool so both interfaces share the same
// underlying connections.
//
// Error helpers classify failures the application reacts to differently:
// IsNotFoundError for empty query results and IsDuplicateKeyError for unique
// constraint violations (SQLSTATE 23505), which the authentication service
// maps to a registration conflict.
package pg
