// Package postgres implements the user store over the Postgres users table.
//
// The store runs on the database/sql interface so it works with any handle
// bridged from the pgx pool. Schema changes live in the embedded migrations
// directory and are applied at startup.
package postgres
