package postgres

import "embed"

// Migrations holds the versioned SQL schema for the users table, applied at
// startup through pg.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that pg.Migrate reads.
const MigrationsDir = "migrations"
