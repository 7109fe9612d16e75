// Package config loads typed configuration structs from environment
// variables.
//
// It combines github.com/joho/godotenv (a best-effort .env load on first use)
// with github.com/caarlos0/env/v11 struct-tag parsing, and caches each parsed
// type for the lifetime of the process so every component sees the same
// values.
//
//	type PostgresConfig struct {
//	    DSN string `env:"POSTGRES_DSN,required"`
//	}
//
//	cfg, err := config.Load[PostgresConfig]()
//
// MustLoad panics on failure and is intended for process startup, where a
// missing required variable should stop the boot.
package config
