package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the requested struct type.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[string]any)
)

// Load parses environment variables into a fresh value of T. The first call
// per process also loads the default .env file when one exists. Each type is
// parsed once; later calls return the cached value, so all components share
// one view of the configuration.
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := fmt.Sprintf("%T", *new(T))

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		return cached.(T), nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	cache[key] = cfg
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Intended for process
// startup where missing required configuration should stop the boot.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
