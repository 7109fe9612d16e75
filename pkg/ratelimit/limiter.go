package ratelimit

import (
	"context"
	"time"
)

type Config struct {
	Requests int           `env:"RATELIMIT_REQUESTS" envDefault:"10"` // Requests is the number of hits allowed per window.
	Window   time.Duration `env:"RATELIMIT_WINDOW" envDefault:"1m"`   // Window is the length of the counting window.
}

// Result describes the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter reports how long the caller should wait before the window
// resets. Zero when the request was allowed.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter records a hit against a key and reports whether it fits the limit.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Store counts hits per key within a window.
type Store interface {
	// Incr adds one hit to key. The first hit of a window starts its
	// expiry. Returns the hit count and the time left in the window.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)
}

// FixedWindow allows at most limit hits per key in each window.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

var _ Limiter = (*FixedWindow)(nil)

// NewFixedWindow creates a limiter over store allowing limit hits per window.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	return &FixedWindow{store: store, limit: limit, window: window}, nil
}

func (fw *FixedWindow) Allow(ctx context.Context, key string) (Result, error) {
	if key == "" {
		return Result{}, ErrKeyRequired
	}

	count, ttl, err := fw.store.Incr(ctx, key, fw.window)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:   count <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: max(0, fw.limit-int(count)),
		ResetAt:   time.Now().Add(ttl),
	}, nil
}
