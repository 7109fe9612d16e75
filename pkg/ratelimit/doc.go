// Package ratelimit throttles requests per client address with a
// Redis-backed fixed-window counter.
//
// FixedWindow counts hits per key and denies once the per-window limit is
// reached; the counter and its expiry are updated in one atomic script, so
// concurrent requests across server instances share an exact count.
// Middleware applies a limiter to an HTTP route group, keyed by the resolved
// client address, answering over-limit requests with 429 and a Retry-After
// header.
package ratelimit
