// Package clientip resolves the originating client address of an HTTP
// request behind reverse proxies.
//
// Resolution checks X-Forwarded-For (first valid entry), then X-Real-IP,
// then falls back to the TCP peer address. Middleware stores the resolved
// address in the request context so downstream code does not repeat the
// header walk.
package clientip
