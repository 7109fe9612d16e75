// Package redisstore backs the OAuth2 state handshake with Redis.
//
// Each issued state token lives under its own key with a TTL and is removed
// on first read. Restarts and multiple instances share the same token space,
// so a callback may land on a different process than the one that started
// the flow.
package redisstore
