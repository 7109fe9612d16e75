// Package redis wraps the go-redis client with connection bootstrapping
// helpers used by the application at startup.
//
// Connect retries the initial ping using the supplied configuration so the
// service survives a Redis instance that comes up slightly later than the
// application container. Healthcheck integrates the client into readiness
// probes.
//
// Configuration is described by Config whose fields are populated from
// environment variables via github.com/caarlos0/env:
//
//	cfg, err := config.Load[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	defer client.Close()
package redis
