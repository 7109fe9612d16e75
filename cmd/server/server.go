package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/lilknig/ember-api/modules/account"
	"github.com/lilknig/ember-api/modules/users"
	"github.com/lilknig/ember-api/pkg/auth"
	"github.com/lilknig/ember-api/pkg/authz"
	"github.com/lilknig/ember-api/pkg/config"
	"github.com/lilknig/ember-api/pkg/environment"
	"github.com/lilknig/ember-api/pkg/httpserver"
	"github.com/lilknig/ember-api/pkg/logger"
	"github.com/lilknig/ember-api/pkg/pg"
	"github.com/lilknig/ember-api/pkg/ratelimit"
	"github.com/lilknig/ember-api/pkg/redis"
	"github.com/lilknig/ember-api/pkg/requestid"
	"github.com/lilknig/ember-api/storage/postgres"
	"github.com/lilknig/ember-api/storage/redisstore"
)

// serverConfig aggregates the per-concern config structs so the whole
// environment is parsed and validated in a single Load call at startup.
type serverConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ember-api"`

	HTTP      httpserver.Config
	Postgres  pg.Config
	Redis     redis.Config
	Password  auth.PasswordConfig
	Google    auth.GoogleConfig
	CORS      authz.Config
	Account   account.Config
	RateLimit ratelimit.Config
}

func run(ctx context.Context) error {
	cfg, err := config.Load[serverConfig]()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	env := environment.Parse(cfg.Environment)

	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)
	logger.SetAsDefault(log)

	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.Postgres, postgres.Migrations, postgres.MigrationsDir, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error("failed to close redis client", logger.Error(err))
		}
	}()

	// database/sql bridge over the pgx pool. Closed before the pool is.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close sql bridge", logger.Error(err))
		}
	}()

	userStore := postgres.NewUserStore(db)

	hasher := auth.NewPasswordHasherFromConfig(cfg.Password)
	authSvc := auth.NewService(userStore, hasher, auth.WithServiceLogger(log))

	google, err := auth.NewGoogleAdapter(ctx, cfg.Google)
	if err != nil {
		return fmt.Errorf("configure google oauth2: %w", err)
	}
	oauthSvc := auth.NewOAuthService(
		redisstore.NewStateStore(rdb),
		auth.NewResolver(userStore, auth.WithResolverLogger(log)),
		auth.WithAdapter(google),
		auth.WithStateTTL(cfg.Google.StateTTL),
		auth.WithOAuthLogger(log),
	)

	accountSvc, err := account.NewService(cfg.Account, authSvc, oauthSvc, account.WithLogger(log))
	if err != nil {
		return fmt.Errorf("configure account module: %w", err)
	}
	usersSvc := users.NewService(userStore, users.WithLogger(log))

	limiter, err := ratelimit.NewFixedWindow(
		ratelimit.NewRedisStore(rdb),
		cfg.RateLimit.Requests,
		cfg.RateLimit.Window,
	)
	if err != nil {
		return fmt.Errorf("configure rate limiter: %w", err)
	}

	policy := authz.NewPolicy(env,
		authz.Public("/api/v1/auth/**", "/oauth2/**", "/login/oauth2/**", "/healthz"),
		authz.DevOnly("/debug/**", "/metrics"),
		authz.RequireRole(auth.RoleAdmin, "/api/v1/admin/**"),
		authz.Authenticated("/api/v1/users/**", "/api/v1/profile/**"),
	)

	router := newRouter(routerDeps{
		log:       log,
		policy:    policy,
		verifier:  authSvc,
		cors:      cfg.CORS,
		account:   accountSvc,
		users:     usersSvc,
		authLimit: ratelimit.Middleware(limiter, log),
		healthz: httpserver.HealthCheckHandler(log,
			pg.Healthcheck(pool),
			redis.Healthcheck(rdb),
		),
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening",
				slog.String("addr", cfg.HTTP.Addr),
				slog.String("env", env.String()),
			)
		}),
	)
	return srv.Run(ctx, router)
}
