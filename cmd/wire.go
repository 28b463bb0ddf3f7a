package cmd

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-authn/app/notifier"
	"github.com/vibast-solutions/ms-go-authn/app/password"
	"github.com/vibast-solutions/ms-go-authn/app/ratelimit"
	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type app struct {
	db    *sql.DB
	redis *redis.Client
	auth  *service.AuthService
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	_ = a.db.Close()
}

func openStore(ctx context.Context, cfg *config.Config) (*sql.DB, repository.Dialect, error) {
	dialect, err := repository.ParseDialect(cfg.Store.Driver)
	if err != nil {
		return nil, "", err
	}

	db, err := repository.Open(ctx, dialect, cfg.Store.DSN)
	if err != nil {
		return nil, "", err
	}
	return db, dialect, nil
}

// buildApp opens the store and assembles the auth service from configuration.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, dialect, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := &app{db: db}

	if cfg.Store.MigrateOnStart {
		if err = repository.Migrate(ctx, db, dialect); err != nil {
			a.Close()
			return nil, err
		}
		logrus.WithField("driver", dialect).Info("Migrations applied")
	}

	transactor := repository.NewTransactor(db, dialect)
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTTL: cfg.JWT.RefreshTokenTTL,
	}, repository.NewRefreshTokenRepository(db, dialect), transactor)
	if err != nil {
		a.Close()
		return nil, err
	}

	verifications, err := service.NewVerificationManager(service.VerificationConfig{
		VerifyEmailTTL:   cfg.Tokens.VerifyEmailTTL,
		ResetPasswordTTL: cfg.Tokens.ResetPasswordTTL,
	}, repository.NewVerificationTokenRepository(db, dialect))
	if err != nil {
		a.Close()
		return nil, err
	}

	hashCfg := password.DefaultConfig()
	hashCfg.MemoryKB = cfg.Password.Argon2.MemoryKB
	hashCfg.Time = cfg.Password.Argon2.Time
	hashCfg.Parallelism = cfg.Password.Argon2.Parallelism
	hasher, err := password.NewHasher(hashCfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	opts := []service.AuthServiceOption{
		service.WithNotifier(notifier.NewLogNotifier(logrus.StandardLogger())),
		service.WithLinks(cfg.Links.VerifyEmailURL, cfg.Links.ResetPasswordURL),
		service.WithOperationTimeout(cfg.OperationTimeout),
	}
	if cfg.RedisEnabled() {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err = a.redis.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis unreachable at startup, limiters fail open until it recovers")
		}
		opts = append(opts,
			service.WithLimiters(
				ratelimit.NewRedisLimiter(a.redis, ratelimit.Rule{
					Prefix:      "signin",
					MaxAttempts: cfg.RateLimit.SignInMaxAttempts,
					Window:      cfg.RateLimit.SignInWindow,
				}),
				ratelimit.NewRedisLimiter(a.redis, ratelimit.Rule{
					Prefix:      "reset",
					MaxAttempts: cfg.RateLimit.ResetMaxRequests,
					Window:      cfg.RateLimit.ResetWindow,
				}),
			),
			service.WithRevocationList(ratelimit.NewRedisRevocationList(a.redis)),
		)
	} else {
		logrus.Info("REDIS_ADDR not set, throttling and access token cutoffs are disabled")
	}

	a.auth = service.NewAuthService(
		repository.NewAccountRepository(db, dialect),
		transactor,
		tokens,
		verifications,
		hasher,
		cfg.Password.Policy,
		opts...,
	)
	return a, nil
}
