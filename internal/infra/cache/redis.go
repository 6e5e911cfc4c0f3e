// Package cache contains the Redis-backed volatile stores: the geo position
// index and the notification dedup ledger.
package cache

import (
	"context"
	"log/slog"
	"time"

	"loocate/config"
	"loocate/internal/domain/lifecycle"
	"loocate/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the shared Redis client
func New(params Params) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         params.Config.Redis.Addr,
		Password:     params.Config.Redis.Password,
		DB:           params.Config.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
