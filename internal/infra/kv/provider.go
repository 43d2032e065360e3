package kv

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
)

type closableStore interface {
	repository.KeyValueStore
	Close() error
}

// StoreParams holds dependencies for the key-value store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore opens the configured backend and closes it on shutdown.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.KV
	logger := params.Logger

	var store closableStore
	switch cfg.Provider {
	case constants.KVProviderRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		store = NewRedisStore(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.KeyPrefix)
		logger.Info("Using Redis key-value store", slog.String("addr", cfg.Redis.Addr))

	case constants.KVProviderBucket, "":
		url := cfg.Bucket.URL
		if url == "" {
			url = "mem://"
		}
		opened, err := OpenBucketStore(params.Ctx, url, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}
		store = opened
		logger.Info("Using bucket key-value store", slog.String("url", url))

	default:
		return nil, errors.Errorf("unknown kv provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx); err != nil {
				logger.Warn("Key-value store is not reachable", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing key-value store")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the key-value FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
