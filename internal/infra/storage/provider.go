package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
	_ "gocloud.dev/blob/memblob"  // mem:// bucket URLs
)

// StoreParams holds dependencies for LocalStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalStore opens the configured storage backend and closes it on shutdown.
func NewLocalStore(params StoreParams) (repository.LocalStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	switch cfg.Driver {
	case config.StorageDriverBlob:
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}
		logger.Info("Using blob local store", slog.String("bucket_url", cfg.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing blob local store")

				return bucket.Close()
			},
		})

		return WithTimeout(NewBlobStore(bucket, cfg.KeyPrefix), cfg.OpTimeout), nil

	case config.StorageDriverRedis:
		client := redis.NewClient(redisOptions(cfg))
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, errors.Wrapf(err, "failed to reach redis at %s", cfg.Redis.Addr)
		}
		logger.Info("Using redis local store", slog.String("addr", cfg.Redis.Addr))

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing redis local store")

				return client.Close()
			},
		})

		return WithTimeout(NewRedisStore(client, cfg.KeyPrefix), cfg.OpTimeout), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func redisOptions(cfg config.StorageConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
}

// Module provides the local store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocalStore),
)
