package storage

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisStore keeps every key as a plain string without expiry.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a LocalStore over client. Keys are namespaced by prefix.
func NewRedisStore(client *redis.Client, prefix string) repository.LocalStore {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) key(key string) string {
	return s.prefix + key
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domainerrors.NewStorageError("get", key, err)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return domainerrors.NewStorageError("set", key, err)
	}

	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return domainerrors.NewStorageError("remove", key, err)
	}

	return nil
}
