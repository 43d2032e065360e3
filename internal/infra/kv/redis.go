// Package kv provides the key-value stores behind carts, the newsletter queue and order confirmations.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"storefront/internal/domain/repository"
)

type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed store. The connection is established lazily.
func NewRedisStore(opts *redis.Options, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    redis.NewClient(opts),
		keyPrefix: keyPrefix,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrapf(r.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(r.client.Del(ctx, key).Err(), "redis del %s", key)
}

func (r *RedisStore) GenerateKey(collection, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.keyPrefix, collection, key)
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return errors.Wrap(r.client.Ping(ctx).Err(), "redis ping")
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
