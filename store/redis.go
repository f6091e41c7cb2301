package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/pkg/logging"
)

// RedisStore 是 Redis 实现的 core.Store。
// 生产环境常用，支持持久化、集群、哨兵等。
type RedisStore struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRedisStore 连接 Redis 并 Ping 一次，失败时返回 UNAVAILABLE 错误。
func NewRedisStore(ctx context.Context, addr string, db int) (*RedisStore, error) {
	return NewRedisStoreWithOptions(ctx, &redis.Options{
		Addr: addr,
		DB:   db,
	})
}

func NewRedisStoreWithOptions(ctx context.Context, opts *redis.Options) (*RedisStore, error) {
	log := logging.With("store.redis")
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Error().Err(err).Str("addr", opts.Addr).Msg("redis ping failed")
		return nil, core.WrapDomainError(core.ModuleStore, core.ErrorCodeUnavailable, "store: redis unavailable", err)
	}
	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("redis connected")
	return &RedisStore{client: client, log: log}, nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrStoreNotFound
	}
	return val, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl ...int) error {
	var expiration time.Duration
	if len(ttl) > 0 && ttl[0] > 0 {
		expiration = time.Duration(ttl[0]) * time.Second
	}
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisStore) BatchGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(keys))
	for i, k := range keys {
		if vals[i] != nil {
			if s, ok := vals[i].(string); ok {
				result[k] = []byte(s)
			}
		}
	}
	return result, nil
}

func (r *RedisStore) BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error {
	if len(kvs) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	var expiration time.Duration
	if len(ttl) > 0 && ttl[0] > 0 {
		expiration = time.Duration(ttl[0]) * time.Second
	}

	for k, v := range kvs {
		pipe.Set(ctx, k, v, expiration)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Error().Err(err).Int("keys", len(kvs)).Msg("redis batch set failed")
		return err
	}
	return nil
}

func (r *RedisStore) Close() error {
	r.log.Debug().Msg("redis closing")
	return r.client.Close()
}

var _ core.Store = (*RedisStore)(nil)
