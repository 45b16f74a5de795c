package cache

import (
	"context"

	"climate-api/internal/domain/model"
	"climate-api/pkg/redis"
)

// CacheName prefixes every climate key as climate::<key>
const CacheName = "climate"

type RedisClimateCacheGateway struct {
	cache  *redis.Cache
	health *redis.HealthChecker
}

var _ ClimateCacheGateway = (*RedisClimateCacheGateway)(nil)

func NewRedisClimateCacheGateway(client *redis.Client) *RedisClimateCacheGateway {
	return &RedisClimateCacheGateway{
		cache:  redis.NewCache(client, redis.NewCacheOptions().WithCacheName(CacheName)),
		health: redis.NewHealthChecker(client),
	}
}

func (gateway *RedisClimateCacheGateway) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return gateway.cache.Get(ctx, key, dest)
}

func (gateway *RedisClimateCacheGateway) Set(ctx context.Context, key string, value interface{}) error {
	return gateway.cache.Set(ctx, key, value)
}

func (gateway *RedisClimateCacheGateway) Clear(ctx context.Context, pattern string) error {
	return gateway.cache.Clear(ctx, pattern)
}

func (gateway *RedisClimateCacheGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.health.HealthCheck(ctx)

	return model.ComponentHealthStatus{Status: model.StatusOf(check.Reachable), Details: check.Details}
}
