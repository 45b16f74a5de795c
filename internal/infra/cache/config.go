package cache

import (
	"context"
	"fmt"
	"time"

	"climate-api/pkg/redis"
	"climate-api/pkg/resource"
)

// Enabled reports whether app.redis.enabled is set
func Enabled() bool {
	return resource.GetBool("app.redis.enabled")
}

// LoadConfig builds the Redis configuration from the app.redis.* properties
func LoadConfig() *redis.Config {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	if ttl := resource.GetDuration("app.redis.cache-ttl"); ttl > 0 {
		config.WithDefaultCacheTTL(ttl)
	}
	return config
}

// Open creates the client. No connection is made until Ping or the first command.
func Open(config *redis.Config) (*redis.Client, error) {
	return redis.NewClient(config)
}

// Ping checks the server answers within five seconds
func Ping(client *redis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping %s: %w", client.GetConfig().Addr(), err)
	}
	return nil
}
