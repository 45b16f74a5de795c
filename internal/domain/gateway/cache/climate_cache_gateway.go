package cache

import (
	"context"

	"climate-api/internal/domain/model"
)

// ClimateCacheGateway stores serialized climate responses. A miss is reported as found=false
// with a nil error; callers treat any error as a miss.
type ClimateCacheGateway interface {
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	// Clear evicts every key matching the glob pattern
	Clear(ctx context.Context, pattern string) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
