package cache

import (
	"context"

	"climate-api/internal/domain/model"
	"climate-api/pkg/msg"
)

// NoopClimateCacheGateway is used when Redis is disabled. Every lookup misses.
type NoopClimateCacheGateway struct{}

var _ ClimateCacheGateway = NoopClimateCacheGateway{}

func (NoopClimateCacheGateway) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (NoopClimateCacheGateway) Set(context.Context, string, interface{}) error {
	return nil
}

func (NoopClimateCacheGateway) Clear(context.Context, string) error {
	return nil
}

func (NoopClimateCacheGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUnknown,
		Details: map[string]string{
			"message": msg.GetMessage("cache.disabled"),
		},
	}
}
