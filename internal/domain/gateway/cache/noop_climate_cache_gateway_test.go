package cache

import (
	"context"
	"testing"

	"climate-api/internal/domain/model"
)

func TestNoopClimateCacheGateway(t *testing.T) {
	gateway := NoopClimateCacheGateway{}
	ctx := context.Background()

	if err := gateway.Set(ctx, "stations", []string{"USC001"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var stations []string
	found, err := gateway.Get(ctx, "stations", &stations)
	if err != nil || found {
		t.Fatalf("Get = %v, %v; want a miss", found, err)
	}

	if err := gateway.Clear(ctx, "temperature:*"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if status := gateway.Health(ctx); status.Status != model.StatusUnknown {
		t.Fatalf("Health = %s, want %s", status.Status, model.StatusUnknown)
	}
}
