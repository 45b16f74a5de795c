//go:build integration

package cache

import (
	"context"
	"testing"

	"climate-api/internal/domain/model"
	"climate-api/internal/testinfra"
	"climate-api/pkg/redis"
)

func TestRedisClimateCacheGateway(t *testing.T) {
	host, port := testinfra.StartRedis(t)

	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(host).WithPort(port))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	gateway := NewRedisClimateCacheGateway(client)
	ctx := context.Background()

	var stats model.TemperatureStats
	found, err := gateway.Get(ctx, "temperature:2017-01-01", &stats)
	if err != nil || found {
		t.Fatalf("Get before Set = %v, %v; want a miss", found, err)
	}

	want := model.TemperatureStats{Min: 58, Max: 62, Average: 60}
	if err := gateway.Set(ctx, "temperature:2017-01-01", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	found, err = gateway.Get(ctx, "temperature:2017-01-01", &stats)
	if err != nil || !found || stats != want {
		t.Fatalf("Get = %+v, %v, %v", stats, found, err)
	}

	raw, err := client.GetClient().Exists(ctx, "climate::temperature:2017-01-01").Result()
	if err != nil || raw != 1 {
		t.Fatalf("climate::temperature:2017-01-01 exists = %d, %v", raw, err)
	}

	if err := gateway.Set(ctx, "stations", []string{"USC001"}); err != nil {
		t.Fatalf("Set stations: %v", err)
	}
	if err := gateway.Clear(ctx, "temperature:*"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if found, _ := gateway.Get(ctx, "temperature:2017-01-01", &stats); found {
		t.Fatal("temperature:2017-01-01 survived Clear")
	}
	var stations []string
	if found, err := gateway.Get(ctx, "stations", &stations); err != nil || !found {
		t.Fatalf("stations after Clear = %v, %v; want kept", found, err)
	}

	if status := gateway.Health(ctx); status.Status != model.StatusUp {
		t.Fatalf("Health = %s, %v", status.Status, status.Details)
	}
}
