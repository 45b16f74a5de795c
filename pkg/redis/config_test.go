package redis

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{name: "defaults", config: NewRedisConfig()},
		{name: "empty host", config: NewRedisConfig().WithHost(""), wantErr: true},
		{name: "port out of range", config: NewRedisConfig().WithPort(70000), wantErr: true},
		{name: "database out of range", config: NewRedisConfig().WithDatabase(16), wantErr: true},
		{name: "negative cache ttl", config: NewRedisConfig().WithCacheTTL("climate", -time.Second), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	if _, err := NewClient(NewRedisConfig().WithPort(0)); err == nil {
		t.Fatal("expected an error for port 0")
	}
}

func TestCache_KeyAndTTL(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithDefaultCacheTTL(10*time.Minute).WithCacheTTL("stations", time.Minute))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	climate := NewCache(client, NewCacheOptions().WithCacheName("climate"))
	if got := climate.Key("temperature:2017-01-01"); got != "climate::temperature:2017-01-01" {
		t.Fatalf("Key = %s", got)
	}
	if got := climate.TTL(); got != 10*time.Minute {
		t.Fatalf("TTL = %v, want default", got)
	}

	stations := NewCache(client, NewCacheOptions().WithCacheName("stations"))
	if got := stations.TTL(); got != time.Minute {
		t.Fatalf("TTL = %v, want per-cache ttl", got)
	}

	bare := NewCache(client, NewCacheOptions().WithTTL(time.Second))
	if got := bare.Key("k"); got != "k" {
		t.Fatalf("Key = %s", got)
	}
	if got := bare.TTL(); got != time.Second {
		t.Fatalf("TTL = %v", got)
	}
}
