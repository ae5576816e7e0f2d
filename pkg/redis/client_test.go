package redis

import (
	"testing"
	"time"

	"github.com/riffus/hyperswitch/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}
}

func TestOptionsFromConfigFromURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:      "redis://localhost:6379/2",
		PoolSize: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
	if opts.PoolSize != 15 {
		t.Fatalf("pool size not applied: %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigFromAddress(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		Address:     "127.0.0.1:6380",
		Password:    "secret",
		DB:          1,
		DialTimeout: 2 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "127.0.0.1:6380" || opts.Password != "secret" || opts.DB != 1 {
		t.Fatalf("options not applied: %+v", opts)
	}
	if opts.DialTimeout != 2*time.Second {
		t.Fatalf("dial timeout not applied: %v", opts.DialTimeout)
	}
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	if got := c.CacheKey("forex", "rates"); got != "hs:cache:forex:rates" {
		t.Fatalf("unexpected cache key %q", got)
	}
	if got := c.ProbeKey("readiness"); got != "hs:probe:readiness" {
		t.Fatalf("unexpected probe key %q", got)
	}
}
