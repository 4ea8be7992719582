package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/MohitAryal/Database-for-social-media/pkg/config"
)

// newTestCache starts an in-memory Redis and returns a cache connected to it
func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()

	t.Run("disabled", func(t *testing.T) {
		c, err := New(&config.RedisConfig{Enabled: false})
		if err != nil || c != nil {
			t.Errorf("Expected nil cache without error, got %v, %v", c, err)
		}
	})

	t.Run("host and port", func(t *testing.T) {
		p, err := strconv.Atoi(port)
		if err != nil {
			t.Fatal(err)
		}
		cfg := &config.RedisConfig{Enabled: true, Host: host, Port: p}
		c, err := New(cfg)
		if err != nil {
			t.Fatalf("Failed to connect: %v", err)
		}
		defer c.Close()
		if err := c.Health(context.Background()); err != nil {
			t.Errorf("Expected healthy cache, got: %v", err)
		}
	})

	t.Run("url", func(t *testing.T) {
		c, err := New(&config.RedisConfig{Enabled: true, URL: "redis://" + mr.Addr() + "/0"})
		if err != nil {
			t.Fatalf("Failed to connect: %v", err)
		}
		c.Close()
	})

	t.Run("bad url", func(t *testing.T) {
		if _, err := New(&config.RedisConfig{Enabled: true, URL: "://nope"}); err == nil {
			t.Error("Expected error for malformed URL")
		}
	})
}

func TestCacheOperations(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if _, err := c.Get(ctx, "k"); !errors.Is(err, redis.Nil) {
		t.Errorf("Expected redis.Nil for a missing key, got %v", err)
	}
	if err := mr.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Errorf("Expected v, got %q, %v", got, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if mr.Exists("k") {
		t.Error("Expected key to be deleted")
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	if err := c.Delete(ctx, "k"); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	if err := c.Health(ctx); !errors.Is(err, ErrCacheDisabled) {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Closing a nil cache should not fail, got %v", err)
	}
}
