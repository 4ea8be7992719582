package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("SOCIAL_DATABASE_URL", "sqlite://test.db")
	t.Setenv("SOCIAL_REDIS_HOST", "cache.internal")
	t.Setenv("SOCIAL_INTERACTION_LIMIT", "7")
	t.Setenv("SOCIAL_CACHED_POST_TTL", "90s")
	t.Setenv("SOCIAL_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.URL != "sqlite://test.db" {
		t.Errorf("Expected database URL from env, got: %s", cfg.Database.URL)
	}
	if cfg.Redis.Addr() != "cache.internal:6379" {
		t.Errorf("Expected redis addr from env, got: %s", cfg.Redis.Addr())
	}
	if cfg.Redis.InteractionLimit != 7 {
		t.Errorf("Expected interaction limit 7, got: %d", cfg.Redis.InteractionLimit)
	}
	if cfg.Redis.PostTTL != 90*time.Second {
		t.Errorf("Expected cached post ttl 90s, got: %s", cfg.Redis.PostTTL)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected CORS origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Redis.RecentLimit != 50 {
		t.Errorf("Expected default recent limit 50, got: %d", cfg.Redis.RecentLimit)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{URL: "postgresql://test@localhost/test"},
			Redis: RedisConfig{
				Enabled:          true,
				Host:             "localhost",
				Port:             6379,
				RecentLimit:      50,
				InteractionLimit: 20,
			},
			Server: ServerConfig{Port: 8080},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Valid config should not error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database url", func(c *Config) { c.Database.URL = "" }},
		{"zero interaction limit", func(c *Config) { c.Redis.InteractionLimit = 0 }},
		{"negative recent limit", func(c *Config) { c.Redis.RecentLimit = -1 }},
		{"bad redis port", func(c *Config) { c.Redis.Port = 70000 }},
		{"bad server port", func(c *Config) { c.Server.Port = 0 }},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitRPS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	t.Run("redis disabled skips redis checks", func(t *testing.T) {
		cfg := valid()
		cfg.Redis.Enabled = false
		cfg.Redis.Port = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("Disabled redis should not be validated: %v", err)
		}
	})
}
