package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SHELFMATCH_SERVER_PORT")
		os.Unsetenv("SHELFMATCH_SERVER_ENVIRONMENT")
		os.Unsetenv("SHELFMATCH_MATCHING_TOP_N")
		os.Unsetenv("SHELFMATCH_CACHE_TYPE")
		os.Unsetenv("SHELFMATCH_CACHE_REDIS_URL")
		os.Unsetenv("SHELFMATCH_CACHE_TTL")
		os.Unsetenv("SHELFMATCH_RATELIMIT_PER_IP")
		os.Unsetenv("SHELFMATCH_LOG_LEVEL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.TopN != 5 {
			t.Errorf("Matching.TopN = %d, want 5", cfg.Matching.TopN)
		}
		if cfg.Matching.DuplicateThreshold != 0.7 {
			t.Errorf("Matching.DuplicateThreshold = %v, want 0.7", cfg.Matching.DuplicateThreshold)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("Log.Level = %s, want info", cfg.Log.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFMATCH_SERVER_PORT", "9090")
		os.Setenv("SHELFMATCH_MATCHING_TOP_N", "10")
		os.Setenv("SHELFMATCH_LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Matching.TopN != 10 {
			t.Errorf("Matching.TopN = %d, want 10", cfg.Matching.TopN)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
		}
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFMATCH_CACHE_TYPE", "memcached")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want cache type error")
		}
	})

	t.Run("requires redis url for redis cache", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFMATCH_CACHE_TYPE", "redis")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want redis url error")
		}
	})

	t.Run("rejects out-of-range top_n", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHELFMATCH_MATCHING_TOP_N", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want top_n error")
		}
	})
}
