package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"POKEDEX_BASE_URL", "POKEDEX_CACHE", "POKEDEX_REDIS_ADDR", "POKEDEX_MONGO_URI"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.BaseURL != pokeapi.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Limit != pokedex.DefaultLimit || cfg.Concurrency != pokedex.DefaultConcurrency {
		t.Errorf("Limit = %d, Concurrency = %d", cfg.Limit, cfg.Concurrency)
	}
	if cfg.Timeout != 0 || cfg.Retries != 0 {
		t.Errorf("Timeout = %v, Retries = %d; want no timeout and no retries", cfg.Timeout, cfg.Retries)
	}
	if cfg.Cache.Backend != backendMemory {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, backendMemory)
	}
	if ttl := cfg.Cache.entryTTL(); ttl != 0 {
		t.Errorf("default memory backend gets TTL %v, want 0 (no expiry)", ttl)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestCacheEntryTTL(t *testing.T) {
	tests := []struct {
		backend string
		want    time.Duration
	}{
		{backendMemory, 0},
		{backendNone, 0},
		{backendFile, 24 * time.Hour},
		{backendRedis, 24 * time.Hour},
		{backendMongo, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := defaultConfig().Cache
			cfg.Backend = tt.backend
			if got := cfg.entryTTL(); got != tt.want {
				t.Errorf("entryTTL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Limit != pokedex.DefaultLimit {
		t.Errorf("Limit = %d, want default", cfg.Limit)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, `
base_url = "http://localhost:9000/api/v2"
sprite_template = "https://img.test/{id}.png"
limit = 151
concurrency = 4
timeout = "30s"
retries = 2

[cache]
backend = "redis"
ttl = "1h"

[cache.redis]
addr = "cache:6379"
db = 3

[cache.mongo]
database = "dex"

[server]
addr = "127.0.0.1:9090"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"base_url", cfg.BaseURL, "http://localhost:9000/api/v2"},
		{"sprite_template", cfg.SpriteTemplate, "https://img.test/{id}.png"},
		{"limit", cfg.Limit, 151},
		{"concurrency", cfg.Concurrency, 4},
		{"timeout", cfg.Timeout, 30 * time.Second},
		{"retries", cfg.Retries, 2},
		{"cache.backend", cfg.Cache.Backend, backendRedis},
		{"cache.ttl", cfg.Cache.TTL, time.Hour},
		{"cache.redis.addr", cfg.Cache.Redis.Addr, "cache:6379"},
		{"cache.redis.db", cfg.Cache.Redis.DB, 3},
		{"cache.mongo.database", cfg.Cache.Mongo.Database, "dex"},
		{"cache.mongo.collection", cfg.Cache.Mongo.Collection, "http_cache"},
		{"server.addr", cfg.Server.Addr, "127.0.0.1:9090"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	clearConfigEnv(t)

	path := writeConfig(t, "limit = [")
	if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("loadConfig() error = %v, want parse error naming the file", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `base_url = "http://from-file"`)
	t.Setenv("POKEDEX_BASE_URL", "http://from-env")
	t.Setenv("POKEDEX_CACHE", "mongo")
	t.Setenv("POKEDEX_REDIS_ADDR", "redis:6380")
	t.Setenv("POKEDEX_MONGO_URI", "mongodb://mongo:27017")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.BaseURL != "http://from-env" {
		t.Errorf("BaseURL = %q, want env override", cfg.BaseURL)
	}
	if cfg.Cache.Backend != backendMongo {
		t.Errorf("Cache.Backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "redis:6380" || cfg.Cache.Mongo.URI != "mongodb://mongo:27017" {
		t.Errorf("Redis.Addr = %q, Mongo.URI = %q", cfg.Cache.Redis.Addr, cfg.Cache.Mongo.URI)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"file backend", func(c *Config) { c.Cache.Backend = backendFile }, false},
		{"none backend", func(c *Config) { c.Cache.Backend = backendNone }, false},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "floppy" }, true},
		{"negative limit", func(c *Config) { c.Limit = -1 }, true},
		{"negative retries", func(c *Config) { c.Retries = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			if err := cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCacheBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		backend string
		want    string
	}{
		{backendMemory, "*cache.MemoryCache"},
		{backendNone, "*cache.NullCache"},
		{backendFile, "*cache.FileCache"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			c := New(os.Stderr, LogInfo)
			c.cfg.Cache.Backend = tt.backend
			backend, err := c.newCache(t.Context())
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer backend.Close()
			if got := fmt.Sprintf("%T", backend); got != tt.want {
				t.Errorf("newCache() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewCacheUnreachableRedis(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Backend = backendRedis
	c.cfg.Cache.Redis.Addr = "127.0.0.1:1"

	if _, err := c.newCache(t.Context()); err == nil {
		t.Error("expected error connecting to a closed port")
	}
}
