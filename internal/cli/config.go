package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// Cache backends accepted by --cache and [cache] backend.
const (
	backendMemory = "memory"
	backendFile   = "file"
	backendRedis  = "redis"
	backendMongo  = "mongo"
	backendNone   = "none"
)

var backends = []string{backendMemory, backendFile, backendRedis, backendMongo, backendNone}

// Config is the on-disk configuration, read from config.toml.
type Config struct {
	BaseURL        string        `toml:"base_url"`
	SpriteTemplate string        `toml:"sprite_template"`
	Limit          int           `toml:"limit"`
	Concurrency    int           `toml:"concurrency"`
	Timeout        time.Duration `toml:"timeout"`
	Retries        int           `toml:"retries"`
	Cache          CacheConfig   `toml:"cache"`
	Server         ServerConfig  `toml:"server"`
}

// CacheConfig selects and configures the response cache backend.
type CacheConfig struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	TTL     time.Duration `toml:"ttl"`
	Redis   RedisConfig   `toml:"redis"`
	Mongo   MongoConfig   `toml:"mongo"`
}

// RedisConfig holds [cache.redis] settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds [cache.mongo] settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig holds [server] settings for `pokedex serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		BaseURL:        pokeapi.DefaultBaseURL,
		SpriteTemplate: pokedex.DefaultSpriteTemplate,
		Limit:          pokedex.DefaultLimit,
		Concurrency:    pokedex.DefaultConcurrency,
		Cache: CacheConfig{
			Backend: backendMemory,
			TTL:     24 * time.Hour,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "pokedex",
				Collection: "http_cache",
			},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads path on top of the defaults and applies environment
// overrides. A missing file is not an error. The result is not validated
// so that flags can still override it.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from POKEDEX_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("POKEDEX_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_CACHE"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("POKEDEX_REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("POKEDEX_MONGO_URI"); v != "" {
		c.Cache.Mongo.URI = v
	}
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case backendMemory, backendFile, backendRedis, backendMongo, backendNone:
	default:
		return fmt.Errorf("unknown cache backend %q (want one of %v)", c.Cache.Backend, backends)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative: %d", c.Limit)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative: %d", c.Retries)
	}
	return nil
}

// entryTTL is the TTL written with each cache entry. Only the persistent
// backends honor [cache] ttl; memory entries never expire.
func (c CacheConfig) entryTTL() time.Duration {
	switch c.Backend {
	case backendFile, backendRedis, backendMongo:
		return c.TTL
	}
	return 0
}

// configPath returns the config file location using XDG standard
// (~/.config/pokedex/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
