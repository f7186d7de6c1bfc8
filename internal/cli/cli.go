package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/cache"
	"github.com/matzehuels/pokedex/pkg/integrations"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pokedex"

	// retryBackoff is the first delay between retried requests.
	retryBackoff = 500 * time.Millisecond
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
	backend    string
	noCache    bool
	cfg        Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Pokedex browses creature data from PokeAPI",
		Long:              `Pokedex is a CLI tool for listing, filtering and inspecting creatures from PokeAPI, with a response cache and a JSON load API for front ends.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/pokedex/config.toml)")
	flags.StringVar(&c.backend, "cache", "", fmt.Sprintf("cache backend %v", backends))
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the response cache")

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.regionCommand())
	root.AddCommand(c.generationsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, applies flag overrides and attaches the logger
// to the command context. It runs before every subcommand.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	path := c.configFile
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			c.Logger.Debug("no config directory", "err", err)
		}
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if c.backend != "" {
		cfg.Cache.Backend = c.backend
	}
	if c.noCache {
		cfg.Cache.Backend = backendNone
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	c.cfg = cfg

	if c.Logger.GetLevel() <= log.DebugLevel {
		registerDebugHooks(c.Logger)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Service Factory
// =============================================================================

// newService builds the PokeAPI client and aggregation service from the
// loaded configuration. The returned func releases the cache backend.
func (c *CLI) newService(ctx context.Context) (*pokedex.Service, func() error, error) {
	backend, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := []integrations.Option{integrations.WithLogger(c.Logger)}
	if c.cfg.Timeout > 0 {
		opts = append(opts, integrations.WithTimeout(c.cfg.Timeout))
	}
	if c.cfg.Retries > 0 {
		opts = append(opts, integrations.WithRetries(c.cfg.Retries, retryBackoff))
	}
	if shared(c.cfg.Cache.Backend) {
		opts = append(opts, integrations.WithKeyer(cache.NewScopedKeyer(nil, appName+":")))
	}

	api := pokeapi.NewClient(c.cfg.BaseURL, backend, c.cfg.Cache.entryTTL(), opts...)
	svc := pokedex.NewService(api, pokedex.Options{
		Concurrency:    c.cfg.Concurrency,
		SpriteTemplate: c.cfg.SpriteTemplate,
	}, c.Logger)

	c.Logger.Debug("service ready", "base_url", api.BaseURL(), "cache", c.cfg.Cache.Backend)
	return svc, backend.Close, nil
}

// newCache opens the configured cache backend.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.cfg.Cache
	switch cfg.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendFile:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				c.Logger.Warn("no cache directory, caching disabled", "err", err)
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case backendMongo:
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return cache.NewMemoryCache(), nil
	}
}

// shared reports whether backend may be shared with other deployments.
func shared(backend string) bool {
	return backend == backendRedis || backend == backendMongo
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pokedex/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
