package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ishidiag/fishbone/pkg/cache"
	"github.com/ishidiag/fishbone/pkg/config"
	"github.com/ishidiag/fishbone/pkg/store"
)

// configPath is the --config flag value, empty for the default location.
var configPath string

// loadConfig reads the config file the --config flag points at, or the
// default location.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// openCache builds the cache backend the config selects. Errors reaching
// a remote backend degrade to a null cache with a warning instead of
// failing the command.
func openCache(ctx context.Context, cfg config.Config, logger *log.Logger) cache.Cache {
	switch cfg.Cache.Backend {
	case "off":
		return cache.NewNullCache()
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			logger.Warn("redis cache unavailable, caching disabled", "addr", cfg.Cache.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return c
	default:
		c, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			logger.Warn("file cache unavailable, caching disabled", "dir", cfg.Cache.Dir, "err", err)
			return cache.NewNullCache()
		}
		return c
	}
}

// openStore builds the diagram store the config selects.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Store.Backend == "mongo" {
		return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase)
	}
	return store.NewFileStore(cfg.Store.Dir)
}

// nopCloser wraps an io.Writer with a no-op Close method, making
// os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. An empty path
// means os.Stdout; otherwise the file is created, overwriting any
// existing one.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
