// Package config loads tool configuration from a TOML file. Every field
// has a working default, so a missing config file is not an error.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	fberrors "github.com/ishidiag/fishbone/pkg/errors"
)

// Config holds the tool-wide settings read from config.toml.
type Config struct {
	// Style is the default visual style: "simple" or "ink".
	Style string `toml:"style"`

	// PNGScale is the raster scale factor for PNG export.
	PNGScale float64 `toml:"png_scale"`

	// MinWidth and MinHeight set the minimum canvas size in pixels.
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`

	Cache CacheConfig `toml:"cache"`
	Store StoreConfig `toml:"store"`
	Serve ServeConfig `toml:"serve"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "off".
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Empty means a "cache" directory
	// next to the config file.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port of the Redis backend.
	RedisAddr string `toml:"redis_addr"`

	// TTL is how long cached artifacts live, e.g. "168h". Zero means
	// entries never expire.
	TTL duration `toml:"ttl"`
}

// StoreConfig selects where named diagrams are kept.
type StoreConfig struct {
	// Backend is "file" or "mongo".
	Backend string `toml:"backend"`

	// Dir is the file store directory. Empty means a "diagrams"
	// directory next to the config file.
	Dir string `toml:"dir"`

	// MongoURI is the connection string for the mongo backend.
	MongoURI string `toml:"mongo_uri"`

	// MongoDatabase is the database name, default "fishbone".
	MongoDatabase string `toml:"mongo_database"`
}

// ServeConfig configures the live preview server.
type ServeConfig struct {
	// Addr is the listen address, default "localhost:8080".
	Addr string `toml:"addr"`
}

// duration lets TOML carry values like "30m" or "168h".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the cache TTL as a time.Duration.
func (c CacheConfig) Duration() time.Duration {
	return time.Duration(c.TTL)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Style:     "simple",
		PNGScale:  2.0,
		MinWidth:  800,
		MinHeight: 600,
		Cache: CacheConfig{
			Backend: "file",
			TTL:     duration(7 * 24 * time.Hour),
		},
		Store: StoreConfig{
			Backend:       "file",
			MongoDatabase: "fishbone",
		},
		Serve: ServeConfig{
			Addr: "localhost:8080",
		},
	}
}

// DefaultPath returns the standard config location,
// $XDG_CONFIG_HOME/fishbone/config.toml or ~/.config/fishbone/config.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fishbone", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "fishbone", "config.toml")
}

// Load reads the config at path, filling unset fields with defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.fillDirs(path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fberrors.Wrap(fberrors.ErrCodeInvalidInput, err, "read config")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fberrors.Wrap(fberrors.ErrCodeInvalidFormat, err, "parse config")
	}
	cfg.fillDirs(path)
	return cfg, nil
}

// fillDirs anchors the cache and store directories next to the config
// file when they were not set explicitly.
func (c *Config) fillDirs(path string) {
	base := filepath.Dir(path)
	if c.Cache.Dir == "" {
		c.Cache.Dir = filepath.Join(base, "cache")
	}
	if c.Store.Dir == "" {
		c.Store.Dir = filepath.Join(base, "diagrams")
	}
}
