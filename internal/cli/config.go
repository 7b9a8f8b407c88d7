package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/forcegraph/forcegraph/pkg/pipeline"
	"github.com/forcegraph/forcegraph/pkg/sim"
)

// Config holds user-level defaults loaded from config.toml.
// Command-line flags always take precedence over config values.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig sets default simulation parameters.
type LayoutConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	LinkLength float64 `toml:"link_length"`
	Iterations int     `toml:"iterations"`
	Seed       uint64  `toml:"seed"`
}

// CacheConfig selects the cache backend.
// If RedisAddr is set, serve uses Redis, otherwise the file cache.
type CacheConfig struct {
	RedisAddr string `toml:"redis_addr"`
}

// StoreConfig selects the layout store backend.
// If MongoURI is set, serve uses MongoDB, otherwise an in-memory store.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// ServerConfig sets HTTP server defaults.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Width:      pipeline.DefaultWidth,
			Height:     pipeline.DefaultHeight,
			LinkLength: sim.DefaultLinkLength,
			Iterations: sim.DefaultIterations,
			Seed:       sim.DefaultSeed,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// LoadConfig reads the TOML config at path, layering it over the defaults.
// A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
