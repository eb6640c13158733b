// Package config loads the tsets configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/tsets/config.toml (or
// ~/.config/tsets/config.toml). Every key is optional; a missing file yields
// [Default]. Command-line flags override values read here.
//
//	workers = 4
//	max_vertices = 22
//	max_edges = 26
//
//	[cache]
//	backend = "redis"
//	ttl = "72h"
//	redis_addr = "localhost:6379"
//	redis_prefix = "tsets:"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tsets/pkg/cache"
	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/pipeline"
)

const (
	appName  = "tsets"
	fileName = "config.toml"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Backends lists the accepted cache backend names.
var Backends = []string{BackendFile, BackendRedis, BackendNone}

// Config holds defaults for the enumerate and visualize commands.
type Config struct {
	Workers     int   `toml:"workers"`
	MaxVertices int   `toml:"max_vertices"`
	MaxEdges    int   `toml:"max_edges"`
	Cache       Cache `toml:"cache"`
}

// Cache selects and configures the result cache.
type Cache struct {
	Backend     string   `toml:"backend"`
	TTL         Duration `toml:"ttl"`
	RedisAddr   string   `toml:"redis_addr"`
	RedisPrefix string   `toml:"redis_prefix"`
	RedisDB     int      `toml:"redis_db"`
}

// Duration is a time.Duration read from a TOML string such as "36h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:     pipeline.DefaultWorkers,
		MaxVertices: pipeline.DefaultMaxVertices,
		MaxEdges:    pipeline.DefaultMaxEdges,
		Cache: Cache{
			Backend:     BackendFile,
			TTL:         Duration{cache.TTLResult},
			RedisAddr:   "localhost:6379",
			RedisPrefix: cache.DefaultRedisPrefix,
		},
	}
}

// DefaultPath returns the XDG location of the config file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads path on top of [Default]. A missing file is not an error.
// Unknown keys are rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and the backend name.
func (c Config) Validate() error {
	if err := errors.ValidateWorkers(c.Workers); err != nil {
		return err
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidConfig, "cache backend", c.Cache.Backend, Backends); err != nil {
		return err
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis backend requires redis_addr")
	}
	return nil
}
