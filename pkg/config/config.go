// Package config loads the drift configuration file.
//
// Configuration lives in a TOML file, by default at
// ~/.config/drift/config.toml (respecting XDG_CONFIG_HOME). Every field
// has a working default, so a missing file is not an error: the CLI runs
// with an on-disk history store and the server listens on localhost.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/driftcli/drift/pkg/errors"
)

// appName is used for config and state directory names.
const appName = "drift"

// History backend names accepted in the config file.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the root configuration.
type Config struct {
	Server  Server  `toml:"server"`
	History History `toml:"history"`
}

// Server configures the HTTP API started by "drift serve".
type Server struct {
	Addr string `toml:"addr"`
}

// History configures where calculation history is recorded.
type History struct {
	Backend string   `toml:"backend"` // memory, file, redis or mongo
	Dir     string   `toml:"dir"`     // file backend; empty means the default state dir
	TTL     duration `toml:"ttl"`     // redis backend entry lifetime; 0 keeps entries forever
	Redis   Redis    `toml:"redis"`
	Mongo   Mongo    `toml:"mongo"`
}

// Redis holds connection settings for the redis history backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Mongo holds connection settings for the mongo history backend.
type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// duration lets TOML carry values like "72h" or "30m".
type duration time.Duration

// UnmarshalText implements toml's text unmarshaling for durations.
func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the value as a time.Duration.
func (d duration) Duration() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server: Server{
			Addr: "localhost:8640",
		},
		History: History{
			Backend: BackendFile,
			TTL:     duration(30 * 24 * time.Hour),
			Redis: Redis{
				Addr: "localhost:6379",
			},
			Mongo: Mongo{
				URI:        "mongodb://localhost:27017",
				Database:   appName,
				Collection: "history",
			},
		},
	}
}

// DefaultPath returns the default config file location using the XDG
// standard (~/.config/drift/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, applying defaults for any field the
// file omits. If path is empty the default location is used. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.History.Backend) {
	case BackendMemory, BackendFile, BackendRedis, BackendMongo:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput,
		"unknown history backend %q (expected %s, %s, %s or %s)",
		c.History.Backend, BackendMemory, BackendFile, BackendRedis, BackendMongo)
}

// StateDir returns the directory for the file history backend, honoring
// XDG_STATE_HOME (~/.local/state/drift by default).
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}
