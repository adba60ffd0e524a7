// Package config defines the taskflow configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fentz26/taskflow/internal/sorting"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Backends supported by the daemon.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// EnvPrefix prefixes every environment override, e.g. TASKFLOW_LISTEN.
const EnvPrefix = "TASKFLOW"

// Config is the top-level taskflow configuration.
type Config struct {
	Listen          string        `yaml:"listen" envconfig:"LISTEN"`         // daemon listen address
	API             string        `yaml:"api" envconfig:"API"`               // daemon URL used by the CLI and TUI
	Backend         string        `yaml:"backend" envconfig:"BACKEND"`       // "local" or "remote"
	DBPath          string        `yaml:"db_path" envconfig:"DB_PATH"`
	RemoteURL       string        `yaml:"remote_url" envconfig:"REMOTE_URL"` // root of the /tareas API
	RemoteTimeout   time.Duration `yaml:"remote_timeout" envconfig:"REMOTE_TIMEOUT"`
	DefaultStrategy string        `yaml:"default_strategy" envconfig:"DEFAULT_STRATEGY"`
	Seed            bool          `yaml:"seed" envconfig:"SEED"` // load sample tasks into an empty database
}

// Dir returns the taskflow home directory.
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".taskflow")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:          "127.0.0.1:7466",
		API:             "http://127.0.0.1:7466",
		Backend:         BackendLocal,
		DBPath:          filepath.Join(Dir(), "taskflow.db"),
		RemoteTimeout:   10 * time.Second,
		DefaultStrategy: sorting.Default().Key(),
		Seed:            true,
	}
}

// Load reads the YAML config at path and applies environment overrides. An
// empty path means the default location, which may be absent; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for inconsistent settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal:
		if c.DBPath == "" {
			return errors.New("db_path is required for the local backend")
		}
	case BackendRemote:
		if c.RemoteURL == "" {
			return errors.New("remote_url is required for the remote backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendLocal, BackendRemote)
	}

	if c.Listen == "" {
		return errors.New("listen address is required")
	}
	if c.RemoteTimeout < 0 {
		return fmt.Errorf("remote_timeout must not be negative, got %s", c.RemoteTimeout)
	}
	if _, err := sorting.Lookup(c.DefaultStrategy); err != nil {
		return fmt.Errorf("default_strategy: %w", err)
	}
	return nil
}
