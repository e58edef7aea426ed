// Package config holds the settings of the BoardKeeper CLI: defaults, an
// optional JSON file and BOARDKEEPER_CLIENT_* environment variables. The
// CLI applies its own flags on top.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC server.
//   - RequestTimeout: deadline of a single call.
//   - StatePath: local SQLite file that keeps the current session.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	StatePath          string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.StatePath = defaultStatePath()
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "boardkeeper-cli.db"
	}
	return filepath.Join(dir, "boardkeeper", "cli.db")
}

// LoadConfig applies defaults, then the JSON file at path (when non-empty),
// then the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
