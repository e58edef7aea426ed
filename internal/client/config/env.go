package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

type EnvConfig struct {
	ServerEndpointAddr string        `env:"BOARDKEEPER_CLIENT_SERVER"`
	RequestTimeout     time.Duration `env:"BOARDKEEPER_CLIENT_TIMEOUT"`
	StatePath          string        `env:"BOARDKEEPER_CLIENT_STATE"`
}

func parseEnv(cfg *Config) error {
	e := &EnvConfig{}
	if err := envdecode.Decode(e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("environment: %w", err)
	}

	if e.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = e.ServerEndpointAddr
	}
	if e.RequestTimeout > 0 {
		cfg.RequestTimeout = e.RequestTimeout
	}
	if e.StatePath != "" {
		cfg.StatePath = e.StatePath
	}
	return nil
}
