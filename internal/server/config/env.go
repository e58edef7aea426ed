package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
)

// EnvConfig lists the environment variables the server understands.
type EnvConfig struct {
	EndpointAddrGRPC  string        `env:"BOARDKEEPER_GRPC_ADDR"`
	DatabaseDSN       string        `env:"BOARDKEEPER_DATABASE_DSN"`
	MaxOpenConns      int           `env:"BOARDKEEPER_MAX_OPEN_CONNS"`
	RequestTimeout    time.Duration `env:"BOARDKEEPER_REQUEST_TIMEOUT"`
	BcryptCost        int           `env:"BOARDKEEPER_BCRYPT_COST"`
	S3RootUser        string        `env:"BOARDKEEPER_S3_USER"`
	S3RootPassword    string        `env:"BOARDKEEPER_S3_PASSWORD"`
	S3Bucket          string        `env:"BOARDKEEPER_S3_BUCKET"`
	S3Region          string        `env:"BOARDKEEPER_S3_REGION"`
	S3BaseEndpoint    string        `env:"BOARDKEEPER_S3_ENDPOINT"`
	ExportURLValidity time.Duration `env:"BOARDKEEPER_EXPORT_URL_VALIDITY"`
}

// parseEnv overlays BOARDKEEPER_* variables. Having none set is not an error.
func parseEnv(config *Config) {
	e := &EnvConfig{}
	if err := envdecode.Decode(e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return
		}
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setInt(&config.MaxOpenConns, e.MaxOpenConns)
	if e.RequestTimeout > 0 {
		config.RequestTimeout = e.RequestTimeout
	}
	setInt(&config.BcryptCost, e.BcryptCost)
	setString(&config.S3RootUser, e.S3RootUser)
	setString(&config.S3RootPassword, e.S3RootPassword)
	setString(&config.S3Bucket, e.S3Bucket)
	setString(&config.S3Region, e.S3Region)
	setString(&config.S3BaseEndpoint, e.S3BaseEndpoint)
	if e.ExportURLValidity > 0 {
		config.ExportURLValidity = e.ExportURLValidity
	}
}
