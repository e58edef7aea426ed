// Package config handles configuration for the BoardKeeper server: defaults,
// an optional JSON file, BOARDKEEPER_* environment variables and finally
// command-line flags, each layer overriding the previous one.
package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC command surface.
//   - DatabaseDSN: storage location. postgres:// selects PostgreSQL (pgx),
//     anything else is treated as a SQLite database path.
//   - MaxOpenConns: connection pool size (ignored for SQLite, which uses one).
//   - RequestTimeout: deadline applied around every command.
//   - BcryptCost: work factor for password hashes.
//   - S3*: object storage used by board exports.
//   - ExportURLValidity: lifetime of presigned export download URLs.
type Config struct {
	EndpointAddrGRPC  string
	DatabaseDSN       string
	MaxOpenConns      int
	RequestTimeout    time.Duration
	BcryptCost        int
	S3RootUser        string
	S3RootPassword    string
	S3Bucket          string
	S3Region          string
	S3BaseEndpoint    string
	ExportURLValidity time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the S3 credentials are for a local MinIO and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "sqlite://boardkeeper.db"
	c.MaxOpenConns = 5
	c.RequestTimeout = 10 * time.Second
	c.BcryptCost = bcrypt.DefaultCost
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "boards"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ExportURLValidity = 15 * time.Minute
}

// LoadConfig applies defaults, then the JSON file, then the environment,
// then flags. Malformed input panics; the server cannot start without a
// coherent configuration.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
