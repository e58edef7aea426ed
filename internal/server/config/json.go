package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/boardkeeper/internal/flagx"
	"github.com/dmitrijs2005/boardkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; zero values leave the current setting untouched.
type JsonConfig struct {
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc"`
	DatabaseDSN       string         `json:"database_dsn"`
	MaxOpenConns      int            `json:"max_open_conns"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	BcryptCost        int            `json:"bcrypt_cost"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	ExportURLValidity timex.Duration `json:"export_url_validity"`
}

// parseJson overlays the file named by -c/-config, if any.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setInt(&config.MaxOpenConns, c.MaxOpenConns)
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	setInt(&config.BcryptCost, c.BcryptCost)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.ExportURLValidity.Duration > 0 {
		config.ExportURLValidity = c.ExportURLValidity.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
