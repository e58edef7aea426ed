package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/flagx"
)

// parseFlags overlays command-line flags.
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-d string   database DSN
//	-n int      max open connections
//	-t int      request timeout, seconds
//	-k int      bcrypt cost
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-x int      export URL validity, minutes
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-t", "-k", "-u", "-p", "-b", "-g", "-e", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxOpenConns, "n", config.MaxOpenConns, "max open database connections")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	exportValidity := fs.Int("x", int(config.ExportURLValidity.Minutes()), "export URL validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Durations are only replaced when given, so sub-unit values from the
	// JSON file or environment survive a flag-less start.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "x":
			config.ExportURLValidity = time.Duration(*exportValidity) * time.Minute
		}
	})
}
