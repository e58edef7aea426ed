// Package store opens the server's record store. The DSN selects the
// database/sql driver: PostgreSQL URLs go to pgx, anything else is treated
// as an SQLite database handled by the pure-Go modernc driver.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/boardkeeper/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

const sqliteForeignKeys = "_pragma=foreign_keys(1)"

// Target is a parsed DSN.
type Target struct {
	Driver  string
	DSN     string
	Dialect goose.Dialect
	// Path is the SQLite database file, empty for PostgreSQL, in-memory and
	// URI-style DSNs.
	Path string
}

// ParseDSN resolves dsn to a driver and a driver-specific connection string.
func ParseDSN(dsn string) (Target, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return Target{}, fmt.Errorf("empty database dsn")
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return Target{Driver: DriverPostgres, DSN: dsn, Dialect: goose.DialectPostgres}, nil
	}

	name := strings.TrimPrefix(dsn, "sqlite://")
	if name == "" {
		return Target{}, fmt.Errorf("empty sqlite path in %q", dsn)
	}

	t := Target{Driver: DriverSQLite, Dialect: goose.DialectSQLite3}

	file, _, _ := strings.Cut(name, "?")
	if !strings.HasPrefix(name, "file:") && file != ":memory:" {
		t.Path = file
	}

	if !strings.Contains(name, "foreign_keys") {
		sep := "?"
		if strings.Contains(name, "?") {
			sep = "&"
		}
		name += sep + sqliteForeignKeys
	}
	t.DSN = name

	return t, nil
}

// Store owns the connection pool.
type Store struct {
	db     *sql.DB
	target Target
}

// Open connects to dsn and verifies the connection. SQLite pools are pinned
// to one connection; maxOpenConns applies to PostgreSQL only.
func Open(ctx context.Context, dsn string, maxOpenConns int) (*Store, error) {
	t, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	if t.Path != "" {
		if _, err := filex.EnsureParentDir(t.Path); err != nil {
			return nil, fmt.Errorf("prepare database dir: %w", err)
		}
	}

	db, err := sql.Open(t.Driver, t.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t.Driver, err)
	}

	switch t.Driver {
	case DriverSQLite:
		db.SetMaxOpenConns(1)
	default:
		if maxOpenConns > 0 {
			db.SetMaxOpenConns(maxOpenConns)
			db.SetMaxIdleConns(maxOpenConns)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", t.Driver, err)
	}

	return &Store{db: db, target: t}, nil
}

// DB returns the pool.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect is the goose dialect matching the driver.
func (s *Store) Dialect() goose.Dialect { return s.target.Dialect }

// Driver is the database/sql driver name in use.
func (s *Store) Driver() string { return s.target.Driver }

func (s *Store) Close() error {
	return s.db.Close()
}
