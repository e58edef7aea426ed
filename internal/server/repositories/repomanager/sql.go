// Package repomanager provides the concrete RepositoryManager, wiring
// together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/boards"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/panels"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends repositories whose SQL runs on both PostgreSQL
// and SQLite, and applies the schema for the configured dialect.
type SQLRepositoryManager struct {
	dialect goose.Dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Boards returns a boards.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Boards(db dbx.DBTX) boards.Repository {
	return boards.NewSQLRepository(db)
}

// Panels returns a panels.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Panels(db dbx.DBTX) panels.Repository {
	return panels.NewSQLRepository(db)
}

// Datasets returns a datasets.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Datasets(db dbx.DBTX) datasets.Repository {
	return datasets.NewSQLRepository(db)
}

type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
}

// newMigrator is a seam for testing the goose provider.
var newMigrator = func(dialect goose.Dialect, db *sql.DB) (migrator, error) {
	return goose.NewProvider(dialect, db, migrations.Migrations)
}

// RunMigrations applies every pending embedded migration. It is idempotent.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := newMigrator(m.dialect, db)
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the dialect of
// the opened store.
func NewSQLRepositoryManager(dialect goose.Dialect) (RepositoryManager, error) {
	switch dialect {
	case goose.DialectPostgres, goose.DialectSQLite3:
		return &SQLRepositoryManager{dialect: dialect}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
