package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/boards"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/panels"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Boards(db dbx.DBTX) boards.Repository
	Panels(db dbx.DBTX) panels.Repository
	Datasets(db dbx.DBTX) datasets.Repository
}
