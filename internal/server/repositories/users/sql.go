// Package users stores registered accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/rowcodec"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create inserts user as given; the caller assigns ID and timestamps. A
// taken username or email yields a StoreError that also matches
// common.ErrorConflict.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.UserName, user.Email, user.PasswordHash,
		rowcodec.FormatTime(user.CreatedAt), rowcodec.FormatTime(user.UpdatedAt))

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			err = fmt.Errorf("%w: %w", common.ErrorConflict, err)
		}
		return nil, common.NewStoreError("create user", err)
	}

	return user, nil
}

func (r *SQLRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at, updated_at FROM users
		 WHERE username = $1
		 `

	return r.get(ctx, "get user by login", query, userName)
}

func (r *SQLRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at, updated_at FROM users
		 WHERE id = $1
		 `

	return r.get(ctx, "get user by id", query, id)
}

func (r *SQLRepository) get(ctx context.Context, op, query string, arg string) (*models.User, error) {
	var (
		user             models.User
		created, updated string
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &created, &updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, common.NewStoreError(op, err)
	}

	if user.CreatedAt, err = rowcodec.ParseTime(created); err != nil {
		return nil, common.NewStoreError(op, err)
	}
	if user.UpdatedAt, err = rowcodec.ParseTime(updated); err != nil {
		return nil, common.NewStoreError(op, err)
	}

	return &user, nil
}
