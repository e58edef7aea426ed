// Package boards stores user-owned board headers.
package boards

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

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

// Create inserts board; the caller assigns ID and timestamps.
func (r *SQLRepository) Create(ctx context.Context, board *models.Board) error {
	query := `
		INSERT INTO boards (id, user_id, title, description, icon, color, created_at, updated_at, seq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, (SELECT COALESCE(MAX(seq), 0) + 1 FROM boards))
	`
	_, err := r.db.ExecContext(ctx, query,
		board.ID, board.UserID, board.Title, board.Description, board.Icon, board.Color,
		rowcodec.FormatTime(board.CreatedAt), rowcodec.FormatTime(board.UpdatedAt))
	if err != nil {
		return common.NewStoreError("create board", err)
	}
	return nil
}

// GetForUser returns common.ErrorNotFound when the board does not exist or
// belongs to another user.
func (r *SQLRepository) GetForUser(ctx context.Context, boardID, userID string) (*models.Board, error) {
	query := `
		SELECT id, user_id, title, description, icon, color, created_at, updated_at FROM boards
		WHERE id = $1 AND user_id = $2
	`
	b, err := scanBoard(r.db.QueryRowContext(ctx, query, boardID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, common.NewStoreError("get board", err)
	}
	return b, nil
}

// ListForUser returns the user's boards newest first; boards created in the
// same instant come latest insert first.
func (r *SQLRepository) ListForUser(ctx context.Context, userID string) ([]*models.Board, error) {
	query := `
		SELECT id, user_id, title, description, icon, color, created_at, updated_at FROM boards
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, common.NewStoreError("list boards", err)
	}
	defer rows.Close()

	result := []*models.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, common.NewStoreError("list boards", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("list boards", err)
	}
	return result, nil
}

// DeleteForUser removes the board and, by cascade, its panels.
func (r *SQLRepository) DeleteForUser(ctx context.Context, boardID, userID string) error {
	query := `DELETE FROM boards WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, boardID, userID)
	if err != nil {
		return common.NewStoreError("delete board", err)
	}
	n, err := dbx.RowsAffected(res)
	if err != nil {
		return common.NewStoreError("delete board", err)
	}
	switch n {
	case 0:
		return common.ErrorNotFound
	case 1:
		return nil
	default:
		return common.NewStoreError("delete board", fmt.Errorf("unexpected rows affected: %d", n))
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(s scanner) (*models.Board, error) {
	var (
		b                models.Board
		created, updated string
		err              error
	)
	if err = s.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Icon, &b.Color, &created, &updated); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = rowcodec.ParseTime(created); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = rowcodec.ParseTime(updated); err != nil {
		return nil, err
	}
	b.Panels = []models.Panel{}
	return &b, nil
}
