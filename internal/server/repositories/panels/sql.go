// Package panels stores the positioned panels of boards.
package panels

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

const panelColumns = `p.id, p.board_id, p.type, p.title, p.x, p.y, p.width, p.height,
		p.z_index, p.active, p.dataset_id, p.config, p.created_at, p.updated_at`

// Create inserts rec as given and stamps it with the next insertion sequence.
func (r *SQLRepository) Create(ctx context.Context, rec models.PanelRecord) error {
	query := `
		INSERT INTO panels (id, board_id, type, title, x, y, width, height,
			z_index, active, dataset_id, config, created_at, updated_at, seq)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM panels))
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.BoardID, rec.Type, rec.Title, rec.X, rec.Y, rec.Width, rec.Height,
		rec.ZIndex, rowcodec.BoolToInt(rec.Active), nullString(rec.DatasetID), rec.Config,
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return common.NewStoreError("create panel", err)
	}
	return nil
}

// ListByBoard returns the board's panels bottom to top. Panels sharing a
// z_index keep insertion order.
func (r *SQLRepository) ListByBoard(ctx context.Context, boardID string) ([]models.PanelRecord, error) {
	query := `
		SELECT ` + panelColumns + `
		FROM panels p
		WHERE p.board_id = $1
		ORDER BY p.z_index, p.seq, p.id
	`
	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, common.NewStoreError("list panels", err)
	}
	defer rows.Close()

	result := []models.PanelRecord{}
	for rows.Next() {
		rec, err := scanPanel(rows)
		if err != nil {
			return nil, common.NewStoreError("list panels", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("list panels", err)
	}
	return result, nil
}

// GetForUser returns common.ErrorNotFound unless the panel sits on a board
// owned by userID.
func (r *SQLRepository) GetForUser(ctx context.Context, panelID, userID string) (models.PanelRecord, error) {
	query := `
		SELECT ` + panelColumns + `
		FROM panels p
		JOIN boards b ON b.id = p.board_id
		WHERE p.id = $1 AND b.user_id = $2
	`
	rec, err := scanPanel(r.db.QueryRowContext(ctx, query, panelID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PanelRecord{}, common.ErrorNotFound
		}
		return models.PanelRecord{}, common.NewStoreError("get panel", err)
	}
	return rec, nil
}

// UpdateLayout stores a new position and size.
func (r *SQLRepository) UpdateLayout(ctx context.Context, panelID string, pos models.Position, size models.Size, updatedAt string) error {
	query := `
		UPDATE panels SET x = $1, y = $2, width = $3, height = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query, pos.X, pos.Y, size.Width, size.Height, updatedAt, panelID)
	if err != nil {
		return common.NewStoreError("update panel layout", err)
	}
	return expectOne("update panel layout", res)
}

// MaxZIndex returns the highest z_index on the board, 0 when it is empty.
func (r *SQLRepository) MaxZIndex(ctx context.Context, boardID string) (int, error) {
	query := `SELECT COALESCE(MAX(z_index), 0) FROM panels WHERE board_id = $1`

	var z int64
	if err := r.db.QueryRowContext(ctx, query, boardID).Scan(&z); err != nil {
		return 0, common.NewStoreError("max z_index", err)
	}
	return int(z), nil
}

// DeactivateAll clears the active flag on every panel of the board.
func (r *SQLRepository) DeactivateAll(ctx context.Context, boardID, updatedAt string) error {
	query := `UPDATE panels SET active = 0, updated_at = $1 WHERE board_id = $2 AND active <> 0`

	if _, err := r.db.ExecContext(ctx, query, updatedAt, boardID); err != nil {
		return common.NewStoreError("deactivate panels", err)
	}
	return nil
}

// Activate marks the panel active and moves it to zIndex.
func (r *SQLRepository) Activate(ctx context.Context, panelID string, zIndex int, updatedAt string) error {
	query := `UPDATE panels SET active = 1, z_index = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, zIndex, updatedAt, panelID)
	if err != nil {
		return common.NewStoreError("activate panel", err)
	}
	return expectOne("activate panel", res)
}

// DeleteForUser removes the panel if it sits on a board owned by userID.
func (r *SQLRepository) DeleteForUser(ctx context.Context, panelID, userID string) error {
	query := `
		DELETE FROM panels
		WHERE id = $1 AND board_id IN (SELECT id FROM boards WHERE user_id = $2)
	`
	res, err := r.db.ExecContext(ctx, query, panelID, userID)
	if err != nil {
		return common.NewStoreError("delete panel", err)
	}
	return expectOne("delete panel", res)
}

func expectOne(op string, res sql.Result) error {
	n, err := dbx.RowsAffected(res)
	if err != nil {
		return common.NewStoreError(op, err)
	}
	switch n {
	case 0:
		return common.ErrorNotFound
	case 1:
		return nil
	default:
		return common.NewStoreError(op, fmt.Errorf("unexpected rows affected: %d", n))
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPanel(s scanner) (models.PanelRecord, error) {
	var (
		rec       models.PanelRecord
		active    int64
		datasetID sql.NullString
	)
	err := s.Scan(&rec.ID, &rec.BoardID, &rec.Type, &rec.Title, &rec.X, &rec.Y, &rec.Width, &rec.Height,
		&rec.ZIndex, &active, &datasetID, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return models.PanelRecord{}, err
	}
	rec.Active = active != 0
	if datasetID.Valid {
		id := datasetID.String
		rec.DatasetID = &id
	}
	return rec, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
