// Package datasets stores globally shared datasets and their rows.
package datasets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, rec models.DatasetRecord) error {
	query := `
		INSERT INTO global_datasets (id, name, type, columns, created_at, updated_at, seq)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT COALESCE(MAX(seq), 0) + 1 FROM global_datasets))
	`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Name, rec.Type, rec.Columns, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return common.NewStoreError("create dataset", err)
	}
	return nil
}

// Get returns common.ErrorNotFound when no dataset has the id.
func (r *SQLRepository) Get(ctx context.Context, id string) (models.DatasetRecord, error) {
	query := `
		SELECT id, name, type, columns, created_at, updated_at FROM global_datasets
		WHERE id = $1
	`
	var rec models.DatasetRecord
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.Name, &rec.Type, &rec.Columns, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DatasetRecord{}, common.ErrorNotFound
		}
		return models.DatasetRecord{}, common.NewStoreError("get dataset", err)
	}
	return rec, nil
}

// List returns all datasets newest first.
func (r *SQLRepository) List(ctx context.Context) ([]models.DatasetRecord, error) {
	query := `
		SELECT id, name, type, columns, created_at, updated_at FROM global_datasets
		ORDER BY created_at DESC, seq DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStoreError("list datasets", err)
	}
	defer rows.Close()

	result := []models.DatasetRecord{}
	for rows.Next() {
		var rec models.DatasetRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Type, &rec.Columns, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, common.NewStoreError("list datasets", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("list datasets", err)
	}
	return result, nil
}

// Delete removes the dataset; its rows go with it through the foreign key
// cascade. Panels bound to it keep their dataset_id.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM global_datasets WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return common.NewStoreError("delete dataset", err)
	}
	n, err := dbx.RowsAffected(res)
	if err != nil {
		return common.NewStoreError("delete dataset", err)
	}
	switch n {
	case 0:
		return common.ErrorNotFound
	case 1:
		return nil
	default:
		return common.NewStoreError("delete dataset", fmt.Errorf("unexpected rows affected: %d", n))
	}
}

// Touch bumps updated_at.
func (r *SQLRepository) Touch(ctx context.Context, id, updatedAt string) error {
	query := `UPDATE global_datasets SET updated_at = $1 WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, updatedAt, id); err != nil {
		return common.NewStoreError("touch dataset", err)
	}
	return nil
}

func (r *SQLRepository) AddRow(ctx context.Context, rec models.DatasetRowRecord) error {
	query := `
		INSERT INTO dataset_data (id, dataset_id, data, created_at, seq)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(seq), 0) + 1 FROM dataset_data))
	`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.DatasetID, rec.Data, rec.CreatedAt)
	if err != nil {
		return common.NewStoreError("add dataset row", err)
	}
	return nil
}

// ListRows returns the dataset's rows newest first, payloads undecoded. Rows
// stored in the same instant come latest insert first.
func (r *SQLRepository) ListRows(ctx context.Context, datasetID string) ([]models.DatasetRowRecord, error) {
	query := `
		SELECT id, dataset_id, data, created_at FROM dataset_data
		WHERE dataset_id = $1
		ORDER BY created_at DESC, seq DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, datasetID)
	if err != nil {
		return nil, common.NewStoreError("list dataset rows", err)
	}
	defer rows.Close()

	result := []models.DatasetRowRecord{}
	for rows.Next() {
		var rec models.DatasetRowRecord
		if err := rows.Scan(&rec.ID, &rec.DatasetID, &rec.Data, &rec.CreatedAt); err != nil {
			return nil, common.NewStoreError("list dataset rows", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("list dataset rows", err)
	}
	return result, nil
}
