package datasets

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

// Repository stores dataset headers and their append-only rows as flat
// records.
type Repository interface {
	Create(ctx context.Context, rec models.DatasetRecord) error
	Get(ctx context.Context, id string) (models.DatasetRecord, error)
	List(ctx context.Context) ([]models.DatasetRecord, error)
	Delete(ctx context.Context, id string) error
	Touch(ctx context.Context, id, updatedAt string) error
	AddRow(ctx context.Context, rec models.DatasetRowRecord) error
	ListRows(ctx context.Context, datasetID string) ([]models.DatasetRowRecord, error)
}
