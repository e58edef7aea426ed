package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/boardkeeper/internal/server/rowcodec"
	"github.com/google/uuid"
)

// DatasetService manages globally shared datasets. Datasets have no owner;
// any caller may read, extend or delete them.
type DatasetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewDatasetService(db *sql.DB, m repomanager.RepositoryManager, opts ...Option) *DatasetService {
	o := newOptions("dataset_service", opts)
	return &DatasetService{
		db:          db,
		repomanager: m,
		logger:      o.logger,
		now:         o.now,
	}
}

// ListDatasets returns every dataset newest first, rows included.
func (s *DatasetService) ListDatasets(ctx context.Context) ([]models.GlobalDataset, error) {
	repo := s.repomanager.Datasets(s.db)

	recs, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.GlobalDataset, 0, len(recs))
	for _, rec := range recs {
		ds, err := s.materialize(ctx, repo, rec)
		if err != nil {
			return nil, err
		}
		result = append(result, *ds)
	}
	return result, nil
}

// GetDataset returns common.ErrorNotFound for unknown ids.
func (s *DatasetService) GetDataset(ctx context.Context, id string) (*models.GlobalDataset, error) {
	repo := s.repomanager.Datasets(s.db)

	rec, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.materialize(ctx, repo, rec)
}

// ResolveForPanel loads the dataset bound to a panel. Board assembly calls
// it once per bound panel.
func (s *DatasetService) ResolveForPanel(ctx context.Context, datasetID string) (*models.GlobalDataset, error) {
	return s.GetDataset(ctx, datasetID)
}

// CreateDataset stores a new, empty dataset. Columns are kept in the given
// order and are not checked against rows added later.
func (s *DatasetService) CreateDataset(ctx context.Context, name, typ string, columns []string) (*models.GlobalDataset, error) {
	cols, err := rowcodec.EncodeColumns(columns)
	if err != nil {
		return nil, err
	}

	now := rowcodec.FormatTime(s.now())
	rec := models.DatasetRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      typ,
		Columns:   cols,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repomanager.Datasets(s.db).Create(ctx, rec); err != nil {
		return nil, err
	}

	ds, err := rowcodec.DatasetFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

// AddDatasetRow appends payload to the dataset and then bumps the dataset's
// updated_at. The two writes are separate: when only the second fails the
// row is kept and returned.
func (s *DatasetService) AddDatasetRow(ctx context.Context, datasetID string, payload models.JSON) (*models.DatasetRow, error) {
	repo := s.repomanager.Datasets(s.db)

	if _, err := repo.Get(ctx, datasetID); err != nil {
		return nil, err
	}

	data, err := rowcodec.EncodeJSON(payload)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := models.DatasetRowRecord{
		ID:        uuid.NewString(),
		DatasetID: datasetID,
		Data:      data,
		CreatedAt: rowcodec.FormatTime(now),
	}

	if err := repo.AddRow(ctx, rec); err != nil {
		return nil, err
	}

	if err := repo.Touch(ctx, datasetID, rec.CreatedAt); err != nil {
		s.logger.Warn(ctx, "dataset touch failed", "dataset_id", datasetID, "error", err)
	}

	row, ok := rowcodec.DatasetRowFromRecord(rec)
	if !ok {
		return nil, common.ErrorInternal
	}
	return &row, nil
}

// DeleteDataset removes the dataset and its rows. Panels bound to it stay
// and are rendered without data.
func (s *DatasetService) DeleteDataset(ctx context.Context, id string) error {
	return s.repomanager.Datasets(s.db).Delete(ctx, id)
}

// materialize attaches rows newest first. Rows whose stored payload cannot
// be decoded are skipped.
func (s *DatasetService) materialize(ctx context.Context, repo datasets.Repository, rec models.DatasetRecord) (*models.GlobalDataset, error) {
	ds, err := rowcodec.DatasetFromRecord(rec)
	if err != nil {
		return nil, common.NewStoreError("decode dataset", fmt.Errorf("dataset %s: %v", rec.ID, err))
	}

	rows, err := repo.ListRows(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		row, ok := rowcodec.DatasetRowFromRecord(r)
		if !ok {
			s.logger.Warn(ctx, "dropping malformed dataset row", "dataset_id", rec.ID, "row_id", r.ID)
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}

	return &ds, nil
}
