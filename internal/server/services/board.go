package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/boardkeeper/internal/server/rowcodec"
	"github.com/google/uuid"
)

// DatasetResolver loads the dataset bound to one panel. Board assembly
// calls it once per bound panel, one round trip each.
type DatasetResolver interface {
	ResolveForPanel(ctx context.Context, datasetID string) (*models.GlobalDataset, error)
}

// BoardService owns boards and their panels and composes them, with bound
// datasets, into the response graph. Every operation is scoped to the
// calling user.
type BoardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	datasets    DatasetResolver
	logger      logging.Logger
	now         func() time.Time
}

func NewBoardService(db *sql.DB, m repomanager.RepositoryManager, datasets DatasetResolver, opts ...Option) *BoardService {
	o := newOptions("board_service", opts)
	return &BoardService{
		db:          db,
		repomanager: m,
		datasets:    datasets,
		logger:      o.logger,
		now:         o.now,
	}
}

// ListBoards returns the user's boards newest first with panels assembled.
// A failure on any board fails the whole call.
func (s *BoardService) ListBoards(ctx context.Context, userID string) ([]models.Board, error) {
	boards, err := s.repomanager.Boards(s.db).ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Board, 0, len(boards))
	for _, b := range boards {
		if b.Panels, err = s.assemblePanels(ctx, b.ID); err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, nil
}

// GetBoard returns common.ErrorNotFound when the board is missing or owned
// by someone else.
func (s *BoardService) GetBoard(ctx context.Context, boardID, userID string) (*models.Board, error) {
	b, err := s.repomanager.Boards(s.db).GetForUser(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}
	if b.Panels, err = s.assemblePanels(ctx, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, userID, title, description, icon, color string) (*models.Board, error) {
	now := s.now()
	b := &models.Board{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Icon:        icon,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
		Panels:      []models.Panel{},
	}

	if err := s.repomanager.Boards(s.db).Create(ctx, b); err != nil {
		return nil, err
	}

	return s.GetBoard(ctx, b.ID, userID)
}

// DeleteBoard removes the board with its panels.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, userID string) error {
	return s.repomanager.Boards(s.db).DeleteForUser(ctx, boardID, userID)
}

// CreatePanel adds an inactive panel to a board the user owns. A missing or
// foreign board is reported as common.ErrorUnauthorized. Config defaults to
// {} and must be a JSON object when given.
func (s *BoardService) CreatePanel(ctx context.Context, userID string, in models.CreatePanelInput) (*models.Panel, error) {
	if _, err := s.repomanager.Boards(s.db).GetForUser(ctx, in.BoardID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	cfg, err := rowcodec.NormalizeConfig(in.Config)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec, err := rowcodec.PanelToRecord(models.Panel{
		ID:        uuid.NewString(),
		BoardID:   in.BoardID,
		Type:      in.Type,
		Title:     in.Title,
		Position:  in.Position,
		Size:      in.Size,
		ZIndex:    in.ZIndex,
		Active:    false,
		DatasetID: in.DatasetID,
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repomanager.Panels(s.db).Create(ctx, rec); err != nil {
		return nil, err
	}

	return s.composePanel(ctx, rec)
}

// UpdatePanelLayout moves and resizes a panel. The size is clamped to the
// preset bounds of the panel type.
func (s *BoardService) UpdatePanelLayout(ctx context.Context, userID, panelID string, pos models.Position, size models.Size) (*models.Panel, error) {
	repo := s.repomanager.Panels(s.db)

	rec, err := repo.GetForUser(ctx, panelID, userID)
	if err != nil {
		return nil, err
	}

	size = ClampPanelSize(rec.Type, size)
	updated := rowcodec.FormatTime(s.now())

	if err := repo.UpdateLayout(ctx, panelID, pos, size, updated); err != nil {
		return nil, err
	}

	rec.X, rec.Y = pos.X, pos.Y
	rec.Width, rec.Height = size.Width, size.Height
	rec.UpdatedAt = updated

	return s.composePanel(ctx, rec)
}

// ActivatePanel makes the panel the only active one on its board and brings
// it to the front.
func (s *BoardService) ActivatePanel(ctx context.Context, userID, panelID string) (*models.Panel, error) {
	var rec models.PanelRecord

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Panels(tx)

		var err error
		if rec, err = repo.GetForUser(ctx, panelID, userID); err != nil {
			return err
		}

		top, err := repo.MaxZIndex(ctx, rec.BoardID)
		if err != nil {
			return err
		}

		updated := rowcodec.FormatTime(s.now())
		if err := repo.DeactivateAll(ctx, rec.BoardID, updated); err != nil {
			return err
		}
		if err := repo.Activate(ctx, panelID, top+1, updated); err != nil {
			return err
		}

		rec.Active = true
		rec.ZIndex = top + 1
		rec.UpdatedAt = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.composePanel(ctx, rec)
}

// DeletePanel removes a panel from a board the user owns.
func (s *BoardService) DeletePanel(ctx context.Context, userID, panelID string) error {
	return s.repomanager.Panels(s.db).DeleteForUser(ctx, panelID, userID)
}

// assemblePanels reads the board's panels bottom to top, then resolves bound
// datasets one panel at a time. The panel result set is fully read before
// the first dataset query runs.
func (s *BoardService) assemblePanels(ctx context.Context, boardID string) ([]models.Panel, error) {
	recs, err := s.repomanager.Panels(s.db).ListByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	result := make([]models.Panel, 0, len(recs))
	for _, rec := range recs {
		p, err := s.composePanel(ctx, rec)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, nil
}

// composePanel decodes rec and attaches its dataset. A dataset that cannot
// be resolved leaves Data nil; the panel is still returned.
func (s *BoardService) composePanel(ctx context.Context, rec models.PanelRecord) (*models.Panel, error) {
	p, err := rowcodec.PanelFromRecord(rec)
	if err != nil {
		return nil, common.NewStoreError("decode panel", fmt.Errorf("panel %s: %v", rec.ID, err))
	}

	if p.DatasetID != nil && s.datasets != nil {
		ds, err := s.datasets.ResolveForPanel(ctx, *p.DatasetID)
		if err != nil {
			s.logger.Warn(ctx, "panel dataset not resolved",
				"panel_id", p.ID, "dataset_id", *p.DatasetID, "error", err)
		} else {
			p.Data = ds
		}
	}

	return &p, nil
}
