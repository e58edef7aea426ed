package panels

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

// Repository works on flat panel rows; decoding into the typed graph is the
// caller's concern.
type Repository interface {
	Create(ctx context.Context, rec models.PanelRecord) error
	ListByBoard(ctx context.Context, boardID string) ([]models.PanelRecord, error)
	GetForUser(ctx context.Context, panelID, userID string) (models.PanelRecord, error)
	UpdateLayout(ctx context.Context, panelID string, pos models.Position, size models.Size, updatedAt string) error
	MaxZIndex(ctx context.Context, boardID string) (int, error)
	DeactivateAll(ctx context.Context, boardID, updatedAt string) error
	Activate(ctx context.Context, panelID string, zIndex int, updatedAt string) error
	DeleteForUser(ctx context.Context, panelID, userID string) error
}
