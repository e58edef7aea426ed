package boards

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

// Repository reads and writes board headers. Every lookup is scoped to the
// owning user; panels are not touched.
type Repository interface {
	Create(ctx context.Context, board *models.Board) error
	GetForUser(ctx context.Context, boardID, userID string) (*models.Board, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Board, error)
	DeleteForUser(ctx context.Context, boardID, userID string) error
}
