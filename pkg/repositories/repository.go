package repositories

import (
	"context"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

// Repository stores the high score list. Lists are ordered by score,
// highest first, with ties kept in insertion order.
type Repository interface {
	Close(ctx context.Context) error
	// ListHighScores returns at most limit entries, all of them when limit <= 0.
	ListHighScores(ctx context.Context, limit int) ([]*models.HighScore, error)
	// GetHighScore returns the entry with its replay, or ErrNotFound.
	GetHighScore(ctx context.Context, id int64) (*models.HighScore, error)
	// SaveHighScore inserts the entry and sets its ID, and its CreatedAt when unset.
	SaveHighScore(ctx context.Context, highScore *models.HighScore) error
	// PruneHighScores deletes every entry ranked below keep.
	PruneHighScores(ctx context.Context, keep int) error
}
