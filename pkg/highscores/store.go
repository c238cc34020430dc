package highscores

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

// Store keeps the top NoOfHighScores entries in a repository.
type Store struct {
	repository repositories.Repository
	// lock serializes submissions so the qualification check and the save agree
	lock sync.Mutex
}

func NewStore(repository repositories.Repository) *Store {
	return &Store{
		repository: repository,
	}
}

// List returns the high score list, highest first.
func (s *Store) List(ctx context.Context) ([]*models.HighScore, error) {
	list, err := s.repository.ListHighScores(ctx, constants.NoOfHighScores)
	if err != nil {
		return nil, fmt.Errorf("failed to list high scores: %v", err)
	}
	return list, nil
}

// Submit validates the entry and adds it to the list when it qualifies,
// returning its 1-based rank. Entries that do not beat the lowest score
// return ErrNotQualified, a replay that is already on the list returns
// repositories.ErrDuplicate.
func (s *Store) Submit(ctx context.Context, entry *models.HighScore) (int, error) {
	if err := Validate(entry); err != nil {
		return 0, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	if !Qualifies(list, entry.Score) {
		return 0, &ErrNotQualified{Score: entry.Score, Lowest: Lowest(list)}
	}

	if err := s.repository.SaveHighScore(ctx, entry); err != nil {
		if repositories.IsDuplicate(err) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to save high score: %v", err)
	}

	if err := s.repository.PruneHighScores(ctx, constants.NoOfHighScores); err != nil {
		log.Warn("Failed to prune high scores: %v", err)
	}

	_, rank := Insert(list, entry)
	log.Info("High score %d by %s at rank %d", entry.Score, entry.Name, rank)

	return rank, nil
}
