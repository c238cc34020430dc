package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

// FileRepository keeps the high score list in a single JSON file.
// It is used by the client to keep scores between sessions.
type FileRepository struct {
	path    string
	lock    sync.Mutex
	entries []*fileEntry
	nextID  int64
}

type fileEntry struct {
	models.HighScore
	Replay []byte `json:"replay,omitempty"`
}

// NewFileRepository loads the list stored at path. A missing file is an empty list.
func NewFileRepository(path string) (Repository, error) {
	r := &FileRepository{
		path:    path,
		entries: make([]*fileEntry, 0),
		nextID:  1,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read high scores file: %v", err)
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, &r.entries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal high scores: %v", err)
		}
	}
	for _, e := range r.entries {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	r.sort()

	return r, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) ListHighScores(ctx context.Context, limit int) ([]*models.HighScore, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	n := len(r.entries)
	if limit > 0 && limit < n {
		n = limit
	}

	highScores := make([]*models.HighScore, n)
	for i := 0; i < n; i++ {
		hs := r.entries[i].HighScore
		highScores[i] = &hs
	}

	return highScores, nil
}

func (r *FileRepository) GetHighScore(ctx context.Context, id int64) (*models.HighScore, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, e := range r.entries {
		if e.ID == id {
			hs := e.HighScore
			hs.Replay = e.Replay
			return &hs, nil
		}
	}

	return nil, &ErrNotFound{}
}

func (r *FileRepository) SaveHighScore(ctx context.Context, highScore *models.HighScore) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if highScore.ReplayID != "" {
		for _, e := range r.entries {
			if e.ReplayID == highScore.ReplayID {
				return &ErrDuplicate{ReplayID: highScore.ReplayID}
			}
		}
	}

	if highScore.CreatedAt == 0 {
		highScore.CreatedAt = time.Now().UnixMilli()
	}
	highScore.ID = r.nextID

	e := &fileEntry{HighScore: *highScore, Replay: highScore.Replay}
	e.HighScore.Replay = nil
	r.entries = append(r.entries, e)
	r.sort()

	if err := r.write(); err != nil {
		r.entries = r.remove(e.ID)
		highScore.ID = 0
		return err
	}
	r.nextID++

	return nil
}

func (r *FileRepository) PruneHighScores(ctx context.Context, keep int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if keep < 0 || len(r.entries) <= keep {
		return nil
	}

	entries := r.entries
	r.entries = entries[:keep:keep]
	if err := r.write(); err != nil {
		r.entries = entries
		return err
	}

	return nil
}

// sort orders the entries by score, ties by id.
func (r *FileRepository) sort() {
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].Score != r.entries[j].Score {
			return r.entries[i].Score > r.entries[j].Score
		}
		return r.entries[i].ID < r.entries[j].ID
	})
}

func (r *FileRepository) remove(id int64) []*fileEntry {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return kept
}

// write replaces the file with the current entries through a temporary file
// in the same directory.
func (r *FileRepository) write() error {
	b, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %v", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create high scores directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high scores: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %v", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace high scores file: %v", err)
	}

	return nil
}
