package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the migrations found in
// the migrations directory. The caller is responsible for calling Close() on the repository.
func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	ms, err := readMigrations(migrations)
	if err != nil {
		db.Close()
		return nil, err
	}

	for _, m := range ms {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
		log.Debug("Applied migration %s", m.name)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) ListHighScores(ctx context.Context, limit int) ([]*models.HighScore, error) {
	if limit <= 0 {
		limit = -1
	}

	q := `
	SELECT id, name, score, level, lines, created_at, replay_id FROM highscores
	ORDER BY score DESC, id ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %v", err)
	}
	defer rows.Close()

	highScores := make([]*models.HighScore, 0)
	for rows.Next() {
		hs := &models.HighScore{}
		if err := rows.Scan(&hs.ID, &hs.Name, &hs.Score, &hs.Level, &hs.Lines, &hs.CreatedAt, &hs.ReplayID); err != nil {
			return nil, fmt.Errorf("failed to scan high score: %v", err)
		}
		highScores = append(highScores, hs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate high scores: %v", err)
	}

	return highScores, nil
}

func (r *SQLiteRepository) GetHighScore(ctx context.Context, id int64) (*models.HighScore, error) {
	q := `
	SELECT id, name, score, level, lines, created_at, replay_id, replay FROM highscores WHERE id = ?;
	`
	hs := &models.HighScore{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&hs.ID, &hs.Name, &hs.Score, &hs.Level, &hs.Lines, &hs.CreatedAt, &hs.ReplayID, &hs.Replay)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return hs, nil
}

func (r *SQLiteRepository) SaveHighScore(ctx context.Context, highScore *models.HighScore) error {
	if highScore.CreatedAt == 0 {
		highScore.CreatedAt = time.Now().UnixMilli()
	}

	q := `
	INSERT INTO highscores (name, score, level, lines, created_at, replay_id, replay)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, q, highScore.Name, highScore.Score, highScore.Level, highScore.Lines, highScore.CreatedAt, highScore.ReplayID, highScore.Replay)
	if err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return &ErrDuplicate{ReplayID: highScore.ReplayID}
		}
		return fmt.Errorf("failed to insert high score: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get high score id: %v", err)
	}
	highScore.ID = id

	return nil
}

func (r *SQLiteRepository) PruneHighScores(ctx context.Context, keep int) error {
	q := `
	DELETE FROM highscores WHERE id NOT IN (
		SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?
	);
	`
	result, err := r.db.ExecContext(ctx, q, keep)
	if err != nil {
		return fmt.Errorf("failed to prune high scores: %v", err)
	}

	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Debug("Pruned %d high scores", n)
	}

	return nil
}
