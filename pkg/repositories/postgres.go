package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE of a unique constraint violation
const uniqueViolation = "23505"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository and applies the migrations
// found in the migrations directory.
// It panics if it is unable to connect to the database.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	pool := connectDb(ctx, connStr)

	ms, err := readMigrations(migrations)
	if err != nil {
		pool.Close()
		return nil, err
	}

	for _, m := range ms {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
		log.Debug("Applied migration %s", m.name)
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func connectDb(ctx context.Context, connStr string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		panic(fmt.Sprintf("Unable to connect to database: %v\n", err))
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		panic(fmt.Sprintf("Unable to query database: %v\n", err))
	}

	log.Info("Connected to %s as %s", database, username)

	return pool
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) ListHighScores(ctx context.Context, limit int) ([]*models.HighScore, error) {
	q := `
	SELECT id, name, score, level, lines, created_at, replay_id FROM highscores
	ORDER BY score DESC, id ASC
	`
	args := []interface{}{}
	if limit > 0 {
		q += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
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

func (r *PostgresRepository) GetHighScore(ctx context.Context, id int64) (*models.HighScore, error) {
	q := `
	SELECT id, name, score, level, lines, created_at, replay_id, replay FROM highscores WHERE id = $1;
	`
	hs := &models.HighScore{}
	err := r.pool.QueryRow(ctx, q, id).Scan(&hs.ID, &hs.Name, &hs.Score, &hs.Level, &hs.Lines, &hs.CreatedAt, &hs.ReplayID, &hs.Replay)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan high score: %v", err)
	}

	return hs, nil
}

func (r *PostgresRepository) SaveHighScore(ctx context.Context, highScore *models.HighScore) error {
	if highScore.CreatedAt == 0 {
		highScore.CreatedAt = time.Now().UnixMilli()
	}

	q := `
	INSERT INTO highscores (name, score, level, lines, created_at, replay_id, replay)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;
	`
	err := r.pool.QueryRow(ctx, q, highScore.Name, highScore.Score, highScore.Level, highScore.Lines, highScore.CreatedAt, highScore.ReplayID, highScore.Replay).Scan(&highScore.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &ErrDuplicate{ReplayID: highScore.ReplayID}
		}
		return fmt.Errorf("failed to insert high score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) PruneHighScores(ctx context.Context, keep int) error {
	q := `
	DELETE FROM highscores WHERE id NOT IN (
		SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT $1
	);
	`
	tag, err := r.pool.Exec(ctx, q, keep)
	if err != nil {
		return fmt.Errorf("failed to prune high scores: %v", err)
	}

	if n := tag.RowsAffected(); n > 0 {
		log.Debug("Pruned %d high scores", n)
	}

	return nil
}
