package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T, r Repository) {
	ctx := context.Background()

	list, err := r.ListHighScores(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	entries := []*models.HighScore{
		{Name: "alice", Score: 300, Level: 1, Lines: 2},
		{Name: "bob", Score: 500, Level: 2, Lines: 5, ReplayID: "replay-1", Replay: []byte{1, 2, 3}},
		{Name: "carol", Score: 300, Level: 0, Lines: 4},
		{Name: "dave", Score: 100},
	}
	for _, e := range entries {
		require.NoError(t, r.SaveHighScore(ctx, e))
		assert.NotZero(t, e.ID)
		assert.NotZero(t, e.CreatedAt)
	}

	duplicate := &models.HighScore{Name: "mallory", Score: 900, ReplayID: "replay-1", Replay: []byte{1, 2, 3}}
	err = r.SaveHighScore(ctx, duplicate)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err), "unexpected error: %v", err)

	list, err = r.ListHighScores(ctx, 0)
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, hs := range list {
		names[i] = hs.Name
		assert.Nil(t, hs.Replay)
	}
	assert.Equal(t, []string{"bob", "alice", "carol", "dave"}, names)
	assert.Equal(t, 5, list[0].Lines)
	assert.Equal(t, "replay-1", list[0].ReplayID)

	list, err = r.ListHighScores(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	hs, err := r.GetHighScore(ctx, entries[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", hs.Name)
	assert.Equal(t, []byte{1, 2, 3}, hs.Replay)

	_, err = r.GetHighScore(ctx, 9999)
	assert.True(t, IsNotFound(err))

	require.NoError(t, r.PruneHighScores(ctx, 2))
	list, err = r.ListHighScores(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].Name)
	assert.Equal(t, "alice", list[1].Name)

	_, err = r.GetHighScore(ctx, entries[2].ID)
	assert.True(t, IsNotFound(err))
}

func TestFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "highscores.json")
	r, err := NewFileRepository(path)
	require.NoError(t, err)

	testRepository(t, r)

	// entries survive a reload and ids keep increasing
	reloaded, err := NewFileRepository(path)
	require.NoError(t, err)
	list, err := reloaded.ListHighScores(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bob", list[0].Name)

	hs, err := reloaded.GetHighScore(context.Background(), list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, hs.Replay)

	next := &models.HighScore{Name: "erin", Score: 1000}
	require.NoError(t, reloaded.SaveHighScore(context.Background(), next))
	assert.Greater(t, next.ID, list[1].ID)
	assert.Greater(t, next.ID, list[0].ID)
}

func TestFileRepository_PruneHighScores_writeFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scores")
	r, err := NewFileRepository(filepath.Join(dir, "highscores.json"))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, r.SaveHighScore(ctx, &models.HighScore{Name: "player", Score: i * 100}))
	}

	// a file in place of the directory makes every write fail
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, nil, 0o644))

	assert.Error(t, r.PruneHighScores(ctx, 1))

	list, err := r.ListHighScores(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestFileRepository_corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileRepository(path)
	assert.Error(t, err)
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	r, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "blockdrop.db"), "../../migrations/sqlite")
	require.NoError(t, err)
	defer r.Close(ctx)

	testRepository(t, r)
}

func TestSQLiteRepository_missingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "blockdrop.db"), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPostgresRepository(t *testing.T) {
	connStr := os.Getenv("BLOCKDROP_TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("BLOCKDROP_TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	r, err := NewPostgresRepository(ctx, connStr, "../../migrations/postgres")
	require.NoError(t, err)
	defer r.Close(ctx)

	require.NoError(t, r.PruneHighScores(ctx, 0))
	testRepository(t, r)
}
