package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	repositorymocks "github.com/cbodonnell/blockdrop/mocks/github.com/cbodonnell/blockdrop/pkg/repositories"
	mocks "github.com/cbodonnell/blockdrop/mocks/github.com/cbodonnell/blockdrop/pkg/workers"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fullList(lowest int) []*models.HighScore {
	list := make([]*models.HighScore, 0, 10)
	for i := 0; i < 10; i++ {
		list = append(list, &models.HighScore{ID: int64(i + 1), Name: "cpu", Score: lowest + (9-i)*100})
	}
	return list
}

func TestSaveHighScoreWorker(t *testing.T) {
	tests := []struct {
		name          string
		entry         *models.HighScore
		setup         func(repo *repositorymocks.Repository, submitter *mocks.HighScoreSubmitter)
		withSubmitter bool
		want          SaveHighScoreResult
		wantLocalErr  bool
		wantRemoteErr bool
	}{
		{
			name:  "saved locally",
			entry: &models.HighScore{Name: "alice", Score: 500},
			setup: func(repo *repositorymocks.Repository, submitter *mocks.HighScoreSubmitter) {
				repo.EXPECT().ListHighScores(mock.Anything, 10).Return(nil, nil).Once()
				repo.EXPECT().SaveHighScore(mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().PruneHighScores(mock.Anything, 10).Return(nil).Once()
			},
			want: SaveHighScoreResult{LocalRank: 1},
		},
		{
			name:  "saved locally and remotely",
			entry: &models.HighScore{Name: "alice", Score: 550, Level: 1, Lines: 3},
			setup: func(repo *repositorymocks.Repository, submitter *mocks.HighScoreSubmitter) {
				repo.EXPECT().ListHighScores(mock.Anything, 10).Return(fullList(100), nil).Once()
				repo.EXPECT().SaveHighScore(mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().PruneHighScores(mock.Anything, 10).Return(nil).Once()
				submitter.EXPECT().SubmitHighScore(mock.Anything, &messages.SubmitHighScoreRequest{
					Name:   "alice",
					Score:  550,
					Level:  1,
					Lines:  3,
					Replay: []byte("replay"),
				}).Return(&messages.SubmitHighScoreResponse{Accepted: true, Rank: 7}, nil).Once()
			},
			withSubmitter: true,
			want:          SaveHighScoreResult{LocalRank: 6, RemoteRank: 7},
		},
		{
			name:  "not qualified anywhere",
			entry: &models.HighScore{Name: "alice", Score: 100},
			setup: func(repo *repositorymocks.Repository, submitter *mocks.HighScoreSubmitter) {
				repo.EXPECT().ListHighScores(mock.Anything, 10).Return(fullList(100), nil).Once()
				submitter.EXPECT().SubmitHighScore(mock.Anything, mock.Anything).
					Return(&messages.SubmitHighScoreResponse{Accepted: false, Reason: "score too low"}, nil).Once()
			},
			withSubmitter: true,
			want:          SaveHighScoreResult{},
		},
		{
			name:  "local and remote failures",
			entry: &models.HighScore{Name: "alice", Score: 500},
			setup: func(repo *repositorymocks.Repository, submitter *mocks.HighScoreSubmitter) {
				repo.EXPECT().ListHighScores(mock.Anything, 10).Return(nil, errors.New("disk full")).Once()
				submitter.EXPECT().SubmitHighScore(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			withSubmitter: true,
			wantLocalErr:  true,
			wantRemoteErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repositorymocks.NewRepository(t)
			submitter := mocks.NewHighScoreSubmitter(t)
			tt.setup(repo, submitter)

			opts := NewSaveHighScoreWorkerOptions{Store: highscores.NewStore(repo)}
			if tt.withSubmitter {
				opts.Submitter = submitter
			}
			w := NewSaveHighScoreWorker(opts)

			result := w.save(context.Background(), &SaveHighScoreRequest{Entry: tt.entry, Replay: []byte("replay")})

			assert.Same(t, tt.entry, result.Entry)
			assert.Equal(t, tt.want.LocalRank, result.LocalRank)
			assert.Equal(t, tt.want.RemoteRank, result.RemoteRank)
			assert.Equal(t, tt.wantLocalErr, result.LocalErr != nil)
			assert.Equal(t, tt.wantRemoteErr, result.RemoteErr != nil)
		})
	}
}

func TestSaveHighScoreWorker_Start(t *testing.T) {
	repo := repositorymocks.NewRepository(t)
	repo.EXPECT().ListHighScores(mock.Anything, 10).Return(nil, nil).Once()
	repo.EXPECT().SaveHighScore(mock.Anything, mock.Anything).Return(nil).Once()
	repo.EXPECT().PruneHighScores(mock.Anything, 10).Return(nil).Once()

	saveChan := make(chan *SaveHighScoreRequest)
	resultChan := make(chan *SaveHighScoreResult)
	w := NewSaveHighScoreWorker(NewSaveHighScoreWorkerOptions{
		Store:      highscores.NewStore(repo),
		SaveChan:   saveChan,
		ResultChan: resultChan,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	saveChan <- &SaveHighScoreRequest{Entry: &models.HighScore{Name: "bob", Score: 40}}

	select {
	case result := <-resultChan:
		require.NoError(t, result.LocalErr)
		assert.Equal(t, 1, result.LocalRank)
		assert.Nil(t, result.RemoteErr)
	case <-time.After(time.Second):
		t.Fatal("no result")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
