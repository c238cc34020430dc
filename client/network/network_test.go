package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/api"
	"github.com/cbodonnell/blockdrop/pkg/clients"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/cbodonnell/blockdrop/pkg/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ctx context.Context) *httptest.Server {
	repository, err := repositories.NewFileRepository(filepath.Join(t.TempDir(), "highscores.json"))
	require.NoError(t, err)

	clientManager := clients.NewClientManager()
	broadcastChan := make(chan *messages.Message, 8)
	go workers.NewBroadcastMessageWorker(workers.NewBroadcastMessageWorkerOptions{
		ClientManager:        clientManager,
		BroadcastMessageChan: broadcastChan,
	}).Start(ctx)

	srv := httptest.NewServer(api.NewRouter(api.NewAPIServerOptions{
		AllowOrigin:          "*",
		Repository:           repository,
		Store:                highscores.NewStore(repository),
		ClientManager:        clientManager,
		BroadcastMessageChan: broadcastChan,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := newTestService(t, ctx)
	client := NewAPIClient(srv.URL + "/")

	list, err := client.ListHighScores(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	resp, err := client.SubmitHighScore(ctx, &messages.SubmitHighScoreRequest{Name: "alice", Score: 300})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Equal(t, 1, resp.Rank)

	_, err = client.SubmitHighScore(ctx, &messages.SubmitHighScoreRequest{Name: "!!", Score: 300})
	require.Error(t, err)
	assert.True(t, IsUnexpectedStatus(err))
	assert.Equal(t, http.StatusBadRequest, err.(*ErrUnexpectedStatus).StatusCode)

	list, err = client.ListHighScores(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].Name)
}

func TestAPIClient_RefreshHighScores(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv := newTestService(t, ctx)
	client := NewAPIClient(srv.URL)

	_, err := client.SubmitHighScore(ctx, &messages.SubmitHighScoreRequest{Name: "carol", Score: 400})
	require.NoError(t, err)

	messageQueue := queue.NewInMemoryQueue(1)
	require.NoError(t, client.RefreshHighScores(ctx, messageQueue))

	received, err := messageQueue.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, received, 1)
	hello, ok := received[0].(*messages.ServerHello)
	require.True(t, ok)
	require.Len(t, hello.HighScores, 1)
	assert.Equal(t, "carol", hello.HighScores[0].Name)

	err = NewAPIClient(srv.URL+"/missing").RefreshHighScores(ctx, messageQueue)
	require.Error(t, err)
	assert.True(t, IsUnexpectedStatus(err))
	assert.Zero(t, messageQueue.Size())
}

func TestAPIClient_LiveURL(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
		wantErr bool
	}{
		{baseURL: "http://localhost:9090", want: "ws://localhost:9090/highscores/live"},
		{baseURL: "https://scores.example.com/", want: "wss://scores.example.com/highscores/live"},
		{baseURL: "ftp://scores.example.com", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NewAPIClient(tt.baseURL).LiveURL()
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLiveClient(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv := newTestService(t, ctx)
	apiClient := NewAPIClient(srv.URL)

	liveURL, err := apiClient.LiveURL()
	require.NoError(t, err)

	messageQueue := queue.NewInMemoryQueue(16)
	liveClient := NewLiveClient(liveURL, messageQueue)
	require.NoError(t, liveClient.Connect(ctx))

	liveCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- liveClient.HandleMessages(liveCtx)
	}()

	require.Eventually(t, func() bool { return messageQueue.Size() == 1 }, 2*time.Second, 10*time.Millisecond)

	_, err = apiClient.SubmitHighScore(ctx, &messages.SubmitHighScoreRequest{Name: "bob", Score: 700})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return messageQueue.Size() == 2 }, 2*time.Second, 10*time.Millisecond)
	received, err := messageQueue.ReadAllMessages()
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.IsType(t, &messages.ServerHello{}, received[0])
	highScore, ok := received[1].(*messages.ServerHighScore)
	require.True(t, ok)
	assert.Equal(t, "bob", highScore.HighScore.Name)

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("live client did not stop")
	}
}
