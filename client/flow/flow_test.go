package flow

import (
	"errors"
	"net/http"
	"testing"

	"github.com/cbodonnell/blockdrop/client/network"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(values ...int) []*models.HighScore {
	list := make([]*models.HighScore, 0, len(values))
	for i, v := range values {
		list = append(list, &models.HighScore{ID: int64(i + 1), Name: "cpu", Score: v})
	}
	return list
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "alice", want: "alice"},
		{input: "  Bob 2  ", want: "Bob 2"},
		{input: "", want: highscores.DefaultName},
		{input: "   ", want: highscores.DefaultName},
		{input: "a very long name indeed", wantErr: true},
		{input: "<script>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, highscores.IsInvalidEntry(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldEnterName(t *testing.T) {
	full := scores(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100)
	tests := []struct {
		name      string
		score     int
		local     []*models.HighScore
		online    []*models.HighScore
		connected bool
		want      bool
	}{
		{name: "zero score", score: 0, want: false},
		{name: "empty local list", score: 10, want: true},
		{name: "beats local list", score: 150, local: full, want: true},
		{name: "ties the lowest", score: 100, local: full, want: false},
		{name: "beats online list only", score: 50, local: full, online: scores(10), connected: true, want: true},
		{name: "online list ignored when offline", score: 50, local: full, online: scores(10), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldEnterName(tt.score, tt.local, tt.online, tt.connected))
		})
	}
}

func TestApplyLiveMessage(t *testing.T) {
	list := scores(300, 100)

	t.Run("hello replaces the list", func(t *testing.T) {
		hello := &messages.ServerHello{HighScores: scores(50)}
		assert.Equal(t, hello.HighScores, ApplyLiveMessage(list, hello))
	})

	t.Run("high score is inserted in order", func(t *testing.T) {
		entry := &models.HighScore{ID: 9, Name: "alice", Score: 200}
		got := ApplyLiveMessage(list, &messages.ServerHighScore{Rank: 2, HighScore: entry})
		require.Len(t, got, 3)
		assert.Equal(t, []int{300, 200, 100}, []int{got[0].Score, got[1].Score, got[2].Score})
		assert.Len(t, list, 2)
	})

	t.Run("known high score is ignored", func(t *testing.T) {
		got := ApplyLiveMessage(list, &messages.ServerHighScore{HighScore: &models.HighScore{ID: 1, Score: 300}})
		assert.Equal(t, list, got)
	})

	t.Run("unknown message", func(t *testing.T) {
		assert.Equal(t, list, ApplyLiveMessage(list, "hello"))
	})
}

func TestShareLine(t *testing.T) {
	summary := types.Summary{
		Account: types.Account{Score: 1200, Level: 2},
		Pieces:  87,
	}
	assert.Equal(t,
		"I scored 1200 points in blockdrop, reaching level 2 after 87 pieces!",
		ShareLine(summary, ""))
	assert.Equal(t,
		"I scored 1200 points in blockdrop, reaching level 2 after 87 pieces! Replay: abc",
		ShareLine(summary, "abc"))
}

func TestRemoteErrorLine(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unreachable", err: errors.New("connection refused"), want: "score service unavailable"},
		{name: "duplicate replay", err: &network.ErrUnexpectedStatus{StatusCode: http.StatusConflict}, want: "replay already submitted"},
		{name: "bad request", err: &network.ErrUnexpectedStatus{StatusCode: http.StatusBadRequest}, want: "score rejected by the score service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoteErrorLine(tt.err))
		})
	}
}
