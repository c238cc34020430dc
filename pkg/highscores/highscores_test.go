package highscores

import (
	"testing"

	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(scores ...int) []*models.HighScore {
	list := make([]*models.HighScore, len(scores))
	for i, score := range scores {
		list[i] = &models.HighScore{ID: int64(i + 1), Name: "player", Score: score}
	}
	return list
}

func TestQualifies(t *testing.T) {
	full := newList(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100)
	tests := []struct {
		name  string
		list  []*models.HighScore
		score int
		want  bool
	}{
		{name: "empty list", list: nil, score: 1, want: true},
		{name: "zero on empty list", list: nil, score: 0, want: false},
		{name: "list with room", list: newList(500, 400), score: 10, want: true},
		{name: "full list beats lowest", list: full, score: 101, want: true},
		{name: "full list ties lowest", list: full, score: 100, want: false},
		{name: "full list below lowest", list: full, score: 50, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.list, tt.score))
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		list       []*models.HighScore
		score      int
		wantRank   int
		wantScores []int
	}{
		{
			name:       "empty list",
			score:      300,
			wantRank:   1,
			wantScores: []int{300},
		},
		{
			name:       "middle",
			list:       newList(500, 300, 100),
			score:      400,
			wantRank:   2,
			wantScores: []int{500, 400, 300, 100},
		},
		{
			name:       "tie ranks below the older entry",
			list:       newList(500, 300, 100),
			score:      300,
			wantRank:   3,
			wantScores: []int{500, 300, 300, 100},
		},
		{
			name:       "full list drops the lowest",
			list:       newList(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100),
			score:      650,
			wantRank:   5,
			wantScores: []int{1000, 900, 800, 700, 650, 600, 500, 400, 300, 200},
		},
		{
			name:       "full list rejects a low score",
			list:       newList(1000, 900, 800, 700, 600, 500, 400, 300, 200, 100),
			score:      100,
			wantRank:   0,
			wantScores: []int{1000, 900, 800, 700, 600, 500, 400, 300, 200, 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.list)
			entry := &models.HighScore{Name: "new", Score: tt.score}

			got, rank := Insert(tt.list, entry)

			assert.Equal(t, tt.wantRank, rank)
			scores := make([]int, len(got))
			for i, hs := range got {
				scores[i] = hs.Score
			}
			assert.Equal(t, tt.wantScores, scores)
			assert.Len(t, tt.list, before)
			if rank > 0 {
				assert.Same(t, entry, got[rank-1])
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "alice", want: "alice"},
		{name: "trimmed", in: "  Bob 2  ", want: "Bob 2"},
		{name: "max length", in: "abcdefghijklmnop", want: "abcdefghijklmnop"},
		{name: "empty", in: "   ", wantErr: true},
		{name: "too long", in: "abcdefghijklmnopq", wantErr: true},
		{name: "symbols", in: "<script>", wantErr: true},
		{name: "non ascii", in: "zoë", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidEntry(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	entry := &models.HighScore{Name: " carol ", Score: 10}
	require.NoError(t, Validate(entry))
	assert.Equal(t, "carol", entry.Name)

	assert.True(t, IsInvalidEntry(Validate(&models.HighScore{Name: "dave", Score: -1})))
}
