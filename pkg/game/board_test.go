package game

import (
	"testing"

	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(sequence ...types.PieceType) *Board {
	b := NewBoard(NewSequenceRandomizer(sequence...), NewStats())
	b.Reset()
	return b
}

func TestBoard_Valid(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		dx, dy int
		want   bool
	}{
		{
			name: "spawn position",
			want: true,
		},
		{
			name: "left wall",
			dx:   -4,
			want: false,
		},
		{
			name: "against left wall",
			dx:   -3,
			want: true,
		},
		{
			name: "right wall",
			dx:   4,
			want: false,
		},
		{
			name: "resting on the floor",
			dy:   18,
			want: true,
		},
		{
			name: "through the floor",
			dy:   19,
			want: false,
		},
		{
			name: "above the ceiling",
			dy:   -2,
			want: false,
		},
		{
			name: "occupied cell",
			setup: func(b *Board) {
				b.grid[1][5] = types.PieceTypeZ
			},
			want: false,
		},
		{
			name: "occupied cell outside the shape's filled cells",
			setup: func(b *Board) {
				b.grid[0][5] = types.PieceTypeZ
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(types.PieceTypeI)
			if tt.setup != nil {
				tt.setup(b)
			}
			assert.Equal(t, tt.want, b.Valid(b.Piece().Moved(tt.dx, tt.dy)))
		})
	}
}

func TestBoard_ClearLines(t *testing.T) {
	b := newTestBoard(types.PieceTypeT)
	for x := 0; x < constants.Cols; x++ {
		b.grid[19][x] = types.PieceTypeI
		b.grid[17][x] = types.PieceTypeJ
	}
	b.grid[18][0] = types.PieceTypeS
	b.grid[16][9] = types.PieceTypeL

	lines := b.ClearLines()

	assert.Equal(t, 2, lines)
	require.Len(t, b.Grid(), constants.Rows)
	for _, row := range b.Grid() {
		assert.Len(t, row, constants.Cols)
	}
	assert.Equal(t, types.PieceTypeS, b.Grid()[19][0])
	assert.Equal(t, types.PieceTypeL, b.Grid()[18][9])
	assert.Equal(t, make([]types.PieceType, constants.Cols), b.Grid()[0])
	assert.Equal(t, make([]types.PieceType, constants.Cols), b.Grid()[1])

	assert.Equal(t, 0, b.ClearLines())
}

func TestBoard_Drop(t *testing.T) {
	b := newTestBoard(types.PieceTypeO, types.PieceTypeI, types.PieceTypeT)
	assert.Equal(t, types.PieceTypeO, b.Piece().Type)
	assert.Equal(t, types.PieceTypeI, b.Next().Type)

	for i := 0; i < constants.Rows-2; i++ {
		result := b.Drop()
		require.True(t, result.Moved, "drop %d", i)
	}
	assert.Equal(t, 18, b.Piece().Y)

	result := b.Drop()
	assert.Equal(t, DropResult{Locked: types.PieceTypeO}, result)

	assert.Equal(t, types.PieceTypeO, b.Grid()[18][4])
	assert.Equal(t, types.PieceTypeO, b.Grid()[18][5])
	assert.Equal(t, types.PieceTypeO, b.Grid()[19][4])
	assert.Equal(t, types.PieceTypeO, b.Grid()[19][5])

	assert.Equal(t, types.PieceTypeI, b.Piece().Type)
	assert.Equal(t, 3, b.Piece().X)
	assert.Equal(t, 0, b.Piece().Y)
	assert.Equal(t, types.PieceTypeT, b.Next().Type)

	assert.Equal(t, 1, b.stats.Count(types.PieceTypeO))
	assert.Equal(t, 1, b.stats.Count(types.PieceTypeI))
	assert.Equal(t, 2, b.stats.Total())
}

func TestBoard_Drop_clearsLines(t *testing.T) {
	b := newTestBoard(types.PieceTypeO)
	for x := 0; x < constants.Cols; x++ {
		if x == 4 || x == 5 {
			continue
		}
		b.grid[18][x] = types.PieceTypeZ
		b.grid[19][x] = types.PieceTypeZ
	}
	b.piece.Y = 18

	result := b.Drop()

	assert.Equal(t, DropResult{Locked: types.PieceTypeO, Lines: 2}, result)
	for y := 0; y < constants.Rows; y++ {
		assert.Equal(t, make([]types.PieceType, constants.Cols), b.Grid()[y], "row %d", y)
	}
}

func TestBoard_Drop_gameOver(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
	}{
		{
			name: "locked on the top row",
			setup: func(b *Board) {
				for y := 2; y < constants.Rows; y++ {
					b.grid[y][4] = types.PieceTypeZ
					b.grid[y][5] = types.PieceTypeZ
				}
			},
		},
		{
			name: "no room for the next piece",
			setup: func(b *Board) {
				b.grid[1][3] = types.PieceTypeZ
				b.piece.X = 0
				b.piece.Y = 18
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(types.PieceTypeO, types.PieceTypeI)
			tt.setup(b)

			result := b.Drop()

			assert.False(t, result.Moved)
			assert.Equal(t, types.PieceTypeO, result.Locked)
			assert.True(t, result.GameOver)
		})
	}
}

func TestBoard_Reset(t *testing.T) {
	b := newTestBoard(types.PieceTypeS, types.PieceTypeZ)
	b.grid[19][0] = types.PieceTypeS
	b.Drop()

	b.Reset()

	assert.Equal(t, types.NewGrid(constants.Cols, constants.Rows), b.Grid())
	assert.Equal(t, 1, b.stats.Total())
	assert.Equal(t, 0, b.Piece().Y)
}

func TestUniformRandomizer(t *testing.T) {
	a := NewUniformRandomizer(42)
	b := NewUniformRandomizer(42)
	seen := map[types.PieceType]bool{}
	for i := 0; i < 200; i++ {
		pt := a.Next()
		require.True(t, pt.Valid(), "piece %d", pt)
		assert.Equal(t, pt, b.Next())
		seen[pt] = true
	}
	assert.Len(t, seen, types.NumPieceTypes)
}

func TestSequenceRandomizer(t *testing.T) {
	r := NewSequenceRandomizer(types.PieceTypeL, types.PieceTypeJ)
	assert.Equal(t, types.PieceTypeL, r.Next())
	assert.Equal(t, types.PieceTypeJ, r.Next())
	assert.Equal(t, types.PieceTypeL, r.Next())
}
