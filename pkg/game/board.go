package game

import (
	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
)

// Board owns the grid of locked cells, the active piece and the next piece.
type Board struct {
	cols       int
	rows       int
	grid       types.Grid
	piece      *types.Piece
	next       *types.Piece
	randomizer Randomizer
	stats      *Stats
}

// DropResult describes the outcome of a gravity step.
type DropResult struct {
	// Moved is true when the active piece moved down one row
	Moved bool
	// Locked is the type of the piece that was frozen into the grid, if any
	Locked types.PieceType
	// Lines is the number of rows cleared by the lock
	Lines int
	// GameOver is true when the lock ended the game
	GameOver bool
}

// NewBoard creates an empty board drawing pieces from the given randomizer.
// Spawned pieces are counted in stats when it is not nil.
func NewBoard(randomizer Randomizer, stats *Stats) *Board {
	return &Board{
		cols:       constants.Cols,
		rows:       constants.Rows,
		grid:       types.NewGrid(constants.Cols, constants.Rows),
		randomizer: randomizer,
		stats:      stats,
	}
}

// Reset empties the grid and draws a fresh active and next piece.
func (b *Board) Reset() {
	b.grid = types.NewGrid(b.cols, b.rows)
	b.piece = types.NewPiece(b.randomizer.Next())
	b.next = types.NewPiece(b.randomizer.Next())
	if b.stats != nil {
		b.stats.Reset()
		b.stats.Add(b.piece.Type)
	}
}

func (b *Board) Grid() types.Grid {
	return b.grid
}

func (b *Board) Piece() *types.Piece {
	return b.piece
}

func (b *Board) Next() *types.Piece {
	return b.next
}

// Valid returns true when every filled cell of p is inside the walls,
// above the floor and on an empty cell.
func (b *Board) Valid(p *types.Piece) bool {
	valid := true
	p.Cells(func(x, y int) bool {
		if !b.insideWalls(x) || !b.aboveFloor(y) || y < 0 || b.grid[y][x] != types.PieceTypeNone {
			valid = false
		}
		return valid
	})
	return valid
}

func (b *Board) insideWalls(x int) bool {
	return x >= 0 && x < b.cols
}

func (b *Board) aboveFloor(y int) bool {
	return y < b.rows
}

// Drop moves the active piece down one row, or locks it when it cannot move.
// After a lock the next piece becomes active. The game is over when the
// locked piece never left the top row or the new piece has no room.
func (b *Board) Drop() DropResult {
	candidate := b.piece.Moved(0, 1)
	if b.Valid(candidate) {
		b.piece.Move(candidate)
		return DropResult{Moved: true}
	}

	result := DropResult{Locked: b.piece.Type}
	b.Freeze()
	result.Lines = b.ClearLines()

	if b.piece.Y == 0 {
		result.GameOver = true
		return result
	}

	b.piece = b.next
	b.piece.SetStartingPosition()
	b.next = types.NewPiece(b.randomizer.Next())
	if b.stats != nil {
		b.stats.Add(b.piece.Type)
	}

	if !b.Valid(b.piece) {
		result.GameOver = true
	}

	return result
}

// Freeze writes the active piece into the grid.
func (b *Board) Freeze() {
	b.piece.Cells(func(x, y int) bool {
		if y >= 0 && y < b.rows && b.insideWalls(x) {
			b.grid[y][x] = b.piece.Type
		}
		return true
	})
}

// ClearLines removes every full row, inserting an empty row at the top for each,
// and returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make(types.Grid, 0, b.rows)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	lines := b.rows - len(kept)
	if lines == 0 {
		return 0
	}

	cleared := types.NewGrid(b.cols, lines)
	b.grid = append(cleared, kept...)
	return lines
}

func rowFull(row []types.PieceType) bool {
	for _, cell := range row {
		if cell == types.PieceTypeNone {
			return false
		}
	}
	return true
}
