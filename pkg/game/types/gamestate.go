package types

// Grid is the board matrix indexed as Grid[y][x]. Empty cells hold PieceTypeNone.
type Grid [][]PieceType

// NewGrid returns an empty grid with the given dimensions.
func NewGrid(cols, rows int) Grid {
	g := make(Grid, rows)
	for y := range g {
		g[y] = make([]PieceType, cols)
	}
	return g
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]PieceType, len(row))
		copy(c[y], row)
	}
	return c
}

// Account holds the score, level and lines of a game.
type Account struct {
	Score int `json:"score"`
	Level int `json:"level"`
	Lines int `json:"lines"`
}

// GameStatus is the lifecycle state of a game.
type GameStatus uint8

const (
	GameStatusIdle GameStatus = iota
	GameStatusPlaying
	GameStatusPaused
	GameStatusOver
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusIdle:
		return "idle"
	case GameStatusPlaying:
		return "playing"
	case GameStatusPaused:
		return "paused"
	case GameStatusOver:
		return "over"
	}
	return "unknown"
}

// GameState is a point in time copy of everything needed to draw a game.
type GameState struct {
	// Grid is the locked cells of the board
	Grid Grid
	// Piece is the active piece, nil before the game starts
	Piece *Piece
	// Next is the piece that spawns after the active one locks
	Next *Piece
	// Account is the score, level and lines
	Account Account
	// Status is the lifecycle state of the game
	Status GameStatus
	// Stats counts spawned pieces per type
	Stats map[PieceType]int
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	c := &GameState{
		Grid:    g.Grid.Copy(),
		Account: g.Account,
		Status:  g.Status,
		Stats:   make(map[PieceType]int, len(g.Stats)),
	}
	if g.Piece != nil {
		c.Piece = g.Piece.Copy()
	}
	if g.Next != nil {
		c.Next = g.Next.Copy()
	}
	for t, n := range g.Stats {
		c.Stats[t] = n
	}
	return c
}

// Summary describes a finished game.
type Summary struct {
	Account Account           `json:"account"`
	Pieces  int               `json:"pieces"`
	Stats   map[PieceType]int `json:"stats"`
	// Quit is true when the game was ended by the player
	Quit bool `json:"quit"`
}
