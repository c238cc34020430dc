package types

import (
	"fmt"
	"image/color"
)

// PieceType identifies a tetromino. The zero value is used for empty cells.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypeI
	PieceTypeJ
	PieceTypeL
	PieceTypeO
	PieceTypeS
	PieceTypeT
	PieceTypeZ
)

// NumPieceTypes is the number of playable piece types.
const NumPieceTypes = 7

func (t PieceType) String() string {
	switch t {
	case PieceTypeNone:
		return "none"
	case PieceTypeI:
		return "I"
	case PieceTypeJ:
		return "J"
	case PieceTypeL:
		return "L"
	case PieceTypeO:
		return "O"
	case PieceTypeS:
		return "S"
	case PieceTypeT:
		return "T"
	case PieceTypeZ:
		return "Z"
	default:
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
}

// Valid returns true for the seven playable piece types.
func (t PieceType) Valid() bool {
	return t >= PieceTypeI && t <= PieceTypeZ
}

// Color returns the display color of the piece type.
func (t PieceType) Color() color.RGBA {
	switch t {
	case PieceTypeI:
		return color.RGBA{0, 255, 255, 255} // cyan
	case PieceTypeJ:
		return color.RGBA{0, 0, 255, 255} // blue
	case PieceTypeL:
		return color.RGBA{255, 165, 0, 255} // orange
	case PieceTypeO:
		return color.RGBA{255, 255, 0, 255} // yellow
	case PieceTypeS:
		return color.RGBA{0, 128, 0, 255} // green
	case PieceTypeT:
		return color.RGBA{128, 0, 128, 255} // purple
	case PieceTypeZ:
		return color.RGBA{255, 0, 0, 255} // red
	default:
		return color.RGBA{}
	}
}

// shapes holds the spawn orientation of each piece. Filled cells carry the piece type.
var shapes = map[PieceType][][]PieceType{
	PieceTypeI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceTypeJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	PieceTypeL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	PieceTypeO: {
		{4, 4},
		{4, 4},
	},
	PieceTypeS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	PieceTypeT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	PieceTypeZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// RotationDirection is the direction of a rotation.
type RotationDirection int

const (
	RotationRight RotationDirection = iota // clockwise
	RotationLeft                           // counter-clockwise
)

// Piece is a tetromino with its shape matrix and board position.
// X and Y are the board coordinates of the top left corner of the shape.
type Piece struct {
	Type        PieceType
	Shape       [][]PieceType
	X           int
	Y           int
	HardDropped bool
}

// NewPiece returns a piece of the given type at its starting position.
func NewPiece(t PieceType) *Piece {
	p := &Piece{
		Type:  t,
		Shape: copyShape(shapes[t]),
	}
	p.SetStartingPosition()
	return p
}

// SetStartingPosition moves the piece to the top of the board, centered.
func (p *Piece) SetStartingPosition() {
	p.Y = 0
	if p.Type == PieceTypeO {
		p.X = 4
	} else {
		p.X = 3
	}
}

// Copy returns a deep copy of the piece.
func (p *Piece) Copy() *Piece {
	return &Piece{
		Type:        p.Type,
		Shape:       copyShape(p.Shape),
		X:           p.X,
		Y:           p.Y,
		HardDropped: p.HardDropped,
	}
}

// Moved returns a copy of the piece offset by dx, dy.
func (p *Piece) Moved(dx, dy int) *Piece {
	c := p.Copy()
	c.X += dx
	c.Y += dy
	return c
}

// Move takes the position and shape of a candidate piece.
// A hard dropped piece keeps its position.
func (p *Piece) Move(candidate *Piece) {
	if !p.HardDropped {
		p.X = candidate.X
		p.Y = candidate.Y
	}
	p.Shape = copyShape(candidate.Shape)
}

// HardDrop marks the piece as hard dropped. It can no longer move or rotate.
func (p *Piece) HardDrop() {
	p.HardDropped = true
}

// Rotated returns a rotated copy of the piece.
// The matrix is transposed, then rows are reversed for a clockwise rotation
// or the row order is reversed for a counter-clockwise one.
func (p *Piece) Rotated(dir RotationDirection) *Piece {
	c := p.Copy()
	if p.HardDropped {
		return c
	}

	n := len(c.Shape)
	for y := 0; y < n; y++ {
		for x := 0; x < y; x++ {
			c.Shape[x][y], c.Shape[y][x] = c.Shape[y][x], c.Shape[x][y]
		}
	}

	switch dir {
	case RotationRight:
		for _, row := range c.Shape {
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
	case RotationLeft:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			c.Shape[i], c.Shape[j] = c.Shape[j], c.Shape[i]
		}
	}

	return c
}

// Cells calls fn with the board coordinates of every filled cell of the piece.
// Iteration stops when fn returns false.
func (p *Piece) Cells(fn func(x, y int) bool) {
	for dy, row := range p.Shape {
		for dx, value := range row {
			if value == PieceTypeNone {
				continue
			}
			if !fn(p.X+dx, p.Y+dy) {
				return
			}
		}
	}
}

func copyShape(shape [][]PieceType) [][]PieceType {
	c := make([][]PieceType, len(shape))
	for i, row := range shape {
		c[i] = make([]PieceType, len(row))
		copy(c[i], row)
	}
	return c
}
