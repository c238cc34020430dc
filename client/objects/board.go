package objects

import (
	"image/color"

	"github.com/cbodonnell/blockdrop/client/spritesheets"
	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	boardBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	boardFrame      = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	boardGridLine   = color.RGBA{R: 28, G: 28, B: 40, A: 255}
)

// StateFunc returns the latest state of the game being drawn, nil before the first tick.
type StateFunc func() *types.GameState

// BoardObject draws the locked cells and the active piece.
type BoardObject struct {
	*BaseObject

	state StateFunc
	sheet *spritesheets.BlockSheet
}

func NewBoardObject(id string, state StateFunc, sheet *spritesheets.BlockSheet) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, nil),
		state:      state,
		sheet:      sheet,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	left, top := float32(BoardX), float32(BoardY)
	width, height := float32(BoardWidth), float32(BoardHeight)
	vector.DrawFilledRect(screen, left-3, top-3, width+6, height+6, boardFrame, false)
	vector.DrawFilledRect(screen, left, top, width, height, boardBackground, false)
	for x := 1; x < constants.Cols; x++ {
		lx := float32(BoardX + x*constants.BlockSize)
		vector.StrokeLine(screen, lx, top, lx, top+height, 1, boardGridLine, false)
	}
	for y := 1; y < constants.Rows; y++ {
		ly := float32(BoardY + y*constants.BlockSize)
		vector.StrokeLine(screen, left, ly, left+width, ly, 1, boardGridLine, false)
	}

	state := o.state()
	if state == nil {
		return
	}

	for y, row := range state.Grid {
		for x, cell := range row {
			if cell != types.PieceTypeNone {
				o.drawCell(screen, x, y, cell)
			}
		}
	}

	if state.Piece != nil && state.Status != types.GameStatusOver {
		state.Piece.Cells(func(x, y int) bool {
			if y >= 0 {
				o.drawCell(screen, x, y, state.Piece.Type)
			}
			return true
		})
	}
}

func (o *BoardObject) drawCell(screen *ebiten.Image, x, y int, t types.PieceType) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(BoardX+x*constants.BlockSize), float64(BoardY+y*constants.BlockSize))
	screen.DrawImage(o.sheet.Tile(t), op)
}
