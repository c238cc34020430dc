package objects

import (
	"image/color"

	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/cbodonnell/blockdrop/client/spritesheets"
	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	previewY    = BoardY + 30
	previewSize = constants.PreviewSize * constants.BlockSize
)

// PreviewObject draws the next piece centered in a PreviewSize square.
type PreviewObject struct {
	*BaseObject

	state StateFunc
	sheet *spritesheets.BlockSheet
}

func NewPreviewObject(id string, state StateFunc, sheet *spritesheets.BlockSheet) *PreviewObject {
	return &PreviewObject{
		BaseObject: NewBaseObject(id, nil),
		state:      state,
		sheet:      sheet,
	}
}

func (o *PreviewObject) Draw(screen *ebiten.Image) {
	text.Draw(screen, "NEXT", fonts.TTFNormalFont, PanelX, BoardY+16, color.White)
	px, py, size := float32(PanelX), float32(previewY), float32(previewSize)
	vector.DrawFilledRect(screen, px, py, size, size, boardBackground, false)
	vector.StrokeRect(screen, px, py, size, size, 2, boardFrame, false)

	state := o.state()
	if state == nil || state.Next == nil {
		return
	}

	shape := state.Next.Shape
	offset := (constants.PreviewSize - len(shape)) * constants.BlockSize / 2
	for y, row := range shape {
		for x, cell := range row {
			if cell == types.PieceTypeNone {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(PanelX+offset+x*constants.BlockSize),
				float64(previewY+offset+y*constants.BlockSize),
			)
			screen.DrawImage(o.sheet.Tile(cell), op)
		}
	}
}
