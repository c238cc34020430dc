package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/cbodonnell/blockdrop/client/spritesheets"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var hudLabelColor = color.RGBA{R: 160, G: 160, B: 180, A: 255}

// HUDObject draws the score, level, lines and piece counts of the game.
type HUDObject struct {
	*BaseObject

	state StateFunc
	sheet *spritesheets.BlockSheet
}

func NewHUDObject(id string, state StateFunc, sheet *spritesheets.BlockSheet) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, nil),
		state:      state,
		sheet:      sheet,
	}
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	state := o.state()
	if state == nil {
		return
	}

	y := previewY + previewSize + 40
	for _, field := range []struct {
		label string
		value int
	}{
		{"SCORE", state.Account.Score},
		{"LEVEL", state.Account.Level},
		{"LINES", state.Account.Lines},
	} {
		text.Draw(screen, field.label, fonts.TTFSmallFont, PanelX, y, hudLabelColor)
		text.Draw(screen, fmt.Sprintf("%d", field.value), fonts.TTFNormalFont, PanelX, y+24, color.White)
		y += 60
	}

	const tileScale = 0.5
	tileSize := float64(o.sheet.Size()) * tileScale
	for t := types.PieceTypeI; t <= types.PieceTypeZ; t++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(tileScale, tileScale)
		op.GeoM.Translate(float64(PanelX), float64(y)-tileSize)
		screen.DrawImage(o.sheet.Tile(t), op)
		text.Draw(screen, fmt.Sprintf("%s %3d", t, state.Stats[t]), fonts.TTFSmallFont, PanelX+int(tileSize)+8, y, color.White)
		y += int(tileSize) + 6
	}
}
