package spritesheets

import (
	"image"
	"image/color"

	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BlockSheet holds one beveled square tile per piece type, laid out left to
// right in PieceType order. The first tile is left empty.
type BlockSheet struct {
	image *ebiten.Image
	size  int
}

func NewBlockSheet(size int) *BlockSheet {
	img := ebiten.NewImage(size*(types.NumPieceTypes+1), size)
	for t := types.PieceTypeI; t <= types.PieceTypeZ; t++ {
		drawTile(img, int(t)*size, size, t.Color())
	}
	return &BlockSheet{
		image: img,
		size:  size,
	}
}

func drawTile(dst *ebiten.Image, ox int, size int, c color.RGBA) {
	x, s := float32(ox), float32(size)
	bevel := s / 8
	vector.DrawFilledRect(dst, x, 0, s, s, Shade(c, 0.55), false)
	vector.DrawFilledRect(dst, x, 0, s-bevel, s-bevel, Shade(c, 1.4), false)
	vector.DrawFilledRect(dst, x+bevel, bevel, s-2*bevel, s-2*bevel, c, false)
}

// Tile returns the tile of a piece type.
func (s *BlockSheet) Tile(t types.PieceType) *ebiten.Image {
	sx := int(t) * s.size
	return s.image.SubImage(image.Rect(sx, 0, sx+s.size, s.size)).(*ebiten.Image)
}

func (s *BlockSheet) Size() int {
	return s.size
}

// Shade scales the channels of c by factor, clamping at 255.
func Shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
