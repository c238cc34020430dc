package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/blockdrop/client/animations"
	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var overlayBackground = color.RGBA{R: 0, G: 0, B: 0, A: 170}

// TextOverlayObject dims the board and draws a blinking message over it
// while visible returns true.
type TextOverlayObject struct {
	*BaseObject

	text    string
	visible func() bool
	blink   *animations.Animation
}

func NewTextOverlayObject(id string, text string, visible func() bool) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		text:       text,
		visible:    visible,
		blink:      animations.NewBlinkAnimation(30),
	}
}

func (o *TextOverlayObject) Update() error {
	if o.visible() {
		o.blink.Update()
	} else {
		o.blink.Reset()
	}
	return nil
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if !o.visible() {
		return
	}
	vector.DrawFilledRect(screen, float32(BoardX), float32(BoardY), float32(BoardWidth), float32(BoardHeight), overlayBackground, false)
	if !o.blink.Visible() {
		return
	}
	t := strings.ToUpper(o.text)
	f := fonts.MPlusLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(BoardX+BoardWidth/2)-float64((bounds.Max.X-bounds.Min.X)>>6)/2,
		float64(BoardY+BoardHeight/2),
	)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
