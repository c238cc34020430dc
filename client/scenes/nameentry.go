package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/cbodonnell/blockdrop/client/objects"
	"github.com/cbodonnell/blockdrop/client/ui"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// NameEntryScene asks for the name saved with a qualifying score.
type NameEntryScene struct {
	*BaseScene

	score     int
	onSubmit  func(name string) error
	ui        *ebitenui.UI
	nameInput *widget.TextInput
	name      string
	errMsg    string
}

type NameEntrySceneOptions struct {
	// Score is the score of the finished game.
	Score int
	// OnSubmit is called with the entered name.
	OnSubmit func(name string) error
}

var _ Scene = &NameEntryScene{}

func NewNameEntryScene(opts NameEntrySceneOptions) *NameEntryScene {
	return &NameEntryScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("name-entry-root", nil)),
		score:     opts.Score,
		onSubmit:  opts.OnSubmit,
	}
}

func (s *NameEntryScene) Init() error {
	s.renderUI()
	s.nameInput.Focus(true)
	return s.BaseScene.Init()
}

func (s *NameEntryScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    150,
				Left:   80,
				Right:  80,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(newText("NEW HIGH SCORE", fonts.MPlusLargeFont, textColor))
	rootContainer.AddChild(newText(fmt.Sprintf("%d", s.score), fonts.MPlusNormalFont, textColor))

	nameInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          textColor,
			Disabled:      disabledColor,
			Caret:         textColor,
			DisabledCaret: disabledColor,
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder(highscores.DefaultName),
		widget.TextInputOpts.Validation(func(newInputText string) (bool, *string) {
			return len(newInputText) <= highscores.MaxNameLength, nil
		}),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			s.name = args.InputText
		}),
	)
	nameInput.SetText(s.name)
	rootContainer.AddChild(nameInput)

	button := newButton("Save", fontFace)
	rootContainer.AddChild(button)

	if s.errMsg != "" {
		rootContainer.AddChild(newText(s.errMsg, fontFace, errorColor))
		s.errMsg = ""
	}

	submitHandler := func(args interface{}) {
		if err := s.onSubmit(nameInput.GetText()); err != nil {
			log.Error("Failed to submit name: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.errMsg = actionableErr.Message
			} else {
				s.errMsg = "Failed to save. Please try again."
			}
			s.renderUI()
			s.nameInput.Focus(true)
		}
	}
	nameInput.SubmitEvent.AddHandler(submitHandler)
	button.ClickedEvent.AddHandler(submitHandler)

	s.nameInput = nameInput
	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *NameEntryScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *NameEntryScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
