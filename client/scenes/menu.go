package scenes

import (
	"fmt"

	"github.com/cbodonnell/blockdrop/client/fonts"
	"github.com/cbodonnell/blockdrop/client/objects"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onPlay       func()
	ui           *ebitenui.UI
	localScores  []*models.HighScore
	onlineScores []*models.HighScore
	online       bool
}

type MenuSceneOptions struct {
	// OnPlay is called when the play button is pressed.
	OnPlay func()
	// LocalScores is the high score list saved on this machine.
	LocalScores []*models.HighScore
	// Online is true when a score service is configured.
	Online bool
	// OnlineScores is the latest high score list of the score service.
	OnlineScores []*models.HighScore
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) *MenuScene {
	return &MenuScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onPlay:       opts.OnPlay,
		localScores:  opts.LocalScores,
		online:       opts.Online,
		onlineScores: opts.OnlineScores,
	}
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

// SetOnlineScores replaces the online list shown on the menu.
func (s *MenuScene) SetOnlineScores(list []*models.HighScore) {
	s.onlineScores = list
	s.renderUI()
}

func (s *MenuScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    60,
				Left:   20,
				Right:  20,
				Bottom: 20,
			}))),
	)

	rootContainer.AddChild(newText("BLOCKDROP", fonts.MPlusLargeFont, textColor))

	button := newButton("Play", fonts.MPlusNormalFont)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		s.onPlay()
	})
	rootContainer.AddChild(button)
	rootContainer.AddChild(newText("press enter to play", fonts.TTFSmallFont, mutedColor))

	lists := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(40),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	lists.AddChild(newHighScoreColumn("LOCAL", s.localScores))
	if s.online {
		lists.AddChild(newHighScoreColumn("ONLINE", s.onlineScores))
	}
	rootContainer.AddChild(lists)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func newHighScoreColumn(title string, list []*models.HighScore) *widget.Container {
	column := newColumn(6)
	column.AddChild(newText(title, fonts.TTFNormalFont, textColor))
	if len(list) == 0 {
		column.AddChild(newText("no scores yet", fonts.TTFSmallFont, mutedColor))
		return column
	}
	for i, hs := range list {
		column.AddChild(newText(FormatHighScore(i+1, hs), fonts.TTFSmallFont, textColor))
	}
	return column
}

// FormatHighScore renders a row of a high score list.
func FormatHighScore(rank int, hs *models.HighScore) string {
	return fmt.Sprintf("%2d. %-16s %7d", rank, hs.Name, hs.Score)
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
